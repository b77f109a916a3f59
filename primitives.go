package shiftcat

// combinatorFn implements one primitive's reduction rule against the
// reducer's machine and dictionary. The dispatching Constant is still on
// top of code when a combinatorFn runs: on success (stop=false) the
// function must pop it itself before returning, the same way run's other
// cases pop their own instruction before pushing a replacement; on
// suspension the function calls suspendCont/suspendStop, which thunk the
// still-present Constant for it. stop=true additionally tells the step
// loop to halt; stop=false lets the loop continue dispatching the
// remaining code.
type combinatorFn func(r *reducer) (stop bool)

var combinators = map[string]combinatorFn{
	"Copy":   copyFn,
	"Drop":   dropFn,
	"Swap":   swapFn,
	"Cat":    catFn,
	"Abs":    absFn,
	"App":    appFn,
	"Inl":    inlFn,
	"Inr":    inrFn,
	"Pair":   pairFn,
	"Shift":  shiftFn,
	"Reset":  resetFn,
	"Define": defineFn,
	"Delete": deleteFn,
}

// popSelf removes the combinator's own, still-present invoking Constant
// from the top of code. Called only once preconditions are confirmed met,
// so the pop can never fail.
func popSelf(r *reducer) {
	if err := r.m.popCode(1); err != nil {
		panic(err)
	}
}

// Copy: `a -> a a`.
func copyFn(r *reducer) bool {
	a, err := r.m.getData(0)
	if err != nil {
		return r.suspendCont()
	}
	popSelf(r)
	r.m.pushData(a)
	return false
}

// Drop: `a ->`.
func dropFn(r *reducer) bool {
	if err := r.m.popData(1); err != nil {
		return r.suspendCont()
	}
	popSelf(r)
	return false
}

// Swap: `a b -> b a`.
func swapFn(r *reducer) bool {
	b, err := r.m.getData(0)
	if err != nil {
		return r.suspendCont()
	}
	a, err := r.m.getData(1)
	if err != nil {
		return r.suspendCont()
	}
	if err := r.m.popData(2); err != nil {
		return r.suspendCont()
	}
	popSelf(r)
	r.m.pushData(b)
	r.m.pushData(a)
	return false
}

// Cat: `[a] [b] -> [a b]`; both operands must be Quotes.
func catFn(r *reducer) bool {
	snd, err := r.m.getData(0)
	if err != nil {
		return r.suspendCont()
	}
	fst, err := r.m.getData(1)
	if err != nil {
		return r.suspendCont()
	}
	sndBody, ok := snd.Body()
	if !ok {
		return r.suspendCont()
	}
	fstBody, ok := fst.Body()
	if !ok {
		return r.suspendCont()
	}
	if err := r.m.popData(2); err != nil {
		return r.suspendCont()
	}
	popSelf(r)
	r.m.pushData(Quote(Catenate(fstBody, sndBody)))
	return false
}

// Abs: `a -> [a]`.
func absFn(r *reducer) bool {
	a, err := r.m.getData(0)
	if err != nil {
		return r.suspendCont()
	}
	if err := r.m.popData(1); err != nil {
		return r.suspendCont()
	}
	popSelf(r)
	r.m.pushData(Quote(a))
	return false
}

// App: `[a] -> ` and run a: pop the Quote and push its body onto code.
func appFn(r *reducer) bool {
	a, err := r.m.getData(0)
	if err != nil {
		return r.suspendStop()
	}
	body, ok := a.Body()
	if !ok {
		return r.suspendStop()
	}
	if err := r.m.popData(1); err != nil {
		return r.suspendStop()
	}
	popSelf(r)
	r.m.pushCode(body)
	return false
}

// Inl and Inr share everything but which branch they select.
func selectBranch(r *reducer, selectLeft bool) bool {
	a, err := r.m.getData(0) // the carried value
	if err != nil {
		return r.suspendStop()
	}
	right, err := r.m.getData(1)
	if err != nil {
		return r.suspendStop()
	}
	left, err := r.m.getData(2)
	if err != nil {
		return r.suspendStop()
	}
	if err := r.m.popData(3); err != nil {
		return r.suspendStop()
	}
	popSelf(r)
	r.m.pushData(a)
	if selectLeft {
		r.m.pushCode(left)
	} else {
		r.m.pushCode(right)
	}
	return false
}

// Inl: `[l] [r] a -> a`, pushing l onto code.
func inlFn(r *reducer) bool { return selectBranch(r, true) }

// Inr: `[l] [r] a -> a`, pushing r onto code.
func inrFn(r *reducer) bool { return selectBranch(r, false) }

// Pair: `a b -> [a b]`, encoding the pair as a catenation inside a Quote.
func pairFn(r *reducer) bool {
	b, err := r.m.getData(0)
	if err != nil {
		return r.suspendCont()
	}
	a, err := r.m.getData(1)
	if err != nil {
		return r.suspendCont()
	}
	if err := r.m.popData(2); err != nil {
		return r.suspendCont()
	}
	popSelf(r)
	r.m.pushData(Quote(Catenate(a, b)))
	return false
}

// Shift scans the remaining code for the nearest Reset, captures the
// instructions between Shift and Reset (in reading order) as a Quote, and
// installs the popped handler's body in their place. Shift is on top of
// code (index 0) for the whole scan, so a failed scan can thunk it
// unmodified.
func shiftFn(r *reducer) bool {
	handler, err := r.m.getData(0)
	if err != nil {
		return r.suspendStop()
	}
	handlerBody, ok := handler.Body()
	if !ok {
		return r.suspendStop()
	}

	k := 1
	for {
		instr, err := r.m.getCode(k)
		if err != nil {
			return r.suspendStop() // NoShift: no enclosing Reset
		}
		if name, isConst := instr.Name(); isConst && instr.Kind() == KindConstant && name == "Reset" {
			break
		}
		k++
	}

	captured := make([]Value, 0, k-1)
	for i := 1; i < k; i++ {
		instr, _ := r.m.getCode(i)
		captured = append(captured, instr)
	}
	cont := Quote(Catenate(captured...))

	// k+1 covers index 0 (Shift itself) through index k (Reset), inclusive.
	if err := r.m.popCode(k + 1); err != nil {
		panic(err) // the scan above already established k+1 items exist
	}
	if err := r.m.popData(1); err != nil {
		panic(err) // handler was already confirmed present above
	}
	r.m.pushData(cont)
	r.m.pushCode(handlerBody)
	return false
}

// Reset, reached as the current instruction with no enclosing Shift having
// claimed it, is preserved in the residual -- it always thunks itself and
// stops.
func resetFn(r *reducer) bool { return r.suspendStop() }

// Define: `[body] "name" -> `, binding name to body in the dictionary.
func defineFn(r *reducer) bool {
	if r.dict == nil {
		return r.suspendStop()
	}
	nameVal, err := r.m.getData(0)
	if err != nil {
		return r.suspendStop()
	}
	name, ok := nameVal.Payload()
	if !ok || nameVal.Kind() != KindText {
		return r.suspendStop()
	}
	bodyVal, err := r.m.getData(1)
	if err != nil {
		return r.suspendStop()
	}
	body, ok := bodyVal.Body()
	if !ok {
		return r.suspendStop()
	}
	if !r.dict.Define(name, body) {
		return r.suspendStop()
	}
	if err := r.m.popData(2); err != nil {
		panic(err) // both operands were already confirmed present above
	}
	popSelf(r)
	return false
}

// Delete: `"name" -> `, removing name from the dictionary.
func deleteFn(r *reducer) bool {
	if r.dict == nil {
		return r.suspendStop()
	}
	nameVal, err := r.m.getData(0)
	if err != nil {
		return r.suspendStop()
	}
	name, ok := nameVal.Payload()
	if !ok || nameVal.Kind() != KindText {
		return r.suspendStop()
	}
	if err := r.m.popData(1); err != nil {
		panic(err) // already confirmed present above
	}
	popSelf(r)
	r.dict.Delete(name)
	return false
}
