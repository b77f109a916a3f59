package shiftcat

import "fmt"

// Evaluate reduces init -- either already-parsed Value, or source text
// that is first run through Read -- under a gas-bounded small-step loop
// and returns the residual term.
//
// Evaluate is total for every user-program error: absent data, absent
// dictionary entries, and Prompts at the head of code all degrade to a
// well-formed residual via thunk rather than an error return. The sole
// exception is UnknownError, raised when the code stack's head is a
// Constant whose name is not in the primitive combinator table; a parse
// failure in the string form returns UnreadableError the same way Read
// does.
func Evaluate(init interface{}, opts ...Option) (Value, error) {
	var v Value
	switch t := init.(type) {
	case Value:
		v = t
	case string:
		parsed, err := Read(t)
		if err != nil {
			return Value{}, err
		}
		v = parsed
	default:
		return Value{}, fmt.Errorf("shiftcat: Evaluate: unsupported init type %T", init)
	}

	cfg := evalConfig{gas: DefaultGas}
	Options(opts...).apply(&cfg)
	if cfg.gas <= 0 {
		cfg.gas = DefaultGas
	}
	if cfg.dictLimit != nil && cfg.dict != nil {
		cfg.dict.Limit = *cfg.dictLimit
	}

	r := reducer{m: newMachine(v), dict: cfg.dict, logf: cfg.logfn}
	if err := r.run(cfg.gas); err != nil {
		return Value{}, err
	}
	return r.m.residual(), nil
}

// reducer carries the mutable state threaded through the step loop: the
// three-stack machine and the dictionary it reads and mutates. Primitive
// implementations in primitives.go are functions taking *reducer so they
// can both touch the stacks and call suspendCont/suspendStop.
type reducer struct {
	m    *machine
	dict *Dictionary
	logf func(mess string, args ...interface{})
}

func (r *reducer) tracef(mess string, args ...interface{}) {
	if r.logf != nil {
		r.logf(mess, args...)
	}
}

// run executes the step loop until code is empty or gas is exhausted.
func (r *reducer) run(gas int) error {
	for len(r.m.code) > 0 && gas > 0 {
		gas--

		hand, err := r.m.getCode(0)
		if err != nil {
			// code is non-empty per the loop condition; getCode(0) cannot fail.
			panic(err)
		}

		switch hand.Kind() {
		case KindCatenate:
			if err := r.m.popCode(1); err != nil {
				panic(err)
			}
			r.m.pushCode(hand)

		case KindVariable:
			name, _ := hand.Name()
			binding, ok := r.dict.Lookup(name)
			if !ok {
				r.tracef("suspend: unresolved variable %q", name)
				r.m.thunk()
				return nil
			}
			r.tracef("resolve %q", name)
			if err := r.m.popCode(1); err != nil {
				panic(err)
			}
			r.m.pushCode(binding)

		case KindQuote, KindText:
			if err := r.m.popCode(1); err != nil {
				panic(err)
			}
			r.m.pushData(hand)

		case KindPrompt:
			r.tracef("suspend: prompt %q", hand.payload)
			r.m.thunk()
			return nil

		case KindConstant:
			name, _ := hand.Name()
			fn, ok := combinators[name]
			if !ok {
				return UnknownError{Name: name}
			}
			r.tracef("dispatch %s", name)
			if stop := fn(r); stop {
				return nil
			}
		}
	}
	return nil
}

// suspendCont thunks the current instruction and reports that the step
// loop should keep running: used by combinators whose suspension is not
// terminal (Copy, Drop, Swap, Cat, Abs, Pair).
func (r *reducer) suspendCont() bool {
	r.m.thunk()
	return false
}

// suspendStop thunks the current instruction and reports that the step
// loop should halt: used for terminal suspensions (App, Inl, Inr, Shift,
// Define, Delete, and -- via the Variable/Prompt cases in run -- unresolved
// names and Prompts).
func (r *reducer) suspendStop() bool {
	r.m.thunk()
	return true
}
