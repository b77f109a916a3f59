// Package shiftcat implements a rewriting interpreter for a small
// concatenative combinator language.
//
// A program is a Value: the empty program (Id), a primitive Constant, a
// dictionary Variable, a sequence (Catenate), a deferred program (Quote), a
// string literal (Text), or an opaque natural-language message (Prompt).
// Read parses program text into a Value; String renders one back. Evaluate
// reduces a Value under a three-stack machine (code, data, sink) until code
// is empty or gas runs out. Where an instruction cannot reduce, the
// offending instruction and whatever data accompanies it are thunked into
// the sink rather than failing outright; reduction then halts, except after
// a stack-starved Copy, Drop, Swap, Cat, Abs or Pair, where it continues
// with the remaining code.
//
// The thirteen primitive combinators, Dictionary mutation via Define and
// Delete, and delimited control via Shift and Reset are described on their
// implementations in primitives.go; this package makes no attempt at type-checking,
// definition garbage collection, or a termination guarantee beyond the gas
// bound -- those are left to whatever embeds it.
//
// Worker and Session adapt Evaluate into a long-running, per-client
// service: one Dictionary per Worker, isolated from panics and abandoned
// goroutines, fed programs over a line-oriented net.Listener transport.
package shiftcat
