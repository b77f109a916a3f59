package shiftcat

import (
	"context"
	"fmt"

	"github.com/shiftcat/shiftcat/internal/panicerr"
)

// Worker serializes Evaluate calls against one Dictionary, isolating each
// call from panics and abandoned goroutines: a crash evaluating one
// client's program must never reach another client's dictionary, which
// pinning one Dictionary per Worker plus running every call through
// panicerr.Recover guarantees.
type Worker struct {
	Dict *Dictionary
	Gas  int
	Logf func(mess string, args ...interface{})

	reqs chan request
	done chan struct{}
}

type request struct {
	init  interface{}
	reply chan<- result
}

type result struct {
	value Value
	err   error
}

// NewWorker returns a Worker with its own empty Dictionary, ready for Start.
func NewWorker() *Worker {
	return &Worker{Dict: NewDictionary(), reqs: make(chan request), done: make(chan struct{})}
}

// Start runs the worker's serve loop, one Evaluate call at a time, until ctx
// is done. Start must be called exactly once, and blocks until it returns.
func (w *Worker) Start(ctx context.Context) error {
	defer close(w.done)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case req := <-w.reqs:
			req.reply <- w.evalOne(req.init)
		}
	}
}

// Eval submits init -- a Value or source text -- for evaluation against the
// worker's Dictionary, and blocks for the result or until ctx is done.
func (w *Worker) Eval(ctx context.Context, init interface{}) (Value, error) {
	reply := make(chan result, 1)
	select {
	case w.reqs <- request{init: init, reply: reply}:
	case <-ctx.Done():
		return Value{}, ctx.Err()
	case <-w.done:
		return Value{}, fmt.Errorf("shiftcat: worker stopped")
	}
	select {
	case res := <-reply:
		return res.value, res.err
	case <-ctx.Done():
		return Value{}, ctx.Err()
	}
}

// evalOne runs one Evaluate call isolated in its own goroutine, so that a
// panic or runtime.Goexit reaching up through it surfaces as an error
// instead of taking the worker's serve loop down with it.
func (w *Worker) evalOne(init interface{}) result {
	var res result
	opts := []Option{WithDictionary(w.Dict)}
	if w.Gas > 0 {
		opts = append(opts, WithGas(w.Gas))
	}
	if w.Logf != nil {
		opts = append(opts, WithLogf(w.Logf))
	}
	err := panicerr.Recover("evaluate", func() error {
		v, err := Evaluate(init, opts...)
		res.value = v
		return err
	})
	if err != nil {
		res.err = err
	}
	return res
}
