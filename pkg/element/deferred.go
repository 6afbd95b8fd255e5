package element

import "context"

// Deferred is an element value that is not yet available. Await blocks until
// the value arrives, the producer fails, or ctx is done.
type Deferred interface {
	Await(ctx context.Context) (any, error)
}

type future struct {
	done chan struct{}
	val  any
	err  error
}

func (f *future) Await(ctx context.Context) (any, error) {
	select {
	case <-f.done:
		return f.val, f.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Go starts produce in its own goroutine and returns a Deferred for its
// result. The goroutine runs regardless of whether anyone awaits it.
func Go(produce func() (any, error)) Deferred {
	f := &future{done: make(chan struct{})}
	go func() {
		f.val, f.err = produce()
		close(f.done)
	}()
	return f
}

// Resolved returns a Deferred whose value is already available.
func Resolved(v any) Deferred {
	f := &future{done: make(chan struct{}), val: v}
	close(f.done)
	return f
}

// Failed returns a Deferred that fails with err.
func Failed(err error) Deferred {
	f := &future{done: make(chan struct{}), err: err}
	close(f.done)
	return f
}
