package internal

import "go.uber.org/multierr"

// Batcher tracks turns. Turns nest, updates dispatched while one is open are
// flushed once, when the outermost turn ends.
type Batcher struct {
	depth int
}

func NewBatcher() *Batcher {
	return &Batcher{}
}

func (b *Batcher) IsBatching() bool {
	return b.depth > 0
}

// Batch runs fn as a turn and calls onComplete if it was the outermost one.
// onComplete also runs when fn panics, the panic is re-raised afterwards.
func (b *Batcher) Batch(fn func() error, onComplete func() error) (err error) {
	b.depth++
	defer func() {
		b.depth--
		if b.depth == 0 && onComplete != nil {
			err = multierr.Append(err, onComplete())
		}
	}()

	return fn()
}

// Batch runs fn as a single turn: every update dispatched inside it, including
// from nested batches, results in at most one re-render per affected instance.
func (r *Runtime) Batch(fn func()) error {
	return r.batcher.Batch(func() error {
		fn()
		return nil
	}, r.Flush)
}
