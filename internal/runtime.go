package internal

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/AnatoleLucet/blaze/surface"
	"go.uber.org/multierr"
)

var ErrAlreadyMounted = errors.New("blaze: container already mounted")

type Options struct {
	Logger *slog.Logger

	// Schedule defers a flush past the current turn, like a microtask. Without it,
	// updates dispatched outside of a turn wait for the next turn or Flush call.
	Schedule func(task func())

	// OnError receives errors that have no caller to return to (event turns and
	// scheduled flushes).
	OnError func(error)

	// MaxPasses bounds the number of update passes a single flush may run.
	MaxPasses int

	// CleanupBeforeRerun runs an effect's previous cleanup before running it again.
	CleanupBeforeRerun bool
}

type Option func(*Options)

type Runtime struct {
	surface surface.Surface
	opts    Options
	log     *slog.Logger

	roots map[surface.Handle]*root

	tracker   *Tracker
	batcher   *Batcher
	scheduler *Scheduler
	updates   *UpdateQueue
	dirty     *DirtyHeap
}

func NewRuntime(s surface.Surface, opts ...Option) *Runtime {
	o := Options{
		Logger:    slog.Default(),
		MaxPasses: 100,
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.Logger == nil {
		o.Logger = slog.New(slog.DiscardHandler)
	}

	return &Runtime{
		surface: s,
		opts:    o,
		log:     o.Logger,

		roots: make(map[surface.Handle]*root),

		tracker:   NewTracker(),
		batcher:   NewBatcher(),
		scheduler: NewScheduler(),
		updates:   NewUpdateQueue(),
		dirty:     NewDirtyHeap(),
	}
}

func (r *Runtime) Surface() surface.Surface {
	return r.surface
}

// Render mounts node into container on the first call for that container and
// reconciles the mounted tree against node on later calls.
func (r *Runtime) Render(node Node, container surface.Handle) error {
	return r.batcher.Batch(func() error {
		rt, ok := r.roots[container]
		if !ok {
			r.log.Debug("blaze: mount", "kind", KindOf(node))
			return r.mount(node, container)
		}

		r.log.Debug("blaze: render", "kind", KindOf(node))
		err := r.update(rt.node, node, container, rt.base, rt, 0)
		rt.node = node
		return err
	}, r.Flush)
}

// Mount mounts node into a container this runtime doesn't manage yet.
func (r *Runtime) Mount(node Node, container surface.Handle) error {
	if _, ok := r.roots[container]; ok {
		return ErrAlreadyMounted
	}
	return r.Render(node, container)
}

// Unmount runs every effect cleanup of the tree mounted in container, removes its
// surface nodes and forgets the container.
func (r *Runtime) Unmount(container surface.Handle) error {
	rt, ok := r.roots[container]
	if !ok {
		return nil
	}

	return r.batcher.Batch(func() error {
		length := RunLength(rt.node)
		r.unmount(rt.node)

		for range length {
			r.surface.RemoveChildAt(container, rt.base)
		}
		delete(r.roots, container)

		r.log.Debug("blaze: unmount", "removed", length)
		return nil
	}, r.Flush)
}

// Mounted reports whether container holds a tree rendered by this runtime.
func (r *Runtime) Mounted(container surface.Handle) bool {
	_, ok := r.roots[container]
	return ok
}

// Pending returns the number of dispatched updates waiting for a flush.
func (r *Runtime) Pending() int {
	return r.updates.Len()
}

// Flush applies every queued update in dispatch order and re-renders each
// affected instance once, ancestors first. Updates dispatched while flushing
// (from effects) are handled by further passes.
func (r *Runtime) Flush() error {
	return r.scheduler.Run(func() error {
		var errs error
		passes, rerendered := 0, 0

		for r.updates.Len() > 0 {
			if passes >= r.opts.MaxPasses {
				r.updates.Clear()
				r.dirty.Drain(func(s *instanceState) { s.dirty = false })
				return multierr.Append(errs, fmt.Errorf("%w: %d passes", ErrUpdateLoop, passes))
			}
			passes++

			for _, m := range r.updates.Drain() {
				if m.apply() {
					m.state.dirty = true
					r.dirty.Insert(m.state)
				}
			}

			r.dirty.Drain(func(s *instanceState) {
				if !s.mounted || !s.dirty {
					return
				}
				rerendered++
				errs = multierr.Append(errs, r.rerender(s))
			})
		}

		r.log.Debug("blaze: flush", "passes", passes, "rerendered", rerendered)
		return errs
	})
}

func (r *Runtime) enqueue(m mutation) {
	if r.tracker.IsRendering() {
		r.log.Debug("blaze: update dispatched during render", "component", r.tracker.Current().Component())
	}

	r.updates.Enqueue(m)

	first := r.scheduler.Schedule()
	if !first || r.batcher.IsBatching() || r.scheduler.IsRunning() || r.opts.Schedule == nil {
		return
	}

	r.opts.Schedule(func() {
		if err := r.Flush(); err != nil {
			r.reportError(err)
		}
	})
}

func (r *Runtime) reportError(err error) {
	if r.opts.OnError != nil {
		r.opts.OnError(err)
		return
	}
	r.log.Error("blaze: update failed", "err", err)
}
