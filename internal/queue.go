package internal

// mutation is a dispatched state update waiting for the next flush.
type mutation struct {
	state   *instanceState
	cell    *hook
	reducer Reducer
	action  any
}

// apply runs the reducer against the cell's current value and reports whether the
// value changed. Mutations for unmounted instances are dropped.
func (m mutation) apply() bool {
	if !m.state.mounted {
		return false
	}

	next := m.reducer(m.cell.current, m.action)

	m.cell.previous = m.cell.current
	m.cell.current = next

	return !SameValue(m.cell.previous, next)
}

// UpdateQueue holds dispatched mutations in FIFO order.
type UpdateQueue struct {
	pending []mutation
}

func NewUpdateQueue() *UpdateQueue {
	return &UpdateQueue{
		pending: make([]mutation, 0),
	}
}

func (q *UpdateQueue) Enqueue(m mutation) {
	q.pending = append(q.pending, m)
}

func (q *UpdateQueue) Len() int {
	return len(q.pending)
}

// Drain returns the queued mutations and empties the queue.
func (q *UpdateQueue) Drain() []mutation {
	pending := q.pending
	q.pending = make([]mutation, 0, len(pending))
	return pending
}

func (q *UpdateQueue) Clear() {
	q.pending = q.pending[:0]
}
