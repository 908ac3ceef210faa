package internal

// DirtyHeap buckets dirty instances by depth so that a flush re-renders
// ancestors before their descendants.
type DirtyHeap struct {
	min int
	max int

	buckets []*heapEntry // [depth]head

	lookup map[*instanceState]*heapEntry // for O(1) removal
}

type heapEntry struct {
	state *instanceState
	depth int

	next *heapEntry
	prev *heapEntry
}

func NewDirtyHeap() *DirtyHeap {
	return &DirtyHeap{
		buckets: make([]*heapEntry, 16),
		lookup:  make(map[*instanceState]*heapEntry),
	}
}

func (h *DirtyHeap) Len() int {
	return len(h.lookup)
}

func (h *DirtyHeap) Insert(s *instanceState) {
	if s.inHeap {
		return
	}
	s.inHeap = true

	depth := s.depth
	entry := &heapEntry{state: s, depth: depth}
	h.lookup[s] = entry

	for depth >= len(h.buckets) {
		h.buckets = append(h.buckets, make([]*heapEntry, len(h.buckets))...)
	}

	if h.buckets[depth] == nil {
		h.buckets[depth] = entry
		entry.prev = entry // loop to self
	} else {
		head := h.buckets[depth]
		tail := head.prev

		tail.next = entry
		entry.prev = tail
		head.prev = entry
	}

	if depth > h.max {
		h.max = depth
	}
}

func (h *DirtyHeap) Remove(s *instanceState) {
	if !s.inHeap {
		return
	}
	s.inHeap = false

	entry, ok := h.lookup[s]
	if !ok {
		return
	}
	delete(h.lookup, s)

	depth := entry.depth
	head := h.buckets[depth]

	// single entry
	if entry.prev == entry {
		h.buckets[depth] = nil
		entry.next = nil
		return
	}

	if entry == head {
		h.buckets[depth] = entry.next
	} else {
		entry.prev.next = entry.next
	}

	next := entry.next
	if next == nil {
		next = h.buckets[depth]
	}
	next.prev = entry.prev

	entry.prev = entry
	entry.next = nil
}

// Drain hands every entry to process, shallowest first and in insertion order
// within a depth, leaving the heap empty.
func (h *DirtyHeap) Drain(process func(*instanceState)) {
	for h.min = 0; h.min <= h.max; h.min++ {
		for entry := h.buckets[h.min]; entry != nil; entry = h.buckets[h.min] {
			h.Remove(entry.state)
			process(entry.state)
		}
	}

	h.min = 0
	h.max = 0
}
