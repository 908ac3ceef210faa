package internal

type Scheduler struct {
	// incremented each time the scheduler is flushed
	clock int

	// set by the first dispatch since the last flush
	scheduled bool
	running   bool
}

func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// Schedule marks a flush as needed and reports whether it was the first request
// since the last flush.
func (s *Scheduler) Schedule() bool {
	first := !s.scheduled
	s.scheduled = true
	return first
}

// Run calls fn if a flush was scheduled and none is running. Requests made while
// fn runs are expected to be handled by fn itself.
func (s *Scheduler) Run(fn func() error) error {
	if s.running || !s.scheduled {
		return nil
	}

	s.running = true
	defer func() {
		s.scheduled = false
		s.running = false
		s.clock++
	}()

	return fn()
}

func (s *Scheduler) IsScheduled() bool {
	return s.scheduled
}

func (s *Scheduler) IsRunning() bool {
	return s.running
}

func (s *Scheduler) Time() int {
	return s.clock
}
