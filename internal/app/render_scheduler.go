package app

import (
	"time"

	tea "charm.land/bubbletea/v2"
)

type tickFunc func(time.Duration, func(time.Time) tea.Msg) tea.Cmd

// tickScheduler runs slider callbacks on the bubbletea loop. After only
// queues a command; Update hands the queue to the runtime once the message
// it is handling has been reduced, and the callback runs when the
// resulting scheduledTickMsg comes back through Update.
type tickScheduler struct {
	tick    tickFunc
	pending []tea.Cmd
}

func newTickScheduler(tick tickFunc) *tickScheduler {
	if tick == nil {
		tick = tea.Tick
	}
	return &tickScheduler{tick: tick}
}

func (s *tickScheduler) After(d time.Duration, fn func()) {
	if fn == nil {
		return
	}
	s.pending = append(s.pending, s.tick(d, func(time.Time) tea.Msg {
		return scheduledTickMsg{run: fn}
	}))
}

func (s *tickScheduler) Pending() int {
	return len(s.pending)
}

func (s *tickScheduler) flush() tea.Cmd {
	if len(s.pending) == 0 {
		return nil
	}
	cmds := s.pending
	s.pending = nil
	return tea.Batch(cmds...)
}
