package diag

import "sync"

// Counters mirrors the Document aggregate's diagnostic tally (§3): errors,
// warnings, access, config, document, and info counts.
type Counters struct {
	Errors   int
	Warnings int
	Access   int
	Config   int
	Document int
	Info     int
}

// ExitCode computes the user-visible exit code (§7): 0 clean, 1 only
// warnings, 2 any error.
func (c Counters) ExitCode() int {
	switch {
	case c.Errors > 0:
		return 2
	case c.Warnings > 0:
		return 1
	default:
		return 0
	}
}

// CountingSink wraps a downstream Sink and maintains Counters alongside
// forwarding every Report, so a caller can both log diagnostics and make
// force-output/exit-code decisions on the tallies (§6, §7).
type CountingSink struct {
	mu       sync.Mutex
	Counters Counters
	next     Sink
}

// NewCountingSink wraps next. A nil next drops reports after counting them.
func NewCountingSink(next Sink) *CountingSink {
	if next == nil {
		next = DiscardSink{}
	}
	return &CountingSink{next: next}
}

// Emit implements Sink: updates the matching counter, then forwards r.
func (s *CountingSink) Emit(r Report) {
	s.mu.Lock()
	switch r.Level {
	case Error, BadDocument:
		s.Counters.Errors++
	case Warning:
		s.Counters.Warnings++
	case Access:
		s.Counters.Access++
	case Config:
		s.Counters.Config++
	case Info:
		s.Counters.Info++
	case Fatal:
		s.Counters.Document++
	}
	s.mu.Unlock()
	s.next.Emit(r)
}

// Snapshot returns a copy of the current counters.
func (s *CountingSink) Snapshot() Counters {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.Counters
}
