package slider

import "time"

type entry struct {
	at  time.Duration
	run func(now time.Duration)
}

// schedule holds deferred actions that fire on the first frame at or after
// their time. Entries run in the order they were added.
type schedule struct {
	entries []*entry
}

func (s *schedule) at(t time.Duration, run func(now time.Duration)) {
	s.entries = append(s.entries, &entry{at: t, run: run})
}

func (s *schedule) advance(now time.Duration) {
	for len(s.entries) > 0 && s.entries[0].at <= now {
		e := s.entries[0]
		s.entries = s.entries[1:]
		e.run(now)
	}
}

func (s *schedule) clear() {
	s.entries = nil
}

func (s *schedule) pending() int {
	return len(s.entries)
}
