package observer

import "sync/atomic"

// Sequence hands out 1, 2, 3, ... and never reuses a number.
type Sequence struct {
	last atomic.Int64
}

func (s *Sequence) Next() int {
	return int(s.last.Add(1))
}
