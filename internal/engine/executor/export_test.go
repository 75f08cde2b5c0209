package executor

import "time"

// SetClock replaces the clock used for RecordedAt.
func (e *Executor) SetClock(now func() time.Time) {
	e.now = now
}
