package thread

import "time"

// DeadlineTimer marks the point in time up to which an operation may
// block: never, after a relative duration, or at an absolute instant.
// The zero value is already expired.
type DeadlineTimer struct {
	deadline time.Time
	forever  bool
}

// Forever is a deadline that never expires.
var Forever = DeadlineTimer{forever: true}

// NewDeadlineTimer returns a timer expiring after the given duration.
// A zero or negative duration gives an already-expired timer.
func NewDeadlineTimer(remaining time.Duration) DeadlineTimer {
	return DeadlineTimer{deadline: time.Now().Add(remaining)}
}

// NewDeadlineTimerAt returns a timer expiring at the given instant.
func NewDeadlineTimerAt(t time.Time) DeadlineTimer {
	return DeadlineTimer{deadline: t}
}

func (t DeadlineTimer) IsForever() bool {
	return t.forever
}

func (t DeadlineTimer) HasExpired() bool {
	if t.forever {
		return false
	}
	return !time.Now().Before(t.deadline)
}

// Remaining reports the time left until the deadline, clamped at zero,
// or -1 for a forever timer. It is recomputed from the current clock
// on every call, so each retry of a blocking operation sees the time
// actually left rather than the original duration.
func (t DeadlineTimer) Remaining() time.Duration {
	if t.forever {
		return -1
	}
	d := time.Until(t.deadline)
	if d < 0 {
		d = 0
	}
	return d
}

// Deadline returns the absolute expiry instant. ok is false for a
// forever timer, whose expiry does not exist.
func (t DeadlineTimer) Deadline() (deadline time.Time, ok bool) {
	return t.deadline, !t.forever
}
