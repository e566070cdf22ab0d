package uut

import (
	"time"

	"labtrace/internal/shared/biztime"
)

// Clock supplies the allocator's notion of "now". Injecting it keeps day
// bucketing deterministic in tests, which need to simulate day boundaries.
type Clock interface {
	Now() time.Time
}

// LabClock is the production clock: current UTC time, with day bucketing
// delegated to the lab timezone.
type LabClock struct{}

func NewLabClock() LabClock {
	return LabClock{}
}

func (LabClock) Now() time.Time {
	return biztime.NowUTC()
}

// FixedClock always returns the same instant. Test helper.
type FixedClock struct {
	Instant time.Time
}

func (c FixedClock) Now() time.Time {
	return c.Instant
}
