package booking

import (
	"errors"
	"time"
)

var (
	ErrInvalidPeriod = errors.New("end time must be after start time")
	ErrPeriodInPast  = errors.New("start time cannot be in the past")
)

// Period is a half-open interval [start, end). A booking ending at 10:00 and
// one starting at 10:00 are compatible.
type Period struct {
	start time.Time
	end   time.Time
}

func NewPeriod(start, end time.Time, now time.Time) (Period, error) {
	if !end.After(start) {
		return Period{}, ErrInvalidPeriod
	}
	if start.Before(now) {
		return Period{}, ErrPeriodInPast
	}
	return Period{start: start, end: end}, nil
}

// ReconstructPeriod builds a period from stored rows, skipping the
// future-start validation that only applies to new input.
func ReconstructPeriod(start, end time.Time) Period {
	return Period{start: start, end: end}
}

func (p Period) Start() time.Time {
	return p.start
}

func (p Period) End() time.Time {
	return p.end
}

func (p Period) Duration() time.Duration {
	return p.end.Sub(p.start)
}

func (p Period) Overlaps(other Period) bool {
	return p.start.Before(other.end) && p.end.After(other.start)
}

// Hours is the billable duration: partial hours round up.
func (p Period) Hours() int64 {
	d := p.Duration()
	hours := int64(d / time.Hour)
	if d%time.Hour > 0 {
		hours++
	}
	return hours
}
