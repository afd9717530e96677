package domain

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidRange возвращается, если начало интервала не раньше конца
var ErrInvalidRange = errors.New("domain: invalid time range")

// TimeInterval half-open time range [Start, End)
type TimeInterval struct {
	Start time.Time
	End   time.Time
}

// NewTimeInterval creates an interval, start must be strictly before end
func NewTimeInterval(start, end time.Time) (TimeInterval, error) {
	if !start.Before(end) {
		return TimeInterval{}, fmt.Errorf("%w: start=%s end=%s",
			ErrInvalidRange, start.Format(time.RFC3339), end.Format(time.RFC3339))
	}
	return TimeInterval{Start: start, End: end}, nil
}

// NewTimeIntervalFromDuration creates [start, start+minutes)
func NewTimeIntervalFromDuration(start time.Time, minutes int) (TimeInterval, error) {
	return NewTimeInterval(start, start.Add(time.Duration(minutes)*time.Minute))
}

// Overlaps reports whether two half-open intervals share any instant.
// Touching endpoints do not overlap: [10:00,10:30) and [10:30,11:00) are disjoint.
//
// This is the only overlap predicate in the service; slot generation and
// booking validation both go through it.
func Overlaps(a, b TimeInterval) bool {
	return a.Start.Before(b.End) && a.End.After(b.Start)
}

// OverlapsAny reports whether candidate overlaps at least one of the intervals
func OverlapsAny(candidate TimeInterval, intervals []TimeInterval) bool {
	for _, other := range intervals {
		if Overlaps(candidate, other) {
			return true
		}
	}
	return false
}

// Contains reports whether inner lies fully within i (bounds inclusive)
func (i TimeInterval) Contains(inner TimeInterval) bool {
	return !inner.Start.Before(i.Start) && !inner.End.After(i.End)
}

// Duration returns End - Start
func (i TimeInterval) Duration() time.Duration {
	return i.End.Sub(i.Start)
}

// DurationMinutes returns the interval length in whole minutes
func (i TimeInterval) DurationMinutes() int {
	return int(i.Duration() / time.Minute)
}
