package domain

import (
	"time"

	"github.com/m04kA/SMC-BarberBookingService/pkg/types"
)

// WorkingHours weekly working hours template of a provider for one day of week
type WorkingHours struct {
	ID                   int64
	ProviderID           int64
	DayOfWeek            time.Weekday
	StartTime            types.TimeString
	EndTime              types.TimeString
	SlotIncrementMinutes int
	IsAvailable          bool
}

// WorkingWindow working hours resolved for a concrete calendar date
type WorkingWindow struct {
	ProviderID           int64
	Date                 time.Time
	DayOfWeek            time.Weekday
	Start                types.TimeString
	End                  types.TimeString
	SlotIncrementMinutes int
	IsOpen               bool
}

// Bounds returns the absolute window on Date
func (w WorkingWindow) Bounds() TimeInterval {
	return TimeInterval{
		Start: w.Start.OnDate(w.Date),
		End:   w.End.OnDate(w.Date),
	}
}

// Increment returns the slot grid step
func (w WorkingWindow) Increment() time.Duration {
	return time.Duration(w.SlotIncrementMinutes) * time.Minute
}

// Unavailability ad-hoc period when the provider does not accept bookings
type Unavailability struct {
	ID         int64
	ProviderID int64
	Interval   TimeInterval
	Reason     *string
}

// DayBounds returns [00:00 of date, 00:00 of next day) in date's location
func DayBounds(date time.Time) TimeInterval {
	start := StartOfDay(date)
	return TimeInterval{Start: start, End: start.AddDate(0, 0, 1)}
}

// StartOfDay truncates t to midnight in its location
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// IsSameDay returns true if both instants fall on the same calendar date
func IsSameDay(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
