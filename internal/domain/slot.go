package domain

import "github.com/m04kA/SMC-BarberBookingService/pkg/types"

// Slot represents a bookable time slot on one calendar date
type Slot struct {
	Interval        TimeInterval
	StartTime       types.TimeString
	EndTime         types.TimeString
	DurationMinutes int
}

// NewSlot builds a slot from an interval
func NewSlot(interval TimeInterval) Slot {
	return Slot{
		Interval:        interval,
		StartTime:       types.NewTimeString(interval.Start),
		EndTime:         types.NewEndTimeString(interval.Start, interval.End),
		DurationMinutes: interval.DurationMinutes(),
	}
}

// ProviderSlot slot of a concrete provider (multi-provider availability)
type ProviderSlot struct {
	Slot
	ProviderID   int64
	ProviderName string
}
