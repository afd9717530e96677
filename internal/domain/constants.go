package domain

// Default configuration values
const (
	DefaultSlotIncrementMinutes = 15
)

// Business validation constants
const (
	MinSlotIncrementMinutes = 5
	MaxSlotIncrementMinutes = 240
	MaxServicesPerBooking   = 20
	MaxNotesLength          = 1000
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// NonBlockingStatuses statuses excluded from conflict detection
var NonBlockingStatuses = []BookingStatus{
	StatusCancelled,
	StatusNoShow,
}

// UpcomingStatuses statuses of bookings that may still be cancelled by the client
var UpcomingStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
	StatusInProgress,
}
