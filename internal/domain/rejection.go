package domain

// RejectionReason stable machine-readable code of a rejected booking request
type RejectionReason string

const (
	RejectionOutsideWorkingHours    RejectionReason = "OUTSIDE_WORKING_HOURS"
	RejectionPastTime               RejectionReason = "PAST_TIME"
	RejectionBookingConflict        RejectionReason = "BOOKING_CONFLICT"
	RejectionUnavailabilityConflict RejectionReason = "UNAVAILABILITY_CONFLICT"
)

// Error codes exposed to API clients
const (
	CodeInvalidRange     = "INVALID_RANGE"
	CodeInvalidDuration  = "INVALID_DURATION"
	CodeProviderNotFound = "PROVIDER_NOT_FOUND"
	CodeServiceNotFound  = "SERVICE_NOT_FOUND"
	CodeBookingNotFound  = "BOOKING_NOT_FOUND"
	CodeUnauthorized     = "UNAUTHORIZED"
	CodeNotCancellable   = "NOT_CANCELLABLE"
	CodeInvalidRequest   = "INVALID_REQUEST"
	CodeRateLimited      = "RATE_LIMITED"
	CodeInternal         = "INTERNAL_ERROR"
)

// Message human-readable description of the reason
func (r RejectionReason) Message() string {
	switch r {
	case RejectionOutsideWorkingHours:
		return "the requested time is outside the provider's working hours"
	case RejectionPastTime:
		return "the requested time is in the past"
	case RejectionBookingConflict:
		return "the requested time conflicts with an existing booking"
	case RejectionUnavailabilityConflict:
		return "the provider is unavailable at the requested time"
	default:
		return "the requested time is not available"
	}
}

func (r RejectionReason) String() string {
	return string(r)
}
