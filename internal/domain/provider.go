package domain

import "time"

// Provider service professional (barber) whose time is scheduled
type Provider struct {
	ID        int64
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Service nominal service from the catalog
type Service struct {
	ID          int64
	Name        string
	Description *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// OfferedService service offered by a provider with the provider-specific duration
type OfferedService struct {
	ProviderID      int64
	ServiceID       int64
	ServiceName     string
	DurationMinutes int
	Price           *float64
}
