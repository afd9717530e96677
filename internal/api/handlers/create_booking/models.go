package create_booking

import (
	"time"

	"github.com/m04kA/SMC-BarberBookingService/internal/domain"
	createBooking "github.com/m04kA/SMC-BarberBookingService/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	ProviderID int64   `json:"providerId" validate:"required,gt=0"`
	ServiceIDs []int64 `json:"serviceIds" validate:"required,min=1,max=20,dive,gt=0"`
	Date       string  `json:"date" validate:"required,datetime=2006-01-02"`  // "2025-10-15"
	StartTime  string  `json:"startTime" validate:"required,datetime=15:04"` // "10:00"
	Notes      *string `json:"notes,omitempty" validate:"omitempty,max=1000"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID              int64   `json:"id"`
	ClientID        int64   `json:"clientId"`
	ProviderID      int64   `json:"providerId"`
	ProviderName    string  `json:"providerName"`
	ServiceIDs      []int64 `json:"serviceIds"`
	Date            string  `json:"date"`
	StartTime       string  `json:"startTime"`
	EndTime         string  `json:"endTime"`
	StartAt         string  `json:"startAt"`
	EndAt           string  `json:"endAt"`
	DurationMinutes int     `json:"durationMinutes"`
	Status          string  `json:"status"`
	Notes           *string `json:"notes,omitempty"`
	CreatedAt       string  `json:"createdAt"`
	UpdatedAt       string  `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case.
// Дата и время начала интерпретируются в часовом поясе салона loc.
func (r *CreateBookingRequest) ToUseCaseRequest(clientID int64, loc *time.Location) (*createBooking.Request, error) {
	start, err := time.ParseInLocation(domain.DateFormat+" "+domain.TimeFormat, r.Date+" "+r.StartTime, loc)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		ClientID:   clientID,
		ProviderID: r.ProviderID,
		ServiceIDs: r.ServiceIDs,
		Start:      start,
		Notes:      r.Notes,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:              resp.ID,
		ClientID:        resp.ClientID,
		ProviderID:      resp.ProviderID,
		ProviderName:    resp.ProviderName,
		ServiceIDs:      resp.ServiceIDs,
		Date:            resp.Date.Format(domain.DateFormat),
		StartTime:       resp.StartTime.String(),
		EndTime:         resp.EndTime.String(),
		StartAt:         resp.Start.Format(time.RFC3339),
		EndAt:           resp.End.Format(time.RFC3339),
		DurationMinutes: resp.DurationMinutes,
		Status:          resp.Status,
		Notes:           resp.Notes,
		CreatedAt:       resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       resp.UpdatedAt.Format(time.RFC3339),
	}
}
