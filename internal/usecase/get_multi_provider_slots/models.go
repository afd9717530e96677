package get_multi_provider_slots

import (
	"time"

	"github.com/m04kA/SMC-BarberBookingService/pkg/types"
)

// Request модель запроса слотов по всем совместимым мастерам
type Request struct {
	Date       time.Time // Дата (без времени)
	ServiceIDs []int64   // Набор услуг
}

// Response модель ответа
type Response struct {
	Date                time.Time  // Дата
	CompatibleProviders []Provider // Мастера, оказывающие весь набор услуг, по ID
	Slots               []Slot     // Слоты всех мастеров по времени начала, затем по ID мастера
}

// Provider совместимый мастер
type Provider struct {
	ID                   int64
	Name                 string
	TotalDurationMinutes int // Длительность набора услуг у этого мастера
}

// Slot слот конкретного мастера
type Slot struct {
	ProviderID      int64
	ProviderName    string
	StartTime       types.TimeString
	EndTime         types.TimeString
	Start           time.Time
	End             time.Time
	DurationMinutes int
}
