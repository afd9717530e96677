package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-BarberBookingService/pkg/types"
)

// Request модель запроса на получение доступных слотов
type Request struct {
	ProviderID int64     // ID мастера
	Date       time.Time // Дата (без времени)
	ServiceIDs []int64   // Набор услуг
}

// Response модель ответа со списком доступных слотов
type Response struct {
	ProviderID           int64     // ID мастера
	Date                 time.Time // Дата, на которую запрашивались слоты
	TotalDurationMinutes int       // Суммарная длительность услуг
	Slots                []Slot    // Слоты, упорядоченные по времени начала
}

// Slot модель временного слота
type Slot struct {
	StartTime       types.TimeString // Время начала слота (например, "10:00")
	EndTime         types.TimeString // Время окончания слота
	Start           time.Time        // Начало слота
	End             time.Time        // Окончание слота
	DurationMinutes int              // Длительность слота в минутах
}
