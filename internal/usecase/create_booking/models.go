package create_booking

import (
	"time"

	"github.com/m04kA/SMC-BarberBookingService/pkg/types"
)

// Request модель запроса на создание бронирования
type Request struct {
	ClientID   int64     // ID клиента
	ProviderID int64     // ID мастера
	ServiceIDs []int64   // Набор услуг
	Start      time.Time // Начало бронирования
	Notes      *string   // Дополнительные заметки (опционально)
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID              int64            // ID созданного бронирования
	ClientID        int64            // ID клиента
	ProviderID      int64            // ID мастера
	ProviderName    string           // Имя мастера
	ServiceIDs      []int64          // Услуги
	Date            time.Time        // Дата бронирования
	StartTime       types.TimeString // Время начала
	EndTime         types.TimeString // Время окончания
	Start           time.Time        // Начало
	End             time.Time        // Окончание
	DurationMinutes int              // Длительность в минутах
	Status          string           // Статус бронирования
	Notes           *string          // Заметки

	CreatedAt time.Time // Время создания
	UpdatedAt time.Time // Время обновления
}
