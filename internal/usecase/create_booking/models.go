package create_booking

import (
	"time"

	"github.com/m04kA/HMS-BookingService/internal/domain"
)

// Request модель запроса на создание бронирования
type Request struct {
	RoomID       int64                 // ID номера
	Start        time.Time             // Начало интервала (входит в бронирование)
	End          time.Time             // Конец интервала (не входит в бронирование)
	CustomerName string                // Имя гостя
	PilgrimageID *int64                // ID группового заезда (опционально)
	Notes        *string               // Заметки (опционально)
	Status       *domain.BookingStatus // Начальный статус (опционально, по умолчанию confirmed)
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID           int64     // ID созданного бронирования
	RoomID       int64     // ID номера
	Start        time.Time // Начало интервала
	End          time.Time // Конец интервала
	Status       string    // Статус бронирования
	CustomerName string    // Имя гостя
	PilgrimageID *int64    // ID группового заезда
	Notes        *string   // Заметки
	CreatedAt    time.Time // Время создания
	UpdatedAt    time.Time // Время обновления
}
