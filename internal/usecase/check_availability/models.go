package check_availability

import "time"

// Request модель запроса на проверку доступности номера
type Request struct {
	RoomID int64     // ID номера
	Start  time.Time // Начало интервала
	End    time.Time // Конец интервала
}

// Response модель ответа с результатом проверки
type Response struct {
	RoomID    int64      // ID номера
	Start     time.Time  // Начало интервала
	End       time.Time  // Конец интервала
	Available bool       // Свободен ли номер на весь интервал
	Conflicts []Conflict // Активные бронирования, пересекающие интервал
}

// Conflict пересекающееся бронирование
type Conflict struct {
	BookingID int64     // ID бронирования
	Start     time.Time // Начало интервала бронирования
	End       time.Time // Конец интервала бронирования
	Status    string    // Статус бронирования
}
