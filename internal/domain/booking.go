package domain

import "time"

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending    BookingStatus = "pending"
	StatusConfirmed  BookingStatus = "confirmed"
	StatusCancelled  BookingStatus = "cancelled"
	StatusCheckedIn  BookingStatus = "checked_in"
	StatusCheckedOut BookingStatus = "checked_out"
)

// Booking represents a room reservation in the system
type Booking struct {
	ID     int64
	RoomID int64

	// Интервал бронирования [StartTime, EndTime) — полуоткрытый,
	// конец не входит в интервал
	StartTime time.Time
	EndTime   time.Time

	Status BookingStatus

	CustomerName string
	PilgrimageID *int64 // ID группового заезда (опционально)
	Notes        *string

	CancelledAt *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Range returns the booked interval as a TimeRange
func (b *Booking) Range() TimeRange {
	return TimeRange{Start: b.StartTime, End: b.EndTime}
}

// IsActive returns true if the booking participates in conflict detection
// Отменённое бронирование никогда не блокирует номер
func (b *Booking) IsActive() bool {
	return b.Status != StatusCancelled
}

// IsCancelled returns true if the booking has been cancelled
func (b *Booking) IsCancelled() bool {
	return b.Status == StatusCancelled
}

// CanCheckIn returns true if the booking can transition to checked_in
func (b *Booking) CanCheckIn() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}

// CanCheckOut returns true if the booking can transition to checked_out
func (b *Booking) CanCheckOut() bool {
	return b.Status == StatusCheckedIn
}

// BookingsFilter фильтр для выборки бронирований
type BookingsFilter struct {
	RoomID           *int64         // Фильтр по номеру (опционально)
	PilgrimageID     *int64         // Фильтр по групповому заезду (опционально)
	From             *time.Time     // Начало окна выборки (опционально)
	To               *time.Time     // Конец окна выборки (опционально)
	Status           *BookingStatus // Фильтр по статусу (опционально)
	IncludeCancelled bool           // Включать ли отменённые бронирования
}
