package models

import (
	"errors"
	"time"

	"github.com/m04kA/HMS-BookingService/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid booking status")
)

// Request модели

// GetRoomBookingsRequest запрос на получение бронирований номера
type GetRoomBookingsRequest struct {
	RoomID           int64      `json:"roomId"`
	From             *time.Time `json:"from,omitempty"`             // Начало периода (опционально)
	To               *time.Time `json:"to,omitempty"`               // Конец периода (опционально)
	Status           *string    `json:"status,omitempty"`           // Фильтр по статусу (опционально)
	IncludeCancelled bool       `json:"includeCancelled,omitempty"` // Включить отменённые бронирования
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *GetRoomBookingsRequest) ToDomainFilter() (domain.BookingsFilter, error) {
	filter := domain.BookingsFilter{
		RoomID:           &r.RoomID,
		From:             r.From,
		To:               r.To,
		IncludeCancelled: r.IncludeCancelled,
	}

	if r.Status != nil {
		status, err := ToDomainBookingStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}

	return filter, nil
}

// UpdateStatusRequest запрос на обновление статуса бронирования
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// Response модели

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID           int64   `json:"id"`
	RoomID       int64   `json:"roomId"`
	Start        string  `json:"start"` // RFC 3339
	End          string  `json:"end"`   // RFC 3339
	Status       string  `json:"status"`
	CustomerName string  `json:"customerName"`
	PilgrimageID *int64  `json:"pilgrimageId,omitempty"`
	Notes        *string `json:"notes,omitempty"`
	CancelledAt  *string `json:"cancelledAt,omitempty"` // RFC 3339

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// Методы конвертации

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	resp := &BookingResponse{
		ID:           b.ID,
		RoomID:       b.RoomID,
		Start:        b.StartTime.Format(time.RFC3339Nano),
		End:          b.EndTime.Format(time.RFC3339Nano),
		Status:       string(b.Status),
		CustomerName: b.CustomerName,
		PilgrimageID: b.PilgrimageID,
		Notes:        b.Notes,
		CreatedAt:    b.CreatedAt,
		UpdatedAt:    b.UpdatedAt,
	}

	if b.CancelledAt != nil {
		cancelledAt := b.CancelledAt.Format(time.RFC3339Nano)
		resp.CancelledAt = &cancelledAt
	}

	return resp
}

// FromDomainBookingList конвертирует список domain моделей в DTO
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, 0, len(bookings)),
	}
	for _, b := range bookings {
		resp.Bookings = append(resp.Bookings, *FromDomainBooking(b))
	}
	return resp
}

// ToDomainBookingStatus валидирует и конвертирует строку в статус
func ToDomainBookingStatus(s string) (domain.BookingStatus, error) {
	status := domain.BookingStatus(s)
	if !domain.IsValidBookingStatus(status) {
		return "", ErrInvalidStatus
	}
	return status, nil
}
