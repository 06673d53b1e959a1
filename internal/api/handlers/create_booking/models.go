package create_booking

import (
	"fmt"
	"time"

	"github.com/m04kA/HMS-BookingService/internal/domain"
	createBooking "github.com/m04kA/HMS-BookingService/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	RoomID       int64   `json:"roomId"`
	Start        string  `json:"start"` // RFC 3339, например "2025-10-10T14:00:00Z"
	End          string  `json:"end"`   // RFC 3339
	CustomerName string  `json:"customerName"`
	PilgrimageID *int64  `json:"pilgrimageId,omitempty"`
	Notes        *string `json:"notes,omitempty"`
	Status       *string `json:"status,omitempty"` // pending | confirmed, по умолчанию confirmed
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID           int64   `json:"id"`
	RoomID       int64   `json:"roomId"`
	Start        string  `json:"start"`
	End          string  `json:"end"`
	Status       string  `json:"status"`
	CustomerName string  `json:"customerName"`
	PilgrimageID *int64  `json:"pilgrimageId,omitempty"`
	Notes        *string `json:"notes,omitempty"`
	CreatedAt    string  `json:"createdAt"`
	UpdatedAt    string  `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
// Временные метки парсятся как RFC 3339 с сохранением субсекундной точности
func (r *CreateBookingRequest) ToUseCaseRequest() (*createBooking.Request, error) {
	start, err := time.Parse(time.RFC3339Nano, r.Start)
	if err != nil {
		return nil, fmt.Errorf("invalid start timestamp: %w", err)
	}

	end, err := time.Parse(time.RFC3339Nano, r.End)
	if err != nil {
		return nil, fmt.Errorf("invalid end timestamp: %w", err)
	}

	req := &createBooking.Request{
		RoomID:       r.RoomID,
		Start:        start,
		End:          end,
		CustomerName: r.CustomerName,
		PilgrimageID: r.PilgrimageID,
		Notes:        r.Notes,
	}

	if r.Status != nil {
		status := domain.BookingStatus(*r.Status)
		req.Status = &status
	}

	return req, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:           resp.ID,
		RoomID:       resp.RoomID,
		Start:        resp.Start.Format(time.RFC3339Nano),
		End:          resp.End.Format(time.RFC3339Nano),
		Status:       resp.Status,
		CustomerName: resp.CustomerName,
		PilgrimageID: resp.PilgrimageID,
		Notes:        resp.Notes,
		CreatedAt:    resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    resp.UpdatedAt.Format(time.RFC3339),
	}
}
