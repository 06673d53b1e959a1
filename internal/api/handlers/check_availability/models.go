package check_availability

import (
	"fmt"
	"net/url"
	"time"

	checkAvailability "github.com/m04kA/HMS-BookingService/internal/usecase/check_availability"
)

// AvailabilityResponse HTTP response model
type AvailabilityResponse struct {
	RoomID    int64              `json:"roomId"`
	Start     string             `json:"start"`
	End       string             `json:"end"`
	Available bool               `json:"available"`
	Conflicts []ConflictResponse `json:"conflicts"`
}

// ConflictResponse пересекающееся бронирование
type ConflictResponse struct {
	BookingID int64  `json:"bookingId"`
	Start     string `json:"start"`
	End       string `json:"end"`
	Status    string `json:"status"`
}

// parseQuery разбирает обязательные query-параметры from и to
func parseQuery(roomID int64, query url.Values) (*checkAvailability.Request, error) {
	fromStr := query.Get("from")
	toStr := query.Get("to")
	if fromStr == "" || toStr == "" {
		return nil, fmt.Errorf("from and to query parameters are required")
	}

	from, err := time.Parse(time.RFC3339Nano, fromStr)
	if err != nil {
		return nil, fmt.Errorf("invalid from timestamp: %w", err)
	}

	to, err := time.Parse(time.RFC3339Nano, toStr)
	if err != nil {
		return nil, fmt.Errorf("invalid to timestamp: %w", err)
	}

	return &checkAvailability.Request{
		RoomID: roomID,
		Start:  from,
		End:    to,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *checkAvailability.Response) *AvailabilityResponse {
	conflicts := make([]ConflictResponse, 0, len(resp.Conflicts))
	for _, c := range resp.Conflicts {
		conflicts = append(conflicts, ConflictResponse{
			BookingID: c.BookingID,
			Start:     c.Start.Format(time.RFC3339Nano),
			End:       c.End.Format(time.RFC3339Nano),
			Status:    c.Status,
		})
	}

	return &AvailabilityResponse{
		RoomID:    resp.RoomID,
		Start:     resp.Start.Format(time.RFC3339Nano),
		End:       resp.End.Format(time.RFC3339Nano),
		Available: resp.Available,
		Conflicts: conflicts,
	}
}
