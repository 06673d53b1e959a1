package get_room_bookings

import (
	"fmt"
	"net/url"
	"time"

	"github.com/m04kA/HMS-BookingService/internal/service/bookings/models"
)

// parseQuery разбирает query-параметры в модель сервиса
// Поддерживаются from, to (RFC 3339), status и includeCancelled
func parseQuery(roomID int64, query url.Values) (*models.GetRoomBookingsRequest, error) {
	req := &models.GetRoomBookingsRequest{RoomID: roomID}

	if v := query.Get("from"); v != "" {
		from, err := time.Parse(time.RFC3339Nano, v)
		if err != nil {
			return nil, fmt.Errorf("invalid from timestamp: %w", err)
		}
		req.From = &from
	}

	if v := query.Get("to"); v != "" {
		to, err := time.Parse(time.RFC3339Nano, v)
		if err != nil {
			return nil, fmt.Errorf("invalid to timestamp: %w", err)
		}
		req.To = &to
	}

	if v := query.Get("status"); v != "" {
		req.Status = &v
	}

	if v := query.Get("includeCancelled"); v == "true" {
		req.IncludeCancelled = true
	}

	return req, nil
}
