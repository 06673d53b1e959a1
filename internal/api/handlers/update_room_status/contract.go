package update_room_status

import (
	"context"

	"github.com/m04kA/HMS-BookingService/internal/service/rooms/models"
)

type RoomService interface {
	UpdateStatus(ctx context.Context, id int64, req *models.UpdateRoomStatusRequest) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
