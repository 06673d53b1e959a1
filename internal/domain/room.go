package domain

import "time"

// RoomStatus represents the lifecycle status of a room
type RoomStatus string

const (
	RoomStatusActive      RoomStatus = "active"
	RoomStatusMaintenance RoomStatus = "maintenance"
	RoomStatusInactive    RoomStatus = "inactive"
)

// Room represents a bookable unit (hotel room)
type Room struct {
	ID       int64
	Name     string
	Capacity *int // Вместимость (опционально)
	Status   RoomStatus

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsBookable returns true if new bookings can be created for the room
func (r *Room) IsBookable() bool {
	return r.Status == RoomStatusActive
}

// RoomsFilter фильтр для выборки номеров
type RoomsFilter struct {
	Status *RoomStatus // Фильтр по статусу (опционально)
}
