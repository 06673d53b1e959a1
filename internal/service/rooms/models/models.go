package models

import (
	"time"

	"github.com/m04kA/HMS-BookingService/internal/domain"
)

// Request модели

// CreateRoomRequest запрос на создание номера
type CreateRoomRequest struct {
	Name     string `json:"name"`
	Capacity *int   `json:"capacity,omitempty"`
}

// ToDomainRoom конвертирует request в domain модель
// Новый номер создается сразу в статусе active
func (r *CreateRoomRequest) ToDomainRoom() *domain.Room {
	return &domain.Room{
		Name:     r.Name,
		Capacity: r.Capacity,
		Status:   domain.RoomStatusActive,
	}
}

// UpdateRoomStatusRequest запрос на обновление статуса номера
type UpdateRoomStatusRequest struct {
	Status string `json:"status"`
}

// Response модели

// RoomResponse ответ с данными номера
type RoomResponse struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Capacity *int   `json:"capacity,omitempty"`
	Status   string `json:"status"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// RoomListResponse ответ со списком номеров
type RoomListResponse struct {
	Rooms []RoomResponse `json:"rooms"`
}

// FromDomainRoom конвертирует domain модель в DTO
func FromDomainRoom(r *domain.Room) *RoomResponse {
	if r == nil {
		return nil
	}
	return &RoomResponse{
		ID:        r.ID,
		Name:      r.Name,
		Capacity:  r.Capacity,
		Status:    string(r.Status),
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

// FromDomainRoomList конвертирует список domain моделей в DTO
func FromDomainRoomList(rooms []*domain.Room) *RoomListResponse {
	resp := &RoomListResponse{
		Rooms: make([]RoomResponse, 0, len(rooms)),
	}
	for _, r := range rooms {
		resp.Rooms = append(resp.Rooms, *FromDomainRoom(r))
	}
	return resp
}
