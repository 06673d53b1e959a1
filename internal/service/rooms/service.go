package rooms

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/HMS-BookingService/internal/domain"
	roomRepo "github.com/m04kA/HMS-BookingService/internal/infra/storage/room"
	"github.com/m04kA/HMS-BookingService/internal/service/rooms/models"
)

// Service сервис для администрирования номеров
type Service struct {
	roomRepo RoomRepository
	logger   Logger
}

// NewService создает новый экземпляр сервиса номеров
func NewService(roomRepo RoomRepository, logger Logger) *Service {
	return &Service{
		roomRepo: roomRepo,
		logger:   logger,
	}
}

// Create создает новый номер
func (s *Service) Create(ctx context.Context, req *models.CreateRoomRequest) (*models.RoomResponse, error) {
	s.logger.Info("Create: creating room name=%q", req.Name)

	if strings.TrimSpace(req.Name) == "" {
		s.logger.Warn("Create: empty room name")
		return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if req.Capacity != nil && *req.Capacity <= 0 {
		s.logger.Warn("Create: non-positive capacity for room name=%q", req.Name)
		return nil, fmt.Errorf("%w: capacity must be positive", ErrInvalidInput)
	}

	created, err := s.roomRepo.Create(ctx, req.ToDomainRoom())
	if err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully created room id=%d", created.ID)
	return models.FromDomainRoom(created), nil
}

// GetByID получает номер по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.RoomResponse, error) {
	s.logger.Info("GetByID: fetching room id=%d", id)

	room, err := s.roomRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, roomRepo.ErrRoomNotFound) {
			s.logger.Warn("GetByID: room id=%d not found", id)
			return nil, ErrRoomNotFound
		}
		s.logger.Error("GetByID: repository error for room id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainRoom(room), nil
}

// List получает список номеров с опциональной фильтрацией по статусу
func (s *Service) List(ctx context.Context, status *string) (*models.RoomListResponse, error) {
	s.logger.Info("List: fetching rooms")

	filter := domain.RoomsFilter{}
	if status != nil {
		roomStatus := domain.RoomStatus(*status)
		if !domain.IsValidRoomStatus(roomStatus) {
			s.logger.Warn("List: invalid status filter %q", *status)
			return nil, ErrInvalidStatus
		}
		filter.Status = &roomStatus
	}

	rooms, err := s.roomRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d rooms", len(rooms))
	return models.FromDomainRoomList(rooms), nil
}

// UpdateStatus обновляет статус номера
// Существующие бронирования не затрагиваются: вывод номера из эксплуатации
// блокирует только создание новых бронирований
func (s *Service) UpdateStatus(ctx context.Context, id int64, req *models.UpdateRoomStatusRequest) error {
	s.logger.Info("UpdateStatus: updating room id=%d to status=%s", id, req.Status)

	status := domain.RoomStatus(req.Status)
	if !domain.IsValidRoomStatus(status) {
		s.logger.Warn("UpdateStatus: invalid status=%s for room id=%d", req.Status, id)
		return ErrInvalidStatus
	}

	if err := s.roomRepo.UpdateStatus(ctx, id, status); err != nil {
		if errors.Is(err, roomRepo.ErrRoomNotFound) {
			s.logger.Warn("UpdateStatus: room id=%d not found", id)
			return ErrRoomNotFound
		}
		s.logger.Error("UpdateStatus: repository error for room id=%d: %v", id, err)
		return fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateStatus: successfully updated room id=%d to status=%s", id, status)
	return nil
}
