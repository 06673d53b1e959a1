package check_availability

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/HMS-BookingService/internal/domain"
	roomRepo "github.com/m04kA/HMS-BookingService/internal/infra/storage/room"
)

// UseCase use case проверки доступности номера на интервал.
// Та же выборка и тот же предикат пересечения, что и при создании
// бронирования, но без вставки. Результат носит справочный характер:
// между проверкой и созданием бронирования номер может быть занят
type UseCase struct {
	bookingRepo BookingRepository
	roomRepo    RoomRepository
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(bookingRepo BookingRepository, roomRepo RoomRepository, logger Logger) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		roomRepo:    roomRepo,
		logger:      logger,
	}
}

// Execute выполняет use case проверки доступности
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CheckAvailability: room=%d, start=%s, end=%s",
		req.RoomID, req.Start.Format(time.RFC3339), req.End.Format(time.RFC3339))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CheckAvailability: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверяем существование номера
	if _, err := uc.roomRepo.GetByID(ctx, req.RoomID); err != nil {
		if errors.Is(err, roomRepo.ErrRoomNotFound) {
			uc.logger.Warn("CheckAvailability: room id=%d not found", req.RoomID)
			return nil, ErrRoomNotFound
		}
		uc.logger.Error("CheckAvailability: failed to get room id=%d: %v", req.RoomID, err)
		return nil, fmt.Errorf("%w: failed to get room: %v", ErrInternal, err)
	}

	requested := domain.TimeRange{Start: req.Start, End: req.End}

	// 3. Получаем активные бронирования, пересекающие запрошенное окно
	candidates, err := uc.bookingRepo.FindOverlapping(ctx, &req.RoomID, requested)
	if err != nil {
		uc.logger.Error("CheckAvailability: failed to fetch candidate bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to fetch candidate bookings: %v", ErrInternal, err)
	}

	// 4. Собираем все пересечения для того же номера
	conflicts := make([]Conflict, 0)
	for _, candidate := range candidates {
		if candidate.RoomID != req.RoomID {
			continue
		}
		if !candidate.IsActive() {
			continue
		}
		if candidate.Range().Overlaps(requested) {
			conflicts = append(conflicts, Conflict{
				BookingID: candidate.ID,
				Start:     candidate.StartTime,
				End:       candidate.EndTime,
				Status:    string(candidate.Status),
			})
		}
	}

	uc.logger.Info("CheckAvailability: room=%d available=%t conflicts=%d",
		req.RoomID, len(conflicts) == 0, len(conflicts))

	return &Response{
		RoomID:    req.RoomID,
		Start:     req.Start,
		End:       req.End,
		Available: len(conflicts) == 0,
		Conflicts: conflicts,
	}, nil
}

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.RoomID <= 0 {
		return fmt.Errorf("%w: roomID must be positive", ErrInvalidInput)
	}
	if req.Start.IsZero() {
		return fmt.Errorf("%w: start is required", ErrInvalidInput)
	}
	if req.End.IsZero() {
		return fmt.Errorf("%w: end is required", ErrInvalidInput)
	}
	if !req.Start.Before(req.End) {
		return ErrInvalidRange
	}
	return nil
}
