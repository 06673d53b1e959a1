package create_booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/HMS-BookingService/internal/domain"
	roomRepo "github.com/m04kA/HMS-BookingService/internal/infra/storage/room"
)

// UseCase use case создания бронирования с проверкой конфликтов.
// Гарантирует инвариант: для одного номера не существует двух активных
// бронирований с пересекающимися интервалами [start, end)
type UseCase struct {
	bookingRepo BookingRepository
	roomRepo    RoomRepository
	txManager   TransactionManager
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	roomRepo RoomRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		roomRepo:    roomRepo,
		txManager:   txManager,
		logger:      logger,
	}
}

// Execute выполняет use case создания бронирования
//
// Последовательность: валидация → выборка кандидатов → проверка
// пересечений → вставка. Выборка и вставка выполняются в сериализуемой
// транзакции с блокировкой кандидатов (FOR UPDATE) — без неё два
// конкурентных запроса могли бы оба пройти проверку и оба вставиться
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: room=%d, start=%s, end=%s, customer=%q",
		req.RoomID, req.Start.Format(time.RFC3339), req.End.Format(time.RFC3339), req.CustomerName)

	// 1. Валидация входных данных (до любого обращения к хранилищу)
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	requested := req.Range()

	var result *domain.Booking

	// 2. Выборка кандидатов, проверка конфликтов и вставка — в одной
	// сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 2.1. Проверяем, что номер существует и доступен для бронирования
		room, err := uc.roomRepo.GetByID(txCtx, req.RoomID)
		if err != nil {
			if errors.Is(err, roomRepo.ErrRoomNotFound) {
				uc.logger.Warn("CreateBooking: room id=%d not found", req.RoomID)
				return ErrRoomNotFound
			}
			uc.logger.Error("CreateBooking: failed to get room id=%d: %v", req.RoomID, err)
			return fmt.Errorf("%w: failed to get room: %v", ErrInternal, err)
		}

		if !room.IsBookable() {
			uc.logger.Warn("CreateBooking: room id=%d is not bookable, status=%s", room.ID, room.Status)
			return ErrRoomNotBookable
		}

		// 2.2. Получаем активные бронирования, пересекающие запрошенное окно
		// Выборка может вернуть больше, чем нужно — это допустимо,
		// фильтрация по номеру повторяется на нашей стороне
		candidates, err := uc.bookingRepo.FindOverlapping(txCtx, &req.RoomID, requested)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to fetch candidate bookings: %v", err)
			return fmt.Errorf("%w: failed to fetch candidate bookings: %v", ErrInternal, err)
		}

		// 2.3. Проверяем пересечение с каждым кандидатом того же номера
		if conflict := findConflict(requested, req.RoomID, candidates); conflict != nil {
			uc.logger.Warn("CreateBooking: conflict with booking id=%d on room=%d (%s - %s)",
				conflict.ID, req.RoomID,
				conflict.StartTime.Format(time.RFC3339), conflict.EndTime.Format(time.RFC3339))
			return ErrBookingConflict
		}

		// 2.4. Конфликтов нет — создаем бронирование
		status := domain.StatusConfirmed
		if req.Status != nil {
			status = *req.Status
		}

		booking := &domain.Booking{
			RoomID:       req.RoomID,
			StartTime:    req.Start,
			EndTime:      req.End,
			Status:       status,
			CustomerName: req.CustomerName,
			PilgrimageID: req.PilgrimageID,
			Notes:        req.Notes,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d", result.ID)

	return &Response{
		ID:           result.ID,
		RoomID:       result.RoomID,
		Start:        result.StartTime,
		End:          result.EndTime,
		Status:       string(result.Status),
		CustomerName: result.CustomerName,
		PilgrimageID: result.PilgrimageID,
		Notes:        result.Notes,
		CreatedAt:    result.CreatedAt,
		UpdatedAt:    result.UpdatedAt,
	}, nil
}
