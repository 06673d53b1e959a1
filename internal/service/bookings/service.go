package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/HMS-BookingService/internal/domain"
	bookingRepo "github.com/m04kA/HMS-BookingService/internal/infra/storage/booking"
	"github.com/m04kA/HMS-BookingService/internal/service/bookings/models"
)

// Service сервис для работы с бронированиями
type Service struct {
	bookingRepo BookingRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(bookingRepo BookingRepository, logger Logger) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

// GetByID получает бронирование по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%d", id)

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%d not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainBooking(booking), nil
}

// GetByRoom получает бронирования номера с фильтрацией по периоду и статусу
func (s *Service) GetByRoom(ctx context.Context, req *models.GetRoomBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("GetByRoom: fetching bookings for room=%d", req.RoomID)

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("GetByRoom: invalid filter for room=%d: %v", req.RoomID, err)
		return nil, fmt.Errorf("%w: invalid filter", ErrInvalidInput)
	}

	bookings, err := s.bookingRepo.ListWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("GetByRoom: repository error for room=%d: %v", req.RoomID, err)
		return nil, fmt.Errorf("%w: GetByRoom - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetByRoom: successfully fetched %d bookings for room=%d", len(bookings), req.RoomID)
	return models.FromDomainBookingList(bookings), nil
}

// GetByPilgrimage получает бронирования группового заезда
func (s *Service) GetByPilgrimage(ctx context.Context, pilgrimageID int64) (*models.BookingListResponse, error) {
	s.logger.Info("GetByPilgrimage: fetching bookings for pilgrimage=%d", pilgrimageID)

	bookings, err := s.bookingRepo.ListWithFilter(ctx, domain.BookingsFilter{
		PilgrimageID:     &pilgrimageID,
		IncludeCancelled: true,
	})
	if err != nil {
		s.logger.Error("GetByPilgrimage: repository error for pilgrimage=%d: %v", pilgrimageID, err)
		return nil, fmt.Errorf("%w: GetByPilgrimage - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetByPilgrimage: successfully fetched %d bookings for pilgrimage=%d",
		len(bookings), pilgrimageID)
	return models.FromDomainBookingList(bookings), nil
}

// Cancel отменяет бронирование
//
// Проверка конфликтов не выполняется — отмена не может создать конфликт.
// Операция идемпотентна: отмена уже отменённого бронирования завершается
// успехом без обращения к хранилищу. Предусловий на текущий статус нет:
// заехавший или выехавший гость тоже может быть отменён
func (s *Service) Cancel(ctx context.Context, bookingID int64) error {
	s.logger.Info("Cancel: cancelling booking id=%d", bookingID)

	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Cancel: booking id=%d not found", bookingID)
			return ErrBookingNotFound
		}
		s.logger.Error("Cancel: repository error for booking id=%d: %v", bookingID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	if booking.IsCancelled() {
		s.logger.Info("Cancel: booking id=%d already cancelled, no-op", bookingID)
		return nil
	}

	if err := s.bookingRepo.Cancel(ctx, bookingID); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Cancel: booking id=%d not found during cancellation", bookingID)
			return ErrBookingNotFound
		}
		s.logger.Error("Cancel: repository error for booking id=%d: %v", bookingID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Cancel: successfully cancelled booking id=%d", bookingID)
	return nil
}

// UpdateStatus обновляет статус бронирования
// Переходы заезда/выезда проверяются: checked_in только из pending/confirmed,
// checked_out только из checked_in. Переход в cancelled делегируется Cancel
func (s *Service) UpdateStatus(ctx context.Context, bookingID int64, req *models.UpdateStatusRequest) error {
	s.logger.Info("UpdateStatus: updating booking id=%d to status=%s", bookingID, req.Status)

	newStatus, err := models.ToDomainBookingStatus(req.Status)
	if err != nil {
		s.logger.Warn("UpdateStatus: invalid status=%s for booking id=%d", req.Status, bookingID)
		return ErrInvalidStatus
	}

	if newStatus == domain.StatusCancelled {
		return s.Cancel(ctx, bookingID)
	}

	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("UpdateStatus: booking id=%d not found", bookingID)
			return ErrBookingNotFound
		}
		s.logger.Error("UpdateStatus: repository error for booking id=%d: %v", bookingID, err)
		return fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	if err := validateTransition(booking, newStatus); err != nil {
		s.logger.Warn("UpdateStatus: invalid transition %s -> %s for booking id=%d",
			booking.Status, newStatus, bookingID)
		return err
	}

	if err := s.bookingRepo.UpdateStatus(ctx, bookingID, newStatus); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("UpdateStatus: booking id=%d not found during update", bookingID)
			return ErrBookingNotFound
		}
		s.logger.Error("UpdateStatus: repository error for booking id=%d: %v", bookingID, err)
		return fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateStatus: successfully updated booking id=%d to status=%s", bookingID, newStatus)
	return nil
}

// validateTransition проверяет допустимость перехода статуса
func validateTransition(booking *domain.Booking, newStatus domain.BookingStatus) error {
	// Отменённое бронирование нельзя вернуть в активный статус мимо
	// проверки конфликтов — только создание нового бронирования
	if booking.IsCancelled() {
		return ErrInvalidTransition
	}

	switch newStatus {
	case domain.StatusCheckedIn:
		if !booking.CanCheckIn() {
			return ErrInvalidTransition
		}
	case domain.StatusCheckedOut:
		if !booking.CanCheckOut() {
			return ErrInvalidTransition
		}
	case domain.StatusPending, domain.StatusConfirmed:
		// Возврат в pending/confirmed возможен только до заезда
		if booking.Status == domain.StatusCheckedIn || booking.Status == domain.StatusCheckedOut {
			return ErrInvalidTransition
		}
	}
	return nil
}
