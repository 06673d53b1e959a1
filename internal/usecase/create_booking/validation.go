package create_booking

import (
	"fmt"
	"strings"

	"github.com/m04kA/HMS-BookingService/internal/domain"
)

// validateRequest валидирует входные данные запроса
// Проверка интервала выполняется здесь, до любого запроса к хранилищу:
// запрос с start >= end отклоняется без обращения к БД
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

	// Интервал нулевой или отрицательной длины некорректен (start == end тоже)
	if !req.Range().IsValid() {
		return ErrInvalidRange
	}

	if strings.TrimSpace(req.CustomerName) == "" {
		return fmt.Errorf("%w: customerName is required", ErrInvalidInput)
	}
	if len(req.CustomerName) > domain.MaxCustomerNameLength {
		return fmt.Errorf("%w: customerName exceeds %d characters", ErrInvalidInput, domain.MaxCustomerNameLength)
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes exceed %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	if req.PilgrimageID != nil && *req.PilgrimageID <= 0 {
		return fmt.Errorf("%w: pilgrimageID must be positive", ErrInvalidInput)
	}

	// Начальный статус может быть только pending или confirmed
	if req.Status != nil && *req.Status != domain.StatusPending && *req.Status != domain.StatusConfirmed {
		return fmt.Errorf("%w: initial status must be pending or confirmed", ErrInvalidInput)
	}

	return nil
}

// Range возвращает запрошенный интервал как TimeRange
func (r *Request) Range() domain.TimeRange {
	return domain.TimeRange{Start: r.Start, End: r.End}
}

// findConflict ищет первое активное бронирование того же номера,
// пересекающееся с запрошенным интервалом
//
// Кандидаты приходят из выборки по окну и могут содержать другие номера —
// фильтрация по номеру выполняется здесь, а не доверяется хранилищу.
// Проверка завершается на первом найденном конфликте
func findConflict(requested domain.TimeRange, roomID int64, candidates []*domain.Booking) *domain.Booking {
	for _, candidate := range candidates {
		if candidate.RoomID != roomID {
			continue
		}
		// Отменённые бронирования не блокируют номер
		if !candidate.IsActive() {
			continue
		}
		if candidate.Range().Overlaps(requested) {
			return candidate
		}
	}
	return nil
}
