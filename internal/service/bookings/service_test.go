package bookings

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/HMS-BookingService/internal/domain"
	bookingRepo "github.com/m04kA/HMS-BookingService/internal/infra/storage/booking"
	"github.com/m04kA/HMS-BookingService/internal/service/bookings/models"
)

type mockBookingRepo struct {
	bookings map[int64]*domain.Booking

	cancelCalls       int
	updateStatusCalls int
	lastFilter        domain.BookingsFilter
}

func newMockBookingRepo() *mockBookingRepo {
	return &mockBookingRepo{bookings: make(map[int64]*domain.Booking)}
}

func (m *mockBookingRepo) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	b, ok := m.bookings[id]
	if !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}
	return b, nil
}

func (m *mockBookingRepo) ListWithFilter(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	m.lastFilter = filter
	var result []*domain.Booking
	for _, b := range m.bookings {
		if filter.RoomID != nil && b.RoomID != *filter.RoomID {
			continue
		}
		if filter.PilgrimageID != nil && (b.PilgrimageID == nil || *b.PilgrimageID != *filter.PilgrimageID) {
			continue
		}
		if !filter.IncludeCancelled && b.IsCancelled() {
			continue
		}
		result = append(result, b)
	}
	return result, nil
}

func (m *mockBookingRepo) UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error {
	m.updateStatusCalls++
	b, ok := m.bookings[id]
	if !ok {
		return bookingRepo.ErrBookingNotFound
	}
	b.Status = status
	return nil
}

func (m *mockBookingRepo) Cancel(ctx context.Context, id int64) error {
	m.cancelCalls++
	b, ok := m.bookings[id]
	if !ok {
		return bookingRepo.ErrBookingNotFound
	}
	now := time.Now()
	b.Status = domain.StatusCancelled
	b.CancelledAt = &now
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func day(d int) time.Time {
	return time.Date(2025, 10, d, 0, 0, 0, 0, time.UTC)
}

func addBooking(repo *mockBookingRepo, id int64, status domain.BookingStatus) *domain.Booking {
	b := &domain.Booking{
		ID:           id,
		RoomID:       1,
		StartTime:    day(10),
		EndTime:      day(12),
		Status:       status,
		CustomerName: "Иван Петров",
	}
	repo.bookings[id] = b
	return b
}

func TestGetByID(t *testing.T) {
	repo := newMockBookingRepo()
	addBooking(repo, 1, domain.StatusConfirmed)
	svc := NewService(repo, nopLogger{})

	resp, err := svc.GetByID(context.Background(), 1)

	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, string(domain.StatusConfirmed), resp.Status)
}

func TestGetByID_NotFound(t *testing.T) {
	svc := NewService(newMockBookingRepo(), nopLogger{})

	_, err := svc.GetByID(context.Background(), 99)

	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestCancel(t *testing.T) {
	repo := newMockBookingRepo()
	addBooking(repo, 1, domain.StatusConfirmed)
	svc := NewService(repo, nopLogger{})

	err := svc.Cancel(context.Background(), 1)

	require.NoError(t, err)
	assert.Equal(t, 1, repo.cancelCalls)
	assert.Equal(t, domain.StatusCancelled, repo.bookings[1].Status)
	assert.NotNil(t, repo.bookings[1].CancelledAt)
}

func TestCancel_Idempotent(t *testing.T) {
	repo := newMockBookingRepo()
	b := addBooking(repo, 1, domain.StatusCancelled)
	cancelledAt := day(11)
	b.CancelledAt = &cancelledAt
	svc := NewService(repo, nopLogger{})

	// Повторная отмена завершается успехом без обращения к хранилищу
	err := svc.Cancel(context.Background(), 1)

	require.NoError(t, err)
	assert.Zero(t, repo.cancelCalls)
	// Время первоначальной отмены не перезаписывается
	assert.Equal(t, cancelledAt, *repo.bookings[1].CancelledAt)
}

func TestCancel_FromCheckedIn(t *testing.T) {
	repo := newMockBookingRepo()
	addBooking(repo, 1, domain.StatusCheckedIn)
	svc := NewService(repo, nopLogger{})

	// Предусловий на текущий статус нет
	err := svc.Cancel(context.Background(), 1)

	require.NoError(t, err)
	assert.Equal(t, domain.StatusCancelled, repo.bookings[1].Status)
}

func TestCancel_NotFound(t *testing.T) {
	svc := NewService(newMockBookingRepo(), nopLogger{})

	err := svc.Cancel(context.Background(), 99)

	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestUpdateStatus_CheckIn(t *testing.T) {
	repo := newMockBookingRepo()
	addBooking(repo, 1, domain.StatusConfirmed)
	svc := NewService(repo, nopLogger{})

	err := svc.UpdateStatus(context.Background(), 1, &models.UpdateStatusRequest{Status: "checked_in"})

	require.NoError(t, err)
	assert.Equal(t, domain.StatusCheckedIn, repo.bookings[1].Status)
}

func TestUpdateStatus_CheckOutRequiresCheckIn(t *testing.T) {
	repo := newMockBookingRepo()
	addBooking(repo, 1, domain.StatusConfirmed)
	svc := NewService(repo, nopLogger{})

	err := svc.UpdateStatus(context.Background(), 1, &models.UpdateStatusRequest{Status: "checked_out"})

	assert.ErrorIs(t, err, ErrInvalidTransition)
	assert.Zero(t, repo.updateStatusCalls)
}

func TestUpdateStatus_CancelledDelegatesToCancel(t *testing.T) {
	repo := newMockBookingRepo()
	addBooking(repo, 1, domain.StatusConfirmed)
	svc := NewService(repo, nopLogger{})

	err := svc.UpdateStatus(context.Background(), 1, &models.UpdateStatusRequest{Status: "cancelled"})

	require.NoError(t, err)
	assert.Equal(t, 1, repo.cancelCalls)
	assert.Zero(t, repo.updateStatusCalls)
}

func TestUpdateStatus_CancelledBookingCannotBeReactivated(t *testing.T) {
	repo := newMockBookingRepo()
	addBooking(repo, 1, domain.StatusCancelled)
	svc := NewService(repo, nopLogger{})

	for _, status := range []string{"pending", "confirmed", "checked_in"} {
		err := svc.UpdateStatus(context.Background(), 1, &models.UpdateStatusRequest{Status: status})
		assert.ErrorIs(t, err, ErrInvalidTransition, "status %s", status)
	}
}

func TestUpdateStatus_InvalidStatus(t *testing.T) {
	repo := newMockBookingRepo()
	addBooking(repo, 1, domain.StatusConfirmed)
	svc := NewService(repo, nopLogger{})

	err := svc.UpdateStatus(context.Background(), 1, &models.UpdateStatusRequest{Status: "archived"})

	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestGetByRoom(t *testing.T) {
	repo := newMockBookingRepo()
	addBooking(repo, 1, domain.StatusConfirmed)
	addBooking(repo, 2, domain.StatusCancelled)
	svc := NewService(repo, nopLogger{})

	resp, err := svc.GetByRoom(context.Background(), &models.GetRoomBookingsRequest{RoomID: 1})

	require.NoError(t, err)
	// Отменённые не включаются без явного запроса
	require.Len(t, resp.Bookings, 1)
	assert.Equal(t, int64(1), resp.Bookings[0].ID)
}

func TestGetByPilgrimage_IncludesCancelled(t *testing.T) {
	repo := newMockBookingRepo()
	pilgrimageID := int64(5)
	active := addBooking(repo, 1, domain.StatusConfirmed)
	active.PilgrimageID = &pilgrimageID
	cancelled := addBooking(repo, 2, domain.StatusCancelled)
	cancelled.PilgrimageID = &pilgrimageID
	svc := NewService(repo, nopLogger{})

	resp, err := svc.GetByPilgrimage(context.Background(), pilgrimageID)

	require.NoError(t, err)
	// Для группового заезда показывается полная картина, включая отменённые
	assert.Len(t, resp.Bookings, 2)
	assert.True(t, repo.lastFilter.IncludeCancelled)
}
