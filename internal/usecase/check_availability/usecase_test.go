package check_availability

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/HMS-BookingService/internal/domain"
	roomRepo "github.com/m04kA/HMS-BookingService/internal/infra/storage/room"
)

type mockBookingRepo struct {
	candidates []*domain.Booking
	findErr    error
	findCalls  int
}

func (m *mockBookingRepo) FindOverlapping(ctx context.Context, roomID *int64, window domain.TimeRange) ([]*domain.Booking, error) {
	m.findCalls++
	if m.findErr != nil {
		return nil, m.findErr
	}
	return m.candidates, nil
}

type mockRoomRepo struct {
	rooms map[int64]*domain.Room
}

func (m *mockRoomRepo) GetByID(ctx context.Context, id int64) (*domain.Room, error) {
	room, ok := m.rooms[id]
	if !ok {
		return nil, roomRepo.ErrRoomNotFound
	}
	return room, nil
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func day(d int) time.Time {
	return time.Date(2025, 10, d, 0, 0, 0, 0, time.UTC)
}

func booking(id, roomID int64, start, end time.Time, status domain.BookingStatus) *domain.Booking {
	return &domain.Booking{
		ID:        id,
		RoomID:    roomID,
		StartTime: start,
		EndTime:   end,
		Status:    status,
	}
}

func newTestUseCase(bookings *mockBookingRepo, rooms map[int64]*domain.Room) *UseCase {
	return NewUseCase(bookings, &mockRoomRepo{rooms: rooms}, nopLogger{})
}

func TestExecute_Available(t *testing.T) {
	bookings := &mockBookingRepo{}
	uc := newTestUseCase(bookings, map[int64]*domain.Room{1: {ID: 1, Status: domain.RoomStatusActive}})

	resp, err := uc.Execute(context.Background(), &Request{RoomID: 1, Start: day(10), End: day(12)})

	require.NoError(t, err)
	assert.True(t, resp.Available)
	assert.Empty(t, resp.Conflicts)
}

func TestExecute_ConflictsReported(t *testing.T) {
	bookings := &mockBookingRepo{
		candidates: []*domain.Booking{
			booking(7, 1, day(10), day(12), domain.StatusConfirmed),
			booking(8, 1, day(12), day(14), domain.StatusConfirmed), // смежное, не конфликт
			booking(9, 2, day(10), day(12), domain.StatusConfirmed), // другой номер
			booking(10, 1, day(11), day(13), domain.StatusCancelled),
		},
	}
	uc := newTestUseCase(bookings, map[int64]*domain.Room{1: {ID: 1, Status: domain.RoomStatusActive}})

	resp, err := uc.Execute(context.Background(), &Request{RoomID: 1, Start: day(11), End: day(13)})

	require.NoError(t, err)
	assert.False(t, resp.Available)
	// В отчёт попадает только активное пересекающееся бронирование того же номера
	require.Len(t, resp.Conflicts, 1)
	assert.Equal(t, int64(7), resp.Conflicts[0].BookingID)
	assert.Equal(t, string(domain.StatusConfirmed), resp.Conflicts[0].Status)
}

func TestExecute_InvalidRange(t *testing.T) {
	bookings := &mockBookingRepo{}
	uc := newTestUseCase(bookings, map[int64]*domain.Room{1: {ID: 1, Status: domain.RoomStatusActive}})

	_, err := uc.Execute(context.Background(), &Request{RoomID: 1, Start: day(12), End: day(12)})

	assert.ErrorIs(t, err, ErrInvalidRange)
	assert.Zero(t, bookings.findCalls)
}

func TestExecute_RoomNotFound(t *testing.T) {
	bookings := &mockBookingRepo{}
	uc := newTestUseCase(bookings, map[int64]*domain.Room{})

	_, err := uc.Execute(context.Background(), &Request{RoomID: 99, Start: day(10), End: day(12)})

	assert.ErrorIs(t, err, ErrRoomNotFound)
}

func TestExecute_FetchError(t *testing.T) {
	bookings := &mockBookingRepo{findErr: errors.New("connection refused")}
	uc := newTestUseCase(bookings, map[int64]*domain.Room{1: {ID: 1, Status: domain.RoomStatusActive}})

	_, err := uc.Execute(context.Background(), &Request{RoomID: 1, Start: day(10), End: day(12)})

	assert.ErrorIs(t, err, ErrInternal)
}
