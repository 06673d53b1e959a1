package create_booking

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

// mockBookingRepo мок репозитория бронирований
type mockBookingRepo struct {
	candidates []*domain.Booking

	findErr   error
	createErr error

	findCalls   int
	createCalls int
	created     *domain.Booking
}

func (m *mockBookingRepo) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	m.createCalls++
	if m.createErr != nil {
		return nil, m.createErr
	}
	created := *booking
	created.ID = 42
	created.CreatedAt = time.Now()
	created.UpdatedAt = created.CreatedAt
	m.created = &created
	return &created, nil
}

func (m *mockBookingRepo) FindOverlapping(ctx context.Context, roomID *int64, window domain.TimeRange) ([]*domain.Booking, error) {
	m.findCalls++
	if m.findErr != nil {
		return nil, m.findErr
	}
	return m.candidates, nil
}

// mockRoomRepo мок репозитория номеров
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

// mockTxManager выполняет функцию без настоящей транзакции
type mockTxManager struct{}

func (m *mockTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

// nopLogger заглушка логгера
type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func day(d int) time.Time {
	return time.Date(2025, 10, d, 0, 0, 0, 0, time.UTC)
}

func activeRoom(id int64) *domain.Room {
	return &domain.Room{ID: id, Name: "Номер", Status: domain.RoomStatusActive}
}

func confirmedBooking(id, roomID int64, start, end time.Time) *domain.Booking {
	return &domain.Booking{
		ID:        id,
		RoomID:    roomID,
		StartTime: start,
		EndTime:   end,
		Status:    domain.StatusConfirmed,
	}
}

func newTestUseCase(bookings *mockBookingRepo, rooms *mockRoomRepo) *UseCase {
	return NewUseCase(bookings, rooms, &mockTxManager{}, nopLogger{})
}

func validRequest(roomID int64, start, end time.Time) *Request {
	return &Request{
		RoomID:       roomID,
		Start:        start,
		End:          end,
		CustomerName: "Иван Петров",
	}
}

func TestExecute_Success(t *testing.T) {
	bookings := &mockBookingRepo{}
	rooms := &mockRoomRepo{rooms: map[int64]*domain.Room{1: activeRoom(1)}}
	uc := newTestUseCase(bookings, rooms)

	resp, err := uc.Execute(context.Background(), validRequest(1, day(10), day(12)))

	require.NoError(t, err)
	assert.Equal(t, int64(42), resp.ID)
	assert.Equal(t, int64(1), resp.RoomID)
	// Статус по умолчанию — confirmed
	assert.Equal(t, string(domain.StatusConfirmed), resp.Status)
	assert.Equal(t, 1, bookings.findCalls)
	assert.Equal(t, 1, bookings.createCalls)
}

func TestExecute_PendingStatusOverride(t *testing.T) {
	bookings := &mockBookingRepo{}
	rooms := &mockRoomRepo{rooms: map[int64]*domain.Room{1: activeRoom(1)}}
	uc := newTestUseCase(bookings, rooms)

	req := validRequest(1, day(10), day(12))
	pending := domain.StatusPending
	req.Status = &pending

	resp, err := uc.Execute(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusPending), resp.Status)
}

func TestExecute_InvalidInitialStatus(t *testing.T) {
	bookings := &mockBookingRepo{}
	rooms := &mockRoomRepo{rooms: map[int64]*domain.Room{1: activeRoom(1)}}
	uc := newTestUseCase(bookings, rooms)

	req := validRequest(1, day(10), day(12))
	cancelled := domain.StatusCancelled
	req.Status = &cancelled

	_, err := uc.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.Zero(t, bookings.createCalls)
}

func TestExecute_Conflict(t *testing.T) {
	// Номер 1 занят на [10, 12)
	bookings := &mockBookingRepo{
		candidates: []*domain.Booking{
			confirmedBooking(7, 1, day(10), day(12)),
		},
	}
	rooms := &mockRoomRepo{rooms: map[int64]*domain.Room{1: activeRoom(1)}}
	uc := newTestUseCase(bookings, rooms)

	// [11, 13) пересекается с [10, 12)
	_, err := uc.Execute(context.Background(), validRequest(1, day(11), day(13)))

	assert.ErrorIs(t, err, ErrBookingConflict)
	assert.Zero(t, bookings.createCalls)
}

func TestExecute_AdjacentBookingSucceeds(t *testing.T) {
	// Занято [10, 12); запрашиваем [12, 14) — границы смыкаются, конфликта нет
	bookings := &mockBookingRepo{
		candidates: []*domain.Booking{
			confirmedBooking(7, 1, day(10), day(12)),
		},
	}
	rooms := &mockRoomRepo{rooms: map[int64]*domain.Room{1: activeRoom(1)}}
	uc := newTestUseCase(bookings, rooms)

	resp, err := uc.Execute(context.Background(), validRequest(1, day(12), day(14)))

	require.NoError(t, err)
	assert.Equal(t, int64(42), resp.ID)
}

func TestExecute_OtherRoomCandidateIgnored(t *testing.T) {
	// Выборка вернула пересекающееся бронирование другого номера —
	// оно не должно блокировать запрошенный номер
	bookings := &mockBookingRepo{
		candidates: []*domain.Booking{
			confirmedBooking(7, 2, day(10), day(12)),
		},
	}
	rooms := &mockRoomRepo{rooms: map[int64]*domain.Room{1: activeRoom(1)}}
	uc := newTestUseCase(bookings, rooms)

	resp, err := uc.Execute(context.Background(), validRequest(1, day(11), day(13)))

	require.NoError(t, err)
	assert.Equal(t, int64(42), resp.ID)
}

func TestExecute_CancelledCandidateIgnored(t *testing.T) {
	cancelled := confirmedBooking(7, 1, day(10), day(12))
	cancelled.Status = domain.StatusCancelled

	bookings := &mockBookingRepo{candidates: []*domain.Booking{cancelled}}
	rooms := &mockRoomRepo{rooms: map[int64]*domain.Room{1: activeRoom(1)}}
	uc := newTestUseCase(bookings, rooms)

	resp, err := uc.Execute(context.Background(), validRequest(1, day(11), day(13)))

	require.NoError(t, err)
	assert.Equal(t, int64(42), resp.ID)
}

func TestExecute_CheckedInCandidateBlocks(t *testing.T) {
	checkedIn := confirmedBooking(7, 1, day(10), day(12))
	checkedIn.Status = domain.StatusCheckedIn

	bookings := &mockBookingRepo{candidates: []*domain.Booking{checkedIn}}
	rooms := &mockRoomRepo{rooms: map[int64]*domain.Room{1: activeRoom(1)}}
	uc := newTestUseCase(bookings, rooms)

	_, err := uc.Execute(context.Background(), validRequest(1, day(11), day(13)))

	assert.ErrorIs(t, err, ErrBookingConflict)
}

func TestExecute_InvalidRange(t *testing.T) {
	bookings := &mockBookingRepo{}
	rooms := &mockRoomRepo{rooms: map[int64]*domain.Room{1: activeRoom(1)}}
	uc := newTestUseCase(bookings, rooms)

	tests := []struct {
		name  string
		start time.Time
		end   time.Time
	}{
		{name: "start equals end", start: day(10), end: day(10)},
		{name: "start after end", start: day(12), end: day(10)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), validRequest(1, tt.start, tt.end))

			assert.ErrorIs(t, err, ErrInvalidRange)
			// Валидация отклоняет запрос до любого обращения к хранилищу
			assert.Zero(t, bookings.findCalls)
			assert.Zero(t, bookings.createCalls)
		})
	}
}

func TestExecute_ValidationErrors(t *testing.T) {
	bookings := &mockBookingRepo{}
	rooms := &mockRoomRepo{rooms: map[int64]*domain.Room{1: activeRoom(1)}}
	uc := newTestUseCase(bookings, rooms)

	longName := make([]byte, domain.MaxCustomerNameLength+1)
	for i := range longName {
		longName[i] = 'a'
	}

	tests := []struct {
		name   string
		mutate func(*Request)
	}{
		{name: "non-positive room id", mutate: func(r *Request) { r.RoomID = 0 }},
		{name: "zero start", mutate: func(r *Request) { r.Start = time.Time{} }},
		{name: "zero end", mutate: func(r *Request) { r.End = time.Time{} }},
		{name: "empty customer name", mutate: func(r *Request) { r.CustomerName = "   " }},
		{name: "customer name too long", mutate: func(r *Request) { r.CustomerName = string(longName) }},
		{name: "non-positive pilgrimage id", mutate: func(r *Request) {
			bad := int64(0)
			r.PilgrimageID = &bad
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest(1, day(10), day(12))
			tt.mutate(req)

			_, err := uc.Execute(context.Background(), req)

			assert.ErrorIs(t, err, ErrInvalidInput)
			assert.Zero(t, bookings.createCalls)
		})
	}
}

func TestExecute_RoomNotFound(t *testing.T) {
	bookings := &mockBookingRepo{}
	rooms := &mockRoomRepo{rooms: map[int64]*domain.Room{}}
	uc := newTestUseCase(bookings, rooms)

	_, err := uc.Execute(context.Background(), validRequest(99, day(10), day(12)))

	assert.ErrorIs(t, err, ErrRoomNotFound)
	assert.Zero(t, bookings.createCalls)
}

func TestExecute_RoomNotBookable(t *testing.T) {
	room := activeRoom(1)
	room.Status = domain.RoomStatusMaintenance

	bookings := &mockBookingRepo{}
	rooms := &mockRoomRepo{rooms: map[int64]*domain.Room{1: room}}
	uc := newTestUseCase(bookings, rooms)

	_, err := uc.Execute(context.Background(), validRequest(1, day(10), day(12)))

	assert.ErrorIs(t, err, ErrRoomNotBookable)
	assert.Zero(t, bookings.findCalls)
}

func TestExecute_FetchError(t *testing.T) {
	bookings := &mockBookingRepo{findErr: errors.New("connection refused")}
	rooms := &mockRoomRepo{rooms: map[int64]*domain.Room{1: activeRoom(1)}}
	uc := newTestUseCase(bookings, rooms)

	_, err := uc.Execute(context.Background(), validRequest(1, day(10), day(12)))

	assert.ErrorIs(t, err, ErrInternal)
	assert.Zero(t, bookings.createCalls)
}

func TestExecute_CreateError(t *testing.T) {
	bookings := &mockBookingRepo{createErr: errors.New("connection refused")}
	rooms := &mockRoomRepo{rooms: map[int64]*domain.Room{1: activeRoom(1)}}
	uc := newTestUseCase(bookings, rooms)

	_, err := uc.Execute(context.Background(), validRequest(1, day(10), day(12)))

	assert.ErrorIs(t, err, ErrInternal)
}

func TestFindConflict_FirstMatchWins(t *testing.T) {
	requested := domain.TimeRange{Start: day(11), End: day(13)}

	first := confirmedBooking(1, 1, day(10), day(12))
	second := confirmedBooking(2, 1, day(12), day(14))

	conflict := findConflict(requested, 1, []*domain.Booking{first, second})

	require.NotNil(t, conflict)
	// Проверка завершается на первом конфликте
	assert.Equal(t, int64(1), conflict.ID)
}
