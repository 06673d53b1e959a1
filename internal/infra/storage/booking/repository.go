package booking

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/HMS-BookingService/internal/domain"
	"github.com/m04kA/HMS-BookingService/pkg/dbmetrics"
	"github.com/m04kA/HMS-BookingService/pkg/psqlbuilder"
)

const table = "bookings"

// Repository репозиторий для работы с бронированиями.
// Знает о варианте физической схемы таблицы и нормализует колонки
// интервала к каноническому виду {start, end}
type Repository struct {
	db   DBExecutor
	cols rangeColumns
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor, variant SchemaVariant) *Repository {
	return &Repository{
		db:   db,
		cols: variant.columns(),
	}
}

// selectColumns возвращает список колонок для SELECT в каноническом порядке
func (r *Repository) selectColumns() []string {
	return []string{
		"id",
		"room_id",
		r.cols.start,
		r.cols.end,
		"status",
		"customer_name",
		"pilgrimage_id",
		"notes",
		"cancelled_at",
		"created_at",
		"updated_at",
	}
}

// Create создает новое бронирование
// Если в контексте передана активная транзакция, использует её.
// Проверка конфликтов выполняется на уровне usecase до вставки —
// репозиторий вставляет запись безусловно
func (r *Repository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(table).
		Columns(
			"room_id",
			r.cols.start,
			r.cols.end,
			"status",
			"customer_name",
			"pilgrimage_id",
			"notes",
		).
		Values(
			booking.RoomID,
			booking.StartTime,
			booking.EndTime,
			booking.Status,
			booking.CustomerName,
			booking.PilgrimageID,
			booking.Notes,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&booking.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	return booking, nil
}

// GetByID получает бронирование по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(r.selectColumns()...).
		From(table).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	booking, err := r.scanBooking(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan booking: %v", ErrScanRow, err)
	}

	return booking, nil
}

// FindOverlapping получает бронирования, чей интервал пересекает окно
// [window.Start, window.End). Отменённые бронирования исключаются.
//
// Окно трактуется как полуоткрытый интервал: строгие неравенства
// start < windowEnd AND end > windowStart, поэтому бронирования,
// граничащие с окном, в выборку не попадают.
//
// roomID опционально сужает выборку до одного номера; допускается выборка
// шире запрошенной (фильтрация по номеру повторяется на уровне usecase).
//
// Внутри транзакции выборка блокируется через FOR UPDATE — это защита
// от гонки двух конкурентных созданий бронирования на один номер
func (r *Repository) FindOverlapping(ctx context.Context, roomID *int64, window domain.TimeRange) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(r.selectColumns()...).
		From(table).
		Where(squirrel.Lt{r.cols.start: window.End}).
		Where(squirrel.Gt{r.cols.end: window.Start}).
		Where(squirrel.NotEq{"status": cancelledStatusStrings()})

	if roomID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"room_id": *roomID})
	}

	selectBuilder = selectBuilder.OrderBy(r.cols.start + " ASC")

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: FindOverlapping - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: FindOverlapping - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanBookings(rows)
}

// ListWithFilter получает бронирования с гибкой фильтрацией
// Поддерживает фильтрацию по номеру, групповому заезду, периоду и статусу.
// Отменённые бронирования по умолчанию исключаются (IncludeCancelled)
func (r *Repository) ListWithFilter(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(r.selectColumns()...).
		From(table)

	if filter.RoomID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"room_id": *filter.RoomID})
	}
	if filter.PilgrimageID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"pilgrimage_id": *filter.PilgrimageID})
	}

	// Фильтрация по периоду: берём бронирования, пересекающие окно
	if filter.To != nil {
		selectBuilder = selectBuilder.Where(squirrel.Lt{r.cols.start: *filter.To})
	}
	if filter.From != nil {
		selectBuilder = selectBuilder.Where(squirrel.Gt{r.cols.end: *filter.From})
	}

	// Фильтрация по статусу
	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *filter.Status})
	} else if !filter.IncludeCancelled {
		selectBuilder = selectBuilder.Where(squirrel.NotEq{"status": cancelledStatusStrings()})
	}

	selectBuilder = selectBuilder.OrderBy(r.cols.start + " ASC")

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListWithFilter - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListWithFilter - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanBookings(rows)
}

// UpdateStatus обновляет статус бронирования
func (r *Repository) UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(table).
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

// Cancel отменяет бронирование: статус cancelled и отметка времени отмены
func (r *Repository) Cancel(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(table).
		Set("status", domain.StatusCancelled).
		Set("cancelled_at", squirrel.Expr("NOW()")).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Cancel - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Cancel - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Cancel - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

// rowScanner общий интерфейс *sql.Row и *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

// scanBooking сканирует одну строку в доменную модель
// Колонки интервала читаются из варианта схемы, но в модели они всегда
// канонические StartTime/EndTime
func (r *Repository) scanBooking(row rowScanner) (*domain.Booking, error) {
	var booking domain.Booking
	var cancelledAt, createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&booking.ID,
		&booking.RoomID,
		&booking.StartTime,
		&booking.EndTime,
		&booking.Status,
		&booking.CustomerName,
		&booking.PilgrimageID,
		&booking.Notes,
		&cancelledAt,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	if cancelledAt.Valid {
		booking.CancelledAt = &cancelledAt.Time
	}
	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	return &booking, nil
}

// scanBookings сканирует результаты запроса в слайс бронирований
func (r *Repository) scanBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	bookings := make([]*domain.Booking, 0)

	for rows.Next() {
		booking, err := r.scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanBookings - scan row: %v", ErrScanRow, err)
		}
		bookings = append(bookings, booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBookings - rows error: %v", ErrScanRow, err)
	}

	return bookings, nil
}

// cancelledStatusStrings статусы, исключаемые из выборок активных бронирований
func cancelledStatusStrings() []string {
	statuses := make([]string, len(domain.CancelledStatuses))
	for i, s := range domain.CancelledStatuses {
		statuses[i] = string(s)
	}
	return statuses
}
