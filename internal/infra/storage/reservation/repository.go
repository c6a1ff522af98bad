package reservation

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/MaximeC37/BikerBox-sub000/internal/domain"
	"github.com/MaximeC37/BikerBox-sub000/pkg/psqlbuilder"
	"github.com/MaximeC37/BikerBox-sub000/pkg/txmanager"
)

const table = "reservations"

var columns = []string{
	"id",
	"locker_id",
	"requester_id",
	"size",
	"start_at",
	"end_at",
	"status",
	"access_code",
	"price",
	"created_at",
}

// Repository репозиторий бронирований в PostgreSQL
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Insert сохраняет бронирование
// Если в контексте передана активная транзакция, использует её
func (r *Repository) Insert(ctx context.Context, reservation *domain.Reservation) error {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(table).
		Columns(columns...).
		Values(
			reservation.ID,
			reservation.LockerID,
			reservation.RequesterID,
			string(reservation.Size),
			reservation.Window.Start,
			reservation.Window.End,
			string(reservation.Status),
			reservation.AccessCode,
			reservation.Price,
			reservation.CreatedAt,
		).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Insert - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		// %w сохраняет *pq.Error для распознавания конфликтов сериализации
		return fmt.Errorf("%w: Insert - execute insert: %w", ErrExecQuery, err)
	}

	return nil
}

// FindByID получает бронирование по ID, nil если не найдено
func (r *Repository) FindByID(ctx context.Context, id string) (*domain.Reservation, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: FindByID - build select query: %v", ErrBuildQuery, err)
	}

	reservation, err := scanReservation(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: FindByID - scan reservation: %w", ErrScanRow, err)
	}

	return reservation, nil
}

// FindByLocker получает все бронирования ячейки
// Внутри транзакции строки блокируются (FOR UPDATE) до ее завершения
func (r *Repository) FindByLocker(ctx context.Context, lockerID string) ([]*domain.Reservation, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(columns...).
		From(table).
		Where(squirrel.Eq{"locker_id": lockerID}).
		OrderBy("start_at ASC")

	if txmanager.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: FindByLocker - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: FindByLocker - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanReservations(rows)
}

// FindByRequester получает бронирования пользователя, последние по началу окна первыми
func (r *Repository) FindByRequester(ctx context.Context, requesterID string) ([]*domain.Reservation, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From(table).
		Where(squirrel.Eq{"requester_id": requesterID}).
		OrderBy("start_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: FindByRequester - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: FindByRequester - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanReservations(rows)
}

// DeleteByID удаляет бронирование (физическое удаление)
// Возвращает false, если бронирования не было
func (r *Repository) DeleteByID(ctx context.Context, id string) (bool, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete(table).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("%w: DeleteByID - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("%w: DeleteByID - execute delete: %w", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("%w: DeleteByID - get rows affected: %v", ErrExecQuery, err)
	}

	return rowsAffected > 0, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanReservation(row rowScanner) (*domain.Reservation, error) {
	var (
		reservation domain.Reservation
		size        string
		status      string
	)

	err := row.Scan(
		&reservation.ID,
		&reservation.LockerID,
		&reservation.RequesterID,
		&size,
		&reservation.Window.Start,
		&reservation.Window.End,
		&status,
		&reservation.AccessCode,
		&reservation.Price,
		&reservation.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	reservation.Size = domain.LockerSize(size)
	reservation.Status = domain.ReservationStatus(status)
	return &reservation, nil
}

// scanReservations сканирует результаты запроса в слайс бронирований
func scanReservations(rows *sql.Rows) ([]*domain.Reservation, error) {
	reservations := make([]*domain.Reservation, 0)

	for rows.Next() {
		reservation, err := scanReservation(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanReservations - scan row: %w", ErrScanRow, err)
		}
		reservations = append(reservations, reservation)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanReservations - rows error: %w", ErrScanRow, err)
	}

	return reservations, nil
}
