package locker

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/MaximeC37/BikerBox-sub000/internal/domain"
	"github.com/MaximeC37/BikerBox-sub000/pkg/psqlbuilder"
	"github.com/MaximeC37/BikerBox-sub000/pkg/txmanager"
)

// Repository каталог ячеек в PostgreSQL
// Вместимость хранится в отдельной таблице locker_capacities (locker_id, size, total)
type Repository struct {
	db txmanager.DBExecutor
}

// NewRepository создает новый экземпляр репозитория ячеек
func NewRepository(db txmanager.DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetLocker получает ячейку с таблицей вместимости, nil если не найдена
func (r *Repository) GetLocker(ctx context.Context, id string) (*domain.Locker, error) {
	lockers, err := r.query(ctx, squirrel.Eq{"l.id": id})
	if err != nil {
		return nil, err
	}
	if len(lockers) == 0 {
		return nil, nil
	}
	return lockers[0], nil
}

// ListLockers получает все ячейки, отсортированные по имени
func (r *Repository) ListLockers(ctx context.Context) ([]*domain.Locker, error) {
	return r.query(ctx, nil)
}

func (r *Repository) query(ctx context.Context, where squirrel.Sqlizer) ([]*domain.Locker, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(
		"l.id",
		"l.name",
		"l.location",
		"l.latitude",
		"l.longitude",
		"c.size",
		"c.total",
	).
		From("lockers l").
		LeftJoin("locker_capacities c ON c.locker_id = l.id").
		OrderBy("l.name ASC", "l.id ASC")

	if where != nil {
		selectBuilder = selectBuilder.Where(where)
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: query - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: query - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	// Строки одной ячейки идут подряд благодаря сортировке
	lockers := make([]*domain.Locker, 0)
	var current *domain.Locker

	for rows.Next() {
		var (
			l     domain.Locker
			size  sql.NullString
			total sql.NullInt64
		)

		if err := rows.Scan(
			&l.ID,
			&l.Name,
			&l.Location,
			&l.Coordinates.Latitude,
			&l.Coordinates.Longitude,
			&size,
			&total,
		); err != nil {
			return nil, fmt.Errorf("%w: query - scan locker: %v", ErrScanRow, err)
		}

		if current == nil || current.ID != l.ID {
			l.Capacity = make(map[domain.LockerSize]int)
			current = &l
			lockers = append(lockers, current)
		}

		if size.Valid && total.Valid {
			current.Capacity[domain.LockerSize(size.String)] = int(total.Int64)
		}
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: query - rows error: %v", ErrScanRow, err)
	}

	return lockers, nil
}
