package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"hireboard/internal/common"
	"hireboard/internal/domain/location"
)

type LocationRepository struct {
	db *sql.DB
}

func NewLocationRepository(db *sql.DB) *LocationRepository {
	return &LocationRepository{db: db}
}

func (r *LocationRepository) Create(ctx context.Context, l location.Location) (*location.Location, error) {
	l.ID = common.NewUUID()
	l.CreatedAt = time.Now().UTC().Truncate(time.Second)
	_, err := r.db.ExecContext(ctx, `INSERT INTO locations (id, name, city, country, created_at) VALUES (?, ?, ?, ?, ?)`,
		l.ID, l.Name, l.City, l.Country, l.CreatedAt.Unix())
	if err != nil {
		if isUniqueViolation(err) {
			return nil, common.NewError(common.CodeConflict, "location already exists", err)
		}
		return nil, common.NewError(common.CodeInternal, "failed to create location", err)
	}
	return &l, nil
}

func (r *LocationRepository) GetByName(ctx context.Context, name string) (*location.Location, error) {
	return scanLocation(r.db.QueryRowContext(ctx, `SELECT id, name, city, country, created_at FROM locations WHERE name = ?`, name))
}

func (r *LocationRepository) List(ctx context.Context, limit, offset int) ([]location.Location, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name, city, country, created_at FROM locations ORDER BY name ASC LIMIT ? OFFSET ?`, limit, offset)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to list locations", err)
	}
	defer rows.Close()
	var items []location.Location
	for rows.Next() {
		l, err := scanLocation(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *l)
	}
	if err := rows.Err(); err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to list locations", err)
	}
	return items, nil
}

func scanLocation(row scanner) (*location.Location, error) {
	var (
		l         location.Location
		createdAt int64
	)
	if err := row.Scan(&l.ID, &l.Name, &l.City, &l.Country, &createdAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.NewError(common.CodeNotFound, "location not found", err)
		}
		return nil, common.NewError(common.CodeInternal, "failed to load location", err)
	}
	l.CreatedAt = unixTime(createdAt)
	return &l, nil
}
