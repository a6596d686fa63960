package postgres

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
	l.CreatedAt = time.Now().UTC()
	_, err := r.db.ExecContext(ctx, `INSERT INTO locations (id, name, city, country, created_at) VALUES ($1, $2, $3, $4, $5)`,
		l.ID, l.Name, l.City, l.Country, l.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, common.NewError(common.CodeConflict, "location already exists", err)
		}
		return nil, common.NewError(common.CodeInternal, "failed to create location", err)
	}
	return &l, nil
}

func (r *LocationRepository) GetByName(ctx context.Context, name string) (*location.Location, error) {
	row := r.db.QueryRowContext(ctx, `SELECT id, name, city, country, created_at FROM locations WHERE name = $1`, name)
	var l location.Location
	if err := row.Scan(&l.ID, &l.Name, &l.City, &l.Country, &l.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.NewError(common.CodeNotFound, "location not found", err)
		}
		return nil, common.NewError(common.CodeInternal, "failed to load location", err)
	}
	return &l, nil
}

func (r *LocationRepository) List(ctx context.Context, limit, offset int) ([]location.Location, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name, city, country, created_at FROM locations ORDER BY name ASC LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to list locations", err)
	}
	defer rows.Close()
	var items []location.Location
	for rows.Next() {
		var l location.Location
		if err := rows.Scan(&l.ID, &l.Name, &l.City, &l.Country, &l.CreatedAt); err != nil {
			return nil, common.NewError(common.CodeInternal, "failed to scan location", err)
		}
		items = append(items, l)
	}
	if err := rows.Err(); err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to list locations", err)
	}
	return items, nil
}
