package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"hireboard/internal/common"
	"hireboard/internal/domain/plan"
)

const planColumns = `id, name, price, duration_days, features, created_at, updated_at`

type PlanRepository struct {
	db *sql.DB
}

func NewPlanRepository(db *sql.DB) *PlanRepository {
	return &PlanRepository{db: db}
}

func (r *PlanRepository) Create(ctx context.Context, p plan.Plan) (*plan.Plan, error) {
	features, err := encodeStrings(p.Features)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to encode plan features", err)
	}
	p.ID = common.NewUUID()
	now := time.Now().UTC().Truncate(time.Second)
	p.CreatedAt = now
	p.UpdatedAt = now
	_, err = r.db.ExecContext(ctx, `INSERT INTO plans (`+planColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		p.ID, p.Name, p.Price, p.Duration, features, now.Unix(), now.Unix())
	if err != nil {
		if isUniqueViolation(err) {
			return nil, common.NewError(common.CodeConflict, "plan name already exists", err)
		}
		return nil, common.NewError(common.CodeInternal, "failed to create plan", err)
	}
	return &p, nil
}

func (r *PlanRepository) Update(ctx context.Context, p plan.Plan) (*plan.Plan, error) {
	features, err := encodeStrings(p.Features)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to encode plan features", err)
	}
	p.UpdatedAt = time.Now().UTC().Truncate(time.Second)
	result, err := r.db.ExecContext(ctx, `UPDATE plans SET name = ?, price = ?, duration_days = ?, features = ?, updated_at = ? WHERE id = ?`,
		p.Name, p.Price, p.Duration, features, p.UpdatedAt.Unix(), p.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, common.NewError(common.CodeConflict, "plan name already exists", err)
		}
		return nil, common.NewError(common.CodeInternal, "failed to update plan", err)
	}
	rows, err := result.RowsAffected()
	if err == nil && rows == 0 {
		return nil, common.NewError(common.CodeNotFound, "plan not found", sql.ErrNoRows)
	}
	return &p, nil
}

func (r *PlanRepository) GetByID(ctx context.Context, id common.UUID) (*plan.Plan, error) {
	return scanPlan(r.db.QueryRowContext(ctx, `SELECT `+planColumns+` FROM plans WHERE id = ?`, id))
}

func (r *PlanRepository) GetByName(ctx context.Context, name string) (*plan.Plan, error) {
	return scanPlan(r.db.QueryRowContext(ctx, `SELECT `+planColumns+` FROM plans WHERE name = ?`, name))
}

func (r *PlanRepository) List(ctx context.Context) ([]plan.Plan, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+planColumns+` FROM plans ORDER BY price ASC, name ASC`)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to list plans", err)
	}
	defer rows.Close()
	var items []plan.Plan
	for rows.Next() {
		p, err := scanPlan(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to list plans", err)
	}
	return items, nil
}

func (r *PlanRepository) Delete(ctx context.Context, id common.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM plans WHERE id = ?`, id)
	if err != nil {
		return common.NewError(common.CodeInternal, "failed to delete plan", err)
	}
	rows, err := result.RowsAffected()
	if err == nil && rows == 0 {
		return common.NewError(common.CodeNotFound, "plan not found", sql.ErrNoRows)
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanPlan(row scanner) (*plan.Plan, error) {
	var (
		p         plan.Plan
		features  string
		createdAt int64
		updatedAt int64
	)
	if err := row.Scan(&p.ID, &p.Name, &p.Price, &p.Duration, &features, &createdAt, &updatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.NewError(common.CodeNotFound, "plan not found", err)
		}
		return nil, common.NewError(common.CodeInternal, "failed to load plan", err)
	}
	decoded, err := decodeStrings(features)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to decode plan features", err)
	}
	p.Features = decoded
	p.CreatedAt = unixTime(createdAt)
	p.UpdatedAt = unixTime(updatedAt)
	return &p, nil
}
