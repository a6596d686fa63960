package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/lib/pq"

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
	p.ID = common.NewUUID()
	now := time.Now().UTC()
	p.CreatedAt = now
	p.UpdatedAt = now
	_, err := r.db.ExecContext(ctx, `INSERT INTO plans (`+planColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		p.ID, p.Name, p.Price, p.Duration, pq.Array(p.Features), p.CreatedAt, p.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, common.NewError(common.CodeConflict, "plan name already exists", err)
		}
		return nil, common.NewError(common.CodeInternal, "failed to create plan", err)
	}
	return &p, nil
}

func (r *PlanRepository) Update(ctx context.Context, p plan.Plan) (*plan.Plan, error) {
	p.UpdatedAt = time.Now().UTC()
	result, err := r.db.ExecContext(ctx, `UPDATE plans SET name = $1, price = $2, duration_days = $3, features = $4, updated_at = $5
		WHERE id = $6`,
		p.Name, p.Price, p.Duration, pq.Array(p.Features), p.UpdatedAt, p.ID)
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
	row := r.db.QueryRowContext(ctx, `SELECT `+planColumns+` FROM plans WHERE id = $1`, id)
	return scanPlan(row)
}

func (r *PlanRepository) GetByName(ctx context.Context, name string) (*plan.Plan, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+planColumns+` FROM plans WHERE name = $1`, name)
	return scanPlan(row)
}

func (r *PlanRepository) List(ctx context.Context) ([]plan.Plan, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+planColumns+` FROM plans ORDER BY price ASC, name ASC`)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to list plans", err)
	}
	defer rows.Close()
	var items []plan.Plan
	for rows.Next() {
		var p plan.Plan
		if err := rows.Scan(&p.ID, &p.Name, &p.Price, &p.Duration, pq.Array(&p.Features), &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, common.NewError(common.CodeInternal, "failed to scan plan", err)
		}
		items = append(items, p)
	}
	if err := rows.Err(); err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to list plans", err)
	}
	return items, nil
}

func (r *PlanRepository) Delete(ctx context.Context, id common.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM plans WHERE id = $1`, id)
	if err != nil {
		return common.NewError(common.CodeInternal, "failed to delete plan", err)
	}
	rows, err := result.RowsAffected()
	if err == nil && rows == 0 {
		return common.NewError(common.CodeNotFound, "plan not found", sql.ErrNoRows)
	}
	return nil
}

func scanPlan(row *sql.Row) (*plan.Plan, error) {
	var p plan.Plan
	if err := row.Scan(&p.ID, &p.Name, &p.Price, &p.Duration, pq.Array(&p.Features), &p.CreatedAt, &p.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.NewError(common.CodeNotFound, "plan not found", err)
		}
		return nil, common.NewError(common.CodeInternal, "failed to load plan", err)
	}
	return &p, nil
}
