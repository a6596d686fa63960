package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"hireboard/internal/common"
	"hireboard/internal/domain/applicant"
)

const applicationColumns = `id, job_id, applicant_id, status, created_at, updated_at`

type ApplicationRepository struct {
	db *sql.DB
}

func NewApplicationRepository(db *sql.DB) *ApplicationRepository {
	return &ApplicationRepository{db: db}
}

func (r *ApplicationRepository) Create(ctx context.Context, app applicant.Application) (*applicant.Application, error) {
	app.ID = common.NewUUID()
	now := time.Now().UTC()
	app.CreatedAt = now
	app.UpdatedAt = now
	_, err := r.db.ExecContext(ctx, `INSERT INTO applications (`+applicationColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		app.ID, app.JobID, app.ApplicantID, app.Status, app.CreatedAt, app.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, common.NewError(common.CodeConflict, "already applied", err)
		}
		return nil, common.NewError(common.CodeInternal, "failed to create application", err)
	}
	return &app, nil
}

func (r *ApplicationRepository) GetByID(ctx context.Context, id common.UUID) (*applicant.Application, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+applicationColumns+` FROM applications WHERE id = $1`, id)
	return scanApplication(row)
}

func (r *ApplicationRepository) FindByJobAndApplicant(ctx context.Context, jobID, applicantID common.UUID) (*applicant.Application, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+applicationColumns+` FROM applications WHERE job_id = $1 AND applicant_id = $2`, jobID, applicantID)
	return scanApplication(row)
}

func (r *ApplicationRepository) UpdateStatus(ctx context.Context, id common.UUID, status applicant.ApplicationStatus) (*applicant.Application, error) {
	row := r.db.QueryRowContext(ctx, `UPDATE applications SET status = $1, updated_at = $2 WHERE id = $3
		RETURNING `+applicationColumns, status, time.Now().UTC(), id)
	return scanApplication(row)
}

func (r *ApplicationRepository) ListByJob(ctx context.Context, jobID common.UUID) ([]applicant.Application, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+applicationColumns+` FROM applications WHERE job_id = $1 ORDER BY created_at ASC`, jobID)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to list applications", err)
	}
	defer rows.Close()
	var items []applicant.Application
	for rows.Next() {
		var app applicant.Application
		if err := rows.Scan(&app.ID, &app.JobID, &app.ApplicantID, &app.Status, &app.CreatedAt, &app.UpdatedAt); err != nil {
			return nil, common.NewError(common.CodeInternal, "failed to scan application", err)
		}
		items = append(items, app)
	}
	if err := rows.Err(); err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to list applications", err)
	}
	return items, nil
}

func scanApplication(row *sql.Row) (*applicant.Application, error) {
	var app applicant.Application
	if err := row.Scan(&app.ID, &app.JobID, &app.ApplicantID, &app.Status, &app.CreatedAt, &app.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.NewError(common.CodeNotFound, "application not found", err)
		}
		return nil, common.NewError(common.CodeInternal, "failed to load application", err)
	}
	return &app, nil
}
