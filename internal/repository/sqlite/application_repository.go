package sqlite

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
	now := time.Now().UTC().Truncate(time.Second)
	app.CreatedAt = now
	app.UpdatedAt = now
	_, err := r.db.ExecContext(ctx, `INSERT INTO applications (`+applicationColumns+`) VALUES (?, ?, ?, ?, ?, ?)`,
		app.ID, app.JobID, app.ApplicantID, string(app.Status), now.Unix(), now.Unix())
	if err != nil {
		if isUniqueViolation(err) {
			return nil, common.NewError(common.CodeConflict, "already applied", err)
		}
		return nil, common.NewError(common.CodeInternal, "failed to create application", err)
	}
	return &app, nil
}

func (r *ApplicationRepository) GetByID(ctx context.Context, id common.UUID) (*applicant.Application, error) {
	return scanApplication(r.db.QueryRowContext(ctx, `SELECT `+applicationColumns+` FROM applications WHERE id = ?`, id))
}

func (r *ApplicationRepository) FindByJobAndApplicant(ctx context.Context, jobID, applicantID common.UUID) (*applicant.Application, error) {
	return scanApplication(r.db.QueryRowContext(ctx, `SELECT `+applicationColumns+` FROM applications WHERE job_id = ? AND applicant_id = ?`, jobID, applicantID))
}

func (r *ApplicationRepository) UpdateStatus(ctx context.Context, id common.UUID, status applicant.ApplicationStatus) (*applicant.Application, error) {
	result, err := r.db.ExecContext(ctx, `UPDATE applications SET status = ?, updated_at = ? WHERE id = ?`,
		string(status), time.Now().UTC().Unix(), id)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to update application", err)
	}
	rows, err := result.RowsAffected()
	if err == nil && rows == 0 {
		return nil, common.NewError(common.CodeNotFound, "application not found", sql.ErrNoRows)
	}
	return r.GetByID(ctx, id)
}

func (r *ApplicationRepository) ListByJob(ctx context.Context, jobID common.UUID) ([]applicant.Application, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+applicationColumns+` FROM applications WHERE job_id = ? ORDER BY created_at ASC, id ASC`, jobID)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to list applications", err)
	}
	defer rows.Close()
	var items []applicant.Application
	for rows.Next() {
		app, err := scanApplication(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *app)
	}
	if err := rows.Err(); err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to list applications", err)
	}
	return items, nil
}

func scanApplication(row scanner) (*applicant.Application, error) {
	var (
		app       applicant.Application
		status    string
		createdAt int64
		updatedAt int64
	)
	if err := row.Scan(&app.ID, &app.JobID, &app.ApplicantID, &status, &createdAt, &updatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.NewError(common.CodeNotFound, "application not found", err)
		}
		return nil, common.NewError(common.CodeInternal, "failed to load application", err)
	}
	app.Status = applicant.ApplicationStatus(status)
	app.CreatedAt = unixTime(createdAt)
	app.UpdatedAt = unixTime(updatedAt)
	return &app, nil
}
