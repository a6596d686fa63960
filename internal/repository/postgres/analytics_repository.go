package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"hireboard/internal/common"
	"hireboard/internal/domain/analytics"
)

type AnalyticsRepository struct {
	db *sql.DB
}

func NewAnalyticsRepository(db *sql.DB) *AnalyticsRepository {
	return &AnalyticsRepository{db: db}
}

func (r *AnalyticsRepository) Create(ctx context.Context, event analytics.Event) error {
	event.ID = common.NewUUID()
	if event.CreatedAt.IsZero() {
		event.CreatedAt = time.Now().UTC()
	}
	payload, err := json.Marshal(event.Payload)
	if err != nil {
		return common.NewError(common.CodeInternal, "failed to encode analytics payload", err)
	}
	if event.Payload == nil {
		payload = []byte("{}")
	}
	_, err = r.db.ExecContext(ctx, `INSERT INTO analytics_events (id, name, user_id, payload, created_at) VALUES ($1, $2, $3, $4, $5)`,
		event.ID, event.Name, event.UserID, string(payload), event.CreatedAt)
	if err != nil {
		return common.NewError(common.CodeInternal, "failed to record analytics event", err)
	}
	return nil
}

func (r *AnalyticsRepository) ApplicationsPerJob(ctx context.Context) ([]analytics.JobApplications, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT job_id, COUNT(*) FROM applications GROUP BY job_id ORDER BY COUNT(*) DESC, job_id ASC`)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to count applications", err)
	}
	defer rows.Close()
	var items []analytics.JobApplications
	for rows.Next() {
		var item analytics.JobApplications
		if err := rows.Scan(&item.JobID, &item.Applications); err != nil {
			return nil, common.NewError(common.CodeInternal, "failed to scan application count", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to count applications", err)
	}
	return items, nil
}
