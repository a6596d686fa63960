package analytics

import (
	"context"
	"time"

	"hireboard/internal/common"
)

type Event struct {
	ID        common.UUID       `json:"id"`
	Name      string            `json:"name"`
	UserID    *common.UUID      `json:"user_id,omitempty"`
	Payload   map[string]string `json:"payload,omitempty"`
	CreatedAt time.Time         `json:"created_at"`
}

// JobApplications is one row of the applications-per-job metric.
type JobApplications struct {
	JobID        common.UUID `json:"job_id"`
	Applications int64       `json:"applications"`
}

type Repository interface {
	Create(ctx context.Context, event Event) error
	ApplicationsPerJob(ctx context.Context) ([]JobApplications, error)
}
