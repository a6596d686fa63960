package applicant

import (
	"context"
	"time"

	"hireboard/internal/common"
)

type Applicant struct {
	ID        common.UUID `json:"id"`
	FullName  string      `json:"full_name"`
	Email     string      `json:"email"`
	Phone     string      `json:"phone,omitempty"`
	ResumeURL string      `json:"resume_url,omitempty"`
	Education []Education `json:"education,omitempty"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
}

type Education struct {
	ID           common.UUID `json:"id"`
	ApplicantID  common.UUID `json:"applicant_id"`
	Institution  string      `json:"institution"`
	Degree       string      `json:"degree"`
	FieldOfStudy string      `json:"field_of_study,omitempty"`
	StartDate    time.Time   `json:"start_date"`
	EndDate      *time.Time  `json:"end_date,omitempty"`
}

type Application struct {
	ID          common.UUID       `json:"id"`
	JobID       common.UUID       `json:"job_id"`
	ApplicantID common.UUID       `json:"applicant_id"`
	Status      ApplicationStatus `json:"status"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
}

type Interview struct {
	ID            common.UUID     `json:"id"`
	ApplicationID common.UUID     `json:"application_id"`
	Type          InterviewType   `json:"type"`
	Status        InterviewStatus `json:"status"`
	ScheduledAt   time.Time       `json:"scheduled_at"`
	Notes         string          `json:"notes,omitempty"`
}

type ApplicationRepository interface {
	Create(ctx context.Context, application Application) (*Application, error)
	GetByID(ctx context.Context, id common.UUID) (*Application, error)
	FindByJobAndApplicant(ctx context.Context, jobID, applicantID common.UUID) (*Application, error)
	UpdateStatus(ctx context.Context, id common.UUID, status ApplicationStatus) (*Application, error)
	ListByJob(ctx context.Context, jobID common.UUID) ([]Application, error)
}
