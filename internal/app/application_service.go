package app

import (
	"context"
	"strings"

	"hireboard/internal/common"
	"hireboard/internal/domain/analytics"
	"hireboard/internal/domain/applicant"
)

type ApplicationService struct {
	repo      applicant.ApplicationRepository
	analytics analytics.Repository
}

func NewApplicationService(repo applicant.ApplicationRepository, analytics analytics.Repository) *ApplicationService {
	return &ApplicationService{repo: repo, analytics: analytics}
}

func (s *ApplicationService) Apply(ctx context.Context, jobID, applicantID common.UUID) (*applicant.Application, error) {
	if _, err := s.repo.FindByJobAndApplicant(ctx, jobID, applicantID); err == nil {
		return nil, common.NewError(common.CodeConflict, "already applied", nil)
	} else if !common.Is(err, common.CodeNotFound) {
		return nil, err
	}
	created, err := s.repo.Create(ctx, applicant.Application{
		JobID:       jobID,
		ApplicantID: applicantID,
		Status:      applicant.ApplicationApplied,
	})
	if err != nil {
		return nil, err
	}
	_ = s.analytics.Create(ctx, analytics.Event{Name: "application.created", UserID: &applicantID, Payload: analyticsPayload(ctx, map[string]string{"application_id": created.ID.String(), "job_id": jobID.String()})})
	return created, nil
}

func (s *ApplicationService) UpdateStatus(ctx context.Context, applicationID common.UUID, status applicant.ApplicationStatus, actorID common.UUID) (*applicant.Application, error) {
	next := applicant.ApplicationStatus(strings.ToLower(strings.TrimSpace(string(status))))
	if !next.Valid() {
		return nil, common.NewValidationError("invalid status", map[string]string{"status": "status must be one of applied, screening, interviewing, offered, hired, rejected, withdrawn"})
	}
	current, err := s.repo.GetByID(ctx, applicationID)
	if err != nil {
		return nil, err
	}
	if current.Status == next {
		return current, nil
	}
	if isFinalStatus(current.Status) {
		return nil, common.NewError(common.CodeValidation, "application status is final", nil)
	}
	if !isAllowedTransition(current.Status, next) {
		return nil, common.NewError(common.CodeValidation, "invalid status transition", nil)
	}
	updated, err := s.repo.UpdateStatus(ctx, applicationID, next)
	if err != nil {
		return nil, err
	}
	_ = s.analytics.Create(ctx, analytics.Event{Name: "application.status_changed", UserID: &actorID, Payload: analyticsPayload(ctx, map[string]string{"application_id": updated.ID.String(), "status": string(next)})})
	return updated, nil
}

func (s *ApplicationService) ListByJob(ctx context.Context, jobID common.UUID) ([]applicant.Application, error) {
	items, err := s.repo.ListByJob(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []applicant.Application{}
	}
	return items, nil
}

var pipeline = []applicant.ApplicationStatus{
	applicant.ApplicationApplied,
	applicant.ApplicationScreening,
	applicant.ApplicationInterviewing,
	applicant.ApplicationOffered,
	applicant.ApplicationHired,
}

func isAllowedTransition(from, to applicant.ApplicationStatus) bool {
	if to == applicant.ApplicationRejected || to == applicant.ApplicationWithdrawn {
		return !isFinalStatus(from)
	}
	for i, stage := range pipeline[:len(pipeline)-1] {
		if stage == from {
			return pipeline[i+1] == to
		}
	}
	return false
}

func isFinalStatus(status applicant.ApplicationStatus) bool {
	return status == applicant.ApplicationHired || status == applicant.ApplicationRejected || status == applicant.ApplicationWithdrawn
}
