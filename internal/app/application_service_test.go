package app

import (
	"context"
	"testing"

	"hireboard/internal/common"
	"hireboard/internal/domain/analytics"
	"hireboard/internal/domain/applicant"
)

func TestApplicationServiceApplyRejectsDuplicate(t *testing.T) {
	service := NewApplicationService(newFakeApplicationRepo(), &recordingAnalyticsRepo{})
	jobID, applicantID := common.NewUUID(), common.NewUUID()

	created, err := service.Apply(context.Background(), jobID, applicantID)
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if created.Status != applicant.ApplicationApplied {
		t.Fatalf("expected applied status, got %s", created.Status)
	}
	if _, err := service.Apply(context.Background(), jobID, applicantID); !common.Is(err, common.CodeConflict) {
		t.Fatalf("expected conflict error, got %v", err)
	}
}

func TestApplicationServiceStatusPipeline(t *testing.T) {
	service := NewApplicationService(newFakeApplicationRepo(), &recordingAnalyticsRepo{})
	actor := common.NewUUID()
	created, err := service.Apply(context.Background(), common.NewUUID(), common.NewUUID())
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}

	if _, err := service.UpdateStatus(context.Background(), created.ID, applicant.ApplicationOffered, actor); !common.Is(err, common.CodeValidation) {
		t.Fatalf("expected skipping stages to fail, got %v", err)
	}
	for _, next := range []applicant.ApplicationStatus{applicant.ApplicationScreening, applicant.ApplicationInterviewing, applicant.ApplicationOffered, applicant.ApplicationHired} {
		updated, err := service.UpdateStatus(context.Background(), created.ID, next, actor)
		if err != nil {
			t.Fatalf("expected transition to %s, got %v", next, err)
		}
		if updated.Status != next {
			t.Fatalf("expected %s, got %s", next, updated.Status)
		}
	}
	if _, err := service.UpdateStatus(context.Background(), created.ID, applicant.ApplicationRejected, actor); !common.Is(err, common.CodeValidation) {
		t.Fatalf("expected final status to be locked, got %v", err)
	}
}

func TestApplicationServiceRejectFromAnyOpenStage(t *testing.T) {
	service := NewApplicationService(newFakeApplicationRepo(), &recordingAnalyticsRepo{})
	created, err := service.Apply(context.Background(), common.NewUUID(), common.NewUUID())
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	updated, err := service.UpdateStatus(context.Background(), created.ID, " Rejected ", common.NewUUID())
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if updated.Status != applicant.ApplicationRejected {
		t.Fatalf("expected rejected, got %s", updated.Status)
	}
}

func TestApplicationServiceUnknownStatus(t *testing.T) {
	service := NewApplicationService(newFakeApplicationRepo(), &recordingAnalyticsRepo{})
	if _, err := service.UpdateStatus(context.Background(), common.NewUUID(), "archived", common.NewUUID()); !common.Is(err, common.CodeValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestAnalyticsServiceNeverReturnsNil(t *testing.T) {
	service := NewAnalyticsService(&recordingAnalyticsRepo{})
	items, err := service.ApplicationsPerJob(context.Background())
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if items == nil || len(items) != 0 {
		t.Fatalf("expected empty slice, got %v", items)
	}

	repo := &recordingAnalyticsRepo{counts: []analytics.JobApplications{{JobID: "job-1", Applications: 3}}}
	items, err = NewAnalyticsService(repo).ApplicationsPerJob(context.Background())
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if len(items) != 1 || items[0].Applications != 3 {
		t.Fatalf("unexpected items %v", items)
	}
}
