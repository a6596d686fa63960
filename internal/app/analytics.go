package app

import (
	"context"

	"hireboard/internal/domain/analytics"
	"hireboard/internal/observability"
)

type AnalyticsService struct {
	repo analytics.Repository
}

func NewAnalyticsService(repo analytics.Repository) *AnalyticsService {
	return &AnalyticsService{repo: repo}
}

func (s *AnalyticsService) ApplicationsPerJob(ctx context.Context) ([]analytics.JobApplications, error) {
	items, err := s.repo.ApplicationsPerJob(ctx)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []analytics.JobApplications{}
	}
	return items, nil
}

func analyticsPayload(ctx context.Context, payload map[string]string) map[string]string {
	if requestID := observability.RequestIDFromContext(ctx); requestID != "" {
		if payload == nil {
			payload = map[string]string{}
		}
		payload["request_id"] = requestID
	}
	return payload
}
