package app

import (
	"context"
	"sort"
	"sync"
	"time"

	"hireboard/internal/common"
	"hireboard/internal/domain/analytics"
	"hireboard/internal/domain/applicant"
	"hireboard/internal/domain/location"
	"hireboard/internal/domain/plan"
)

type fakePlanRepo struct {
	mu    sync.Mutex
	plans map[common.UUID]plan.Plan
}

func newFakePlanRepo() *fakePlanRepo {
	return &fakePlanRepo{plans: make(map[common.UUID]plan.Plan)}
}

func (r *fakePlanRepo) Create(ctx context.Context, p plan.Plan) (*plan.Plan, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p.ID = common.NewUUID()
	p.CreatedAt = time.Now().UTC()
	p.UpdatedAt = p.CreatedAt
	r.plans[p.ID] = p
	return &p, nil
}

func (r *fakePlanRepo) Update(ctx context.Context, p plan.Plan) (*plan.Plan, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.plans[p.ID]; !ok {
		return nil, common.NewError(common.CodeNotFound, "plan not found", nil)
	}
	p.UpdatedAt = time.Now().UTC()
	r.plans[p.ID] = p
	return &p, nil
}

func (r *fakePlanRepo) GetByID(ctx context.Context, id common.UUID) (*plan.Plan, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.plans[id]
	if !ok {
		return nil, common.NewError(common.CodeNotFound, "plan not found", nil)
	}
	return &p, nil
}

func (r *fakePlanRepo) GetByName(ctx context.Context, name string) (*plan.Plan, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range r.plans {
		if p.Name == name {
			copy := p
			return &copy, nil
		}
	}
	return nil, common.NewError(common.CodeNotFound, "plan not found", nil)
}

func (r *fakePlanRepo) List(ctx context.Context) ([]plan.Plan, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var items []plan.Plan
	for _, p := range r.plans {
		items = append(items, p)
	}
	sort.Slice(items, func(i, j int) bool { return items[i].Price < items[j].Price })
	return items, nil
}

func (r *fakePlanRepo) Delete(ctx context.Context, id common.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.plans[id]; !ok {
		return common.NewError(common.CodeNotFound, "plan not found", nil)
	}
	delete(r.plans, id)
	return nil
}

type fakeLocationRepo struct {
	mu        sync.Mutex
	items     []location.Location
	lastLimit int
}

func (r *fakeLocationRepo) Create(ctx context.Context, l location.Location) (*location.Location, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	l.ID = common.NewUUID()
	l.CreatedAt = time.Now().UTC()
	r.items = append(r.items, l)
	return &l, nil
}

func (r *fakeLocationRepo) GetByName(ctx context.Context, name string) (*location.Location, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, l := range r.items {
		if l.Name == name {
			copy := l
			return &copy, nil
		}
	}
	return nil, common.NewError(common.CodeNotFound, "location not found", nil)
}

func (r *fakeLocationRepo) List(ctx context.Context, limit, offset int) ([]location.Location, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lastLimit = limit
	if offset >= len(r.items) {
		return nil, nil
	}
	end := offset + limit
	if end > len(r.items) {
		end = len(r.items)
	}
	return append([]location.Location(nil), r.items[offset:end]...), nil
}

type fakeApplicationRepo struct {
	mu    sync.Mutex
	items map[common.UUID]applicant.Application
}

func newFakeApplicationRepo() *fakeApplicationRepo {
	return &fakeApplicationRepo{items: make(map[common.UUID]applicant.Application)}
}

func (r *fakeApplicationRepo) Create(ctx context.Context, a applicant.Application) (*applicant.Application, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	a.ID = common.NewUUID()
	a.CreatedAt = time.Now().UTC()
	a.UpdatedAt = a.CreatedAt
	r.items[a.ID] = a
	return &a, nil
}

func (r *fakeApplicationRepo) GetByID(ctx context.Context, id common.UUID) (*applicant.Application, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.items[id]
	if !ok {
		return nil, common.NewError(common.CodeNotFound, "application not found", nil)
	}
	return &a, nil
}

func (r *fakeApplicationRepo) FindByJobAndApplicant(ctx context.Context, jobID, applicantID common.UUID) (*applicant.Application, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, a := range r.items {
		if a.JobID == jobID && a.ApplicantID == applicantID {
			copy := a
			return &copy, nil
		}
	}
	return nil, common.NewError(common.CodeNotFound, "application not found", nil)
}

func (r *fakeApplicationRepo) UpdateStatus(ctx context.Context, id common.UUID, status applicant.ApplicationStatus) (*applicant.Application, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.items[id]
	if !ok {
		return nil, common.NewError(common.CodeNotFound, "application not found", nil)
	}
	a.Status = status
	a.UpdatedAt = time.Now().UTC()
	r.items[id] = a
	return &a, nil
}

func (r *fakeApplicationRepo) ListByJob(ctx context.Context, jobID common.UUID) ([]applicant.Application, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var items []applicant.Application
	for _, a := range r.items {
		if a.JobID == jobID {
			items = append(items, a)
		}
	}
	return items, nil
}

type recordingAnalyticsRepo struct {
	mu     sync.Mutex
	events []analytics.Event
	counts []analytics.JobApplications
}

func (r *recordingAnalyticsRepo) Create(ctx context.Context, event analytics.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event)
	return nil
}

func (r *recordingAnalyticsRepo) ApplicationsPerJob(ctx context.Context) ([]analytics.JobApplications, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.counts, nil
}

func (r *recordingAnalyticsRepo) names() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	names := make([]string, 0, len(r.events))
	for _, event := range r.events {
		names = append(names, event.Name)
	}
	return names
}
