package app

import (
	"context"
	"log/slog"

	"hireboard/internal/common"
	"hireboard/internal/domain/analytics"
	"hireboard/internal/domain/plan"
)

type PlanService struct {
	repo      plan.Repository
	analytics analytics.Repository
}

func NewPlanService(repo plan.Repository, analytics analytics.Repository) *PlanService {
	return &PlanService{repo: repo, analytics: analytics}
}

func (s *PlanService) Create(ctx context.Context, input plan.Input) (*plan.Plan, error) {
	if err := s.ensureNameFree(ctx, input.Name, ""); err != nil {
		return nil, err
	}
	created, err := s.repo.Create(ctx, plan.Plan{
		Name:     input.Name,
		Price:    input.Price,
		Duration: input.Duration,
		Features: input.Features,
	})
	if err != nil {
		return nil, err
	}
	_ = s.analytics.Create(ctx, analytics.Event{Name: "plan.created", Payload: analyticsPayload(ctx, map[string]string{"plan_id": created.ID.String()})})
	return created, nil
}

func (s *PlanService) Update(ctx context.Context, id common.UUID, patch plan.Patch) (*plan.Plan, error) {
	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if patch.IsEmpty() {
		return current, nil
	}
	if patch.Name != nil && *patch.Name != current.Name {
		if err := s.ensureNameFree(ctx, *patch.Name, current.ID); err != nil {
			return nil, err
		}
	}
	updated, err := s.repo.Update(ctx, patch.Apply(*current))
	if err != nil {
		return nil, err
	}
	_ = s.analytics.Create(ctx, analytics.Event{Name: "plan.updated", Payload: analyticsPayload(ctx, map[string]string{"plan_id": updated.ID.String()})})
	return updated, nil
}

func (s *PlanService) Get(ctx context.Context, id common.UUID) (*plan.Plan, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *PlanService) List(ctx context.Context) ([]plan.Plan, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []plan.Plan{}
	}
	return items, nil
}

func (s *PlanService) Delete(ctx context.Context, id common.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	_ = s.analytics.Create(ctx, analytics.Event{Name: "plan.deleted", Payload: analyticsPayload(ctx, map[string]string{"plan_id": id.String()})})
	return nil
}

// EnsurePlans creates every input whose name is not taken yet and returns how
// many were created.
func (s *PlanService) EnsurePlans(ctx context.Context, inputs []plan.Input) (int, error) {
	created := 0
	for _, input := range inputs {
		if _, err := s.repo.GetByName(ctx, input.Name); err == nil {
			continue
		} else if !common.Is(err, common.CodeNotFound) {
			return created, err
		}
		if _, err := s.Create(ctx, input); err != nil {
			return created, err
		}
		slog.InfoContext(ctx, "plan seeded", slog.String("name", input.Name))
		created++
	}
	return created, nil
}

func (s *PlanService) ensureNameFree(ctx context.Context, name string, self common.UUID) error {
	existing, err := s.repo.GetByName(ctx, name)
	if err != nil {
		if common.Is(err, common.CodeNotFound) {
			return nil
		}
		return err
	}
	if existing.ID == self {
		return nil
	}
	return common.NewError(common.CodeConflict, "plan name already exists", nil)
}
