package app

import (
	"context"
	"strings"

	"golang.org/x/text/unicode/norm"

	"hireboard/internal/common"
	"hireboard/internal/domain/analytics"
	"hireboard/internal/domain/location"
)

const (
	defaultLocationLimit = 50
	maxLocationLimit     = 200
)

type LocationService struct {
	repo      location.Repository
	analytics analytics.Repository
}

func NewLocationService(repo location.Repository, analytics analytics.Repository) *LocationService {
	return &LocationService{repo: repo, analytics: analytics}
}

func (s *LocationService) List(ctx context.Context, limit, offset int) ([]location.Location, error) {
	if limit <= 0 {
		limit = defaultLocationLimit
	}
	if limit > maxLocationLimit {
		limit = maxLocationLimit
	}
	if offset < 0 {
		offset = 0
	}
	items, err := s.repo.List(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []location.Location{}
	}
	return items, nil
}

func (s *LocationService) Create(ctx context.Context, l location.Location) (*location.Location, error) {
	l.Name = normalizeText(l.Name)
	l.City = normalizeText(l.City)
	l.Country = strings.ToUpper(normalizeText(l.Country))
	fields := map[string]string{}
	if l.Name == "" {
		fields["name"] = "name is required"
	}
	if l.City == "" {
		fields["city"] = "city is required"
	}
	if len(l.Country) != 2 {
		fields["country"] = "country must be a 2-letter code"
	}
	if len(fields) > 0 {
		return nil, common.NewValidationError("invalid location", fields)
	}
	if _, err := s.repo.GetByName(ctx, l.Name); err == nil {
		return nil, common.NewError(common.CodeConflict, "location already exists", nil)
	} else if !common.Is(err, common.CodeNotFound) {
		return nil, err
	}
	created, err := s.repo.Create(ctx, l)
	if err != nil {
		return nil, err
	}
	_ = s.analytics.Create(ctx, analytics.Event{Name: "location.created", Payload: analyticsPayload(ctx, map[string]string{"location_id": created.ID.String()})})
	return created, nil
}

// normalizeText trims and NFC-normalizes so composed and decomposed forms of
// the same name compare equal.
func normalizeText(value string) string {
	return norm.NFC.String(strings.TrimSpace(value))
}
