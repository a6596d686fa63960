package plan

import (
	"time"

	"hireboard/internal/common"
)

type Plan struct {
	ID        common.UUID `json:"id"`
	Name      string      `json:"name"`
	Price     int64       `json:"price"`
	Duration  int64       `json:"duration"`
	Features  []string    `json:"features"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
}

// Input is a validated create request.
type Input struct {
	Name     string   `json:"name"`
	Price    int64    `json:"price"`
	Duration int64    `json:"duration"`
	Features []string `json:"features"`
}

// Patch is a validated update request; nil fields were absent.
type Patch struct {
	Name     *string  `json:"name,omitempty"`
	Price    *int64   `json:"price,omitempty"`
	Duration *int64   `json:"duration,omitempty"`
	Features []string `json:"features,omitempty"`
}

func (p Patch) IsEmpty() bool {
	return p.Name == nil && p.Price == nil && p.Duration == nil && p.Features == nil
}

// Apply returns a copy of current with the present patch fields set.
func (p Patch) Apply(current Plan) Plan {
	next := current
	if p.Name != nil {
		next.Name = *p.Name
	}
	if p.Price != nil {
		next.Price = *p.Price
	}
	if p.Duration != nil {
		next.Duration = *p.Duration
	}
	if p.Features != nil {
		next.Features = append([]string(nil), p.Features...)
	}
	return next
}
