package location

import (
	"context"
	"time"

	"hireboard/internal/common"
)

type Location struct {
	ID        common.UUID `json:"id"`
	Name      string      `json:"name"`
	City      string      `json:"city"`
	Country   string      `json:"country"`
	CreatedAt time.Time   `json:"created_at"`
}

type Repository interface {
	Create(ctx context.Context, location Location) (*Location, error)
	GetByName(ctx context.Context, name string) (*Location, error)
	List(ctx context.Context, limit, offset int) ([]Location, error)
}
