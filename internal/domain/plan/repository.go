package plan

import (
	"context"

	"hireboard/internal/common"
)

type Repository interface {
	Create(ctx context.Context, plan Plan) (*Plan, error)
	Update(ctx context.Context, plan Plan) (*Plan, error)
	GetByID(ctx context.Context, id common.UUID) (*Plan, error)
	GetByName(ctx context.Context, name string) (*Plan, error)
	List(ctx context.Context) ([]Plan, error)
	Delete(ctx context.Context, id common.UUID) error
}
