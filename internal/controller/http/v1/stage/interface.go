package stage

import (
	"context"

	"workforce/backend/internal/repository/postgres/stage"
)

type Stage interface {
	GetList(ctx context.Context) ([]stage.GetListResponse, error)
	GetLookup(ctx context.Context) ([]stage.LookupResponse, error)
	Create(ctx context.Context, request stage.CreateRequest) (stage.CreateResponse, error)
	UpdateAll(ctx context.Context, request stage.UpdateRequest) error
}
