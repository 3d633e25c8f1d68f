package skill

import (
	"context"

	"workforce/backend/internal/repository/postgres/skill"
)

type Skill interface {
	GetList(ctx context.Context) ([]skill.GetListResponse, error)
	GetDetailById(ctx context.Context, id int) (skill.GetDetailByIdResponse, error)
	Create(ctx context.Context, request skill.CreateRequest) (skill.CreateResponse, error)
	UpdateAll(ctx context.Context, request skill.UpdateRequest) error
}
