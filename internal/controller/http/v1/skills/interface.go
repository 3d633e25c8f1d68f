package skills

import (
	"context"

	"workforce/backend/internal/repository/postgres/skills"
)

type UserSkills interface {
	Save(ctx context.Context, request skills.SaveRequest) error
	GetList(ctx context.Context) ([]skills.GetListResponse, error)
	DeleteByUserID(ctx context.Context, userID string) error
}
