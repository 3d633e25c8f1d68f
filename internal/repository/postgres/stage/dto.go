package stage

import (
	"time"

	"github.com/uptrace/bun"
)

type GetListResponse struct {
	ID   int     `json:"Stage_id"`
	Name *string `json:"Stage_name"`
	Type *string `json:"Stage_Type"`
}

// LookupResponse is the trimmed row served to form dropdowns.
type LookupResponse struct {
	ID   int     `json:"Stage_id"`
	Name *string `json:"Stage_name"`
}

type CreateRequest struct {
	Name *string `json:"Stage_name" form:"Stage_name"`
	Type *string `json:"Stage_Type" form:"Stage_Type"`
}

type CreateResponse struct {
	bun.BaseModel `bun:"table:stages"`

	ID int `json:"Stage_id" bun:"-"`

	Name *string `json:"Stage_name" bun:"stage_name"`
	Type *string `json:"Stage_Type" bun:"stage_type"`

	Message string `json:"message" bun:"-"`

	CreatedAt time.Time `json:"-" bun:"created_at"`
}

type UpdateRequest struct {
	ID   int     `json:"Stage_id"   form:"Stage_id"`
	Name *string `json:"Stage_name" form:"Stage_name"`
	Type *string `json:"Stage_Type" form:"Stage_Type"`
}
