package skill

import (
	"time"

	"github.com/uptrace/bun"
)

type GetListResponse struct {
	ID          int     `json:"Skill_id"`
	Rating      *string `json:"Skill_Rating"`
	Description *string `json:"Skill_Description"`
}

type GetDetailByIdResponse struct {
	ID          int     `json:"Skill_id"`
	Rating      *string `json:"Skill_Rating"`
	Description *string `json:"Skill_Description"`
}

type CreateRequest struct {
	Rating      *string `json:"Skill_Rating"      form:"Skill_Rating"`
	Description *string `json:"Skill_Description" form:"Skill_Description"`
}

type CreateResponse struct {
	bun.BaseModel `bun:"table:skills"`

	ID int `json:"Skill_id" bun:"-"`

	Rating      *string `json:"Skill_Rating"      bun:"skill_rating"`
	Description *string `json:"Skill_Description" bun:"skill_description"`

	Message string `json:"message" bun:"-"`

	CreatedAt time.Time `json:"-" bun:"created_at"`
}

type UpdateRequest struct {
	ID          int     `json:"Skill_id"          form:"Skill_id"`
	Rating      *string `json:"Skill_Rating"      form:"Skill_Rating"`
	Description *string `json:"Skill_Description" form:"Skill_Description"`
}
