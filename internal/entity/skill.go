package entity

import (
	"github.com/uptrace/bun"
)

type Skill struct {
	bun.BaseModel `bun:"table:skills"`

	BasicEntity
	Rating      *string `json:"Skill_Rating"      bun:"skill_rating"`
	Description *string `json:"Skill_Description" bun:"skill_description"`
}
