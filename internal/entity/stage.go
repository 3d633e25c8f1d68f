package entity

import (
	"github.com/uptrace/bun"
)

// StageType values accepted by the stage master.
const (
	StageTypePrelamination = "Prelamination"
	StageTypeLaminator     = "Laminator & Framing Line"
	StageTypeTesting       = "Testing & Packing Line"
)

type Stage struct {
	bun.BaseModel `bun:"table:stages"`

	BasicEntity
	Name *string `json:"Stage_name" bun:"stage_name"`
	Type *string `json:"Stage_Type" bun:"stage_type"`
}
