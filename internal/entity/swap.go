package entity

import (
	"time"

	"github.com/uptrace/bun"
)

// UserSwap pairs an absent user with a present substitute for one
// date/shift/line slot. A unique index on (absent_userid, shift_date,
// shift_id, line) keeps one active swap per slot.
type UserSwap struct {
	bun.BaseModel `bun:"table:user_swaps"`

	BasicEntity
	ShiftDate    *time.Time `json:"shift_date"    bun:"shift_date"`
	StageID      *int       `json:"stage_id"      bun:"stage_id"`
	ShiftID      *string    `json:"shift_id"      bun:"shift_id"`
	Line         *string    `json:"line"          bun:"line"`
	AbsentUserID *string    `json:"absent_userid" bun:"absent_userid"`
	SwapUserID   *string    `json:"swap_userid"   bun:"swap_userid"`
}

// UserSkill links a user to a stage with a skill rating. The set of rows per
// user is replaced wholesale on every save.
type UserSkill struct {
	bun.BaseModel `bun:"table:user_skills"`

	ID       int        `json:"id"        bun:"id,pk,autoincrement"`
	UserID   *string    `json:"userid"    bun:"userid"`
	StageID  *int       `json:"stage_id"  bun:"stage_id"`
	SkillID  *int       `json:"skill_id"  bun:"skill_id"`
	UpdateAt *time.Time `json:"update_at" bun:"update_at"`
}
