package entity

import (
	"time"

	"github.com/uptrace/bun"
)

// UserShift is one roster row: a user assigned to a stage, shift code and
// line for a date range. Rows are only ever bulk-inserted, never updated.
type UserShift struct {
	bun.BaseModel `bun:"table:user_shifts"`

	BasicEntity
	ShiftDateFrom *time.Time `json:"Shift_date_from" bun:"shift_date_from"`
	ShiftDateTo   *time.Time `json:"Shift_date_to"   bun:"shift_date_to"`
	UserID        *string    `json:"userid"          bun:"userid"`
	StageID       *int       `json:"stage_id"        bun:"stage_id"`
	ShiftID       *string    `json:"SHIFT_ID"        bun:"shift_id"`
	Line          *string    `json:"LINE"            bun:"line"`
}

// PunchEvent is the external badge-clock log. The application only reads the
// earliest event per user per calendar day.
type PunchEvent struct {
	bun.BaseModel `bun:"table:punch_events"`

	ID        int        `json:"id"        bun:"id,pk,autoincrement"`
	UserID    *string    `json:"userid"    bun:"userid"`
	EventTime *time.Time `json:"edatetime" bun:"edatetime"`
}
