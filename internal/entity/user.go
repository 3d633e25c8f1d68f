package entity

import (
	"time"

	"github.com/uptrace/bun"
)

// User mirrors the external HR master; this system only reads it.
type User struct {
	bun.BaseModel `bun:"table:users"`

	BasicEntity
	UserID        *string    `json:"userid"    bun:"userid"`
	Name          *string    `json:"name"      bun:"name"`
	DepartmentID  *int       `json:"dptid"     bun:"dptid"`
	DesignationID *int       `json:"dsgid"     bun:"dsgid"`
	EnrollDate    *time.Time `json:"Enrolldt"  bun:"enroll_dt"`
	Enabled       *bool      `json:"enabled"   bun:"enabled"`
}

type Department struct {
	bun.BaseModel `bun:"table:departments"`

	BasicEntity
	Name *string `json:"DeptName" bun:"name"`
}

type Designation struct {
	bun.BaseModel `bun:"table:designations"`

	BasicEntity
	Name *string `json:"name" bun:"name"`
}

// Login holds the credential rows checked by /api/login.
type Login struct {
	bun.BaseModel `bun:"table:user_logins"`

	BasicEntity
	UserID       *string `json:"user_id"  bun:"user_id"`
	PasswordHash *string `json:"-"        bun:"password_hash"`
}
