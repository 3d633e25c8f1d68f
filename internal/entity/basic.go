package entity

import "time"

type BasicEntity struct {
	ID        int        `json:"id"         bun:"id,pk,autoincrement"`
	CreatedAt *time.Time `json:"created_at" bun:"created_at,nullzero,default:now()"`
	UpdatedAt *time.Time `json:"updated_at" bun:"updated_at,nullzero"`
}
