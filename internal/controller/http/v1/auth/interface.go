package auth

import (
	"context"
)

type User interface {
	CheckCredentials(ctx context.Context, userID, password string) error
}
