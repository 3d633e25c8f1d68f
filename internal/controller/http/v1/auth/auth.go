package auth

import (
	"net/http"

	"workforce/backend/foundation/web"
	"workforce/backend/internal/repository/postgres/user"
)

type Controller struct {
	user User
}

func NewController(user User) *Controller {
	return &Controller{user: user}
}

// SignIn checks a userId/password pair. Unlike the rest of the API, login
// reports failures as JSON {success, message} bodies.
func (uc Controller) SignIn(c *web.Context) error {
	var data user.SignInRequest

	if err := c.BindFunc(&data, "UserID", "Password"); err != nil {
		return c.Respond(map[string]interface{}{
			"success": false,
			"message": "userId and password are required",
		}, http.StatusBadRequest)
	}

	if err := uc.user.CheckCredentials(c.Ctx, *data.UserID, *data.Password); err != nil {
		if webErr, ok := web.IsRequestError(err); ok && webErr.Status == http.StatusUnauthorized {
			return c.Respond(map[string]interface{}{
				"success": false,
				"message": "Invalid user ID or password",
			}, http.StatusUnauthorized)
		}

		return c.Respond(map[string]interface{}{
			"success": false,
			"message": "Internal server error",
		}, http.StatusInternalServerError)
	}

	return c.Respond(map[string]interface{}{"success": true}, http.StatusOK)
}
