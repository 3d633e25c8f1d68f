package skills

import (
	"net/http"
	"reflect"

	"workforce/backend/foundation/web"
	"workforce/backend/internal/repository/postgres/skills"
)

type Controller struct {
	skills UserSkills
}

func NewController(skills UserSkills) *Controller {
	return &Controller{skills}
}

// Save replaces the skill sets of every employee in the request, atomically.
func (uc Controller) Save(c *web.Context) error {
	var request skills.SaveRequest
	if err := c.BindFunc(&request); err != nil {
		return c.RespondError(err)
	}

	if len(request.Data) == 0 {
		return c.RespondText("Invalid data format", http.StatusBadRequest)
	}

	if err := uc.skills.Save(c.Ctx, request); err != nil {
		return c.RespondError(err)
	}

	return c.RespondText("Skills saved successfully", http.StatusOK)
}

func (uc Controller) GetList(c *web.Context) error {
	list, err := uc.skills.GetList(c.Ctx)
	if err != nil {
		return c.RespondError(err)
	}

	if list == nil {
		list = []skills.GetListResponse{}
	}

	return c.Respond(list, http.StatusOK)
}

func (uc Controller) DeleteByUserID(c *web.Context) error {
	userID := c.GetParam(reflect.String, "userId").(string)

	if err := c.ValidParam(); err != nil {
		return c.RespondError(err)
	}

	if err := uc.skills.DeleteByUserID(c.Ctx, userID); err != nil {
		return c.RespondError(err)
	}

	return c.RespondText("OK", http.StatusOK)
}
