package skill

import (
	"net/http"
	"reflect"

	"workforce/backend/foundation/web"
	"workforce/backend/internal/repository/postgres/skill"
)

type Controller struct {
	skill Skill
}

func NewController(skill Skill) *Controller {
	return &Controller{skill}
}

func (uc Controller) GetList(c *web.Context) error {
	list, err := uc.skill.GetList(c.Ctx)
	if err != nil {
		return c.RespondError(err)
	}

	if list == nil {
		list = []skill.GetListResponse{}
	}

	return c.Respond(list, http.StatusOK)
}

func (uc Controller) GetDetailById(c *web.Context) error {
	id := c.GetParam(reflect.Int, "id").(int)

	if err := c.ValidParam(); err != nil {
		return c.RespondError(err)
	}

	response, err := uc.skill.GetDetailById(c.Ctx, id)
	if err != nil {
		return c.RespondError(err)
	}

	return c.Respond(response, http.StatusOK)
}

func (uc Controller) Create(c *web.Context) error {
	var request skill.CreateRequest
	if err := c.BindFunc(&request); err != nil {
		return c.RespondError(err)
	}

	if request.Rating == nil || request.Description == nil {
		return c.RespondText("Skill_Rating and Skill_Description are required", http.StatusBadRequest)
	}

	response, err := uc.skill.Create(c.Ctx, request)
	if err != nil {
		return c.RespondError(err)
	}

	return c.Respond(response, http.StatusCreated)
}

func (uc Controller) UpdateAll(c *web.Context) error {
	id := c.GetParam(reflect.Int, "id").(int)

	if err := c.ValidParam(); err != nil {
		return c.RespondError(err)
	}

	var request skill.UpdateRequest
	if err := c.BindFunc(&request); err != nil {
		return c.RespondError(err)
	}

	if request.Rating == nil || request.Description == nil {
		return c.RespondText("Skill_Rating and Skill_Description are required", http.StatusBadRequest)
	}

	request.ID = id

	if err := uc.skill.UpdateAll(c.Ctx, request); err != nil {
		return c.RespondError(err)
	}

	return c.Respond(map[string]interface{}{
		"Skill_id":          id,
		"Skill_Rating":      request.Rating,
		"Skill_Description": request.Description,
		"message":           "Skill updated successfully",
	}, http.StatusOK)
}
