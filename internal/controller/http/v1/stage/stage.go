package stage

import (
	"net/http"
	"reflect"

	"workforce/backend/foundation/web"
	"workforce/backend/internal/repository/postgres/stage"
)

type Controller struct {
	stage Stage
}

func NewController(stage Stage) *Controller {
	return &Controller{stage}
}

func (uc Controller) GetList(c *web.Context) error {
	list, err := uc.stage.GetList(c.Ctx)
	if err != nil {
		return c.RespondError(err)
	}

	if list == nil {
		list = []stage.GetListResponse{}
	}

	return c.Respond(list, http.StatusOK)
}

// GetLookup serves the trimmed id/name list for form dropdowns.
func (uc Controller) GetLookup(c *web.Context) error {
	list, err := uc.stage.GetLookup(c.Ctx)
	if err != nil {
		return c.RespondError(err)
	}

	if list == nil {
		list = []stage.LookupResponse{}
	}

	return c.Respond(list, http.StatusOK)
}

func (uc Controller) Create(c *web.Context) error {
	var request stage.CreateRequest
	if err := c.BindFunc(&request); err != nil {
		return c.RespondError(err)
	}

	if request.Name == nil || request.Type == nil {
		return c.RespondText("Stage_name and Stage_Type are required", http.StatusBadRequest)
	}

	response, err := uc.stage.Create(c.Ctx, request)
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

	var request stage.UpdateRequest
	if err := c.BindFunc(&request); err != nil {
		return c.RespondError(err)
	}

	if request.Name == nil || request.Type == nil {
		return c.RespondText("Stage_name and Stage_Type are required", http.StatusBadRequest)
	}

	request.ID = id

	if err := uc.stage.UpdateAll(c.Ctx, request); err != nil {
		if webErr, ok := web.IsRequestError(err); ok && webErr.Status == http.StatusNotFound {
			return c.RespondText("Stage not found", http.StatusNotFound)
		}
		return c.RespondError(err)
	}

	return c.Respond(map[string]interface{}{
		"Stage_id":   id,
		"Stage_name": request.Name,
		"Stage_Type": request.Type,
		"message":    "Stage updated successfully",
	}, http.StatusOK)
}
