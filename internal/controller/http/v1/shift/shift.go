package shift

import (
	"net/http"
	"reflect"

	"workforce/backend/foundation/web"
	"workforce/backend/internal/pkg/cache"
	"workforce/backend/internal/repository/postgres/shift"
)

type Controller struct {
	shift UserShift
	cache *cache.Cache
}

func NewController(shift UserShift, cache *cache.Cache) *Controller {
	return &Controller{shift: shift, cache: cache}
}

// Save ingests an uploaded roster. Chunks are independent; the 200 is the
// best-effort acknowledgment the import screen expects even when some
// chunks failed (failures are logged server-side).
func (uc Controller) Save(c *web.Context) error {
	var rows []shift.SaveRow
	if err := c.ShouldBindJSON(&rows); err != nil {
		return c.RespondText("invalid shift payload", http.StatusBadRequest)
	}

	if _, err := uc.shift.Save(c.Ctx, rows); err != nil {
		return c.RespondError(err)
	}

	uc.cache.Invalidate(c.Ctx, cache.KeyShiftOptions, cache.KeyLineOptions)

	return c.RespondText("User shifts saved successfully.", http.StatusOK)
}

func (uc Controller) GetList(c *web.Context) error {
	var filterDate *string
	if date, ok := c.GetQueryFunc(reflect.String, "date").(*string); ok {
		filterDate = date
	}
	if err := c.ValidQuery(); err != nil {
		return c.RespondError(err)
	}

	list, err := uc.shift.GetList(c.Ctx, filterDate)
	if err != nil {
		return c.RespondError(err)
	}

	if list == nil {
		list = []shift.GetListResponse{}
	}

	return c.Respond(list, http.StatusOK)
}

func (uc Controller) GetShiftOptions(c *web.Context) error {
	var list []shift.ShiftOption
	if uc.cache.GetJSON(c.Ctx, cache.KeyShiftOptions, &list) {
		return c.Respond(list, http.StatusOK)
	}

	list, err := uc.shift.GetShiftOptions(c.Ctx)
	if err != nil {
		return c.RespondError(err)
	}

	if list == nil {
		list = []shift.ShiftOption{}
	}

	uc.cache.SetJSON(c.Ctx, cache.KeyShiftOptions, list)

	return c.Respond(list, http.StatusOK)
}

func (uc Controller) GetLineOptions(c *web.Context) error {
	var list []shift.LineOption
	if uc.cache.GetJSON(c.Ctx, cache.KeyLineOptions, &list) {
		return c.Respond(list, http.StatusOK)
	}

	list, err := uc.shift.GetLineOptions(c.Ctx)
	if err != nil {
		return c.RespondError(err)
	}

	if list == nil {
		list = []shift.LineOption{}
	}

	uc.cache.SetJSON(c.Ctx, cache.KeyLineOptions, list)

	return c.Respond(list, http.StatusOK)
}
