package attendance

import (
	"net/http"
	"strings"

	"workforce/backend/foundation/web"
	"workforce/backend/internal/repository/postgres/attendance"
)

type Controller struct {
	attendance Attendance
}

func NewController(attendance Attendance) *Controller {
	return &Controller{attendance}
}

// splitCSV turns the comma-separated shifts/lines query values into a
// trimmed list, dropping empty segments.
func splitCSV(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}

	return out
}

func (uc Controller) filterFromQuery(c *web.Context) (attendance.Filter, bool) {
	filter := attendance.Filter{
		Date:   c.Query("date"),
		Shifts: splitCSV(c.Query("shifts")),
		Lines:  splitCSV(c.Query("lines")),
	}

	if filter.Date == "" || len(filter.Shifts) == 0 || len(filter.Lines) == 0 {
		return attendance.Filter{}, false
	}

	return filter, true
}

func (uc Controller) drillFilterFromQuery(c *web.Context) attendance.DrillFilter {
	return attendance.DrillFilter{
		Date:      c.Query("date"),
		ShiftID:   c.Query("shiftId"),
		StageName: c.Query("stageName"),
		Line:      c.Query("line"),
	}
}

// GetSummary serves the aggregated allot/present/absent counts per
// effective stage/shift/line group.
func (uc Controller) GetSummary(c *web.Context) error {
	filter, ok := uc.filterFromQuery(c)
	if !ok {
		return c.RespondText("date, shifts and lines are required", http.StatusBadRequest)
	}

	list, err := uc.attendance.GetSummary(c.Ctx, filter)
	if err != nil {
		return c.RespondError(err)
	}

	if list == nil {
		list = []attendance.SummaryResponse{}
	}

	return c.Respond(list, http.StatusOK)
}

func (uc Controller) GetAllotted(c *web.Context) error {
	list, err := uc.attendance.GetAllotted(c.Ctx, uc.drillFilterFromQuery(c))
	if err != nil {
		return c.RespondError(err)
	}

	if list == nil {
		list = []attendance.EmployeeRow{}
	}

	return c.Respond(list, http.StatusOK)
}

func (uc Controller) GetPresent(c *web.Context) error {
	list, err := uc.attendance.GetPresent(c.Ctx, uc.drillFilterFromQuery(c))
	if err != nil {
		return c.RespondError(err)
	}

	if list == nil {
		list = []attendance.EmployeeRow{}
	}

	return c.Respond(list, http.StatusOK)
}

func (uc Controller) GetAbsent(c *web.Context) error {
	list, err := uc.attendance.GetAbsent(c.Ctx, uc.drillFilterFromQuery(c))
	if err != nil {
		return c.RespondError(err)
	}

	if list == nil {
		list = []attendance.AbsentRow{}
	}

	return c.Respond(list, http.StatusOK)
}

// GetShowAll serves the swap-unaware flat status view.
func (uc Controller) GetShowAll(c *web.Context) error {
	filter, ok := uc.filterFromQuery(c)
	if !ok {
		return c.RespondText("date, shifts and lines are required", http.StatusBadRequest)
	}

	list, err := uc.attendance.GetShowAll(c.Ctx, filter)
	if err != nil {
		return c.RespondError(err)
	}

	if list == nil {
		list = []attendance.ShowAllRow{}
	}

	return c.Respond(list, http.StatusOK)
}
