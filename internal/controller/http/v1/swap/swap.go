package swap

import (
	"net/http"

	"workforce/backend/foundation/web"
	"workforce/backend/internal/repository/postgres/swap"
)

type Controller struct {
	swap UserSwap
}

func NewController(swap UserSwap) *Controller {
	return &Controller{swap}
}

// GetCandidates lists present workers eligible to stand in for an absence.
func (uc Controller) GetCandidates(c *web.Context) error {
	filter := swap.CandidateFilter{
		Date:      c.Query("date"),
		ShiftID:   c.Query("shiftId"),
		StageName: c.Query("Stage_name"),
	}

	if filter.Date == "" || filter.ShiftID == "" {
		return c.Respond(map[string]interface{}{
			"error": "Date and Shift ID are required parameters.",
		}, http.StatusBadRequest)
	}

	list, err := uc.swap.GetCandidates(c.Ctx, filter)
	if err != nil {
		return c.RespondError(err)
	}

	if list == nil {
		list = []swap.CandidateResponse{}
	}

	return c.Respond(list, http.StatusOK)
}

// Save persists the batch of swaps picked in the UI. Rows are inserted
// independently; a partial failure leaves earlier rows in place.
func (uc Controller) Save(c *web.Context) error {
	var rows []swap.SaveRow
	if err := c.ShouldBindJSON(&rows); err != nil {
		return c.RespondText("invalid swap payload", http.StatusBadRequest)
	}

	if _, err := uc.swap.Save(c.Ctx, rows); err != nil {
		return c.RespondError(err)
	}

	return c.RespondText("All swap details saved successfully", http.StatusOK)
}
