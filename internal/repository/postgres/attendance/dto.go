package attendance

// Filter selects one roster day across a set of shift codes and lines.
type Filter struct {
	Date   string
	Shifts []string
	Lines  []string
}

// DrillFilter narrows a drill-down to one stage/shift/line slot. The shift
// code restricts the roster scan; stage and line are applied after swap
// overrides, so a swapped-in worker is found under the stage they moved to.
type DrillFilter struct {
	Date      string
	ShiftID   string
	StageName string
	Line      string
}

// SummaryResponse is one (effective stage, shift, effective line) group.
// ALLOT = PRESENT + ABSENT holds for every row.
type SummaryResponse struct {
	StageName *string `json:"Stage_name"`
	StageID   *int    `json:"STAGE_ID"`
	ShiftID   string  `json:"SHIFT_ID"`
	Line      string  `json:"LINE"`
	Allot     int     `json:"ALLOT"`
	Present   int     `json:"PRESENT"`
	Absent    int     `json:"ABSENT"`
}

type EmployeeRow struct {
	UserID    string  `json:"USERID"`
	Name      *string `json:"NAME"`
	StageName *string `json:"Stage_name"`
	ShiftID   string  `json:"SHIFT_ID"`
	Line      string  `json:"LINE"`
}

// AbsentRow additionally carries the substitute, rendered "userid-name",
// when a swap has already been recorded for the slot.
type AbsentRow struct {
	UserID       string  `json:"USERID"`
	Name         *string `json:"NAME"`
	StageName    *string `json:"Stage_name"`
	ShiftID      string  `json:"SHIFT_ID"`
	Line         string  `json:"LINE"`
	SwapUserName *string `json:"SWAPUSERNAME"`
}

// ShowAllRow reports the raw assigned stage/line with a textual status; this
// view is deliberately swap-unaware.
type ShowAllRow struct {
	UserID    string  `json:"USERID"`
	Name      *string `json:"NAME"`
	StageName *string `json:"Stage_name"`
	StageID   *int    `json:"Stage_id"`
	Line      string  `json:"LINE"`
	ShiftID   string  `json:"SHIFT_ID"`
	Status    string  `json:"STATUS"`
}
