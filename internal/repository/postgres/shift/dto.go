package shift

// SaveRow is one roster row as uploaded from the spreadsheet screen. Dates
// arrive as "2006-01-02" strings; the stage arrives by name and is resolved
// to its id during insert (unknown names keep a NULL stage id, matching the
// import's historical left-join behavior).
type SaveRow struct {
	ShiftDateFrom string `json:"Shift_date_from" form:"Shift_date_from"`
	ShiftDateTo   string `json:"Shift_date_to"   form:"Shift_date_to"`
	UserID        string `json:"userid"          form:"userid"`
	StageName     string `json:"STAGE_NAME"      form:"STAGE_NAME"`
	ShiftID       string `json:"SHIFT_ID"        form:"SHIFT_ID"`
	Line          string `json:"LINE"            form:"LINE"`
}

// SaveResult reports the best-effort outcome of a chunked upload. Failed
// chunks do not roll back chunks already inserted.
type SaveResult struct {
	Inserted     int
	FailedChunks int
}

type GetListResponse struct {
	ShiftDateFrom *string `json:"Shift_date_from"`
	ShiftDateTo   *string `json:"Shift_date_to"`
	UserID        *string `json:"userid"`
	ShiftID       *string `json:"SHIFT_ID"`
	Line          *string `json:"LINE"`
	StageName     *string `json:"Stage_name"`
	UserName      *string `json:"user_name"`
}

type ShiftOption struct {
	ShiftID string `json:"SHIFT_ID"`
}

type LineOption struct {
	Line string `json:"LINE"`
}
