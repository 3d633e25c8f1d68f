package swap

// CandidateFilter selects substitute candidates: present workers on the
// date/shift who are effectively working a different stage and have not
// already been consumed as substitutes that day.
type CandidateFilter struct {
	Date      string
	ShiftID   string
	StageName string
}

type CandidateResponse struct {
	UserID           string  `json:"USERID"`
	Name             *string `json:"NAME"`
	StageName        *string `json:"Stage_name"`
	ShiftID          string  `json:"SHIFT_ID"`
	Line             string  `json:"LINE"`
	SkillDescription *string `json:"SKILL_DESCRIPTION"`
}

// SaveRow is one swap as posted by the batch save screen.
type SaveRow struct {
	ShiftDate    string `json:"shiftDate"    form:"shiftDate"`
	StageName    string `json:"Stage_name"   form:"Stage_name"`
	ShiftID      string `json:"shiftId"      form:"shiftId"`
	Line         string `json:"line"         form:"line"`
	AbsentUserID string `json:"absentUserId" form:"absentUserId"`
	SwapUserID   string `json:"swapUserId"   form:"swapUserId"`
}

// SaveResult reports the best-effort outcome of the non-atomic batch.
type SaveResult struct {
	Inserted int
	Failed   int
}
