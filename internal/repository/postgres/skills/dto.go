package skills

type StageRating struct {
	StageID int `json:"stageId" form:"stageId"`
	Rating  int `json:"rating"  form:"rating"`
}

type EmployeeSkills struct {
	EmployeeID string        `json:"employeeId" form:"employeeId"`
	Stages     []StageRating `json:"stages"     form:"stages"`
}

type SaveRequest struct {
	Data []EmployeeSkills `json:"data" form:"data"`
}

type GetListResponse struct {
	Name             *string `json:"NAME"`
	StageName        *string `json:"STAGE_NAME"`
	SkillDescription *string `json:"Skill_Description"`
	UserID           string  `json:"USERID"`
}
