package user

import (
	"github.com/Azure/go-autorest/autorest/date"
)

type SignInRequest struct {
	UserID   *string `json:"userId"   form:"userId"`
	Password *string `json:"password" form:"password"`
}

type DepartmentResponse struct {
	ID   int     `json:"dptid"`
	Name *string `json:"DeptName"`
}

type EmployeeListRequest struct {
	Departments []string `json:"departments" form:"departments"`
}

// EmployeeResponse renders name as "name-userid", the display form the
// roster screens key on.
type EmployeeResponse struct {
	UserID      string     `json:"userid"`
	Name        string     `json:"name"`
	EnrollDate  *date.Date `json:"Enrolldt"`
	Designation *string    `json:"designation"`
}
