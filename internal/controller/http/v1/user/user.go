package user

import (
	"net/http"

	"workforce/backend/foundation/web"
	"workforce/backend/internal/repository/postgres/user"
)

type Controller struct {
	user User
}

func NewController(user User) *Controller {
	return &Controller{user}
}

func (uc Controller) GetDepartmentList(c *web.Context) error {
	list, err := uc.user.GetDepartmentList(c.Ctx)
	if err != nil {
		return c.RespondError(err)
	}

	if list == nil {
		list = []user.DepartmentResponse{}
	}

	return c.Respond(list, http.StatusOK)
}

func (uc Controller) GetEmployees(c *web.Context) error {
	var request user.EmployeeListRequest
	if err := c.BindFunc(&request); err != nil {
		return c.RespondError(err)
	}

	if len(request.Departments) == 0 {
		return c.RespondText("No departments selected", http.StatusBadRequest)
	}

	list, err := uc.user.GetEmployeesByDepartments(c.Ctx, request.Departments)
	if err != nil {
		return c.RespondError(err)
	}

	if list == nil {
		list = []user.EmployeeResponse{}
	}

	return c.Respond(list, http.StatusOK)
}
