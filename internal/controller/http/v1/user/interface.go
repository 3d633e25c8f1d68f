package user

import (
	"context"

	"workforce/backend/internal/repository/postgres/user"
)

type User interface {
	GetDepartmentList(ctx context.Context) ([]user.DepartmentResponse, error)
	GetEmployeesByDepartments(ctx context.Context, departments []string) ([]user.EmployeeResponse, error)
}
