package attendance

import (
	"context"

	"workforce/backend/internal/repository/postgres/attendance"
)

type Attendance interface {
	GetSummary(ctx context.Context, filter attendance.Filter) ([]attendance.SummaryResponse, error)
	GetAllotted(ctx context.Context, filter attendance.DrillFilter) ([]attendance.EmployeeRow, error)
	GetPresent(ctx context.Context, filter attendance.DrillFilter) ([]attendance.EmployeeRow, error)
	GetAbsent(ctx context.Context, filter attendance.DrillFilter) ([]attendance.AbsentRow, error)
	GetShowAll(ctx context.Context, filter attendance.Filter) ([]attendance.ShowAllRow, error)
}
