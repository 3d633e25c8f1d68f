package shift

import (
	"context"

	"workforce/backend/internal/repository/postgres/shift"
)

type UserShift interface {
	Save(ctx context.Context, rows []shift.SaveRow) (shift.SaveResult, error)
	GetList(ctx context.Context, filterDate *string) ([]shift.GetListResponse, error)
	GetShiftOptions(ctx context.Context) ([]shift.ShiftOption, error)
	GetLineOptions(ctx context.Context) ([]shift.LineOption, error)
}
