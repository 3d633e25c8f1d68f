package swap

import (
	"context"

	"workforce/backend/internal/repository/postgres/swap"
)

type UserSwap interface {
	GetCandidates(ctx context.Context, filter swap.CandidateFilter) ([]swap.CandidateResponse, error)
	Save(ctx context.Context, rows []swap.SaveRow) (swap.SaveResult, error)
}
