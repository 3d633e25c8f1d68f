package shift

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/pkg/errors"

	"workforce/backend/foundation/web"
	"workforce/backend/internal/entity"
	"workforce/backend/internal/pkg/repository/postgresql"
)

// BatchSize is the number of roster rows inserted per chunk.
const BatchSize = 100

type Repository struct {
	*postgresql.Database
}

func NewRepository(database *postgresql.Database) *Repository {
	return &Repository{Database: database}
}

// Save bulk-inserts roster rows in sequential chunks of BatchSize. Chunks
// are independent: a failing chunk is logged and counted, and does not roll
// back chunks already committed. This best-effort contract is deliberate.
func (r Repository) Save(ctx context.Context, rows []SaveRow) (SaveResult, error) {
	if len(rows) == 0 {
		return SaveResult{}, web.NewRequestError(errors.New("no shift rows provided"), http.StatusBadRequest)
	}

	stageIDs, err := r.stageIDsByName(ctx)
	if err != nil {
		return SaveResult{}, err
	}

	var result SaveResult

	for start := 0; start < len(rows); start += BatchSize {
		end := start + BatchSize
		if end > len(rows) {
			end = len(rows)
		}

		batch, err := buildBatch(rows[start:end], stageIDs)
		if err == nil {
			_, err = r.NewInsert().Model(&batch).Exec(ctx)
		}
		if err != nil {
			result.FailedChunks++
			log.Printf("roster upload: chunk %d failed: %v", start/BatchSize+1, err)
			continue
		}

		result.Inserted += len(batch)
	}

	return result, nil
}

// buildBatch converts uploaded rows to entities, resolving stage names.
// A malformed date fails the whole chunk it belongs to.
func buildBatch(rows []SaveRow, stageIDs map[string]int) ([]entity.UserShift, error) {
	batch := make([]entity.UserShift, 0, len(rows))

	for _, row := range rows {
		from, err := time.Parse("2006-01-02", row.ShiftDateFrom)
		if err != nil {
			return nil, errors.Wrapf(err, "parsing Shift_date_from %q", row.ShiftDateFrom)
		}
		to, err := time.Parse("2006-01-02", row.ShiftDateTo)
		if err != nil {
			return nil, errors.Wrapf(err, "parsing Shift_date_to %q", row.ShiftDateTo)
		}

		userID := row.UserID
		shiftID := row.ShiftID
		line := row.Line

		detail := entity.UserShift{
			ShiftDateFrom: &from,
			ShiftDateTo:   &to,
			UserID:        &userID,
			ShiftID:       &shiftID,
			Line:          &line,
		}

		if stageID, ok := stageIDs[row.StageName]; ok {
			detail.StageID = &stageID
		}

		batch = append(batch, detail)
	}

	return batch, nil
}

func (r Repository) stageIDsByName(ctx context.Context) (map[string]int, error) {
	rows, err := r.QueryContext(ctx, `SELECT id, stage_name FROM stages`)
	if err != nil {
		return nil, web.NewRequestError(errors.Wrap(err, "selecting stage names"), http.StatusInternalServerError)
	}
	defer rows.Close()

	ids := make(map[string]int)
	for rows.Next() {
		var id int
		var name string
		if err = rows.Scan(&id, &name); err != nil {
			return nil, web.NewRequestError(errors.Wrap(err, "scanning stage names"), http.StatusInternalServerError)
		}
		ids[name] = id
	}

	return ids, nil
}

// GetList returns roster rows with user and stage names. The optional date
// filter matches either range boundary exactly rather than testing range
// containment; report consumers depend on that behavior as-is.
func (r Repository) GetList(ctx context.Context, filterDate *string) ([]GetListResponse, error) {
	query := `
		SELECT
			to_char(u.shift_date_from, 'YYYY-MM-DD'),
			to_char(u.shift_date_to, 'YYYY-MM-DD'),
			u.userid,
			u.shift_id,
			u.line,
			s.stage_name,
			m.name AS user_name
		FROM user_shifts u
		LEFT JOIN users m ON u.userid = m.userid
		LEFT JOIN stages s ON u.stage_id = s.id
	`

	var args []interface{}
	if filterDate != nil {
		parsed, err := time.Parse("2006-01-02", *filterDate)
		if err != nil {
			return nil, web.NewRequestError(errors.Wrap(err, "parsing date filter"), http.StatusBadRequest)
		}
		query += ` WHERE u.shift_date_from = $1 OR u.shift_date_to = $1`
		args = append(args, parsed.Format("2006-01-02"))
	}

	rows, err := r.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, web.NewRequestError(errors.Wrap(err, "selecting user shifts"), http.StatusInternalServerError)
	}
	defer rows.Close()

	var list []GetListResponse

	for rows.Next() {
		var detail GetListResponse
		if err = rows.Scan(
			&detail.ShiftDateFrom,
			&detail.ShiftDateTo,
			&detail.UserID,
			&detail.ShiftID,
			&detail.Line,
			&detail.StageName,
			&detail.UserName); err != nil {
			return nil, web.NewRequestError(errors.Wrap(err, "scanning user shift list"), http.StatusInternalServerError)
		}

		list = append(list, detail)
	}

	return list, nil
}

func (r Repository) GetShiftOptions(ctx context.Context) ([]ShiftOption, error) {
	rows, err := r.QueryContext(ctx, `SELECT DISTINCT shift_id FROM user_shifts ORDER BY shift_id`)
	if err != nil {
		return nil, web.NewRequestError(errors.Wrap(err, "selecting distinct shifts"), http.StatusInternalServerError)
	}
	defer rows.Close()

	var list []ShiftOption
	for rows.Next() {
		var detail ShiftOption
		if err = rows.Scan(&detail.ShiftID); err != nil {
			return nil, web.NewRequestError(errors.Wrap(err, "scanning shift options"), http.StatusInternalServerError)
		}
		list = append(list, detail)
	}

	return list, nil
}

func (r Repository) GetLineOptions(ctx context.Context) ([]LineOption, error) {
	rows, err := r.QueryContext(ctx, `SELECT DISTINCT line FROM user_shifts ORDER BY line`)
	if err != nil {
		return nil, web.NewRequestError(errors.Wrap(err, "selecting distinct lines"), http.StatusInternalServerError)
	}
	defer rows.Close()

	var list []LineOption
	for rows.Next() {
		var detail LineOption
		if err = rows.Scan(&detail.Line); err != nil {
			return nil, web.NewRequestError(errors.Wrap(err, "scanning line options"), http.StatusInternalServerError)
		}
		list = append(list, detail)
	}

	return list, nil
}
