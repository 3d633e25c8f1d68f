package swap

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/pkg/errors"

	"workforce/backend/foundation/web"
	"workforce/backend/internal/entity"
	"workforce/backend/internal/pkg/repository/postgresql"
)

type Repository struct {
	*postgresql.Database
}

func NewRepository(database *postgresql.Database) *Repository {
	return &Repository{Database: database}
}

// GetCandidates lists substitutes available to fill an absence: workers who
// punched in on the date, whose effective stage differs from the absent
// slot's stage, and who are not already recorded as substitutes that day.
// Each carries their most recently updated skill description.
func (r Repository) GetCandidates(ctx context.Context, filter CandidateFilter) ([]CandidateResponse, error) {
	if _, err := time.Parse("2006-01-02", filter.Date); err != nil {
		return nil, web.NewRequestError(errors.Wrap(err, "parsing date"), http.StatusBadRequest)
	}
	if filter.ShiftID == "" {
		return nil, web.NewRequestError(errors.New("Date and Shift ID are required parameters."), http.StatusBadRequest)
	}

	query := `
		WITH roster AS (
			SELECT
				p1.userid,
				p1.shift_id,
				p1.line,
				p1.stage_id,
				p2.name,
				(SELECT MIN(pe.edatetime)
				   FROM punch_events pe
				  WHERE pe.userid = p1.userid
				    AND pe.edatetime::date = p1.shift_date_from) AS punch_date,
				(SELECT sw.stage_id
				   FROM user_swaps sw
				  WHERE sw.swap_userid = p1.userid AND sw.shift_date = p1.shift_date_from
				  ORDER BY sw.shift_date, sw.id
				  LIMIT 1) AS nstage_id,
				(SELECT sw.line
				   FROM user_swaps sw
				  WHERE sw.swap_userid = p1.userid AND sw.shift_date = p1.shift_date_from
				  ORDER BY sw.shift_date, sw.id
				  LIMIT 1) AS nline
			FROM user_shifts p1
			LEFT JOIN users p2 ON p1.userid = p2.userid
			WHERE p1.shift_date_from = $1::date
			  AND COALESCE(p2.enabled, false) = true
			  AND p1.shift_id = $2
		),
		effective AS (
			SELECT
				r.*,
				COALESCE(r.nstage_id, r.stage_id) AS stageid,
				COALESCE(NULLIF(r.nline, ''), r.line) AS line1
			FROM roster r
		)
		SELECT DISTINCT
			e.userid,
			e.name,
			s.stage_name,
			e.shift_id,
			e.line1 AS line,
			(SELECT p4.skill_description
			   FROM user_skills p3
			   LEFT OUTER JOIN skills p4 ON p3.skill_id = p4.id
			  WHERE p3.userid = e.userid
			  ORDER BY p3.update_at DESC NULLS LAST, p3.skill_id DESC
			  LIMIT 1) AS skill_description
		FROM effective e
		LEFT JOIN stages s ON e.stageid = s.id
		WHERE e.punch_date IS NOT NULL
		  AND s.stage_name != $3
		  AND e.userid NOT IN (SELECT sw.swap_userid FROM user_swaps sw WHERE sw.shift_date = $1::date)
		ORDER BY s.stage_name, e.shift_id, e.userid
	`

	rows, err := r.QueryContext(ctx, query, filter.Date, filter.ShiftID, filter.StageName)
	if err != nil {
		return nil, web.NewRequestError(errors.Wrap(err, "selecting swap candidates"), http.StatusInternalServerError)
	}
	defer rows.Close()

	var list []CandidateResponse

	for rows.Next() {
		var detail CandidateResponse
		if err = rows.Scan(
			&detail.UserID,
			&detail.Name,
			&detail.StageName,
			&detail.ShiftID,
			&detail.Line,
			&detail.SkillDescription); err != nil {
			return nil, web.NewRequestError(errors.Wrap(err, "scanning swap candidates"), http.StatusInternalServerError)
		}

		list = append(list, detail)
	}

	return list, nil
}

// Save persists swap rows one at a time. The batch is deliberately
// non-atomic: a failing row (including a unique-index violation when the
// slot is already swapped) is logged and counted, and earlier rows stay.
// An unknown stage name aborts with a 400 before any further inserts.
func (r Repository) Save(ctx context.Context, rows []SaveRow) (SaveResult, error) {
	if len(rows) == 0 {
		return SaveResult{}, web.NewRequestError(errors.New("no swap rows provided"), http.StatusBadRequest)
	}

	var result SaveResult

	for i, row := range rows {
		shiftDate, err := time.Parse("2006-01-02", row.ShiftDate)
		if err != nil {
			// Some clients send a full timestamp for shiftDate.
			shiftDate, err = time.Parse(time.RFC3339, row.ShiftDate)
			if err != nil {
				return result, web.NewRequestError(errors.Wrapf(err, "parsing shiftDate %q", row.ShiftDate), http.StatusBadRequest)
			}
		}

		var stageID int
		err = r.QueryRowContext(ctx, `SELECT id FROM stages WHERE stage_name = $1`, row.StageName).Scan(&stageID)
		if errors.Is(err, sql.ErrNoRows) {
			return result, web.NewRequestError(errors.New("Stage_name not found"), http.StatusBadRequest)
		}
		if err != nil {
			return result, web.NewRequestError(errors.Wrap(err, "resolving stage name"), http.StatusInternalServerError)
		}

		shiftID := row.ShiftID
		line := row.Line
		absentUserID := row.AbsentUserID
		swapUserID := row.SwapUserID

		record := entity.UserSwap{
			ShiftDate:    &shiftDate,
			StageID:      &stageID,
			ShiftID:      &shiftID,
			Line:         &line,
			AbsentUserID: &absentUserID,
			SwapUserID:   &swapUserID,
		}

		if _, err = r.NewInsert().Model(&record).Exec(ctx); err != nil {
			result.Failed++
			log.Printf("swap save: row %d (%s -> %s) failed: %v", i+1, absentUserID, swapUserID, err)
			continue
		}

		result.Inserted++
	}

	if result.Inserted == 0 {
		return result, web.NewRequestError(
			fmt.Errorf("no swap rows saved (%d failed)", result.Failed), http.StatusInternalServerError)
	}

	return result, nil
}
