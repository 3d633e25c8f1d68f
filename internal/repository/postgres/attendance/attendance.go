// Package attendance derives daily attendance from the roster, the external
// punch-event log and the swap ledger. Every worker assigned on a date lands
// in exactly one of the present/absent partitions, grouped by the
// swap-overridden stage and line when a swap exists for that worker and day.
package attendance

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/pkg/errors"

	"workforce/backend/foundation/web"
	"workforce/backend/internal/pkg/repository/postgresql"
)

type Repository struct {
	*postgresql.Database
}

func NewRepository(database *postgresql.Database) *Repository {
	return &Repository{Database: database}
}

// rosterCTE is the shared derivation base: roster rows for the day joined
// with the earliest punch of that calendar day and the swap override for the
// assigned worker. Swap lookups are ordered so duplicate ledger rows (blocked
// by a unique index, but possibly present in old data) resolve
// deterministically. The day's date is always parameter $1; the trailing
// shift/line predicate is appended by each caller.
const rosterCTE = `
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
		  %s
	),
	effective AS (
		SELECT
			r.*,
			CASE WHEN r.punch_date IS NULL THEN 1 ELSE 0 END AS absent,
			CASE WHEN r.punch_date IS NOT NULL THEN 1 ELSE 0 END AS present,
			1 AS allot,
			COALESCE(r.nstage_id, r.stage_id) AS stageid,
			COALESCE(NULLIF(r.nline, ''), r.line) AS line1
		FROM roster r
	)
`

func (f Filter) validate() (string, error) {
	if _, err := time.Parse("2006-01-02", f.Date); err != nil {
		return "", web.NewRequestError(errors.Wrap(err, "parsing date"), http.StatusBadRequest)
	}
	if len(f.Shifts) == 0 {
		return "", web.NewRequestError(errors.New("shifts are required"), http.StatusBadRequest)
	}
	if len(f.Lines) == 0 {
		return "", web.NewRequestError(errors.New("lines are required"), http.StatusBadRequest)
	}

	return f.Date, nil
}

// filterArgs binds date + shift codes + lines and renders the matching
// roster predicate.
func (f Filter) filterArgs() (string, []interface{}) {
	args := []interface{}{f.Date}

	predicate := fmt.Sprintf("AND p1.shift_id IN (%s)", postgresql.Placeholders(2, len(f.Shifts)))
	for _, s := range f.Shifts {
		args = append(args, s)
	}

	predicate += fmt.Sprintf(" AND p1.line IN (%s)", postgresql.Placeholders(2+len(f.Shifts), len(f.Lines)))
	for _, l := range f.Lines {
		args = append(args, l)
	}

	return predicate, args
}

// GetSummary aggregates allotted/present/absent counts per effective
// (stage, shift, line) group for the filtered day.
func (r Repository) GetSummary(ctx context.Context, filter Filter) ([]SummaryResponse, error) {
	if _, err := filter.validate(); err != nil {
		return nil, err
	}

	predicate, args := filter.filterArgs()

	query := fmt.Sprintf(rosterCTE, predicate) + `
		SELECT
			s.stage_name,
			e.stageid AS stage_id,
			e.shift_id,
			e.line1 AS line,
			SUM(e.allot) AS allot,
			SUM(e.present) AS present,
			SUM(e.absent) AS absent
		FROM effective e
		LEFT JOIN stages s ON e.stageid = s.id
		GROUP BY s.stage_name, e.stageid, e.shift_id, e.line1
		ORDER BY e.stageid
	`

	rows, err := r.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, web.NewRequestError(errors.Wrap(err, "selecting attendance summary"), http.StatusInternalServerError)
	}
	defer rows.Close()

	var list []SummaryResponse

	for rows.Next() {
		var detail SummaryResponse
		if err = rows.Scan(
			&detail.StageName,
			&detail.StageID,
			&detail.ShiftID,
			&detail.Line,
			&detail.Allot,
			&detail.Present,
			&detail.Absent); err != nil {
			return nil, web.NewRequestError(errors.Wrap(err, "scanning attendance summary"), http.StatusInternalServerError)
		}

		list = append(list, detail)
	}

	return list, nil
}

func (f DrillFilter) validate() error {
	if _, err := time.Parse("2006-01-02", f.Date); err != nil {
		return web.NewRequestError(errors.Wrap(err, "parsing date"), http.StatusBadRequest)
	}
	if f.ShiftID == "" || f.StageName == "" || f.Line == "" {
		return web.NewRequestError(errors.New("shiftId, stageName and line are required"), http.StatusBadRequest)
	}

	return nil
}

// drillQuery builds the employee-level drill-down for one effective slot.
// statusPredicate selects the classification; empty means every allotted
// worker.
func drillQuery(statusPredicate string) string {
	return fmt.Sprintf(rosterCTE, "AND p1.shift_id = $2") + fmt.Sprintf(`
		SELECT DISTINCT
			e.userid,
			e.name,
			s.stage_name,
			e.shift_id,
			e.line1 AS line
		FROM effective e
		LEFT JOIN stages s ON e.stageid = s.id
		WHERE s.stage_name = $3
		  AND e.line1 = $4
		  %s
		ORDER BY s.stage_name, e.shift_id, e.userid
	`, statusPredicate)
}

func (r Repository) scanEmployeeRows(ctx context.Context, query string, filter DrillFilter) ([]EmployeeRow, error) {
	rows, err := r.QueryContext(ctx, query, filter.Date, filter.ShiftID, filter.StageName, filter.Line)
	if err != nil {
		return nil, web.NewRequestError(errors.Wrap(err, "selecting attendance drill-down"), http.StatusInternalServerError)
	}
	defer rows.Close()

	var list []EmployeeRow

	for rows.Next() {
		var detail EmployeeRow
		if err = rows.Scan(
			&detail.UserID,
			&detail.Name,
			&detail.StageName,
			&detail.ShiftID,
			&detail.Line); err != nil {
			return nil, web.NewRequestError(errors.Wrap(err, "scanning attendance drill-down"), http.StatusInternalServerError)
		}

		list = append(list, detail)
	}

	return list, nil
}

// GetAllotted lists every worker assigned to the slot regardless of
// attendance.
func (r Repository) GetAllotted(ctx context.Context, filter DrillFilter) ([]EmployeeRow, error) {
	if err := filter.validate(); err != nil {
		return nil, err
	}

	return r.scanEmployeeRows(ctx, drillQuery(""), filter)
}

// GetPresent lists workers with a punch event on the day.
func (r Repository) GetPresent(ctx context.Context, filter DrillFilter) ([]EmployeeRow, error) {
	if err := filter.validate(); err != nil {
		return nil, err
	}

	return r.scanEmployeeRows(ctx, drillQuery("AND e.punch_date IS NOT NULL"), filter)
}

// GetAbsent lists workers without a punch event, attaching the substitute's
// rendered name when the slot has already been swapped.
func (r Repository) GetAbsent(ctx context.Context, filter DrillFilter) ([]AbsentRow, error) {
	if err := filter.validate(); err != nil {
		return nil, err
	}

	query := fmt.Sprintf(rosterCTE, "AND p1.shift_id = $2") + `
		SELECT DISTINCT
			e.userid,
			e.name,
			s.stage_name,
			e.shift_id,
			e.line1 AS line,
			(SELECT sw.swap_userid || '-' || u2.name
			   FROM user_swaps sw
			   LEFT OUTER JOIN users u2 ON sw.swap_userid = u2.userid
			  WHERE sw.shift_date = $1::date
			    AND sw.absent_userid = e.userid
			    AND sw.shift_id = e.shift_id
			    AND sw.line = e.line1
			  ORDER BY sw.id
			  LIMIT 1) AS swapusername
		FROM effective e
		LEFT JOIN stages s ON e.stageid = s.id
		WHERE s.stage_name = $3
		  AND e.line1 = $4
		  AND e.punch_date IS NULL
		ORDER BY s.stage_name, e.shift_id, e.userid
	`

	rows, err := r.QueryContext(ctx, query, filter.Date, filter.ShiftID, filter.StageName, filter.Line)
	if err != nil {
		return nil, web.NewRequestError(errors.Wrap(err, "selecting absent drill-down"), http.StatusInternalServerError)
	}
	defer rows.Close()

	var list []AbsentRow

	for rows.Next() {
		var detail AbsentRow
		if err = rows.Scan(
			&detail.UserID,
			&detail.Name,
			&detail.StageName,
			&detail.ShiftID,
			&detail.Line,
			&detail.SwapUserName); err != nil {
			return nil, web.NewRequestError(errors.Wrap(err, "scanning absent drill-down"), http.StatusInternalServerError)
		}

		list = append(list, detail)
	}

	return list, nil
}

// GetShowAll reports raw assigned stage/line with a textual status per
// worker. Swap overrides are intentionally not applied here.
func (r Repository) GetShowAll(ctx context.Context, filter Filter) ([]ShowAllRow, error) {
	if _, err := filter.validate(); err != nil {
		return nil, err
	}

	predicate, args := filter.filterArgs()

	query := fmt.Sprintf(rosterCTE, predicate) + `
		SELECT DISTINCT
			e.userid,
			e.name,
			s.stage_name,
			e.stage_id,
			e.line,
			e.shift_id,
			CASE WHEN e.punch_date IS NULL THEN 'Absent' ELSE 'Present' END AS status
		FROM effective e
		LEFT JOIN stages s ON e.stage_id = s.id
		ORDER BY e.stage_id, s.stage_name, e.shift_id, e.userid, e.line
	`

	rows, err := r.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, web.NewRequestError(errors.Wrap(err, "selecting attendance show all"), http.StatusInternalServerError)
	}
	defer rows.Close()

	var list []ShowAllRow

	for rows.Next() {
		var detail ShowAllRow
		if err = rows.Scan(
			&detail.UserID,
			&detail.Name,
			&detail.StageName,
			&detail.StageID,
			&detail.Line,
			&detail.ShiftID,
			&detail.Status); err != nil {
			return nil, web.NewRequestError(errors.Wrap(err, "scanning attendance show all"), http.StatusInternalServerError)
		}

		list = append(list, detail)
	}

	return list, nil
}
