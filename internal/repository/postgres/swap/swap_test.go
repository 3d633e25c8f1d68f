package swap

import (
	"context"
	"net/http"
	"net/url"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"workforce/backend/foundation/web"
	"workforce/backend/internal/commands"
	"workforce/backend/internal/pkg/repository/postgresql"
)

func testDB(t *testing.T) *postgresql.Database {
	t.Helper()

	raw := os.Getenv("TEST_DATABASE_URL")
	if raw == "" {
		t.Skip("TEST_DATABASE_URL is not set")
	}

	u, err := url.Parse(raw)
	require.NoError(t, err)

	password, _ := u.User.Password()
	db := postgresql.NewDatabase(postgresql.Config{
		Username:   u.User.Username(),
		Password:   password,
		Host:       u.Hostname(),
		Port:       u.Port(),
		Name:       strings.TrimPrefix(u.Path, "/"),
		DisableTLS: true,
	})

	commands.MigrateUP(db)

	_, err = db.Exec(`TRUNCATE user_swaps, punch_events, user_shifts, user_skills,
		user_logins, users, skills, stages, designations, departments RESTART IDENTITY CASCADE`)
	require.NoError(t, err)

	t.Cleanup(func() { _ = db.Close() })

	return db
}

// seedDay mirrors a morning with 1001 absent on Cutting and 1002, 1003
// present on Sewing (2024-03-01, shift A, line L1).
func seedDay(t *testing.T, db *postgresql.Database) (cutting, sewing int) {
	t.Helper()

	ctx := context.Background()

	require.NoError(t, db.QueryRowContext(ctx,
		`INSERT INTO stages (stage_name, stage_type) VALUES ('Cutting', 'INLINE') RETURNING id`).Scan(&cutting))
	require.NoError(t, db.QueryRowContext(ctx,
		`INSERT INTO stages (stage_name, stage_type) VALUES ('Sewing', 'INLINE') RETURNING id`).Scan(&sewing))

	_, err := db.ExecContext(ctx, `
		INSERT INTO users (userid, name, enabled) VALUES
			('1001', 'Akmal', true),
			('1002', 'Bekzod', true),
			('1003', 'Dilnoza', true)`)
	require.NoError(t, err)

	_, err = db.ExecContext(ctx, `
		INSERT INTO user_shifts (shift_date_from, shift_date_to, userid, stage_id, shift_id, line) VALUES
			('2024-03-01', '2024-03-15', '1001', $1, 'A', 'L1'),
			('2024-03-01', '2024-03-15', '1002', $2, 'A', 'L1'),
			('2024-03-01', '2024-03-15', '1003', $2, 'A', 'L1')`,
		cutting, sewing)
	require.NoError(t, err)

	_, err = db.ExecContext(ctx, `
		INSERT INTO punch_events (userid, edatetime) VALUES
			('1002', '2024-03-01 07:55:00'),
			('1003', '2024-03-01 08:02:00')`)
	require.NoError(t, err)

	return cutting, sewing
}

func TestGetCandidates(t *testing.T) {
	db := testDB(t)
	_, sewing := seedDay(t, db)
	repo := NewRepository(db)

	ctx := context.Background()

	// Give 1002 two skill rows; the most recent one must win.
	_, err := db.ExecContext(ctx, `
		INSERT INTO skills (skill_rating, skill_description) VALUES ('A', 'Expert'), ('B', 'Learner')`)
	require.NoError(t, err)
	_, err = db.ExecContext(ctx, `
		INSERT INTO user_skills (userid, stage_id, skill_id, update_at) VALUES
			('1002', $1, 2, '2024-01-01 00:00:00'),
			('1002', $1, 1, '2024-02-01 00:00:00')`, sewing)
	require.NoError(t, err)

	list, err := repo.GetCandidates(ctx,
		CandidateFilter{Date: "2024-03-01", ShiftID: "A", StageName: "Cutting"})
	require.NoError(t, err)

	// 1001 never punched in, so only the two Sewing workers qualify.
	require.Len(t, list, 2)
	assert.Equal(t, "1002", list[0].UserID)
	assert.Equal(t, "1003", list[1].UserID)

	require.NotNil(t, list[0].SkillDescription)
	assert.Equal(t, "Expert", *list[0].SkillDescription)
	assert.Nil(t, list[1].SkillDescription)
}

func TestGetCandidatesExcludesConsumedSubstitutes(t *testing.T) {
	db := testDB(t)
	cutting, _ := seedDay(t, db)
	repo := NewRepository(db)

	ctx := context.Background()

	_, err := db.ExecContext(ctx, `
		INSERT INTO user_swaps (shift_date, stage_id, shift_id, line, absent_userid, swap_userid)
		VALUES ('2024-03-01', $1, 'A', 'L1', '1001', '1002')`, cutting)
	require.NoError(t, err)

	list, err := repo.GetCandidates(ctx,
		CandidateFilter{Date: "2024-03-01", ShiftID: "A", StageName: "Cutting"})
	require.NoError(t, err)

	// 1002 is already standing in for 1001; 1002's effective stage is now
	// Cutting as well, which the stage filter would also exclude.
	require.Len(t, list, 1)
	assert.Equal(t, "1003", list[0].UserID)
}

func TestGetCandidatesValidation(t *testing.T) {
	repo := NewRepository(nil)

	_, err := repo.GetCandidates(context.Background(), CandidateFilter{Date: "bad", ShiftID: "A"})
	require.Error(t, err)

	_, err = repo.GetCandidates(context.Background(), CandidateFilter{Date: "2024-03-01"})
	require.Error(t, err)

	webErr, ok := web.IsRequestError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, webErr.Status)
}

func TestSaveKeepsEarlierRowsOnFailure(t *testing.T) {
	db := testDB(t)
	seedDay(t, db)
	repo := NewRepository(db)

	ctx := context.Background()

	rows := []SaveRow{
		{ShiftDate: "2024-03-01", StageName: "Cutting", ShiftID: "A", Line: "L1", AbsentUserID: "1001", SwapUserID: "1002"},
		// Same slot again: blocked by the unique index, logged and counted.
		{ShiftDate: "2024-03-01", StageName: "Cutting", ShiftID: "A", Line: "L1", AbsentUserID: "1001", SwapUserID: "1003"},
	}

	result, err := repo.Save(ctx, rows)
	require.NoError(t, err)
	assert.Equal(t, SaveResult{Inserted: 1, Failed: 1}, result)

	var swapUserID string
	require.NoError(t, db.QueryRowContext(ctx, `
		SELECT swap_userid FROM user_swaps
		WHERE absent_userid = '1001' AND shift_date = '2024-03-01' AND shift_id = 'A' AND line = 'L1'`,
	).Scan(&swapUserID))
	assert.Equal(t, "1002", swapUserID)
}

func TestSaveUnknownStageAborts(t *testing.T) {
	db := testDB(t)
	seedDay(t, db)
	repo := NewRepository(db)

	ctx := context.Background()

	rows := []SaveRow{
		{ShiftDate: "2024-03-01", StageName: "Ghost", ShiftID: "A", Line: "L1", AbsentUserID: "1001", SwapUserID: "1002"},
	}

	_, err := repo.Save(ctx, rows)
	require.Error(t, err)

	webErr, ok := web.IsRequestError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, webErr.Status)
	assert.Equal(t, "Stage_name not found", webErr.Err.Error())

	var count int
	require.NoError(t, db.QueryRowContext(ctx, `SELECT COUNT(*) FROM user_swaps`).Scan(&count))
	assert.Zero(t, count)
}

func TestSaveAcceptsTimestampDates(t *testing.T) {
	db := testDB(t)
	seedDay(t, db)
	repo := NewRepository(db)

	rows := []SaveRow{
		{ShiftDate: "2024-03-01T00:00:00Z", StageName: "Cutting", ShiftID: "A", Line: "L1", AbsentUserID: "1001", SwapUserID: "1002"},
	}

	result, err := repo.Save(context.Background(), rows)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Inserted)
}
