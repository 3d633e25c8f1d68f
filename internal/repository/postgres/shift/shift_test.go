package shift

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"workforce/backend/internal/commands"
	"workforce/backend/internal/pkg/repository/postgresql"
)

func TestBuildBatchResolvesStageNames(t *testing.T) {
	stageIDs := map[string]int{"Cutting": 1, "Sewing": 2}

	rows := []SaveRow{
		{ShiftDateFrom: "2024-03-01", ShiftDateTo: "2024-03-15", UserID: "1001", StageName: "Cutting", ShiftID: "A", Line: "L1"},
		{ShiftDateFrom: "2024-03-01", ShiftDateTo: "2024-03-15", UserID: "1002", StageName: "Unknown", ShiftID: "B", Line: "L2"},
	}

	batch, err := buildBatch(rows, stageIDs)
	require.NoError(t, err)
	require.Len(t, batch, 2)

	require.NotNil(t, batch[0].StageID)
	assert.Equal(t, 1, *batch[0].StageID)
	assert.Equal(t, "1001", *batch[0].UserID)
	assert.Equal(t, "A", *batch[0].ShiftID)
	assert.Equal(t, "L1", *batch[0].Line)
	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), *batch[0].ShiftDateFrom)
	assert.Equal(t, time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), *batch[0].ShiftDateTo)

	// Unknown stage names load with a NULL stage id instead of failing.
	assert.Nil(t, batch[1].StageID)
}

func TestBuildBatchFailsOnMalformedDate(t *testing.T) {
	rows := []SaveRow{
		{ShiftDateFrom: "2024-03-01", ShiftDateTo: "2024-03-15", UserID: "1001", ShiftID: "A", Line: "L1"},
		{ShiftDateFrom: "03/05/2024", ShiftDateTo: "2024-03-15", UserID: "1002", ShiftID: "A", Line: "L1"},
	}

	batch, err := buildBatch(rows, nil)
	assert.Error(t, err)
	assert.Nil(t, batch)

	rows[1].ShiftDateFrom = "2024-03-05"
	rows[1].ShiftDateTo = "not-a-date"

	batch, err = buildBatch(rows, nil)
	assert.Error(t, err)
	assert.Nil(t, batch)
}

func TestBuildBatchCopiesRowValues(t *testing.T) {
	rows := []SaveRow{
		{ShiftDateFrom: "2024-03-01", ShiftDateTo: "2024-03-15", UserID: "1001", ShiftID: "A", Line: "L1"},
		{ShiftDateFrom: "2024-03-01", ShiftDateTo: "2024-03-15", UserID: "1002", ShiftID: "B", Line: "L2"},
	}

	batch, err := buildBatch(rows, nil)
	require.NoError(t, err)
	require.Len(t, batch, 2)

	// Pointer fields must not alias the loop variable.
	assert.NotSame(t, batch[0].UserID, batch[1].UserID)
	assert.Equal(t, "1001", *batch[0].UserID)
	assert.Equal(t, "1002", *batch[1].UserID)
}

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

// A malformed row in the second chunk fails that chunk only; the first chunk
// stays inserted.
func TestSaveKeepsCompletedChunks(t *testing.T) {
	db := testDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	_, err := db.ExecContext(ctx,
		`INSERT INTO stages (stage_name, stage_type) VALUES ('Cutting', 'INLINE')`)
	require.NoError(t, err)

	rows := make([]SaveRow, 0, BatchSize+1)
	for i := 0; i < BatchSize; i++ {
		rows = append(rows, SaveRow{
			ShiftDateFrom: "2024-03-01",
			ShiftDateTo:   "2024-03-15",
			UserID:        fmt.Sprintf("%04d", i+1),
			StageName:     "Cutting",
			ShiftID:       "A",
			Line:          "L1",
		})
	}
	rows = append(rows, SaveRow{
		ShiftDateFrom: "bad-date",
		ShiftDateTo:   "2024-03-15",
		UserID:        "9999",
		ShiftID:       "A",
		Line:          "L1",
	})

	result, err := repo.Save(ctx, rows)
	require.NoError(t, err)
	assert.Equal(t, SaveResult{Inserted: BatchSize, FailedChunks: 1}, result)

	var count int
	require.NoError(t, db.QueryRowContext(ctx, `SELECT COUNT(*) FROM user_shifts`).Scan(&count))
	assert.Equal(t, BatchSize, count)
}

// The date filter matches a range boundary exactly; dates strictly inside
// the range find nothing.
func TestGetListDateMatchesBoundariesOnly(t *testing.T) {
	db := testDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	_, err := db.ExecContext(ctx, `
		INSERT INTO user_shifts (shift_date_from, shift_date_to, userid, shift_id, line)
		VALUES ('2024-03-01', '2024-03-15', '1001', 'A', 'L1')`)
	require.NoError(t, err)

	for date, want := range map[string]int{
		"2024-03-01": 1,
		"2024-03-15": 1,
		"2024-03-08": 0,
	} {
		d := date
		list, err := repo.GetList(ctx, &d)
		require.NoError(t, err)
		assert.Len(t, list, want, date)
	}

	list, err := repo.GetList(ctx, nil)
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.NotNil(t, list[0].ShiftDateFrom)
	assert.Equal(t, "2024-03-01", *list[0].ShiftDateFrom)
}

func TestGetOptions(t *testing.T) {
	db := testDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	_, err := db.ExecContext(ctx, `
		INSERT INTO user_shifts (shift_date_from, shift_date_to, userid, shift_id, line) VALUES
			('2024-03-01', '2024-03-15', '1001', 'B', 'L2'),
			('2024-03-01', '2024-03-15', '1002', 'A', 'L1'),
			('2024-03-02', '2024-03-16', '1003', 'A', 'L1')`)
	require.NoError(t, err)

	shifts, err := repo.GetShiftOptions(ctx)
	require.NoError(t, err)
	assert.Equal(t, []ShiftOption{{ShiftID: "A"}, {ShiftID: "B"}}, shifts)

	lines, err := repo.GetLineOptions(ctx)
	require.NoError(t, err)
	assert.Equal(t, []LineOption{{Line: "L1"}, {Line: "L2"}}, lines)
}
