package skills

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

func seedMasters(t *testing.T, db *postgresql.Database) {
	t.Helper()

	ctx := context.Background()

	_, err := db.ExecContext(ctx, `
		INSERT INTO stages (stage_name, stage_type) VALUES ('Cutting', 'INLINE'), ('Sewing', 'INLINE')`)
	require.NoError(t, err)
	_, err = db.ExecContext(ctx, `
		INSERT INTO skills (skill_rating, skill_description) VALUES ('A', 'Expert'), ('B', 'Learner')`)
	require.NoError(t, err)
	_, err = db.ExecContext(ctx, `
		INSERT INTO users (userid, name, enabled) VALUES ('1001', 'Akmal', true), ('1002', 'Bekzod', true)`)
	require.NoError(t, err)
}

func countRows(t *testing.T, db *postgresql.Database, userID string) int {
	t.Helper()

	var count int
	require.NoError(t, db.QueryRowContext(context.Background(),
		`SELECT COUNT(*) FROM user_skills WHERE userid = $1`, userID).Scan(&count))

	return count
}

func TestSaveReplacesWholesale(t *testing.T) {
	db := testDB(t)
	seedMasters(t, db)
	repo := NewRepository(db)
	ctx := context.Background()

	err := repo.Save(ctx, SaveRequest{Data: []EmployeeSkills{
		{EmployeeID: "1001", Stages: []StageRating{{StageID: 1, Rating: 1}, {StageID: 2, Rating: 2}}},
		{EmployeeID: "1002", Stages: []StageRating{{StageID: 1, Rating: 2}}},
	}})
	require.NoError(t, err)
	assert.Equal(t, 2, countRows(t, db, "1001"))
	assert.Equal(t, 1, countRows(t, db, "1002"))

	// Saving 1001 again replaces that employee's set and leaves 1002 alone.
	err = repo.Save(ctx, SaveRequest{Data: []EmployeeSkills{
		{EmployeeID: "1001", Stages: []StageRating{{StageID: 2, Rating: 1}}},
	}})
	require.NoError(t, err)
	assert.Equal(t, 1, countRows(t, db, "1001"))
	assert.Equal(t, 1, countRows(t, db, "1002"))
}

func TestSaveRollsBackOnFailure(t *testing.T) {
	db := testDB(t)
	seedMasters(t, db)
	repo := NewRepository(db)
	ctx := context.Background()

	err := repo.Save(ctx, SaveRequest{Data: []EmployeeSkills{
		{EmployeeID: "1001", Stages: []StageRating{{StageID: 1, Rating: 1}}},
	}})
	require.NoError(t, err)

	// Stage 999 violates the foreign key; 1001's existing row must survive
	// the rolled-back replacement.
	err = repo.Save(ctx, SaveRequest{Data: []EmployeeSkills{
		{EmployeeID: "1001", Stages: []StageRating{{StageID: 999, Rating: 1}}},
	}})
	require.Error(t, err)
	assert.Equal(t, 1, countRows(t, db, "1001"))
}

func TestSaveValidation(t *testing.T) {
	repo := NewRepository(nil)
	ctx := context.Background()

	cases := []SaveRequest{
		{},
		{Data: []EmployeeSkills{{EmployeeID: "", Stages: []StageRating{{StageID: 1, Rating: 1}}}}},
		{Data: []EmployeeSkills{{EmployeeID: "1001", Stages: []StageRating{{StageID: 0, Rating: 1}}}}},
		{Data: []EmployeeSkills{{EmployeeID: "1001", Stages: []StageRating{{StageID: 1, Rating: 0}}}}},
	}

	for _, request := range cases {
		err := repo.Save(ctx, request)
		require.Error(t, err)

		webErr, ok := web.IsRequestError(err)
		require.True(t, ok)
		assert.Equal(t, http.StatusBadRequest, webErr.Status)
	}
}

func TestGetListAndDelete(t *testing.T) {
	db := testDB(t)
	seedMasters(t, db)
	repo := NewRepository(db)
	ctx := context.Background()

	err := repo.Save(ctx, SaveRequest{Data: []EmployeeSkills{
		{EmployeeID: "1001", Stages: []StageRating{{StageID: 1, Rating: 1}}},
		{EmployeeID: "1002", Stages: []StageRating{{StageID: 2, Rating: 2}}},
	}})
	require.NoError(t, err)

	list, err := repo.GetList(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "1001", list[0].UserID)
	assert.Equal(t, "Cutting", *list[0].StageName)
	assert.Equal(t, "Expert", *list[0].SkillDescription)
	assert.Equal(t, "Akmal", *list[0].Name)

	require.NoError(t, repo.DeleteByUserID(ctx, "1001"))
	assert.Zero(t, countRows(t, db, "1001"))
	assert.Equal(t, 1, countRows(t, db, "1002"))
}
