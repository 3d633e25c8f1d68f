package user

import (
	"context"
	"database/sql"
	"net/http"
	"strconv"
	"strings"

	"github.com/Azure/go-autorest/autorest/date"
	"github.com/pkg/errors"
	"github.com/uptrace/bun"
	"golang.org/x/crypto/bcrypt"

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

// CheckCredentials verifies a user id / password pair against the login
// table. It reports the same failure for unknown users and wrong passwords.
func (r Repository) CheckCredentials(ctx context.Context, userID, password string) error {
	var detail entity.Login

	err := r.NewSelect().Model(&detail).Where("user_id = ?", userID).Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return web.NewRequestError(errors.New("Invalid user ID or password"), http.StatusUnauthorized)
	}
	if err != nil {
		return web.NewRequestError(errors.Wrap(err, "selecting login"), http.StatusInternalServerError)
	}

	if detail.PasswordHash == nil {
		return web.NewRequestError(errors.New("Invalid user ID or password"), http.StatusUnauthorized)
	}

	if err = bcrypt.CompareHashAndPassword([]byte(*detail.PasswordHash), []byte(password)); err != nil {
		return web.NewRequestError(errors.New("Invalid user ID or password"), http.StatusUnauthorized)
	}

	return nil
}

func (r Repository) GetDepartmentList(ctx context.Context) ([]DepartmentResponse, error) {
	rows, err := r.QueryContext(ctx, `SELECT id, name FROM departments ORDER BY id`)
	if err != nil {
		return nil, web.NewRequestError(errors.Wrap(err, "selecting departments"), http.StatusInternalServerError)
	}
	defer rows.Close()

	var list []DepartmentResponse

	for rows.Next() {
		var detail DepartmentResponse
		if err = rows.Scan(&detail.ID, &detail.Name); err != nil {
			return nil, web.NewRequestError(errors.Wrap(err, "scanning department list"), http.StatusInternalServerError)
		}

		list = append(list, detail)
	}

	return list, nil
}

// GetEmployeesByDepartments lists employees of the selected departments with
// their designation, ordered by the rendered "name-userid" display value.
// Department ids arrive as strings from the form and are bound as an array,
// never spliced into the statement.
func (r Repository) GetEmployeesByDepartments(ctx context.Context, departments []string) ([]EmployeeResponse, error) {
	if len(departments) == 0 {
		return nil, web.NewRequestError(errors.New("No departments selected"), http.StatusBadRequest)
	}

	ids := make([]int, 0, len(departments))
	for _, d := range departments {
		id, err := strconv.Atoi(strings.TrimSpace(d))
		if err != nil {
			return nil, web.NewRequestError(errors.Wrapf(err, "department id %q", d), http.StatusBadRequest)
		}
		ids = append(ids, id)
	}

	rows, err := r.NewSelect().
		ColumnExpr("u.userid").
		ColumnExpr("u.name || '-' || u.userid AS name").
		ColumnExpr("u.enroll_dt").
		ColumnExpr("d.name AS designation").
		TableExpr("users AS u").
		Join("JOIN designations AS d ON u.dsgid = d.id").
		Where("u.dptid IN (?)", bun.In(ids)).
		OrderExpr("u.name || '-' || u.userid").
		Rows(ctx)
	if err != nil {
		return nil, web.NewRequestError(errors.Wrap(err, "selecting employees"), http.StatusInternalServerError)
	}
	defer rows.Close()

	var list []EmployeeResponse

	for rows.Next() {
		var detail EmployeeResponse
		var enrollString sql.NullString

		if err = rows.Scan(
			&detail.UserID,
			&detail.Name,
			&enrollString,
			&detail.Designation); err != nil {
			return nil, web.NewRequestError(errors.Wrap(err, "scanning employee list"), http.StatusInternalServerError)
		}

		if enrollString.Valid {
			value := enrollString.String
			if len(value) > 10 {
				value = value[:10]
			}
			enrollDate, err := date.ParseDate(value)
			if err != nil {
				return nil, web.NewRequestError(errors.Wrap(err, "converting enroll_dt to date.Date"), http.StatusInternalServerError)
			}
			detail.EnrollDate = &enrollDate
		}

		list = append(list, detail)
	}

	return list, nil
}
