package skills

import (
	"context"
	"net/http"
	"time"

	"github.com/pkg/errors"
	"github.com/uptrace/bun"

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

// Save replaces each listed employee's skill rows wholesale. The whole
// request runs in one transaction: either every employee's set is replaced
// or none is. Delete scope is per-employee, never global.
func (r Repository) Save(ctx context.Context, request SaveRequest) error {
	if len(request.Data) == 0 {
		return web.NewRequestError(errors.New("Invalid data format"), http.StatusBadRequest)
	}

	for _, employee := range request.Data {
		if employee.EmployeeID == "" {
			return web.NewRequestError(errors.New("Invalid input data"), http.StatusBadRequest)
		}
		for _, stage := range employee.Stages {
			if stage.StageID == 0 || stage.Rating == 0 {
				return web.NewRequestError(errors.New("Invalid stage data"), http.StatusBadRequest)
			}
		}
	}

	err := r.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		now := time.Now()

		for _, employee := range request.Data {
			if _, err := tx.NewDelete().
				Model((*entity.UserSkill)(nil)).
				Where("userid = ?", employee.EmployeeID).
				Exec(ctx); err != nil {
				return errors.Wrap(err, "deleting user skills")
			}

			for _, stage := range employee.Stages {
				userID := employee.EmployeeID
				stageID := stage.StageID
				skillID := stage.Rating

				row := entity.UserSkill{
					UserID:   &userID,
					StageID:  &stageID,
					SkillID:  &skillID,
					UpdateAt: &now,
				}

				if _, err := tx.NewInsert().Model(&row).Exec(ctx); err != nil {
					return errors.Wrap(err, "inserting user skill")
				}
			}
		}

		return nil
	})
	if err != nil {
		return web.NewRequestError(errors.Wrap(err, "saving skills"), http.StatusInternalServerError)
	}

	return nil
}

func (r Repository) GetList(ctx context.Context) ([]GetListResponse, error) {
	query := `
		SELECT
			p2.name,
			p3.stage_name,
			p4.skill_description,
			p1.userid
		FROM user_skills AS p1
		LEFT OUTER JOIN users AS p2 ON p1.userid = p2.userid
		LEFT OUTER JOIN stages AS p3 ON p1.stage_id = p3.id
		LEFT OUTER JOIN skills AS p4 ON p1.skill_id = p4.id
		ORDER BY p3.stage_name, p2.name
	`

	rows, err := r.QueryContext(ctx, query)
	if err != nil {
		return nil, web.NewRequestError(errors.Wrap(err, "selecting user skills"), http.StatusInternalServerError)
	}
	defer rows.Close()

	var list []GetListResponse

	for rows.Next() {
		var detail GetListResponse
		if err = rows.Scan(
			&detail.Name,
			&detail.StageName,
			&detail.SkillDescription,
			&detail.UserID); err != nil {
			return nil, web.NewRequestError(errors.Wrap(err, "scanning user skill list"), http.StatusInternalServerError)
		}

		list = append(list, detail)
	}

	return list, nil
}

func (r Repository) DeleteByUserID(ctx context.Context, userID string) error {
	return r.DeleteRows(ctx, "user_skills", "userid", userID)
}
