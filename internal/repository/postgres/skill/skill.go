package skill

import (
	"context"
	"database/sql"
	"net/http"
	"time"

	"github.com/pkg/errors"

	"workforce/backend/foundation/web"
	"workforce/backend/internal/pkg/repository/postgresql"
	"workforce/backend/internal/repository/postgres"
)

type Repository struct {
	*postgresql.Database
}

func NewRepository(database *postgresql.Database) *Repository {
	return &Repository{Database: database}
}

func (r Repository) GetList(ctx context.Context) ([]GetListResponse, error) {
	query := `
		SELECT
			id,
			skill_rating,
			skill_description
		FROM skills
		ORDER BY id
	`

	rows, err := r.QueryContext(ctx, query)
	if err != nil {
		return nil, web.NewRequestError(errors.Wrap(err, "selecting skills"), http.StatusInternalServerError)
	}
	defer rows.Close()

	var list []GetListResponse

	for rows.Next() {
		var detail GetListResponse
		if err = rows.Scan(
			&detail.ID,
			&detail.Rating,
			&detail.Description); err != nil {
			return nil, web.NewRequestError(errors.Wrap(err, "scanning skill list"), http.StatusInternalServerError)
		}

		list = append(list, detail)
	}

	return list, nil
}

func (r Repository) GetDetailById(ctx context.Context, id int) (GetDetailByIdResponse, error) {
	query := `
		SELECT
			id,
			skill_rating,
			skill_description
		FROM skills
		WHERE id = $1
	`

	var detail GetDetailByIdResponse

	err := r.QueryRowContext(ctx, query, id).Scan(
		&detail.ID,
		&detail.Rating,
		&detail.Description,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return GetDetailByIdResponse{}, web.NewRequestError(errors.New("Skill not found"), http.StatusNotFound)
	}
	if err != nil {
		return GetDetailByIdResponse{}, web.NewRequestError(errors.Wrap(err, "selecting skill detail"), http.StatusInternalServerError)
	}

	return detail, nil
}

func (r Repository) Create(ctx context.Context, request CreateRequest) (CreateResponse, error) {
	if err := r.ValidateStruct(&request, "Rating", "Description"); err != nil {
		return CreateResponse{}, err
	}

	// Duplicate pre-check before insert. The skill master reports duplicates
	// as 400 rather than the stage master's 409; both contracts are kept.
	var count int
	if err := r.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM skills WHERE skill_description = $1`, *request.Description).Scan(&count); err != nil {
		return CreateResponse{}, web.NewRequestError(errors.Wrap(err, "skill description check"), http.StatusInternalServerError)
	}
	if count > 0 {
		return CreateResponse{}, web.NewRequestError(errors.New("Skill_Description must be unique."), http.StatusBadRequest)
	}

	var response CreateResponse

	response.Rating = request.Rating
	response.Description = request.Description
	response.CreatedAt = time.Now()

	_, err := r.NewInsert().Model(&response).Returning("id").Exec(ctx, &response.ID)
	if err != nil {
		return CreateResponse{}, web.NewRequestError(errors.Wrap(err, "creating skill"), http.StatusInternalServerError)
	}

	response.Message = "Skill inserted successfully"

	return response, nil
}

func (r Repository) UpdateAll(ctx context.Context, request UpdateRequest) error {
	if err := r.ValidateStruct(&request, "ID", "Rating", "Description"); err != nil {
		return err
	}

	var existingID int
	err := r.QueryRowContext(ctx, `SELECT id FROM skills WHERE id = $1`, request.ID).Scan(&existingID)
	if errors.Is(err, sql.ErrNoRows) {
		return web.NewRequestError(postgres.ErrNotFound, http.StatusNotFound)
	}
	if err != nil {
		return web.NewRequestError(errors.Wrap(err, "skill existence check"), http.StatusInternalServerError)
	}

	q := r.NewUpdate().Table("skills").Where("id = ?", request.ID)
	q.Set("skill_rating = ?", request.Rating)
	q.Set("skill_description = ?", request.Description)
	q.Set("updated_at = ?", time.Now())

	_, err = q.Exec(ctx)
	if err != nil {
		return web.NewRequestError(errors.Wrap(err, "updating skill"), http.StatusInternalServerError)
	}

	return nil
}
