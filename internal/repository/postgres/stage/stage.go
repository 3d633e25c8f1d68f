package stage

import (
	"context"
	"database/sql"
	"net/http"
	"time"

	"github.com/pkg/errors"

	"workforce/backend/foundation/web"
	"workforce/backend/internal/entity"
	"workforce/backend/internal/pkg/repository/postgresql"
	"workforce/backend/internal/repository/postgres"
)

type Repository struct {
	*postgresql.Database
}

func NewRepository(database *postgresql.Database) *Repository {
	return &Repository{Database: database}
}

func (r Repository) GetById(ctx context.Context, id int) (entity.Stage, error) {
	var detail entity.Stage

	err := r.NewSelect().Model(&detail).Where("id = ?", id).Scan(ctx)

	return detail, err
}

func (r Repository) GetList(ctx context.Context) ([]GetListResponse, error) {
	query := `
		SELECT
			id,
			stage_name,
			stage_type
		FROM stages
		ORDER BY id
	`

	rows, err := r.QueryContext(ctx, query)
	if err != nil {
		return nil, web.NewRequestError(errors.Wrap(err, "selecting stages"), http.StatusInternalServerError)
	}
	defer rows.Close()

	var list []GetListResponse

	for rows.Next() {
		var detail GetListResponse
		if err = rows.Scan(
			&detail.ID,
			&detail.Name,
			&detail.Type); err != nil {
			return nil, web.NewRequestError(errors.Wrap(err, "scanning stage list"), http.StatusInternalServerError)
		}

		list = append(list, detail)
	}

	return list, nil
}

// GetLookup serves the id/name pairs used by form dropdowns.
func (r Repository) GetLookup(ctx context.Context) ([]LookupResponse, error) {
	rows, err := r.QueryContext(ctx, `SELECT id, stage_name FROM stages ORDER BY id`)
	if err != nil {
		return nil, web.NewRequestError(errors.Wrap(err, "selecting stage lookup"), http.StatusInternalServerError)
	}
	defer rows.Close()

	var list []LookupResponse

	for rows.Next() {
		var detail LookupResponse
		if err = rows.Scan(&detail.ID, &detail.Name); err != nil {
			return nil, web.NewRequestError(errors.Wrap(err, "scanning stage lookup"), http.StatusInternalServerError)
		}

		list = append(list, detail)
	}

	return list, nil
}

func (r Repository) Create(ctx context.Context, request CreateRequest) (CreateResponse, error) {
	if err := r.ValidateStruct(&request, "Name", "Type"); err != nil {
		return CreateResponse{}, err
	}

	// The duplicate check and the insert are separate round trips, matching
	// the published conflict contract. Acceptable for this low-concurrency
	// internal tool.
	var existingID int
	err := r.QueryRowContext(ctx,
		`SELECT id FROM stages WHERE stage_name = $1 LIMIT 1`, *request.Name).Scan(&existingID)
	if err == nil {
		return CreateResponse{}, web.NewRequestError(errors.New("Stage Name already exists"), http.StatusConflict)
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return CreateResponse{}, web.NewRequestError(errors.Wrap(err, "stage name check"), http.StatusInternalServerError)
	}

	var response CreateResponse

	response.Name = request.Name
	response.Type = request.Type
	response.CreatedAt = time.Now()

	_, err = r.NewInsert().Model(&response).Returning("id").Exec(ctx, &response.ID)
	if err != nil {
		return CreateResponse{}, web.NewRequestError(errors.Wrap(err, "creating stage"), http.StatusInternalServerError)
	}

	response.Message = "Stage inserted successfully"

	return response, nil
}

func (r Repository) UpdateAll(ctx context.Context, request UpdateRequest) error {
	if err := r.ValidateStruct(&request, "ID", "Name", "Type"); err != nil {
		return err
	}

	var existingID int
	err := r.QueryRowContext(ctx, `SELECT id FROM stages WHERE id = $1`, request.ID).Scan(&existingID)
	if errors.Is(err, sql.ErrNoRows) {
		return web.NewRequestError(postgres.ErrNotFound, http.StatusNotFound)
	}
	if err != nil {
		return web.NewRequestError(errors.Wrap(err, "stage existence check"), http.StatusInternalServerError)
	}

	q := r.NewUpdate().Table("stages").Where("id = ?", request.ID)
	q.Set("stage_name = ?", request.Name)
	q.Set("stage_type = ?", request.Type)
	q.Set("updated_at = ?", time.Now())

	_, err = q.Exec(ctx)
	if err != nil {
		return web.NewRequestError(errors.Wrap(err, "updating stage"), http.StatusInternalServerError)
	}

	return nil
}
