package postgresql

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"reflect"

	"github.com/pkg/errors"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"
	"github.com/uptrace/bun/extra/bundebug"

	"workforce/backend/foundation/web"
)

// Database is the single data-access handle the whole application shares.
// It is constructed once in main and injected through the router; nothing
// reaches for a package-level connection.
type Database struct {
	*bun.DB
}

type Config struct {
	Username   string
	Password   string
	Host       string
	Port       string
	Name       string
	DisableTLS bool
	Debug      bool
}

func NewDatabase(cfg Config) *Database {
	sslMode := "require"
	if cfg.DisableTLS {
		sslMode = "disable"
	}

	dsn := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		cfg.Username, cfg.Password, cfg.Host, cfg.Port, cfg.Name, sslMode)

	sqlDB := sql.OpenDB(pgdriver.NewConnector(pgdriver.WithDSN(dsn)))
	db := bun.NewDB(sqlDB, pgdialect.New())

	if cfg.Debug {
		db.AddQueryHook(bundebug.NewQueryHook(bundebug.WithVerbose(true)))
	}

	return &Database{DB: db}
}

// ValidateStruct checks that the named fields of request are present
// (non-nil pointers, non-zero values).
func (d Database) ValidateStruct(request interface{}, requiredFields ...string) error {
	rv := reflect.ValueOf(request)
	if rv.Kind() == reflect.Ptr {
		rv = rv.Elem()
	}

	for _, name := range requiredFields {
		field := rv.FieldByName(name)
		if !field.IsValid() {
			continue
		}
		if field.Kind() == reflect.Ptr && field.IsNil() {
			return web.NewRequestError(fmt.Errorf("field %s is required", name), http.StatusBadRequest)
		}
		if field.Kind() != reflect.Ptr && field.IsZero() {
			return web.NewRequestError(fmt.Errorf("field %s is required", name), http.StatusBadRequest)
		}
	}

	return nil
}

// DeleteRows removes every row of table matching the given column value.
func (d Database) DeleteRows(ctx context.Context, table, column string, value interface{}) error {
	_, err := d.NewDelete().Table(table).Where("? = ?", bun.Ident(column), value).Exec(ctx)
	if err != nil {
		return web.NewRequestError(errors.Wrapf(err, "deleting from %s", table), http.StatusInternalServerError)
	}

	return nil
}
