package commands

import (
	"context"
	"os"

	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"
	"gopkg.in/yaml.v3"

	"workforce/backend/internal/pkg/repository/postgresql"
)

// SeedFile describes the optional master-data bootstrap loaded at startup.
type SeedFile struct {
	Stages []struct {
		Name string `yaml:"name"`
		Type string `yaml:"type"`
	} `yaml:"stages"`
	Skills []struct {
		Rating      string `yaml:"rating"`
		Description string `yaml:"description"`
	} `yaml:"skills"`
	Logins []struct {
		UserID   string `yaml:"user_id"`
		Password string `yaml:"password"`
	} `yaml:"logins"`
}

// Seed inserts master rows from the YAML file at path, skipping rows that
// already exist. Missing file is not an error; seeding is optional.
func Seed(ctx context.Context, db *postgresql.Database, path string) error {
	if path == "" {
		return nil
	}

	payload, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return errors.Wrap(err, "reading seed file")
	}

	var seed SeedFile
	if err := yaml.Unmarshal(payload, &seed); err != nil {
		return errors.Wrap(err, "parsing seed file")
	}

	for _, s := range seed.Stages {
		if _, err := db.ExecContext(ctx, `
			INSERT INTO stages (stage_name, stage_type)
			SELECT $1, $2
			WHERE NOT EXISTS (SELECT id FROM stages WHERE stage_name = $1)
		`, s.Name, s.Type); err != nil {
			return errors.Wrap(err, "seeding stage")
		}
	}

	for _, s := range seed.Skills {
		if _, err := db.ExecContext(ctx, `
			INSERT INTO skills (skill_rating, skill_description)
			SELECT $1, $2
			WHERE NOT EXISTS (SELECT id FROM skills WHERE skill_description = $2)
		`, s.Rating, s.Description); err != nil {
			return errors.Wrap(err, "seeding skill")
		}
	}

	for _, l := range seed.Logins {
		hash, err := bcrypt.GenerateFromPassword([]byte(l.Password), bcrypt.DefaultCost)
		if err != nil {
			return errors.Wrap(err, "hashing seed password")
		}

		if _, err := db.ExecContext(ctx, `
			INSERT INTO user_logins (user_id, password_hash)
			SELECT $1, $2
			WHERE NOT EXISTS (SELECT id FROM user_logins WHERE user_id = $1)
		`, l.UserID, string(hash)); err != nil {
			return errors.Wrap(err, "seeding login")
		}
	}

	return nil
}
