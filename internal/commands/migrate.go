package commands

import (
	"fmt"
	"log"

	"workforce/backend/internal/pkg/repository/postgresql"
)

type Scheme struct {
	Index       int
	Description string
	Query       string
}

var scheme = []Scheme{
	{
		Index:       1,
		Description: "Create table: departments.",
		Query: `
        CREATE TABLE IF NOT EXISTS departments (
            id serial primary key,
            name text not null,
            created_at timestamp default now(),
            updated_at timestamp
        );`,
	},
	{
		Index:       2,
		Description: "Create table: designations.",
		Query: `
        CREATE TABLE IF NOT EXISTS designations (
            id serial primary key,
            name text not null,
            created_at timestamp default now(),
            updated_at timestamp
        );`,
	},
	{
		Index:       3,
		Description: "Create table: users (external HR mirror).",
		Query: `
        CREATE TABLE IF NOT EXISTS users (
            id serial primary key,
            userid text not null unique,
            name text not null,
            dptid int references departments(id),
            dsgid int references designations(id),
            enroll_dt date,
            enabled boolean default true,
            created_at timestamp default now(),
            updated_at timestamp
        );`,
	},
	{
		Index:       4,
		Description: "Create table: user_logins.",
		Query: `
        CREATE TABLE IF NOT EXISTS user_logins (
            id serial primary key,
            user_id text not null unique,
            password_hash text not null,
            created_at timestamp default now(),
            updated_at timestamp
        );`,
	},
	{
		Index:       5,
		Description: "Create table: stages.",
		Query: `
        CREATE TABLE IF NOT EXISTS stages (
            id serial primary key,
            stage_name text not null,
            stage_type text not null,
            created_at timestamp default now(),
            updated_at timestamp
        );`,
	},
	{
		Index:       6,
		Description: "Create table: skills.",
		Query: `
        CREATE TABLE IF NOT EXISTS skills (
            id serial primary key,
            skill_rating char(1) not null,
            skill_description text not null,
            created_at timestamp default now(),
            updated_at timestamp
        );`,
	},
	{
		Index:       7,
		Description: "Create table: user_skills.",
		Query: `
        CREATE TABLE IF NOT EXISTS user_skills (
            id serial primary key,
            userid text not null,
            stage_id int references stages(id),
            skill_id int references skills(id),
            update_at timestamp default now()
        );`,
	},
	{
		Index:       8,
		Description: "Create table: user_shifts.",
		Query: `
        CREATE TABLE IF NOT EXISTS user_shifts (
            id serial primary key,
            shift_date_from date not null,
            shift_date_to date not null,
            userid text not null,
            stage_id int references stages(id),
            shift_id varchar(10) not null,
            line varchar(10) not null,
            created_at timestamp default now(),
            updated_at timestamp
        );`,
	},
	{
		Index:       9,
		Description: "Create table: punch_events (written externally, read-only here).",
		Query: `
        CREATE TABLE IF NOT EXISTS punch_events (
            id serial primary key,
            userid text not null,
            edatetime timestamp not null
        );`,
	},
	{
		Index:       10,
		Description: "Create table: user_swaps.",
		Query: `
        CREATE TABLE IF NOT EXISTS user_swaps (
            id serial primary key,
            shift_date date not null,
            stage_id int references stages(id),
            shift_id varchar(10) not null,
            line varchar(10) not null,
            absent_userid text not null,
            swap_userid text not null,
            created_at timestamp default now(),
            updated_at timestamp
        );`,
	},
	{
		Index:       11,
		Description: "One active swap per absent worker per date/shift/line slot.",
		Query: `
        CREATE UNIQUE INDEX IF NOT EXISTS user_swaps_slot_uniq
        ON user_swaps (absent_userid, shift_date, shift_id, line);`,
	},
	{
		Index:       12,
		Description: "Punch lookup index for the daily derivation.",
		Query: `
        CREATE INDEX IF NOT EXISTS punch_events_userid_day_idx
        ON punch_events (userid, edatetime);`,
	},
}

// MigrateUP applies every scheme entry above the recorded version, keeping
// the schema_migrations bookkeeping the deploy scripts read.
func MigrateUP(db *postgresql.Database) {
	var (
		version int
		dirty   bool
		er      *string
	)
	err := db.QueryRow("SELECT version, dirty, error FROM schema_migrations").Scan(&version, &dirty, &er)
	if err != nil {
		if err.Error() == `ERROR: relation "schema_migrations" does not exist (SQLSTATE=42P01)` {
			if _, err = db.Exec(`
				CREATE TABLE IF NOT EXISTS schema_migrations (version int not null, dirty bool not null, error text);
				DELETE FROM schema_migrations;
				INSERT INTO schema_migrations (version, dirty) values (0, false);
			`); err != nil {
				log.Fatalln("migrate schema_migrations create error", err)
			}
			version = 0
			dirty = false
		} else {
			log.Fatalln("migrate schema_migrations scan: ", err)
		}
	}

	if dirty {
		for _, v := range scheme {
			if v.Index == version {
				if _, err = db.Exec(v.Query); err != nil {
					if _, err = db.Exec(`UPDATE schema_migrations SET error = $1`, err.Error()); err != nil {
						log.Fatalln("migrate error", err)
					}
					log.Fatalln(fmt.Sprintf("migrate error version: %d", version), err)
				}
				if _, err = db.Exec(`UPDATE schema_migrations SET dirty = false, error = null`); err != nil {
					log.Fatalln("migrate error", err)
				}
			}
		}
	}

	for _, s := range scheme {
		if s.Index > version {
			if _, err = db.Exec(s.Query); err != nil {
				if _, err = db.Exec(`UPDATE schema_migrations SET error = $1, version = $2, dirty = true`, err.Error(), s.Index); err != nil {
					log.Fatalln("migrate error", err)
				}
				log.Fatalln(fmt.Sprintf("migrate error version: %d", s.Index), err)
			}
			if _, err = db.Exec(`UPDATE schema_migrations SET version = $1`, s.Index); err != nil {
				log.Fatalln("migrate error", err)
			}
		}
	}
}
