package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/ardanlabs/conf"
	"github.com/redis/go-redis/v9"

	"workforce/backend/foundation/web"
	"workforce/backend/internal/commands"
	"workforce/backend/internal/pkg/config"
	"workforce/backend/internal/pkg/repository/postgresql"
	"workforce/backend/internal/router"
)

func main() {
	if err := run(); err != nil {
		log.Fatalln("startup error:", err)
	}
}

func run() error {
	cfg, err := config.NewConfig(os.Args[1:])
	if err != nil {
		if err == conf.ErrHelpWanted {
			usage, uErr := config.Usage()
			if uErr != nil {
				return uErr
			}
			fmt.Println(usage)
			return nil
		}
		return err
	}

	postgresDB := postgresql.NewDatabase(postgresql.Config{
		Username:   cfg.DB.Username,
		Password:   cfg.DB.Password,
		Host:       cfg.DB.Host,
		Port:       cfg.DB.Port,
		Name:       cfg.DB.Name,
		DisableTLS: cfg.DB.DisableTLS,
		Debug:      cfg.DB.Debug,
	})
	defer postgresDB.Close()

	commands.MigrateUP(postgresDB)

	if err := commands.Seed(context.Background(), postgresDB, cfg.SeedFile); err != nil {
		return err
	}

	redisDB := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
	})
	defer redisDB.Close()

	app := web.NewApp()

	r := router.NewRouter(app, postgresDB, redisDB, cfg.Web.Host, cfg.TemplatePath)

	return r.Init()
}
