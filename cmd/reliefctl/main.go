package main

import (
	"context"
	"errors"
	"os"

	"github.com/marcos-nsantos/relief-map-backend/internal/cli"
	"github.com/marcos-nsantos/relief-map-backend/internal/infrastructure/config"
	"github.com/marcos-nsantos/relief-map-backend/internal/infrastructure/database"
	"github.com/marcos-nsantos/relief-map-backend/internal/infrastructure/geoip"
)

var version = "dev"

func main() {
	cfg, err := config.Load()
	if err != nil {
		_, _ = os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}

	deps := cli.Dependencies{
		Locale: geoip.NewClient(geoip.ClientConfig{
			BaseURL:      cfg.Locale.BaseURL,
			DomesticCode: cfg.Locale.DomesticCode,
			Timeout:      cfg.Locale.Timeout,
		}),
		Migrate: func(ctx context.Context) error {
			if cfg.Database.MigrationsPath == "" {
				return errors.New("DB_MIGRATIONS_PATH is empty")
			}
			pool, err := database.NewPostgresPool(ctx, cfg.Database)
			if err != nil {
				return err
			}
			pool.Close()
			return nil
		},
		Version: version,
	}

	os.Exit(cli.Execute(context.Background(), os.Args[1:], deps, os.Stdout, os.Stderr))
}
