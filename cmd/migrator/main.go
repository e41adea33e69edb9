package main

import (
	"context"
	"log"

	"github.com/Houeta/staff-roster/internal/config"
	"github.com/Houeta/staff-roster/internal/repository"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose"
)

func main() {
	cfg := config.MustLoad()

	dbpool, dbErr := repository.NewDatabase(context.Background(), cfg.Postgres)
	if dbErr != nil {
		log.Fatalf("Failed to connect to DB: %v", dbErr)
	}
	defer dbpool.Close()

	dtb := stdlib.OpenDBFromPool(dbpool)
	defer dtb.Close()

	if err := goose.SetDialect("postgres"); err != nil {
		log.Fatal(err)
	}
	if err := goose.Up(dtb, cfg.Migrations.Dir); err != nil {
		log.Fatal(err)
	}

	log.Println("✅ Migrations applied successfully")
}
