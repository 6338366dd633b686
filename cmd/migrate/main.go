package main

import (
	"context"
	"log"
	"os"

	"pos-terminal/internal/config"
	"pos-terminal/internal/migrate"
	"pos-terminal/internal/repository/salelog"
)

func main() {
	cfg := config.FromEnv()
	logger := log.New(os.Stdout, "[migrate] ", log.LstdFlags|log.LUTC|log.Lshortfile)

	if cfg.DBConnString == "" {
		logger.Fatal("DB_DSN required to migrate the sale archive")
	}

	ctx := context.Background()
	pool, err := salelog.Connect(ctx, cfg.DBConnString)
	if err != nil {
		logger.Fatalf("connect db: %v", err)
	}
	defer pool.Close()

	if err := migrate.Apply(ctx, pool); err != nil {
		logger.Fatalf("apply migrations: %v", err)
	}

	logger.Println("migrations applied")
}
