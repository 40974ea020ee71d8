package main

import (
	"context"
	"fmt"

	"github.com/tkstudio/site-backend/internal/config"
	"github.com/tkstudio/site-backend/internal/database"
	"github.com/tkstudio/site-backend/internal/logger"
	"github.com/tkstudio/site-backend/internal/repository"
	"github.com/tkstudio/site-backend/internal/service"
	"github.com/tkstudio/site-backend/internal/store"
)

// seed-admin creates the well-known first-run admin principal if it does
// not exist yet. Safe to run repeatedly.
func main() {
	cfg := config.Load()
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)

	ctx := context.Background()

	pool, err := database.NewPostgresPool(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()

	docs := store.NewPostgres(pool)
	adminRepo := repository.NewAdminRepository(docs)
	seeder := service.NewSeedService(service.NewAuthService(cfg), adminRepo)

	created, err := seeder.EnsureDefaultAdmin(ctx, cfg.SeedAdminEmail, cfg.SeedAdminName, cfg.SeedAdminPassword)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to seed admin")
	}

	if !created {
		fmt.Println("Admin user already exists!")
		fmt.Printf("Email: %s\n", cfg.SeedAdminEmail)
		return
	}

	fmt.Println("Admin user created successfully!")
	fmt.Printf("Email: %s\n", cfg.SeedAdminEmail)
	fmt.Printf("Password: %s\n", cfg.SeedAdminPassword)
	fmt.Println("")
	fmt.Println("Change the password after first login in production setups.")
}
