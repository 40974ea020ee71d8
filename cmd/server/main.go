package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/tkstudio/site-backend/internal/config"
	"github.com/tkstudio/site-backend/internal/database"
	"github.com/tkstudio/site-backend/internal/handler"
	"github.com/tkstudio/site-backend/internal/logger"
	"github.com/tkstudio/site-backend/internal/mailer"
	"github.com/tkstudio/site-backend/internal/middleware"
	"github.com/tkstudio/site-backend/internal/repository"
	"github.com/tkstudio/site-backend/internal/router"
	"github.com/tkstudio/site-backend/internal/service"
	"github.com/tkstudio/site-backend/internal/store"
	"github.com/tkstudio/site-backend/internal/validator"
)

func main() {
	// ─── Load Configuration ────────────────────────────────────────────
	cfg := config.Load()

	// ─── Initialize Logger ─────────────────────────────────────────────
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)
	log.Info().
		Str("port", cfg.ServerPort).
		Str("mode", cfg.GinMode).
		Str("log_level", cfg.LogLevel).
		Msg("Starting site backend")

	// ─── Initialize Validator ──────────────────────────────────────────
	validator.Setup()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// ─── Connect to PostgreSQL ─────────────────────────────────────────
	pool, err := database.NewPostgresPool(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()

	// ─── Connect to Redis ──────────────────────────────────────────────
	rdb, err := database.NewRedisClient(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer rdb.Close()

	// ─── Document Store + Repositories ─────────────────────────────────
	docs := store.NewPostgres(pool)

	adminRepo := repository.NewAdminRepository(docs)
	portfolioRepo := repository.NewPortfolioRepository(docs)
	galleryRepo := repository.NewGalleryRepository(docs)
	serviceRepo := repository.NewServiceRepository(docs)
	teamRepo := repository.NewTeamRepository(docs)
	testimonialRepo := repository.NewTestimonialRepository(docs)
	blogRepo := repository.NewBlogRepository(docs)
	inquiryRepo := repository.NewInquiryRepository(docs)
	statsRepo := repository.NewStatsRepository(docs)

	// ─── Services ──────────────────────────────────────────────────────
	authService := service.NewAuthService(cfg)

	smtp, err := mailer.NewSMTP(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to configure SMTP mailer")
	}
	var inquiryMailer mailer.Mailer
	if smtp != nil {
		inquiryMailer = smtp
		log.Info().Str("host", cfg.SMTPHost).Msg("Inquiry notifications enabled")
	} else {
		log.Info().Msg("SMTP not configured, inquiry notifications disabled")
	}

	// ─── Handlers ──────────────────────────────────────────────────────
	handlers := &router.Handlers{
		Auth:        handler.NewAuthHandler(authService, adminRepo),
		Portfolio:   handler.NewPortfolioHandler(portfolioRepo),
		Gallery:     handler.NewGalleryHandler(galleryRepo),
		Service:     handler.NewServiceHandler(serviceRepo),
		Team:        handler.NewTeamHandler(teamRepo),
		Testimonial: handler.NewTestimonialHandler(testimonialRepo),
		Blog:        handler.NewBlogHandler(blogRepo),
		Inquiry:     handler.NewInquiryHandler(inquiryRepo, inquiryMailer, log),
		Stats:       handler.NewStatsHandler(statsRepo),
	}

	// ─── Setup Router ──────────────────────────────────────────────────
	limiter := middleware.NewRateLimiter(rdb, cfg.AuthRateLimit, time.Minute, log)
	r := router.SetupRouter(authService, adminRepo, handlers, limiter, cfg)

	// ─── Create HTTP Server ────────────────────────────────────────────
	srv := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: r,
	}

	// ─── Start Server in Goroutine ─────────────────────────────────────
	go func() {
		log.Info().Str("addr", ":"+cfg.ServerPort).Msg("Server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server error")
		}
	}()

	// ─── Graceful Shutdown ─────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	log.Info().Str("signal", sig.String()).Msg("Shutting down gracefully...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("HTTP server shutdown error")
	}

	log.Info().Msg("Shutdown complete")
}

// init sets zerolog global defaults before main runs.
func init() {
	zerolog.TimeFieldFormat = time.RFC3339
}
