package main

import (
	"database/sql"
	"flag"
	"log"
	"net/http"
	"time"

	httpapi "github.com/honzikschenk/uw-outersclub-site-sub000/internal/api/http"
	"github.com/honzikschenk/uw-outersclub-site-sub000/internal/config"
	"github.com/honzikschenk/uw-outersclub-site-sub000/internal/jobs"
	"github.com/honzikschenk/uw-outersclub-site-sub000/internal/logger"
	"github.com/honzikschenk/uw-outersclub-site-sub000/internal/repository/postgres"
	"github.com/honzikschenk/uw-outersclub-site-sub000/internal/scheduler"
	"github.com/honzikschenk/uw-outersclub-site-sub000/internal/security"
	"github.com/honzikschenk/uw-outersclub-site-sub000/internal/service"

	_ "github.com/lib/pq"
)

func main() {
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting Outers Club gear rental backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress())
	logger.Info("Database configuration", "host", cfg.Database.Host, "port", cfg.Database.Port, "database", cfg.Database.Database, "user", cfg.Database.User)

	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		logger.Error("Failed to ping database", "error", err)
		log.Fatalf("Failed to ping database: %v", err)
	}
	logger.Info("Database connection established")

	store := postgres.NewStore(db)

	tokenManager := security.NewTokenManager(cfg.JWT.Secret, time.Duration(cfg.JWT.SessionExpiryHours)*time.Hour)

	var emailSvc service.EmailService
	if cfg.Email.SendGridAPIKey != "" {
		emailSvc = service.NewEmailService(cfg.Email.SendGridAPIKey, cfg.Email.FromEmail, cfg.Email.FromName)
	} else {
		logger.Warn("No SendGrid API key configured, booking emails are disabled")
	}

	membershipSvc := service.NewMembershipService(store.MemberRepository)
	gearSvc := service.NewGearService(store.GearRepository)
	reservationSvc := service.NewReservationService(
		store,
		store.MemberRepository,
		store.GearRepository,
		store.BookingRepository,
		membershipSvc,
		emailSvc,
		time.Duration(cfg.Rental.TurnoverBufferHours)*time.Hour,
	)

	jobRunner := jobs.NewJobRunner(db, emailSvc, cfg)
	sched := scheduler.NewScheduler(jobRunner)
	sched.Start()
	defer sched.Stop()

	router := httpapi.NewRouter(cfg, tokenManager, reservationSvc, gearSvc)

	logger.Info("HTTP server listening", "address", cfg.GetServerAddress())
	if err := http.ListenAndServe(cfg.GetServerAddress(), router); err != nil {
		logger.Error("HTTP server error", "error", err)
		log.Fatalf("Failed to serve: %v", err)
	}
}
