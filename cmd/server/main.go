package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/cors"

	"quizmaker/internal/config"
	"quizmaker/internal/database"
	"quizmaker/internal/fixtures"
	"quizmaker/internal/handlers"
	"quizmaker/internal/remote"
	"quizmaker/internal/repository"
	"quizmaker/internal/security"
	"quizmaker/internal/service"
)

func main() {
	// Load configuration
	cfg := config.Load()

	startup := handlers.NewStartupStatus(
		handlers.StepDatabase,
		handlers.StepMigrations,
		handlers.StepSeed,
		handlers.StepServices,
	)

	// The startup endpoint is served while the rest of the API initializes
	mux := http.NewServeMux()
	mux.Handle("GET "+handlers.StartupPath, startup)

	corsHandler := cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", security.CSRFHeader},
		AllowCredentials: true,
		MaxAge:           300,
	})
	handler := corsHandler(handlers.Logging(startup.RequireReady(mux)))

	addr := ":" + cfg.ServerPort
	server := &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Server starting on http://localhost%s", addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	provider, lister, closeStore := initTestSource(cfg, startup)
	defer closeStore()

	// Initialize services
	startup.SetCurrentStep(handlers.StepServices)

	notifier, err := service.NewEmailService(context.Background(), cfg.AWSRegion, cfg.SESFromEmail, cfg.SESFromName, cfg.AppBaseURL, cfg.Debug)
	if err != nil {
		log.Fatalf("Failed to initialize email service: %v", err)
	}

	authService := service.NewAuthService(security.NewTokenIssuer(cfg.JWTSecret, cfg.SessionDuration))
	sessionService := service.NewSessionService(provider, notifier, cfg.TickInterval, time.Hour)
	sessionService.StartCleanup(10 * time.Minute)

	csrf := security.NewCSRFGenerator(cfg.CSRFSecret)
	routes := &handlers.Routes{
		Middleware:   handlers.NewMiddleware(authService, csrf),
		LoginLimiter: security.NewRateLimiter(5, time.Minute),
		Auth:         handlers.NewAuthHandler(authService, csrf),
		Sessions:     handlers.NewSessionHandler(sessionService),
		Dashboards:   handlers.NewDashboardHandler(service.NewDashboardService(lister)),
		Startup:      startup,
	}
	routes.Register(mux)

	startup.CompleteStep(handlers.StepServices)
	startup.MarkReady()
	log.Printf("Server ready (test source: %s)", cfg.TestSource)

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Server shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Printf("Server shutdown error: %v", err)
	}
	sessionService.Shutdown()
}

// initTestSource wires the configured source of test definitions. The
// returned func releases whatever the source holds open.
func initTestSource(cfg *config.Config, startup *handlers.StartupStatus) (service.TestProvider, service.TestLister, func()) {
	noop := func() {}

	switch cfg.TestSource {
	case config.TestSourceStatic:
		skipStorageSteps(startup)
		static := service.NewStaticProvider(fixtures.SampleTest())
		return static, static, noop

	case config.TestSourceRemote:
		if cfg.RemoteTestsURL == "" {
			log.Fatal("REMOTE_TESTS_URL is required when TEST_SOURCE=remote")
		}
		skipStorageSteps(startup)
		client := remote.NewClient(cfg.RemoteTestsURL, remote.Credentials{
			TokenURL:     cfg.RemoteTokenURL,
			ClientID:     cfg.RemoteClientID,
			ClientSecret: cfg.RemoteClientSecret,
		})
		return service.Validated(client), client, noop

	case config.TestSourceDatabase:
	default:
		log.Fatalf("Unknown TEST_SOURCE %q", cfg.TestSource)
	}

	// Initialize database with config (supports sqlite, postgres, mysql)
	startup.SetCurrentStep(handlers.StepDatabase)
	db, err := database.InitializeWithConfig(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	log.Printf("Database connection established (type: %s)", cfg.DatabaseType)
	startup.CompleteStep(handlers.StepDatabase)

	// Run migrations
	startup.SetCurrentStep(handlers.StepMigrations)
	if err := db.RunMigrations(cfg.MigrationsPath); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Migrations completed successfully")
	startup.CompleteStep(handlers.StepMigrations)

	// Seed default tests
	startup.SetCurrentStep(handlers.StepSeed)
	repo := repository.NewTestRepository(db)
	if n, err := repo.SeedDefaultTests(context.Background(), fixtures.DefaultTests()); err != nil {
		log.Printf("Warning: Failed to seed default tests: %v", err)
	} else if n > 0 {
		log.Printf("Seeded %d default tests", n)
	}
	startup.CompleteStep(handlers.StepSeed)

	return service.Validated(repo), repo, func() { db.Close() }
}

func skipStorageSteps(startup *handlers.StartupStatus) {
	startup.CompleteStep(handlers.StepDatabase)
	startup.CompleteStep(handlers.StepMigrations)
	startup.CompleteStep(handlers.StepSeed)
}
