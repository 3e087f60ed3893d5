// Copyright (c) 2025-2026 TÜMED
// SPDX-License-Identifier: GPL-3.0-or-later

package main

import (
	"context"
	"database/sql"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"

	"github.com/tumed/tumed-go/internal/cache"
	"github.com/tumed/tumed-go/internal/config"
	"github.com/tumed/tumed-go/internal/handler"
	"github.com/tumed/tumed-go/internal/logging"
	"github.com/tumed/tumed-go/internal/middleware"
	"github.com/tumed/tumed-go/internal/render"
	"github.com/tumed/tumed-go/internal/scheduler"
	"github.com/tumed/tumed-go/internal/service"
	"github.com/tumed/tumed-go/internal/store"
	"github.com/tumed/tumed-go/internal/token"
	"github.com/tumed/tumed-go/internal/version"
	"github.com/tumed/tumed-go/web"
)

// Version information - injected at build time via ldflags
var (
	appVersion   = "dev"
	appGitCommit = "unknown"
	appBuildTime = "unknown"
)

func main() {
	showVersion := flag.Bool("version", false, "Show version information")
	flag.BoolVar(showVersion, "v", false, "Show version information (shorthand)")

	flag.Usage = func() {
		_, _ = fmt.Fprintf(os.Stderr, "tumed - TÜMED association website\n\n")
		_, _ = fmt.Fprintf(os.Stderr, "Usage: %s [options]\n\n", os.Args[0])
		_, _ = fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		_, _ = fmt.Fprintf(os.Stderr, "\nEnvironment Variables:\n")
		_, _ = fmt.Fprintf(os.Stderr, "  TUMED_SESSION_SECRET   Token signing key (required, min 32 bytes)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  TUMED_DB_PATH          SQLite database path (default: ./data/tumed.db)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  TUMED_SERVER_PORT      Server port (default: 8080)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  TUMED_ENV              Environment: development|production (default: development)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  TUMED_UPLOADS_DIR      Upload directory (default: ./public/uploads)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  TUMED_REDIS_URL        Redis URL for distributed page caching (optional)\n")
	}

	flag.Parse()

	if *showVersion {
		_, _ = fmt.Printf("tumed %s (commit: %s, built: %s)\n", appVersion, appGitCommit, appBuildTime)
		os.Exit(0)
	}

	if err := run(); err != nil {
		slog.Error("application error", "error", err)
		os.Exit(1)
	}
}

func run() error {
	// Load .env file if present (development)
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	versionInfo := &version.Info{
		Version:   appVersion,
		GitCommit: appGitCommit,
		BuildTime: appBuildTime,
	}

	// Setup logger
	logLevel := slog.LevelInfo
	switch cfg.LogLevel {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	// Ensure data directory exists
	if err := os.MkdirAll(filepath.Dir(cfg.DBPath), 0755); err != nil {
		return fmt.Errorf("creating data directory: %w", err)
	}

	slog.Info("initializing database", "path", cfg.DBPath)
	db, err := store.NewDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("initializing database: %w", err)
	}
	defer func(db *sql.DB) {
		if err := db.Close(); err != nil {
			slog.Error("error closing database connection", "error", err)
		}
	}(db)

	slog.Info("running database migrations")
	if err := store.Migrate(db); err != nil {
		return fmt.Errorf("running migrations: %w", err)
	}
	slog.Info("database ready")

	// Upgrade logger to also persist WARN and ERROR logs to the event log
	textHandler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel})
	logger = slog.New(logging.NewEventLogHandler(textHandler, db))
	slog.SetDefault(logger)
	slog.Info("event log integration enabled", "min_level", "warn")

	ctx := context.Background()
	if err := store.Seed(ctx, db); err != nil {
		return fmt.Errorf("seeding database: %w", err)
	}
	if cfg.DoSeed {
		if err := store.SeedSampleContent(ctx, db); err != nil {
			return fmt.Errorf("seeding sample content: %w", err)
		}
	}

	// Page cache: Redis when configured, in-process memory otherwise
	pageCache, err := cache.New(cache.Config{
		RedisURL:   cfg.RedisURL,
		Prefix:     cfg.CachePrefix,
		DefaultTTL: time.Duration(cfg.CacheTTL) * time.Second,
		MaxSize:    cfg.CacheMaxSize,
	})
	if err != nil {
		return fmt.Errorf("initializing cache: %w", err)
	}
	defer func() {
		if err := pageCache.Close(); err != nil {
			slog.Warn("error closing cache", "error", err)
		}
	}()
	if cfg.UseRedisCache() {
		slog.Info("page cache initialized", "backend", "redis", "url", cfg.RedisURL)
	} else {
		slog.Info("page cache initialized", "backend", "memory", "max_size", cfg.CacheMaxSize)
	}

	// Template renderer
	templatesFS, err := fs.Sub(web.Templates, "templates")
	if err != nil {
		return fmt.Errorf("getting templates fs: %w", err)
	}
	renderer, err := render.New(render.Config{
		TemplatesFS: templatesFS,
		IsDev:       cfg.IsDevelopment(),
	})
	if err != nil {
		return fmt.Errorf("initializing renderer: %w", err)
	}
	slog.Info("template renderer initialized")

	// Token signer and services
	signer := token.NewSigner(cfg.SessionSecret, time.Duration(cfg.SessionTTLHours)*time.Hour)
	authService := service.NewAuthService(db, signer, logger)
	contentService := service.NewContentService(db, pageCache, logger)
	uploadService := service.NewUploadService(cfg.UploadsDir, logger)

	// Background jobs
	sched := scheduler.New(db, uploadService, cfg.UploadsDir,
		time.Duration(cfg.EventRetentionDays)*24*time.Hour, logger)
	if err := sched.Start(); err != nil {
		return fmt.Errorf("starting scheduler: %w", err)
	}
	defer sched.Stop()

	// Login protection and rate limiting
	loginProtection := middleware.NewLoginProtection(middleware.DefaultLoginProtectionConfig())
	slog.Info("login protection initialized",
		"max_failed_attempts", 5,
		"lockout_duration", "15m",
	)
	apiRateLimiter := middleware.NewGlobalRateLimiter(50, 100)

	csrfMiddleware := middleware.CSRF(middleware.DefaultCSRFConfig(
		[]byte(cfg.SessionSecret), cfg.IsDevelopment()))

	// Handlers
	authHandler := handler.NewAuthHandler(authService, signer, loginProtection, renderer, logger, cfg.IsDevelopment())
	faaliyetHandler := handler.NewFaaliyetHandler(contentService)
	haberHandler := handler.NewHaberHandler(contentService)
	uploadHandler := handler.NewUploadHandler(uploadService, logger)
	eventsHandler := handler.NewEventsHandler(db)
	adminHandler := handler.NewAdminHandler(db, contentService, renderer, logger)
	frontendHandler := handler.NewFrontendHandler(contentService, pageCache, renderer, logger)
	healthHandler := handler.NewHealthHandler(db, versionInfo)

	// Router
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Compress(5))
	r.Use(chimw.GetHead)
	r.Use(chimw.StripSlashes)
	r.Use(middleware.Timeout(30 * time.Second))
	r.Use(middleware.SecurityHeaders(middleware.DefaultSecurityHeadersConfig(cfg.IsDevelopment())))
	r.Use(middleware.LoadClaims(signer))

	r.NotFound(frontendHandler.NotFound)

	// Public pages
	r.Get("/", frontendHandler.Home)
	r.Get("/faaliyetler", frontendHandler.Faaliyetler)
	r.Get("/faaliyetler/{id}", frontendHandler.Faaliyet)
	r.Get("/faaliyetler/{id}/{slug}", frontendHandler.Faaliyet)
	r.Get("/haberler", frontendHandler.Haberler)
	r.Get("/haberler/{id}", frontendHandler.Haber)
	r.Get("/haberler/{id}/{slug}", frontendHandler.Haber)
	r.Get("/health", healthHandler.Health)

	// Login pages
	r.Group(func(r chi.Router) {
		r.Use(csrfMiddleware)
		r.Get("/login", authHandler.LoginPage)
		r.With(loginProtection.Middleware()).Post("/login", authHandler.LoginSubmit)
	})

	// Admin panel pages
	r.Route("/admin", func(r chi.Router) {
		r.Use(csrfMiddleware)
		r.Use(middleware.Auth(signer))
		r.Use(middleware.RequireAdmin())
		r.Get("/", adminHandler.Dashboard)
		r.Get("/faaliyetler", adminHandler.Faaliyetler)
		r.Get("/haberler", adminHandler.Haberler)
	})

	// JSON API
	r.Route("/api", func(r chi.Router) {
		r.Use(apiRateLimiter.Middleware())

		r.With(loginProtection.Middleware()).Post("/auth/login", authHandler.APILogin)
		r.Post("/auth/logout", authHandler.Logout)

		r.Route("/admin", func(r chi.Router) {
			r.Use(middleware.APIRequireAdmin(signer))

			r.Get("/me", authHandler.Me)
			r.Get("/events", eventsHandler.List)
			r.Post("/upload", uploadHandler.Upload)

			r.Get("/faaliyetler", faaliyetHandler.List)
			r.Post("/faaliyetler", faaliyetHandler.Create)
			r.Get("/faaliyetler/{id}", faaliyetHandler.Get)
			r.Put("/faaliyetler/{id}", faaliyetHandler.Update)
			r.Delete("/faaliyetler/{id}", faaliyetHandler.Delete)

			r.Get("/haberler", haberHandler.List)
			r.Post("/haberler", haberHandler.Create)
			r.Get("/haberler/{id}", haberHandler.Get)
			r.Put("/haberler/{id}", haberHandler.Update)
			r.Delete("/haberler/{id}", haberHandler.Delete)
		})
	})

	// Static assets from the embedded filesystem
	staticFS, err := fs.Sub(web.Static, "static")
	if err != nil {
		return fmt.Errorf("getting static fs: %w", err)
	}
	r.Handle("/static/*", middleware.StaticCache(31536000)(
		http.StripPrefix("/static/", http.FileServer(http.FS(staticFS)))))

	// Uploaded images from the uploads directory
	r.Handle("/uploads/*", middleware.StaticCache(604800)(
		http.StripPrefix("/uploads/", http.FileServer(http.Dir(cfg.UploadsDir)))))

	srv := &http.Server{
		Addr:              cfg.ServerAddr(),
		Handler:           r,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    1 << 20,
	}

	go func() {
		slog.Info("starting server", "addr", cfg.ServerAddr(), "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	slog.Info("server stopped")
	return nil
}
