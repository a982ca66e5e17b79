// Copyright (c) 2026 Pressroom Authors
// SPDX-License-Identifier: GPL-3.0-or-later

package main

import (
	"context"
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

	"github.com/pressroomdev/pressroom/internal/cache"
	"github.com/pressroomdev/pressroom/internal/config"
	"github.com/pressroomdev/pressroom/internal/handler"
	"github.com/pressroomdev/pressroom/internal/logging"
	"github.com/pressroomdev/pressroom/internal/middleware"
	"github.com/pressroomdev/pressroom/internal/render"
	"github.com/pressroomdev/pressroom/internal/scheduler"
	"github.com/pressroomdev/pressroom/internal/service"
	"github.com/pressroomdev/pressroom/internal/session"
	"github.com/pressroomdev/pressroom/internal/store"
	"github.com/pressroomdev/pressroom/internal/version"
	"github.com/pressroomdev/pressroom/web"
)

// Version information - injected at build time via ldflags
var (
	appVersion   = "dev"
	appGitCommit = "unknown"
	appBuildTime = "unknown"
)

func main() {
	// Parse CLI flags
	showVersion := flag.Bool("version", false, "Show version information")
	flag.BoolVar(showVersion, "v", false, "Show version information (shorthand)")
	showHelp := flag.Bool("help", false, "Show help information")
	flag.BoolVar(showHelp, "h", false, "Show help information (shorthand)")

	flag.Usage = func() {
		_, _ = fmt.Fprintf(os.Stderr, "Pressroom - Publishing Admin Panel\n\n")
		_, _ = fmt.Fprintf(os.Stderr, "Usage: %s [options]\n\n", os.Args[0])
		_, _ = fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		_, _ = fmt.Fprintf(os.Stderr, "\nEnvironment Variables:\n")
		_, _ = fmt.Fprintf(os.Stderr, "  PRESSROOM_SESSION_SECRET             Session encryption key (required, min 32 bytes)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  PRESSROOM_DB_PATH                    SQLite database path (default: ./data/pressroom.db)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  PRESSROOM_SERVER_PORT                Server port (default: 8080)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  PRESSROOM_ENV                        Environment: development|production (default: development)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  PRESSROOM_EDIT_LOCK_TIMEOUT_MINUTES  Edit lock expiry in minutes (default: 15)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  PRESSROOM_SWEEP_SCHEDULE             Cron schedule for the publish sweeper (optional)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  PRESSROOM_REDIS_URL                  Redis URL for distributed caching (optional)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  PRESSROOM_DO_SEED                    Seed default admin operator on startup (default: false)\n")
	}

	flag.Parse()

	// Handle -h/-help flag
	if *showHelp {
		flag.Usage()
		os.Exit(0)
	}

	// Handle -v/-version flag
	if *showVersion {
		_, _ = fmt.Printf("pressroom %s (commit: %s, built: %s)\n", appVersion, appGitCommit, appBuildTime)
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

	textHandler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	})
	logger := slog.New(textHandler)
	slog.SetDefault(logger)

	slog.Info("starting pressroom",
		"version", versionInfo.Version,
		"commit", versionInfo.GitCommit,
		"env", cfg.Env,
	)

	// Ensure the database directory exists
	if dir := filepath.Dir(cfg.DBPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating database directory: %w", err)
		}
	}

	db, err := store.NewDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			slog.Error("closing database", "error", err)
		}
	}()

	if err := store.Migrate(db); err != nil {
		return fmt.Errorf("running migrations: %w", err)
	}

	// Mirror warnings and errors into the event log now that the schema exists
	logger = slog.New(logging.NewEventLogHandler(textHandler, db))
	slog.SetDefault(logger)

	if cfg.DoSeed {
		if err := store.Seed(context.Background(), db); err != nil {
			return fmt.Errorf("seeding database: %w", err)
		}
	}

	sessionManager := session.New(db, cfg.IsDevelopment())

	appCache, err := cache.New(cache.Config{
		RedisURL:        cfg.RedisURL,
		Prefix:          cfg.CachePrefix,
		DefaultTTL:      time.Duration(cfg.CacheTTL) * time.Second,
		MaxSize:         cfg.CacheMaxSize,
		CleanupInterval: time.Minute,
	})
	if err != nil {
		return fmt.Errorf("initializing cache: %w", err)
	}
	defer func() {
		if err := appCache.Close(); err != nil {
			slog.Error("closing cache", "error", err)
		}
	}()
	postCache := cache.NewPostCache(appCache, time.Duration(cfg.CacheTTL)*time.Second)

	// Services
	postService := service.NewPostService(db)
	postService.SetCache(postCache)
	mediaService := service.NewMediaService(db)

	// Renderer
	templatesFS, err := fs.Sub(web.Templates, "templates")
	if err != nil {
		return fmt.Errorf("accessing templates: %w", err)
	}
	renderer, err := render.New(render.Config{
		TemplatesFS:    templatesFS,
		SessionManager: sessionManager,
		IsDev:          cfg.IsDevelopment(),
	})
	if err != nil {
		return fmt.Errorf("initializing renderer: %w", err)
	}

	// Background publish sweeper. Read paths promote due posts on their own;
	// the scheduler is a backstop for idle sites.
	if cfg.SweepSchedule != "" {
		sweeper := scheduler.New(postService, logger)
		if err := sweeper.Start(cfg.SweepSchedule); err != nil {
			return fmt.Errorf("starting sweep scheduler: %w", err)
		}
		defer sweeper.Stop()
	}

	loginProtection := middleware.NewLoginProtection(middleware.DefaultLoginProtectionConfig())

	lockTimeout := time.Duration(cfg.EditLockTimeoutMinutes) * time.Minute

	// Handlers
	authHandler := handler.NewAuthHandler(db, renderer, sessionManager, loginProtection)
	postHandler := handler.NewPostHandler(postService, mediaService, renderer, lockTimeout)
	frontendHandler := handler.NewFrontendHandler(postService, renderer)

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)
	r.Use(middleware.SecurityHeaders(middleware.DefaultSecurityHeadersConfig(cfg.IsDevelopment())))
	r.Use(sessionManager.LoadAndSave)

	csrfMiddleware := middleware.CSRF(middleware.DefaultCSRFConfig([]byte(cfg.SessionSecret), cfg.IsDevelopment()))

	// Static assets, cached for a day
	staticFS, err := fs.Sub(web.Static, "static")
	if err != nil {
		return fmt.Errorf("accessing static assets: %w", err)
	}
	staticHandler := middleware.StaticCache(86400)(http.StripPrefix("/static/", http.FileServer(http.FS(staticFS))))
	r.Handle("/static/*", staticHandler)

	// Public frontend routes
	r.Group(func(r chi.Router) {
		r.Get("/", frontendHandler.Home)
		r.Get("/posts", frontendHandler.Posts)
		r.Get("/posts/{slug}", frontendHandler.Post)
	})

	// Auth routes (public, with CSRF and rate limiting)
	r.Group(func(r chi.Router) {
		r.Use(csrfMiddleware)
		r.Get("/login", authHandler.LoginForm)
		r.With(loginProtection.Middleware()).Post("/login", authHandler.Login)
		r.Post("/logout", authHandler.Logout)
	})

	// Admin routes (authenticated, with CSRF)
	r.Route("/admin", func(r chi.Router) {
		r.Use(csrfMiddleware)
		r.Use(middleware.Auth(sessionManager))
		r.Use(middleware.LoadOperator(sessionManager, db))

		r.Route("/posts", func(r chi.Router) {
			r.Get("/", postHandler.List)
			r.Post("/", postHandler.Create)
			r.Get("/new", postHandler.NewForm)
			r.Get("/{id}/edit", postHandler.EditForm)
			r.Post("/{id}", postHandler.Update)
			r.Get("/{id}/revisions", postHandler.Revisions)
			r.Post("/{id}/revisions/{revisionID}/restore", postHandler.RestoreRevision)

			// Enabling and disabling posts is reserved for admins
			r.With(middleware.RequireAdmin()).Post("/{id}/enable", postHandler.Enable)
			r.With(middleware.RequireAdmin()).Post("/{id}/disable", postHandler.Disable)
		})

		r.Get("/", func(w http.ResponseWriter, req *http.Request) {
			http.Redirect(w, req, "/admin/posts", http.StatusSeeOther)
		})
	})

	srv := &http.Server{
		Addr:              cfg.ServerAddr(),
		Handler:           r,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    1 << 20,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("server listening", "addr", cfg.ServerAddr())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return fmt.Errorf("server error: %w", err)
	case sig := <-quit:
		slog.Info("shutting down", "signal", sig.String())
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	slog.Info("server stopped")
	return nil
}
