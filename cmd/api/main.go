package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"
	"github.com/vaultpass/passgen/internal/config"
	"github.com/vaultpass/passgen/internal/crypto"
	"github.com/vaultpass/passgen/internal/handler"
	"github.com/vaultpass/passgen/internal/middleware"
	"github.com/vaultpass/passgen/internal/repository"
	"github.com/vaultpass/passgen/internal/service"
)

func main() {
	issueFor := flag.String("issue-token", "", "print a client token for the named client and exit")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		slog.Warn("no .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}
	setupLogger(cfg)

	if *issueFor != "" {
		if err := issueToken(cfg, *issueFor); err != nil {
			slog.Error("issuing token failed", "error", err)
			os.Exit(1)
		}
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var events *repository.EventRepository
	if cfg.DatabaseDSN != "" {
		db, err := repository.NewDB(ctx, cfg.DatabaseDSN)
		if err != nil {
			slog.Warn("database connection failed, usage recording disabled", "error", err)
		} else {
			defer db.Close()
			events = repository.NewEventRepository(db)
		}
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           newRouter(ctx, cfg, events),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		slog.Info("server starting", "port", cfg.Port, "env", cfg.Env, "auth", cfg.AuthEnabled(), "stats", events != nil)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()

	slog.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("server forced shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped")
}

// newRouter wires the HTTP routes. events may be nil, in which case nothing
// is recorded and /api/v1/stats is not mounted.
func newRouter(ctx context.Context, cfg config.Config, events *repository.EventRepository) http.Handler {
	var recorder service.EventRecorder
	if events != nil {
		recorder = events
	}

	genHandler := handler.NewGeneratorHandler(service.NewGeneratorService(cfg.MaxBatch, recorder))

	r := chi.NewRouter()
	r.Use(middleware.Logger)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Group(func(r chi.Router) {
		r.Use(middleware.RateLimit(ctx, cfg.RateLimitRPS, cfg.RateLimitBurst))
		if cfg.AuthEnabled() {
			r.Use(middleware.ClientAuth(cfg.JWTSecret))
		}

		r.Post("/api/v1/generate", genHandler.HandleGenerate)
		r.Post("/api/v1/passphrase", genHandler.HandlePassphrase)

		if events != nil {
			statsHandler := handler.NewStatsHandler(service.NewStatsService(events))
			r.Get("/api/v1/stats", statsHandler.HandleStats)
		}
	})

	return r
}

func setupLogger(cfg config.Config) {
	var h slog.Handler
	if cfg.Production() {
		h = slog.NewJSONHandler(os.Stderr, nil)
	} else {
		h = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})
	}
	slog.SetDefault(slog.New(h))
}

func issueToken(cfg config.Config, client string) error {
	if !cfg.AuthEnabled() {
		return errors.New("JWT_SECRET is not set")
	}
	token, err := crypto.IssueClientToken(client, cfg.JWTSecret, cfg.JWTExpiry)
	if err != nil {
		return err
	}
	fmt.Println(token)
	return nil
}
