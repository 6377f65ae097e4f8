package main

import (
	"context"
	"errors"
	"github.com/dabolichin/ligence-task/internal/algorithm"
	"github.com/dabolichin/ligence-task/internal/config"
	"github.com/dabolichin/ligence-task/internal/http-server/handlers/verification/requestVerification"
	"github.com/dabolichin/ligence-task/internal/http-server/handlers/verification/verificationHistory"
	"github.com/dabolichin/ligence-task/internal/http-server/handlers/verification/verificationStats"
	"github.com/dabolichin/ligence-task/internal/http-server/handlers/verification/verificationStatus"
	"github.com/dabolichin/ligence-task/internal/http-server/middleware/mwlogger"
	"github.com/dabolichin/ligence-task/internal/lib/api/response"
	"github.com/dabolichin/ligence-task/internal/lib/logger/handlers/slogpretty"
	"github.com/dabolichin/ligence-task/internal/lib/logger/sl"
	"github.com/dabolichin/ligence-task/internal/verification/comparison"
	"github.com/dabolichin/ligence-task/internal/verification/retrieval"
	"github.com/dabolichin/ligence-task/internal/verification/storage/sqlite"
	"github.com/dabolichin/ligence-task/internal/verification/verifier"
	"github.com/dabolichin/ligence-task/internal/worker"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
)

const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"
)

func main() {
	cfg := config.MustLoad()

	log := setupLogger(cfg.Env)

	log.Info("starting verification service", slog.String("env", cfg.Env))
	log.Debug("debug messages are enabled")

	results, err := sqlite.InitDB(cfg.Verification.DatabasePath, log)
	if err != nil {
		log.Error("failed to init storage", sl.Err(err))
		os.Exit(1)
	}

	if err = os.MkdirAll(cfg.Verification.Storage.TempDir, 0o755); err != nil {
		log.Error("failed to create temp directory", sl.Err(err))
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pool := worker.NewPool(log, cfg.Verification.ConcurrentLimit, cfg.Verification.QueueSize)
	pool.Start(ctx)

	source := retrieval.New(log, cfg.Verification.ProcessingURL, cfg.Verification.RetrievalTimeout)

	engine := algorithm.NewEngine(algorithm.NewXORTransform())

	comparer := comparison.NewEngine(log)

	imageVerifier := verifier.New(
		log,
		verifier.Config{
			OriginalImagesDir: cfg.Verification.Storage.OriginalImagesDir,
			TempDir:           cfg.Verification.Storage.TempDir,
		},
		results,
		source,
		engine,
		comparer,
		pool,
	)

	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(mwlogger.New(log))
	router.Use(middleware.Recoverer)
	router.Use(middleware.URLFormat)

	router.Post("/internal/verify", requestVerification.New(log, results, imageVerifier))

	router.Get("/api/verification/statistics", verificationStats.New(log, results))
	router.Get("/api/verification/history", verificationHistory.New(log, results))
	router.Get("/api/verification/{id}/status", verificationStatus.New(log, results))

	router.Get("/api/health", func(w http.ResponseWriter, r *http.Request) {
		render.JSON(w, r, response.OK())
	})

	log.Info("starting server", slog.String("address", cfg.Verification.HTTPServer.Address))

	srv := &http.Server{
		Addr:         cfg.Verification.HTTPServer.Address,
		Handler:      router,
		ReadTimeout:  cfg.Verification.HTTPServer.Timeout,
		WriteTimeout: cfg.Verification.HTTPServer.Timeout,
		IdleTimeout:  cfg.Verification.HTTPServer.IdleTimeout,
	}

	go func() {
		if err = srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("failed to start server", sl.Err(err))
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGTERM, syscall.SIGINT, os.Interrupt)

	sign := <-stop

	log.Info("application stopping", slog.String("signal", sign.String()))

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err = srv.Shutdown(shutdownCtx); err != nil {
		log.Error("failed to shutdown server", sl.Err(err))
	}

	cancel()
	pool.Stop()

	if err = results.Close(); err != nil {
		log.Error("failed to close database", slog.String("error", err.Error()))
	}

	log.Info("sqlite connection closed")

	log.Info("application stopped")
}

func setupLogger(env string) *slog.Logger {
	var log *slog.Logger

	switch env {
	case envLocal:
		log = setupPrettySlog()
	case envDev:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	case envProd:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	}

	return log
}
func setupPrettySlog() *slog.Logger {
	opts := slogpretty.PrettyHandlerOptions{
		SlogOpts: &slog.HandlerOptions{
			Level: slog.LevelDebug,
		},
	}

	h := opts.NewPrettyHandler(os.Stdout)

	return slog.New(h)
}
