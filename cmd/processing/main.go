package main

import (
	"context"
	"errors"
	_ "github.com/dabolichin/ligence-task/docs"
	"github.com/dabolichin/ligence-task/internal/algorithm"
	"github.com/dabolichin/ligence-task/internal/config"
	"github.com/dabolichin/ligence-task/internal/http-server/handlers/image/imageDetails"
	"github.com/dabolichin/ligence-task/internal/http-server/handlers/image/listVariants"
	"github.com/dabolichin/ligence-task/internal/http-server/handlers/image/processingStatus"
	"github.com/dabolichin/ligence-task/internal/http-server/handlers/image/uploadImage"
	"github.com/dabolichin/ligence-task/internal/http-server/handlers/modification/getInstructions"
	"github.com/dabolichin/ligence-task/internal/http-server/middleware/mwlogger"
	"github.com/dabolichin/ligence-task/internal/kafka/consumer"
	"github.com/dabolichin/ligence-task/internal/kafka/producer"
	"github.com/dabolichin/ligence-task/internal/lib/logger/handlers/slogpretty"
	"github.com/dabolichin/ligence-task/internal/lib/logger/sl"
	"github.com/dabolichin/ligence-task/internal/processing/announce"
	"github.com/dabolichin/ligence-task/internal/processing/filestore"
	"github.com/dabolichin/ligence-task/internal/processing/generator"
	"github.com/dabolichin/ligence-task/internal/processing/storage/postgres"
	"github.com/dabolichin/ligence-task/internal/worker"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
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

// @title Image Processing Service
// @version 1.0
// @description Generates reversible variants of uploaded images.
// @BasePath /api
func main() {
	cfg := config.MustLoad()

	log := setupLogger(cfg.Env)

	log.Info("starting processing service", slog.String("env", cfg.Env))
	log.Debug("debug messages are enabled")

	storage, err := postgres.InitDB(&cfg.Processing.Database)
	if err != nil {
		log.Error("failed to init storage", sl.Err(err))
		os.Exit(1)
	}

	files, err := filestore.New(log, &cfg.Processing.Storage)
	if err != nil {
		log.Error("failed to init file storage", sl.Err(err))
		os.Exit(1)
	}

	kafkaProducer, err := producer.NewProducer(&cfg.Processing.Kafka, log)
	if err != nil {
		log.Error("failed to create kafka producer", sl.Err(err))
		os.Exit(1)
	}

	kafkaConsumer, err := consumer.NewConsumer(&cfg.Processing.Kafka, log)
	if err != nil {
		log.Error("failed to create kafka consumer", sl.Err(err))
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pool := worker.NewPool(log, cfg.Processing.ConcurrentLimit, cfg.Processing.QueueSize)
	pool.Start(ctx)

	engine := algorithm.NewEngine(algorithm.NewXORTransform())

	announcer := announce.New(log, cfg.Processing.VerificationURL, cfg.Processing.AnnounceTimeout)

	variantGenerator := generator.New(
		log,
		generator.Config{
			VariantsCount:    cfg.Processing.VariantsCount,
			MinModifications: cfg.Processing.MinModifications,
		},
		files,
		storage,
		engine,
		announcer,
		pool,
	)

	go kafkaConsumer.ReadMessages(ctx, variantGenerator.ProcessMessage)

	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(mwlogger.New(log))
	router.Use(middleware.Recoverer)
	router.Use(middleware.URLFormat)

	router.Post("/api/modify", uploadImage.New(log, cfg.Processing.MaxFileSize, storage, files, kafkaProducer))
	router.Get("/api/processing/{id}/status", processingStatus.New(log, cfg.Processing.VariantsCount, storage))
	router.Get("/api/images/{id}", imageDetails.New(log, storage))
	router.Get("/api/images/{id}/variants", listVariants.New(log, storage))

	router.Get("/internal/modifications/{id}/instructions", getInstructions.New(log, storage))

	router.Handle("/static/original/*",
		http.StripPrefix("/static/original/", http.FileServer(http.Dir(cfg.Processing.Storage.OriginalImagesDir))))
	router.Handle("/static/modified/*",
		http.StripPrefix("/static/modified/", http.FileServer(http.Dir(cfg.Processing.Storage.ModifiedImagesDir))))

	router.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("http://"+cfg.Processing.HTTPServer.Address+"/swagger/doc.json"),
	))

	log.Info("starting server", slog.String("address", cfg.Processing.HTTPServer.Address))

	srv := &http.Server{
		Addr:         cfg.Processing.HTTPServer.Address,
		Handler:      router,
		ReadTimeout:  cfg.Processing.HTTPServer.Timeout,
		WriteTimeout: cfg.Processing.HTTPServer.Timeout,
		IdleTimeout:  cfg.Processing.HTTPServer.IdleTimeout,
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

	if err = storage.Close(); err != nil {
		log.Error("failed to close database", slog.String("error", err.Error()))
	}

	log.Info("postgres connection closed")

	if err = kafkaProducer.Close(); err != nil {
		log.Error("failed to close kafka producer", slog.String("error", err.Error()))
	}

	if err = kafkaConsumer.Close(); err != nil {
		log.Error("failed to close kafka consumer", slog.String("error", err.Error()))
	}

	log.Info("kafka connection closed")

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
