package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/gridironforge/roster-api/internal/config"
	"github.com/gridironforge/roster-api/internal/handlers"
	"github.com/gridironforge/roster-api/internal/logic"
	"github.com/gridironforge/roster-api/internal/sampling"
	"github.com/gridironforge/roster-api/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	var logger *zap.Logger
	if cfg.Env == "production" {
		logger, err = zap.NewProduction()
	} else {
		logger, err = zap.NewDevelopment()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()
	sugar := logger.Sugar()

	source := sampling.NewSource(cfg.Seed)
	assembler := logic.NewAssembler(logic.AssemblerConfig{Logger: logger})
	projector := logic.NewProjector()
	builder := worker.NewBuilder(worker.BuilderConfig{
		Workers:     cfg.BatchWorkers,
		ClassSize:   cfg.DraftClassSize,
		LeagueTeams: cfg.LeagueTeams,
		Assembler:   assembler,
		Projector:   projector,
		Logger:      logger,
	})

	h := handlers.New(handlers.Config{
		Builder:   builder,
		Assembler: assembler,
		Projector: projector,
		Source:    source,
		Logger:    logger,
	})

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Port),
		Handler: h.Routes(cfg.AllowedOrigins),
	}

	go func() {
		sugar.Infow("server starting",
			"port", cfg.Port,
			"env", cfg.Env,
			"seed", source.Seed(),
			"workers", cfg.BatchWorkers,
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			sugar.Fatalw("server failed", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	sugar.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		sugar.Errorw("shutdown", "error", err)
	}
	sugar.Info("server stopped")
}
