// Command server runs the TrustLynk claim adjudication service.
//
// main wires dependencies and keeps the process lifecycle small: one HTTP
// server, one audit worker, shutdown on SIGINT/SIGTERM. Business logic
// lives in the internal feature packages.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"trustlynk/internal/adjudication"
	"trustlynk/internal/adjudication/adapters"
	claimshandler "trustlynk/internal/adjudication/handler"
	adjmetrics "trustlynk/internal/adjudication/metrics"
	"trustlynk/internal/adjudication/ports"
	"trustlynk/internal/audit"
	httpapi "trustlynk/internal/http"
	"trustlynk/internal/platform/config"
	"trustlynk/internal/platform/httpserver"
	"trustlynk/internal/platform/logger"
	"trustlynk/internal/platform/metrics"
	"trustlynk/internal/settlement"
	legacyhandler "trustlynk/internal/settlement/handler"
)

func main() {
	cfg := config.FromEnv()
	log := logger.New(cfg.LogLevel)

	// Analyzer is optional: without a configured URL every submission is
	// scored by the deterministic fallback.
	var analyzer ports.AnalyzerPort
	if cfg.Analyzer.BaseURL != "" {
		a, err := adapters.NewHTTPAnalyzer(cfg.Analyzer)
		if err != nil {
			log.Error("failed to build analyzer client", "error", err)
			os.Exit(1)
		}
		analyzer = a
	} else {
		log.Warn("no analyzer URL configured, all claims use fallback scoring")
	}

	auditPublisher := audit.NewPublisher(cfg.AuditBuffer)
	auditStore := audit.NewInMemoryStore()
	auditWorker := audit.NewWorker(auditStore, auditPublisher.Inbox(), log)

	converter := settlement.NewConverter(cfg.Settlement)

	service, err := adjudication.NewService(
		analyzer,
		cfg.Analyzer.Timeout,
		adjudication.DefaultBands(),
		converter,
		log,
		adjmetrics.New(),
		auditPublisher,
	)
	if err != nil {
		log.Error("failed to build adjudication service", "error", err)
		os.Exit(1)
	}

	router := httpapi.NewRouter(
		log,
		metrics.New(),
		claimshandler.New(service, log),
		legacyhandler.New(converter, log, auditPublisher),
	)

	srv := httpserver.New(cfg.Addr, router)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info("starting trustlynk claims engine", "addr", cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		err := auditWorker.Run(gctx)
		if errors.Is(err, context.Canceled) {
			return nil
		}
		return err
	})

	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Error("server exited with error", "error", err)
		os.Exit(1)
	}
	log.Info("shutdown complete")
}
