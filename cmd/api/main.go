// Sleep Coach API
//
// REST API for logging daily sleep habits and generating AI coaching
// insights from them.
//
//	@title			Sleep Coach API
//	@version		1.0
//	@description	Log daily sleep entries, compute summary statistics, and generate AI coaching insights.
//
//	@tag.name			sleep-logs
//	@tag.description	Daily sleep log endpoints
//
//	@tag.name			insights
//	@tag.description	AI insight endpoints
package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/dreamwell/sleep-coach/internal/api"
	"github.com/dreamwell/sleep-coach/internal/api/handler"
	"github.com/dreamwell/sleep-coach/internal/config"
	"github.com/dreamwell/sleep-coach/internal/llm"
	"github.com/dreamwell/sleep-coach/internal/repository"
	"github.com/dreamwell/sleep-coach/internal/seed"
	"github.com/dreamwell/sleep-coach/internal/service"
	"github.com/dreamwell/sleep-coach/internal/telemetry"
)

func main() {
	// Load configuration
	cfg := config.Load()

	ctx := context.Background()

	// Initialize tracing (noop unless an OTLP endpoint is configured)
	shutdownTracer, err := telemetry.InitTracer(ctx, cfg, "sleep-coach-api")
	if err != nil {
		log.Fatalf("Failed to initialize tracing: %v", err)
	}

	// Open file-backed stores
	if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
		log.Fatalf("Failed to create data dir: %v", err)
	}
	logStore, err := repository.NewSleepLogFileStore(filepath.Join(cfg.DataDir, "sleep_logs.json"))
	if err != nil {
		log.Fatalf("Failed to open sleep log store: %v", err)
	}
	insightStore, err := repository.NewInsightFileStore(filepath.Join(cfg.DataDir, "ai_insights.json"))
	if err != nil {
		log.Fatalf("Failed to open insight store: %v", err)
	}

	if cfg.Seed {
		log.Println("Seeding stores with sample data (SEED=true)...")
		if err := seed.Run(ctx, logStore); err != nil {
			log.Fatalf("Failed to seed: %v", err)
		}
	}

	// Initialize chat model client (may be nil if no token configured)
	chatModel := llm.NewRouterClient(cfg.HFToken, cfg.HFModel, cfg.HFRouterURL)
	if chatModel == nil {
		log.Println("Warning: HF_API_TOKEN/HF_TOKEN not configured, analysis endpoint will fail with a provider error")
	}

	// Initialize services
	metricsService := service.NewMetricsService()
	sleepLogService := service.NewSleepLogService(logStore)
	insightsService := service.NewInsightsService(metricsService, chatModel, logStore, insightStore)

	// Initialize handlers
	sleepLogHandler := handler.NewSleepLogHandler(sleepLogService)
	insightsHandler := handler.NewInsightsHandler(insightsService)

	// Setup router
	router := api.NewRouter(sleepLogHandler, insightsHandler, cfg.FrontendDir)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router.Setup(),
	}

	go func() {
		log.Printf("Starting server on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	// Flush stores and tracer on shutdown
	stopCtx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()
	<-stopCtx.Done()
	log.Println("Shutting down...")

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelShutdown()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server shutdown: %v", err)
	}
	if err := logStore.Close(); err != nil {
		log.Printf("Sleep log store flush: %v", err)
	}
	if err := insightStore.Close(); err != nil {
		log.Printf("Insight store flush: %v", err)
	}
	if err := shutdownTracer(shutdownCtx); err != nil {
		log.Printf("Tracer shutdown: %v", err)
	}
}
