package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/DukeRupert/pageroute/internal"
	"github.com/DukeRupert/pageroute/internal/handler"
	"github.com/DukeRupert/pageroute/internal/i18n"
	"github.com/DukeRupert/pageroute/internal/metrics"
	"github.com/DukeRupert/pageroute/internal/middleware"
	"github.com/DukeRupert/pageroute/internal/pagination"
)

func run() error {
	// Load configuration
	cfg, err := internal.NewConfig()
	if err != nil {
		return fmt.Errorf("config initialization failed: %w", err)
	}

	// Configure logger
	logger := internal.NewLogger(os.Stdout, cfg.Env, cfg.LogLevel)

	// Resolve the page keyword once; routes are registered with it
	keyword := cfg.PageKeyword
	if keyword == "" {
		keyword = i18n.NewKeywords().Keyword(cfg.Locale)
	}

	gen, err := pagination.NewBaseURLGenerator(cfg.BaseURL)
	if err != nil {
		return fmt.Errorf("url generator initialization failed: %w", err)
	}

	style, err := pagination.NewStyle(cfg.Style)
	if err != nil {
		return fmt.Errorf("pagination style initialization failed: %w", err)
	}

	nav := pagination.NewNavigator(pagination.NavigatorConfig{
		URLs:   pagination.NewURLBuilder(keyword, gen),
		Style:  style,
		Logger: logger,
	})
	logger.Info("Pagination ready", "keyword", keyword, "locale", cfg.Locale, "on_each_side", cfg.OnEachSide)

	listingHandler := handler.NewListingHandler(handler.ListingConfig{
		Navigator:     nav,
		Logger:        logger,
		Articles:      handler.SeedArticles(cfg.DemoItems),
		PerPage:       cfg.PerPage,
		OnEachSide:    cfg.OnEachSide,
		FullFirstPage: cfg.FullFirstPage,
	})

	// ==========================================================================
	// Create router and register routes
	// ==========================================================================

	mux := http.NewServeMux()

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	if cfg.MetricsEnabled {
		guard := middleware.NewMetricsGuard(cfg.MetricsUsername, cfg.MetricsPassword, logger)
		mux.Handle("GET /metrics", guard.Handler(promhttp.Handler()))
		logger.Info("Metrics endpoint enabled", "path", "/metrics", "auth", guard.Enabled())
	}

	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/articles", http.StatusFound)
	})

	listingHandler.RegisterRoutes(mux)

	isSecure := cfg.Env != "development"
	stack := middleware.Stack(
		middleware.NewRequestLoggingMiddleware(logger).Handler,
		metrics.Middleware,
		middleware.NewSecurityHeadersMiddleware(isSecure).Handler,
	)

	// ==========================================================================
	// Start server
	// ==========================================================================

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           stack(mux),
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Channel to listen for interrupt signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	// Start server in goroutine
	go func() {
		logger.Info("Server started", "address", server.Addr, "env", cfg.Env)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("Server failed", "error", err)
		}
	}()

	// Wait for interrupt signal
	<-sigChan
	logger.Info("Shutdown signal received, initiating graceful shutdown...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server shutdown error", "error", err)
		return err
	}

	logger.Info("Server stopped")
	return nil
}

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}
