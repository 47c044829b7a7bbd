// Package main is the entry point for the InkPress editor API server.
// It loads configuration, connects to services, sets up routing, and starts
// the HTTP server with graceful shutdown support.
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"inkpress/internal/blogapi"
	"inkpress/internal/cache"
	"inkpress/internal/config"
	"inkpress/internal/editor"
	"inkpress/internal/handlers"
	"inkpress/internal/preview"
	"inkpress/internal/router"
)

func main() {
	// Structured logger — outputs JSON in production, text in development.
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
	slog.SetDefault(logger)

	// Load configuration from environment variables.
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	slog.Info("configuration loaded",
		"env", cfg.Env,
		"addr", cfg.Addr(),
		"blog_api", cfg.APIBaseURL,
	)

	// Connect to Valkey (Redis-compatible post cache). Optional — the
	// service works without it, every read just goes upstream.
	var postCache *cache.PostCache
	if cfg.CacheEnabled() {
		valkeyClient, err := cache.ConnectValkey(cfg.ValkeyHost, cfg.ValkeyPort, cfg.ValkeyPassword)
		if err != nil {
			slog.Error("failed to connect to valkey", "error", err)
			os.Exit(1)
		}
		defer valkeyClient.Close()
		postCache = cache.NewPostCache(valkeyClient, cache.DefaultPostTTL)
		slog.Info("valkey connected", "host", cfg.ValkeyHost)
	} else {
		slog.Warn("valkey not configured — post caching disabled")
	}

	// Typed client for the remote blog API that owns all persistence.
	apiClient := blogapi.New(blogapi.Config{
		BaseURL: cfg.APIBaseURL,
		Token:   cfg.APIToken,
		Timeout: cfg.APITimeout,
	})

	// Editor workflows: draft validation, markdown/block conversion, submit.
	svc := editor.NewService(apiClient, postCache)

	// Markdown renderer for the editor's preview pane.
	renderer := preview.New(cfg.PreviewStyle)

	// Create the handler group and wire the router.
	api := handlers.NewAPI(svc, renderer, cfg.UploadFolder)
	r := router.New(api)

	// Create the HTTP server with sensible timeouts. ReadTimeout must
	// accommodate media uploads coming in over slow connections.
	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      r,
		ReadTimeout:  60 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// Start the server in a goroutine so we can listen for shutdown signals.
	go func() {
		slog.Info("server starting", "addr", cfg.Addr())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown: wait for SIGINT or SIGTERM, then drain connections.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	slog.Info("shutdown signal received", "signal", sig)

	// Give active requests up to 30 seconds to complete.
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped gracefully")
}
