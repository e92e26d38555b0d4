// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package main is the entry point for the genzet portal server. It loads
// configuration, connects to Valkey, wires the remote API client and the
// article snapshot, sets up routing, and starts the HTTP server with
// graceful shutdown support.
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"genzet/internal/api"
	"genzet/internal/cache"
	"genzet/internal/config"
	"genzet/internal/handlers"
	"genzet/internal/listview"
	"genzet/internal/render"
	"genzet/internal/router"
	"genzet/internal/session"
	"genzet/internal/snapshot"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
	slog.SetDefault(logger)

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	slog.Info("configuration loaded",
		"env", cfg.Env,
		"addr", cfg.Addr(),
		"api", cfg.APIBaseURL,
	)

	// Connect to Valkey (sessions + rendered-page cache).
	valkeyClient, err := cache.ConnectValkey(cfg.ValkeyHost, cfg.ValkeyPort, cfg.ValkeyPassword)
	if err != nil {
		slog.Error("failed to connect to valkey", "error", err)
		os.Exit(1)
	}
	defer valkeyClient.Close()

	// In non-development environments, mark cookies Secure (HTTPS-only).
	secureCookies := !cfg.IsDev()
	sessionStore := session.NewStore(valkeyClient, secureCookies)

	renderer, err := render.New(cfg.IsDev())
	if err != nil {
		slog.Error("failed to initialize template renderer", "error", err)
		os.Exit(1)
	}

	// The remote CMS API owns all data; the portal holds only a snapshot.
	client := api.New(cfg.APIBaseURL, cfg.APITimeout)
	articles := snapshot.New(client, cfg.SnapshotTTL)

	pageCache := cache.NewPageCache(valkeyClient, cache.DefaultPageTTL)

	// Admin mutations invalidate the rendered-page cache through a
	// debouncer so a burst of edits clears it once.
	invalidate := listview.NewDebouncer(listview.DebounceDelay, func(string) {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		pageCache.InvalidateAll(ctx)
	})
	defer invalidate.Stop()

	publicHandlers := handlers.NewPublic(renderer, articles, pageCache)
	authHandlers := handlers.NewAuth(renderer, sessionStore, client)
	adminHandlers := handlers.NewAdmin(renderer, sessionStore, client, articles, pageCache, invalidate)

	r := router.New(router.Config{
		Sessions:    sessionStore,
		Secure:      secureCookies,
		LoginLimit:  10,
		LoginWindow: time.Minute,
	}, publicHandlers, authHandlers, adminHandlers)

	// WriteTimeout accommodates image uploads forwarded to the backend.
	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

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

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped gracefully")
}
