// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package router sets up all HTTP routes and middleware chains for the
// portal. It organizes routes into public, auth, and admin groups with
// appropriate middleware stacks.
package router

import (
	"io/fs"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"genzet/internal/handlers"
	"genzet/internal/middleware"
	"genzet/internal/session"
	"genzet/web"
)

// Config carries the cross-cutting pieces the router wires into every
// request chain.
type Config struct {
	Sessions *session.Store

	// Secure marks the CSRF cookie HTTPS-only. True outside development.
	Secure bool

	// LoginLimit caps login/register submits per IP per LoginWindow.
	LoginLimit  int
	LoginWindow time.Duration
}

// New creates and returns the configured chi router with all middleware
// and route groups wired up.
func New(cfg Config, public *handlers.Public, auth *handlers.Auth, admin *handlers.Admin) chi.Router {
	r := chi.NewRouter()

	// Global middleware, applied to every request.
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.SecureHeaders)
	r.Use(middleware.LoadSession(cfg.Sessions))

	csrf := middleware.NewCSRF(cfg.Secure)

	// Health check: no auth, no CSRF.
	r.Get("/health", handlers.Health)

	// Static assets.
	if staticFS, err := fs.Sub(web.Static, "static"); err == nil {
		r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(staticFS))))
	}

	// Public site.
	r.Group(func(r chi.Router) {
		r.Use(csrf)
		r.Get("/", public.List)
		r.Get("/articles/{slug}", public.Detail)
	})

	// Auth flow. Credential submits are rate-limited per IP to slow
	// guessing against the upstream auth API.
	limiter := middleware.NewRateLimiter(cfg.LoginLimit, cfg.LoginWindow)
	r.Group(func(r chi.Router) {
		// The limiter sits in front of CSRF so a flood of bad submits is
		// cut off before any validation work.
		r.Use(limiter.Middleware)
		r.Use(csrf)
		r.Post("/login", auth.LoginSubmit)
		r.Post("/register", auth.RegisterSubmit)
	})

	r.Group(func(r chi.Router) {
		r.Use(csrf)

		r.Get("/login", auth.LoginPage)
		r.Get("/register", auth.RegisterPage)
		r.Post("/logout", auth.Logout)

		r.With(middleware.RequireAuth).Get("/profile", auth.ProfilePage)
	})

	// Admin dashboard: session plus the admin role.
	r.Route("/admin", func(r chi.Router) {
		r.Use(csrf)
		r.Use(middleware.RequireAuth)
		r.Use(middleware.RequireAdmin)

		r.Get("/", admin.List)
		r.Get("/new", admin.NewForm)
		r.Post("/", admin.Create)

		r.Route("/categories", func(r chi.Router) {
			r.Get("/", admin.Categories)
			r.Post("/", admin.CreateCategory)
			r.Post("/{id}", admin.UpdateCategory)
			r.Post("/{id}/delete", admin.DeleteCategory)
		})

		r.Get("/{id}/edit", admin.EditForm)
		r.Post("/{id}", admin.Update)
		r.Post("/{id}/delete", admin.Delete)
	})

	return r
}
