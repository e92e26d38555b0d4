// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"log/slog"
	"net/http"
	"strings"

	"genzet/internal/api"
	"genzet/internal/middleware"
	"genzet/internal/models"
	"genzet/internal/render"
	"genzet/internal/session"
)

// Auth groups the login, registration, logout, and profile handlers. The
// portal holds no credentials of its own: every submit is forwarded to the
// remote auth API and only the returned bearer token is kept, inside the
// Valkey session.
type Auth struct {
	renderer *render.Renderer
	sessions *session.Store
	client   *api.Client
}

// NewAuth creates the auth handler group.
func NewAuth(renderer *render.Renderer, sessions *session.Store, client *api.Client) *Auth {
	return &Auth{renderer: renderer, sessions: sessions, client: client}
}

// homeFor picks the post-login landing page by role.
func homeFor(role string) string {
	if strings.EqualFold(role, "admin") {
		return "/admin"
	}
	return "/"
}

// LoginPage renders the login form. Authenticated users are sent to their
// landing page instead.
func (a *Auth) LoginPage(w http.ResponseWriter, r *http.Request) {
	if sess := middleware.SessionFromCtx(r.Context()); sess != nil {
		http.Redirect(w, r, homeFor(sess.Role), http.StatusSeeOther)
		return
	}

	a.renderer.Page(w, r, "login", &render.PageData{
		Title: "Sign In",
		Data:  map[string]any{"Username": ""},
	})
}

// LoginSubmit validates the form locally, then exchanges the credentials
// for a bearer token. Validation failures re-render the form with field
// messages and never reach the network.
func (a *Auth) LoginSubmit(w http.ResponseWriter, r *http.Request) {
	in := credsInput{
		Username: strings.TrimSpace(r.FormValue("username")),
		Password: r.FormValue("password"),
	}

	if err := in.Validate(); err != nil {
		errs := fieldErrors(err)
		a.renderer.Page(w, r, "login", &render.PageData{
			Title: "Sign In",
			Data: map[string]any{
				"Username":      in.Username,
				"UsernameError": errs["Username"],
				"PasswordError": errs["Password"],
			},
		})
		return
	}

	res, err := a.client.Login(r.Context(), in.Username, in.Password)
	if err != nil {
		// At login a 401 means the credentials were wrong, not that a
		// session expired.
		msg := api.Message(err)
		if api.IsUnauthorized(err) {
			msg = "Invalid username or password."
		}
		a.renderer.Page(w, r, "login", &render.PageData{
			Title:   "Sign In",
			Flashes: []render.Flash{{Type: "error", Message: msg}},
			Data:    map[string]any{"Username": in.Username},
		})
		return
	}

	// The login response may omit the account identity; fall back to what
	// the user typed so the header still shows a name.
	username := res.Username
	if username == "" {
		username = in.Username
	}

	if _, err := a.sessions.Create(r.Context(), w, &session.Data{
		Token:    res.Token,
		Username: username,
		Role:     res.Role,
	}); err != nil {
		slog.Error("session create failed", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, homeFor(res.Role), http.StatusSeeOther)
}

// RegisterPage renders the registration form.
func (a *Auth) RegisterPage(w http.ResponseWriter, r *http.Request) {
	if sess := middleware.SessionFromCtx(r.Context()); sess != nil {
		http.Redirect(w, r, homeFor(sess.Role), http.StatusSeeOther)
		return
	}

	a.renderer.Page(w, r, "register", &render.PageData{
		Title: "Register",
		Data:  map[string]any{"Username": ""},
	})
}

// RegisterSubmit creates a reader account on the backend and sends the
// user to the login form.
func (a *Auth) RegisterSubmit(w http.ResponseWriter, r *http.Request) {
	in := credsInput{
		Username: strings.TrimSpace(r.FormValue("username")),
		Password: r.FormValue("password"),
	}

	if err := in.Validate(); err != nil {
		errs := fieldErrors(err)
		a.renderer.Page(w, r, "register", &render.PageData{
			Title: "Register",
			Data: map[string]any{
				"Username":      in.Username,
				"UsernameError": errs["Username"],
				"PasswordError": errs["Password"],
			},
		})
		return
	}

	if err := a.client.Register(r.Context(), in.Username, in.Password); err != nil {
		a.renderer.Page(w, r, "register", &render.PageData{
			Title:   "Register",
			Flashes: []render.Flash{{Type: "error", Message: api.Message(err)}},
			Data:    map[string]any{"Username": in.Username},
		})
		return
	}

	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

// Logout destroys the session and returns to the public site.
func (a *Auth) Logout(w http.ResponseWriter, r *http.Request) {
	a.sessions.Destroy(r.Context(), w, r)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// ProfilePage fetches the account from the backend and renders it. A 401
// means the stored token is dead: the session is destroyed and the user
// returns to the login form. Other failures fall back to the identity
// cached in the session so the page still renders, with an error flash.
func (a *Auth) ProfilePage(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFromCtx(r.Context())
	if sess == nil {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	profile, err := a.client.Profile(r.Context(), sess.Token)
	if err != nil {
		if api.IsUnauthorized(err) {
			a.sessions.Destroy(r.Context(), w, r)
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}

		slog.Error("profile fetch failed", "error", err)
		a.renderer.Page(w, r, "profile", &render.PageData{
			Title:   "Profile",
			Flashes: []render.Flash{{Type: "error", Message: api.Message(err)}},
			Data: map[string]any{
				"Profile": profileFromSession(sess),
			},
		})
		return
	}

	a.renderer.Page(w, r, "profile", &render.PageData{
		Title: "Profile",
		Data:  map[string]any{"Profile": profile},
	})
}

// profileFromSession builds a display profile from the cached session
// identity, used when the live fetch fails on something other than a 401.
func profileFromSession(sess *session.Data) models.Profile {
	return models.Profile{Username: sess.Username, Role: sess.Role}
}
