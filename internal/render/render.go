// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package render provides HTML template rendering for the public site and
// the admin dashboard. It supports full-page and HTMX partial rendering,
// automatically detecting the request type via the HX-Request header.
package render

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"net/http"
	"strings"

	"genzet/internal/markdown"
	"genzet/internal/middleware"
	"genzet/internal/session"
)

//go:embed templates/*.html
var templateFS embed.FS

// PageData holds all data passed to templates.
type PageData struct {
	Title     string         // Page title for <title> tag
	Section   string         // Active nav section (e.g., "articles", "categories")
	Session   *session.Data  // Current user session (nil if unauthenticated)
	CSRFToken string         // CSRF token for forms and HTMX headers
	Data      map[string]any // Page-specific data
	Flashes   []Flash        // One-time notification messages
}

// Flash represents a one-time notification message displayed to the user.
type Flash struct {
	Type    string // "success", "error", "warning", "info"
	Message string
}

// Renderer handles template parsing and execution.
type Renderer struct {
	templates map[string]*template.Template
	funcMap   template.FuncMap
}

// standaloneTemplates lists templates that render as full HTML pages
// without a shared layout (they have their own <html>, <head>, etc.).
var standaloneTemplates = map[string]bool{
	"login":    true,
	"register": true,
}

// publicTemplates lists pages that use the public site layout instead of
// the admin shell.
var publicTemplates = map[string]bool{
	"public_list":   true,
	"public_detail": true,
	"profile":       true,
}

// New creates a Renderer by parsing all templates from the embedded
// filesystem. Admin pages pair with base.html, public pages with
// site.html, and standalone pages parse alone. When devMode is true,
// templates load CDN-hosted assets (TailwindCSS, HTMX); when false, they
// reference local static files.
func New(devMode bool) (*Renderer, error) {
	r := &Renderer{
		templates: make(map[string]*template.Template),
		funcMap: template.FuncMap{
			// activeClass highlights the current sidebar nav entry.
			"activeClass": func(current, target string) string {
				if current == target {
					return "bg-blue-800 text-white"
				}
				return "text-blue-100 hover:bg-blue-600"
			},
			// excerpt produces a plain-text preview of an article body.
			"excerpt": func(body string) string {
				return markdown.Excerpt(body, 150)
			},
			// safeHTML marks pre-rendered article HTML as trusted.
			"safeHTML": func(s string) template.HTML {
				return template.HTML(s)
			},
			// initial returns the uppercase first letter of a username for
			// the avatar badge.
			"initial": func(s string) string {
				if s == "" {
					return "?"
				}
				return strings.ToUpper(s[:1])
			},
			"isDev": func() bool {
				return devMode
			},
		},
	}

	entries, err := templateFS.ReadDir("templates")
	if err != nil {
		return nil, fmt.Errorf("read embedded templates: %w", err)
	}

	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || name == "base.html" || name == "site.html" {
			continue
		}

		tmplName := strings.TrimSuffix(name, ".html")

		var tmpl *template.Template
		var parseErr error

		switch {
		case standaloneTemplates[tmplName]:
			tmpl, parseErr = template.New(name).Funcs(r.funcMap).ParseFS(
				templateFS, "templates/"+name,
			)
		case publicTemplates[tmplName]:
			tmpl, parseErr = template.New("site.html").Funcs(r.funcMap).ParseFS(
				templateFS, "templates/site.html", "templates/"+name,
			)
		default:
			tmpl, parseErr = template.New("base.html").Funcs(r.funcMap).ParseFS(
				templateFS, "templates/base.html", "templates/"+name,
			)
		}

		if parseErr != nil {
			return nil, fmt.Errorf("parse template %s: %w", name, parseErr)
		}

		r.templates[tmplName] = tmpl
	}

	return r, nil
}

// Page renders a full page or an HTMX partial, depending on the request
// headers. For HTMX requests, only the "content" block is sent. For full
// page loads, the entire layout is rendered.
func (rn *Renderer) Page(w http.ResponseWriter, r *http.Request, name string, data *PageData) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := rn.Render(w, r, name, data); err != nil {
		http.Error(w, "template error", http.StatusInternalServerError)
	}
}

// Render executes a page template to any writer. Handlers use this with a
// buffer when the rendered HTML also goes into the page cache.
func (rn *Renderer) Render(w io.Writer, r *http.Request, name string, data *PageData) error {
	tmpl, ok := rn.templates[name]
	if !ok {
		return fmt.Errorf("template %q not found", name)
	}

	// Inject CSRF token and session from context (set by middleware).
	data.CSRFToken = middleware.CSRFTokenFromCtx(r.Context())
	if data.Session == nil {
		data.Session = middleware.SessionFromCtx(r.Context())
	}

	// HTMX request: render only the content fragment.
	if isHTMX(r) {
		return tmpl.ExecuteTemplate(w, "content", data)
	}

	execName := "base.html"
	switch {
	case standaloneTemplates[name]:
		execName = name + ".html"
	case publicTemplates[name]:
		execName = "site.html"
	}

	return tmpl.ExecuteTemplate(w, execName, data)
}

// isHTMX returns true if the request was made by HTMX (has HX-Request header).
func isHTMX(r *http.Request) bool {
	return r.Header.Get("HX-Request") == "true"
}
