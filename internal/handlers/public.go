// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"bytes"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"genzet/internal/api"
	"genzet/internal/cache"
	"genzet/internal/listview"
	"genzet/internal/markdown"
	"genzet/internal/middleware"
	"genzet/internal/models"
	"genzet/internal/render"
	"genzet/internal/snapshot"
)

// publicPageSize is how many article cards a public list page shows.
const publicPageSize = 9

// relatedLimit caps the "Other articles" strip under a detail page.
const relatedLimit = 3

// Public groups the handlers for the unauthenticated site.
type Public struct {
	renderer *render.Renderer
	articles *snapshot.Store
	pages    *cache.PageCache
}

// NewPublic creates the public handler group. pages may be nil to disable
// the rendered-page cache.
func NewPublic(renderer *render.Renderer, articles *snapshot.Store, pages *cache.PageCache) *Public {
	return &Public{renderer: renderer, articles: articles, pages: pages}
}

// List renders the article grid with search, category filter, and
// pagination. Filtering happens portal-side over the snapshot; the
// unfiltered front page for anonymous visitors is served from the page
// cache when possible.
func (p *Public) List(w http.ResponseWriter, r *http.Request) {
	query := searchParam(r, "q")
	category := searchParam(r, "category")
	page := pageParam(r)

	cacheable := query == "" && category == "" && page == 1 &&
		middleware.SessionFromCtx(r.Context()) == nil && r.Header.Get("HX-Request") == ""

	if cacheable {
		if html, ok := p.pages.Get(r.Context(), cache.ListKey()); ok {
			w.Header().Set("Content-Type", "text/html; charset=utf-8")
			w.Write(html)
			return
		}
	}

	articles, err := p.articles.Articles(r.Context())

	var flashes []render.Flash
	if err != nil {
		slog.Error("article snapshot refresh failed", "error", err)
		flashes = append(flashes, render.Flash{Type: "error", Message: api.Message(err)})
	}

	filtered := listview.Apply(articles,
		func(a models.Article) bool { return category == "" || a.InCategory(category) },
		func(a models.Article) bool { return a.Matches(query) },
	)

	paged, pagination := listview.Paginate(filtered, page, publicPageSize)

	data := &render.PageData{
		Title:   "Articles",
		Flashes: flashes,
		Data: map[string]any{
			"Articles":   paged,
			"Categories": models.CategoryNames(articles),
			"Query":      query,
			"Category":   category,
			"Pagination": pagination,
			"Pages":      listview.Window(pagination.Page, pagination.TotalPages, listview.DefaultWindow),
		},
	}

	if cacheable && err == nil {
		var buf bytes.Buffer
		if rerr := p.renderer.Render(&buf, r, "public_list", data); rerr != nil {
			http.Error(w, "template error", http.StatusInternalServerError)
			return
		}
		p.pages.Set(r.Context(), cache.ListKey(), buf.Bytes())
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write(buf.Bytes())
		return
	}

	p.renderer.Page(w, r, "public_list", data)
}

// Detail renders a single article resolved from its slug, with a strip of
// other articles from the same category.
func (p *Public) Detail(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	cacheable := middleware.SessionFromCtx(r.Context()) == nil && r.Header.Get("HX-Request") == ""
	if cacheable {
		if html, ok := p.pages.Get(r.Context(), cache.DetailKey(slug)); ok {
			w.Header().Set("Content-Type", "text/html; charset=utf-8")
			w.Write(html)
			return
		}
	}

	if _, err := p.articles.Articles(r.Context()); err != nil {
		slog.Warn("article snapshot refresh failed", "error", err)
	}

	article, ok := p.articles.BySlug(slug)
	if !ok {
		http.NotFound(w, r)
		return
	}

	contentHTML, err := markdown.ToHTML(article.Content)
	if err != nil {
		slog.Error("article render failed", "id", article.ID, "error", err)
		contentHTML = article.Content
	}

	data := &render.PageData{
		Title: article.Title,
		Data: map[string]any{
			"Article":     article,
			"ContentHTML": contentHTML,
			"Related":     p.related(r, article),
		},
	}

	if cacheable {
		var buf bytes.Buffer
		if rerr := p.renderer.Render(&buf, r, "public_detail", data); rerr != nil {
			http.Error(w, "template error", http.StatusInternalServerError)
			return
		}
		p.pages.Set(r.Context(), cache.DetailKey(slug), buf.Bytes())
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write(buf.Bytes())
		return
	}

	p.renderer.Page(w, r, "public_detail", data)
}

// related picks up to relatedLimit other articles from the same category.
func (p *Public) related(r *http.Request, article models.Article) []models.Article {
	articles, _ := p.articles.Articles(r.Context())
	siblings := listview.Apply(articles,
		func(a models.Article) bool { return a.ID != article.ID },
		func(a models.Article) bool { return a.CategoryName == article.CategoryName },
	)
	if len(siblings) > relatedLimit {
		siblings = siblings[:relatedLimit]
	}
	return siblings
}

// Health reports process liveness for load balancers.
func Health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}
