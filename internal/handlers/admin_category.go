// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"genzet/internal/api"
	"genzet/internal/listview"
	"genzet/internal/models"
	"genzet/internal/render"
)

// Categories renders the category table with name search and pagination.
// Unlike articles, categories are fetched per request: the endpoint needs
// the session token and the collection is tiny.
func (h *Admin) Categories(w http.ResponseWriter, r *http.Request) {
	h.categoriesPage(w, r, "")
}

// categoriesPage renders the category table, optionally with a form error
// from a rejected inline submit.
func (h *Admin) categoriesPage(w http.ResponseWriter, r *http.Request, formError string) {
	query := searchParam(r, "q")
	page := pageParam(r)

	categories, err := h.client.ListCategories(r.Context(), h.token(r))

	var flashes []render.Flash
	if err != nil {
		if h.unauthorized(w, r, err) {
			return
		}
		slog.Error("category list failed", "error", err)
		flashes = append(flashes, render.Flash{Type: "error", Message: api.Message(err)})
	}

	filtered := listview.Apply(categories, func(c models.Category) bool {
		return listview.TextMatch(query, c.Name)
	})

	paged, pagination := listview.Paginate(filtered, page, adminPageSize)

	h.renderer.Page(w, r, "categories", &render.PageData{
		Title:   "Category",
		Section: "categories",
		Flashes: flashes,
		Data: map[string]any{
			"Categories": paged,
			"Query":      query,
			"FormError":  formError,
			"Pagination": pagination,
			"Pages":      listview.Window(pagination.Page, pagination.TotalPages, listview.DefaultWindow),
		},
	})
}

// CreateCategory adds a category. An empty name is rejected locally and
// never reaches the network.
func (h *Admin) CreateCategory(w http.ResponseWriter, r *http.Request) {
	name := strings.TrimSpace(r.FormValue("name"))
	if msg := categoryNameError(name); msg != "" {
		h.categoriesPage(w, r, msg)
		return
	}

	if _, err := h.client.CreateCategory(r.Context(), h.token(r), name); err != nil {
		if h.unauthorized(w, r, err) {
			return
		}
		h.categoriesPage(w, r, api.Message(err))
		return
	}

	h.mutated(name)
	http.Redirect(w, r, "/admin/categories", http.StatusSeeOther)
}

// UpdateCategory renames a category. An empty name is rejected locally.
func (h *Admin) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	name := strings.TrimSpace(r.FormValue("name"))
	if msg := categoryNameError(name); msg != "" {
		h.categoriesPage(w, r, msg)
		return
	}

	if _, err := h.client.UpdateCategory(r.Context(), h.token(r), id, name); err != nil {
		if h.unauthorized(w, r, err) {
			return
		}
		h.categoriesPage(w, r, api.Message(err))
		return
	}

	// Renames change the category label shown on article cards.
	h.articles.Invalidate()
	h.mutated(id)
	http.Redirect(w, r, "/admin/categories", http.StatusSeeOther)
}

// DeleteCategory removes a category.
func (h *Admin) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.client.DeleteCategory(r.Context(), h.token(r), id); err != nil {
		if h.unauthorized(w, r, err) {
			return
		}
		h.categoriesPage(w, r, api.Message(err))
		return
	}

	h.articles.Invalidate()
	h.mutated(id)
	http.Redirect(w, r, "/admin/categories", http.StatusSeeOther)
}
