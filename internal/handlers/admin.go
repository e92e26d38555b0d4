// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"genzet/internal/api"
	"genzet/internal/cache"
	"genzet/internal/listview"
	"genzet/internal/markdown"
	"genzet/internal/middleware"
	"genzet/internal/models"
	"genzet/internal/render"
	"genzet/internal/session"
	"genzet/internal/snapshot"
)

// adminPageSize is how many rows an admin table page shows.
const adminPageSize = 10

// Admin groups the dashboard handlers for articles and categories. Every
// mutation goes straight to the remote API; the snapshot is patched
// optimistically afterwards and the rendered-page cache is invalidated
// through a debouncer so a burst of edits clears it once.
type Admin struct {
	renderer   *render.Renderer
	sessions   *session.Store
	client     *api.Client
	articles   *snapshot.Store
	pages      *cache.PageCache
	invalidate *listview.Debouncer
}

// NewAdmin creates the admin handler group. invalidate may be nil to
// disable page-cache invalidation.
func NewAdmin(renderer *render.Renderer, sessions *session.Store, client *api.Client,
	articles *snapshot.Store, pages *cache.PageCache, invalidate *listview.Debouncer) *Admin {
	return &Admin{
		renderer:   renderer,
		sessions:   sessions,
		client:     client,
		articles:   articles,
		pages:      pages,
		invalidate: invalidate,
	}
}

// token returns the bearer token of the current session. The admin routes
// sit behind RequireAuth, so a session always exists here.
func (h *Admin) token(r *http.Request) string {
	if sess := middleware.SessionFromCtx(r.Context()); sess != nil {
		return sess.Token
	}
	return ""
}

// mutated records that public content changed: the snapshot patch already
// happened at the call site; here the rendered-page cache gets scheduled
// for invalidation.
func (h *Admin) mutated(id string) {
	if h.invalidate != nil {
		h.invalidate.Set(id)
	}
}

// unauthorized handles a 401 from any admin API call: the dead session is
// destroyed and the user returns to the login form. Reports whether the
// error was handled.
func (h *Admin) unauthorized(w http.ResponseWriter, r *http.Request, err error) bool {
	if !api.IsUnauthorized(err) {
		return false
	}
	h.sessions.Destroy(r.Context(), w, r)
	http.Redirect(w, r, "/login", http.StatusSeeOther)
	return true
}

// List renders the article table with title search and pagination.
func (h *Admin) List(w http.ResponseWriter, r *http.Request) {
	query := searchParam(r, "q")
	page := pageParam(r)

	articles, err := h.articles.Articles(r.Context())

	var flashes []render.Flash
	if err != nil {
		if h.unauthorized(w, r, err) {
			return
		}
		slog.Error("article snapshot refresh failed", "error", err)
		flashes = append(flashes, render.Flash{Type: "error", Message: api.Message(err)})
	}

	// The admin table searches titles only.
	filtered := listview.Apply(articles, func(a models.Article) bool {
		return listview.TextMatch(query, a.Title)
	})

	paged, pagination := listview.Paginate(filtered, page, adminPageSize)

	h.renderer.Page(w, r, "articles_list", &render.PageData{
		Title:   "Articles",
		Section: "articles",
		Flashes: flashes,
		Data: map[string]any{
			"Articles":   paged,
			"Query":      query,
			"Pagination": pagination,
			"Pages":      listview.Window(pagination.Page, pagination.TotalPages, listview.DefaultWindow),
		},
	})
}

// NewForm renders the empty article form.
func (h *Admin) NewForm(w http.ResponseWriter, r *http.Request) {
	categories, err := h.client.ListCategories(r.Context(), h.token(r))
	if err != nil {
		if h.unauthorized(w, r, err) {
			return
		}
		slog.Error("category list failed", "error", err)
	}

	h.renderArticleForm(w, r, articleFormState{
		Action:     "/admin",
		Categories: categories,
		Flash:      flashForListError(err),
	})
}

// Create validates the form, uploads the thumbnail if one was attached,
// converts the Markdown body to HTML, and submits the article.
func (h *Admin) Create(w http.ResponseWriter, r *http.Request) {
	state, in, ok := h.parseArticleForm(w, r, articleFormState{Action: "/admin"})
	if !ok {
		return
	}

	created, err := h.client.CreateArticle(r.Context(), h.token(r), in)
	if err != nil {
		if h.unauthorized(w, r, err) {
			return
		}
		state.Flash = &render.Flash{Type: "error", Message: api.Message(err)}
		state.Categories = h.formCategories(r)
		h.renderArticleForm(w, r, state)
		return
	}

	h.articles.Upsert(created)
	h.mutated(created.ID)
	http.Redirect(w, r, "/admin", http.StatusSeeOther)
}

// EditForm renders the form pre-filled with an existing article. The
// snapshot is tried first; a miss falls through to a direct fetch so
// deep links work right after a restart.
func (h *Admin) EditForm(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	article, found := h.articles.ByID(id)
	if !found {
		var err error
		article, err = h.client.GetArticle(r.Context(), id)
		if err != nil {
			if h.unauthorized(w, r, err) {
				return
			}
			http.NotFound(w, r)
			return
		}
	}

	categories, err := h.client.ListCategories(r.Context(), h.token(r))
	if err != nil {
		if h.unauthorized(w, r, err) {
			return
		}
		slog.Error("category list failed", "error", err)
	}

	h.renderArticleForm(w, r, articleFormState{
		IsEdit:     true,
		Action:     "/admin/" + id,
		Title:      article.Title,
		Content:    article.Content,
		CategoryID: article.CategoryID,
		ImageURL:   article.ImageURL,
		Categories: categories,
		Flash:      flashForListError(err),
	})
}

// Update validates the form and replaces an existing article. A missing
// thumbnail keeps the current image.
func (h *Admin) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	existing, _ := h.articles.ByID(id)
	state, in, ok := h.parseArticleForm(w, r, articleFormState{
		IsEdit:   true,
		Action:   "/admin/" + id,
		ImageURL: existing.ImageURL,
	})
	if !ok {
		return
	}
	if in.ImageURL == "" {
		in.ImageURL = existing.ImageURL
	}

	updated, err := h.client.UpdateArticle(r.Context(), h.token(r), id, in)
	if err != nil {
		if h.unauthorized(w, r, err) {
			return
		}
		state.Flash = &render.Flash{Type: "error", Message: api.Message(err)}
		state.Categories = h.formCategories(r)
		h.renderArticleForm(w, r, state)
		return
	}

	h.articles.Upsert(updated)
	h.mutated(updated.ID)
	http.Redirect(w, r, "/admin", http.StatusSeeOther)
}

// Delete removes an article and patches it out of the snapshot.
func (h *Admin) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.client.DeleteArticle(r.Context(), h.token(r), id); err != nil {
		if h.unauthorized(w, r, err) {
			return
		}
		slog.Error("article delete failed", "id", id, "error", err)
		http.Redirect(w, r, "/admin", http.StatusSeeOther)
		return
	}

	h.articles.Remove(id)
	h.mutated(id)
	http.Redirect(w, r, "/admin", http.StatusSeeOther)
}

// articleFormState carries everything the article form template needs,
// including re-entered values and per-field errors after a failed submit.
type articleFormState struct {
	IsEdit     bool
	Action     string
	Title      string
	Content    string
	CategoryID string
	ImageURL   string
	Categories []models.Category
	Errors     map[string]string
	Flash      *render.Flash
}

// parseArticleForm reads the multipart form, validates it, and uploads the
// thumbnail when one was attached. On a validation or upload failure it
// re-renders the form itself and reports ok=false.
func (h *Admin) parseArticleForm(w http.ResponseWriter, r *http.Request, state articleFormState) (articleFormState, api.ArticleInput, bool) {
	if err := r.ParseMultipartForm(maxUploadSize + 1<<20); err != nil {
		if err != http.ErrNotMultipart {
			state.Flash = &render.Flash{Type: "error", Message: "Image must be smaller than 5 MB"}
			h.renderArticleForm(w, r, state)
			return state, api.ArticleInput{}, false
		}
		r.ParseForm()
	}

	in := articleInput{
		Title:      strings.TrimSpace(r.FormValue("title")),
		Content:    strings.TrimSpace(r.FormValue("content")),
		CategoryID: r.FormValue("category_id"),
	}
	state.Title = in.Title
	state.Content = in.Content
	state.CategoryID = in.CategoryID

	errs := map[string]string{}
	if err := in.Validate(); err != nil {
		raw := fieldErrors(err)
		errs["title"] = raw["Title"]
		errs["content"] = raw["Content"]
		errs["category"] = raw["CategoryID"]
	}

	var imageURL string
	file, header, ferr := r.FormFile("thumbnail")
	if ferr == nil {
		defer file.Close()

		contentType := header.Header.Get("Content-Type")
		if msg := uploadError(contentType, header.Size); msg != "" {
			errs["thumbnail"] = msg
		} else {
			data, rerr := io.ReadAll(io.LimitReader(file, maxUploadSize))
			if rerr != nil {
				errs["thumbnail"] = "Could not read the uploaded file"
			} else {
				url, uerr := h.client.UploadImage(r.Context(), h.token(r), header.Filename, contentType, data)
				if uerr != nil {
					errs["thumbnail"] = api.Message(uerr)
				} else {
					imageURL = url
				}
			}
		}
	}

	if hasErrors(errs) {
		state.Errors = errs
		state.Categories = h.formCategories(r)
		h.renderArticleForm(w, r, state)
		return state, api.ArticleInput{}, false
	}

	// Articles are authored in Markdown but stored rendered, so the public
	// backend serves display-ready HTML.
	contentHTML, err := markdown.ToHTML(in.Content)
	if err != nil {
		contentHTML = in.Content
	}

	return state, api.ArticleInput{
		Title:      in.Title,
		Content:    contentHTML,
		CategoryID: in.CategoryID,
		ImageURL:   imageURL,
	}, true
}

// formCategories fetches the category options for re-rendering a form.
func (h *Admin) formCategories(r *http.Request) []models.Category {
	categories, err := h.client.ListCategories(r.Context(), h.token(r))
	if err != nil {
		slog.Warn("category list failed", "error", err)
	}
	return categories
}

// renderArticleForm renders the article form from its state struct.
func (h *Admin) renderArticleForm(w http.ResponseWriter, r *http.Request, state articleFormState) {
	title := "Create Articles"
	if state.IsEdit {
		title = "Edit Articles"
	}

	data := &render.PageData{
		Title:   title,
		Section: "articles",
		Data: map[string]any{
			"IsEdit":     state.IsEdit,
			"Action":     state.Action,
			"Title":      state.Title,
			"Content":    state.Content,
			"CategoryID": state.CategoryID,
			"ImageURL":   state.ImageURL,
			"Categories": state.Categories,
			"Errors":     state.Errors,
		},
	}
	if state.Flash != nil {
		data.Flashes = []render.Flash{*state.Flash}
	}

	h.renderer.Page(w, r, "article_form", data)
}

// hasErrors reports whether any field message is non-empty.
func hasErrors(errs map[string]string) bool {
	for _, msg := range errs {
		if msg != "" {
			return true
		}
	}
	return false
}

// flashForListError wraps a non-fatal fetch error for display, or nil.
func flashForListError(err error) *render.Flash {
	if err == nil {
		return nil
	}
	return &render.Flash{Type: "error", Message: api.Message(err)}
}
