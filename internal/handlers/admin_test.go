package handlers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"genzet/internal/session"
)

func newTestAdmin(t *testing.T, fb *fakeBackend) *Admin {
	t.Helper()
	return NewAdmin(testRenderer(t), session.NewStore(nil, false), fb.client(), testSnapshot(fb), nil, nil)
}

// adminRouter wires the Admin group the way the real router does, minus
// the auth middleware (tests inject sessions directly).
func adminRouter(h *Admin) chi.Router {
	r := chi.NewRouter()
	r.Get("/admin", h.List)
	r.Get("/admin/new", h.NewForm)
	r.Post("/admin", h.Create)
	r.Get("/admin/{id}/edit", h.EditForm)
	r.Post("/admin/{id}", h.Update)
	r.Post("/admin/{id}/delete", h.Delete)
	r.Get("/admin/categories", h.Categories)
	r.Post("/admin/categories", h.CreateCategory)
	r.Post("/admin/categories/{id}", h.UpdateCategory)
	r.Post("/admin/categories/{id}/delete", h.DeleteCategory)
	return r
}

func postForm(router http.Handler, target string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, asAdmin(req))
	return rr
}

func TestAdminListSearchesTitleOnly(t *testing.T) {
	fb := newFakeBackend(t)
	router := adminRouter(newTestAdmin(t, fb))

	// "patterns" appears in the content of a1 but only the title matters —
	// search by a title word instead.
	req := httptest.NewRequest(http.MethodGet, "/admin?q=testing", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, asAdmin(req))

	if rr.Code != http.StatusOK {
		t.Fatalf("got status %d, want 200", rr.Code)
	}
	body := rr.Body.String()
	if !strings.Contains(body, "Testing in Go") {
		t.Error("title match should be shown")
	}
	if strings.Contains(body, "Design Tokens") {
		t.Error("non-matching title should be filtered out")
	}
}

func TestAdminListContentMatchIgnored(t *testing.T) {
	fb := newFakeBackend(t)
	router := adminRouter(newTestAdmin(t, fb))

	// "tokens" matches a2's content and title; "patterns" matches only
	// a1's content, so the admin search must not find it by content.
	req := httptest.NewRequest(http.MethodGet, "/admin?q=patterns", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, asAdmin(req))

	body := rr.Body.String()
	if !strings.Contains(body, "Go Service Patterns") {
		t.Error("title containing the word should match")
	}

	req = httptest.NewRequest(http.MethodGet, "/admin?q=testing+in", nil)
	rr = httptest.NewRecorder()
	router.ServeHTTP(rr, asAdmin(req))
	if strings.Contains(rr.Body.String(), "Design Tokens") {
		t.Error("articles matching only by content should be excluded")
	}
}

func TestAdminCreateArticleValidationBlocksRequest(t *testing.T) {
	fb := newFakeBackend(t)
	router := adminRouter(newTestAdmin(t, fb))

	rr := postForm(router, "/admin", url.Values{
		"title":       {""},
		"content":     {""},
		"category_id": {""},
	})

	if rr.Code != http.StatusOK {
		t.Fatalf("got status %d, want 200 (form re-rendered)", rr.Code)
	}
	body := rr.Body.String()
	for _, msg := range []string{"Please enter title", "Content field cannot be empty", "Please select category"} {
		if !strings.Contains(body, msg) {
			t.Errorf("body should contain %q", msg)
		}
	}
	if got := fb.callCount(http.MethodPost, "/articles"); got != 0 {
		t.Errorf("invalid form reached the backend %d times, want 0", got)
	}
}

func TestAdminCreateArticleSubmitsRenderedContent(t *testing.T) {
	fb := newFakeBackend(t)
	admin := newTestAdmin(t, fb)
	router := adminRouter(admin)

	rr := postForm(router, "/admin", url.Values{
		"title":       {"New Post"},
		"content":     {"# Heading"},
		"category_id": {"c1"},
	})

	if rr.Code != http.StatusSeeOther {
		t.Fatalf("got status %d, want 303; body: %s", rr.Code, rr.Body.String())
	}
	if got := fb.callCount(http.MethodPost, "/articles"); got != 1 {
		t.Errorf("backend create calls = %d, want 1", got)
	}

	// The optimistic patch puts the created article in the snapshot.
	if _, found := admin.articles.ByID("a-new"); !found {
		t.Error("created article should be in the snapshot")
	}
}

func TestAdminDeleteArticle(t *testing.T) {
	fb := newFakeBackend(t)
	admin := newTestAdmin(t, fb)
	router := adminRouter(admin)

	// Warm the snapshot first.
	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	router.ServeHTTP(httptest.NewRecorder(), asAdmin(req))

	rr := postForm(router, "/admin/a1/delete", url.Values{})

	if rr.Code != http.StatusSeeOther {
		t.Fatalf("got status %d, want 303", rr.Code)
	}
	if got := fb.callCount(http.MethodDelete, "/articles/a1"); got != 1 {
		t.Errorf("backend delete calls = %d, want 1", got)
	}
	if _, found := admin.articles.ByID("a1"); found {
		t.Error("deleted article should be gone from the snapshot")
	}
}

func TestAdminCategoriesEmptyNameNeverReachesNetwork(t *testing.T) {
	fb := newFakeBackend(t)
	router := adminRouter(newTestAdmin(t, fb))

	rr := postForm(router, "/admin/categories", url.Values{"name": {"   "}})

	if rr.Code != http.StatusOK {
		t.Fatalf("got status %d, want 200 (page re-rendered)", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), "Category field cannot be empty") {
		t.Error("body should contain the empty-name message")
	}
	if got := fb.callCount(http.MethodPost, "/categories"); got != 0 {
		t.Errorf("empty name reached the backend %d times, want 0", got)
	}
}

func TestAdminCreateCategory(t *testing.T) {
	fb := newFakeBackend(t)
	router := adminRouter(newTestAdmin(t, fb))

	rr := postForm(router, "/admin/categories", url.Values{"name": {"Culture"}})

	if rr.Code != http.StatusSeeOther {
		t.Fatalf("got status %d, want 303", rr.Code)
	}
	if loc := rr.Header().Get("Location"); loc != "/admin/categories" {
		t.Errorf("redirect location = %q", loc)
	}
	if got := fb.callCount(http.MethodPost, "/categories"); got != 1 {
		t.Errorf("backend create calls = %d, want 1", got)
	}
}

func TestAdminUnauthorizedRedirectsToLogin(t *testing.T) {
	fb := newFakeBackend(t)
	fb.forceStatus(http.StatusUnauthorized)
	router := adminRouter(newTestAdmin(t, fb))

	req := httptest.NewRequest(http.MethodGet, "/admin/categories", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, asAdmin(req))

	if rr.Code != http.StatusSeeOther {
		t.Fatalf("got status %d, want 303", rr.Code)
	}
	if loc := rr.Header().Get("Location"); loc != "/login" {
		t.Errorf("redirect location = %q, want /login", loc)
	}
}

func TestAdminCategorySearchAndPagination(t *testing.T) {
	fb := newFakeBackend(t)
	router := adminRouter(newTestAdmin(t, fb))

	req := httptest.NewRequest(http.MethodGet, "/admin/categories?q=tech", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, asAdmin(req))

	if rr.Code != http.StatusOK {
		t.Fatalf("got status %d, want 200", rr.Code)
	}
	body := rr.Body.String()
	if !strings.Contains(body, "Tech") {
		t.Error("matching category should be shown")
	}
	if !strings.Contains(body, "Total Category : 1") {
		t.Error("total should reflect the filtered count")
	}
}
