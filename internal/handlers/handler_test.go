package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"genzet/internal/api"
	"genzet/internal/middleware"
	"genzet/internal/render"
	"genzet/internal/session"
	"genzet/internal/snapshot"
)

// fakeBackend is an httptest-backed stand-in for the remote CMS API. It
// serves fixed article and category collections and counts calls per
// method+path so tests can assert which endpoints were (not) hit.
type fakeBackend struct {
	t          *testing.T
	server     *httptest.Server
	articles   []map[string]any
	categories []map[string]any

	mu    sync.Mutex
	calls map[string]int

	// status, when non-zero, forces every response to that status code.
	status int
}

func newFakeBackend(t *testing.T) *fakeBackend {
	t.Helper()

	fb := &fakeBackend{
		t:     t,
		calls: make(map[string]int),
		articles: []map[string]any{
			{
				"id": "a1", "title": "Go Service Patterns", "content": "<p>patterns</p>",
				"categoryId": "c1", "category": map[string]any{"id": "c1", "name": "Tech"},
				"createdAt": "2026-01-10T10:00:00Z", "updatedAt": "2026-01-10T10:00:00Z",
			},
			{
				"id": "a2", "title": "Design Tokens", "content": "<p>tokens</p>",
				"categoryId": "c2", "category": map[string]any{"id": "c2", "name": "Design"},
				"createdAt": "2026-01-11T10:00:00Z", "updatedAt": "2026-01-11T10:00:00Z",
			},
			{
				"id": "a3", "title": "Testing in Go", "content": "<p>testing</p>",
				"categoryId": "c1", "category": map[string]any{"id": "c1", "name": "Tech"},
				"createdAt": "2026-01-12T10:00:00Z", "updatedAt": "2026-01-12T10:00:00Z",
			},
		},
		categories: []map[string]any{
			{"id": "c1", "name": "Tech", "createdAt": "2026-01-01T00:00:00Z"},
			{"id": "c2", "name": "Design", "createdAt": "2026-01-02T00:00:00Z"},
		},
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		fb.mu.Lock()
		fb.calls[r.Method+" "+r.URL.Path]++
		status := fb.status
		fb.mu.Unlock()

		if status != 0 {
			w.WriteHeader(status)
			json.NewEncoder(w).Encode(map[string]string{"message": "forced error"})
			return
		}

		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/articles":
			json.NewEncoder(w).Encode(map[string]any{"data": fb.articles})
		case r.Method == http.MethodGet && r.URL.Path == "/categories":
			json.NewEncoder(w).Encode(map[string]any{"data": fb.categories})
		case r.Method == http.MethodPost && r.URL.Path == "/categories":
			var in map[string]string
			json.NewDecoder(r.Body).Decode(&in)
			json.NewEncoder(w).Encode(map[string]any{
				"id": "c-new", "name": in["name"], "createdAt": "2026-02-01T00:00:00Z",
			})
		case r.Method == http.MethodPost && r.URL.Path == "/articles":
			var in map[string]string
			json.NewDecoder(r.Body).Decode(&in)
			json.NewEncoder(w).Encode(map[string]any{
				"id": "a-new", "title": in["title"], "content": in["content"],
				"categoryId": in["categoryId"],
				"createdAt":  "2026-02-01T00:00:00Z", "updatedAt": "2026-02-01T00:00:00Z",
			})
		case r.Method == http.MethodDelete:
			w.WriteHeader(http.StatusNoContent)
		default:
			http.NotFound(w, r)
		}
	})

	fb.server = httptest.NewServer(mux)
	t.Cleanup(fb.server.Close)
	return fb
}

// callCount returns how many times method+path was hit.
func (fb *fakeBackend) callCount(method, path string) int {
	fb.mu.Lock()
	defer fb.mu.Unlock()
	return fb.calls[method+" "+path]
}

// forceStatus makes every subsequent response fail with the given status.
func (fb *fakeBackend) forceStatus(status int) {
	fb.mu.Lock()
	defer fb.mu.Unlock()
	fb.status = status
}

// client returns an API client pointed at the fake backend.
func (fb *fakeBackend) client() *api.Client {
	return api.New(fb.server.URL, 2*time.Second)
}

// testRenderer builds a dev-mode renderer or fails the test.
func testRenderer(t *testing.T) *render.Renderer {
	t.Helper()
	rn, err := render.New(true)
	if err != nil {
		t.Fatalf("render.New: %v", err)
	}
	return rn
}

// testSnapshot builds a snapshot store over the fake backend.
func testSnapshot(fb *fakeBackend) *snapshot.Store {
	return snapshot.New(fb.client(), time.Minute)
}

// asAdmin injects an admin session into the request context, standing in
// for LoadSession + RequireAuth.
func asAdmin(r *http.Request) *http.Request {
	ctx := context.WithValue(r.Context(), middleware.SessionKey, &session.Data{
		Token:    "test-token",
		Username: "admin",
		Role:     "Admin",
	})
	return r.WithContext(ctx)
}

// withRole injects a session with the given role.
func withRole(r *http.Request, role string) *http.Request {
	ctx := context.WithValue(r.Context(), middleware.SessionKey, &session.Data{
		Token:    "test-token",
		Username: "someone",
		Role:     role,
	})
	return r.WithContext(ctx)
}
