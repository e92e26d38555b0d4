// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package snapshot keeps the portal's in-memory copy of the remote article
// collection. The collection is fetched whole, refreshed when stale, and
// patched optimistically after successful mutations so screens don't need
// a second round-trip. Nothing here outlives the process.
package snapshot

import (
	"context"
	"sync"
	"time"

	"genzet/internal/api"
	"genzet/internal/listview"
	"genzet/internal/models"
)

// DefaultTTL is how long a fetched collection is served before the next
// read triggers a refresh.
const DefaultTTL = time.Minute

// Store holds the article snapshot. All methods are safe for concurrent
// use. Refreshes are guarded by a request-sequence token: when two fetches
// overlap, only the most recently issued one may apply its result, so a
// slow stale response never overwrites fresher data.
type Store struct {
	client *api.Client
	ttl    time.Duration

	mu        sync.RWMutex
	articles  []models.Article
	fetchedAt time.Time
	loaded    bool

	seq listview.Latest
}

// New creates a snapshot store backed by the given API client. A zero ttl
// selects DefaultTTL.
func New(client *api.Client, ttl time.Duration) *Store {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Store{client: client, ttl: ttl}
}

// Articles returns the current article collection, refreshing it first when
// stale or never loaded. When a refresh fails but older data exists, the
// older data is returned alongside the error so screens keep whatever they
// were already displaying.
func (s *Store) Articles(ctx context.Context) ([]models.Article, error) {
	s.mu.RLock()
	fresh := s.loaded && time.Since(s.fetchedAt) < s.ttl
	s.mu.RUnlock()

	var err error
	if !fresh {
		err = s.Refresh(ctx)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Article, len(s.articles))
	copy(out, s.articles)
	return out, err
}

// Refresh fetches the collection and applies it if no newer fetch has been
// issued in the meantime.
func (s *Store) Refresh(ctx context.Context) error {
	token := s.seq.Next()
	articles, err := s.client.ListArticles(ctx)
	return s.apply(token, articles, err)
}

// apply installs a fetch result under its sequence token. Stale tokens are
// discarded outright; failed fetches leave the previous data in place.
func (s *Store) apply(token uint64, articles []models.Article, err error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.seq.IsLatest(token) {
		return nil
	}
	if err != nil {
		return err
	}

	s.articles = articles
	s.fetchedAt = time.Now()
	s.loaded = true
	return nil
}

// ByID finds an article by its server-assigned id.
func (s *Store) ByID(id string) (models.Article, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, a := range s.articles {
		if a.ID == id {
			return a, true
		}
	}
	return models.Article{}, false
}

// BySlug resolves a detail URL back to an article by re-deriving every
// candidate's slug and comparing — a linear scan, acceptable because the
// collection is small. Slug derivation is not injective: on a collision the
// first match in collection order wins. When nothing matches, the path
// segment is retried as an article id so id-based links stay reachable.
func (s *Store) BySlug(slug string) (models.Article, bool) {
	s.mu.RLock()
	for _, a := range s.articles {
		if a.Slug() == slug {
			s.mu.RUnlock()
			return a, true
		}
	}
	s.mu.RUnlock()

	return s.ByID(slug)
}

// Upsert patches an article in place by id, or prepends it when absent.
// Called after a successful create or update so the list reflects the
// mutation without a refetch.
func (s *Store) Upsert(article models.Article) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, a := range s.articles {
		if a.ID == article.ID {
			s.articles[i] = article
			return
		}
	}
	s.articles = append([]models.Article{article}, s.articles...)
}

// Remove drops an article by id. Unknown ids are a no-op.
func (s *Store) Remove(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, a := range s.articles {
		if a.ID == id {
			s.articles = append(s.articles[:i], s.articles[i+1:]...)
			return
		}
	}
}

// Invalidate marks the snapshot stale so the next read refetches. Used
// after mutations whose server-side record the portal can't reconstruct.
func (s *Store) Invalidate() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fetchedAt = time.Time{}
}
