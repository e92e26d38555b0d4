// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package models holds the read-only snapshot shapes the portal works with.
// Records are created from remote API responses, held in memory for the
// lifetime of a page view or snapshot, and never persisted locally.
package models

import (
	"time"

	"genzet/internal/listview"
	"genzet/internal/slug"
)

// PlaceholderImageURL is substituted when an article carries no image.
const PlaceholderImageURL = "https://images.unsplash.com/photo-1519125323398-675f0ddb6308"

// Article is a normalized article record. IDs are server-assigned and
// stable across requests; everything else is display-ready.
type Article struct {
	ID           string
	Title        string
	Content      string // HTML body as served by the API
	CategoryID   string
	CategoryName string
	ImageURL     string // never empty; placeholder substituted on normalization
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Slug derives the article's URL slug from its title.
func (a Article) Slug() string {
	return slug.Derive(a.Title)
}

// DisplayDate formats the creation date for list cards, e.g. "April 5, 2026".
func (a Article) DisplayDate() string {
	if a.CreatedAt.IsZero() {
		return ""
	}
	return a.CreatedAt.Format("January 2, 2006")
}

// Tags returns the display tags for the article. The remote API models a
// single category per article; it surfaces here as the sole tag.
func (a Article) Tags() []string {
	if a.CategoryName == "" {
		return nil
	}
	return []string{a.CategoryName}
}

// Matches reports whether the article matches a free-text query over its
// title, body, and tags. An empty query matches.
func (a Article) Matches(query string) bool {
	fields := append([]string{a.Title, a.Content}, a.Tags()...)
	return listview.TextMatch(query, fields...)
}

// InCategory reports whether the article belongs to the named category.
// An empty filter value matches everything.
func (a Article) InCategory(name string) bool {
	return name == "" || a.CategoryName == name
}

// CategoryNames returns the distinct category names present in the given
// articles, in order of first appearance. Used to build filter dropdowns
// without a separate categories request.
func CategoryNames(articles []Article) []string {
	seen := make(map[string]bool)
	var names []string
	for _, a := range articles {
		if a.CategoryName == "" || seen[a.CategoryName] {
			continue
		}
		seen[a.CategoryName] = true
		names = append(names, a.CategoryName)
	}
	return names
}
