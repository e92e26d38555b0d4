// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package listview implements the list browsing core shared by every
// collection screen in the portal: client-side filtering over a fully
// fetched collection, fixed-size pagination, page-label windowing with
// ellipsis compression, debounced input coalescing, and a monotonic
// sequence guard for discarding stale responses.
package listview

import "strings"

// Apply returns the elements of items for which every predicate returns
// true, preserving the original relative order. Predicates combine with
// logical AND. With no predicates the input is returned as-is.
func Apply[T any](items []T, preds ...func(T) bool) []T {
	if len(preds) == 0 {
		return items
	}

	filtered := make([]T, 0, len(items))
outer:
	for _, item := range items {
		for _, pred := range preds {
			if !pred(item) {
				continue outer
			}
		}
		filtered = append(filtered, item)
	}
	return filtered
}

// TextMatch reports whether the lowercased query is a substring of any of
// the given fields (also lowercased). An empty or whitespace-only query
// matches everything.
func TextMatch(query string, fields ...string) bool {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return true
	}
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), query) {
			return true
		}
	}
	return false
}
