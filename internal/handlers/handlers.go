// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package handlers contains the HTTP handlers for the public site, the
// auth flow, and the admin dashboard. Handlers talk to the remote CMS API
// through the api client and keep list state in the article snapshot.
package handlers

import (
	"net/http"
	"strconv"
	"strings"
)

// pageParam reads the ?page query parameter, defaulting to 1. Values that
// don't parse fall back to 1; out-of-range pages are clamped downstream.
func pageParam(r *http.Request) int {
	page, err := strconv.Atoi(r.URL.Query().Get("page"))
	if err != nil || page < 1 {
		return 1
	}
	return page
}

// searchParam reads and trims a query parameter used for filtering.
func searchParam(r *http.Request, name string) string {
	return strings.TrimSpace(r.URL.Query().Get(name))
}
