// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package slug derives URL-friendly slugs from article titles.
package slug

import (
	"regexp"
	"strings"
)

// nonSlug matches any run of characters outside [a-z0-9].
var nonSlug = regexp.MustCompile(`[^a-z0-9]+`)

// Derive creates a URL slug from the given title: lowercase, every run of
// non-alphanumeric characters collapsed to a single hyphen, leading and
// trailing hyphens stripped. The transform is idempotent but not injective;
// two titles may derive the same slug.
// Example: "Hello, World! 2026" → "hello-world-2026"
func Derive(s string) string {
	result := nonSlug.ReplaceAllString(strings.ToLower(s), "-")
	return strings.Trim(result, "-")
}
