// Package web provides embedded static assets (CSS, JS) for the portal.
// In development, templates load assets from CDN; in production, the
// compiled and vendored files are embedded here and served at /static/.
package web

import "embed"

// Static embeds the web/static/ directory tree. In Docker builds, this
// includes the compiled TailwindCSS and a vendored HTMX file. In local
// development it may only contain the input.css source file.
//
//go:embed all:static
var Static embed.FS
