// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import "strings"

// Profile is the authenticated user's account record as returned by the
// remote API's profile endpoint.
type Profile struct {
	ID       string
	Username string
	Role     string
}

// IsAdmin reports whether the profile carries the admin role.
func (p Profile) IsAdmin() bool {
	return strings.EqualFold(p.Role, "admin")
}

// Initial returns the single-letter avatar initial for the user menu.
func (p Profile) Initial() string {
	if p.Username == "" {
		return "?"
	}
	return strings.ToUpper(p.Username[:1])
}
