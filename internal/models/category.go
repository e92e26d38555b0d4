// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import "time"

// Category is a normalized category record. The id is the unique identity;
// the name is a user-facing, non-unique filter key.
type Category struct {
	ID        string
	Name      string
	CreatedAt time.Time
}

// DisplayDate formats the creation date for the admin table.
func (c Category) DisplayDate() string {
	if c.CreatedAt.IsZero() {
		return ""
	}
	return c.CreatedAt.Format("January 2, 2006")
}
