// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package listview

import "sync/atomic"

// Latest hands out monotonically increasing tokens for in-flight requests
// so that only the most recently issued request's result is applied. A slow
// response racing a newer one checks its token on arrival and is discarded
// if a later request has been issued since.
type Latest struct {
	seq atomic.Uint64
}

// Next issues a new token, making all previously issued tokens stale.
func (l *Latest) Next() uint64 {
	return l.seq.Add(1)
}

// IsLatest reports whether token is still the most recently issued one.
func (l *Latest) IsLatest(token uint64) bool {
	return l.seq.Load() == token
}
