// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package listview

// PageLabel is one entry in a rendered pagination control: either a page
// number or an ellipsis gap.
type PageLabel struct {
	Num      int
	Ellipsis bool
}

// DefaultWindow is the number of visible page labels used by every list
// screen in the portal.
const DefaultWindow = 5

// Window maps (current, total) to a bounded sequence of page labels. When
// total fits within maxVisible all pages are shown. Otherwise the first and
// last page, the current page and its immediate neighbours are shown, and
// longer gaps collapse into a single ellipsis per side.
func Window(current, total, maxVisible int) []PageLabel {
	if total < 1 {
		return nil
	}
	if maxVisible < 3 {
		maxVisible = 3
	}

	if total <= maxVisible {
		labels := make([]PageLabel, 0, total)
		for i := 1; i <= total; i++ {
			labels = append(labels, PageLabel{Num: i})
		}
		return labels
	}

	if current < 1 {
		current = 1
	}
	if current > total {
		current = total
	}

	// Current page plus immediate neighbours, held within (1, total).
	start := current - 1
	if start < 2 {
		start = 2
	}
	end := current + 1
	if end > total-1 {
		end = total - 1
	}

	// Near the edges, widen the run so the control keeps a stable width.
	if current <= 2 {
		end = maxVisible - 1
	}
	if current >= total-1 {
		start = total - (maxVisible - 2)
	}

	labels := []PageLabel{{Num: 1}}
	if start > 2 {
		labels = append(labels, PageLabel{Ellipsis: true})
	}
	for i := start; i <= end; i++ {
		labels = append(labels, PageLabel{Num: i})
	}
	if end < total-1 {
		labels = append(labels, PageLabel{Ellipsis: true})
	}
	return append(labels, PageLabel{Num: total})
}
