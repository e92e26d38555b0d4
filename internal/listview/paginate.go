// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package listview

// Pagination describes one page slice of a filtered collection.
type Pagination struct {
	Page       int // current page, clamped to [1, TotalPages]
	Size       int // items per page
	Total      int // filtered item count
	TotalPages int // ceil(Total / Size); 0 when the collection is empty
	Start      int // 1-based index of the first item shown ("Showing Start–End of Total")
	End        int // 1-based index of the last item shown
	HasPrev    bool
	HasNext    bool
}

// PrevPage returns the page number before the current one, for nav links.
func (p Pagination) PrevPage() int { return p.Page - 1 }

// NextPage returns the page number after the current one, for nav links.
func (p Pagination) NextPage() int { return p.Page + 1 }

// Paginate slices items into the requested fixed-size page. An out-of-range
// page is clamped rather than rejected, so a filter change that shrinks the
// collection still renders a valid page.
func Paginate[T any](items []T, page, size int) ([]T, Pagination) {
	if size < 1 {
		size = 1
	}

	total := len(items)
	totalPages := (total + size - 1) / size

	if page < 1 {
		page = 1
	}
	if totalPages > 0 && page > totalPages {
		page = totalPages
	}

	start := (page - 1) * size
	end := start + size
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	p := Pagination{
		Page:       page,
		Size:       size,
		Total:      total,
		TotalPages: totalPages,
		Start:      start + 1,
		End:        end,
		HasPrev:    page > 1,
		HasNext:    page < totalPages,
	}
	if total == 0 {
		p.Start = 0
	}

	return items[start:end], p
}
