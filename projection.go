package partstock

import (
	"fmt"
	"sort"
	"strings"
)

// SortField selects the key used to order a projection.
type SortField int

const (
	// SortNone keeps the ledger's canonical insertion order.
	SortNone SortField = iota
	SortByName
	SortByQuantity
	SortByPrice
	SortByTotal
	SortByCreated
)

func (f SortField) String() string {
	switch f {
	case SortNone:
		return "none"
	case SortByName:
		return "name"
	case SortByQuantity:
		return "quantity"
	case SortByPrice:
		return "price"
	case SortByTotal:
		return "total"
	case SortByCreated:
		return "created"
	default:
		return "unknown"
	}
}

// ParseSortField parses a string into a SortField.
func ParseSortField(s string) (SortField, error) {
	switch s {
	case "", "none":
		return SortNone, nil
	case "name":
		return SortByName, nil
	case "quantity":
		return SortByQuantity, nil
	case "price":
		return SortByPrice, nil
	case "total":
		return SortByTotal, nil
	case "created", "createdAt":
		return SortByCreated, nil
	default:
		return 0, fmt.Errorf("unknown sort field: %q", s)
	}
}

// Direction orders a projection ascending or descending.
type Direction int

const (
	Ascending Direction = iota
	Descending
)

func (d Direction) String() string {
	if d == Descending {
		return "desc"
	}
	return "asc"
}

// ParseDirection parses a string into a Direction.
func ParseDirection(s string) (Direction, error) {
	switch s {
	case "", "asc":
		return Ascending, nil
	case "desc":
		return Descending, nil
	default:
		return 0, fmt.Errorf("unknown sort direction: %q", s)
	}
}

// DefaultPageSize is the number of parts shown per page.
const DefaultPageSize = 5

// View is a read-only sorted and paginated projection of a ledger.
type View struct {
	Parts      []Part // the visible page, in display order
	Page       int    // effective page, 1-based (0 when the ledger is empty)
	TotalPages int
	TotalParts int
	GrandTotal Money // total value of the full sorted set, not just the page
}

// Project derives the visible page for the given sort and pagination
// parameters. It never mutates the ledger: it works on its own copy of the
// part list.
//
// A requested page beyond the last one self-corrects to page 1 rather than
// rendering an empty page.
func Project(l *Ledger, field SortField, dir Direction, page, pageSize int) View {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}

	parts := make([]Part, 0, l.Len())
	for p := range l.Parts() {
		parts = append(parts, p)
	}
	sortParts(parts, field, dir)

	total := M(0, l.Currency())
	for _, p := range parts {
		total = total.Add(p.TotalValue())
	}

	n := len(parts)
	totalPages := (n + pageSize - 1) / pageSize
	if page < 1 || (totalPages > 0 && page > totalPages) {
		page = 1
	}
	if totalPages == 0 {
		page = 0
	}

	start := (page - 1) * pageSize
	if start < 0 {
		start = 0
	}
	end := start + pageSize
	if end > n {
		end = n
	}

	return View{
		Parts:      parts[start:end],
		Page:       page,
		TotalPages: totalPages,
		TotalParts: n,
		GrandTotal: total,
	}
}

// sortParts orders parts in place. The sort is stable: ties keep the
// relative order of the input, there is no secondary key.
func sortParts(parts []Part, field SortField, dir Direction) {
	if field == SortNone {
		return
	}
	less := func(a, b Part) bool {
		switch field {
		case SortByName:
			return strings.ToLower(a.Name) < strings.ToLower(b.Name)
		case SortByQuantity:
			return a.Quantity < b.Quantity
		case SortByPrice:
			return a.Price.Cmp(b.Price) < 0
		case SortByTotal:
			return a.TotalValue().Cmp(b.TotalValue()) < 0
		case SortByCreated:
			return a.CreatedAt < b.CreatedAt
		default:
			return false
		}
	}
	sort.SliceStable(parts, func(i, j int) bool {
		if dir == Descending {
			return less(parts[j], parts[i])
		}
		return less(parts[i], parts[j])
	})
}
