package entity

import "strings"

// SortOrder is the direction of a listing sort.
type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// Sort describes how a listing is ordered. An empty Field means the listing default.
type Sort struct {
	Field string
	Order SortOrder
}

// ParseSortOrder accepts "asc" or "desc" in any case and defaults to ascending.
func ParseSortOrder(s string) SortOrder {
	if strings.EqualFold(s, string(SortDesc)) {
		return SortDesc
	}

	return SortAsc
}

// Desc reports whether the sort is descending.
func (s Sort) Desc() bool {
	return s.Order == SortDesc
}
