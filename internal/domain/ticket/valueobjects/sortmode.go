package valueobjects

import "fmt"

// SortMode orders ticket lists. Every mode breaks ties newest first.
type SortMode string

const (
	SortNewest    SortMode = "newest"
	SortMostVoted SortMode = "mostVoted"
	SortPriority  SortMode = "priority"
)

func (m SortMode) IsValid() bool {
	switch m {
	case SortNewest, SortMostVoted, SortPriority:
		return true
	}
	return false
}

// NewSortMode maps an empty value to SortNewest.
func NewSortMode(s string) (SortMode, error) {
	if s == "" {
		return SortNewest, nil
	}
	m := SortMode(s)
	if !m.IsValid() {
		return "", fmt.Errorf("invalid sort mode: %s", s)
	}
	return m, nil
}
