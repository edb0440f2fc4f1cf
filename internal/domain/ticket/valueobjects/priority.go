package valueobjects

import "fmt"

type Priority string

const (
	PriorityNone   Priority = "none"
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// priorityRanks orders priorities for sorting, higher is more urgent.
var priorityRanks = map[Priority]int{
	PriorityNone:   0,
	PriorityLow:    1,
	PriorityMedium: 2,
	PriorityHigh:   3,
}

func (p Priority) String() string {
	return string(p)
}

func (p Priority) IsValid() bool {
	_, ok := priorityRanks[p]
	return ok
}

// Rank returns -1 for unknown values.
func (p Priority) Rank() int {
	r, ok := priorityRanks[p]
	if !ok {
		return -1
	}
	return r
}

func NewPriority(s string) (Priority, error) {
	p := Priority(s)
	if !p.IsValid() {
		return "", fmt.Errorf("invalid priority: %s", s)
	}
	return p, nil
}

// AllPriorities in ascending rank.
func AllPriorities() []Priority {
	return []Priority{PriorityNone, PriorityLow, PriorityMedium, PriorityHigh}
}
