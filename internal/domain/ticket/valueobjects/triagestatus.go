package valueobjects

import "fmt"

type TriageStatus string

const (
	TriagePending TriageStatus = "pending"
	TriageTriaged TriageStatus = "triaged"
)

func (t TriageStatus) String() string {
	return string(t)
}

func (t TriageStatus) IsValid() bool {
	return t == TriagePending || t == TriageTriaged
}

func NewTriageStatus(s string) (TriageStatus, error) {
	t := TriageStatus(s)
	if !t.IsValid() {
		return "", fmt.Errorf("invalid triage status: %s", s)
	}
	return t, nil
}
