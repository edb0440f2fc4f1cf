package triage

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/samber/lo"

	"pulseboard/internal/domain/ticket"
	vo "pulseboard/internal/domain/ticket/valueobjects"
	"pulseboard/internal/shared/errors"
)

type assessment struct {
	ID       string `json:"id"`
	Priority string `json:"priority"`
	Type     string `json:"type"`
}

// Rejected is a model item that was not applied.
type Rejected struct {
	ID     string
	Reason string
}

// ParseBulk extracts the first JSON array of objects found in text, ignoring
// prose and code fences around it. Items with an unknown id, a bad priority
// or a bad type are rejected; for repeated ids the first occurrence wins.
// Text without a parseable array yields no updates and no error.
func ParseBulk(text string, knownIDs []string) ([]ticket.TriageUpdate, []Rejected) {
	raw, ok := decodeFirst(text, '[', hasObject)
	if !ok {
		return nil, []Rejected{{Reason: "no JSON array of assessments in response"}}
	}

	known := lo.SliceToMap(knownIDs, func(id string) (string, bool) { return id, true })
	var rejected []Rejected

	items := lo.FilterMap(raw, func(msg json.RawMessage, _ int) (ticket.TriageUpdate, bool) {
		var a assessment
		if err := json.Unmarshal(msg, &a); err != nil {
			rejected = append(rejected, Rejected{Reason: "item is not an object"})
			return ticket.TriageUpdate{}, false
		}
		a.ID = strings.TrimSpace(a.ID)
		if !known[a.ID] {
			rejected = append(rejected, Rejected{ID: a.ID, Reason: "unknown ticket id"})
			return ticket.TriageUpdate{}, false
		}
		priority, tag, err := classify(a.Priority, a.Type)
		if err != nil {
			rejected = append(rejected, Rejected{ID: a.ID, Reason: err.Error()})
			return ticket.TriageUpdate{}, false
		}
		return ticket.TriageUpdate{TicketID: a.ID, Priority: priority, Tag: tag}, true
	})

	seen := map[string]bool{}
	items = lo.Filter(items, func(u ticket.TriageUpdate, _ int) bool {
		if seen[u.TicketID] {
			rejected = append(rejected, Rejected{ID: u.TicketID, Reason: "duplicate ticket id"})
			return false
		}
		seen[u.TicketID] = true
		return true
	})

	return items, rejected
}

// ParseSingle reads one {priority, type} object. Anything else is a ParseError.
func ParseSingle(text string) (vo.Priority, vo.Tag, error) {
	a, ok := decodeFirst(text, '{', func(assessment) bool { return true })
	if !ok {
		return "", "", errors.NewParseError("AI response could not be parsed", "no JSON object in response")
	}

	priority, tag, err := classify(a.Priority, a.Type)
	if err != nil {
		return "", "", errors.NewParseError("AI response could not be parsed", err.Error())
	}
	return priority, tag, nil
}

func classify(priority, kind string) (vo.Priority, vo.Tag, error) {
	p, err := vo.NewPriority(normalize(priority))
	if err != nil {
		return "", "", fmt.Errorf("invalid priority %q", priority)
	}
	t, err := vo.NewTag(normalize(kind))
	if err != nil {
		return "", "", fmt.Errorf("invalid type %q", kind)
	}
	return p, t, nil
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// decodeFirst tries every open byte of text in order and returns the first
// value that decodes as JSON and satisfies accept. Text after the value is
// ignored.
func decodeFirst[T any](text string, open byte, accept func(T) bool) (T, bool) {
	for i := 0; i < len(text); i++ {
		if text[i] != open {
			continue
		}
		var v T
		if err := json.NewDecoder(strings.NewReader(text[i:])).Decode(&v); err == nil && accept(v) {
			return v, true
		}
	}
	var zero T
	return zero, false
}

// hasObject skips bracketed prose such as "[2]" that happens to be valid JSON.
func hasObject(items []json.RawMessage) bool {
	return lo.ContainsBy(items, func(msg json.RawMessage) bool {
		return strings.HasPrefix(strings.TrimSpace(string(msg)), "{")
	})
}
