package triage

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pulseboard/internal/domain/organization"
	"pulseboard/internal/domain/ticket"
	vo "pulseboard/internal/domain/ticket/valueobjects"
)

func fixtures(t *testing.T) (*organization.Organization, []*ticket.Ticket) {
	t.Helper()
	org, err := organization.NewOrganization("Acme", "", "", "", nil, "user_1")
	require.NoError(t, err)

	a, err := ticket.NewTicket(org.ID(), "user_2", "Crash on save", "It crashes", vo.TagBug, vo.PriorityHigh, nil)
	require.NoError(t, err)
	b, err := ticket.NewTicket(org.ID(), "user_3", "Dark mode", strings.Repeat("please ", 100), vo.TagFeature, "", []byte("img"))
	require.NoError(t, err)
	return org, []*ticket.Ticket{a, b}
}

func TestBulkTriagePrompt_Deterministic(t *testing.T) {
	org, tickets := fixtures(t)

	first := BulkTriagePrompt(org, tickets)
	assert.Equal(t, first, BulkTriagePrompt(org, tickets))
	assert.Contains(t, first, `"Acme"`)
	assert.Less(t, strings.Index(first, tickets[0].ID()), strings.Index(first, tickets[1].ID()))
}

func TestSingleTriagePrompt_MentionsImage(t *testing.T) {
	org, tickets := fixtures(t)
	assert.NotContains(t, SingleTriagePrompt(org, tickets[0]), "screenshot")
	assert.Contains(t, SingleTriagePrompt(org, tickets[1]), "screenshot")
}

func TestSummaryPrompt_Excerpts(t *testing.T) {
	org, tickets := fixtures(t)
	prompt := SummaryPrompt(org, tickets)

	assert.Contains(t, prompt, "2 feedback tickets")
	assert.Contains(t, prompt, "[bug | priority high | open | 0 votes] Crash on save")
	assert.Contains(t, prompt, "…")
	assert.NotContains(t, prompt, strings.Repeat("please ", 100))
}

func TestDigestPrompt(t *testing.T) {
	org, _ := fixtures(t)
	prompt := DigestPrompt(org, []Post{{Title: "Acme is great", Subreddit: "apps", Author: "u1", Score: 5, URL: "https://reddit.test/p", CreatedAt: 1700000000}})

	assert.Contains(t, prompt, "1 recent Reddit posts")
	assert.Contains(t, prompt, "r/apps by u/u1, score 5, 0 comments, 2023-11-14")
	assert.Contains(t, prompt, "https://reddit.test/p")
}
