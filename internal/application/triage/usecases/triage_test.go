package usecases

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pulseboard/internal/application/triage"
	"pulseboard/internal/domain/access"
	"pulseboard/internal/domain/organization"
	"pulseboard/internal/domain/ticket"
	vo "pulseboard/internal/domain/ticket/valueobjects"
	"pulseboard/internal/shared/errors"
	"pulseboard/internal/shared/logger"
	"pulseboard/internal/shared/services/markdown"
)

var (
	owner    = &access.Caller{ID: "user_owner"}
	stranger = &access.Caller{ID: "user_stranger"}
	settings = Settings{TriageModel: "triage-model", SummaryModel: "summary-model", MaxBatchSize: 50, RedditLimit: 10}
)

type fixture struct {
	org     *organization.Organization
	tickets []*ticket.Ticket
	orgs    *mockOrganizationRepository
	repo    *mockTicketRepository
	applied []ticket.TriageUpdate
}

func newFixture(t *testing.T, n int) *fixture {
	t.Helper()
	org, err := organization.NewOrganization("Acme", "", "", "", nil, owner.ID)
	require.NoError(t, err)

	f := &fixture{org: org}
	for i := 0; i < n; i++ {
		tk, err := ticket.NewTicket(org.ID(), "user_reporter", fmt.Sprintf("Ticket %d", i), "details", vo.TagBug, "", nil)
		require.NoError(t, err)
		f.tickets = append(f.tickets, tk)
	}

	f.orgs = &mockOrganizationRepository{
		GetByIDFunc: func(ctx context.Context, id string) (*organization.Organization, error) {
			if id == org.ID() {
				return org, nil
			}
			return nil, nil
		},
	}
	f.repo = &mockTicketRepository{
		GetByIDFunc: func(ctx context.Context, id string) (*ticket.Ticket, error) {
			for _, tk := range f.tickets {
				if tk.ID() == id {
					return tk, nil
				}
			}
			return nil, nil
		},
		ListForTriageFunc: func(ctx context.Context, orgID string, includeTriaged bool, limit int) ([]*ticket.Ticket, error) {
			return f.tickets, nil
		},
		ListByOrganizationFunc: func(ctx context.Context, orgID string) ([]*ticket.Ticket, error) {
			return f.tickets, nil
		},
		ApplyTriageFunc: func(ctx context.Context, orgID string, items []ticket.TriageUpdate, at time.Time) ([]ticket.TriageUpdate, error) {
			f.applied = append(f.applied, items...)
			return items, nil
		},
	}
	return f
}

func TestBulkTriageUseCase_AppliesValidItems(t *testing.T) {
	f := newFixture(t, 3)
	a, b, c := f.tickets[0].ID(), f.tickets[1].ID(), f.tickets[2].ID()
	completer := &mockCompleter{CompleteFunc: func(ctx context.Context, req triage.CompletionRequest) (string, error) {
		return "```json\n[" +
			`{"id":"` + a + `","priority":"high","type":"bug"},` +
			`{"id":"` + b + `","priority":"extreme","type":"bug"},` +
			`{"id":"tkt_elsewhere","priority":"low","type":"bug"},` +
			`{"id":"` + c + `","priority":"low","type":"feature"},` +
			`{"id":"` + a + `","priority":"low","type":"tweak"}` +
			"]\n```", nil
	}}
	rec := &mockRecorder{}
	uc := NewBulkTriageUseCase(f.repo, f.orgs, completer, rec, settings, logger.NewNopLogger())

	result, err := uc.Execute(context.Background(), BulkTriageCommand{Caller: owner, OrganizationID: f.org.ID()})
	require.NoError(t, err)

	assert.Equal(t, 2, result.UpdatedCount)
	assert.Equal(t, []AppliedResult{
		{TicketID: a, Priority: "high", Tag: "bug"},
		{TicketID: c, Priority: "low", Tag: "feature"},
	}, result.AppliedResults)
	assert.Equal(t, 3, result.Candidates)
	assert.Equal(t, 3, result.Rejected)
	assert.Equal(t, []ticket.TriageUpdate{
		{TicketID: a, Priority: vo.PriorityHigh, Tag: vo.TagBug},
		{TicketID: c, Priority: vo.PriorityLow, Tag: vo.TagFeature},
	}, f.applied)

	require.Equal(t, 1, completer.calls())
	assert.Equal(t, "triage-model", completer.requests[0].Model)
	assert.Equal(t, []string{"bulk_triage:ok"}, rec.events)
}

func TestBulkTriageUseCase_NoCandidates(t *testing.T) {
	f := newFixture(t, 0)
	completer := &mockCompleter{}
	uc := NewBulkTriageUseCase(f.repo, f.orgs, completer, &mockRecorder{}, settings, logger.NewNopLogger())

	result, err := uc.Execute(context.Background(), BulkTriageCommand{Caller: owner, OrganizationID: f.org.ID()})
	require.NoError(t, err)
	assert.Equal(t, 0, result.UpdatedCount)
	assert.Equal(t, 0, completer.calls())
}

func TestBulkTriageUseCase_PassesSelection(t *testing.T) {
	f := newFixture(t, 1)
	var gotInclude bool
	var gotLimit int
	f.repo.ListForTriageFunc = func(ctx context.Context, orgID string, includeTriaged bool, limit int) ([]*ticket.Ticket, error) {
		gotInclude, gotLimit = includeTriaged, limit
		return nil, nil
	}
	uc := NewBulkTriageUseCase(f.repo, f.orgs, &mockCompleter{}, &mockRecorder{}, settings, logger.NewNopLogger())

	_, err := uc.Execute(context.Background(), BulkTriageCommand{Caller: owner, OrganizationID: f.org.ID(), IncludeTriaged: true})
	require.NoError(t, err)
	assert.True(t, gotInclude)
	assert.Equal(t, 50, gotLimit)
}

func TestBulkTriageUseCase_UnparseableAppliesNothing(t *testing.T) {
	f := newFixture(t, 2)
	completer := &mockCompleter{CompleteFunc: func(ctx context.Context, req triage.CompletionRequest) (string, error) {
		return "Sorry, I can't help with that.", nil
	}}
	uc := NewBulkTriageUseCase(f.repo, f.orgs, completer, &mockRecorder{}, settings, logger.NewNopLogger())

	result, err := uc.Execute(context.Background(), BulkTriageCommand{Caller: owner, OrganizationID: f.org.ID()})
	require.NoError(t, err)
	assert.Equal(t, 0, result.UpdatedCount)
	assert.NotNil(t, result.AppliedResults)
	assert.Empty(t, result.AppliedResults)
	assert.Empty(t, f.applied)
}

func TestBulkTriageUseCase_Errors(t *testing.T) {
	tests := []struct {
		name      string
		caller    *access.Caller
		orgID     func(f *fixture) string
		completer *mockCompleter
		check     func(error) bool
	}{
		{"anonymous", nil, func(f *fixture) string { return f.org.ID() }, &mockCompleter{}, errors.IsUnauthorizedError},
		{"not owner", stranger, func(f *fixture) string { return f.org.ID() }, &mockCompleter{}, errors.IsForbiddenError},
		{"missing org", owner, func(f *fixture) string { return "org_missing" }, &mockCompleter{}, errors.IsNotFoundError},
		{
			"upstream failure", owner, func(f *fixture) string { return f.org.ID() },
			&mockCompleter{CompleteFunc: func(ctx context.Context, req triage.CompletionRequest) (string, error) {
				return "", fmt.Errorf("connection refused")
			}},
			errors.IsUpstreamError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, 2)
			uc := NewBulkTriageUseCase(f.repo, f.orgs, tt.completer, &mockRecorder{}, settings, logger.NewNopLogger())

			_, err := uc.Execute(context.Background(), BulkTriageCommand{Caller: tt.caller, OrganizationID: tt.orgID(f)})
			require.Error(t, err)
			assert.True(t, tt.check(err))
			assert.Empty(t, f.applied)
		})
	}
}

func TestTriageTicketUseCase_Execute(t *testing.T) {
	f := newFixture(t, 0)
	tk, err := ticket.NewTicket(f.org.ID(), "user_reporter", "Broken layout", "see screenshot", vo.TagTweak, "", []byte("\x89PNG\r\n\x1a\n"))
	require.NoError(t, err)
	f.tickets = append(f.tickets, tk)

	completer := &mockCompleter{CompleteFunc: func(ctx context.Context, req triage.CompletionRequest) (string, error) {
		return `Sure: {"priority": "medium", "type": "bug"}`, nil
	}}
	uc := NewTriageTicketUseCase(f.repo, f.orgs, completer, &mockRecorder{}, settings, logger.NewNopLogger())

	result, err := uc.Execute(context.Background(), TriageTicketCommand{Caller: owner, TicketID: tk.ID()})
	require.NoError(t, err)

	assert.Equal(t, "medium", result.Priority)
	assert.Equal(t, "bug", result.Tag)
	assert.Equal(t, "triaged", result.TriageStatus)
	assert.False(t, result.LastTriagedAt.IsZero())
	assert.Equal(t, []ticket.TriageUpdate{{TicketID: tk.ID(), Priority: vo.PriorityMedium, Tag: vo.TagBug}}, f.applied)
	require.Equal(t, 1, completer.calls())
	assert.Equal(t, tk.Image(), completer.requests[0].Image)
}

func TestTriageTicketUseCase_ParseError(t *testing.T) {
	f := newFixture(t, 1)
	completer := &mockCompleter{CompleteFunc: func(ctx context.Context, req triage.CompletionRequest) (string, error) {
		return `{"priority": "whenever", "type": "bug"}`, nil
	}}
	rec := &mockRecorder{}
	uc := NewTriageTicketUseCase(f.repo, f.orgs, completer, rec, settings, logger.NewNopLogger())

	_, err := uc.Execute(context.Background(), TriageTicketCommand{Caller: owner, TicketID: f.tickets[0].ID()})
	require.Error(t, err)
	assert.True(t, errors.IsParseError(err))
	assert.Empty(t, f.applied)
	assert.False(t, f.tickets[0].IsTriaged())
	assert.Equal(t, []string{"triage_ticket:fail"}, rec.events)
}

func TestTriageTicketUseCase_Denied(t *testing.T) {
	f := newFixture(t, 1)
	completer := &mockCompleter{}
	uc := NewTriageTicketUseCase(f.repo, f.orgs, completer, &mockRecorder{}, settings, logger.NewNopLogger())

	_, err := uc.Execute(context.Background(), TriageTicketCommand{Caller: stranger, TicketID: f.tickets[0].ID()})
	assert.True(t, errors.IsForbiddenError(err))

	_, err = uc.Execute(context.Background(), TriageTicketCommand{Caller: owner, TicketID: "tkt_missing"})
	assert.True(t, errors.IsNotFoundError(err))

	assert.Equal(t, 0, completer.calls())
}

func TestSummarizeUseCase_Execute(t *testing.T) {
	f := newFixture(t, 2)
	completer := &mockCompleter{CompleteFunc: func(ctx context.Context, req triage.CompletionRequest) (string, error) {
		return "## Themes\n\n- crashes <script>alert(1)</script>\n", nil
	}}
	uc := NewSummarizeUseCase(f.repo, f.orgs, completer, markdown.NewRenderer(), &mockRecorder{}, settings, logger.NewNopLogger())

	result, err := uc.Execute(context.Background(), SummarizeCommand{Caller: owner, OrganizationID: f.org.ID()})
	require.NoError(t, err)

	assert.Equal(t, 2, result.TicketCount)
	assert.True(t, strings.HasPrefix(result.Summary, "## Themes"))
	assert.Contains(t, result.SummaryHTML, "<h2")
	assert.NotContains(t, result.SummaryHTML, "<script")
	assert.Equal(t, "summary-model", completer.requests[0].Model)
	assert.Contains(t, completer.requests[0].Prompt, f.tickets[0].Title())
}

func TestSummarizeUseCase_Empty(t *testing.T) {
	f := newFixture(t, 0)
	completer := &mockCompleter{}
	uc := NewSummarizeUseCase(f.repo, f.orgs, completer, markdown.NewRenderer(), &mockRecorder{}, settings, logger.NewNopLogger())

	result, err := uc.Execute(context.Background(), SummarizeCommand{Caller: owner, OrganizationID: f.org.ID()})
	require.NoError(t, err)
	assert.Equal(t, SummarizeResult{}, *result)
	assert.Equal(t, 0, completer.calls())
}

func TestSummarizeUseCase_Upstream(t *testing.T) {
	f := newFixture(t, 1)
	completer := &mockCompleter{CompleteFunc: func(ctx context.Context, req triage.CompletionRequest) (string, error) {
		return "", errors.NewUpstreamError("AI service unavailable")
	}}
	uc := NewSummarizeUseCase(f.repo, f.orgs, completer, markdown.NewRenderer(), &mockRecorder{}, settings, logger.NewNopLogger())

	_, err := uc.Execute(context.Background(), SummarizeCommand{Caller: owner, OrganizationID: f.org.ID()})
	assert.True(t, errors.IsUpstreamError(err))
}

func TestRedditDigestUseCase_Execute(t *testing.T) {
	f := newFixture(t, 0)
	var gotQuery string
	var gotLimit int
	posts := &mockPostSource{SearchFunc: func(ctx context.Context, query string, limit int) ([]triage.Post, error) {
		gotQuery, gotLimit = query, limit
		return []triage.Post{{ID: "p1", Title: "Acme broke my workflow", Subreddit: "saas"}}, nil
	}}
	completer := &mockCompleter{CompleteFunc: func(ctx context.Context, req triage.CompletionRequest) (string, error) {
		return "Mostly **negative** this week.", nil
	}}
	uc := NewRedditDigestUseCase(f.orgs, posts, completer, markdown.NewRenderer(), &mockRecorder{}, settings, logger.NewNopLogger())

	result, err := uc.Execute(context.Background(), RedditDigestCommand{Caller: owner, OrganizationID: f.org.ID()})
	require.NoError(t, err)

	assert.Equal(t, "Acme", gotQuery)
	assert.Equal(t, 10, gotLimit)
	assert.Equal(t, 1, result.PostCount)
	assert.Contains(t, result.DigestHTML, "<strong>negative</strong>")
	assert.Contains(t, completer.requests[0].Prompt, "Acme broke my workflow")
}

func TestRedditDigestUseCase_EmptyAndFailure(t *testing.T) {
	f := newFixture(t, 0)
	completer := &mockCompleter{}

	uc := NewRedditDigestUseCase(f.orgs, &mockPostSource{}, completer, markdown.NewRenderer(), &mockRecorder{}, settings, logger.NewNopLogger())
	result, err := uc.Execute(context.Background(), RedditDigestCommand{Caller: owner, OrganizationID: f.org.ID()})
	require.NoError(t, err)
	assert.Equal(t, 0, result.PostCount)
	assert.Empty(t, result.Digest)

	failing := &mockPostSource{SearchFunc: func(ctx context.Context, query string, limit int) ([]triage.Post, error) {
		return nil, fmt.Errorf("dial tcp: i/o timeout")
	}}
	uc = NewRedditDigestUseCase(f.orgs, failing, completer, markdown.NewRenderer(), &mockRecorder{}, settings, logger.NewNopLogger())
	_, err = uc.Execute(context.Background(), RedditDigestCommand{Caller: owner, OrganizationID: f.org.ID()})
	assert.True(t, errors.IsUpstreamError(err))

	_, err = uc.Execute(context.Background(), RedditDigestCommand{Caller: stranger, OrganizationID: f.org.ID()})
	assert.True(t, errors.IsForbiddenError(err))

	assert.Equal(t, 0, completer.calls())
}
