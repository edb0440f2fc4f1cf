package triage

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pulseboard/internal/application/triage/usecases"
	"pulseboard/internal/interfaces/http/handlers/testutil"
	"pulseboard/internal/shared/constants"
	"pulseboard/internal/shared/errors"
)

type mockBulkUC struct {
	got    usecases.BulkTriageCommand
	result *usecases.BulkTriageResult
	err    error
}

func (m *mockBulkUC) Execute(_ context.Context, cmd usecases.BulkTriageCommand) (*usecases.BulkTriageResult, error) {
	m.got = cmd
	return m.result, m.err
}

type mockTicketUC struct {
	result *usecases.TriageTicketResult
	err    error
}

func (m *mockTicketUC) Execute(_ context.Context, _ usecases.TriageTicketCommand) (*usecases.TriageTicketResult, error) {
	return m.result, m.err
}

type mockSummaryUC struct {
	result *usecases.SummarizeResult
	err    error
}

func (m *mockSummaryUC) Execute(_ context.Context, _ usecases.SummarizeCommand) (*usecases.SummarizeResult, error) {
	return m.result, m.err
}

type mockDigestUC struct {
	result *usecases.RedditDigestResult
	err    error
}

func (m *mockDigestUC) Execute(_ context.Context, _ usecases.RedditDigestCommand) (*usecases.RedditDigestResult, error) {
	return m.result, m.err
}

const (
	orgID    = "org_Ab12Cd34Ef56"
	ticketID = "tkt_Zx98Yw76Vu54"
)

func TestHandler_BulkTriage(t *testing.T) {
	tests := []struct {
		name        string
		query       map[string]string
		wantStatus  int
		wantInclude bool
	}{
		{"default", nil, http.StatusOK, false},
		{"all", map[string]string{"all": "true"}, http.StatusOK, true},
		{"bad flag", map[string]string{"all": "maybe"}, http.StatusBadRequest, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bulk := &mockBulkUC{result: &usecases.BulkTriageResult{
				UpdatedCount: 1,
				AppliedResults: []usecases.AppliedResult{
					{TicketID: "tkt_a", Priority: "high", Tag: "bug"},
				},
				Candidates: 3,
				Rejected:   2,
			}}
			h := NewHandler(bulk, &mockTicketUC{}, &mockSummaryUC{}, &mockDigestUC{}, testutil.NewMockLogger())

			c, w := testutil.NewTestContext(http.MethodPost, "/organizations/"+orgID+"/triage", nil)
			testutil.SetAuthContext(c, "user_owner")
			testutil.SetURLParam(c, "id", orgID)
			if tt.query != nil {
				testutil.SetQueryParams(c, tt.query)
			}

			h.BulkTriage(c)

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantStatus == http.StatusOK {
				assert.Equal(t, tt.wantInclude, bulk.got.IncludeTriaged)
				assert.Equal(t, orgID, bulk.got.OrganizationID)

				var resp testutil.APIResponse
				require.NoError(t, testutil.ParseResponse(w, &resp))
				assert.JSONEq(t, `{"updated_count":1,"applied_results":[{"ticket_id":"tkt_a","priority":"high","tag":"bug"}],`+
					`"candidates":3,"rejected":2}`, string(resp.Data))
			}
		})
	}
}

func TestHandler_TriageTicket_ParseErrorHidesDetails(t *testing.T) {
	ticketUC := &mockTicketUC{err: errors.NewParseError("AI response could not be parsed", `invalid priority "whenever"`)}
	h := NewHandler(&mockBulkUC{}, ticketUC, &mockSummaryUC{}, &mockDigestUC{}, testutil.NewMockLogger())

	c, w := testutil.NewTestContext(http.MethodPost, "/tickets/"+ticketID+"/triage", nil)
	testutil.SetAuthContext(c, "user_owner")
	testutil.SetURLParam(c, "id", ticketID)

	h.TriageTicket(c)

	assert.Equal(t, http.StatusBadGateway, w.Code)
	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.Equal(t, "parse_error", resp.Error.Type)
	assert.Equal(t, constants.ErrMsgAIUnavailable, resp.Error.Message)
	assert.Empty(t, resp.Error.Details)
}

func TestHandler_Summarize(t *testing.T) {
	summary := &mockSummaryUC{result: &usecases.SummarizeResult{Summary: "# Hi", SummaryHTML: "<h1>Hi</h1>", TicketCount: 4}}
	h := NewHandler(&mockBulkUC{}, &mockTicketUC{}, summary, &mockDigestUC{}, testutil.NewMockLogger())

	c, w := testutil.NewTestContext(http.MethodPost, "/organizations/"+orgID+"/summary", nil)
	testutil.SetAuthContext(c, "user_owner")
	testutil.SetURLParam(c, "id", orgID)

	h.Summarize(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	var result usecases.SummarizeResult
	require.NoError(t, json.Unmarshal(resp.Data, &result))
	assert.Equal(t, 4, result.TicketCount)
	assert.Equal(t, "<h1>Hi</h1>", result.SummaryHTML)
}

func TestHandler_RedditDigest_Upstream(t *testing.T) {
	digest := &mockDigestUC{err: errors.NewUpstreamError(constants.ErrMsgAIUnavailable)}
	h := NewHandler(&mockBulkUC{}, &mockTicketUC{}, &mockSummaryUC{}, digest, testutil.NewMockLogger())

	c, w := testutil.NewTestContext(http.MethodPost, "/organizations/"+orgID+"/reddit-digest", nil)
	testutil.SetAuthContext(c, "user_owner")
	testutil.SetURLParam(c, "id", orgID)

	h.RedditDigest(c)

	assert.Equal(t, http.StatusBadGateway, w.Code)
}
