package vote

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pulseboard/internal/application/vote/usecases"
	"pulseboard/internal/domain/access"
	"pulseboard/internal/interfaces/http/handlers/testutil"
	"pulseboard/internal/shared/errors"
)

type mockToggleUC struct {
	got    usecases.ToggleVoteCommand
	result *usecases.ToggleVoteResult
	err    error
}

func (m *mockToggleUC) Execute(_ context.Context, cmd usecases.ToggleVoteCommand) (*usecases.ToggleVoteResult, error) {
	m.got = cmd
	return m.result, m.err
}

type mockHasVotedUC struct {
	got    *access.Caller
	result bool
	err    error
}

func (m *mockHasVotedUC) Execute(_ context.Context, caller *access.Caller, _ string) (bool, error) {
	m.got = caller
	return m.result, m.err
}

type mockListVotedUC struct {
	got    []string
	result map[string]bool
	err    error
}

func (m *mockListVotedUC) Execute(_ context.Context, _ *access.Caller, ids []string) (map[string]bool, error) {
	m.got = ids
	return m.result, m.err
}

const ticketID = "tkt_Zx98Yw76Vu54"

func TestHandler_Toggle(t *testing.T) {
	toggle := &mockToggleUC{result: &usecases.ToggleVoteResult{Voted: true, Votes: 3}}
	h := NewHandler(toggle, &mockHasVotedUC{}, &mockListVotedUC{}, testutil.NewMockLogger())

	c, w := testutil.NewTestContext(http.MethodPost, "/tickets/"+ticketID+"/vote", nil)
	testutil.SetAuthContext(c, "user_1")
	testutil.SetURLParam(c, "id", ticketID)

	h.Toggle(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, ticketID, toggle.got.TicketID)
	assert.Equal(t, "user_1", toggle.got.Caller.ID)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	var result usecases.ToggleVoteResult
	require.NoError(t, json.Unmarshal(resp.Data, &result))
	assert.Equal(t, usecases.ToggleVoteResult{Voted: true, Votes: 3}, result)
}

func TestHandler_Toggle_Errors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"anonymous", errors.NewUnauthorizedError("authentication required"), http.StatusUnauthorized},
		{"missing ticket", errors.NewNotFoundError("ticket not found"), http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHandler(&mockToggleUC{err: tt.err}, &mockHasVotedUC{}, &mockListVotedUC{}, testutil.NewMockLogger())
			c, w := testutil.NewTestContext(http.MethodPost, "/tickets/"+ticketID+"/vote", nil)
			testutil.SetURLParam(c, "id", ticketID)

			h.Toggle(c)

			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}

func TestHandler_HasVoted_Anonymous(t *testing.T) {
	hasVoted := &mockHasVotedUC{}
	h := NewHandler(&mockToggleUC{}, hasVoted, &mockListVotedUC{}, testutil.NewMockLogger())

	c, w := testutil.NewTestContext(http.MethodGet, "/tickets/"+ticketID+"/vote", nil)
	testutil.SetURLParam(c, "id", ticketID)

	h.HasVoted(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Nil(t, hasVoted.got)
	assert.JSONEq(t, `{"success":true,"data":{"has_voted":false}}`, w.Body.String())
}

func TestHandler_ListVoted(t *testing.T) {
	const other = "tkt_Qq11Rr22Ss33"
	listVoted := &mockListVotedUC{result: map[string]bool{ticketID: true}}
	h := NewHandler(&mockToggleUC{}, &mockHasVotedUC{}, listVoted, testutil.NewMockLogger())

	c, w := testutil.NewTestContext(http.MethodGet, "/tickets/votes", nil)
	testutil.SetAuthContext(c, "user_1")
	testutil.SetQueryParams(c, map[string]string{"ids": ticketID + ", " + other + "," + ticketID})

	h.ListVoted(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []string{ticketID, other}, listVoted.got)
	assert.JSONEq(t, `{"success":true,"data":{"voted":{"`+ticketID+`":true,"`+other+`":false}}}`, w.Body.String())
}

func TestHandler_ListVoted_Validation(t *testing.T) {
	for _, ids := range []string{"", " , ", "tkt_ok1,org_Ab12"} {
		t.Run(ids, func(t *testing.T) {
			listVoted := &mockListVotedUC{}
			h := NewHandler(&mockToggleUC{}, &mockHasVotedUC{}, listVoted, testutil.NewMockLogger())

			c, w := testutil.NewTestContext(http.MethodGet, "/tickets/votes", nil)
			testutil.SetQueryParams(c, map[string]string{"ids": ids})

			h.ListVoted(c)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Nil(t, listVoted.got)
		})
	}
}
