package usecases

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pulseboard/internal/domain/access"
	"pulseboard/internal/domain/organization"
	"pulseboard/internal/domain/ticket"
	vo "pulseboard/internal/domain/ticket/valueobjects"
	"pulseboard/internal/shared/errors"
	"pulseboard/internal/shared/services/markdown"
)

var (
	orgOwner = &access.Caller{ID: "user_owner"}
	reporter = &access.Caller{ID: "user_reporter"}
	voter    = &access.Caller{ID: "user_voter"}
)

func newOrg(t *testing.T) *organization.Organization {
	t.Helper()
	org, err := organization.NewOrganization("Acme", "", "", "", nil, orgOwner.ID)
	require.NoError(t, err)
	return org
}

func newTicket(t *testing.T, orgID string) *ticket.Ticket {
	t.Helper()
	tk, err := ticket.NewTicket(orgID, reporter.ID, "Crash on save", "Steps to reproduce", vo.TagBug, "", nil)
	require.NoError(t, err)
	return tk
}

func orgRepoWith(org *organization.Organization) *mockOrganizationRepository {
	return &mockOrganizationRepository{
		GetByIDFunc: func(ctx context.Context, id string) (*organization.Organization, error) {
			if org != nil && id == org.ID() {
				return org, nil
			}
			return nil, nil
		},
	}
}

func ticketRepoWith(tk *ticket.Ticket) *mockTicketRepository {
	return &mockTicketRepository{
		GetByIDFunc: func(ctx context.Context, id string) (*ticket.Ticket, error) {
			if tk != nil && id == tk.ID() {
				return tk, nil
			}
			return nil, nil
		},
	}
}

func TestCreateTicketUseCase_Execute(t *testing.T) {
	org := newOrg(t)
	var saved *ticket.Ticket
	repo := &mockTicketRepository{
		CreateFunc: func(ctx context.Context, tk *ticket.Ticket) error {
			saved = tk
			return nil
		},
	}
	uc := NewCreateTicketUseCase(repo, orgRepoWith(org), markdown.NewRenderer(), &mockLogger{})

	result, err := uc.Execute(context.Background(), CreateTicketCommand{
		Caller:         reporter,
		OrganizationID: org.ID(),
		Title:          "<script>x</script>Dark mode",
		Description:    "Please add <i>dark</i> mode",
		Tag:            "feature",
	})

	require.NoError(t, err)
	require.NotNil(t, saved)
	assert.Equal(t, "Dark mode", result.Title)
	assert.Equal(t, "Please add dark mode", result.Description)
	assert.Equal(t, "open", result.Status)
	assert.Equal(t, "none", result.Priority)
	assert.Equal(t, "pending", result.TriageStatus)
	assert.Equal(t, 0, result.Votes)
	assert.Equal(t, reporter.ID, saved.ReportedBy())
}

func TestCreateTicketUseCase_Errors(t *testing.T) {
	org := newOrg(t)

	tests := []struct {
		name  string
		cmd   CreateTicketCommand
		check func(error) bool
	}{
		{"unauthenticated", CreateTicketCommand{OrganizationID: org.ID(), Title: "t", Description: "d", Tag: "bug"}, errors.IsUnauthorizedError},
		{"unknown organization", CreateTicketCommand{Caller: reporter, OrganizationID: "org_missing", Title: "t", Description: "d", Tag: "bug"}, errors.IsNotFoundError},
		{"invalid tag", CreateTicketCommand{Caller: reporter, OrganizationID: org.ID(), Title: "t", Description: "d", Tag: "question"}, errors.IsValidationError},
		{"long title", CreateTicketCommand{Caller: reporter, OrganizationID: org.ID(), Title: strings.Repeat("t", 201), Description: "d", Tag: "bug"}, errors.IsValidationError},
		{"empty description", CreateTicketCommand{Caller: reporter, OrganizationID: org.ID(), Title: "t", Description: "<p></p>", Tag: "bug"}, errors.IsValidationError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &mockTicketRepository{
				CreateFunc: func(ctx context.Context, tk *ticket.Ticket) error {
					t.Fatal("create must not be called")
					return nil
				},
			}
			uc := NewCreateTicketUseCase(repo, orgRepoWith(org), markdown.NewRenderer(), &mockLogger{})

			_, err := uc.Execute(context.Background(), tt.cmd)
			require.Error(t, err)
			assert.True(t, tt.check(err), err.Error())
		})
	}
}

func TestUpdateTicketUseCase_Execute(t *testing.T) {
	tk := newTicket(t, "org_1")
	repo := ticketRepoWith(tk)
	updated := false
	repo.UpdateContentFunc = func(ctx context.Context, got *ticket.Ticket) error {
		updated = true
		return nil
	}
	uc := NewUpdateTicketUseCase(repo, &mockLedger{}, markdown.NewRenderer(), &mockLogger{})

	title := "Crash on save (Windows)"
	result, err := uc.Execute(context.Background(), UpdateTicketCommand{Caller: reporter, TicketID: tk.ID(), Title: &title})
	require.NoError(t, err)
	assert.True(t, updated)
	assert.Equal(t, title, result.Title)
	assert.Equal(t, "Steps to reproduce", result.Description)

	log := &mockLogger{}
	uc = NewUpdateTicketUseCase(repo, &mockLedger{}, markdown.NewRenderer(), log)
	_, err = uc.Execute(context.Background(), UpdateTicketCommand{Caller: orgOwner, TicketID: tk.ID(), Title: &title})
	require.Error(t, err)
	assert.True(t, errors.IsForbiddenError(err), "the organization owner is not the reporter")
	assert.Equal(t, "not-reporter", errors.GetAppError(err).Details)
	assert.NotEmpty(t, log.warns)
}

func TestDeleteTicketUseCase_Execute(t *testing.T) {
	tk := newTicket(t, "org_1")

	tests := []struct {
		name       string
		caller     *access.Caller
		ticketID   string
		wantDelete bool
		check      func(error) bool
	}{
		{"reporter deletes", reporter, tk.ID(), true, nil},
		{"other user", voter, tk.ID(), false, errors.IsForbiddenError},
		{"anonymous", nil, tk.ID(), false, errors.IsUnauthorizedError},
		{"missing", reporter, "tkt_missing", false, errors.IsNotFoundError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			deleted := ""
			repo := ticketRepoWith(tk)
			repo.DeleteFunc = func(ctx context.Context, id string) error {
				deleted = id
				return nil
			}

			err := NewDeleteTicketUseCase(repo, &mockLogger{}).Execute(context.Background(), DeleteTicketCommand{Caller: tt.caller, TicketID: tt.ticketID})
			if tt.check == nil {
				require.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.True(t, tt.check(err))
			}
			assert.Equal(t, tt.wantDelete, deleted != "")
		})
	}
}

func TestChangeStatusUseCase_Execute(t *testing.T) {
	org := newOrg(t)

	tests := []struct {
		name   string
		caller *access.Caller
		status string
		check  func(error) bool
	}{
		{"owner closes", orgOwner, "closed", nil},
		{"owner reopens", orgOwner, "open", nil},
		{"reporter cannot", reporter, "closed", errors.IsForbiddenError},
		{"anonymous", nil, "closed", errors.IsUnauthorizedError},
		{"bad status", orgOwner, "done", errors.IsValidationError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tk := newTicket(t, org.ID())
			repo := ticketRepoWith(tk)
			var persisted vo.TicketStatus
			repo.UpdateStatusFunc = func(ctx context.Context, got *ticket.Ticket) error {
				persisted = got.Status()
				return nil
			}
			uc := NewChangeStatusUseCase(repo, orgRepoWith(org), &mockLedger{}, &mockLogger{})

			result, err := uc.Execute(context.Background(), ChangeStatusCommand{Caller: tt.caller, TicketID: tk.ID(), Status: tt.status})
			if tt.check != nil {
				require.Error(t, err)
				assert.True(t, tt.check(err))
				assert.Empty(t, persisted)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.status, result.Status)
			assert.Equal(t, vo.TicketStatus(tt.status), persisted)
		})
	}
}

func TestGetTicketUseCase_Execute(t *testing.T) {
	tk := newTicket(t, "org_1")
	ledger := &mockLedger{
		ExistsFunc: func(ctx context.Context, userID, ticketID string) (bool, error) {
			return userID == voter.ID, nil
		},
	}
	uc := NewGetTicketUseCase(ticketRepoWith(tk), ledger, &mockLogger{})

	result, err := uc.Execute(context.Background(), GetTicketQuery{Caller: voter, TicketID: tk.ID()})
	require.NoError(t, err)
	assert.True(t, result.HasVoted)

	result, err = uc.Execute(context.Background(), GetTicketQuery{TicketID: tk.ID()})
	require.NoError(t, err)
	assert.False(t, result.HasVoted)

	_, err = uc.Execute(context.Background(), GetTicketQuery{TicketID: "tkt_missing"})
	assert.True(t, errors.IsNotFoundError(err))
}

func TestListTicketsUseCase_Execute(t *testing.T) {
	org := newOrg(t)
	first, second := newTicket(t, org.ID()), newTicket(t, org.ID())

	var got ticket.Filter
	repo := &mockTicketRepository{
		ListFunc: func(ctx context.Context, filter ticket.Filter) ([]*ticket.Ticket, int64, error) {
			got = filter
			return []*ticket.Ticket{first, second}, 2, nil
		},
	}
	var askedIDs []string
	ledger := &mockLedger{
		VotedTicketIDsFunc: func(ctx context.Context, userID string, ids []string) (map[string]bool, error) {
			askedIDs = ids
			return map[string]bool{second.ID(): true}, nil
		},
	}
	uc := NewListTicketsUseCase(repo, orgRepoWith(org), ledger, &mockLogger{})

	result, err := uc.Execute(context.Background(), ListTicketsQuery{
		Caller:         voter,
		OrganizationID: org.ID(),
		Search:         " crash ",
		Status:         "open",
		Tag:            "bug",
		Sort:           "mostVoted",
	})
	require.NoError(t, err)

	assert.Equal(t, "crash", got.Search)
	assert.Equal(t, vo.SortMostVoted, got.Sort)
	require.NotNil(t, got.Status)
	assert.Equal(t, vo.StatusOpen, *got.Status)
	require.NotNil(t, got.Tag)
	assert.Equal(t, vo.TagBug, *got.Tag)
	assert.Equal(t, []string{first.ID(), second.ID()}, askedIDs)

	require.Len(t, result.Tickets, 2)
	assert.False(t, result.Tickets[0].HasVoted)
	assert.True(t, result.Tickets[1].HasVoted)
	assert.Empty(t, result.Tickets[0].Image)
}

func TestListTicketsUseCase_Defaults(t *testing.T) {
	org := newOrg(t)
	var got ticket.Filter
	repo := &mockTicketRepository{
		ListFunc: func(ctx context.Context, filter ticket.Filter) ([]*ticket.Ticket, int64, error) {
			got = filter
			return nil, 0, nil
		},
	}
	ledger := &mockLedger{
		VotedTicketIDsFunc: func(ctx context.Context, userID string, ids []string) (map[string]bool, error) {
			t.Fatal("anonymous callers never query votes")
			return nil, nil
		},
	}
	uc := NewListTicketsUseCase(repo, orgRepoWith(org), ledger, &mockLogger{})

	result, err := uc.Execute(context.Background(), ListTicketsQuery{OrganizationID: org.ID()})
	require.NoError(t, err)
	assert.Equal(t, vo.SortNewest, got.Sort)
	assert.Nil(t, got.Status)
	assert.Equal(t, 1, result.Page)
	assert.Equal(t, 20, result.PageSize)
	assert.Empty(t, result.Tickets)
}

func TestListTicketsUseCase_Invalid(t *testing.T) {
	org := newOrg(t)
	uc := NewListTicketsUseCase(&mockTicketRepository{}, orgRepoWith(org), &mockLedger{}, &mockLogger{})

	_, err := uc.Execute(context.Background(), ListTicketsQuery{OrganizationID: org.ID(), Sort: "oldest", Tag: "idea"})
	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
	assert.Contains(t, errors.GetAppError(err).Details, "sort must be one of")
	assert.Contains(t, errors.GetAppError(err).Details, "tag must be one of")

	_, err = uc.Execute(context.Background(), ListTicketsQuery{OrganizationID: "org_missing"})
	assert.True(t, errors.IsNotFoundError(err))
}

func TestListMyTicketsUseCase_Execute(t *testing.T) {
	var got ticket.Filter
	repo := &mockTicketRepository{
		ListFunc: func(ctx context.Context, filter ticket.Filter) ([]*ticket.Ticket, int64, error) {
			got = filter
			return []*ticket.Ticket{newTicket(t, "org_1")}, 1, nil
		},
	}
	uc := NewListMyTicketsUseCase(repo, &mockLedger{}, &mockLogger{})

	result, err := uc.Execute(context.Background(), ListMyTicketsQuery{Caller: reporter})
	require.NoError(t, err)
	assert.Equal(t, reporter.ID, got.ReportedBy)
	assert.Empty(t, got.OrganizationID)
	assert.Len(t, result.Tickets, 1)

	_, err = uc.Execute(context.Background(), ListMyTicketsQuery{})
	assert.True(t, errors.IsUnauthorizedError(err))
}

func TestGetTicketImageUseCase_Execute(t *testing.T) {
	jpeg := []byte{0xFF, 0xD8, 0xFF, 0xE0, 0x00, 0x10, 'J', 'F', 'I', 'F'}
	repo := &mockTicketRepository{
		GetImageFunc: func(ctx context.Context, id string) ([]byte, error) {
			if id == "tkt_img" {
				return jpeg, nil
			}
			return nil, nil
		},
	}
	uc := NewGetTicketImageUseCase(repo, &mockLogger{})

	result, err := uc.Execute(context.Background(), "tkt_img")
	require.NoError(t, err)
	assert.Equal(t, "image/jpeg", result.ContentType)

	_, err = uc.Execute(context.Background(), "tkt_plain")
	assert.True(t, errors.IsNotFoundError(err))
}
