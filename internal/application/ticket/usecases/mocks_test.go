package usecases

import (
	"context"
	"sync"
	"time"

	"pulseboard/internal/domain/organization"
	"pulseboard/internal/domain/ticket"
	"pulseboard/internal/domain/vote"
	"pulseboard/internal/shared/logger"
)

type mockTicketRepository struct {
	CreateFunc             func(ctx context.Context, t *ticket.Ticket) error
	UpdateContentFunc      func(ctx context.Context, t *ticket.Ticket) error
	UpdateStatusFunc       func(ctx context.Context, t *ticket.Ticket) error
	DeleteFunc             func(ctx context.Context, id string) error
	GetByIDFunc            func(ctx context.Context, id string) (*ticket.Ticket, error)
	GetVotesFunc           func(ctx context.Context, id string) (int, error)
	GetImageFunc           func(ctx context.Context, id string) ([]byte, error)
	ListFunc               func(ctx context.Context, filter ticket.Filter) ([]*ticket.Ticket, int64, error)
	ListForTriageFunc      func(ctx context.Context, orgID string, includeTriaged bool, limit int) ([]*ticket.Ticket, error)
	ListByOrganizationFunc func(ctx context.Context, orgID string) ([]*ticket.Ticket, error)
	ApplyTriageFunc        func(ctx context.Context, orgID string, items []ticket.TriageUpdate, at time.Time) ([]ticket.TriageUpdate, error)
}

func (m *mockTicketRepository) Create(ctx context.Context, t *ticket.Ticket) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, t)
	}
	return nil
}

func (m *mockTicketRepository) UpdateContent(ctx context.Context, t *ticket.Ticket) error {
	if m.UpdateContentFunc != nil {
		return m.UpdateContentFunc(ctx, t)
	}
	return nil
}

func (m *mockTicketRepository) UpdateStatus(ctx context.Context, t *ticket.Ticket) error {
	if m.UpdateStatusFunc != nil {
		return m.UpdateStatusFunc(ctx, t)
	}
	return nil
}

func (m *mockTicketRepository) Delete(ctx context.Context, id string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *mockTicketRepository) GetByID(ctx context.Context, id string) (*ticket.Ticket, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockTicketRepository) GetVotes(ctx context.Context, id string) (int, error) {
	if m.GetVotesFunc != nil {
		return m.GetVotesFunc(ctx, id)
	}
	return 0, nil
}

func (m *mockTicketRepository) GetImage(ctx context.Context, id string) ([]byte, error) {
	if m.GetImageFunc != nil {
		return m.GetImageFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockTicketRepository) List(ctx context.Context, filter ticket.Filter) ([]*ticket.Ticket, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, 0, nil
}

func (m *mockTicketRepository) ListForTriage(ctx context.Context, orgID string, includeTriaged bool, limit int) ([]*ticket.Ticket, error) {
	if m.ListForTriageFunc != nil {
		return m.ListForTriageFunc(ctx, orgID, includeTriaged, limit)
	}
	return nil, nil
}

func (m *mockTicketRepository) ListByOrganization(ctx context.Context, orgID string) ([]*ticket.Ticket, error) {
	if m.ListByOrganizationFunc != nil {
		return m.ListByOrganizationFunc(ctx, orgID)
	}
	return nil, nil
}

func (m *mockTicketRepository) ApplyTriage(ctx context.Context, orgID string, items []ticket.TriageUpdate, at time.Time) ([]ticket.TriageUpdate, error) {
	if m.ApplyTriageFunc != nil {
		return m.ApplyTriageFunc(ctx, orgID, items, at)
	}
	return items, nil
}

type mockOrganizationRepository struct {
	organization.Repository
	GetByIDFunc func(ctx context.Context, id string) (*organization.Organization, error)
}

func (m *mockOrganizationRepository) GetByID(ctx context.Context, id string) (*organization.Organization, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

type mockLedger struct {
	AddFunc            func(ctx context.Context, v *vote.Vote) error
	RemoveFunc         func(ctx context.Context, userID, ticketID string) (bool, error)
	ExistsFunc         func(ctx context.Context, userID, ticketID string) (bool, error)
	VotedTicketIDsFunc func(ctx context.Context, userID string, ticketIDs []string) (map[string]bool, error)
	CountByTicketFunc  func(ctx context.Context, ticketID string) (int64, error)
}

func (m *mockLedger) Add(ctx context.Context, v *vote.Vote) error {
	if m.AddFunc != nil {
		return m.AddFunc(ctx, v)
	}
	return nil
}

func (m *mockLedger) Remove(ctx context.Context, userID, ticketID string) (bool, error) {
	if m.RemoveFunc != nil {
		return m.RemoveFunc(ctx, userID, ticketID)
	}
	return false, nil
}

func (m *mockLedger) Exists(ctx context.Context, userID, ticketID string) (bool, error) {
	if m.ExistsFunc != nil {
		return m.ExistsFunc(ctx, userID, ticketID)
	}
	return false, nil
}

func (m *mockLedger) VotedTicketIDs(ctx context.Context, userID string, ticketIDs []string) (map[string]bool, error) {
	if m.VotedTicketIDsFunc != nil {
		return m.VotedTicketIDsFunc(ctx, userID, ticketIDs)
	}
	return map[string]bool{}, nil
}

func (m *mockLedger) CountByTicket(ctx context.Context, ticketID string) (int64, error) {
	if m.CountByTicketFunc != nil {
		return m.CountByTicketFunc(ctx, ticketID)
	}
	return 0, nil
}

// mockLogger records warn and error messages.
type mockLogger struct {
	mu     sync.Mutex
	warns  []string
	errors []string
}

func (m *mockLogger) Debug(msg string, args ...any) {}
func (m *mockLogger) Info(msg string, args ...any)  {}
func (m *mockLogger) Warn(msg string, args ...any)  { m.record(&m.warns, msg) }
func (m *mockLogger) Error(msg string, args ...any) { m.record(&m.errors, msg) }
func (m *mockLogger) With(args ...any) logger.Interface {
	return m
}
func (m *mockLogger) Named(name string) logger.Interface {
	return m
}
func (m *mockLogger) Debugw(msg string, keysAndValues ...any) {}
func (m *mockLogger) Infow(msg string, keysAndValues ...any)  {}
func (m *mockLogger) Warnw(msg string, keysAndValues ...any)  { m.record(&m.warns, msg) }
func (m *mockLogger) Errorw(msg string, keysAndValues ...any) { m.record(&m.errors, msg) }

func (m *mockLogger) record(into *[]string, msg string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	*into = append(*into, msg)
}
