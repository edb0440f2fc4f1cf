package usecases

import (
	"context"
	"sync"

	"pulseboard/internal/domain/ticket"
	"pulseboard/internal/domain/vote"
)

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

// mockTicketRepository implements only the counter read.
type mockTicketRepository struct {
	ticket.Repository
	GetVotesFunc func(ctx context.Context, id string) (int, error)
}

func (m *mockTicketRepository) GetVotes(ctx context.Context, id string) (int, error) {
	if m.GetVotesFunc != nil {
		return m.GetVotesFunc(ctx, id)
	}
	return 0, nil
}

type mockRecorder struct {
	mu      sync.Mutex
	results []string
}

func (m *mockRecorder) RecordVoteToggle(result string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.results = append(m.results, result)
}
