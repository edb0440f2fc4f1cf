package usecases

import (
	"context"
	"sync"
	"time"

	"pulseboard/internal/application/triage"
	"pulseboard/internal/domain/organization"
	"pulseboard/internal/domain/ticket"
)

type mockTicketRepository struct {
	ticket.Repository
	GetByIDFunc            func(ctx context.Context, id string) (*ticket.Ticket, error)
	ListForTriageFunc      func(ctx context.Context, orgID string, includeTriaged bool, limit int) ([]*ticket.Ticket, error)
	ListByOrganizationFunc func(ctx context.Context, orgID string) ([]*ticket.Ticket, error)
	ApplyTriageFunc        func(ctx context.Context, orgID string, items []ticket.TriageUpdate, at time.Time) ([]ticket.TriageUpdate, error)
}

func (m *mockTicketRepository) GetByID(ctx context.Context, id string) (*ticket.Ticket, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
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

type mockCompleter struct {
	CompleteFunc func(ctx context.Context, req triage.CompletionRequest) (string, error)

	mu       sync.Mutex
	requests []triage.CompletionRequest
}

func (m *mockCompleter) Complete(ctx context.Context, req triage.CompletionRequest) (string, error) {
	m.mu.Lock()
	m.requests = append(m.requests, req)
	m.mu.Unlock()
	if m.CompleteFunc != nil {
		return m.CompleteFunc(ctx, req)
	}
	return "", nil
}

func (m *mockCompleter) calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.requests)
}

type mockPostSource struct {
	SearchFunc func(ctx context.Context, query string, limit int) ([]triage.Post, error)
}

func (m *mockPostSource) Search(ctx context.Context, query string, limit int) ([]triage.Post, error) {
	if m.SearchFunc != nil {
		return m.SearchFunc(ctx, query, limit)
	}
	return nil, nil
}

type mockRecorder struct {
	mu     sync.Mutex
	events []string
}

func (m *mockRecorder) RecordAIRequest(operation string, success bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if success {
		m.events = append(m.events, operation+":ok")
		return
	}
	m.events = append(m.events, operation+":fail")
}
