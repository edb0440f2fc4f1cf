package ticket

import (
	"context"
	"time"

	vo "pulseboard/internal/domain/ticket/valueobjects"
)

// Repository lookups return (nil, nil) when nothing matches. List queries
// never load images.
type Repository interface {
	Create(ctx context.Context, t *Ticket) error
	// UpdateContent persists title, description and image.
	UpdateContent(ctx context.Context, t *Ticket) error
	UpdateStatus(ctx context.Context, t *Ticket) error
	// Delete removes the ticket and its votes in one transaction.
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*Ticket, error)
	GetVotes(ctx context.Context, id string) (int, error)
	GetImage(ctx context.Context, id string) ([]byte, error)
	List(ctx context.Context, filter Filter) ([]*Ticket, int64, error)
	// ListForTriage returns the organization's candidates in prompt order,
	// createdAt ascending then id.
	ListForTriage(ctx context.Context, organizationID string, includeTriaged bool, limit int) ([]*Ticket, error)
	// ListByOrganization returns every ticket of the organization in prompt order.
	ListByOrganization(ctx context.Context, organizationID string) ([]*Ticket, error)
	// ApplyTriage writes every assessment in one transaction and returns the
	// assessments that matched a ticket of the organization.
	ApplyTriage(ctx context.Context, organizationID string, items []TriageUpdate, at time.Time) ([]TriageUpdate, error)
}

type Filter struct {
	OrganizationID string
	ReportedBy     string
	Search         string
	Status         *vo.TicketStatus
	Tag            *vo.Tag
	Sort           vo.SortMode
	Page           int
	PageSize       int
}

// TriageUpdate is one validated model assessment.
type TriageUpdate struct {
	TicketID string
	Priority vo.Priority
	Tag      vo.Tag
}
