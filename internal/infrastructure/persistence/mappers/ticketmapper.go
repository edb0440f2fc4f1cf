package mappers

import (
	"fmt"
	"time"

	"pulseboard/internal/domain/ticket"
	vo "pulseboard/internal/domain/ticket/valueobjects"
	"pulseboard/internal/infrastructure/persistence/models"
)

// TicketMapper converts between the Ticket entity and its model.
type TicketMapper interface {
	ToModel(t *ticket.Ticket) *models.TicketModel
	ToDomain(m *models.TicketModel) (*ticket.Ticket, error)
	ToDomainList(ms []*models.TicketModel) ([]*ticket.Ticket, error)
}

type TicketMapperImpl struct{}

func NewTicketMapper() TicketMapper {
	return &TicketMapperImpl{}
}

func (m *TicketMapperImpl) ToModel(t *ticket.Ticket) *models.TicketModel {
	model := &models.TicketModel{
		ID:             t.ID(),
		OrganizationID: t.OrganizationID(),
		ReportedBy:     t.ReportedBy(),
		Title:          t.Title(),
		Description:    t.Description(),
		Image:          t.Image(),
		Votes:          t.Votes(),
		Priority:       t.Priority().String(),
		Status:         t.Status().String(),
		Tag:            t.Tag().String(),
		CreatedAt:      t.CreatedAt(),
		UpdatedAt:      t.UpdatedAt(),
	}

	if ts := t.TriageStatus(); ts != "" {
		s := ts.String()
		model.TriageStatus = &s
	}
	if at := t.LastTriagedAt(); at != nil {
		v := *at
		model.LastTriagedAt = &v
	}
	return model
}

func (m *TicketMapperImpl) ToDomain(model *models.TicketModel) (*ticket.Ticket, error) {
	var triageStatus vo.TriageStatus
	if model.TriageStatus != nil {
		triageStatus = vo.TriageStatus(*model.TriageStatus)
	}

	var lastTriagedAt *time.Time
	if model.LastTriagedAt != nil {
		v := model.LastTriagedAt.UTC()
		lastTriagedAt = &v
	}

	t, err := ticket.ReconstructTicket(
		model.ID,
		model.OrganizationID,
		model.ReportedBy,
		model.Title,
		model.Description,
		model.Image,
		model.Votes,
		vo.Priority(model.Priority),
		vo.TicketStatus(model.Status),
		vo.Tag(model.Tag),
		triageStatus,
		lastTriagedAt,
		model.CreatedAt.UTC(),
		model.UpdatedAt.UTC(),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct ticket %s: %w", model.ID, err)
	}
	return t, nil
}

func (m *TicketMapperImpl) ToDomainList(ms []*models.TicketModel) ([]*ticket.Ticket, error) {
	out := make([]*ticket.Ticket, 0, len(ms))
	for _, model := range ms {
		t, err := m.ToDomain(model)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, nil
}
