package dto

import (
	"encoding/base64"
	"time"

	"pulseboard/internal/domain/ticket"
)

type TicketDTO struct {
	ID             string     `json:"id"`
	OrganizationID string     `json:"organization_id"`
	ReportedBy     string     `json:"reported_by"`
	Title          string     `json:"title"`
	Description    string     `json:"description"`
	Image          string     `json:"image,omitempty"`
	ImageURL       string     `json:"image_url,omitempty"`
	Votes          int        `json:"votes"`
	HasVoted       bool       `json:"has_voted"`
	Priority       string     `json:"priority"`
	Status         string     `json:"status"`
	Tag            string     `json:"tag"`
	TriageStatus   string     `json:"triage_status,omitempty"`
	LastTriagedAt  *time.Time `json:"last_triaged_at,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

// ToTicketDTO includes the image as base64 when it was loaded.
func ToTicketDTO(t *ticket.Ticket, hasVoted bool) *TicketDTO {
	if t == nil {
		return nil
	}
	d := ToTicketListItemDTO(t, hasVoted)
	if t.HasImage() {
		d.Image = base64.StdEncoding.EncodeToString(t.Image())
		d.ImageURL = ImageURL(t.ID())
	}
	return d
}

func ToTicketListItemDTO(t *ticket.Ticket, hasVoted bool) *TicketDTO {
	return &TicketDTO{
		ID:             t.ID(),
		OrganizationID: t.OrganizationID(),
		ReportedBy:     t.ReportedBy(),
		Title:          t.Title(),
		Description:    t.Description(),
		Votes:          t.Votes(),
		HasVoted:       hasVoted,
		Priority:       t.Priority().String(),
		Status:         t.Status().String(),
		Tag:            t.Tag().String(),
		TriageStatus:   t.TriageStatus().String(),
		LastTriagedAt:  t.LastTriagedAt(),
		CreatedAt:      t.CreatedAt(),
		UpdatedAt:      t.UpdatedAt(),
	}
}

// ToTicketListDTO annotates each ticket with whether voted contains its id.
func ToTicketListDTO(tickets []*ticket.Ticket, voted map[string]bool) []*TicketDTO {
	out := make([]*TicketDTO, 0, len(tickets))
	for _, t := range tickets {
		out = append(out, ToTicketListItemDTO(t, voted[t.ID()]))
	}
	return out
}

func ImageURL(ticketID string) string {
	return "/tickets/" + ticketID + "/image"
}
