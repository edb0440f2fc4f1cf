// Package ticket holds feedback items submitted against an organization.
package ticket

import (
	"fmt"
	"time"

	"pulseboard/internal/domain/shared"
	vo "pulseboard/internal/domain/ticket/valueobjects"
	"pulseboard/internal/shared/constants"
	"pulseboard/internal/shared/id"
)

const (
	MaxTitleLength       = 200
	MaxDescriptionLength = 2000
)

// Ticket. votes is the denormalized count of Vote rows and is only ever
// changed by the vote ledger at the store level, never through this entity.
type Ticket struct {
	id             string
	organizationID string
	reportedBy     string
	title          string
	description    string
	image          []byte
	votes          int
	priority       vo.Priority
	status         vo.TicketStatus
	tag            vo.Tag
	triageStatus   vo.TriageStatus
	lastTriagedAt  *time.Time
	createdAt      time.Time
	updatedAt      time.Time
}

// NewTicket creates an open, untriaged ticket with zero votes. An empty
// priority means none.
func NewTicket(
	organizationID, reportedBy, title, description string,
	tag vo.Tag,
	priority vo.Priority,
	image []byte,
) (*Ticket, error) {
	if organizationID == "" {
		return nil, fmt.Errorf("organization ID is required")
	}
	if reportedBy == "" {
		return nil, fmt.Errorf("reporter is required")
	}
	if priority == "" {
		priority = vo.PriorityNone
	}

	var f shared.FieldErrors
	validateContent(&f, title, description, image)
	if !tag.IsValid() {
		f.Add("tag must be one of [bug tweak feature]")
	}
	if !priority.IsValid() {
		f.Add("priority must be one of [none low medium high]")
	}
	if err := f.Err(); err != nil {
		return nil, err
	}

	ticketID, err := id.NewTicketID()
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	return &Ticket{
		id:             ticketID,
		organizationID: organizationID,
		reportedBy:     reportedBy,
		title:          title,
		description:    description,
		image:          image,
		votes:          0,
		priority:       priority,
		status:         vo.StatusOpen,
		tag:            tag,
		triageStatus:   vo.TriagePending,
		createdAt:      now,
		updatedAt:      now,
	}, nil
}

func ReconstructTicket(
	ticketID, organizationID, reportedBy, title, description string,
	image []byte,
	votes int,
	priority vo.Priority,
	status vo.TicketStatus,
	tag vo.Tag,
	triageStatus vo.TriageStatus,
	lastTriagedAt *time.Time,
	createdAt, updatedAt time.Time,
) (*Ticket, error) {
	if ticketID == "" {
		return nil, fmt.Errorf("ticket ID is required")
	}
	if !priority.IsValid() {
		return nil, fmt.Errorf("invalid priority: %s", priority)
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid status: %s", status)
	}
	if !tag.IsValid() {
		return nil, fmt.Errorf("invalid tag: %s", tag)
	}
	if triageStatus != "" && !triageStatus.IsValid() {
		return nil, fmt.Errorf("invalid triage status: %s", triageStatus)
	}
	if votes < 0 {
		votes = 0
	}

	return &Ticket{
		id:             ticketID,
		organizationID: organizationID,
		reportedBy:     reportedBy,
		title:          title,
		description:    description,
		image:          image,
		votes:          votes,
		priority:       priority,
		status:         status,
		tag:            tag,
		triageStatus:   triageStatus,
		lastTriagedAt:  lastTriagedAt,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
	}, nil
}

func validateContent(f *shared.FieldErrors, title, description string, image []byte) {
	f.Required("title", title, MaxTitleLength)
	f.Required("description", description, MaxDescriptionLength)
	f.MaxBytes("image", image, constants.MaxTicketImageSize)
}

func (t *Ticket) ID() string                    { return t.id }
func (t *Ticket) OrganizationID() string        { return t.organizationID }
func (t *Ticket) ReportedBy() string            { return t.reportedBy }
func (t *Ticket) Title() string                 { return t.title }
func (t *Ticket) Description() string           { return t.description }
func (t *Ticket) Image() []byte                 { return t.image }
func (t *Ticket) HasImage() bool                { return len(t.image) > 0 }
func (t *Ticket) Votes() int                    { return t.votes }
func (t *Ticket) Priority() vo.Priority         { return t.priority }
func (t *Ticket) Status() vo.TicketStatus       { return t.status }
func (t *Ticket) Tag() vo.Tag                   { return t.tag }
func (t *Ticket) TriageStatus() vo.TriageStatus { return t.triageStatus }
func (t *Ticket) LastTriagedAt() *time.Time     { return t.lastTriagedAt }
func (t *Ticket) CreatedAt() time.Time          { return t.createdAt }
func (t *Ticket) UpdatedAt() time.Time          { return t.updatedAt }

func (t *Ticket) IsReportedBy(userID string) bool {
	return userID != "" && t.reportedBy == userID
}

func (t *Ticket) IsTriaged() bool {
	return t.triageStatus == vo.TriageTriaged
}

// ContentPatch is a reporter's partial edit. Nil fields are left unchanged.
type ContentPatch struct {
	Title       *string
	Description *string
	Image       []byte
	ClearImage  bool
}

// UpdateContent validates the merged result before mutating anything.
func (t *Ticket) UpdateContent(p ContentPatch) error {
	title, description := t.title, t.description
	if p.Title != nil {
		title = *p.Title
	}
	if p.Description != nil {
		description = *p.Description
	}

	var f shared.FieldErrors
	validateContent(&f, title, description, p.Image)
	if err := f.Err(); err != nil {
		return err
	}

	t.title = title
	t.description = description
	switch {
	case p.ClearImage:
		t.image = nil
	case len(p.Image) > 0:
		t.image = p.Image
	}
	t.updatedAt = time.Now().UTC()
	return nil
}

// ChangeStatus allows any transition between the three statuses.
func (t *Ticket) ChangeStatus(status vo.TicketStatus) error {
	if !status.IsValid() {
		return fmt.Errorf("invalid status: %s", status)
	}
	t.status = status
	t.updatedAt = time.Now().UTC()
	return nil
}

// ApplyTriage records a model assessment.
func (t *Ticket) ApplyTriage(priority vo.Priority, tag vo.Tag, at time.Time) error {
	if !priority.IsValid() {
		return fmt.Errorf("invalid priority: %s", priority)
	}
	if !tag.IsValid() {
		return fmt.Errorf("invalid tag: %s", tag)
	}
	t.priority = priority
	t.tag = tag
	t.triageStatus = vo.TriageTriaged
	triagedAt := at.UTC()
	t.lastTriagedAt = &triagedAt
	t.updatedAt = triagedAt
	return nil
}

// SetVotes mirrors a counter value re-read from the store.
func (t *Ticket) SetVotes(votes int) {
	if votes < 0 {
		votes = 0
	}
	t.votes = votes
}
