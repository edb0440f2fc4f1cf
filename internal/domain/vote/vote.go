// Package vote records one user's endorsement of one ticket.
package vote

import (
	"fmt"
	"time"

	"pulseboard/internal/shared/id"
)

// Vote rows are created and destroyed by the toggle, never updated.
type Vote struct {
	id        string
	userID    string
	ticketID  string
	createdAt time.Time
	updatedAt time.Time
}

func NewVote(userID, ticketID string) (*Vote, error) {
	if userID == "" {
		return nil, fmt.Errorf("user ID is required")
	}
	if ticketID == "" {
		return nil, fmt.Errorf("ticket ID is required")
	}
	voteID, err := id.NewVoteID()
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	return &Vote{id: voteID, userID: userID, ticketID: ticketID, createdAt: now, updatedAt: now}, nil
}

func ReconstructVote(voteID, userID, ticketID string, createdAt, updatedAt time.Time) *Vote {
	return &Vote{id: voteID, userID: userID, ticketID: ticketID, createdAt: createdAt, updatedAt: updatedAt}
}

func (v *Vote) ID() string           { return v.id }
func (v *Vote) UserID() string       { return v.userID }
func (v *Vote) TicketID() string     { return v.ticketID }
func (v *Vote) CreatedAt() time.Time { return v.createdAt }
func (v *Vote) UpdatedAt() time.Time { return v.updatedAt }
