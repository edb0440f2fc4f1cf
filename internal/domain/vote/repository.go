package vote

import (
	"context"
	"errors"
)

// ErrAlreadyVoted is returned by Add when the (user, ticket) pair already
// has a row. Nothing was changed.
var ErrAlreadyVoted = errors.New("vote: already voted")

// Ledger keeps tickets.votes equal to the number of vote rows. Counter
// changes are relative updates in the same transaction as the row change.
type Ledger interface {
	// Add inserts the vote and increments the ticket counter.
	Add(ctx context.Context, v *Vote) error
	// Remove deletes the pair's vote and decrements the counter only when a
	// row was deleted. It reports whether a row existed.
	Remove(ctx context.Context, userID, ticketID string) (bool, error)
	Exists(ctx context.Context, userID, ticketID string) (bool, error)
	// VotedTicketIDs returns the subset of ticketIDs the user has voted on.
	VotedTicketIDs(ctx context.Context, userID string, ticketIDs []string) (map[string]bool, error)
	CountByTicket(ctx context.Context, ticketID string) (int64, error)
}
