package usecases

import (
	"context"

	"pulseboard/internal/domain/access"
	"pulseboard/internal/domain/vote"
	"pulseboard/internal/shared/logger"
)

type HasVotedUseCase struct {
	ledger vote.Ledger
	logger logger.Interface
}

func NewHasVotedUseCase(ledger vote.Ledger, logger logger.Interface) *HasVotedUseCase {
	return &HasVotedUseCase{ledger: ledger, logger: logger}
}

// Execute is false without error for anonymous callers.
func (uc *HasVotedUseCase) Execute(ctx context.Context, caller *access.Caller, ticketID string) (bool, error) {
	if !caller.Authenticated() {
		return false, nil
	}
	voted, err := uc.ledger.Exists(ctx, caller.ID, ticketID)
	if err != nil {
		uc.logger.Errorw("failed to check vote", "ticket_id", ticketID, "user_id", caller.ID, "error", err)
		return false, err
	}
	return voted, nil
}

// ListVotedUseCase is the batch form of HasVotedUseCase.
type ListVotedUseCase struct {
	ledger vote.Ledger
	logger logger.Interface
}

func NewListVotedUseCase(ledger vote.Ledger, logger logger.Interface) *ListVotedUseCase {
	return &ListVotedUseCase{ledger: ledger, logger: logger}
}

func (uc *ListVotedUseCase) Execute(ctx context.Context, caller *access.Caller, ticketIDs []string) (map[string]bool, error) {
	if !caller.Authenticated() || len(ticketIDs) == 0 {
		return map[string]bool{}, nil
	}
	voted, err := uc.ledger.VotedTicketIDs(ctx, caller.ID, ticketIDs)
	if err != nil {
		uc.logger.Errorw("failed to list votes", "user_id", caller.ID, "error", err)
		return nil, err
	}
	return voted, nil
}
