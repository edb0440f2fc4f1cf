package usecases

import (
	"context"
	stderrors "errors"

	"pulseboard/internal/domain/access"
	"pulseboard/internal/domain/ticket"
	"pulseboard/internal/domain/vote"
	"pulseboard/internal/shared/logger"
)

const (
	ResultAdded        = "added"
	ResultRemoved      = "removed"
	ResultAlreadyVoted = "already_voted"
)

// ToggleRecorder counts toggle outcomes.
type ToggleRecorder interface {
	RecordVoteToggle(result string)
}

type ToggleVoteCommand struct {
	Caller   *access.Caller
	TicketID string
}

type ToggleVoteResult struct {
	Voted bool `json:"voted"`
	Votes int  `json:"votes"`
}

type ToggleVoteUseCase struct {
	ledger     vote.Ledger
	ticketRepo ticket.Repository
	recorder   ToggleRecorder
	logger     logger.Interface
}

func NewToggleVoteUseCase(
	ledger vote.Ledger,
	ticketRepo ticket.Repository,
	recorder ToggleRecorder,
	logger logger.Interface,
) *ToggleVoteUseCase {
	return &ToggleVoteUseCase{
		ledger:     ledger,
		ticketRepo: ticketRepo,
		recorder:   recorder,
		logger:     logger,
	}
}

// Execute removes the caller's vote if one exists, otherwise adds one. A
// concurrent duplicate insert is reported as voted. The returned count is
// re-read from the ticket after the mutation.
func (uc *ToggleVoteUseCase) Execute(ctx context.Context, cmd ToggleVoteCommand) (*ToggleVoteResult, error) {
	if err := access.CanVote(cmd.Caller).Err(); err != nil {
		return nil, err
	}
	userID := cmd.Caller.ID

	removed, err := uc.ledger.Remove(ctx, userID, cmd.TicketID)
	if err != nil {
		uc.logger.Errorw("failed to remove vote", "ticket_id", cmd.TicketID, "user_id", userID, "error", err)
		return nil, err
	}

	outcome := ResultRemoved
	if !removed {
		v, err := vote.NewVote(userID, cmd.TicketID)
		if err != nil {
			return nil, err
		}

		outcome = ResultAdded
		if err := uc.ledger.Add(ctx, v); err != nil {
			if !stderrors.Is(err, vote.ErrAlreadyVoted) {
				uc.logger.Errorw("failed to add vote", "ticket_id", cmd.TicketID, "user_id", userID, "error", err)
				return nil, err
			}
			outcome = ResultAlreadyVoted
		}
	}

	votes, err := uc.ticketRepo.GetVotes(ctx, cmd.TicketID)
	if err != nil {
		uc.logger.Errorw("failed to read votes", "ticket_id", cmd.TicketID, "error", err)
		return nil, err
	}

	uc.recorder.RecordVoteToggle(outcome)
	uc.logger.Infow("vote toggled", "ticket_id", cmd.TicketID, "user_id", userID, "result", outcome, "votes", votes)

	return &ToggleVoteResult{Voted: outcome != ResultRemoved, Votes: votes}, nil
}
