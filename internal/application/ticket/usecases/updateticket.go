package usecases

import (
	"context"

	"pulseboard/internal/application/ticket/dto"
	"pulseboard/internal/domain/access"
	"pulseboard/internal/domain/ticket"
	"pulseboard/internal/domain/vote"
	"pulseboard/internal/shared/logger"
)

// UpdateTicketCommand leaves nil fields unchanged.
type UpdateTicketCommand struct {
	Caller      *access.Caller
	TicketID    string
	Title       *string
	Description *string
	Image       []byte
	ClearImage  bool
}

type UpdateTicketUseCase struct {
	ticketRepo ticket.Repository
	ledger     vote.Ledger
	sanitizer  TextSanitizer
	logger     logger.Interface
}

func NewUpdateTicketUseCase(
	ticketRepo ticket.Repository,
	ledger vote.Ledger,
	sanitizer TextSanitizer,
	logger logger.Interface,
) *UpdateTicketUseCase {
	return &UpdateTicketUseCase{
		ticketRepo: ticketRepo,
		ledger:     ledger,
		sanitizer:  sanitizer,
		logger:     logger,
	}
}

func (uc *UpdateTicketUseCase) Execute(ctx context.Context, cmd UpdateTicketCommand) (*dto.TicketDTO, error) {
	t, err := loadEditable(ctx, uc.ticketRepo, uc.logger, cmd.Caller, cmd.TicketID)
	if err != nil {
		return nil, err
	}

	patch := ticket.ContentPatch{Image: cmd.Image, ClearImage: cmd.ClearImage}
	if cmd.Title != nil {
		title := uc.sanitizer.StripTags(*cmd.Title)
		patch.Title = &title
	}
	if cmd.Description != nil {
		description := uc.sanitizer.StripTags(*cmd.Description)
		patch.Description = &description
	}
	if err := t.UpdateContent(patch); err != nil {
		return nil, err
	}

	if err := uc.ticketRepo.UpdateContent(ctx, t); err != nil {
		uc.logger.Errorw("failed to update ticket", "ticket_id", t.ID(), "error", err)
		return nil, err
	}

	hasVoted, err := uc.ledger.Exists(ctx, cmd.Caller.ID, t.ID())
	if err != nil {
		return nil, err
	}

	uc.logger.Infow("ticket updated", "ticket_id", t.ID())
	return dto.ToTicketDTO(t, hasVoted), nil
}

// loadEditable returns the ticket when caller reported it.
func loadEditable(ctx context.Context, repo ticket.Repository, log logger.Interface, caller *access.Caller, ticketID string) (*ticket.Ticket, error) {
	if !caller.Authenticated() {
		return nil, access.CanEditTicket(caller, nil).Err()
	}

	t, err := repo.GetByID(ctx, ticketID)
	if err != nil {
		log.Errorw("failed to get ticket", "ticket_id", ticketID, "error", err)
		return nil, err
	}
	if err := access.CanEditTicket(caller, t).Err(); err != nil {
		if t != nil {
			log.Warnw("ticket edit denied", "ticket_id", ticketID, "user_id", caller.ID)
		}
		return nil, err
	}
	return t, nil
}
