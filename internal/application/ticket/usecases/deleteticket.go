package usecases

import (
	"context"

	"pulseboard/internal/domain/access"
	"pulseboard/internal/domain/ticket"
	"pulseboard/internal/shared/logger"
)

type DeleteTicketCommand struct {
	Caller   *access.Caller
	TicketID string
}

type DeleteTicketUseCase struct {
	ticketRepo ticket.Repository
	logger     logger.Interface
}

func NewDeleteTicketUseCase(ticketRepo ticket.Repository, logger logger.Interface) *DeleteTicketUseCase {
	return &DeleteTicketUseCase{ticketRepo: ticketRepo, logger: logger}
}

// Execute removes the ticket together with its votes.
func (uc *DeleteTicketUseCase) Execute(ctx context.Context, cmd DeleteTicketCommand) error {
	t, err := loadEditable(ctx, uc.ticketRepo, uc.logger, cmd.Caller, cmd.TicketID)
	if err != nil {
		return err
	}

	if err := uc.ticketRepo.Delete(ctx, t.ID()); err != nil {
		uc.logger.Errorw("failed to delete ticket", "ticket_id", t.ID(), "error", err)
		return err
	}

	uc.logger.Infow("ticket deleted", "ticket_id", t.ID(), "org_id", t.OrganizationID())
	return nil
}
