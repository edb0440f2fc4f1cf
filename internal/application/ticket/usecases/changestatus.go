package usecases

import (
	"context"

	"pulseboard/internal/application/ticket/dto"
	"pulseboard/internal/domain/access"
	"pulseboard/internal/domain/organization"
	"pulseboard/internal/domain/ticket"
	vo "pulseboard/internal/domain/ticket/valueobjects"
	"pulseboard/internal/domain/vote"
	"pulseboard/internal/shared/errors"
	"pulseboard/internal/shared/logger"
)

type ChangeStatusCommand struct {
	Caller   *access.Caller
	TicketID string
	Status   string
}

type ChangeStatusUseCase struct {
	ticketRepo ticket.Repository
	orgRepo    organization.Repository
	ledger     vote.Ledger
	logger     logger.Interface
}

func NewChangeStatusUseCase(
	ticketRepo ticket.Repository,
	orgRepo organization.Repository,
	ledger vote.Ledger,
	logger logger.Interface,
) *ChangeStatusUseCase {
	return &ChangeStatusUseCase{
		ticketRepo: ticketRepo,
		orgRepo:    orgRepo,
		ledger:     ledger,
		logger:     logger,
	}
}

// Execute lets the organization owner move a ticket between any statuses.
func (uc *ChangeStatusUseCase) Execute(ctx context.Context, cmd ChangeStatusCommand) (*dto.TicketDTO, error) {
	if !cmd.Caller.Authenticated() {
		return nil, access.CanChangeTicketStatus(cmd.Caller, nil).Err()
	}

	status, err := vo.NewTicketStatus(cmd.Status)
	if err != nil {
		return nil, errors.NewValidationError("Validation failed", "status must be one of [open in-progress closed]")
	}

	t, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID)
	if err != nil {
		uc.logger.Errorw("failed to get ticket", "ticket_id", cmd.TicketID, "error", err)
		return nil, err
	}
	if t == nil {
		return nil, errors.NewNotFoundError("ticket not found")
	}

	org, err := uc.orgRepo.GetByID(ctx, t.OrganizationID())
	if err != nil {
		uc.logger.Errorw("failed to get organization", "org_id", t.OrganizationID(), "error", err)
		return nil, err
	}
	if err := access.CanChangeTicketStatus(cmd.Caller, org).Err(); err != nil {
		uc.logger.Warnw("ticket status change denied", "ticket_id", t.ID(), "user_id", cmd.Caller.ID)
		return nil, err
	}

	oldStatus := t.Status()
	if err := t.ChangeStatus(status); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if err := uc.ticketRepo.UpdateStatus(ctx, t); err != nil {
		uc.logger.Errorw("failed to update ticket status", "ticket_id", t.ID(), "error", err)
		return nil, err
	}

	uc.logger.Infow("ticket status changed",
		"ticket_id", t.ID(),
		"old_status", oldStatus,
		"new_status", status,
	)

	hasVoted, err := uc.ledger.Exists(ctx, cmd.Caller.ID, t.ID())
	if err != nil {
		return nil, err
	}
	return dto.ToTicketDTO(t, hasVoted), nil
}
