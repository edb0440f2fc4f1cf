package usecases

import (
	"context"

	"pulseboard/internal/application/ticket/dto"
	"pulseboard/internal/domain/access"
	"pulseboard/internal/domain/organization"
	"pulseboard/internal/domain/ticket"
	vo "pulseboard/internal/domain/ticket/valueobjects"
	"pulseboard/internal/shared/logger"
)

type CreateTicketCommand struct {
	Caller         *access.Caller
	OrganizationID string
	Title          string
	Description    string
	Tag            string
	Priority       string
	Image          []byte
}

type CreateTicketUseCase struct {
	ticketRepo ticket.Repository
	orgRepo    organization.Repository
	sanitizer  TextSanitizer
	logger     logger.Interface
}

func NewCreateTicketUseCase(
	ticketRepo ticket.Repository,
	orgRepo organization.Repository,
	sanitizer TextSanitizer,
	logger logger.Interface,
) *CreateTicketUseCase {
	return &CreateTicketUseCase{
		ticketRepo: ticketRepo,
		orgRepo:    orgRepo,
		sanitizer:  sanitizer,
		logger:     logger,
	}
}

func (uc *CreateTicketUseCase) Execute(ctx context.Context, cmd CreateTicketCommand) (*dto.TicketDTO, error) {
	if !cmd.Caller.Authenticated() {
		return nil, access.CanCreateTicket(cmd.Caller, nil).Err()
	}

	org, err := uc.orgRepo.GetByID(ctx, cmd.OrganizationID)
	if err != nil {
		uc.logger.Errorw("failed to get organization", "org_id", cmd.OrganizationID, "error", err)
		return nil, err
	}
	if err := access.CanCreateTicket(cmd.Caller, org).Err(); err != nil {
		return nil, err
	}

	t, err := ticket.NewTicket(
		org.ID(),
		cmd.Caller.ID,
		uc.sanitizer.StripTags(cmd.Title),
		uc.sanitizer.StripTags(cmd.Description),
		vo.Tag(cmd.Tag),
		vo.Priority(cmd.Priority),
		cmd.Image,
	)
	if err != nil {
		return nil, err
	}

	if err := uc.ticketRepo.Create(ctx, t); err != nil {
		uc.logger.Errorw("failed to create ticket", "org_id", org.ID(), "error", err)
		return nil, err
	}

	uc.logger.Infow("ticket created", "ticket_id", t.ID(), "org_id", org.ID(), "reported_by", cmd.Caller.ID)
	return dto.ToTicketDTO(t, false), nil
}
