package usecases

import (
	"context"

	"pulseboard/internal/application/ticket/dto"
	"pulseboard/internal/domain/access"
	"pulseboard/internal/domain/ticket"
	"pulseboard/internal/domain/vote"
	"pulseboard/internal/shared/errors"
	"pulseboard/internal/shared/logger"
	"pulseboard/internal/shared/utils"
)

type GetTicketQuery struct {
	Caller   *access.Caller
	TicketID string
}

type GetTicketUseCase struct {
	ticketRepo ticket.Repository
	ledger     vote.Ledger
	logger     logger.Interface
}

func NewGetTicketUseCase(ticketRepo ticket.Repository, ledger vote.Ledger, logger logger.Interface) *GetTicketUseCase {
	return &GetTicketUseCase{ticketRepo: ticketRepo, ledger: ledger, logger: logger}
}

// Execute is public. hasVoted is false for anonymous callers.
func (uc *GetTicketUseCase) Execute(ctx context.Context, query GetTicketQuery) (*dto.TicketDTO, error) {
	t, err := uc.ticketRepo.GetByID(ctx, query.TicketID)
	if err != nil {
		uc.logger.Errorw("failed to get ticket", "ticket_id", query.TicketID, "error", err)
		return nil, err
	}
	if t == nil {
		return nil, errors.NewNotFoundError("ticket not found")
	}

	hasVoted := false
	if query.Caller.Authenticated() {
		if hasVoted, err = uc.ledger.Exists(ctx, query.Caller.ID, t.ID()); err != nil {
			uc.logger.Errorw("failed to check vote", "ticket_id", t.ID(), "error", err)
			return nil, err
		}
	}

	return dto.ToTicketDTO(t, hasVoted), nil
}

type GetTicketImageResult struct {
	Data        []byte
	ContentType string
}

type GetTicketImageUseCase struct {
	ticketRepo ticket.Repository
	logger     logger.Interface
}

func NewGetTicketImageUseCase(ticketRepo ticket.Repository, logger logger.Interface) *GetTicketImageUseCase {
	return &GetTicketImageUseCase{ticketRepo: ticketRepo, logger: logger}
}

func (uc *GetTicketImageUseCase) Execute(ctx context.Context, ticketID string) (*GetTicketImageResult, error) {
	data, err := uc.ticketRepo.GetImage(ctx, ticketID)
	if err != nil {
		uc.logger.Errorw("failed to get ticket image", "ticket_id", ticketID, "error", err)
		return nil, err
	}
	if len(data) == 0 {
		return nil, errors.NewNotFoundError("image not found")
	}
	return &GetTicketImageResult{Data: data, ContentType: utils.ImageContentType(data)}, nil
}
