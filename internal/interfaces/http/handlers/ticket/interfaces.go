package ticket

import (
	"context"

	"pulseboard/internal/application/ticket/dto"
	"pulseboard/internal/application/ticket/usecases"
)

type CreateTicketExecutor interface {
	Execute(ctx context.Context, cmd usecases.CreateTicketCommand) (*dto.TicketDTO, error)
}

type UpdateTicketExecutor interface {
	Execute(ctx context.Context, cmd usecases.UpdateTicketCommand) (*dto.TicketDTO, error)
}

type ChangeStatusExecutor interface {
	Execute(ctx context.Context, cmd usecases.ChangeStatusCommand) (*dto.TicketDTO, error)
}

type DeleteTicketExecutor interface {
	Execute(ctx context.Context, cmd usecases.DeleteTicketCommand) error
}

type GetTicketExecutor interface {
	Execute(ctx context.Context, query usecases.GetTicketQuery) (*dto.TicketDTO, error)
}

type GetTicketImageExecutor interface {
	Execute(ctx context.Context, ticketID string) (*usecases.GetTicketImageResult, error)
}

type ListTicketsExecutor interface {
	Execute(ctx context.Context, query usecases.ListTicketsQuery) (*usecases.ListTicketsResult, error)
}

type ListMyTicketsExecutor interface {
	Execute(ctx context.Context, query usecases.ListMyTicketsQuery) (*usecases.ListTicketsResult, error)
}
