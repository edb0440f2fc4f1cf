package usecases

import (
	"context"
	"strings"

	"pulseboard/internal/application/ticket/dto"
	"pulseboard/internal/domain/access"
	"pulseboard/internal/domain/organization"
	"pulseboard/internal/domain/shared"
	"pulseboard/internal/domain/ticket"
	vo "pulseboard/internal/domain/ticket/valueobjects"
	"pulseboard/internal/domain/vote"
	"pulseboard/internal/shared/errors"
	"pulseboard/internal/shared/logger"
	"pulseboard/internal/shared/utils"
)

type ListTicketsQuery struct {
	Caller         *access.Caller
	OrganizationID string
	Search         string
	Status         string
	Tag            string
	Sort           string
	Page           int
	PageSize       int
}

type ListTicketsResult struct {
	Tickets  []*dto.TicketDTO
	Total    int64
	Page     int
	PageSize int
}

type ListTicketsUseCase struct {
	ticketRepo ticket.Repository
	orgRepo    organization.Repository
	ledger     vote.Ledger
	logger     logger.Interface
}

func NewListTicketsUseCase(
	ticketRepo ticket.Repository,
	orgRepo organization.Repository,
	ledger vote.Ledger,
	logger logger.Interface,
) *ListTicketsUseCase {
	return &ListTicketsUseCase{
		ticketRepo: ticketRepo,
		orgRepo:    orgRepo,
		ledger:     ledger,
		logger:     logger,
	}
}

func (uc *ListTicketsUseCase) Execute(ctx context.Context, query ListTicketsQuery) (*ListTicketsResult, error) {
	filter, err := buildFilter(query)
	if err != nil {
		return nil, err
	}

	org, err := uc.orgRepo.GetByID(ctx, query.OrganizationID)
	if err != nil {
		uc.logger.Errorw("failed to get organization", "org_id", query.OrganizationID, "error", err)
		return nil, err
	}
	if org == nil {
		return nil, errors.NewNotFoundError("organization not found")
	}

	tickets, total, err := uc.ticketRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list tickets", "org_id", org.ID(), "error", err)
		return nil, err
	}

	voted, err := votedSet(ctx, uc.ledger, query.Caller, tickets)
	if err != nil {
		uc.logger.Errorw("failed to load votes", "org_id", org.ID(), "error", err)
		return nil, err
	}

	return &ListTicketsResult{
		Tickets:  dto.ToTicketListDTO(tickets, voted),
		Total:    total,
		Page:     filter.Page,
		PageSize: filter.PageSize,
	}, nil
}

func buildFilter(query ListTicketsQuery) (ticket.Filter, error) {
	p := utils.NormalizePagination(query.Page, query.PageSize)
	filter := ticket.Filter{
		OrganizationID: query.OrganizationID,
		Search:         strings.TrimSpace(query.Search),
		Page:           p.Page,
		PageSize:       p.PageSize,
	}

	var f shared.FieldErrors
	if query.Status != "" {
		status, err := vo.NewTicketStatus(query.Status)
		if err != nil {
			f.Add("status must be one of [open in-progress closed]")
		}
		filter.Status = &status
	}
	if query.Tag != "" {
		tag, err := vo.NewTag(query.Tag)
		if err != nil {
			f.Add("tag must be one of [bug tweak feature]")
		}
		filter.Tag = &tag
	}
	sort, err := vo.NewSortMode(query.Sort)
	if err != nil {
		f.Add("sort must be one of [newest mostVoted priority]")
	}
	filter.Sort = sort

	return filter, f.Err()
}

// votedSet is empty for anonymous callers.
func votedSet(ctx context.Context, ledger vote.Ledger, caller *access.Caller, tickets []*ticket.Ticket) (map[string]bool, error) {
	if !caller.Authenticated() || len(tickets) == 0 {
		return map[string]bool{}, nil
	}
	ids := make([]string, 0, len(tickets))
	for _, t := range tickets {
		ids = append(ids, t.ID())
	}
	return ledger.VotedTicketIDs(ctx, caller.ID, ids)
}

type ListMyTicketsQuery struct {
	Caller   *access.Caller
	Page     int
	PageSize int
}

type ListMyTicketsUseCase struct {
	ticketRepo ticket.Repository
	ledger     vote.Ledger
	logger     logger.Interface
}

func NewListMyTicketsUseCase(ticketRepo ticket.Repository, ledger vote.Ledger, logger logger.Interface) *ListMyTicketsUseCase {
	return &ListMyTicketsUseCase{ticketRepo: ticketRepo, ledger: ledger, logger: logger}
}

// Execute lists tickets the caller reported across organizations, newest first.
func (uc *ListMyTicketsUseCase) Execute(ctx context.Context, query ListMyTicketsQuery) (*ListTicketsResult, error) {
	if !query.Caller.Authenticated() {
		return nil, errors.NewUnauthorizedError("authentication required")
	}

	p := utils.NormalizePagination(query.Page, query.PageSize)
	tickets, total, err := uc.ticketRepo.List(ctx, ticket.Filter{
		ReportedBy: query.Caller.ID,
		Sort:       vo.SortNewest,
		Page:       p.Page,
		PageSize:   p.PageSize,
	})
	if err != nil {
		uc.logger.Errorw("failed to list caller tickets", "user_id", query.Caller.ID, "error", err)
		return nil, err
	}

	voted, err := votedSet(ctx, uc.ledger, query.Caller, tickets)
	if err != nil {
		return nil, err
	}

	return &ListTicketsResult{
		Tickets:  dto.ToTicketListDTO(tickets, voted),
		Total:    total,
		Page:     p.Page,
		PageSize: p.PageSize,
	}, nil
}
