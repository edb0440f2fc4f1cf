package usecases

import (
	"context"
	"strings"

	"pulseboard/internal/application/organization/dto"
	"pulseboard/internal/domain/organization"
	"pulseboard/internal/shared/logger"
	"pulseboard/internal/shared/utils"
)

type SearchOrganizationsQuery struct {
	Query    string
	Page     int
	PageSize int
}

type SearchOrganizationsResult struct {
	Organizations []*dto.OrganizationDTO
	Total         int64
	Page          int
	PageSize      int
}

type SearchOrganizationsUseCase struct {
	orgRepo organization.Repository
	logger  logger.Interface
}

func NewSearchOrganizationsUseCase(orgRepo organization.Repository, logger logger.Interface) *SearchOrganizationsUseCase {
	return &SearchOrganizationsUseCase{orgRepo: orgRepo, logger: logger}
}

// Execute matches the query as a case-insensitive substring, newest first.
func (uc *SearchOrganizationsUseCase) Execute(ctx context.Context, query SearchOrganizationsQuery) (*SearchOrganizationsResult, error) {
	p := utils.NormalizePagination(query.Page, query.PageSize)

	orgs, total, err := uc.orgRepo.Search(ctx, organization.SearchFilter{
		Query:    strings.TrimSpace(query.Query),
		Page:     p.Page,
		PageSize: p.PageSize,
	})
	if err != nil {
		uc.logger.Errorw("failed to search organizations", "query", query.Query, "error", err)
		return nil, err
	}

	return &SearchOrganizationsResult{
		Organizations: dto.ToOrganizationListDTO(orgs),
		Total:         total,
		Page:          p.Page,
		PageSize:      p.PageSize,
	}, nil
}
