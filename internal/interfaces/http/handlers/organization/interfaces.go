package organization

import (
	"context"

	"pulseboard/internal/application/organization/dto"
	"pulseboard/internal/application/organization/usecases"
	"pulseboard/internal/domain/access"
)

type CreateOrganizationExecutor interface {
	Execute(ctx context.Context, cmd usecases.CreateOrganizationCommand) (*dto.OrganizationDTO, error)
}

type UpdateOrganizationExecutor interface {
	Execute(ctx context.Context, cmd usecases.UpdateOrganizationCommand) (*dto.OrganizationDTO, error)
}

type GetOrganizationExecutor interface {
	Execute(ctx context.Context, orgID string) (*dto.OrganizationDTO, error)
}

type GetMyOrganizationExecutor interface {
	Execute(ctx context.Context, caller *access.Caller) (*dto.OrganizationDTO, error)
}

type GetOrganizationImageExecutor interface {
	Execute(ctx context.Context, orgID string) (*usecases.GetOrganizationImageResult, error)
}

type SearchOrganizationsExecutor interface {
	Execute(ctx context.Context, query usecases.SearchOrganizationsQuery) (*usecases.SearchOrganizationsResult, error)
}
