package usecases

import (
	"context"

	"pulseboard/internal/application/organization/dto"
	"pulseboard/internal/domain/access"
	"pulseboard/internal/domain/organization"
	"pulseboard/internal/shared/errors"
	"pulseboard/internal/shared/logger"
	"pulseboard/internal/shared/utils"
)

type GetOrganizationUseCase struct {
	orgRepo organization.Repository
	logger  logger.Interface
}

func NewGetOrganizationUseCase(orgRepo organization.Repository, logger logger.Interface) *GetOrganizationUseCase {
	return &GetOrganizationUseCase{orgRepo: orgRepo, logger: logger}
}

// Execute is public and includes the image.
func (uc *GetOrganizationUseCase) Execute(ctx context.Context, orgID string) (*dto.OrganizationDTO, error) {
	org, err := uc.orgRepo.GetByID(ctx, orgID)
	if err != nil {
		uc.logger.Errorw("failed to get organization", "org_id", orgID, "error", err)
		return nil, err
	}
	if org == nil {
		return nil, errors.NewNotFoundError("organization not found")
	}
	return dto.ToOrganizationDTO(org), nil
}

type GetMyOrganizationUseCase struct {
	orgRepo organization.Repository
	logger  logger.Interface
}

func NewGetMyOrganizationUseCase(orgRepo organization.Repository, logger logger.Interface) *GetMyOrganizationUseCase {
	return &GetMyOrganizationUseCase{orgRepo: orgRepo, logger: logger}
}

func (uc *GetMyOrganizationUseCase) Execute(ctx context.Context, caller *access.Caller) (*dto.OrganizationDTO, error) {
	if !caller.Authenticated() {
		return nil, errors.NewUnauthorizedError("authentication required")
	}

	org, err := uc.orgRepo.GetByCreator(ctx, caller.ID)
	if err != nil {
		uc.logger.Errorw("failed to get organization by creator", "user_id", caller.ID, "error", err)
		return nil, err
	}
	if org == nil {
		return nil, errors.NewNotFoundError("you do not own an organization")
	}
	return dto.ToOrganizationDTO(org), nil
}

type GetOrganizationImageResult struct {
	Data        []byte
	ContentType string
}

type GetOrganizationImageUseCase struct {
	orgRepo organization.Repository
	logger  logger.Interface
}

func NewGetOrganizationImageUseCase(orgRepo organization.Repository, logger logger.Interface) *GetOrganizationImageUseCase {
	return &GetOrganizationImageUseCase{orgRepo: orgRepo, logger: logger}
}

func (uc *GetOrganizationImageUseCase) Execute(ctx context.Context, orgID string) (*GetOrganizationImageResult, error) {
	data, err := uc.orgRepo.GetImage(ctx, orgID)
	if err != nil {
		uc.logger.Errorw("failed to get organization image", "org_id", orgID, "error", err)
		return nil, err
	}
	if len(data) == 0 {
		return nil, errors.NewNotFoundError("image not found")
	}
	return &GetOrganizationImageResult{Data: data, ContentType: utils.ImageContentType(data)}, nil
}
