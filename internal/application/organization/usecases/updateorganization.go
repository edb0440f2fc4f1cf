package usecases

import (
	"context"

	"pulseboard/internal/application/organization/dto"
	"pulseboard/internal/domain/access"
	"pulseboard/internal/domain/organization"
	"pulseboard/internal/shared/errors"
	"pulseboard/internal/shared/logger"
)

// UpdateOrganizationCommand leaves nil fields unchanged.
type UpdateOrganizationCommand struct {
	Caller         *access.Caller
	OrganizationID string
	Name           *string
	Description    *string
	Website        *string
	GitHub         *string
	Image          []byte
	ClearImage     bool
}

type UpdateOrganizationUseCase struct {
	orgRepo   organization.Repository
	sanitizer TextSanitizer
	logger    logger.Interface
}

func NewUpdateOrganizationUseCase(
	orgRepo organization.Repository,
	sanitizer TextSanitizer,
	logger logger.Interface,
) *UpdateOrganizationUseCase {
	return &UpdateOrganizationUseCase{
		orgRepo:   orgRepo,
		sanitizer: sanitizer,
		logger:    logger,
	}
}

func (uc *UpdateOrganizationUseCase) Execute(ctx context.Context, cmd UpdateOrganizationCommand) (*dto.OrganizationDTO, error) {
	if !cmd.Caller.Authenticated() {
		return nil, access.CanManageOrganization(cmd.Caller, nil).Err()
	}

	org, err := uc.orgRepo.GetByID(ctx, cmd.OrganizationID)
	if err != nil {
		uc.logger.Errorw("failed to get organization", "org_id", cmd.OrganizationID, "error", err)
		return nil, err
	}
	if org == nil {
		return nil, errors.NewNotFoundError("organization not found")
	}
	if err := access.CanManageOrganization(cmd.Caller, org).Err(); err != nil {
		uc.logger.Warnw("organization update denied", "org_id", org.ID(), "user_id", cmd.Caller.ID)
		return nil, err
	}

	patch := organization.Patch{
		Name:       cmd.Name,
		Website:    cmd.Website,
		GitHub:     cmd.GitHub,
		Image:      cmd.Image,
		ClearImage: cmd.ClearImage,
	}
	if cmd.Description != nil {
		stripped := uc.sanitizer.StripTags(*cmd.Description)
		patch.Description = &stripped
	}
	if err := org.Apply(patch); err != nil {
		return nil, err
	}

	if err := uc.orgRepo.Update(ctx, org); err != nil {
		uc.logger.Errorw("failed to update organization", "org_id", org.ID(), "error", err)
		return nil, err
	}

	uc.logger.Infow("organization updated", "org_id", org.ID())
	return dto.ToOrganizationDTO(org), nil
}
