package usecases

import (
	"context"
	stderrors "errors"

	"pulseboard/internal/application/organization/dto"
	"pulseboard/internal/domain/access"
	"pulseboard/internal/domain/organization"
	"pulseboard/internal/shared/logger"
)

type CreateOrganizationCommand struct {
	Caller      *access.Caller
	Name        string
	Description string
	Website     string
	GitHub      string
	Image       []byte
}

type CreateOrganizationUseCase struct {
	orgRepo   organization.Repository
	sanitizer TextSanitizer
	logger    logger.Interface
}

func NewCreateOrganizationUseCase(
	orgRepo organization.Repository,
	sanitizer TextSanitizer,
	logger logger.Interface,
) *CreateOrganizationUseCase {
	return &CreateOrganizationUseCase{
		orgRepo:   orgRepo,
		sanitizer: sanitizer,
		logger:    logger,
	}
}

func (uc *CreateOrganizationUseCase) Execute(ctx context.Context, cmd CreateOrganizationCommand) (*dto.OrganizationDTO, error) {
	if !cmd.Caller.Authenticated() {
		return nil, access.CanCreateOrganization(cmd.Caller, 0).Err()
	}

	owned, err := uc.orgRepo.CountByCreator(ctx, cmd.Caller.ID)
	if err != nil {
		uc.logger.Errorw("failed to count owned organizations", "user_id", cmd.Caller.ID, "error", err)
		return nil, err
	}
	if err := access.CanCreateOrganization(cmd.Caller, owned).Err(); err != nil {
		uc.logger.Warnw("organization quota exceeded", "user_id", cmd.Caller.ID)
		return nil, err
	}

	org, err := organization.NewOrganization(
		cmd.Name,
		uc.sanitizer.StripTags(cmd.Description),
		cmd.Website,
		cmd.GitHub,
		cmd.Image,
		cmd.Caller.ID,
	)
	if err != nil {
		return nil, err
	}

	if err := uc.orgRepo.Create(ctx, org); err != nil {
		if stderrors.Is(err, organization.ErrOwnerHasOrganization) {
			uc.logger.Warnw("concurrent organization create rejected", "user_id", cmd.Caller.ID)
			return nil, access.Decision{Reason: access.ReasonQuotaExceeded}.Err()
		}
		uc.logger.Errorw("failed to create organization", "user_id", cmd.Caller.ID, "error", err)
		return nil, err
	}

	uc.logger.Infow("organization created", "org_id", org.ID(), "user_id", cmd.Caller.ID)
	return dto.ToOrganizationDTO(org), nil
}
