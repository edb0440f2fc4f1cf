package organization

import (
	"pulseboard/internal/application/organization/usecases"
	"pulseboard/internal/domain/access"
	"pulseboard/internal/shared/constants"
	"pulseboard/internal/shared/utils"
)

type CreateOrganizationRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
	Website     string `json:"website"`
	GitHub      string `json:"github"`
	// Image is base64, optionally as a data URL.
	Image string `json:"image"`
}

func (r *CreateOrganizationRequest) ToCommand(caller *access.Caller) (usecases.CreateOrganizationCommand, error) {
	image, err := utils.DecodeImage("image", r.Image, constants.MaxOrganizationImageSize)
	if err != nil {
		return usecases.CreateOrganizationCommand{}, err
	}
	return usecases.CreateOrganizationCommand{
		Caller:      caller,
		Name:        r.Name,
		Description: r.Description,
		Website:     r.Website,
		GitHub:      r.GitHub,
		Image:       image,
	}, nil
}

// UpdateOrganizationRequest is a partial update. An empty image string
// clears the stored image, as does clear_image.
type UpdateOrganizationRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Website     *string `json:"website"`
	GitHub      *string `json:"github"`
	Image       *string `json:"image"`
	ClearImage  bool    `json:"clear_image"`
}

func (r *UpdateOrganizationRequest) ToCommand(caller *access.Caller, orgID string) (usecases.UpdateOrganizationCommand, error) {
	cmd := usecases.UpdateOrganizationCommand{
		Caller:         caller,
		OrganizationID: orgID,
		Name:           r.Name,
		Description:    r.Description,
		Website:        r.Website,
		GitHub:         r.GitHub,
		ClearImage:     r.ClearImage,
	}
	if r.Image != nil {
		if *r.Image == "" {
			cmd.ClearImage = true
			return cmd, nil
		}
		image, err := utils.DecodeImage("image", *r.Image, constants.MaxOrganizationImageSize)
		if err != nil {
			return cmd, err
		}
		cmd.Image = image
	}
	return cmd, nil
}
