package dto

import (
	"encoding/base64"
	"time"

	"pulseboard/internal/domain/organization"
)

type OrganizationDTO struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Website     string    `json:"website"`
	GitHub      string    `json:"github"`
	Image       string    `json:"image,omitempty"`
	ImageURL    string    `json:"image_url,omitempty"`
	CreatedBy   string    `json:"created_by"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ToOrganizationDTO includes the image as base64 when it was loaded.
func ToOrganizationDTO(o *organization.Organization) *OrganizationDTO {
	if o == nil {
		return nil
	}
	d := ToOrganizationListItemDTO(o)
	if o.HasImage() {
		d.Image = base64.StdEncoding.EncodeToString(o.Image())
		d.ImageURL = ImageURL(o.ID())
	}
	return d
}

// ToOrganizationListItemDTO never carries image bytes.
func ToOrganizationListItemDTO(o *organization.Organization) *OrganizationDTO {
	return &OrganizationDTO{
		ID:          o.ID(),
		Name:        o.Name(),
		Description: o.Description(),
		Website:     o.Website(),
		GitHub:      o.GitHub(),
		CreatedBy:   o.CreatedBy(),
		CreatedAt:   o.CreatedAt(),
		UpdatedAt:   o.UpdatedAt(),
	}
}

func ToOrganizationListDTO(orgs []*organization.Organization) []*OrganizationDTO {
	out := make([]*OrganizationDTO, 0, len(orgs))
	for _, o := range orgs {
		out = append(out, ToOrganizationListItemDTO(o))
	}
	return out
}

func ImageURL(orgID string) string {
	return "/organizations/" + orgID + "/image"
}
