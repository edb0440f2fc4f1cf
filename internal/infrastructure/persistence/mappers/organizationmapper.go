package mappers

import (
	"pulseboard/internal/domain/organization"
	"pulseboard/internal/infrastructure/persistence/models"
)

// OrganizationMapper converts between the Organization entity and its model.
type OrganizationMapper interface {
	ToModel(o *organization.Organization) *models.OrganizationModel
	ToDomain(m *models.OrganizationModel) (*organization.Organization, error)
	ToDomainList(ms []*models.OrganizationModel) ([]*organization.Organization, error)
}

type OrganizationMapperImpl struct{}

func NewOrganizationMapper() OrganizationMapper {
	return &OrganizationMapperImpl{}
}

func (m *OrganizationMapperImpl) ToModel(o *organization.Organization) *models.OrganizationModel {
	return &models.OrganizationModel{
		ID:          o.ID(),
		Name:        o.Name(),
		NameLower:   o.NameLower(),
		Description: o.Description(),
		Website:     o.Website(),
		GitHub:      o.GitHub(),
		Image:       o.Image(),
		CreatedBy:   o.CreatedBy(),
		CreatedAt:   o.CreatedAt(),
		UpdatedAt:   o.UpdatedAt(),
	}
}

func (m *OrganizationMapperImpl) ToDomain(model *models.OrganizationModel) (*organization.Organization, error) {
	return organization.ReconstructOrganization(
		model.ID,
		model.Name,
		model.Description,
		model.Website,
		model.GitHub,
		model.Image,
		model.CreatedBy,
		model.CreatedAt.UTC(),
		model.UpdatedAt.UTC(),
	)
}

func (m *OrganizationMapperImpl) ToDomainList(ms []*models.OrganizationModel) ([]*organization.Organization, error) {
	out := make([]*organization.Organization, 0, len(ms))
	for _, model := range ms {
		o, err := m.ToDomain(model)
		if err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	return out, nil
}
