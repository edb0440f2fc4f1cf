package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"pulseboard/internal/domain/organization"
	"pulseboard/internal/infrastructure/persistence/mappers"
	"pulseboard/internal/infrastructure/persistence/models"
	"pulseboard/internal/shared/db"
	apperrors "pulseboard/internal/shared/errors"
)

type OrganizationRepository struct {
	db     *gorm.DB
	mapper mappers.OrganizationMapper
}

func NewOrganizationRepository(db *gorm.DB) *OrganizationRepository {
	return &OrganizationRepository{
		db:     db,
		mapper: mappers.NewOrganizationMapper(),
	}
}

func (r *OrganizationRepository) Create(ctx context.Context, o *organization.Organization) error {
	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Create(r.mapper.ToModel(o)).Error; err != nil {
		if apperrors.IsDuplicateError(err) {
			return organization.ErrOwnerHasOrganization
		}
		return fmt.Errorf("failed to create organization: %w", err)
	}
	return nil
}

func (r *OrganizationRepository) Update(ctx context.Context, o *organization.Organization) error {
	model := r.mapper.ToModel(o)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.Model(&models.OrganizationModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]any{
			"name":        model.Name,
			"name_lower":  model.NameLower,
			"description": model.Description,
			"website":     model.Website,
			"github":      model.GitHub,
			"image":       model.Image,
			"updated_at":  model.UpdatedAt,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update organization: %w", result.Error)
	}
	return nil
}

func (r *OrganizationRepository) GetByID(ctx context.Context, id string) (*organization.Organization, error) {
	return r.first(ctx, "id = ?", id)
}

func (r *OrganizationRepository) GetByCreator(ctx context.Context, userID string) (*organization.Organization, error) {
	return r.first(ctx, "created_by = ?", userID)
}

func (r *OrganizationRepository) first(ctx context.Context, query string, arg any) (*organization.Organization, error) {
	var model models.OrganizationModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where(query, arg).Take(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get organization: %w", err)
	}
	return r.mapper.ToDomain(&model)
}

func (r *OrganizationRepository) CountByCreator(ctx context.Context, userID string) (int64, error) {
	var count int64
	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Model(&models.OrganizationModel{}).
		Where("created_by = ?", userID).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count organizations: %w", err)
	}
	return count, nil
}

func (r *OrganizationRepository) Search(ctx context.Context, filter organization.SearchFilter) ([]*organization.Organization, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	query := tx.Model(&models.OrganizationModel{})

	if strings.TrimSpace(filter.Query) != "" {
		pattern := containsPattern(filter.Query)
		query = query.Where(
			"name_lower LIKE ? ESCAPE '"+likeEscape+"' OR LOWER(description) LIKE ? ESCAPE '"+likeEscape+"'",
			pattern, pattern,
		)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count organizations: %w", err)
	}

	var list []*models.OrganizationModel
	if err := query.
		Scopes(db.Omit("image"), db.Paginate(filter.Page, filter.PageSize)).
		Order("created_at DESC").
		Order("id DESC").
		Find(&list).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to search organizations: %w", err)
	}

	orgs, err := r.mapper.ToDomainList(list)
	if err != nil {
		return nil, 0, err
	}
	return orgs, total, nil
}

// GetImage returns (nil, nil) for an unknown id or an organization without an image.
func (r *OrganizationRepository) GetImage(ctx context.Context, id string) ([]byte, error) {
	var model models.OrganizationModel
	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Select("id", "image").Where("id = ?", id).Take(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get organization image: %w", err)
	}
	return model.Image, nil
}
