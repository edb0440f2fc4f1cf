package usecases

import (
	"context"

	"pulseboard/internal/domain/organization"
)

type mockOrganizationRepository struct {
	CreateFunc         func(ctx context.Context, org *organization.Organization) error
	UpdateFunc         func(ctx context.Context, org *organization.Organization) error
	GetByIDFunc        func(ctx context.Context, id string) (*organization.Organization, error)
	GetByCreatorFunc   func(ctx context.Context, userID string) (*organization.Organization, error)
	CountByCreatorFunc func(ctx context.Context, userID string) (int64, error)
	SearchFunc         func(ctx context.Context, filter organization.SearchFilter) ([]*organization.Organization, int64, error)
	GetImageFunc       func(ctx context.Context, id string) ([]byte, error)
}

func (m *mockOrganizationRepository) Create(ctx context.Context, org *organization.Organization) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, org)
	}
	return nil
}

func (m *mockOrganizationRepository) Update(ctx context.Context, org *organization.Organization) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, org)
	}
	return nil
}

func (m *mockOrganizationRepository) GetByID(ctx context.Context, id string) (*organization.Organization, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockOrganizationRepository) GetByCreator(ctx context.Context, userID string) (*organization.Organization, error) {
	if m.GetByCreatorFunc != nil {
		return m.GetByCreatorFunc(ctx, userID)
	}
	return nil, nil
}

func (m *mockOrganizationRepository) CountByCreator(ctx context.Context, userID string) (int64, error) {
	if m.CountByCreatorFunc != nil {
		return m.CountByCreatorFunc(ctx, userID)
	}
	return 0, nil
}

func (m *mockOrganizationRepository) Search(ctx context.Context, filter organization.SearchFilter) ([]*organization.Organization, int64, error) {
	if m.SearchFunc != nil {
		return m.SearchFunc(ctx, filter)
	}
	return nil, 0, nil
}

func (m *mockOrganizationRepository) GetImage(ctx context.Context, id string) ([]byte, error) {
	if m.GetImageFunc != nil {
		return m.GetImageFunc(ctx, id)
	}
	return nil, nil
}
