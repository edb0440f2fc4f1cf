package organization

import (
	"context"
	"errors"
)

// ErrOwnerHasOrganization is returned by Create when the creator already owns one.
var ErrOwnerHasOrganization = errors.New("organization: creator already owns an organization")

// Repository lookups return (nil, nil) when nothing matches.
type Repository interface {
	Create(ctx context.Context, org *Organization) error
	Update(ctx context.Context, org *Organization) error
	GetByID(ctx context.Context, id string) (*Organization, error)
	GetByCreator(ctx context.Context, userID string) (*Organization, error)
	CountByCreator(ctx context.Context, userID string) (int64, error)
	Search(ctx context.Context, filter SearchFilter) ([]*Organization, int64, error)
	GetImage(ctx context.Context, id string) ([]byte, error)
}

// SearchFilter matches Query case-insensitively against name and description.
// Results exclude images and are ordered newest first.
type SearchFilter struct {
	Query    string
	Page     int
	PageSize int
}
