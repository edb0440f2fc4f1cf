// Package organization holds the feedback-collecting entity owned by exactly one user.
package organization

import (
	"fmt"
	"time"

	"pulseboard/internal/domain/shared"
	"pulseboard/internal/shared/constants"
	"pulseboard/internal/shared/id"
)

const (
	MaxNameLength        = 100
	MaxDescriptionLength = 500
	MaxLinkLength        = 200
)

// Organization keeps nameLower equal to the lowercase of name on every change.
type Organization struct {
	id          string
	name        string
	nameLower   string
	description string
	website     string
	github      string
	image       []byte
	createdBy   string
	createdAt   time.Time
	updatedAt   time.Time
}

func NewOrganization(name, description, website, github string, image []byte, createdBy string) (*Organization, error) {
	if createdBy == "" {
		return nil, fmt.Errorf("creator is required")
	}

	var f shared.FieldErrors
	validateFields(&f, name, description, website, github)
	f.MaxBytes("image", image, constants.MaxOrganizationImageSize)
	if err := f.Err(); err != nil {
		return nil, err
	}

	orgID, err := id.NewOrganizationID()
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	return &Organization{
		id:          orgID,
		name:        name,
		nameLower:   shared.Lower(name),
		description: description,
		website:     website,
		github:      github,
		image:       image,
		createdBy:   createdBy,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

// ReconstructOrganization rebuilds a persisted organization. nameLower is
// recomputed rather than trusted.
func ReconstructOrganization(
	orgID, name, description, website, github string,
	image []byte,
	createdBy string,
	createdAt, updatedAt time.Time,
) (*Organization, error) {
	if orgID == "" {
		return nil, fmt.Errorf("organization ID is required")
	}
	if createdBy == "" {
		return nil, fmt.Errorf("creator is required")
	}
	return &Organization{
		id:          orgID,
		name:        name,
		nameLower:   shared.Lower(name),
		description: description,
		website:     website,
		github:      github,
		image:       image,
		createdBy:   createdBy,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}, nil
}

func validateFields(f *shared.FieldErrors, name, description, website, github string) {
	f.Required("name", name, MaxNameLength)
	f.MaxLen("description", description, MaxDescriptionLength)
	f.OptionalURL("website", website, MaxLinkLength)
	f.OptionalURL("github", github, MaxLinkLength)
}

func (o *Organization) ID() string           { return o.id }
func (o *Organization) Name() string         { return o.name }
func (o *Organization) NameLower() string    { return o.nameLower }
func (o *Organization) Description() string  { return o.description }
func (o *Organization) Website() string      { return o.website }
func (o *Organization) GitHub() string       { return o.github }
func (o *Organization) Image() []byte        { return o.image }
func (o *Organization) HasImage() bool       { return len(o.image) > 0 }
func (o *Organization) CreatedBy() string    { return o.createdBy }
func (o *Organization) CreatedAt() time.Time { return o.createdAt }
func (o *Organization) UpdatedAt() time.Time { return o.updatedAt }

// IsOwnedBy reports whether userID created the organization.
func (o *Organization) IsOwnedBy(userID string) bool {
	return userID != "" && o.createdBy == userID
}

// Patch carries a partial update. Nil fields are left unchanged.
type Patch struct {
	Name        *string
	Description *string
	Website     *string
	GitHub      *string
	Image       []byte
	ClearImage  bool
}

// Apply validates the merged result before mutating anything.
func (o *Organization) Apply(p Patch) error {
	name, description, website, github := o.name, o.description, o.website, o.github
	if p.Name != nil {
		name = *p.Name
	}
	if p.Description != nil {
		description = *p.Description
	}
	if p.Website != nil {
		website = *p.Website
	}
	if p.GitHub != nil {
		github = *p.GitHub
	}

	var f shared.FieldErrors
	validateFields(&f, name, description, website, github)
	f.MaxBytes("image", p.Image, constants.MaxOrganizationImageSize)
	if err := f.Err(); err != nil {
		return err
	}

	o.name = name
	o.nameLower = shared.Lower(name)
	o.description = description
	o.website = website
	o.github = github
	switch {
	case p.ClearImage:
		o.image = nil
	case len(p.Image) > 0:
		o.image = p.Image
	}
	o.updatedAt = time.Now().UTC()
	return nil
}
