package models

import "time"

// OrganizationModel. The unique index on created_by enforces one
// organization per user at the store.
type OrganizationModel struct {
	ID          string    `gorm:"primaryKey;size:32"`
	Name        string    `gorm:"size:100;not null"`
	NameLower   string    `gorm:"size:100;not null;index:idx_organizations_name_lower"`
	Description string    `gorm:"size:500;not null;default:''"`
	Website     string    `gorm:"size:200;not null;default:''"`
	GitHub      string    `gorm:"column:github;size:200;not null;default:''"`
	Image       []byte    `gorm:"size:1048576"`
	CreatedBy   string    `gorm:"size:64;not null;uniqueIndex:idx_organizations_created_by"`
	CreatedAt   time.Time `gorm:"not null;index:idx_organizations_created_at"`
	UpdatedAt   time.Time `gorm:"not null"`
}

func (OrganizationModel) TableName() string {
	return "organizations"
}
