package models

import "time"

type TicketModel struct {
	ID             string  `gorm:"primaryKey;size:32"`
	OrganizationID string  `gorm:"size:32;not null;index:idx_tickets_org_created,priority:1"`
	ReportedBy     string  `gorm:"size:64;not null;index:idx_tickets_reported_by"`
	Title          string  `gorm:"size:200;not null"`
	Description    string  `gorm:"type:text;not null"`
	Image          []byte  `gorm:"size:5242880"`
	Votes          int     `gorm:"not null;default:0"`
	Priority       string  `gorm:"size:10;not null;default:none"`
	Status         string  `gorm:"size:20;not null;default:open;index:idx_tickets_status"`
	Tag            string  `gorm:"size:20;not null"`
	TriageStatus   *string `gorm:"size:20"`
	LastTriagedAt  *time.Time
	CreatedAt      time.Time `gorm:"not null;index:idx_tickets_org_created,priority:2"`
	UpdatedAt      time.Time `gorm:"not null"`

	// No foreign keys; the vote ledger and delete path keep rows consistent.
}

func (TicketModel) TableName() string {
	return "tickets"
}
