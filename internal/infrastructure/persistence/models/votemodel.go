package models

import "time"

// VoteModel. The (user_id, ticket_id) unique index rejects the loser of a
// concurrent double vote.
type VoteModel struct {
	ID        string    `gorm:"primaryKey;size:32"`
	UserID    string    `gorm:"size:64;not null;uniqueIndex:idx_votes_user_ticket,priority:1"`
	TicketID  string    `gorm:"size:32;not null;uniqueIndex:idx_votes_user_ticket,priority:2;index:idx_votes_ticket_id"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

func (VoteModel) TableName() string {
	return "votes"
}

// All lists every model for auto migration.
func All() []any {
	return []any{&OrganizationModel{}, &TicketModel{}, &VoteModel{}}
}
