package http

import (
	"gorm.io/gorm"

	"pulseboard/internal/domain/organization"
	"pulseboard/internal/domain/ticket"
	"pulseboard/internal/domain/vote"
	"pulseboard/internal/infrastructure/repository"
)

// repositories holds all repository instances used by the application.
type repositories struct {
	organizationRepo organization.Repository
	ticketRepo       ticket.Repository
	voteLedger       vote.Ledger
}

// newRepositories creates all repository instances from the database connection.
func newRepositories(db *gorm.DB) *repositories {
	return &repositories{
		organizationRepo: repository.NewOrganizationRepository(db),
		ticketRepo:       repository.NewTicketRepository(db),
		voteLedger:       repository.NewVoteRepository(db),
	}
}
