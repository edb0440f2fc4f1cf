package http

import (
	"pulseboard/internal/interfaces/http/handlers"
	organizationHandlers "pulseboard/internal/interfaces/http/handlers/organization"
	ticketHandlers "pulseboard/internal/interfaces/http/handlers/ticket"
	triageHandlers "pulseboard/internal/interfaces/http/handlers/triage"
	voteHandlers "pulseboard/internal/interfaces/http/handlers/vote"
)

// allHandlers holds all HTTP handler instances used by the application.
type allHandlers struct {
	healthHandler       *handlers.HealthHandler
	organizationHandler *organizationHandlers.Handler
	ticketHandler       *ticketHandlers.Handler
	voteHandler         *voteHandlers.Handler
	triageHandler       *triageHandlers.Handler
}

func (c *Container) newHandlers(pinger handlers.Pinger) *allHandlers {
	ucs := c.ucs
	log := c.log

	return &allHandlers{
		healthHandler: handlers.NewHealthHandler(pinger, log),
		organizationHandler: organizationHandlers.NewHandler(
			ucs.createOrganizationUC,
			ucs.updateOrganizationUC,
			ucs.getOrganizationUC,
			ucs.getMyOrganizationUC,
			ucs.getOrganizationImageUC,
			ucs.searchOrganizationsUC,
			log,
		),
		ticketHandler: ticketHandlers.NewHandler(
			ucs.createTicketUC,
			ucs.updateTicketUC,
			ucs.changeStatusUC,
			ucs.deleteTicketUC,
			ucs.getTicketUC,
			ucs.getTicketImageUC,
			ucs.listTicketsUC,
			ucs.listMyTicketsUC,
			log,
		),
		voteHandler: voteHandlers.NewHandler(ucs.toggleVoteUC, ucs.hasVotedUC, ucs.listVotedUC, log),
		triageHandler: triageHandlers.NewHandler(
			ucs.bulkTriageUC,
			ucs.triageTicketUC,
			ucs.summarizeUC,
			ucs.redditDigestUC,
			log,
		),
	}
}
