package http

import (
	orgUsecases "pulseboard/internal/application/organization/usecases"
	ticketUsecases "pulseboard/internal/application/ticket/usecases"
	triageUsecases "pulseboard/internal/application/triage/usecases"
	voteUsecases "pulseboard/internal/application/vote/usecases"
)

// allUseCases holds all use case instances used by the application.
type allUseCases struct {
	// Organization
	createOrganizationUC   *orgUsecases.CreateOrganizationUseCase
	updateOrganizationUC   *orgUsecases.UpdateOrganizationUseCase
	getOrganizationUC      *orgUsecases.GetOrganizationUseCase
	getMyOrganizationUC    *orgUsecases.GetMyOrganizationUseCase
	getOrganizationImageUC *orgUsecases.GetOrganizationImageUseCase
	searchOrganizationsUC  *orgUsecases.SearchOrganizationsUseCase

	// Ticket
	createTicketUC   *ticketUsecases.CreateTicketUseCase
	updateTicketUC   *ticketUsecases.UpdateTicketUseCase
	changeStatusUC   *ticketUsecases.ChangeStatusUseCase
	deleteTicketUC   *ticketUsecases.DeleteTicketUseCase
	getTicketUC      *ticketUsecases.GetTicketUseCase
	getTicketImageUC *ticketUsecases.GetTicketImageUseCase
	listTicketsUC    *ticketUsecases.ListTicketsUseCase
	listMyTicketsUC  *ticketUsecases.ListMyTicketsUseCase

	// Vote
	toggleVoteUC *voteUsecases.ToggleVoteUseCase
	hasVotedUC   *voteUsecases.HasVotedUseCase
	listVotedUC  *voteUsecases.ListVotedUseCase

	// Triage
	bulkTriageUC   *triageUsecases.BulkTriageUseCase
	triageTicketUC *triageUsecases.TriageTicketUseCase
	summarizeUC    *triageUsecases.SummarizeUseCase
	redditDigestUC *triageUsecases.RedditDigestUseCase
}

func (c *Container) newUseCases() *allUseCases {
	orgRepo := c.repos.organizationRepo
	ticketRepo := c.repos.ticketRepo
	ledger := c.repos.voteLedger
	svcs := c.svcs
	log := c.log

	settings := triageUsecases.Settings{
		TriageModel:  c.cfg.AI.TriageModel,
		SummaryModel: c.cfg.AI.SummaryModel,
		MaxBatchSize: c.cfg.AI.MaxBatchSize,
		RedditLimit:  c.cfg.Reddit.Limit,
	}

	return &allUseCases{
		createOrganizationUC:   orgUsecases.NewCreateOrganizationUseCase(orgRepo, svcs.renderer, log),
		updateOrganizationUC:   orgUsecases.NewUpdateOrganizationUseCase(orgRepo, svcs.renderer, log),
		getOrganizationUC:      orgUsecases.NewGetOrganizationUseCase(orgRepo, log),
		getMyOrganizationUC:    orgUsecases.NewGetMyOrganizationUseCase(orgRepo, log),
		getOrganizationImageUC: orgUsecases.NewGetOrganizationImageUseCase(orgRepo, log),
		searchOrganizationsUC:  orgUsecases.NewSearchOrganizationsUseCase(orgRepo, log),

		createTicketUC:   ticketUsecases.NewCreateTicketUseCase(ticketRepo, orgRepo, svcs.renderer, log),
		updateTicketUC:   ticketUsecases.NewUpdateTicketUseCase(ticketRepo, ledger, svcs.renderer, log),
		changeStatusUC:   ticketUsecases.NewChangeStatusUseCase(ticketRepo, orgRepo, ledger, log),
		deleteTicketUC:   ticketUsecases.NewDeleteTicketUseCase(ticketRepo, log),
		getTicketUC:      ticketUsecases.NewGetTicketUseCase(ticketRepo, ledger, log),
		getTicketImageUC: ticketUsecases.NewGetTicketImageUseCase(ticketRepo, log),
		listTicketsUC:    ticketUsecases.NewListTicketsUseCase(ticketRepo, orgRepo, ledger, log),
		listMyTicketsUC:  ticketUsecases.NewListMyTicketsUseCase(ticketRepo, ledger, log),

		toggleVoteUC: voteUsecases.NewToggleVoteUseCase(ledger, ticketRepo, svcs.recorder, log),
		hasVotedUC:   voteUsecases.NewHasVotedUseCase(ledger, log),
		listVotedUC:  voteUsecases.NewListVotedUseCase(ledger, log),

		bulkTriageUC:   triageUsecases.NewBulkTriageUseCase(ticketRepo, orgRepo, svcs.completer, svcs.recorder, settings, log),
		triageTicketUC: triageUsecases.NewTriageTicketUseCase(ticketRepo, orgRepo, svcs.completer, svcs.recorder, settings, log),
		summarizeUC:    triageUsecases.NewSummarizeUseCase(ticketRepo, orgRepo, svcs.completer, svcs.renderer, svcs.recorder, settings, log),
		redditDigestUC: triageUsecases.NewRedditDigestUseCase(orgRepo, svcs.posts, svcs.completer, svcs.renderer, svcs.recorder, settings, log),
	}
}
