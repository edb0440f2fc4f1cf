package usecases

import (
	"context"
	"strings"

	"pulseboard/internal/application/triage"
	"pulseboard/internal/domain/access"
	"pulseboard/internal/domain/organization"
	"pulseboard/internal/domain/ticket"
	"pulseboard/internal/shared/logger"
)

type SummarizeCommand struct {
	Caller         *access.Caller
	OrganizationID string
}

type SummarizeResult struct {
	Summary     string `json:"summary"`
	SummaryHTML string `json:"summary_html"`
	TicketCount int    `json:"ticket_count"`
}

type SummarizeUseCase struct {
	ticketRepo ticket.Repository
	orgRepo    organization.Repository
	completer  triage.Completer
	renderer   HTMLRenderer
	recorder   AIRecorder
	settings   Settings
	logger     logger.Interface
}

func NewSummarizeUseCase(
	ticketRepo ticket.Repository,
	orgRepo organization.Repository,
	completer triage.Completer,
	renderer HTMLRenderer,
	recorder AIRecorder,
	settings Settings,
	logger logger.Interface,
) *SummarizeUseCase {
	return &SummarizeUseCase{
		ticketRepo: ticketRepo,
		orgRepo:    orgRepo,
		completer:  completer,
		renderer:   renderer,
		recorder:   recorder,
		settings:   settings,
		logger:     logger,
	}
}

// Execute writes nothing. An organization without tickets gets an empty
// summary without an inference call.
func (uc *SummarizeUseCase) Execute(ctx context.Context, cmd SummarizeCommand) (*SummarizeResult, error) {
	org, err := loadManagedOrganization(ctx, uc.orgRepo, uc.logger, cmd.Caller, cmd.OrganizationID)
	if err != nil {
		return nil, err
	}

	tickets, err := uc.ticketRepo.ListByOrganization(ctx, org.ID())
	if err != nil {
		uc.logger.Errorw("failed to list tickets for summary", "org_id", org.ID(), "error", err)
		return nil, err
	}
	if len(tickets) == 0 {
		return &SummarizeResult{}, nil
	}

	answer, err := uc.completer.Complete(ctx, triage.CompletionRequest{
		Model:  uc.settings.SummaryModel,
		System: triage.SummarySystemPrompt,
		Prompt: triage.SummaryPrompt(org, tickets),
	})
	if err != nil {
		uc.recorder.RecordAIRequest(OperationSummary, false)
		uc.logger.Errorw("summary inference failed", "org_id", org.ID(), "error", err)
		return nil, asUpstream(err)
	}
	uc.recorder.RecordAIRequest(OperationSummary, true)

	summary := strings.TrimSpace(answer)
	html, err := uc.renderer.ToHTMLSanitized(summary)
	if err != nil {
		uc.logger.Errorw("failed to render summary", "org_id", org.ID(), "error", err)
		return nil, err
	}

	uc.logger.Infow("organization summarized", "org_id", org.ID(), "tickets", len(tickets))
	return &SummarizeResult{Summary: summary, SummaryHTML: html, TicketCount: len(tickets)}, nil
}
