package usecases

import (
	"context"
	"time"

	"github.com/samber/lo"

	"pulseboard/internal/application/triage"
	"pulseboard/internal/domain/access"
	"pulseboard/internal/domain/organization"
	"pulseboard/internal/domain/ticket"
	"pulseboard/internal/shared/logger"
)

type BulkTriageCommand struct {
	Caller         *access.Caller
	OrganizationID string
	// IncludeTriaged re-triages every non-closed ticket.
	IncludeTriaged bool
}

// AppliedResult is one assessment written to a ticket.
type AppliedResult struct {
	TicketID string `json:"ticket_id"`
	Priority string `json:"priority"`
	Tag      string `json:"tag"`
}

type BulkTriageResult struct {
	UpdatedCount   int             `json:"updated_count"`
	AppliedResults []AppliedResult `json:"applied_results"`
	Candidates     int             `json:"candidates"`
	Rejected       int             `json:"rejected"`
}

type BulkTriageUseCase struct {
	ticketRepo ticket.Repository
	orgRepo    organization.Repository
	completer  triage.Completer
	recorder   AIRecorder
	settings   Settings
	logger     logger.Interface
	now        func() time.Time
}

func NewBulkTriageUseCase(
	ticketRepo ticket.Repository,
	orgRepo organization.Repository,
	completer triage.Completer,
	recorder AIRecorder,
	settings Settings,
	logger logger.Interface,
) *BulkTriageUseCase {
	return &BulkTriageUseCase{
		ticketRepo: ticketRepo,
		orgRepo:    orgRepo,
		completer:  completer,
		recorder:   recorder,
		settings:   settings,
		logger:     logger,
		now:        time.Now,
	}
}

// Execute classifies the organization's open candidates with one inference
// call and applies every valid assessment in one transaction. Nothing is
// written before the model answers.
func (uc *BulkTriageUseCase) Execute(ctx context.Context, cmd BulkTriageCommand) (*BulkTriageResult, error) {
	org, err := loadManagedOrganization(ctx, uc.orgRepo, uc.logger, cmd.Caller, cmd.OrganizationID)
	if err != nil {
		return nil, err
	}

	candidates, err := uc.ticketRepo.ListForTriage(ctx, org.ID(), cmd.IncludeTriaged, uc.settings.MaxBatchSize)
	if err != nil {
		uc.logger.Errorw("failed to list triage candidates", "org_id", org.ID(), "error", err)
		return nil, err
	}
	if len(candidates) == 0 {
		uc.logger.Infow("no tickets to triage", "org_id", org.ID())
		return &BulkTriageResult{AppliedResults: []AppliedResult{}}, nil
	}

	answer, err := uc.completer.Complete(ctx, triage.CompletionRequest{
		Model:  uc.settings.TriageModel,
		System: triage.TriageSystemPrompt,
		Prompt: triage.BulkTriagePrompt(org, candidates),
	})
	if err != nil {
		uc.recorder.RecordAIRequest(OperationBulkTriage, false)
		uc.logger.Errorw("bulk triage inference failed", "org_id", org.ID(), "error", err)
		return nil, asUpstream(err)
	}
	uc.recorder.RecordAIRequest(OperationBulkTriage, true)

	ids := make([]string, 0, len(candidates))
	for _, t := range candidates {
		ids = append(ids, t.ID())
	}
	updates, rejected := triage.ParseBulk(answer, ids)
	for _, r := range rejected {
		uc.logger.Warnw("dropped triage item", "org_id", org.ID(), "ticket_id", r.ID, "reason", r.Reason)
	}

	result := &BulkTriageResult{
		AppliedResults: []AppliedResult{},
		Candidates:     len(candidates),
		Rejected:       len(rejected),
	}
	if len(updates) == 0 {
		return result, nil
	}

	applied, err := uc.ticketRepo.ApplyTriage(ctx, org.ID(), updates, uc.now())
	if err != nil {
		uc.logger.Errorw("failed to apply triage", "org_id", org.ID(), "error", err)
		return nil, err
	}
	result.UpdatedCount = len(applied)
	result.AppliedResults = lo.Map(applied, func(u ticket.TriageUpdate, _ int) AppliedResult {
		return AppliedResult{TicketID: u.TicketID, Priority: u.Priority.String(), Tag: u.Tag.String()}
	})

	uc.logger.Infow("bulk triage applied",
		"org_id", org.ID(),
		"candidates", len(candidates),
		"updated", len(applied),
		"rejected", len(rejected),
	)
	return result, nil
}
