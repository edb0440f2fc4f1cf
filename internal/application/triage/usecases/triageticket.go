package usecases

import (
	"context"
	"time"

	"pulseboard/internal/application/triage"
	"pulseboard/internal/domain/access"
	"pulseboard/internal/domain/organization"
	"pulseboard/internal/domain/ticket"
	"pulseboard/internal/shared/errors"
	"pulseboard/internal/shared/logger"
)

type TriageTicketCommand struct {
	Caller   *access.Caller
	TicketID string
}

type TriageTicketResult struct {
	TicketID      string    `json:"ticket_id"`
	Priority      string    `json:"priority"`
	Tag           string    `json:"tag"`
	TriageStatus  string    `json:"triage_status"`
	LastTriagedAt time.Time `json:"last_triaged_at"`
}

type TriageTicketUseCase struct {
	ticketRepo ticket.Repository
	orgRepo    organization.Repository
	completer  triage.Completer
	recorder   AIRecorder
	settings   Settings
	logger     logger.Interface
	now        func() time.Time
}

func NewTriageTicketUseCase(
	ticketRepo ticket.Repository,
	orgRepo organization.Repository,
	completer triage.Completer,
	recorder AIRecorder,
	settings Settings,
	logger logger.Interface,
) *TriageTicketUseCase {
	return &TriageTicketUseCase{
		ticketRepo: ticketRepo,
		orgRepo:    orgRepo,
		completer:  completer,
		recorder:   recorder,
		settings:   settings,
		logger:     logger,
		now:        time.Now,
	}
}

// Execute classifies one ticket, sending its image when present. A response
// that is not a valid {priority, type} object is a ParseError and changes nothing.
func (uc *TriageTicketUseCase) Execute(ctx context.Context, cmd TriageTicketCommand) (*TriageTicketResult, error) {
	if !cmd.Caller.Authenticated() {
		return nil, access.CanManageOrganization(cmd.Caller, nil).Err()
	}

	t, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID)
	if err != nil {
		uc.logger.Errorw("failed to get ticket", "ticket_id", cmd.TicketID, "error", err)
		return nil, err
	}
	if t == nil {
		return nil, errors.NewNotFoundError("ticket not found")
	}

	org, err := loadManagedOrganization(ctx, uc.orgRepo, uc.logger, cmd.Caller, t.OrganizationID())
	if err != nil {
		return nil, err
	}

	answer, err := uc.completer.Complete(ctx, triage.CompletionRequest{
		Model:  uc.settings.TriageModel,
		System: triage.TriageSystemPrompt,
		Prompt: triage.SingleTriagePrompt(org, t),
		Image:  t.Image(),
	})
	if err != nil {
		uc.recorder.RecordAIRequest(OperationTriageTicket, false)
		uc.logger.Errorw("ticket triage inference failed", "ticket_id", t.ID(), "error", err)
		return nil, asUpstream(err)
	}

	priority, tag, err := triage.ParseSingle(answer)
	if err != nil {
		uc.recorder.RecordAIRequest(OperationTriageTicket, false)
		uc.logger.Warnw("unparseable ticket triage", "ticket_id", t.ID(), "error", err)
		return nil, err
	}
	uc.recorder.RecordAIRequest(OperationTriageTicket, true)

	at := uc.now()
	if err := t.ApplyTriage(priority, tag, at); err != nil {
		return nil, errors.NewParseError("AI response could not be parsed", err.Error())
	}
	if _, err := uc.ticketRepo.ApplyTriage(ctx, org.ID(), []ticket.TriageUpdate{
		{TicketID: t.ID(), Priority: priority, Tag: tag},
	}, at); err != nil {
		uc.logger.Errorw("failed to apply ticket triage", "ticket_id", t.ID(), "error", err)
		return nil, err
	}

	uc.logger.Infow("ticket triaged", "ticket_id", t.ID(), "priority", priority, "tag", tag)
	return &TriageTicketResult{
		TicketID:      t.ID(),
		Priority:      t.Priority().String(),
		Tag:           t.Tag().String(),
		TriageStatus:  t.TriageStatus().String(),
		LastTriagedAt: *t.LastTriagedAt(),
	}, nil
}
