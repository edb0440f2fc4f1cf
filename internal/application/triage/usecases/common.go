package usecases

import (
	"context"

	"pulseboard/internal/domain/access"
	"pulseboard/internal/domain/organization"
	"pulseboard/internal/shared/constants"
	"pulseboard/internal/shared/errors"
	"pulseboard/internal/shared/logger"
)

// Settings are the model names and limits from the ai and reddit config sections.
type Settings struct {
	TriageModel  string
	SummaryModel string
	MaxBatchSize int
	RedditLimit  int
}

// HTMLRenderer turns model markdown into sanitized HTML.
type HTMLRenderer interface {
	ToHTMLSanitized(markdown string) (string, error)
}

// AIRecorder counts AI-assisted operations.
type AIRecorder interface {
	RecordAIRequest(operation string, success bool)
}

const (
	OperationBulkTriage   = "bulk_triage"
	OperationTriageTicket = "triage_ticket"
	OperationSummary      = "summary"
	OperationRedditDigest = "reddit_digest"
)

func loadManagedOrganization(ctx context.Context, repo organization.Repository, log logger.Interface, caller *access.Caller, orgID string) (*organization.Organization, error) {
	if !caller.Authenticated() {
		return nil, access.CanManageOrganization(caller, nil).Err()
	}

	org, err := repo.GetByID(ctx, orgID)
	if err != nil {
		log.Errorw("failed to get organization", "org_id", orgID, "error", err)
		return nil, err
	}
	if err := access.CanManageOrganization(caller, org).Err(); err != nil {
		if org != nil {
			log.Warnw("ai operation denied", "org_id", orgID, "user_id", caller.ID)
		}
		return nil, err
	}
	return org, nil
}

// asUpstream keeps taxonomy errors and wraps anything else from a collaborator.
func asUpstream(err error) error {
	if errors.IsAppError(err) {
		return err
	}
	return errors.NewUpstreamError(constants.ErrMsgAIUnavailable).WithCause(err)
}
