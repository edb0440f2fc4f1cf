package usecases

import (
	"context"
	"strings"

	"pulseboard/internal/application/triage"
	"pulseboard/internal/domain/access"
	"pulseboard/internal/domain/organization"
	"pulseboard/internal/shared/logger"
)

type RedditDigestCommand struct {
	Caller         *access.Caller
	OrganizationID string
}

type RedditDigestResult struct {
	Digest     string `json:"digest"`
	DigestHTML string `json:"digest_html"`
	PostCount  int    `json:"post_count"`
}

type RedditDigestUseCase struct {
	orgRepo   organization.Repository
	posts     triage.PostSource
	completer triage.Completer
	renderer  HTMLRenderer
	recorder  AIRecorder
	settings  Settings
	logger    logger.Interface
}

func NewRedditDigestUseCase(
	orgRepo organization.Repository,
	posts triage.PostSource,
	completer triage.Completer,
	renderer HTMLRenderer,
	recorder AIRecorder,
	settings Settings,
	logger logger.Interface,
) *RedditDigestUseCase {
	return &RedditDigestUseCase{
		orgRepo:   orgRepo,
		posts:     posts,
		completer: completer,
		renderer:  renderer,
		recorder:  recorder,
		settings:  settings,
		logger:    logger,
	}
}

// Execute digests recent Reddit posts mentioning the organization's name.
func (uc *RedditDigestUseCase) Execute(ctx context.Context, cmd RedditDigestCommand) (*RedditDigestResult, error) {
	org, err := loadManagedOrganization(ctx, uc.orgRepo, uc.logger, cmd.Caller, cmd.OrganizationID)
	if err != nil {
		return nil, err
	}

	posts, err := uc.posts.Search(ctx, org.Name(), uc.settings.RedditLimit)
	if err != nil {
		uc.recorder.RecordAIRequest(OperationRedditDigest, false)
		uc.logger.Errorw("reddit search failed", "org_id", org.ID(), "error", err)
		return nil, asUpstream(err)
	}
	if len(posts) == 0 {
		return &RedditDigestResult{}, nil
	}

	answer, err := uc.completer.Complete(ctx, triage.CompletionRequest{
		Model:  uc.settings.SummaryModel,
		System: triage.DigestSystemPrompt,
		Prompt: triage.DigestPrompt(org, posts),
	})
	if err != nil {
		uc.recorder.RecordAIRequest(OperationRedditDigest, false)
		uc.logger.Errorw("digest inference failed", "org_id", org.ID(), "error", err)
		return nil, asUpstream(err)
	}
	uc.recorder.RecordAIRequest(OperationRedditDigest, true)

	digest := strings.TrimSpace(answer)
	html, err := uc.renderer.ToHTMLSanitized(digest)
	if err != nil {
		uc.logger.Errorw("failed to render digest", "org_id", org.ID(), "error", err)
		return nil, err
	}

	uc.logger.Infow("reddit digest built", "org_id", org.ID(), "posts", len(posts))
	return &RedditDigestResult{Digest: digest, DigestHTML: html, PostCount: len(posts)}, nil
}
