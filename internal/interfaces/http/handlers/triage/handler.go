package triage

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"pulseboard/internal/application/triage/usecases"
	"pulseboard/internal/shared/errors"
	"pulseboard/internal/shared/id"
	"pulseboard/internal/shared/logger"
	"pulseboard/internal/shared/utils"
)

type BulkTriageExecutor interface {
	Execute(ctx context.Context, cmd usecases.BulkTriageCommand) (*usecases.BulkTriageResult, error)
}

type TriageTicketExecutor interface {
	Execute(ctx context.Context, cmd usecases.TriageTicketCommand) (*usecases.TriageTicketResult, error)
}

type SummarizeExecutor interface {
	Execute(ctx context.Context, cmd usecases.SummarizeCommand) (*usecases.SummarizeResult, error)
}

type RedditDigestExecutor interface {
	Execute(ctx context.Context, cmd usecases.RedditDigestCommand) (*usecases.RedditDigestResult, error)
}

// Handler serves the AI-assisted organization and ticket endpoints.
type Handler struct {
	bulkUC    BulkTriageExecutor
	ticketUC  TriageTicketExecutor
	summaryUC SummarizeExecutor
	digestUC  RedditDigestExecutor
	logger    logger.Interface
}

func NewHandler(
	bulkUC BulkTriageExecutor,
	ticketUC TriageTicketExecutor,
	summaryUC SummarizeExecutor,
	digestUC RedditDigestExecutor,
	logger logger.Interface,
) *Handler {
	return &Handler{
		bulkUC:    bulkUC,
		ticketUC:  ticketUC,
		summaryUC: summaryUC,
		digestUC:  digestUC,
		logger:    logger,
	}
}

// BulkTriage handles POST /organizations/:id/triage?all=true
func (h *Handler) BulkTriage(c *gin.Context) {
	orgID, err := parseOrganizationID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	includeTriaged := false
	if raw := c.Query("all"); raw != "" {
		includeTriaged, err = strconv.ParseBool(raw)
		if err != nil {
			utils.ErrorResponseWithError(c, errors.NewValidationError("Validation failed", "all must be a boolean"))
			return
		}
	}

	result, err := h.bulkUC.Execute(c.Request.Context(), usecases.BulkTriageCommand{
		Caller:         utils.CallerFromContext(c),
		OrganizationID: orgID,
		IncludeTriaged: includeTriaged,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// TriageTicket handles POST /tickets/:id/triage
func (h *Handler) TriageTicket(c *gin.Context) {
	ticketID, err := utils.ParseSIDParam(c, "id", id.PrefixTicket, "ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.ticketUC.Execute(c.Request.Context(), usecases.TriageTicketCommand{
		Caller:   utils.CallerFromContext(c),
		TicketID: ticketID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// Summarize handles POST /organizations/:id/summary
func (h *Handler) Summarize(c *gin.Context) {
	orgID, err := parseOrganizationID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.summaryUC.Execute(c.Request.Context(), usecases.SummarizeCommand{
		Caller:         utils.CallerFromContext(c),
		OrganizationID: orgID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// RedditDigest handles POST /organizations/:id/reddit-digest
func (h *Handler) RedditDigest(c *gin.Context) {
	orgID, err := parseOrganizationID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.digestUC.Execute(c.Request.Context(), usecases.RedditDigestCommand{
		Caller:         utils.CallerFromContext(c),
		OrganizationID: orgID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

func parseOrganizationID(c *gin.Context) (string, error) {
	return utils.ParseSIDParam(c, "id", id.PrefixOrganization, "organization")
}
