package vote

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"pulseboard/internal/application/vote/usecases"
	"pulseboard/internal/domain/access"
	"pulseboard/internal/shared/constants"
	"pulseboard/internal/shared/errors"
	"pulseboard/internal/shared/id"
	"pulseboard/internal/shared/logger"
	"pulseboard/internal/shared/utils"
)

type ToggleVoteExecutor interface {
	Execute(ctx context.Context, cmd usecases.ToggleVoteCommand) (*usecases.ToggleVoteResult, error)
}

type HasVotedExecutor interface {
	Execute(ctx context.Context, caller *access.Caller, ticketID string) (bool, error)
}

type ListVotedExecutor interface {
	Execute(ctx context.Context, caller *access.Caller, ticketIDs []string) (map[string]bool, error)
}

type HasVotedResponse struct {
	HasVoted bool `json:"has_voted"`
}

type ListVotedResponse struct {
	Voted map[string]bool `json:"voted"`
}

type Handler struct {
	toggleUC    ToggleVoteExecutor
	hasVotedUC  HasVotedExecutor
	listVotedUC ListVotedExecutor
	logger      logger.Interface
}

func NewHandler(toggleUC ToggleVoteExecutor, hasVotedUC HasVotedExecutor, listVotedUC ListVotedExecutor, logger logger.Interface) *Handler {
	return &Handler{
		toggleUC:    toggleUC,
		hasVotedUC:  hasVotedUC,
		listVotedUC: listVotedUC,
		logger:      logger,
	}
}

// Toggle handles POST /tickets/:id/vote
func (h *Handler) Toggle(c *gin.Context) {
	ticketID, err := utils.ParseSIDParam(c, "id", id.PrefixTicket, "ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.toggleUC.Execute(c.Request.Context(), usecases.ToggleVoteCommand{
		Caller:   utils.CallerFromContext(c),
		TicketID: ticketID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// HasVoted handles GET /tickets/:id/vote. Anonymous callers get false.
func (h *Handler) HasVoted(c *gin.Context) {
	ticketID, err := utils.ParseSIDParam(c, "id", id.PrefixTicket, "ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	voted, err := h.hasVotedUC.Execute(c.Request.Context(), utils.CallerFromContext(c), ticketID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", HasVotedResponse{HasVoted: voted})
}

// ListVoted handles GET /tickets/votes?ids=tkt_a,tkt_b. Every requested id
// appears in the response.
func (h *Handler) ListVoted(c *gin.Context) {
	ids, err := parseTicketIDs(c.Query("ids"))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	voted, err := h.listVotedUC.Execute(c.Request.Context(), utils.CallerFromContext(c), ids)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result := make(map[string]bool, len(ids))
	for _, ticketID := range ids {
		result[ticketID] = voted[ticketID]
	}
	utils.SuccessResponse(c, http.StatusOK, "", ListVotedResponse{Voted: result})
}

func parseTicketIDs(raw string) ([]string, error) {
	var ids []string
	seen := map[string]bool{}
	for _, part := range strings.Split(raw, ",") {
		ticketID := strings.TrimSpace(part)
		if ticketID == "" || seen[ticketID] {
			continue
		}
		if !id.HasPrefix(ticketID, id.PrefixTicket) {
			return nil, errors.NewValidationError("Validation failed", fmt.Sprintf("ids contains malformed ticket id %q", ticketID))
		}
		seen[ticketID] = true
		ids = append(ids, ticketID)
	}
	if len(ids) == 0 {
		return nil, errors.NewValidationError("Validation failed", "ids is required")
	}
	if len(ids) > constants.MaxPageSize {
		return nil, errors.NewValidationError("Validation failed", fmt.Sprintf("ids must list at most %d tickets", constants.MaxPageSize))
	}
	return ids, nil
}
