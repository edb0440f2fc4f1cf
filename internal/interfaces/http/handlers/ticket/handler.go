package ticket

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"pulseboard/internal/application/ticket/usecases"
	"pulseboard/internal/shared/id"
	"pulseboard/internal/shared/logger"
	"pulseboard/internal/shared/utils"
)

type Handler struct {
	createUC       CreateTicketExecutor
	updateUC       UpdateTicketExecutor
	changeStatusUC ChangeStatusExecutor
	deleteUC       DeleteTicketExecutor
	getUC          GetTicketExecutor
	getImageUC     GetTicketImageExecutor
	listUC         ListTicketsExecutor
	listMineUC     ListMyTicketsExecutor
	logger         logger.Interface
}

func NewHandler(
	createUC CreateTicketExecutor,
	updateUC UpdateTicketExecutor,
	changeStatusUC ChangeStatusExecutor,
	deleteUC DeleteTicketExecutor,
	getUC GetTicketExecutor,
	getImageUC GetTicketImageExecutor,
	listUC ListTicketsExecutor,
	listMineUC ListMyTicketsExecutor,
	logger logger.Interface,
) *Handler {
	return &Handler{
		createUC:       createUC,
		updateUC:       updateUC,
		changeStatusUC: changeStatusUC,
		deleteUC:       deleteUC,
		getUC:          getUC,
		getImageUC:     getImageUC,
		listUC:         listUC,
		listMineUC:     listMineUC,
		logger:         logger,
	}
}

// Create handles POST /organizations/:id/tickets
func (h *Handler) Create(c *gin.Context) {
	orgID, err := utils.ParseSIDParam(c, "id", id.PrefixOrganization, "organization")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req CreateTicketRequest
	if err := utils.BindJSON(c, &req); err != nil {
		h.logger.Warnw("invalid request body for create ticket", "org_id", orgID, "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd, err := req.ToCommand(utils.CallerFromContext(c), orgID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.createUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Ticket created successfully")
}

// ListForOrganization handles GET /organizations/:id/tickets
func (h *Handler) ListForOrganization(c *gin.Context) {
	orgID, err := utils.ParseSIDParam(c, "id", id.PrefixOrganization, "organization")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.listUC.Execute(c.Request.Context(), parseListTicketsQuery(c, utils.CallerFromContext(c), orgID))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Tickets, result.Total, result.Page, result.PageSize)
}

// ListMine handles GET /tickets/mine
func (h *Handler) ListMine(c *gin.Context) {
	p := utils.ParsePagination(c)
	result, err := h.listMineUC.Execute(c.Request.Context(), usecases.ListMyTicketsQuery{
		Caller:   utils.CallerFromContext(c),
		Page:     p.Page,
		PageSize: p.PageSize,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Tickets, result.Total, result.Page, result.PageSize)
}

// Get handles GET /tickets/:id
func (h *Handler) Get(c *gin.Context) {
	ticketID, err := parseTicketID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getUC.Execute(c.Request.Context(), usecases.GetTicketQuery{
		Caller:   utils.CallerFromContext(c),
		TicketID: ticketID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// Update handles PATCH /tickets/:id
func (h *Handler) Update(c *gin.Context) {
	ticketID, err := parseTicketID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateTicketRequest
	if err := utils.BindJSON(c, &req); err != nil {
		h.logger.Warnw("invalid request body for update ticket", "ticket_id", ticketID, "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd, err := req.ToCommand(utils.CallerFromContext(c), ticketID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.updateUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Ticket updated successfully", result)
}

// ChangeStatus handles PATCH /tickets/:id/status
func (h *Handler) ChangeStatus(c *gin.Context) {
	ticketID, err := parseTicketID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req ChangeStatusRequest
	if err := utils.BindJSON(c, &req); err != nil {
		h.logger.Warnw("invalid request body for change ticket status", "ticket_id", ticketID, "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.changeStatusUC.Execute(c.Request.Context(), usecases.ChangeStatusCommand{
		Caller:   utils.CallerFromContext(c),
		TicketID: ticketID,
		Status:   req.Status,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Ticket status updated successfully", result)
}

// Delete handles DELETE /tickets/:id
func (h *Handler) Delete(c *gin.Context) {
	ticketID, err := parseTicketID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.deleteUC.Execute(c.Request.Context(), usecases.DeleteTicketCommand{
		Caller:   utils.CallerFromContext(c),
		TicketID: ticketID,
	}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

// GetImage handles GET /tickets/:id/image
func (h *Handler) GetImage(c *gin.Context) {
	ticketID, err := parseTicketID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getImageUC.Execute(c.Request.Context(), ticketID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.BinaryResponse(c, result.ContentType, result.Data)
}

func parseTicketID(c *gin.Context) (string, error) {
	return utils.ParseSIDParam(c, "id", id.PrefixTicket, "ticket")
}
