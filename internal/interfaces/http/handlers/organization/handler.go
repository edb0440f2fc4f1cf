package organization

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"pulseboard/internal/application/organization/usecases"
	"pulseboard/internal/shared/id"
	"pulseboard/internal/shared/logger"
	"pulseboard/internal/shared/utils"
)

type Handler struct {
	createUC   CreateOrganizationExecutor
	updateUC   UpdateOrganizationExecutor
	getUC      GetOrganizationExecutor
	getMineUC  GetMyOrganizationExecutor
	getImageUC GetOrganizationImageExecutor
	searchUC   SearchOrganizationsExecutor
	logger     logger.Interface
}

func NewHandler(
	createUC CreateOrganizationExecutor,
	updateUC UpdateOrganizationExecutor,
	getUC GetOrganizationExecutor,
	getMineUC GetMyOrganizationExecutor,
	getImageUC GetOrganizationImageExecutor,
	searchUC SearchOrganizationsExecutor,
	logger logger.Interface,
) *Handler {
	return &Handler{
		createUC:   createUC,
		updateUC:   updateUC,
		getUC:      getUC,
		getMineUC:  getMineUC,
		getImageUC: getImageUC,
		searchUC:   searchUC,
		logger:     logger,
	}
}

// Search handles GET /organizations
func (h *Handler) Search(c *gin.Context) {
	p := utils.ParsePagination(c)
	result, err := h.searchUC.Execute(c.Request.Context(), usecases.SearchOrganizationsQuery{
		Query:    c.Query("q"),
		Page:     p.Page,
		PageSize: p.PageSize,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Organizations, result.Total, result.Page, result.PageSize)
}

// Create handles POST /organizations
func (h *Handler) Create(c *gin.Context) {
	var req CreateOrganizationRequest
	if err := utils.BindJSON(c, &req); err != nil {
		h.logger.Warnw("invalid request body for create organization", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd, err := req.ToCommand(utils.CallerFromContext(c))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.createUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Organization created successfully")
}

// GetMine handles GET /organizations/me
func (h *Handler) GetMine(c *gin.Context) {
	result, err := h.getMineUC.Execute(c.Request.Context(), utils.CallerFromContext(c))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// Get handles GET /organizations/:id
func (h *Handler) Get(c *gin.Context) {
	orgID, err := parseOrganizationID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getUC.Execute(c.Request.Context(), orgID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// Update handles PATCH /organizations/:id
func (h *Handler) Update(c *gin.Context) {
	orgID, err := parseOrganizationID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateOrganizationRequest
	if err := utils.BindJSON(c, &req); err != nil {
		h.logger.Warnw("invalid request body for update organization", "org_id", orgID, "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd, err := req.ToCommand(utils.CallerFromContext(c), orgID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.updateUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Organization updated successfully", result)
}

// GetImage handles GET /organizations/:id/image
func (h *Handler) GetImage(c *gin.Context) {
	orgID, err := parseOrganizationID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getImageUC.Execute(c.Request.Context(), orgID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.BinaryResponse(c, result.ContentType, result.Data)
}

func parseOrganizationID(c *gin.Context) (string, error) {
	return utils.ParseSIDParam(c, "id", id.PrefixOrganization, "organization")
}
