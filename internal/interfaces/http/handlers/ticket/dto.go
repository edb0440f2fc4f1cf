package ticket

import (
	"github.com/gin-gonic/gin"

	"pulseboard/internal/application/ticket/usecases"
	"pulseboard/internal/domain/access"
	"pulseboard/internal/shared/constants"
	"pulseboard/internal/shared/utils"
)

type CreateTicketRequest struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description" validate:"required"`
	Tag         string `json:"tag" validate:"required"`
	Priority    string `json:"priority"`
	// Image is base64, optionally as a data URL.
	Image string `json:"image"`
}

func (r *CreateTicketRequest) ToCommand(caller *access.Caller, orgID string) (usecases.CreateTicketCommand, error) {
	image, err := utils.DecodeImage("image", r.Image, constants.MaxTicketImageSize)
	if err != nil {
		return usecases.CreateTicketCommand{}, err
	}
	return usecases.CreateTicketCommand{
		Caller:         caller,
		OrganizationID: orgID,
		Title:          r.Title,
		Description:    r.Description,
		Tag:            r.Tag,
		Priority:       r.Priority,
		Image:          image,
	}, nil
}

// UpdateTicketRequest is a partial update. An empty image string clears
// the stored image, as does clear_image.
type UpdateTicketRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Image       *string `json:"image"`
	ClearImage  bool    `json:"clear_image"`
}

func (r *UpdateTicketRequest) ToCommand(caller *access.Caller, ticketID string) (usecases.UpdateTicketCommand, error) {
	cmd := usecases.UpdateTicketCommand{
		Caller:      caller,
		TicketID:    ticketID,
		Title:       r.Title,
		Description: r.Description,
		ClearImage:  r.ClearImage,
	}
	if r.Image != nil {
		if *r.Image == "" {
			cmd.ClearImage = true
			return cmd, nil
		}
		image, err := utils.DecodeImage("image", *r.Image, constants.MaxTicketImageSize)
		if err != nil {
			return cmd, err
		}
		cmd.Image = image
	}
	return cmd, nil
}

type ChangeStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// parseListTicketsQuery reads q, status, tag, sort and pagination. Value
// checks happen in the use case so every bad filter is reported at once.
func parseListTicketsQuery(c *gin.Context, caller *access.Caller, orgID string) usecases.ListTicketsQuery {
	p := utils.ParsePagination(c)
	return usecases.ListTicketsQuery{
		Caller:         caller,
		OrganizationID: orgID,
		Search:         c.Query("q"),
		Status:         c.Query("status"),
		Tag:            c.Query("tag"),
		Sort:           c.Query("sort"),
		Page:           p.Page,
		PageSize:       p.PageSize,
	}
}
