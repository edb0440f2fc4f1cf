package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"pulseboard/internal/shared/constants"
	"pulseboard/internal/shared/errors"
)

// APIResponse is the JSON envelope of every endpoint.
type APIResponse struct {
	Success bool       `json:"success"`
	Data    any        `json:"data,omitempty"`
	Error   *ErrorInfo `json:"error,omitempty"`
	Message string     `json:"message,omitempty"`
}

type ErrorInfo struct {
	Type    string `json:"type"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

type ListResponse struct {
	Items      any   `json:"items"`
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	PageSize   int   `json:"page_size"`
	TotalPages int   `json:"total_pages"`
}

func SuccessResponse(c *gin.Context, statusCode int, message string, data any) {
	c.JSON(statusCode, APIResponse{Success: true, Data: data, Message: message})
}

func CreatedResponse(c *gin.Context, data any, message ...string) {
	msg := "Resource created successfully"
	if len(message) > 0 {
		msg = message[0]
	}
	c.JSON(http.StatusCreated, APIResponse{Success: true, Data: data, Message: msg})
}

// ErrorResponseWithError renders err through the AppError taxonomy. Errors
// outside the taxonomy become a generic 500 without details.
func ErrorResponseWithError(c *gin.Context, err error) {
	appErr := errors.GetAppError(err)
	if appErr == nil {
		c.JSON(http.StatusInternalServerError, APIResponse{
			Error: &ErrorInfo{
				Type:    string(errors.ErrorTypeInternal),
				Message: constants.ErrMsgInternalServerError,
			},
		})
		return
	}

	info := &ErrorInfo{
		Type:    string(appErr.Type),
		Message: appErr.Message,
		Details: appErr.Details,
	}
	if appErr.Type == errors.ErrorTypeUpstream || appErr.Type == errors.ErrorTypeParse {
		info.Message = constants.ErrMsgAIUnavailable
		info.Details = ""
	}
	c.JSON(appErr.Code, APIResponse{Error: info})
}

func ListSuccessResponse(c *gin.Context, items any, total int64, page, pageSize int) {
	c.JSON(http.StatusOK, APIResponse{
		Success: true,
		Data: ListResponse{
			Items:      items,
			Total:      total,
			Page:       page,
			PageSize:   pageSize,
			TotalPages: TotalPages(total, pageSize),
		},
	})
}

// BinaryResponse writes raw bytes, used for stored images.
func BinaryResponse(c *gin.Context, contentType string, data []byte) {
	c.Header("Cache-Control", "public, max-age=300")
	c.Data(http.StatusOK, contentType, data)
}

func NoContentResponse(c *gin.Context) {
	c.Status(http.StatusNoContent)
}
