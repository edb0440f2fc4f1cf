package utils

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"pulseboard/internal/shared/errors"
	"pulseboard/internal/shared/id"
)

// ParseSIDParam reads a prefixed id from the route parameter paramName.
// A malformed id cannot resolve to a row, so it is reported as not found.
func ParseSIDParam(c *gin.Context, paramName, prefix, entityName string) (string, error) {
	sid := c.Param(paramName)
	if sid == "" {
		return "", errors.NewValidationError(entityName + " ID is required")
	}
	if !id.HasPrefix(sid, prefix) {
		return "", errors.NewNotFoundError(fmt.Sprintf("%s not found", entityName))
	}
	return sid, nil
}
