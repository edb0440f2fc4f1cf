package utils

import (
	"github.com/gin-gonic/gin"

	"pulseboard/internal/domain/access"
	"pulseboard/internal/shared/constants"
)

// CallerFromContext returns the caller set by the auth middleware, or nil
// for anonymous requests.
func CallerFromContext(c *gin.Context) *access.Caller {
	v, ok := c.Get(constants.ContextKeyCaller)
	if !ok {
		return nil
	}
	caller, _ := v.(*access.Caller)
	return caller
}

// SetCaller stores caller on the request context.
func SetCaller(c *gin.Context, caller *access.Caller) {
	c.Set(constants.ContextKeyCaller, caller)
	c.Set(constants.ContextKeyUserID, caller.ID)
}
