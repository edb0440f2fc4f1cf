package routes

import (
	"github.com/gin-gonic/gin"

	organizationhandlers "pulseboard/internal/interfaces/http/handlers/organization"
	tickethandlers "pulseboard/internal/interfaces/http/handlers/ticket"
	triagehandlers "pulseboard/internal/interfaces/http/handlers/triage"
	"pulseboard/internal/interfaces/http/middleware"
)

type OrganizationRouteConfig struct {
	OrganizationHandler *organizationhandlers.Handler
	TicketHandler       *tickethandlers.Handler
	TriageHandler       *triagehandlers.Handler
	AuthMiddleware      *middleware.AuthMiddleware
	AIRateLimiter       *middleware.RateLimiter
}

func SetupOrganizationRoutes(engine *gin.Engine, config *OrganizationRouteConfig) {
	auth := config.AuthMiddleware
	orgs := engine.Group("/organizations")
	{
		// Collection operations (no ID parameter)
		orgs.GET("", auth.OptionalAuth(), config.OrganizationHandler.Search)
		orgs.POST("", auth.RequireAuth(), config.OrganizationHandler.Create)

		// Specific named endpoints (must come BEFORE /:id to avoid conflicts)
		orgs.GET("/me", auth.RequireAuth(), config.OrganizationHandler.GetMine)

		orgs.GET("/:id", auth.OptionalAuth(), config.OrganizationHandler.Get)
		orgs.PATCH("/:id", auth.RequireAuth(), config.OrganizationHandler.Update)
		orgs.GET("/:id/image", config.OrganizationHandler.GetImage)

		orgs.GET("/:id/tickets", auth.OptionalAuth(), config.TicketHandler.ListForOrganization)
		orgs.POST("/:id/tickets", auth.RequireAuth(), config.TicketHandler.Create)

		// AI operations
		orgs.POST("/:id/triage", auth.RequireAuth(), config.AIRateLimiter.Limit(), config.TriageHandler.BulkTriage)
		orgs.POST("/:id/summary", auth.RequireAuth(), config.AIRateLimiter.Limit(), config.TriageHandler.Summarize)
		orgs.POST("/:id/reddit-digest", auth.RequireAuth(), config.AIRateLimiter.Limit(), config.TriageHandler.RedditDigest)
	}
}
