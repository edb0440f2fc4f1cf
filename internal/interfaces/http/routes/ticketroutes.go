package routes

import (
	"github.com/gin-gonic/gin"

	tickethandlers "pulseboard/internal/interfaces/http/handlers/ticket"
	triagehandlers "pulseboard/internal/interfaces/http/handlers/triage"
	votehandlers "pulseboard/internal/interfaces/http/handlers/vote"
	"pulseboard/internal/interfaces/http/middleware"
)

type TicketRouteConfig struct {
	TicketHandler  *tickethandlers.Handler
	VoteHandler    *votehandlers.Handler
	TriageHandler  *triagehandlers.Handler
	AuthMiddleware *middleware.AuthMiddleware
	AIRateLimiter  *middleware.RateLimiter
}

func SetupTicketRoutes(engine *gin.Engine, config *TicketRouteConfig) {
	auth := config.AuthMiddleware
	tickets := engine.Group("/tickets")
	{
		// Specific named endpoints (must come BEFORE /:id to avoid conflicts)
		tickets.GET("/mine", auth.RequireAuth(), config.TicketHandler.ListMine)
		tickets.GET("/votes", auth.OptionalAuth(), config.VoteHandler.ListVoted)

		tickets.GET("/:id", auth.OptionalAuth(), config.TicketHandler.Get)
		tickets.PATCH("/:id", auth.RequireAuth(), config.TicketHandler.Update)
		tickets.DELETE("/:id", auth.RequireAuth(), config.TicketHandler.Delete)
		tickets.PATCH("/:id/status", auth.RequireAuth(), config.TicketHandler.ChangeStatus)
		tickets.GET("/:id/image", config.TicketHandler.GetImage)

		tickets.POST("/:id/vote", auth.RequireAuth(), config.VoteHandler.Toggle)
		tickets.GET("/:id/vote", auth.OptionalAuth(), config.VoteHandler.HasVoted)

		tickets.POST("/:id/triage", auth.RequireAuth(), config.AIRateLimiter.Limit(), config.TriageHandler.TriageTicket)
	}
}
