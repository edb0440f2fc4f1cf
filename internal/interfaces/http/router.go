package http

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"

	"pulseboard/internal/infrastructure/config"
	"pulseboard/internal/interfaces/http/middleware"
	"pulseboard/internal/interfaces/http/routes"
	"pulseboard/internal/shared/logger"
)

// Router represents the HTTP router configuration
type Router struct {
	*Container
}

// NewRouter creates a new HTTP router with all dependencies
func NewRouter(db *gorm.DB, cfg *config.Config, log logger.Interface) (*Router, error) {
	c, err := NewContainer(db, cfg, log)
	if err != nil {
		return nil, err
	}
	return &Router{Container: c}, nil
}

// SetupRoutes configures all HTTP routes
func (r *Router) SetupRoutes() {
	r.engine.Use(middleware.RequestID())
	r.engine.Use(middleware.Logger(r.log))
	r.engine.Use(middleware.Recovery(r.log))
	r.engine.Use(middleware.CORS(r.cfg.Server.AllowedOrigins))
	r.engine.Use(middleware.SecurityHeaders())
	r.engine.Use(middleware.Metrics())

	r.engine.GET("/health", r.hdlrs.healthHandler.HealthCheck)
	r.engine.GET("/metrics", gin.WrapH(promhttp.Handler()))

	routes.SetupOrganizationRoutes(r.engine, &routes.OrganizationRouteConfig{
		OrganizationHandler: r.hdlrs.organizationHandler,
		TicketHandler:       r.hdlrs.ticketHandler,
		TriageHandler:       r.hdlrs.triageHandler,
		AuthMiddleware:      r.authMiddleware,
		AIRateLimiter:       r.aiRateLimiter,
	})

	routes.SetupTicketRoutes(r.engine, &routes.TicketRouteConfig{
		TicketHandler:  r.hdlrs.ticketHandler,
		VoteHandler:    r.hdlrs.voteHandler,
		TriageHandler:  r.hdlrs.triageHandler,
		AuthMiddleware: r.authMiddleware,
		AIRateLimiter:  r.aiRateLimiter,
	})
}

// GetEngine returns the gin engine
func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}

// Run starts the HTTP server
func (r *Router) Run(addr string) error {
	return r.engine.Run(addr)
}
