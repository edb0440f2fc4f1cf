package http

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"pulseboard/internal/infrastructure/config"
	"pulseboard/internal/interfaces/http/middleware"
	"pulseboard/internal/shared/logger"
)

// Container holds the infrastructure clients, repositories, use cases,
// handlers and middlewares of the HTTP application.
type Container struct {
	// Core infrastructure
	engine *gin.Engine
	db     *gorm.DB
	cfg    *config.Config
	log    logger.Interface
	redis  *redis.Client

	// Repositories
	repos *repositories

	// Infrastructure services
	svcs *services

	// Use cases
	ucs *allUseCases

	// Handlers
	hdlrs *allHandlers

	// Middlewares
	authMiddleware *middleware.AuthMiddleware
	aiRateLimiter  *middleware.RateLimiter
}

// NewContainer wires every dependency in order: infrastructure, repositories,
// use cases, handlers, middlewares.
func NewContainer(db *gorm.DB, cfg *config.Config, log logger.Interface) (*Container, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is required")
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}

	c := &Container{
		engine: gin.New(),
		db:     db,
		cfg:    cfg,
		log:    log,
	}

	c.repos = newRepositories(db)
	c.initServices()
	c.ucs = c.newUseCases()
	c.hdlrs = c.newHandlers(sqlDB)

	c.authMiddleware = middleware.NewAuthMiddleware(c.svcs.jwt, log)
	c.aiRateLimiter = middleware.NewRateLimiter(c.svcs.aiLimiter, log)

	return c, nil
}

// Shutdown releases the clients the container opened. The database handle is
// owned by the caller.
func (c *Container) Shutdown() {
	if c.redis != nil {
		if err := c.redis.Close(); err != nil {
			c.log.Warnw("failed to close redis client", "error", err)
		}
		c.redis = nil
	}
}
