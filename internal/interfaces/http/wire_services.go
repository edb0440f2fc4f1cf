package http

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"pulseboard/internal/application/triage"
	"pulseboard/internal/infrastructure/auth"
	"pulseboard/internal/infrastructure/config"
	"pulseboard/internal/infrastructure/inference"
	"pulseboard/internal/infrastructure/metrics"
	"pulseboard/internal/infrastructure/ratelimit"
	"pulseboard/internal/infrastructure/reddit"
	"pulseboard/internal/shared/logger"
	"pulseboard/internal/shared/services/markdown"
)

const aiRateLimitPrefix = "ratelimit:ai:"

// services holds the infrastructure adapters behind the application ports.
type services struct {
	jwt       *auth.JWTService
	completer triage.Completer
	posts     triage.PostSource
	renderer  markdown.Renderer
	recorder  *metrics.Recorder
	aiLimiter ratelimit.Limiter
}

func (c *Container) initServices() {
	c.svcs = &services{
		jwt:       auth.NewJWTService(c.cfg.Auth.JWT.Secret, c.cfg.Auth.JWT.Issuer, c.cfg.Auth.JWT.AccessExpMinutes),
		completer: inference.NewOpenAIClient(c.cfg.AI, c.log.Named("inference")),
		posts:     reddit.NewClient(c.cfg.Reddit, c.log.Named("reddit")),
		renderer:  markdown.NewRenderer(),
		recorder:  metrics.NewRecorder(),
	}

	if !c.cfg.RateLimit.Enabled {
		c.log.Infow("AI rate limiting disabled")
		return
	}

	c.redis = initRedis(c.cfg, c.log)
	c.svcs.aiLimiter = ratelimit.NewRedisRateLimiter(
		c.redis,
		aiRateLimitPrefix,
		c.cfg.RateLimit.AIRequests,
		c.cfg.RateLimit.Window(),
	)
}

// initRedis creates the Redis client and checks the connection. An
// unreachable server is logged and the limiter fails open.
func initRedis(cfg *config.Config, log logger.Interface) *redis.Client {
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.GetAddr(),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := redisClient.Ping(ctx).Err(); err != nil {
		log.Warnw("redis unreachable, AI rate limiting fails open", "addr", cfg.Redis.GetAddr(), "error", err)
		return redisClient
	}
	log.Infow("Redis connection established successfully")

	return redisClient
}
