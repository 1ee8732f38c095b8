package ratelimit

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/ulule/limiter/v3"
	mgin "github.com/ulule/limiter/v3/drivers/middleware/gin"
	"github.com/ulule/limiter/v3/drivers/store/memory"
	sredis "github.com/ulule/limiter/v3/drivers/store/redis"

	"codeberg.org/racewiki/server/internal/errors"
	"codeberg.org/racewiki/server/internal/i18n"
	"codeberg.org/racewiki/server/internal/logger"
)

const keyPrefix = "racewiki:ratelimit"

// builds a per-IP limiter for a formatted rate like "60-M".
// counters live in redis when a client is given so replicas share them.
func New(rate string, client *redis.Client) (gin.HandlerFunc, error) {
	parsed, err := limiter.NewRateFromFormatted(rate)
	if err != nil {
		return nil, fmt.Errorf("invalid rate limit %q: %w", rate, err)
	}

	var store limiter.Store

	if client != nil {
		store, err = sredis.NewStoreWithOptions(client, limiter.StoreOptions{Prefix: keyPrefix})
		if err != nil {
			return nil, fmt.Errorf("failed to create redis rate limit store: %w", err)
		}
	} else {
		store = memory.NewStoreWithOptions(limiter.StoreOptions{Prefix: keyPrefix})
	}

	instance := limiter.New(store, parsed)

	return mgin.NewMiddleware(instance,
		mgin.WithLimitReachedHandler(limitReached),
		mgin.WithErrorHandler(storeFailed),
	), nil
}

func limitReached(c *gin.Context) {
	errors.TooManyRequests(c, i18n.T(i18n.FromGin(c), "error.rateLimited"))
}

// a broken counter store should not take search down with it
func storeFailed(c *gin.Context, err error) {
	logger.FromContext(c.Request.Context()).Warn("rate limiter store failed", "error", err)
	c.Next()
}
