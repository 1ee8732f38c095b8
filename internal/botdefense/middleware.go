package botdefense

import (
	"context"

	"github.com/gin-gonic/gin"

	"codeberg.org/racewiki/server/internal/errors"
	"codeberg.org/racewiki/server/internal/i18n"
	"codeberg.org/racewiki/server/internal/logger"
	"codeberg.org/racewiki/server/internal/metrics"
)

// orchestrates all bot defense components
type Defense struct {
	config *Config
	store  Store
}

// creates a new bot defense system
func New(config *Config, store Store) *Defense {
	return &Defense{
		config: config,
		store:  store,
	}
}

// returns a Gin middleware that traps probing clients and flags bot-like ones.
// user-agent heuristics never block on their own, scripts and the terminal
// client are legitimate API users.
func (d *Defense) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !d.config.Enabled {
			c.Next()
			return
		}

		ctx := c.Request.Context()
		ip := c.ClientIP()
		path := c.Request.URL.Path

		// exempt paths bypass all checks
		if d.config.IsExemptPath(path) {
			c.Next()
			return
		}

		if d.config.IsHoneypotPath(path) {
			d.trap(ctx, ip, path, ReasonHoneypot)
			ServePoisonedJSON(c)
			c.Abort()
			return
		}

		if IsSuspiciousPath(c.Request.URL.RawPath) || IsSuspiciousPath(path) {
			d.trap(ctx, ip, path, ReasonProbePath)
			d.block(c)
			return
		}

		// a store failure lets the request through
		trapped, reason, err := d.store.IsTrapped(ctx, ip)
		if err != nil {
			logger.FromContext(ctx).Warn("failed to check trapped status", "ip", ip, "error", err)
		} else if trapped {
			logger.FromContext(ctx).Debug("trapped IP request blocked", "ip", ip, "reason", reason)
			d.block(c)
			return
		}

		if signals := DetectBot(c.Request); signals.Score >= d.config.ScoreThreshold {
			metrics.BotRequestsTotal.WithLabelValues("flagged").Inc()

			logger.FromContext(ctx).Debug("bot-like request",
				"ip", ip,
				"path", path,
				"score", signals.Score,
				"pattern", signals.BotPatternMatch,
				"missing_headers", signals.MissingHeaders,
			)
		}

		c.Next()
	}
}

func (d *Defense) trap(ctx context.Context, ip, path string, reason TrapReason) {
	metrics.BotRequestsTotal.WithLabelValues("trapped").Inc()
	logger.FromContext(ctx).Warn("bot trapped", "ip", ip, "path", path, "reason", reason)

	if err := d.store.TrapIP(ctx, ip, reason); err != nil {
		logger.ErrorErr(err, "failed to trap IP", "ip", ip)
	}
}

func (d *Defense) block(c *gin.Context) {
	metrics.BotRequestsTotal.WithLabelValues("blocked").Inc()
	errors.Forbidden(c, i18n.T(i18n.FromGin(c), "error.forbidden"))
	c.Abort()
}
