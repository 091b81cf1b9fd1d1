package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"gestiontickets/internal/infrastructure/ratelimit"
	"gestiontickets/internal/shared/logger"
	"gestiontickets/internal/shared/utils"
)

// LoginRateLimit throttles login attempts per client IP. A limiter failure
// lets the request through rather than locking everyone out.
func LoginRateLimit(limiter ratelimit.RateLimiter, log logger.Interface) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := "login:ip:" + c.ClientIP()

		allowed, err := limiter.Allow(key, ratelimit.LoginConfig)
		if err != nil {
			log.Warnw("rate limiter unavailable", "error", err)
			c.Next()
			return
		}

		if !allowed {
			log.Warnw("login rate limit exceeded", "client_ip", c.ClientIP())
			utils.ErrorResponse(c, http.StatusTooManyRequests, "too many login attempts, please try again later")
			c.Abort()
			return
		}

		c.Next()
	}
}
