package handler

import (
	"crypto/subtle"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

// BasicAuth gates the admin routes behind the single shared credential from
// the environment. Comparison is constant time; this is a door lock for one
// operator, not a multi-user auth system.
func BasicAuth(username, password string) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, pass, ok := c.Request.BasicAuth()
		userOK := subtle.ConstantTimeCompare([]byte(user), []byte(username)) == 1
		passOK := subtle.ConstantTimeCompare([]byte(pass), []byte(password)) == 1
		if !ok || !userOK || !passOK {
			c.Header("WWW-Authenticate", `Basic realm="Secure Area"`)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			return
		}
		c.Next()
	}
}

type rateLimiter struct {
	mu       sync.Mutex
	visitors map[string]int
	limit    int
	reset    time.Duration
}

// NewRateLimiter caps requests per client IP within each reset window.
func NewRateLimiter(limit int, reset time.Duration) *rateLimiter {
	rl := &rateLimiter{
		visitors: make(map[string]int),
		limit:    limit,
		reset:    reset,
	}
	go rl.resetLoop()
	return rl
}

func (rl *rateLimiter) resetLoop() {
	for {
		time.Sleep(rl.reset)
		rl.mu.Lock()
		rl.visitors = make(map[string]int)
		rl.mu.Unlock()
	}
}

func (rl *rateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		rl.mu.Lock()
		rl.visitors[c.ClientIP()]++
		over := rl.visitors[c.ClientIP()] > rl.limit
		rl.mu.Unlock()

		if over {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "Too many requests, try again later"})
			return
		}
		c.Next()
	}
}
