package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

type clientLimiter struct {
	limiter *rate.Limiter
	expires time.Time
}

type limiterPool struct {
	mu       sync.Mutex
	clients  map[string]*clientLimiter
	limit    rate.Limit
	burst    int
	lifetime time.Duration
}

// RateLimit applies a per-IP token bucket allowing perMinute requests.
// A value of zero disables limiting entirely.
func RateLimit(perMinute int) gin.HandlerFunc {
	if perMinute <= 0 {
		return func(c *gin.Context) { c.Next() }
	}

	pool := &limiterPool{
		clients:  map[string]*clientLimiter{},
		limit:    rate.Every(time.Minute / time.Duration(perMinute)),
		burst:    maxInt(perMinute/2, 1),
		lifetime: 5 * time.Minute,
	}

	return func(c *gin.Context) {
		if !pool.allow(c.ClientIP()) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"detail": "Request was throttled."})
			return
		}
		c.Next()
	}
}

func (p *limiterPool) allow(key string) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	now := time.Now()
	for k, cl := range p.clients {
		if now.After(cl.expires) {
			delete(p.clients, k)
		}
	}

	cl, ok := p.clients[key]
	if !ok {
		cl = &clientLimiter{limiter: rate.NewLimiter(p.limit, p.burst)}
		p.clients[key] = cl
	}
	cl.expires = now.Add(p.lifetime)
	return cl.limiter.Allow()
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
