package middleware

import (
	"net/http"
	"sync"
	"time"

	"elceibo/internal/apierror"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// ventana tracks request counts per IP within a sliding window.
type ventana struct {
	count     int
	windowEnd time.Time
	mu        sync.Mutex
}

var (
	loginMap   = make(map[string]*ventana)
	loginMapMu sync.Mutex

	apiMap   = make(map[string]*ventana)
	apiMapMu sync.Mutex
)

// LoginRateLimiter limits login attempts to 20 per minute per IP.
func LoginRateLimiter() gin.HandlerFunc {
	return limitar(loginMap, &loginMapMu, 20, time.Minute,
		"Demasiados intentos de login. Intente en 1 minuto.")
}

// RateLimiter is the general sliding-window limiter applied to the whole API.
func RateLimiter(limit int, window time.Duration) gin.HandlerFunc {
	return limitar(apiMap, &apiMapMu, limit, window,
		"Demasiadas solicitudes. Intente nuevamente en un momento.")
}

func limitar(entradas map[string]*ventana, mu *sync.Mutex, limit int, window time.Duration, msg string) gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := c.ClientIP()

		mu.Lock()
		entry, exists := entradas[ip]
		if !exists {
			entry = &ventana{}
			entradas[ip] = entry
		}
		mu.Unlock()

		entry.mu.Lock()
		defer entry.mu.Unlock()

		now := time.Now()
		if now.After(entry.windowEnd) {
			entry.count = 0
			entry.windowEnd = now.Add(window)
		}

		entry.count++
		if entry.count > limit {
			c.Header("Retry-After", entry.windowEnd.Format(time.RFC1123))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, apierror.New(msg))
			return
		}
		c.Next()
	}
}

// Expired entries are purged periodically so IPs that never return do not
// accumulate in memory.
const purgeInterval = 5 * time.Minute

func init() {
	go purgeExpiredEntries()
}

func purgeExpiredEntries() {
	ticker := time.NewTicker(purgeInterval)
	defer ticker.Stop()

	for range ticker.C {
		now := time.Now()
		purged := purgar(loginMap, &loginMapMu, now) + purgar(apiMap, &apiMapMu, now)
		if purged > 0 {
			log.Debug().Int("purged", purged).Msg("rate limiter maps purged")
		}
	}
}

func purgar(entradas map[string]*ventana, mu *sync.Mutex, now time.Time) int {
	mu.Lock()
	defer mu.Unlock()
	purged := 0
	for ip, entry := range entradas {
		entry.mu.Lock()
		if now.After(entry.windowEnd) {
			delete(entradas, ip)
			purged++
		}
		entry.mu.Unlock()
	}
	return purged
}
