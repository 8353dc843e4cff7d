package handler

import (
	"context"
	"net/http"
	"time"

	"elceibo/internal/worker"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Health reports the state of the backend's dependencies: the Postgres
// connection, Redis, and the depth of the invoice email queue that the
// worker pool consumes. Credentials and connection details stay out of
// the response.
func Health(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()

		ok := true
		body := gin.H{"db": "connected", "redis": "connected"}

		sqlDB, err := db.DB()
		if err != nil || sqlDB.PingContext(ctx) != nil {
			body["db"] = "error"
			ok = false
		}

		if rdb.Ping(ctx).Err() != nil {
			body["redis"] = "error"
			ok = false
		} else if pendientes, err := rdb.LLen(ctx, worker.QueueEmail).Result(); err == nil {
			body["emails_pendientes"] = pendientes
		}

		body["ok"] = ok
		status := http.StatusOK
		if !ok {
			status = http.StatusServiceUnavailable
		}
		c.JSON(status, body)
	}
}
