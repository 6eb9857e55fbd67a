package middleware

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestID tags every request with an id, echoes it back in X-Request-ID
// and logs the request outcome with latency.
func RequestID(c *gin.Context) {
	id := c.GetHeader("X-Request-ID")
	if id == "" {
		id = uuid.NewString()
	}
	c.Set("request_id", id)
	c.Header("X-Request-ID", id)

	start := time.Now()
	c.Next()

	log.Printf("%s %s %s -> %d (%s)",
		id, c.Request.Method, c.Request.URL.Path, c.Writer.Status(), time.Since(start))
}
