package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const RequestIDHeader = "X-Request-ID"

// RequestID - помечает каждый запрос идентификатором для логов;
// пришедший от клиента id переиспользуется
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.New().String()
		}

		c.Set("request_id", id)
		c.Header(RequestIDHeader, id)

		c.Next()

		if c.Writer.Status() >= 500 {
			logrus.WithField("request_id", id).
				Errorf("%s %s -> %d", c.Request.Method, c.Request.URL.Path, c.Writer.Status())
		}
	}
}
