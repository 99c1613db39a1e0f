package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// HeaderRequestID — заголовок, в котором клиенту возвращается id запроса
const HeaderRequestID = "X-Request-ID"

// RequestID присваивает каждому запросу уникальный идентификатор.
// Если клиент прислал свой X-Request-ID, он сохраняется; иначе
// генерируется новый. Значение доступно в контексте под ключом "requestID".
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(HeaderRequestID)
		if requestID == "" {
			requestID = uuid.NewString()
		}

		c.Set("requestID", requestID)
		c.Header(HeaderRequestID, requestID)
		c.Next()
	}
}
