package middleware

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/yourusername/trivia-bank/internal/handler/dto"
)

// ExtractUintParam создает middleware для извлечения и валидации числового
// параметра URL. Нечисловое значение — 400 в едином конверте ошибки,
// до входа в обработчик.
// paramName — имя параметра в URL (например, "id").
// contextKey — ключ, под которым значение сохраняется в контексте Gin.
func ExtractUintParam(paramName, contextKey string) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param(paramName), 10, 32)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest,
				dto.NewErrorResponse(http.StatusBadRequest, "Bad Request"))
			return
		}
		c.Set(contextKey, uint(id))
		c.Next()
	}
}
