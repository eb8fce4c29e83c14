package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dmytroh/fxpulse/internal/domain/dto"
	"github.com/dmytroh/fxpulse/internal/logger"
)

// ErrorHandler converts errors attached to the gin context (via c.Error)
// into a standardized 500 response, unless a handler already wrote one.
func ErrorHandler(c *gin.Context) {
	c.Next()

	if len(c.Errors) == 0 {
		return
	}

	err := c.Errors.Last().Err
	logger.L().Error().Err(err).Str("path", c.Request.URL.Path).Msg("unhandled request error")

	if !c.Writer.Written() {
		c.AbortWithStatusJSON(http.StatusInternalServerError, dto.NewErrorResponse("internal error", err))
	}
}
