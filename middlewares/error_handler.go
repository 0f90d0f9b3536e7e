package middlewares

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/Adosh74/ai-nutrition-app/apperrors"
)

// ErrorHandler is the centralized responder. Handlers push errors with
// c.Error and this middleware turns the last one into the response: known
// application errors get their mapped status and payload, everything else is
// logged and answered with a generic 500.
func ErrorHandler(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}
		err := c.Errors.Last().Err

		var appErr *apperrors.Error
		if errors.As(err, &appErr) {
			c.JSON(appErr.HTTPStatus(), appErr.Wire())
			return
		}

		log.Error().
			Err(err).
			Str("method", c.Request.Method).
			Str("uri", c.Request.RequestURI).
			Msg("unhandled error")
		c.JSON(http.StatusInternalServerError, apperrors.Internal())
	}
}

// Recovery answers panics with the same generic 500 payload. The stack goes
// to the structured log, not the client.
func Recovery(log zerolog.Logger) gin.HandlerFunc {
	return gin.CustomRecoveryWithWriter(io.Discard, func(c *gin.Context, recovered any) {
		log.Error().
			Interface("panic", recovered).
			Str("method", c.Request.Method).
			Str("uri", c.Request.RequestURI).
			Msg("panic recovered")
		c.AbortWithStatusJSON(http.StatusInternalServerError, apperrors.Internal())
	})
}
