package middleware

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	apierrors "norms-hub/internal/errors"
)

// ErrorHandler converts errors attached to the gin context into JSON
// responses. Unwrapped errors are treated as internal.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next() // Execute the handler first

		if len(c.Errors) == 0 {
			return
		}
		err := c.Errors.Last().Err

		var apiErr *apierrors.APIError
		if !errors.As(err, &apiErr) {
			apiErr = apierrors.Internal(err)
		}

		if apiErr.Status >= 500 {
			log.Error().Err(apiErr.Internal).Str("path", c.FullPath()).Msg(apiErr.Message)
		} else {
			log.Info().Err(apiErr.Internal).Str("path", c.FullPath()).Msg(apiErr.Message)
		}

		c.AbortWithStatusJSON(apiErr.Status, apiErr)
	}
}
