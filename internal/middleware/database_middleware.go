package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/farellandr/resultboard/internal/helpers"
	"github.com/farellandr/resultboard/internal/store"
)

// DatabaseMiddleware makes sure the store is reachable before the handler
// runs, dialling it on the first request.
func DatabaseMiddleware(provider store.Provider, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, err := provider.Store(c.Request.Context()); err != nil {
			log.Error("database connection failed", zap.String("path", c.Request.URL.Path), zap.Error(err))

			resp := helpers.ErrorResponse{Error: "Database connection failed"}
			if c.GetBool(helpers.ErrorDetailKey) {
				resp.Message = err.Error()
			}
			c.AbortWithStatusJSON(http.StatusInternalServerError, resp)
			return
		}
		c.Next()
	}
}
