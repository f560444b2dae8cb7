package middleware

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/farellandr/resultboard/internal/helpers"
)

// Recovery turns a panic into a 500 JSON response. http.ErrAbortHandler is
// passed on so net/http can drop the connection.
func Recovery(log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if err, ok := rec.(error); ok && errors.Is(err, http.ErrAbortHandler) {
				panic(rec)
			}

			log.Error("panic recovered",
				zap.String("method", c.Request.Method),
				zap.String("path", c.Request.URL.Path),
				zap.Any("panic", rec),
				zap.Stack("stack"),
			)

			resp := helpers.ErrorResponse{Error: "Internal server error", Message: "Something went wrong"}
			if c.GetBool(helpers.ErrorDetailKey) {
				resp.Message = fmt.Sprint(rec)
			}
			c.AbortWithStatusJSON(http.StatusInternalServerError, resp)
		}()
		c.Next()
	}
}
