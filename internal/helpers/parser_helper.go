package helpers

import (
	"errors"
	"io"

	"github.com/gin-gonic/gin"

	"github.com/farellandr/resultboard/internal/validation"
)

// BindJSON decodes the request body into obj and validates it. An empty body
// decodes as an empty object.
func BindJSON(c *gin.Context, obj any) error {
	if err := c.ShouldBindJSON(obj); err != nil && !errors.Is(err, io.EOF) {
		return validation.FromDecodeError(err)
	}
	return validation.Validate(obj)
}
