package helpers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/farellandr/resultboard/internal/apperror"
)

// ErrorDetailKey marks a request whose 500 responses may carry the
// underlying error text.
const ErrorDetailKey = "error_detail"

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

func RespondWithError(c *gin.Context, err error) {
	var appErr *apperror.Error
	if !errors.As(err, &appErr) {
		appErr = &apperror.Error{Kind: apperror.KindUnknown, Message: http.StatusText(http.StatusInternalServerError), Err: err}
	}

	status := appErr.HTTPStatus()
	resp := ErrorResponse{Error: appErr.Message}
	if status >= http.StatusInternalServerError && c.GetBool(ErrorDetailKey) && appErr.Err != nil {
		resp.Message = appErr.Err.Error()
	}

	_ = c.Error(err)
	c.AbortWithStatusJSON(status, resp)
}
