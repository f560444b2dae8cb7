package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/farellandr/resultboard/internal/store"
)

type HealthResponse struct {
	Status    string    `json:"status"`
	Message   string    `json:"message"`
	Database  string    `json:"database"`
	Timestamp time.Time `json:"timestamp"`
}

type HealthHandler struct {
	provider store.Provider
	now      func() time.Time
}

func NewHealthHandler(provider store.Provider) *HealthHandler {
	return &HealthHandler{provider: provider, now: time.Now}
}

// @ID health
// @Summary Health check
// @Description Reports whether the server is up and the store connection state. Does not dial the store.
// @Tags Health
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{
		Status:    "OK",
		Message:   "Server is running",
		Database:  h.provider.State(),
		Timestamp: h.now().UTC(),
	})
}
