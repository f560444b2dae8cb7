package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/farellandr/resultboard/internal/helpers"
	"github.com/farellandr/resultboard/internal/metrics"
	"github.com/farellandr/resultboard/internal/models"
	"github.com/farellandr/resultboard/internal/services"
)

type ResultHandler struct {
	resultService *services.ResultService
	log           *zap.Logger
}

func NewResultHandler(resultService *services.ResultService, log *zap.Logger) *ResultHandler {
	return &ResultHandler{resultService: resultService, log: log}
}

// @ID listResults
// @Summary List results
// @Description Newest first, with the category resolved (null when it no longer exists).
// @Tags Result
// @Produce json
// @Success 200 {array} models.Result
// @Failure 500 {object} helpers.ErrorResponse
// @Router /results [get]
func (h *ResultHandler) ListResults(c *gin.Context) {
	results, err := h.resultService.List(c.Request.Context())
	if err != nil {
		helpers.RespondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, results)
}

// @ID createResult
// @Summary Create result
// @Tags Result
// @Accept json
// @Produce json
// @Param result body models.ResultInput true "Result to create"
// @Success 201 {object} models.Result
// @Failure 400 {object} helpers.ErrorResponse
// @Router /results [post]
func (h *ResultHandler) CreateResult(c *gin.Context) {
	var req models.ResultInput
	if err := helpers.BindJSON(c, &req); err != nil {
		helpers.RespondWithError(c, err)
		return
	}

	result, err := h.resultService.Create(c.Request.Context(), &req)
	if err != nil {
		helpers.RespondWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, result)
}

// @ID getResult
// @Summary Get result
// @Tags Result
// @Produce json
// @Param id path string true "Result id"
// @Success 200 {object} models.Result
// @Failure 404 {object} helpers.ErrorResponse
// @Router /results/{id} [get]
func (h *ResultHandler) GetResult(c *gin.Context) {
	result, err := h.resultService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		helpers.RespondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// @ID updateResult
// @Summary Update result
// @Description category, eventName and eventDate are required. individual and group are replaced only when present; null clears them.
// @Tags Result
// @Accept json
// @Produce json
// @Param id path string true "Result id"
// @Param result body models.ResultInput true "Result fields"
// @Success 200 {object} models.Result
// @Failure 400 {object} helpers.ErrorResponse
// @Failure 404 {object} helpers.ErrorResponse
// @Router /results/{id} [put]
func (h *ResultHandler) UpdateResult(c *gin.Context) {
	var req models.ResultInput
	if err := helpers.BindJSON(c, &req); err != nil {
		helpers.RespondWithError(c, err)
		return
	}

	result, err := h.resultService.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		helpers.RespondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// @ID deleteResult
// @Summary Delete result
// @Tags Result
// @Produce json
// @Param id path string true "Result id"
// @Success 200 {object} helpers.MessageResponse
// @Failure 404 {object} helpers.ErrorResponse
// @Router /results/{id} [delete]
func (h *ResultHandler) DeleteResult(c *gin.Context) {
	if err := h.resultService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		helpers.RespondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, helpers.MessageResponse{Message: "Result deleted successfully"})
}

// @ID exportResultPDF
// @Summary Download result as PDF
// @Tags Result
// @Produce application/pdf
// @Param id path string true "Result id"
// @Success 200 {file} file
// @Failure 404 {object} helpers.ErrorResponse
// @Failure 500 {object} helpers.ErrorResponse
// @Router /results/{id}/pdf [get]
func (h *ResultHandler) ExportResultPDF(c *gin.Context) {
	result, doc, err := h.resultService.Export(c.Request.Context(), c.Param("id"))
	if err != nil {
		helpers.RespondWithError(c, err)
		return
	}

	if err := helpers.StreamAttachment(c, "application/pdf", "result-"+result.ID+".pdf", doc); err != nil {
		outcome := "stream_failed"
		if helpers.Cancelled(err) {
			outcome = "client_gone"
		}
		metrics.PDFExportTotal.WithLabelValues(outcome).Inc()
		h.log.Warn("streaming result pdf", zap.String("result_id", result.ID), zap.Error(err))
		helpers.AbortConnection()
	}
	metrics.PDFExportTotal.WithLabelValues("sent").Inc()
}
