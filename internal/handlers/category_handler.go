package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/farellandr/resultboard/internal/helpers"
	"github.com/farellandr/resultboard/internal/models"
	"github.com/farellandr/resultboard/internal/services"
)

type CategoryHandler struct {
	categoryService *services.CategoryService
}

func NewCategoryHandler(categoryService *services.CategoryService) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService}
}

// @ID listCategories
// @Summary List categories
// @Tags Category
// @Produce json
// @Success 200 {array} models.Category
// @Failure 500 {object} helpers.ErrorResponse
// @Router /categories [get]
func (h *CategoryHandler) ListCategories(c *gin.Context) {
	categories, err := h.categoryService.List(c.Request.Context())
	if err != nil {
		helpers.RespondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, categories)
}

// @ID createCategory
// @Summary Create category
// @Tags Category
// @Accept json
// @Produce json
// @Param category body models.CategoryInput true "Category to create"
// @Success 201 {object} models.Category
// @Failure 400 {object} helpers.ErrorResponse
// @Router /categories [post]
func (h *CategoryHandler) CreateCategory(c *gin.Context) {
	var req models.CategoryInput
	if err := helpers.BindJSON(c, &req); err != nil {
		helpers.RespondWithError(c, err)
		return
	}

	category, err := h.categoryService.Create(c.Request.Context(), &req)
	if err != nil {
		helpers.RespondWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, category)
}

// @ID getCategory
// @Summary Get category
// @Tags Category
// @Produce json
// @Param id path string true "Category id"
// @Success 200 {object} models.Category
// @Failure 404 {object} helpers.ErrorResponse
// @Router /categories/{id} [get]
func (h *CategoryHandler) GetCategory(c *gin.Context) {
	category, err := h.categoryService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		helpers.RespondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, category)
}

// @ID updateCategory
// @Summary Update category
// @Description The name is always replaced; the description only when it is present in the body.
// @Tags Category
// @Accept json
// @Produce json
// @Param id path string true "Category id"
// @Param category body models.CategoryInput true "Category fields"
// @Success 200 {object} models.Category
// @Failure 400 {object} helpers.ErrorResponse
// @Failure 404 {object} helpers.ErrorResponse
// @Router /categories/{id} [put]
func (h *CategoryHandler) UpdateCategory(c *gin.Context) {
	var req models.CategoryInput
	if err := helpers.BindJSON(c, &req); err != nil {
		helpers.RespondWithError(c, err)
		return
	}

	category, err := h.categoryService.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		helpers.RespondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, category)
}

// @ID deleteCategory
// @Summary Delete category
// @Description Results that reference the category are kept.
// @Tags Category
// @Produce json
// @Param id path string true "Category id"
// @Success 200 {object} helpers.MessageResponse
// @Failure 404 {object} helpers.ErrorResponse
// @Router /categories/{id} [delete]
func (h *CategoryHandler) DeleteCategory(c *gin.Context) {
	if err := h.categoryService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		helpers.RespondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, helpers.MessageResponse{Message: "Category deleted successfully"})
}
