package handlers

import (
	"net/http"

	"github.com/bogadeji/trivia/internal/services"
	"github.com/bogadeji/trivia/internal/utils"
	"github.com/gin-gonic/gin"
)

type CategoryHandler struct {
	BaseHandler
	categoryService services.CategoryService
}

func NewCategoryHandler(categoryService services.CategoryService, logger utils.Logger) *CategoryHandler {
	return &CategoryHandler{
		BaseHandler:     NewBaseHandler(logger),
		categoryService: categoryService,
	}
}

// ListCategories returns all categories as an id -> type mapping
func (h *CategoryHandler) ListCategories(c *gin.Context) {
	result, err := h.categoryService.List(c.Request.Context())
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":          true,
		"categories":       result.Categories,
		"total_categories": result.TotalCategories,
	})
}
