package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/bogadeji/trivia/internal/services"
	"github.com/bogadeji/trivia/internal/utils"
	"github.com/gin-gonic/gin"
)

type QuestionHandler struct {
	BaseHandler
	questionService services.QuestionService
	exportService   services.ExportService
}

func NewQuestionHandler(
	questionService services.QuestionService,
	exportService services.ExportService,
	logger utils.Logger,
) *QuestionHandler {
	return &QuestionHandler{
		BaseHandler:     NewBaseHandler(logger),
		questionService: questionService,
		exportService:   exportService,
	}
}

// ListQuestions returns one page of questions plus the category mapping.
// An empty page, including a page past the end, is a 404.
func (h *QuestionHandler) ListQuestions(c *gin.Context) {
	result, err := h.questionService.List(c.Request.Context(), parsePageParam(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":          true,
		"questions":        result.Questions,
		"total_questions":  result.TotalQuestions,
		"categories":       result.Categories,
		"current_category": []string{},
	})
}

// DeleteQuestion removes a question by id. A missing question renders 422;
// the delete contract has never had a not-found path and the client depends
// on that.
func (h *QuestionHandler) DeleteQuestion(c *gin.Context) {
	id, ok := h.parseUintParam(c, "id")
	if !ok {
		return
	}

	deleted, err := h.questionService.Delete(c.Request.Context(), id)
	if err != nil {
		h.RespondWithError(c, http.StatusUnprocessableEntity, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"question_id": deleted,
	})
}

// CreateQuestion inserts a new question from the JSON body
func (h *QuestionHandler) CreateQuestion(c *gin.Context) {
	var req services.CreateQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.RespondWithError(c, http.StatusUnprocessableEntity, err)
		return
	}

	result, err := h.questionService.Create(c.Request.Context(), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":         true,
		"created":         result.Created,
		"total_questions": result.TotalQuestions,
	})
}

type searchRequest struct {
	SearchTerm string `json:"searchTerm"`
}

// SearchQuestions returns a page of questions matching the search term
func (h *QuestionHandler) SearchQuestions(c *gin.Context) {
	var req searchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.RespondWithError(c, http.StatusUnprocessableEntity, err)
		return
	}

	result, err := h.questionService.Search(c.Request.Context(), req.SearchTerm, parsePageParam(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":                true,
		"questions":              result.Questions,
		"total_search_questions": result.TotalSearchQuestions,
		"total_questions":        result.TotalQuestions,
	})
}

// ListByCategory returns a page of the questions in one category
func (h *QuestionHandler) ListByCategory(c *gin.Context) {
	id, ok := h.parseUintParam(c, "id")
	if !ok {
		return
	}

	result, err := h.questionService.ListByCategory(c.Request.Context(), id, parsePageParam(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":                  true,
		"category":                 result.Category,
		"questions":                result.Questions,
		"total_category_questions": result.TotalCategoryQuestions,
		"total_questions":          result.TotalQuestions,
	})
}

// ExportQuestions streams the question bank as xlsx (default) or csv
func (h *QuestionHandler) ExportQuestions(c *gin.Context) {
	format := c.DefaultQuery("format", "xlsx")
	stamp := time.Now().UTC().Format("2006-01-02")

	switch format {
	case "xlsx":
		data, err := h.exportService.ExportQuestionsToExcel(c.Request.Context())
		if err != nil {
			h.HandleServiceError(c, err)
			return
		}
		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=questions-%s.xlsx", stamp))
		c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
	case "csv":
		data, err := h.exportService.ExportQuestionsToCSV(c.Request.Context())
		if err != nil {
			h.HandleServiceError(c, err)
			return
		}
		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=questions-%s.csv", stamp))
		c.Data(http.StatusOK, "text/csv", data)
	default:
		h.RespondWithError(c, http.StatusUnprocessableEntity, fmt.Errorf("unsupported export format %q", format))
	}
}
