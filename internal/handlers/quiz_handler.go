package handlers

import (
	"net/http"

	"github.com/bogadeji/trivia/internal/services"
	"github.com/bogadeji/trivia/internal/utils"
	"github.com/gin-gonic/gin"
)

type QuizHandler struct {
	BaseHandler
	questionService services.QuestionService
}

func NewQuizHandler(questionService services.QuestionService, logger utils.Logger) *QuizHandler {
	return &QuizHandler{
		BaseHandler:     NewBaseHandler(logger),
		questionService: questionService,
	}
}

// NextQuestion picks a random unseen question for the play tab. A null
// question in the payload tells the client the pool is exhausted and the
// game is over.
func (h *QuizHandler) NextQuestion(c *gin.Context) {
	var req services.QuizRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.RespondWithError(c, http.StatusUnprocessableEntity, err)
		return
	}

	result, err := h.questionService.NextQuizQuestion(c.Request.Context(), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"category": result.Category,
		"question": result.Question,
	})
}
