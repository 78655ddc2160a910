package handlers

import (
	"net/http"

	"github.com/bogadeji/trivia/internal/services"
	"github.com/bogadeji/trivia/internal/utils"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

type HandlerManager struct {
	categoryHandler *CategoryHandler
	questionHandler *QuestionHandler
	quizHandler     *QuizHandler
}

func NewHandlerManager(
	categoryService services.CategoryService,
	questionService services.QuestionService,
	exportService services.ExportService,
	logger utils.Logger,
) *HandlerManager {
	return &HandlerManager{
		categoryHandler: NewCategoryHandler(categoryService, logger),
		questionHandler: NewQuestionHandler(questionService, exportService, logger),
		quizHandler:     NewQuizHandler(questionService, logger),
	}
}

// SetupRoutes sets up all API routes. CORS is attached here so every response,
// including error envelopes, carries the permissive headers the web client
// needs.
func (hm *HandlerManager) SetupRoutes(router *gin.Engine) {
	router.Use(cors.New(cors.Config{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{"GET", "PUT", "POST", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Content-Type", "Authorization"},
	}))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"service": "trivia-api",
		})
	})

	categories := router.Group("/categories")
	{
		categories.GET("", hm.categoryHandler.ListCategories)
		categories.GET("/:id/questions", hm.questionHandler.ListByCategory)
	}

	questions := router.Group("/questions")
	{
		questions.GET("", hm.questionHandler.ListQuestions)
		questions.POST("", hm.questionHandler.CreateQuestion)
		questions.POST("/search", hm.questionHandler.SearchQuestions)
		questions.GET("/export", hm.questionHandler.ExportQuestions)
		questions.DELETE("/:id", hm.questionHandler.DeleteQuestion)
	}

	router.POST("/quizzes", hm.quizHandler.NextQuestion)

	// Unknown routes get the JSON envelope, not gin's plain 404.
	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, ErrorResponse{Success: false, Message: msgNotFound})
	})
}
