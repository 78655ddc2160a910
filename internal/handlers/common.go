package handlers

import (
	"fmt"
	"net/http"

	"github.com/bogadeji/trivia/internal/services"
	"github.com/bogadeji/trivia/internal/utils"
	"github.com/gin-gonic/gin"
)

// Error messages are fixed by the API contract; the web client matches on them.
const (
	msgBadRequest    = "bad request"
	msgNotFound      = "resource not found"
	msgUnprocessable = "unprocessable"
	msgInternalError = "internal server error"
)

// ErrorResponse is the failure envelope. Success is always false.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// BaseHandler provides common logging and response rendering for all handlers
type BaseHandler struct {
	logger utils.Logger
}

func NewBaseHandler(logger utils.Logger) BaseHandler {
	return BaseHandler{logger: logger}
}

// RespondWithError writes the fixed error envelope for a status code and logs
// the underlying cause.
func (h *BaseHandler) RespondWithError(c *gin.Context, statusCode int, err error) {
	message := msgUnprocessable
	switch statusCode {
	case http.StatusBadRequest:
		message = msgBadRequest
	case http.StatusNotFound:
		message = msgNotFound
	case http.StatusInternalServerError:
		message = msgInternalError
	}

	if err != nil {
		h.logger.LogError(err, message,
			"status_code", statusCode,
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
		)
	}

	c.JSON(statusCode, ErrorResponse{Success: false, Message: message})
}

// HandleServiceError maps a service error kind onto the four fixed envelopes.
// Store failures and validation failures both map to 422 per the contract, but
// the cause is distinguishable in the logs via the wrapped error.
func (h *BaseHandler) HandleServiceError(c *gin.Context, err error) {
	switch {
	case services.IsNotFound(err):
		h.RespondWithError(c, http.StatusNotFound, err)
	case services.IsBadRequest(err):
		h.RespondWithError(c, http.StatusBadRequest, err)
	default:
		h.RespondWithError(c, http.StatusUnprocessableEntity, err)
	}
}

// RecoveryHandler renders the 500 envelope for recovered panics.
func RecoveryHandler(logger utils.Logger) gin.RecoveryFunc {
	return func(c *gin.Context, recovered any) {
		err := fmt.Errorf("%w: recovered panic: %v", services.ErrInternalError, recovered)
		logger.LogError(err, msgInternalError, "path", c.Request.URL.Path)
		c.AbortWithStatusJSON(http.StatusInternalServerError, ErrorResponse{
			Success: false,
			Message: msgInternalError,
		})
	}
}
