package utils

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

type APIResponse struct {
	Status  string      `json:"status"`
	Code    int         `json:"code"`
	Message string      `json:"message,omitempty"`
	TraceID string      `json:"trace_id,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func traceID(c *gin.Context) string {
	id, _ := c.Get("trace_id")
	s, _ := id.(string)
	return s
}

func RespondSuccess(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusOK, APIResponse{
		Status:  "success",
		Code:    http.StatusOK,
		Message: message,
		TraceID: traceID(c),
		Data:    data,
	})
}

func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, APIResponse{
		Status:  "error",
		Code:    code,
		Message: message,
		TraceID: traceID(c),
	})
}

func HandleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrEmptyInput),
		errors.Is(err, ErrInvalidFileType),
		errors.Is(err, ErrNoPendingUpload),
		errors.Is(err, ErrInvalidAnswerIndex):
		RespondError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrQuizNotFound), errors.Is(err, ErrAttemptNotFound):
		RespondError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, ErrAttemptSubmitted), errors.Is(err, ErrSuperseded):
		RespondError(c, http.StatusConflict, err.Error())
	case errors.Is(err, ErrGenerationFailed), errors.Is(err, ErrRegenerationFailed):
		RespondError(c, http.StatusBadGateway, err.Error())
	case errors.Is(err, ErrDatabaseError):
		RespondError(c, http.StatusInternalServerError, err.Error())
	default:
		RespondError(c, http.StatusInternalServerError, "internal server error")
	}
}
