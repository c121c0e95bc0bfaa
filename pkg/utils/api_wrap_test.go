package utils

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func handleErr(err error) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	HandleServiceError(c, err)
	return w
}

func TestHandleServiceError(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"EmptyInput", ErrEmptyInput, http.StatusBadRequest},
		{"InvalidFileType", ErrInvalidFileType, http.StatusBadRequest},
		{"NoPendingUpload", ErrNoPendingUpload, http.StatusBadRequest},
		{"InvalidAnswerIndex", ErrInvalidAnswerIndex, http.StatusBadRequest},
		{"QuizNotFound", ErrQuizNotFound, http.StatusNotFound},
		{"AttemptNotFound", ErrAttemptNotFound, http.StatusNotFound},
		{"AttemptSubmitted", ErrAttemptSubmitted, http.StatusConflict},
		{"Superseded", ErrSuperseded, http.StatusConflict},
		{"GenerationFailed", ErrGenerationFailed, http.StatusBadGateway},
		{"RegenerationFailed", ErrRegenerationFailed, http.StatusBadGateway},
		{"DatabaseError", ErrDatabaseError, http.StatusInternalServerError},
		{"Unknown", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if w := handleErr(tc.err); w.Code != tc.want {
				t.Errorf("status = %d, want %d", w.Code, tc.want)
			}
		})
	}

	t.Run("WrappedErrorStillMaps", func(t *testing.T) {
		wrapped := errors.Join(errors.New("context"), ErrSuperseded)
		if w := handleErr(wrapped); w.Code != http.StatusConflict {
			t.Errorf("status = %d, want %d", w.Code, http.StatusConflict)
		}
	})
}
