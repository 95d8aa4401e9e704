package api

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/recallkit/recallkit/pkg/engine"
	"github.com/recallkit/recallkit/pkg/services"
)

func statusFor(t *testing.T, err error) int {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	writeError(c, err)
	return w.Code
}

func TestWriteErrorMapping(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"not found", services.ErrNotFound, http.StatusNotFound},
		{"duplicate", services.ErrAlreadyExists, http.StatusConflict},
		{"validation", services.NewValidationError("name", "cannot be empty"), http.StatusBadRequest},
		{"no due points", engine.ErrNoDuePoints, http.StatusConflict},
		{"no active session", engine.ErrNoActiveSession, http.StatusConflict},
		{"nested rabbithole", engine.ErrNestedRabbithole, http.StatusConflict},
		{"not in rabbithole", engine.ErrNotInRabbithole, http.StatusConflict},
		{"llm failure", &engine.LLMError{Op: "tutor_reply", Err: errors.New("timeout")}, http.StatusBadGateway},
		{"persistence failure", &engine.PersistenceError{Op: "update_fsrs", Err: errors.New("down")}, http.StatusInternalServerError},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, statusFor(t, tc.err))
		})
	}
}

func TestWriteErrorUnwrapsWrapped(t *testing.T) {
	wrapped := errors.Join(errors.New("context"), services.ErrNotFound)
	assert.Equal(t, http.StatusNotFound, statusFor(t, wrapped))
}
