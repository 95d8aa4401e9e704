package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/recallkit/recallkit/pkg/engine"
	"github.com/recallkit/recallkit/pkg/services"
)

// writeError maps service and engine errors onto HTTP status codes.
func writeError(c *gin.Context, err error) {
	var llmErr *engine.LLMError
	var persistErr *engine.PersistenceError

	switch {
	case errors.Is(err, services.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	case errors.Is(err, services.ErrAlreadyExists):
		c.JSON(http.StatusConflict, gin.H{"error": "already exists"})
	case services.IsValidationError(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, engine.ErrNoDuePoints):
		c.JSON(http.StatusConflict, gin.H{"error": "no recall points are due"})
	case errors.Is(err, engine.ErrNoActiveSession):
		c.JSON(http.StatusConflict, gin.H{"error": "no active session"})
	case errors.Is(err, engine.ErrNestedRabbithole),
		errors.Is(err, engine.ErrNotInRabbithole):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.As(err, &llmErr):
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
	case errors.As(err, &persistErr):
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
