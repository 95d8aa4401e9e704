package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type enterRabbitholeRequest struct {
	Topic   string `json:"topic" binding:"required"`
	EventID string `json:"event_id"`
}

func (s *Server) enterRabbitholeHandler(c *gin.Context) {
	var req enterRabbitholeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entry, ok := s.acquireSession(c, c.Param("id"))
	if !ok {
		return
	}
	defer s.registry.Release(entry)

	opening, err := entry.eng.EnterRabbithole(c.Request.Context(), req.Topic, req.EventID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"opening": opening,
		"events":  entry.events.drain(),
	})
}

func (s *Server) exitRabbitholeHandler(c *gin.Context) {
	entry, ok := s.acquireSession(c, c.Param("id"))
	if !ok {
		return
	}
	defer s.registry.Release(entry)

	if err := entry.eng.ExitRabbithole(c.Request.Context()); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status": "returned",
		"events": entry.events.drain(),
	})
}

func (s *Server) declineRabbitholeHandler(c *gin.Context) {
	entry, ok := s.acquireSession(c, c.Param("id"))
	if !ok {
		return
	}
	defer s.registry.Release(entry)

	if err := entry.eng.DeclineRabbithole(); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "declined"})
}
