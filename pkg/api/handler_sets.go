package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/recallkit/recallkit/pkg/services"
)

func (s *Server) listSetsHandler(c *gin.Context) {
	sets, err := s.sets.ListSets(c.Request.Context(), time.Now())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"sets": sets})
}

type createSetRequest struct {
	Name             string `json:"name" binding:"required"`
	Description      string `json:"description"`
	DiscussionPrompt string `json:"discussion_prompt"`
}

func (s *Server) createSetHandler(c *gin.Context) {
	var req createSetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	info, err := s.sets.CreateSet(c.Request.Context(), services.SetInput{
		Name:             req.Name,
		Description:      req.Description,
		DiscussionPrompt: req.DiscussionPrompt,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, info)
}

func (s *Server) getSetHandler(c *gin.Context) {
	info, err := s.sets.GetSet(c.Request.Context(), c.Param("id"), time.Now())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, info)
}

type createPointRequest struct {
	Content string `json:"content" binding:"required"`
	Context string `json:"context"`
}

func (s *Server) createPointHandler(c *gin.Context) {
	var req createPointRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	point, err := s.sets.CreatePoint(c.Request.Context(), c.Param("id"), services.PointInput{
		Content: req.Content,
		Context: req.Context,
	}, time.Now())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"id":      point.ID,
		"set_id":  point.SetID,
		"content": point.Content,
		"context": point.Context,
		"due":     point.FSRS.Due,
	})
}

func (s *Server) listPointsHandler(c *gin.Context) {
	points, err := s.sets.ListPoints(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}

	out := make([]gin.H, 0, len(points))
	for _, p := range points {
		out = append(out, gin.H{
			"id":      p.ID,
			"content": p.Content,
			"context": p.Context,
			"due":     p.FSRS.Due,
			"reps":    p.FSRS.Reps,
			"lapses":  p.FSRS.Lapses,
			"state":   p.FSRS.Phase,
		})
	}
	c.JSON(http.StatusOK, gin.H{"points": out})
}
