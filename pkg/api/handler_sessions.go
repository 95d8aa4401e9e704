package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// startSessionHandler handles POST /api/v1/sets/:id/sessions. Starting
// when an in-progress or paused session exists resumes it.
func (s *Server) startSessionHandler(c *gin.Context) {
	set, err := s.sets.EngineSet(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}

	entry, session, err := s.registry.StartSession(c.Request.Context(), set)
	if err != nil {
		writeError(c, err)
		return
	}

	entry.mu.Lock()
	defer s.registry.Release(entry)

	opening, err := entry.eng.OpeningMessage(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"session_id":    session.ID,
		"set_id":        session.SetID,
		"status":        session.Status,
		"target_points": len(session.TargetPointIDs),
		"recalled":      len(session.RecalledPointIDs),
		"opening":       opening,
		"events":        entry.events.drain(),
	})
}

// acquireSession resolves a session's engine, rebuilding it from
// persisted state after a restart. Returns a locked entry.
func (s *Server) acquireSession(c *gin.Context, sessionID string) (*sessionEntry, bool) {
	if entry, ok := s.registry.Acquire(sessionID); ok {
		return entry, true
	}

	// Engine not live; resume from the database if the session is open.
	detail, err := s.stats.GetSession(c.Request.Context(), sessionID)
	if err != nil {
		writeError(c, err)
		return nil, false
	}
	if detail.Session.Status != "in_progress" && detail.Session.Status != "paused" {
		c.JSON(http.StatusConflict, gin.H{"error": "session is not active"})
		return nil, false
	}

	set, err := s.sets.EngineSet(c.Request.Context(), detail.Session.SetID)
	if err != nil {
		writeError(c, err)
		return nil, false
	}
	entry, _, err := s.registry.StartSession(c.Request.Context(), set)
	if err != nil {
		writeError(c, err)
		return nil, false
	}
	entry.mu.Lock()
	entry.events.drain()
	return entry, true
}

type processMessageRequest struct {
	Content string `json:"content" binding:"required"`
}

func (s *Server) processMessageHandler(c *gin.Context) {
	var req processMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entry, ok := s.acquireSession(c, c.Param("id"))
	if !ok {
		return
	}
	defer s.registry.Release(entry)

	result, err := entry.eng.ProcessUserMessage(c.Request.Context(), req.Content)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"response":           result.Response,
		"recalled_count":     result.RecalledCount,
		"total_points":       result.TotalPoints,
		"recalled_this_turn": result.PointsRecalledThisTurn,
		"events":             entry.events.drain(),
	})
}

func (s *Server) pauseSessionHandler(c *gin.Context) {
	sessionID := c.Param("id")
	entry, ok := s.acquireSession(c, sessionID)
	if !ok {
		return
	}
	defer s.registry.Release(entry)

	if err := entry.eng.Pause(c.Request.Context()); err != nil {
		writeError(c, err)
		return
	}
	s.registry.Remove(sessionID)
	c.JSON(http.StatusOK, gin.H{"status": "paused", "events": entry.events.drain()})
}

func (s *Server) leaveSessionHandler(c *gin.Context) {
	sessionID := c.Param("id")
	entry, ok := s.acquireSession(c, sessionID)
	if !ok {
		return
	}
	defer s.registry.Release(entry)

	if err := entry.eng.LeaveSession(c.Request.Context()); err != nil {
		writeError(c, err)
		return
	}
	s.registry.Remove(sessionID)
	c.JSON(http.StatusOK, gin.H{"status": "completed", "events": entry.events.drain()})
}

func (s *Server) abandonSessionHandler(c *gin.Context) {
	sessionID := c.Param("id")
	entry, ok := s.acquireSession(c, sessionID)
	if !ok {
		return
	}
	defer s.registry.Release(entry)

	if err := entry.eng.Abandon(c.Request.Context()); err != nil {
		writeError(c, err)
		return
	}
	s.registry.Remove(sessionID)
	c.JSON(http.StatusOK, gin.H{"status": "abandoned", "events": entry.events.drain()})
}

func (s *Server) snapshotHandler(c *gin.Context) {
	entry, ok := s.acquireSession(c, c.Param("id"))
	if !ok {
		return
	}
	defer s.registry.Release(entry)

	snap := entry.eng.Snapshot()
	c.JSON(http.StatusOK, gin.H{
		"session_id":         snap.SessionID,
		"set_id":             snap.SetID,
		"mode":               snap.Mode,
		"total_points":       snap.TotalPoints,
		"recalled_count":     snap.RecalledCount,
		"probe_index":        snap.ProbeIndex,
		"next_probe_point":   snap.NextProbePointID,
		"completion_pending": snap.CompletionPending,
		"active_rabbithole":  snap.ActiveRabbithole,
		"decline_cooldown":   snap.DeclineCooldown,
	})
}

func (s *Server) listSessionsHandler(c *gin.Context) {
	sessions, err := s.stats.ListSessions(c.Request.Context(), c.Query("set_id"), 100)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"sessions": sessions})
}

func (s *Server) getSessionHandler(c *gin.Context) {
	detail, err := s.stats.GetSession(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, detail)
}

func (s *Server) statsHandler(c *gin.Context) {
	stats, err := s.stats.Dashboard(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (s *Server) searchHandler(c *gin.Context) {
	limit, _ := strconv.Atoi(c.Query("limit"))
	results, err := s.search.Search(c.Request.Context(), c.Query("q"), c.Query("set_id"), limit)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, results)
}
