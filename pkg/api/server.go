// Package api exposes the HTTP surface: recall-set listing, session
// lifecycle, chat turns, rabbit-hole control, and the dashboard stats
// aggregation. All state flows through the services layer and the
// per-session engine registry.
package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/recallkit/recallkit/pkg/config"
	"github.com/recallkit/recallkit/pkg/database"
	"github.com/recallkit/recallkit/pkg/llm"
	"github.com/recallkit/recallkit/pkg/services"
	"github.com/recallkit/recallkit/pkg/version"
)

// Server is the recallkit HTTP API.
type Server struct {
	cfg      *config.Config
	db       *database.Client
	sets     *services.SetService
	stats    *services.StatsService
	search   *services.SearchService
	registry *Registry
}

// NewServer wires the API over the shared database client and LLM
// connection.
func NewServer(cfg *config.Config, db *database.Client, llmClient llm.Client) *Server {
	return &Server{
		cfg:      cfg,
		db:       db,
		sets:     services.NewSetService(db.Client),
		stats:    services.NewStatsService(db.Client),
		search:   services.NewSearchService(db.Client),
		registry: NewRegistry(db, llmClient, cfg),
	}
}

// Router builds the gin engine with all routes registered.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), requestLogger())

	r.GET("/health", s.healthHandler)

	v1 := r.Group("/api/v1")
	{
		v1.GET("/sets", s.listSetsHandler)
		v1.POST("/sets", s.createSetHandler)
		v1.GET("/sets/:id", s.getSetHandler)
		v1.POST("/sets/:id/points", s.createPointHandler)
		v1.GET("/sets/:id/points", s.listPointsHandler)
		v1.POST("/sets/:id/sessions", s.startSessionHandler)

		v1.GET("/sessions", s.listSessionsHandler)
		v1.GET("/sessions/:id", s.getSessionHandler)
		v1.GET("/sessions/:id/snapshot", s.snapshotHandler)
		v1.POST("/sessions/:id/messages", s.processMessageHandler)
		v1.POST("/sessions/:id/pause", s.pauseSessionHandler)
		v1.POST("/sessions/:id/leave", s.leaveSessionHandler)
		v1.POST("/sessions/:id/abandon", s.abandonSessionHandler)

		v1.POST("/sessions/:id/rabbithole/enter", s.enterRabbitholeHandler)
		v1.POST("/sessions/:id/rabbithole/exit", s.exitRabbitholeHandler)
		v1.POST("/sessions/:id/rabbithole/decline", s.declineRabbitholeHandler)

		v1.GET("/stats", s.statsHandler)
		v1.GET("/search", s.searchHandler)
	}
	return r
}

// healthHandler reports process and database health.
func (s *Server) healthHandler(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	dbHealth, err := database.Health(ctx, s.db.DB())
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":   "unhealthy",
			"database": dbHealth,
			"error":    err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status":   "healthy",
		"version":  version.Full(),
		"database": dbHealth,
	})
}
