package database

import (
	"context"
	"database/sql"
	"time"
)

// HealthStatus reports connectivity plus a snapshot of the pool.
type HealthStatus struct {
	Status         string `json:"status"`
	ResponseTimeMS int64  `json:"response_time_ms"`
	OpenConns      int    `json:"open_connections"`
	InUse          int    `json:"in_use"`
	Idle           int    `json:"idle"`
	WaitCount      int64  `json:"wait_count"`
	MaxOpenConns   int    `json:"max_open_conns"`
}

// Health pings the database and collects pool statistics. The returned
// status is populated even on error so callers can report partial state.
func Health(ctx context.Context, db *sql.DB) (*HealthStatus, error) {
	start := time.Now()

	if err := db.PingContext(ctx); err != nil {
		return &HealthStatus{
			Status:         "unhealthy",
			ResponseTimeMS: time.Since(start).Milliseconds(),
		}, err
	}

	stats := db.Stats()
	return &HealthStatus{
		Status:         "healthy",
		ResponseTimeMS: time.Since(start).Milliseconds(),
		OpenConns:      stats.OpenConnections,
		InUse:          stats.InUse,
		Idle:           stats.Idle,
		WaitCount:      stats.WaitCount,
		MaxOpenConns:   stats.MaxOpenConnections,
	}, nil
}
