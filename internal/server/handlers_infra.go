package server

import (
	"context"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
)

// Health godoc
// @Summary Health check
// @Description Check the health status of the API and its database
// @Tags System
// @Produce json
// @Success 200 {object} map[string]interface{} "Health status"
// @Router /health [get]
func (s *Server) Health(c echo.Context) error {
	status := map[string]any{
		"success": true,
		"status":  "ok",
		"checks":  map[string]any{},
	}
	checks := status["checks"].(map[string]any)

	// Pooled connection via gorm
	if sqlDB, err := s.DB.DB(); err == nil {
		if err := sqlDB.Ping(); err != nil {
			checks["database"] = map[string]any{"ok": false, "error": err.Error()}
			status["status"] = "degraded"
		} else {
			checks["database"] = map[string]any{"ok": true}
		}
	} else {
		checks["database"] = map[string]any{"ok": false, "error": "db handle unavailable"}
		status["status"] = "degraded"
	}

	// Direct probe, bypassing the pool (best-effort). Catches the case
	// where the pooled connections are healthy but new ones can't be made.
	if s.Cfg.DatabaseURL != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if pool, err := pgxpool.New(ctx, s.Cfg.DatabaseURL); err == nil {
			if err := pool.Ping(ctx); err != nil {
				checks["database_direct"] = map[string]any{"ok": false, "error": err.Error()}
				status["status"] = "degraded"
			} else {
				checks["database_direct"] = map[string]any{"ok": true}
			}
			pool.Close()
		} else {
			checks["database_direct"] = map[string]any{"ok": false}
		}
	}

	return c.JSON(http.StatusOK, status)
}
