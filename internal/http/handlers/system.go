package handlers

import (
	"context"
	"database/sql"
	"net/http"
	"time"

	intdb "busstation/internal/db"

	"github.com/gin-gonic/gin"
)

// SystemHandler serves health and diagnostics endpoints.
type SystemHandler struct {
	DB      *sql.DB
	Dialect intdb.Dialect
	Engine  *gin.Engine
}

func (h *SystemHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *SystemHandler) DBCheck(c *gin.Context) {
	if h.DB == nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "database not connected"})
		return
	}
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	if err := h.DB.PingContext(ctx); err != nil {
		_ = c.Error(err)
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "database ping failed"})
		return
	}
	missing := intdb.MissingTables(ctx, h.DB, h.Dialect)
	if len(missing) > 0 {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "schema incomplete", "missing_tables": missing})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "database OK", "driver": h.Dialect.Name})
}

func (h *SystemHandler) Routes(c *gin.Context) {
	if h.Engine == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "router not ready"})
		return
	}
	routes := h.Engine.Routes()
	out := make([]gin.H, 0, len(routes))
	for _, rt := range routes {
		out = append(out, gin.H{
			"method":  rt.Method,
			"path":    rt.Path,
			"handler": rt.Handler,
		})
	}
	c.JSON(http.StatusOK, gin.H{"routes": out})
}
