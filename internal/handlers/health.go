package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// HealthCheck handles health check requests
func (h *Handlers) HealthCheck(c *gin.Context) {
	response := HealthResponse{
		Status:    "ok",
		Timestamp: time.Now(),
		Database:  "ok",
		Metrics:   make(map[string]string),
	}

	// Check database connection
	if err := h.db.Exec("SELECT 1").Error; err != nil {
		response.Status = "error"
		response.Database = "error"
		logrus.Errorf("Database health check failed: %v", err)
	}

	// Check stats refresher status
	if h.refresher.IsRunning() {
		response.Metrics["stats_refresher"] = "running"
		response.Metrics["next_run"] = h.refresher.GetNextRun().Format(time.RFC3339)
		response.Metrics["last_run"] = h.refresher.GetLastRun().Format(time.RFC3339)
	} else {
		response.Metrics["stats_refresher"] = "stopped"
	}

	statusCode := http.StatusOK
	if response.Status == "error" {
		statusCode = http.StatusServiceUnavailable
	}

	c.JSON(statusCode, response)
}
