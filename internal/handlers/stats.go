package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// StartRefresher starts the dashboard stats refresher
func (h *Handlers) StartRefresher(c *gin.Context) {
	if err := h.refresher.Start(); err != nil {
		abortError(c, http.StatusInternalServerError, "stats_error", "Failed to start stats refresher")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Stats refresher started successfully",
		"status":  "running",
	})
}

// StopRefresher stops the dashboard stats refresher
func (h *Handlers) StopRefresher(c *gin.Context) {
	if err := h.refresher.Stop(); err != nil {
		abortError(c, http.StatusInternalServerError, "stats_error", "Failed to stop stats refresher")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Stats refresher stopped successfully",
		"status":  "stopped",
	})
}

// RunRefresherOnce refreshes the dashboard stats immediately
func (h *Handlers) RunRefresherOnce(c *gin.Context) {
	if err := h.refresher.RunOnce(c.Request.Context()); err != nil {
		abortError(c, http.StatusInternalServerError, "stats_error", "Failed to refresh stats")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Stats refreshed successfully",
	})
}

// RefresherStatus returns the current refresher status
func (h *Handlers) RefresherStatus(c *gin.Context) {
	status := "stopped"
	if h.refresher.IsRunning() {
		status = "running"
	}

	c.JSON(http.StatusOK, gin.H{
		"status":   status,
		"next_run": h.refresher.GetNextRun(),
		"last_run": h.refresher.GetLastRun(),
	})
}
