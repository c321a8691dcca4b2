package handlers

import (
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"

	"lsaudio/services"
	"lsaudio/websocket"
)

// ScanHandler handles scan management endpoints.
type ScanHandler struct {
	scans   services.ScanQueue
	hub     websocket.Hub
	library string
}

// NewScanHandler creates a new scan handler.
func NewScanHandler(scans services.ScanQueue, hub websocket.Hub, library string) *ScanHandler {
	return &ScanHandler{
		scans:   scans,
		hub:     hub,
		library: library,
	}
}

// QueueScan queues a library rescan.
func (h *ScanHandler) QueueScan(c *gin.Context) {
	job := h.scans.Enqueue(h.library, true)
	c.JSON(http.StatusCreated, gin.H{
		"message": "scan queued successfully",
		"job":     job,
	})
}

// GetAllScans returns all scan jobs.
func (h *ScanHandler) GetAllScans(c *gin.Context) {
	jobs := h.scans.All()
	c.JSON(http.StatusOK, gin.H{
		"jobs":  jobs,
		"total": len(jobs),
	})
}

// GetScan returns a specific scan job by ID.
func (h *ScanHandler) GetScan(c *gin.Context) {
	job, exists := h.scans.Get(c.Param("jobId"))
	if !exists {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "job not found",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"job": job,
	})
}

// CancelScan cancels a queued scan job.
func (h *ScanHandler) CancelScan(c *gin.Context) {
	if !h.scans.Cancel(c.Param("jobId")) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "job cannot be cancelled (not found or already running)",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "job cancelled successfully",
	})
}

// HandleWebSocketConnection upgrades a connection subscribed to one job's
// events.
func (h *ScanHandler) HandleWebSocketConnection(c *gin.Context) {
	jobID := c.Param("jobId")
	if _, exists := h.scans.Get(jobID); !exists {
		c.JSON(http.StatusNotFound, gin.H{"error": "job not found"})
		return
	}

	h.upgrade(c, jobID)
}

// HandleWebSocketAllConnection upgrades a connection subscribed to every
// scan and library event.
func (h *ScanHandler) HandleWebSocketAllConnection(c *gin.Context) {
	h.upgrade(c, websocket.AllJobs)
}

func (h *ScanHandler) upgrade(c *gin.Context, jobID string) {
	upgrader := websocket.GetUpgrader()
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Warn("websocket upgrade failed", "err", err)
		return
	}

	client := websocket.NewClient(h.hub, conn, jobID)
	h.hub.RegisterClient(client)
	client.StartPumps()
}
