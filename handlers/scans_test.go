package handlers

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lsaudio/services"
)

func scanRouter(queue services.ScanQueue) *gin.Engine {
	h := NewScanHandler(queue, nil, "/library")
	r := gin.New()
	r.POST("/api/scans", h.QueueScan)
	r.GET("/api/scans", h.GetAllScans)
	r.GET("/api/scans/:jobId", h.GetScan)
	r.DELETE("/api/scans/:jobId", h.CancelScan)
	return r
}

// The queue is deliberately not started in these tests so jobs stay queued
// and observable.
func newIdleQueue() services.ScanQueue {
	return services.NewScanQueue(services.NewLister(services.NewTagReader(), "."), nil)
}

func TestQueueScan(t *testing.T) {
	queue := newIdleQueue()
	r := scanRouter(queue)

	w, payload := doRequest(t, r, http.MethodPost, "/api/scans")

	assert.Equal(t, http.StatusCreated, w.Code)
	job, ok := payload["job"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "/library", job["path"])
	assert.Equal(t, "queued", job["status"])
	assert.NotEmpty(t, job["id"])

	all := queue.All()
	require.Len(t, all, 1)
	assert.True(t, all[0].Recursive)
}

func TestGetAllScans(t *testing.T) {
	queue := newIdleQueue()
	queue.Enqueue("/library", true)
	queue.Enqueue("/library", true)
	r := scanRouter(queue)

	w, payload := doRequest(t, r, http.MethodGet, "/api/scans")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(2), payload["total"])
}

func TestGetScan(t *testing.T) {
	queue := newIdleQueue()
	job := queue.Enqueue("/library", true)
	r := scanRouter(queue)

	w, payload := doRequest(t, r, http.MethodGet, "/api/scans/"+job.ID)

	assert.Equal(t, http.StatusOK, w.Code)
	got, ok := payload["job"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, job.ID, got["id"])
}

func TestGetScanNotFound(t *testing.T) {
	r := scanRouter(newIdleQueue())

	w, payload := doRequest(t, r, http.MethodGet, "/api/scans/missing")

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "job not found", payload["error"])
}

func TestCancelScan(t *testing.T) {
	queue := newIdleQueue()
	job := queue.Enqueue("/library", true)
	r := scanRouter(queue)

	url := fmt.Sprintf("/api/scans/%s", job.ID)
	w, _ := doRequest(t, r, http.MethodDelete, url)
	assert.Equal(t, http.StatusOK, w.Code)

	// A second cancel of the same job reports a client error.
	w, payload := doRequest(t, r, http.MethodDelete, url)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, payload["error"], "cannot be cancelled")
}
