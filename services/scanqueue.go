package services

import (
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"lsaudio/types"
	"lsaudio/websocket"
)

// ScanQueue interface defines the methods for managing library scan jobs.
// Jobs run on a single worker so a scan never overlaps another; the walk
// itself stays strictly sequential.
type ScanQueue interface {
	Start()
	Enqueue(path string, recursive bool) *types.ScanJob
	Get(id string) (*types.ScanJob, bool)
	All() []*types.ScanJob
	Cancel(id string) bool
}

// scanQueue manages scan jobs over one Lister.
type scanQueue struct {
	lister Lister
	jobs   map[string]*types.ScanJob
	queue  chan *types.ScanJob
	hub    websocket.Hub
	mu     sync.RWMutex
}

// NewScanQueue creates a new scan queue. The hub may be nil when no one
// listens for events.
func NewScanQueue(lister Lister, hub websocket.Hub) ScanQueue {
	return &scanQueue{
		lister: lister,
		jobs:   make(map[string]*types.ScanJob),
		queue:  make(chan *types.ScanJob, 64),
		hub:    hub,
	}
}

// Enqueue adds a new scan job to the queue.
func (sq *scanQueue) Enqueue(path string, recursive bool) *types.ScanJob {
	sq.mu.Lock()
	defer sq.mu.Unlock()

	job := &types.ScanJob{
		ID:        uuid.New().String(),
		Path:      path,
		Recursive: recursive,
		Status:    types.ScanStatusQueued,
		CreatedAt: time.Now(),
	}

	sq.jobs[job.ID] = job
	sq.queue <- job

	return job
}

// Get retrieves a job by ID.
func (sq *scanQueue) Get(id string) (*types.ScanJob, bool) {
	sq.mu.RLock()
	defer sq.mu.RUnlock()
	job, exists := sq.jobs[id]
	return job, exists
}

// All returns all known jobs.
func (sq *scanQueue) All() []*types.ScanJob {
	sq.mu.RLock()
	defer sq.mu.RUnlock()

	jobs := make([]*types.ScanJob, 0, len(sq.jobs))
	for _, job := range sq.jobs {
		jobs = append(jobs, job)
	}
	return jobs
}

// Cancel cancels a job that has not started yet.
func (sq *scanQueue) Cancel(id string) bool {
	sq.mu.Lock()
	defer sq.mu.Unlock()

	job, exists := sq.jobs[id]
	if !exists || job.Status != types.ScanStatusQueued {
		return false
	}

	job.Status = types.ScanStatusCancelled
	now := time.Now()
	job.CompletedAt = &now
	return true
}

// Start begins processing jobs on a single worker.
func (sq *scanQueue) Start() {
	go sq.worker()
}

func (sq *scanQueue) worker() {
	for job := range sq.queue {
		sq.mu.RLock()
		cancelled := job.Status == types.ScanStatusCancelled
		sq.mu.RUnlock()
		if cancelled {
			continue
		}

		sq.setStatus(job.ID, types.ScanStatusRunning, "")

		results, err := sq.lister.List([]string{job.Path}, types.ListOptions{
			SortBy:    []types.SortBy{types.SortByFileName},
			Recursive: job.Recursive,
			Progress:  func(path string) { sq.fileVisited(job.ID, path) },
		})

		if err != nil {
			sq.setStatus(job.ID, types.ScanStatusFailed, err.Error())
			log.Error("scan failed", "job", job.ID, "path", job.Path, "err", err)
			continue
		}

		entries := 0
		for _, info := range results {
			entries += len(info.Entries)
		}
		sq.mu.Lock()
		job.Entries = entries
		job.Directories = len(results)
		sq.mu.Unlock()

		sq.setStatus(job.ID, types.ScanStatusCompleted, "")
		log.Info("scan completed", "job", job.ID, "path", job.Path,
			"files", job.Files, "entries", entries, "directories", len(results))
	}
}

// fileVisited counts a visited file and broadcasts progress.
func (sq *scanQueue) fileVisited(id, path string) {
	sq.mu.Lock()
	job, exists := sq.jobs[id]
	if !exists {
		sq.mu.Unlock()
		return
	}
	job.Files++
	files := job.Files
	sq.mu.Unlock()

	if sq.hub != nil {
		sq.hub.BroadcastEvent(id, "progress", string(types.ScanStatusRunning), path, "", files)
	}
}

// setStatus updates a job's status and broadcasts the transition.
func (sq *scanQueue) setStatus(id string, status types.ScanStatus, errorMsg string) {
	sq.mu.Lock()
	job, exists := sq.jobs[id]
	if !exists {
		sq.mu.Unlock()
		return
	}

	job.Status = status
	if errorMsg != "" {
		job.Error = errorMsg
	}

	now := time.Now()
	switch status {
	case types.ScanStatusRunning:
		if job.StartedAt == nil {
			job.StartedAt = &now
		}
	case types.ScanStatusCompleted, types.ScanStatusFailed, types.ScanStatusCancelled:
		job.CompletedAt = &now
	}
	files := job.Files
	path := job.Path
	sq.mu.Unlock()

	if sq.hub == nil {
		return
	}

	eventType := "status"
	message := string(status)
	switch status {
	case types.ScanStatusCompleted:
		eventType = "complete"
		message = "scan of " + path + " completed"
	case types.ScanStatusFailed:
		eventType = "error"
		message = errorMsg
	}
	sq.hub.BroadcastEvent(id, eventType, string(status), "", message, files)
}
