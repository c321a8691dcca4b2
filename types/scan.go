package types

import "time"

// ScanStatus represents the current status of a library scan job.
type ScanStatus string

const (
	ScanStatusQueued    ScanStatus = "queued"
	ScanStatusRunning   ScanStatus = "running"
	ScanStatusCompleted ScanStatus = "completed"
	ScanStatusFailed    ScanStatus = "failed"
	ScanStatusCancelled ScanStatus = "cancelled"
)

// ScanJob represents a queued or finished library scan.
type ScanJob struct {
	ID          string     `json:"id"`
	Path        string     `json:"path"`
	Recursive   bool       `json:"recursive"`
	Status      ScanStatus `json:"status"`
	Files       int        `json:"files"`
	Entries     int        `json:"entries"`
	Directories int        `json:"directories"`
	Error       string     `json:"error,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	StartedAt   *time.Time `json:"startedAt,omitempty"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
}

// ScanEvent is a WebSocket message describing scan or library activity.
type ScanEvent struct {
	JobID     string    `json:"jobId"`
	Type      string    `json:"type"` // "progress", "status", "complete", "error", "library"
	Status    string    `json:"status,omitempty"`
	Path      string    `json:"path,omitempty"` // file or directory the event refers to
	Files     int       `json:"files"`
	Message   string    `json:"message,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}
