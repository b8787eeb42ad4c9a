package model

import (
	"encoding/json"
	"time"
)

const (
	// StatusSuccess marks a successful write.
	StatusSuccess = "success"
	// StatusSkipped indicates no write was needed.
	StatusSkipped = "skipped"
	// StatusFailed marks a failed read or write.
	StatusFailed = "failed"
	// StatusWouldCreate indicates dry-run would create a resource.
	StatusWouldCreate = "would_create"
	// StatusWouldUpdate indicates dry-run would update a resource.
	StatusWouldUpdate = "would_update"
)

// StepResult captures the outcome of applying a single resource.
type StepResult struct {
	ResourceID string
	Status     string
	Message    string
	// Output is the decoded response body returned by the device, if any.
	Output    json.RawMessage
	Error     error
	Duration  time.Duration
	Timestamp time.Time
}
