package entity

import (
	"time"

	"github.com/google/uuid"
)

type RunStatus string

const (
	RunStatusPending    RunStatus = "PENDING"
	RunStatusProcessing RunStatus = "PROCESSING"
	RunStatusCompleted  RunStatus = "COMPLETED"
	RunStatusFailed     RunStatus = "FAILED"
)

// BootstrapRun tracks one bootstrap pass over a difficulty level.
type BootstrapRun struct {
	ID               uuid.UUID
	Level            string
	Status           RunStatus
	ClassesProcessed int
	ImagesProcessed  int
	PosesDetected    int
	DetectionMisses  int
	ErrorMessage     string
	StartedAt        time.Time
	UpdatedAt        time.Time
	CompletedAt      *time.Time
}

func NewBootstrapRun(level string) *BootstrapRun {
	now := time.Now().UTC()
	return &BootstrapRun{
		ID:        uuid.New(),
		Level:     level,
		Status:    RunStatusPending,
		StartedAt: now,
		UpdatedAt: now,
	}
}

func (r *BootstrapRun) MarkProcessing() {
	r.Status = RunStatusProcessing
	r.UpdatedAt = time.Now().UTC()
}

func (r *BootstrapRun) MarkCompleted() {
	now := time.Now().UTC()
	r.Status = RunStatusCompleted
	r.UpdatedAt = now
	r.CompletedAt = &now
}

func (r *BootstrapRun) MarkFailed(errMsg string) {
	r.Status = RunStatusFailed
	r.ErrorMessage = errMsg
	r.UpdatedAt = time.Now().UTC()
}

// ObserveImage records one processed image and whether a body was found.
func (r *BootstrapRun) ObserveImage(detected bool) {
	r.ImagesProcessed++
	if detected {
		r.PosesDetected++
	} else {
		r.DetectionMisses++
	}
	r.UpdatedAt = time.Now().UTC()
}

func (r *BootstrapRun) ObserveClass() {
	r.ClassesProcessed++
	r.UpdatedAt = time.Now().UTC()
}

func (r *BootstrapRun) Duration() time.Duration {
	if r.CompletedAt != nil {
		return r.CompletedAt.Sub(r.StartedAt)
	}
	return time.Since(r.StartedAt)
}
