package service

import (
	"context"
	"time"

	"olive/entities"
	"olive/pkg/task/repository"
)

type CreateTaskInput struct {
	FieldID        string     `json:"fieldId" validate:"required"`
	Type           string     `json:"type"`
	Title          string     `json:"title" validate:"required"`
	Description    string     `json:"description"`
	AssignedTo     string     `json:"assignedTo"`
	ScheduledStart *time.Time `json:"scheduledStart"`
	ScheduledEnd   *time.Time `json:"scheduledEnd"`
	Cost           *float64   `json:"cost" validate:"omitempty,gte=0"`
}

// TaskPatch updates only the non-nil members. FieldID is accepted so a client echoing the
// whole task back does not fail, but it must match the stored one.
type TaskPatch struct {
	FieldID        *string    `json:"fieldId"`
	Type           *string    `json:"type"`
	Title          *string    `json:"title" validate:"omitempty,min=1"`
	Description    *string    `json:"description"`
	ScheduledStart *time.Time `json:"scheduledStart"`
	ScheduledEnd   *time.Time `json:"scheduledEnd"`
	Cost           *float64   `json:"cost" validate:"omitempty,gte=0"`
}

// EvidenceInput takes a photo as URL or data URL, and notes as plain or rich text.
type EvidenceInput struct {
	Photo string `json:"photo"`
	Notes string `json:"notes"`
}

type TaskService interface {
	List(ctx context.Context, actor *entities.User, q repository.TaskQuery) ([]entities.Task, error)
	Get(ctx context.Context, actor *entities.User, id string) (*entities.Task, error)
	Create(ctx context.Context, actor *entities.User, in CreateTaskInput) (*entities.Task, error)
	Update(ctx context.Context, actor *entities.User, id string, p TaskPatch) (*entities.Task, error)
	// UpdateStatus stamps ActualStart on entering in_progress and ActualEnd on entering
	// completed, each only when still unset.
	UpdateStatus(ctx context.Context, actor *entities.User, id string, status entities.TaskStatus) (*entities.Task, error)
	// Assign hands the task to userID; an empty id clears the assignment.
	Assign(ctx context.Context, actor *entities.User, id, userID string) (*entities.Task, error)
	AddEvidence(ctx context.Context, actor *entities.User, id string, in EvidenceInput) (*entities.Evidence, error)
}
