package repository

import (
	"context"

	"olive/entities"
)

// TaskQuery narrows a listing; empty members match everything.
type TaskQuery struct {
	FieldID    string
	AssignedTo string
}

type TaskRepository interface {
	List(ctx context.Context, q TaskQuery) ([]entities.Task, error)
	FindByID(ctx context.Context, id string) (*entities.Task, error)
	Create(ctx context.Context, t *entities.Task) error
	Update(ctx context.Context, t *entities.Task) error
	AppendEvidence(ctx context.Context, taskID string, ev *entities.Evidence) error
}
