package entities

import "time"

type TaskStatus string

const (
	TaskPending    TaskStatus = "pending"
	TaskInProgress TaskStatus = "in_progress"
	TaskCompleted  TaskStatus = "completed"
)

func (s TaskStatus) Valid() bool {
	switch s {
	case TaskPending, TaskInProgress, TaskCompleted:
		return true
	}
	return false
}

type Task struct {
	ID             string        `gorm:"primaryKey" json:"id"`
	FieldID        string        `gorm:"index" json:"fieldId"`
	Type           string        `json:"type"` // free text: Pruning, Harvest, Fertilization...
	Title          string        `json:"title"`
	Description    string        `json:"description,omitempty"`
	Status         TaskStatus    `gorm:"index" json:"status"`
	AssignedTo     string        `gorm:"index" json:"assignedTo,omitempty"`
	ScheduledStart *time.Time    `json:"scheduledStart,omitempty"`
	ScheduledEnd   *time.Time    `json:"scheduledEnd,omitempty"`
	ActualStart    *time.Time    `json:"actualStart,omitempty"`
	ActualEnd      *time.Time    `json:"actualEnd,omitempty"`
	LifecycleYear  LifecycleYear `json:"lifecycleYear"`
	Cost           *float64      `json:"cost,omitempty"`
	Evidence       []Evidence    `gorm:"foreignKey:TaskID;constraint:OnDelete:CASCADE" json:"evidence"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Evidence is append-only proof of work attached to a task.
type Evidence struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	TaskID    string    `gorm:"index" json:"taskId"`
	Photo     string    `json:"photo,omitempty"`
	Notes     string    `json:"notes,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

func (e Evidence) Empty() bool { return e.Photo == "" && e.Notes == "" }

// CostValue reports the cost with a missing value read as zero.
func (t *Task) CostValue() float64 {
	if t.Cost == nil {
		return 0
	}
	return *t.Cost
}
