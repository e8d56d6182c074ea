package entities

import "time"

// Lifecycle tracks the low/high yield alternation of one field.
type Lifecycle struct {
	ID                  string        `gorm:"primaryKey" json:"id"`
	FieldID             string        `gorm:"uniqueIndex" json:"fieldId"`
	CurrentYear         LifecycleYear `json:"currentYear"`
	CycleStartDate      time.Time     `json:"cycleStartDate"`
	LastProgressionDate *time.Time    `json:"lastProgressionDate,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
