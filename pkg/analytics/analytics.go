// Package analytics turns flat field and task collections into dashboard metrics.
//
// Every function here is a pure read over its arguments: no I/O, no shared state, safe to
// run concurrently over the same snapshot.
package analytics

import (
	"time"

	"olive/entities"
)

const dayLayout = "2006-01-02"

// DateRange is inclusive on both ends. An inverted range matches nothing.
type DateRange struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

func (r DateRange) Contains(t time.Time) bool {
	return !t.Before(r.Start) && !t.After(r.End)
}

// createdWithin keeps the tasks whose creation timestamp falls in r.
func createdWithin(tasks []entities.Task, r DateRange) []entities.Task {
	out := make([]entities.Task, 0, len(tasks))
	for _, t := range tasks {
		if r.Contains(t.CreatedAt) {
			out = append(out, t)
		}
	}
	return out
}

func percent(part, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(part) / float64(total) * 100
}

func dayKey(t time.Time) string { return t.UTC().Format(dayLayout) }

func fieldNames(fields []entities.Field) map[string]string {
	names := make(map[string]string, len(fields))
	for _, f := range fields {
		names[f.ID] = f.Name
	}
	return names
}
