package analytics

import (
	"time"

	"olive/entities"
)

func at(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return t
}

func ptr[T any](v T) *T { return &v }

func june() DateRange {
	return DateRange{Start: at("2024-06-01T00:00:00Z"), End: at("2024-06-30T23:59:59Z")}
}

func task(id, fieldID string, status entities.TaskStatus, created string) entities.Task {
	return entities.Task{ID: id, FieldID: fieldID, Type: "Pruning", Title: id, Status: status, CreatedAt: at(created)}
}
