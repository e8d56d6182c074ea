package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"olive/entities"
)

func TestComputeCompletionRates(t *testing.T) {
	tasks := []entities.Task{
		// 2024-06-09 is a Sunday.
		task("a", "f1", entities.TaskCompleted, "2024-06-12T09:00:00Z"),
		task("b", "f1", entities.TaskPending, "2024-06-10T09:00:00Z"),
		task("c", "f1", entities.TaskCompleted, "2024-06-10T15:00:00Z"),
		task("d", "f1", entities.TaskPending, "2024-06-03T09:00:00Z"),
		task("e", "f1", entities.TaskCompleted, "2024-05-20T09:00:00Z"),
	}
	r := DateRange{Start: at("2024-05-01T00:00:00Z"), End: at("2024-06-30T23:59:59Z")}

	got := ComputeCompletionRates(tasks, r)

	assert.Equal(t, []CompletionBucket{
		{Date: "2024-05-20", Total: 1, Completed: 1, Rate: 100},
		{Date: "2024-06-03", Total: 1, Completed: 0, Rate: 0},
		{Date: "2024-06-10", Total: 2, Completed: 1, Rate: 50},
		{Date: "2024-06-12", Total: 1, Completed: 1, Rate: 100},
	}, got.Daily)

	assert.Equal(t, []CompletionBucket{
		{Date: "2024-05-19", Total: 1, Completed: 1, Rate: 100},
		{Date: "2024-06-02", Total: 1, Completed: 0, Rate: 0},
		{Date: "2024-06-09", Total: 3, Completed: 2, Rate: float64(2) / float64(3) * 100},
	}, got.Weekly)

	assert.Equal(t, []CompletionBucket{
		{Date: "2024-05", Total: 1, Completed: 1, Rate: 100},
		{Date: "2024-06", Total: 4, Completed: 2, Rate: 50},
	}, got.Monthly)
}

func TestWeeklyBucketsMergeSameWeek(t *testing.T) {
	tasks := []entities.Task{
		task("mon", "f1", entities.TaskCompleted, "2024-06-10T09:00:00Z"),
		task("sat", "f1", entities.TaskPending, "2024-06-15T09:00:00Z"),
	}
	got := ComputeCompletionRates(tasks, june())

	assert.Len(t, got.Daily, 2)
	assert.Equal(t, []CompletionBucket{{Date: "2024-06-09", Total: 2, Completed: 1, Rate: 50}}, got.Weekly)
}

func TestComputeCompletionRatesEmpty(t *testing.T) {
	got := ComputeCompletionRates(nil, june())
	assert.Empty(t, got.Daily)
	assert.Empty(t, got.Weekly)
	assert.Empty(t, got.Monthly)
}
