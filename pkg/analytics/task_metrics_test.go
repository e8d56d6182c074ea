package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"olive/entities"
)

func TestComputeTaskMetrics(t *testing.T) {
	done := task("t3", "f1", entities.TaskCompleted, "2024-06-03T08:00:00Z")
	done.ActualStart = ptr(at("2024-06-03T08:00:00Z"))
	done.ActualEnd = ptr(at("2024-06-05T20:00:00Z"))

	untimed := task("t4", "f1", entities.TaskCompleted, "2024-06-04T08:00:00Z")
	untimed.ActualEnd = ptr(at("2024-06-06T08:00:00Z"))

	tasks := []entities.Task{
		task("t1", "f1", entities.TaskPending, "2024-06-01T00:00:00Z"),
		task("t2", "f2", entities.TaskInProgress, "2024-06-30T23:59:59Z"),
		done,
		untimed,
		task("old", "f1", entities.TaskCompleted, "2024-05-31T23:59:59Z"),
	}

	m := ComputeTaskMetrics(tasks, june())

	assert.Equal(t, 4, m.TotalTasks)
	assert.Equal(t, 1, m.PendingTasks)
	assert.Equal(t, 1, m.InProgressTasks)
	assert.Equal(t, 2, m.CompletedTasks)
	assert.Equal(t, m.TotalTasks, m.PendingTasks+m.InProgressTasks+m.CompletedTasks)
	assert.Equal(t, float64(2)/float64(4)*100, m.CompletionRate)
	assert.InDelta(t, 2.5, m.AverageCompletionTime, 1e-9)
}

func TestComputeTaskMetricsEmpty(t *testing.T) {
	m := ComputeTaskMetrics(nil, june())
	assert.Equal(t, TaskMetrics{}, m)

	inverted := DateRange{Start: june().End, End: june().Start}
	m = ComputeTaskMetrics([]entities.Task{task("t1", "f1", entities.TaskPending, "2024-06-10T00:00:00Z")}, inverted)
	assert.Zero(t, m.TotalTasks)
	assert.Zero(t, m.CompletionRate)
}

func TestStatusDistribution(t *testing.T) {
	tasks := []entities.Task{
		task("a", "f1", entities.TaskPending, "2024-06-02T00:00:00Z"),
		task("b", "f1", entities.TaskPending, "2024-06-02T00:00:00Z"),
		task("c", "f1", entities.TaskCompleted, "2024-06-02T00:00:00Z"),
		task("d", "f1", entities.TaskInProgress, "2024-07-02T00:00:00Z"),
	}
	assert.Equal(t, StatusDistribution{Pending: 2, Completed: 1}, ComputeStatusDistribution(tasks, june()))
}
