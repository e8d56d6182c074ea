package analytics

import "olive/entities"

type TaskMetrics struct {
	TotalTasks            int     `json:"totalTasks"`
	PendingTasks          int     `json:"pendingTasks"`
	InProgressTasks       int     `json:"inProgressTasks"`
	CompletedTasks        int     `json:"completedTasks"`
	CompletionRate        float64 `json:"completionRate"`
	AverageCompletionTime float64 `json:"averageCompletionTime"` // days
}

// ComputeTaskMetrics summarises the tasks created within r.
func ComputeTaskMetrics(tasks []entities.Task, r DateRange) TaskMetrics {
	in := createdWithin(tasks, r)
	m := TaskMetrics{TotalTasks: len(in)}

	var spent float64
	var timed int
	for _, t := range in {
		switch t.Status {
		case entities.TaskPending:
			m.PendingTasks++
		case entities.TaskInProgress:
			m.InProgressTasks++
		case entities.TaskCompleted:
			m.CompletedTasks++
			if t.ActualStart != nil && t.ActualEnd != nil {
				spent += t.ActualEnd.Sub(*t.ActualStart).Hours() / 24
				timed++
			}
		}
	}
	m.CompletionRate = percent(m.CompletedTasks, m.TotalTasks)
	if timed > 0 {
		m.AverageCompletionTime = spent / float64(timed)
	}
	return m
}
