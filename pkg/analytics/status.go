package analytics

import "olive/entities"

type StatusDistribution struct {
	Pending    int `json:"pending"`
	InProgress int `json:"in_progress"`
	Completed  int `json:"completed"`
}

func ComputeStatusDistribution(tasks []entities.Task, r DateRange) StatusDistribution {
	var d StatusDistribution
	for _, t := range createdWithin(tasks, r) {
		switch t.Status {
		case entities.TaskPending:
			d.Pending++
		case entities.TaskInProgress:
			d.InProgress++
		case entities.TaskCompleted:
			d.Completed++
		}
	}
	return d
}
