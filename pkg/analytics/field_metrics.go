package analytics

import "olive/entities"

const UnknownFieldName = "Unknown Field"

type FieldMetrics struct {
	FieldID            string  `json:"fieldId"`
	FieldName          string  `json:"fieldName"`
	TotalTasks         int     `json:"totalTasks"`
	CompletedTasks     int     `json:"completedTasks"`
	CompletionRate     float64 `json:"completionRate"`
	TotalCost          float64 `json:"totalCost"`
	AverageCostPerTask float64 `json:"averageCostPerTask"`
}

// ComputeFieldMetrics returns one entry per requested id, in request order. Ids without a
// matching field or without tasks still get an entry.
func ComputeFieldMetrics(fieldIDs []string, fields []entities.Field, tasks []entities.Task, r DateRange) []FieldMetrics {
	names := fieldNames(fields)
	byField := make(map[string][]entities.Task)
	for _, t := range createdWithin(tasks, r) {
		byField[t.FieldID] = append(byField[t.FieldID], t)
	}

	out := make([]FieldMetrics, 0, len(fieldIDs))
	for _, id := range fieldIDs {
		m := FieldMetrics{FieldID: id, FieldName: UnknownFieldName}
		if name, ok := names[id]; ok {
			m.FieldName = name
		}
		for _, t := range byField[id] {
			m.TotalTasks++
			if t.Status == entities.TaskCompleted {
				m.CompletedTasks++
				m.TotalCost += t.CostValue()
			}
		}
		m.CompletionRate = percent(m.CompletedTasks, m.TotalTasks)
		if m.CompletedTasks > 0 {
			m.AverageCostPerTask = m.TotalCost / float64(m.CompletedTasks)
		}
		out = append(out, m)
	}
	return out
}
