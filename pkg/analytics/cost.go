package analytics

import (
	"sort"

	"olive/entities"
)

const UnknownCostField = "Unknown"

type CostByField struct {
	FieldID   string  `json:"fieldId"`
	FieldName string  `json:"fieldName"`
	Cost      float64 `json:"cost"`
}

type CostByType struct {
	Type string  `json:"type"`
	Cost float64 `json:"cost"`
}

type CostPoint struct {
	Date string  `json:"date"`
	Cost float64 `json:"cost"`
}

type CostAnalysis struct {
	TotalCost      float64       `json:"totalCost"`
	CostByField    []CostByField `json:"costByField"`
	CostByTaskType []CostByType  `json:"costByTaskType"`
	CostOverTime   []CostPoint   `json:"costOverTime"`
}

// ComputeCostAnalysis aggregates the tasks finished within r that carry a non-zero cost.
// Zero-cost tasks never reach any bucket. Field and type groups keep first-seen order.
func ComputeCostAnalysis(fields []entities.Field, tasks []entities.Task, r DateRange) CostAnalysis {
	names := fieldNames(fields)
	out := CostAnalysis{
		CostByField:    []CostByField{},
		CostByTaskType: []CostByType{},
		CostOverTime:   []CostPoint{},
	}
	fieldIdx := map[string]int{}
	typeIdx := map[string]int{}
	daily := map[string]float64{}

	for _, t := range tasks {
		if t.ActualEnd == nil || !r.Contains(*t.ActualEnd) || t.CostValue() == 0 {
			continue
		}
		cost := t.CostValue()
		out.TotalCost += cost

		i, ok := fieldIdx[t.FieldID]
		if !ok {
			name, found := names[t.FieldID]
			if !found {
				name = UnknownCostField
			}
			i = len(out.CostByField)
			fieldIdx[t.FieldID] = i
			out.CostByField = append(out.CostByField, CostByField{FieldID: t.FieldID, FieldName: name})
		}
		out.CostByField[i].Cost += cost

		j, ok := typeIdx[t.Type]
		if !ok {
			j = len(out.CostByTaskType)
			typeIdx[t.Type] = j
			out.CostByTaskType = append(out.CostByTaskType, CostByType{Type: t.Type})
		}
		out.CostByTaskType[j].Cost += cost

		daily[dayKey(*t.ActualEnd)] += cost
	}

	for day, cost := range daily {
		out.CostOverTime = append(out.CostOverTime, CostPoint{Date: day, Cost: cost})
	}
	sort.Slice(out.CostOverTime, func(i, j int) bool { return out.CostOverTime[i].Date < out.CostOverTime[j].Date })
	return out
}
