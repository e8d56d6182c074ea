// Package report flattens aggregation results into tables and renders them as downloads.
package report

import (
	"fmt"
	"time"

	"olive/entities"
	"olive/pkg/analytics"
)

type Kind string

const (
	KindFieldSummary   Kind = "field-summary"
	KindTaskCompletion Kind = "task-completion"
	KindCostAnalysis   Kind = "cost-analysis"
	KindTasks          Kind = "tasks"
)

var Kinds = []Kind{KindFieldSummary, KindTaskCompletion, KindCostAnalysis, KindTasks}

func ParseKind(s string) (Kind, bool) {
	for _, k := range Kinds {
		if string(k) == s {
			return k, true
		}
	}
	return "", false
}

// Table is one rendered report. Rows hold string, int, float64 or time.Time cells.
type Table struct {
	Title     string
	Subtitle  string
	Headers   []string
	Rows      [][]any
	Generated time.Time
}

func subtitle(r analytics.DateRange) string {
	return fmt.Sprintf("%s to %s", r.Start.UTC().Format("2006-01-02"), r.End.UTC().Format("2006-01-02"))
}

func FieldSummary(ms []analytics.FieldMetrics, r analytics.DateRange) Table {
	t := Table{
		Title:    "Field summary",
		Subtitle: subtitle(r),
		Headers:  []string{"Field", "Tasks", "Completed", "Completion %", "Total cost", "Avg cost / task"},
	}
	for _, m := range ms {
		t.Rows = append(t.Rows, []any{m.FieldName, m.TotalTasks, m.CompletedTasks, m.CompletionRate, m.TotalCost, m.AverageCostPerTask})
	}
	return t
}

// TaskCompletion lists the daily, weekly and monthly series one after the other.
func TaskCompletion(c analytics.CompletionRates, r analytics.DateRange) Table {
	t := Table{
		Title:    "Task completion",
		Subtitle: subtitle(r),
		Headers:  []string{"Period", "Bucket", "Tasks", "Completed", "Rate %"},
	}
	for _, s := range []struct {
		name    string
		buckets []analytics.CompletionBucket
	}{{"daily", c.Daily}, {"weekly", c.Weekly}, {"monthly", c.Monthly}} {
		for _, b := range s.buckets {
			t.Rows = append(t.Rows, []any{s.name, b.Date, b.Total, b.Completed, b.Rate})
		}
	}
	return t
}

func CostAnalysis(c analytics.CostAnalysis, r analytics.DateRange) Table {
	t := Table{
		Title:    "Cost analysis",
		Subtitle: subtitle(r),
		Headers:  []string{"Breakdown", "Item", "Cost"},
	}
	for _, f := range c.CostByField {
		t.Rows = append(t.Rows, []any{"field", f.FieldName, f.Cost})
	}
	for _, ty := range c.CostByTaskType {
		t.Rows = append(t.Rows, []any{"task type", ty.Type, ty.Cost})
	}
	for _, p := range c.CostOverTime {
		t.Rows = append(t.Rows, []any{"day", p.Date, p.Cost})
	}
	t.Rows = append(t.Rows, []any{"total", "", c.TotalCost})
	return t
}

// Tasks is the raw task register; names resolves field ids for display.
func Tasks(tasks []entities.Task, fields []entities.Field, r analytics.DateRange) Table {
	names := make(map[string]string, len(fields))
	for _, f := range fields {
		names[f.ID] = f.Name
	}
	t := Table{
		Title:    "Tasks",
		Subtitle: subtitle(r),
		Headers:  []string{"Title", "Field", "Type", "Status", "Assigned to", "Scheduled start", "Completed", "Lifecycle year", "Cost"},
	}
	for _, task := range tasks {
		if !r.Contains(task.CreatedAt) {
			continue
		}
		field, ok := names[task.FieldID]
		if !ok {
			field = analytics.UnknownFieldName
		}
		t.Rows = append(t.Rows, []any{
			task.Title, field, task.Type, string(task.Status), task.AssignedTo,
			timeCell(task.ScheduledStart), timeCell(task.ActualEnd),
			string(task.LifecycleYear), task.CostValue(),
		})
	}
	return t
}

func timeCell(t *time.Time) any {
	if t == nil {
		return ""
	}
	return *t
}
