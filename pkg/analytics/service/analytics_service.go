package service

import (
	"context"

	"olive/entities"
	"olive/pkg/analytics"
)

// Dashboard is every aggregate computed over one snapshot of the records.
type Dashboard struct {
	Range              analytics.DateRange          `json:"range"`
	TaskMetrics        analytics.TaskMetrics        `json:"taskMetrics"`
	FieldMetrics       []analytics.FieldMetrics     `json:"fieldMetrics"`
	CostAnalysis       analytics.CostAnalysis       `json:"costAnalysis"`
	CompletionRates    analytics.CompletionRates    `json:"completionRates"`
	StatusDistribution analytics.StatusDistribution `json:"statusDistribution"`
}

// AnalyticsService loads the records the actor may see and runs the aggregators over them.
type AnalyticsService interface {
	TaskMetrics(ctx context.Context, actor *entities.User, r analytics.DateRange) (analytics.TaskMetrics, error)
	// FieldMetrics reports on fieldIDs in order; no ids means every visible field.
	FieldMetrics(ctx context.Context, actor *entities.User, fieldIDs []string, r analytics.DateRange) ([]analytics.FieldMetrics, error)
	CostAnalysis(ctx context.Context, actor *entities.User, r analytics.DateRange) (analytics.CostAnalysis, error)
	CompletionRates(ctx context.Context, actor *entities.User, r analytics.DateRange) (analytics.CompletionRates, error)
	StatusDistribution(ctx context.Context, actor *entities.User, r analytics.DateRange) (analytics.StatusDistribution, error)
	Dashboard(ctx context.Context, actor *entities.User, r analytics.DateRange) (*Dashboard, error)
}
