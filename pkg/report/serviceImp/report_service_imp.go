package serviceImp

import (
	"context"
	"fmt"
	"time"

	"olive/entities"
	"olive/pkg/analytics"
	"olive/pkg/apperr"
	analyticsSvc "olive/pkg/analytics/service"
	fieldSvc "olive/pkg/field/service"
	"olive/pkg/report"
	"olive/pkg/report/service"
	taskRepo "olive/pkg/task/repository"
	taskSvc "olive/pkg/task/service"
)

type reportSvc struct {
	analytics analyticsSvc.AnalyticsService
	fields    fieldSvc.FieldService
	tasks     taskSvc.TaskService
	now       func() time.Time
}

func NewReportService(a analyticsSvc.AnalyticsService, f fieldSvc.FieldService, t taskSvc.TaskService) service.ReportService {
	return &reportSvc{analytics: a, fields: f, tasks: t, now: time.Now}
}

func (s *reportSvc) Build(ctx context.Context, actor *entities.User, kind report.Kind, r analytics.DateRange) (report.Table, error) {
	var (
		t   report.Table
		err error
	)
	switch kind {
	case report.KindFieldSummary:
		var ms []analytics.FieldMetrics
		if ms, err = s.analytics.FieldMetrics(ctx, actor, nil, r); err == nil {
			t = report.FieldSummary(ms, r)
		}
	case report.KindTaskCompletion:
		var c analytics.CompletionRates
		if c, err = s.analytics.CompletionRates(ctx, actor, r); err == nil {
			t = report.TaskCompletion(c, r)
		}
	case report.KindCostAnalysis:
		var c analytics.CostAnalysis
		if c, err = s.analytics.CostAnalysis(ctx, actor, r); err == nil {
			t = report.CostAnalysis(c, r)
		}
	case report.KindTasks:
		t, err = s.taskTable(ctx, actor, r)
	default:
		return t, apperr.Validation(fmt.Sprintf("unknown report kind %q", kind))
	}
	if err != nil {
		return t, err
	}
	t.Generated = s.now()
	return t, nil
}

func (s *reportSvc) taskTable(ctx context.Context, actor *entities.User, r analytics.DateRange) (report.Table, error) {
	tasks, err := s.tasks.List(ctx, actor, taskRepo.TaskQuery{})
	if err != nil {
		return report.Table{}, err
	}
	fields, err := s.fields.List(ctx, actor, fieldSvc.ListQuery{})
	if err != nil {
		return report.Table{}, err
	}
	return report.Tasks(tasks, fields, r), nil
}
