package service

import (
	"context"

	"olive/entities"
	"olive/pkg/analytics"
	"olive/pkg/report"
)

type ReportService interface {
	Build(ctx context.Context, actor *entities.User, kind report.Kind, r analytics.DateRange) (report.Table, error)
}
