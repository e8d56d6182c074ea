package service

import (
	"context"

	"olive/entities"
	"olive/pkg/calendar"
)

type CalendarService interface {
	Events(ctx context.Context, actor *entities.User, w calendar.Window, f calendar.Filter) ([]calendar.Event, error)
}
