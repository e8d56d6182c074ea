package serviceImp

import (
	"context"
	"time"

	"olive/entities"
	"olive/pkg/calendar"
	"olive/pkg/calendar/service"
	fieldRepo "olive/pkg/field/repository"
	"olive/pkg/policy"
	taskRepo "olive/pkg/task/repository"
)

type calendarSvc struct {
	fields fieldRepo.FieldRepository
	tasks  taskRepo.TaskRepository
	now    func() time.Time
}

func NewCalendarService(f fieldRepo.FieldRepository, t taskRepo.TaskRepository, now func() time.Time) service.CalendarService {
	if now == nil {
		now = time.Now
	}
	return &calendarSvc{fields: f, tasks: t, now: now}
}

func (s *calendarSvc) Events(ctx context.Context, actor *entities.User, w calendar.Window, f calendar.Filter) ([]calendar.Event, error) {
	fields, err := s.fields.List(ctx)
	if err != nil {
		return nil, err
	}
	tasks, err := s.tasks.List(ctx, taskRepo.TaskQuery{})
	if err != nil {
		return nil, err
	}
	return calendar.Derive(policy.VisibleTasks(actor, tasks, fields), w, f, s.now()), nil
}
