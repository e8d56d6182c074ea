package serviceImp

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/labstack/gommon/log"

	"olive/entities"
	"olive/pkg/apperr"
	fieldRepo "olive/pkg/field/repository"
	"olive/pkg/media"
	"olive/pkg/policy"
	repo "olive/pkg/task/repository"
	"olive/pkg/task/service"
	userRepo "olive/pkg/user/repository"
)

var logger = log.New("task")

type taskSvc struct {
	tasks  repo.TaskRepository
	fields fieldRepo.FieldRepository
	users  userRepo.UserRepository
	media  media.Store
	now    func() time.Time
}

// NewTaskService wires the task workflow. m may be nil, which disables photo uploads.
func NewTaskService(t repo.TaskRepository, f fieldRepo.FieldRepository, u userRepo.UserRepository, m media.Store, now func() time.Time) service.TaskService {
	if now == nil {
		now = time.Now
	}
	return &taskSvc{tasks: t, fields: f, users: u, media: m, now: now}
}

func (s *taskSvc) List(ctx context.Context, actor *entities.User, q repo.TaskQuery) ([]entities.Task, error) {
	tasks, err := s.tasks.List(ctx, q)
	if err != nil {
		return nil, err
	}
	fields, err := s.fields.List(ctx)
	if err != nil {
		return nil, err
	}
	return policy.VisibleTasks(actor, tasks, fields), nil
}

// load fetches the task and its field; a missing field is nil, not an error.
func (s *taskSvc) load(ctx context.Context, id string) (*entities.Task, *entities.Field, error) {
	t, err := s.tasks.FindByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	f, err := s.fields.FindByID(ctx, t.FieldID)
	if apperr.Is(err, apperr.CodeNotFound) {
		return t, nil, nil
	}
	if err != nil {
		return nil, nil, err
	}
	return t, f, nil
}

func (s *taskSvc) Get(ctx context.Context, actor *entities.User, id string) (*entities.Task, error) {
	t, f, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if !policy.CanAccessTask(actor, t, f) {
		return nil, apperr.Unauthorized("no access to task " + id)
	}
	return t, nil
}

// canPlan: planning a task needs sight of the field; service providers only execute.
func canPlan(actor *entities.User, f *entities.Field) bool {
	return actor != nil && actor.Role != entities.RoleServiceProvider && policy.CanAccessField(actor, f)
}

func (s *taskSvc) Create(ctx context.Context, actor *entities.User, in service.CreateTaskInput) (*entities.Task, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return nil, apperr.Validation("title is required")
	}
	if in.FieldID == "" {
		return nil, apperr.Validation("fieldId is required")
	}
	if err := checkWindow(in.ScheduledStart, in.ScheduledEnd); err != nil {
		return nil, err
	}
	if in.Cost != nil && *in.Cost < 0 {
		return nil, apperr.Validation("cost cannot be negative")
	}
	f, err := s.fields.FindByID(ctx, in.FieldID)
	if err != nil {
		return nil, err
	}
	if !canPlan(actor, f) {
		return nil, apperr.Unauthorized("no access to field " + in.FieldID)
	}
	if in.AssignedTo != "" {
		if _, err := s.users.FindByID(ctx, in.AssignedTo); err != nil {
			return nil, err
		}
	}

	t := &entities.Task{
		FieldID:        f.ID,
		Type:           strings.TrimSpace(in.Type),
		Title:          title,
		Description:    in.Description,
		Status:         entities.TaskPending,
		AssignedTo:     in.AssignedTo,
		ScheduledStart: in.ScheduledStart,
		ScheduledEnd:   in.ScheduledEnd,
		LifecycleYear:  f.CurrentLifecycleYear,
		Cost:           in.Cost,
		Evidence:       []entities.Evidence{},
	}
	if err := s.tasks.Create(ctx, t); err != nil {
		return nil, err
	}
	logger.Infof("task %s created on field %s by %s", t.ID, f.ID, actor.ID)
	return t, nil
}

func checkWindow(start, end *time.Time) error {
	if start != nil && end != nil && end.Before(*start) {
		return apperr.Validation("scheduledEnd is before scheduledStart")
	}
	return nil
}

func (s *taskSvc) Update(ctx context.Context, actor *entities.User, id string, p service.TaskPatch) (*entities.Task, error) {
	cur, f, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if f == nil || !canPlan(actor, f) {
		return nil, apperr.Unauthorized("no write access to task " + id)
	}
	if p.FieldID != nil && *p.FieldID != cur.FieldID {
		return nil, apperr.Validation("fieldId cannot be changed")
	}
	if p.Title != nil {
		title := strings.TrimSpace(*p.Title)
		if title == "" {
			return nil, apperr.Validation("title is required")
		}
		cur.Title = title
	}
	if p.Type != nil {
		cur.Type = strings.TrimSpace(*p.Type)
	}
	if p.Description != nil {
		cur.Description = *p.Description
	}
	if p.ScheduledStart != nil {
		cur.ScheduledStart = p.ScheduledStart
	}
	if p.ScheduledEnd != nil {
		cur.ScheduledEnd = p.ScheduledEnd
	}
	if err := checkWindow(cur.ScheduledStart, cur.ScheduledEnd); err != nil {
		return nil, err
	}
	if p.Cost != nil {
		if *p.Cost < 0 {
			return nil, apperr.Validation("cost cannot be negative")
		}
		cur.Cost = p.Cost
	}
	if err := s.tasks.Update(ctx, cur); err != nil {
		return nil, err
	}
	return cur, nil
}

func (s *taskSvc) UpdateStatus(ctx context.Context, actor *entities.User, id string, status entities.TaskStatus) (*entities.Task, error) {
	if !status.Valid() {
		return nil, apperr.Validationf("unknown status %q", status)
	}
	cur, f, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if !policy.CanAccessTask(actor, cur, f) {
		return nil, apperr.Unauthorized("no access to task " + id)
	}

	now := s.now()
	switch status {
	case entities.TaskInProgress:
		if cur.ActualStart == nil {
			cur.ActualStart = &now
		}
	case entities.TaskCompleted:
		if cur.ActualEnd == nil {
			cur.ActualEnd = &now
		}
	}
	prev := cur.Status
	cur.Status = status
	if err := s.tasks.Update(ctx, cur); err != nil {
		return nil, err
	}
	if prev != status {
		logger.Infof("task %s: %s -> %s by %s", id, prev, status, actor.ID)
	}
	return cur, nil
}

func (s *taskSvc) Assign(ctx context.Context, actor *entities.User, id, userID string) (*entities.Task, error) {
	cur, f, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if f == nil || !canPlan(actor, f) {
		return nil, apperr.Unauthorized("no write access to task " + id)
	}
	if userID != "" {
		if _, err := s.users.FindByID(ctx, userID); err != nil {
			return nil, err
		}
	}
	cur.AssignedTo = userID
	if err := s.tasks.Update(ctx, cur); err != nil {
		return nil, err
	}
	return cur, nil
}

func (s *taskSvc) AddEvidence(ctx context.Context, actor *entities.User, id string, in service.EvidenceInput) (*entities.Evidence, error) {
	ev := entities.Evidence{
		Photo: strings.TrimSpace(in.Photo),
		Notes: plainNotes(in.Notes),
	}
	if ev.Empty() {
		return nil, apperr.Validation("evidence needs a photo or notes")
	}
	cur, f, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if !policy.CanAccessTask(actor, cur, f) {
		return nil, apperr.Unauthorized("no access to task " + id)
	}

	if strings.HasPrefix(ev.Photo, "data:") {
		url, err := s.storePhoto(ctx, ev.Photo)
		if err != nil {
			return nil, err
		}
		ev.Photo = url
	}
	ev.Timestamp = s.now()
	if err := s.tasks.AppendEvidence(ctx, id, &ev); err != nil {
		return nil, err
	}
	return &ev, nil
}

func (s *taskSvc) storePhoto(ctx context.Context, dataURL string) (string, error) {
	if s.media == nil {
		return "", apperr.Validation("photo uploads are disabled")
	}
	data, ct, err := media.DecodeDataURL(dataURL)
	if errors.Is(err, media.ErrNotDataURL) || (err == nil && !strings.HasPrefix(ct, "image/")) {
		return "", apperr.Validation("photo must be an image data URL")
	}
	if err != nil {
		return "", apperr.Validation("photo payload is not valid base64")
	}
	return s.media.Put(ctx, ct, data)
}
