// Package memory is the in-process record store used for demos and tests.
//
// A Store owns its collections; every read hands out copies so callers can never mutate
// the stored records in place.
package memory

import (
	"context"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"olive/entities"
	"olive/pkg/apperr"
	"olive/pkg/store/fixtures"
	fieldRepo "olive/pkg/field/repository"
	lifecycleRepo "olive/pkg/lifecycle/repository"
	taskRepo "olive/pkg/task/repository"
	userRepo "olive/pkg/user/repository"
)

type Store struct {
	mu         sync.RWMutex
	fields     []entities.Field
	tasks      []entities.Task
	users      []entities.User
	lifecycles []entities.Lifecycle
	now        func() time.Time
}

func New() *Store { return &Store{now: time.Now} }

// WithClock replaces the clock used for CreatedAt/UpdatedAt stamps.
func (s *Store) WithClock(now func() time.Time) *Store {
	s.now = now
	return s
}

func (s *Store) Fields() fieldRepo.FieldRepository             { return fields{s} }
func (s *Store) Tasks() taskRepo.TaskRepository                { return tasks{s} }
func (s *Store) Users() userRepo.UserRepository                { return users{s} }
func (s *Store) Lifecycles() lifecycleRepo.LifecycleRepository { return lifecycles{s} }

func (s *Store) Ping(context.Context) error { return nil }

// Load replaces every collection with the records of d.
func (s *Store) Load(d fixtures.Dataset) *Store {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fields = slices.Clone(d.Fields)
	s.tasks = make([]entities.Task, 0, len(d.Tasks))
	for _, t := range d.Tasks {
		s.tasks = append(s.tasks, cloneTask(t))
	}
	s.users = slices.Clone(d.Users)
	s.lifecycles = slices.Clone(d.Lifecycles)
	return s
}

// NewWithFixtures returns a store holding the demo olive groves, dated relative to now.
func NewWithFixtures(now time.Time) *Store {
	return New().Load(fixtures.Build(now))
}

func newID(id string) string {
	if id != "" {
		return id
	}
	return uuid.NewString()
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func cloneField(f entities.Field) entities.Field {
	f.Latitude = clonePtr(f.Latitude)
	f.Longitude = clonePtr(f.Longitude)
	f.TreeAge = clonePtr(f.TreeAge)
	return f
}

func cloneTask(t entities.Task) entities.Task {
	t.ScheduledStart = clonePtr(t.ScheduledStart)
	t.ScheduledEnd = clonePtr(t.ScheduledEnd)
	t.ActualStart = clonePtr(t.ActualStart)
	t.ActualEnd = clonePtr(t.ActualEnd)
	t.Cost = clonePtr(t.Cost)
	t.Evidence = slices.Clone(t.Evidence)
	if t.Evidence == nil {
		t.Evidence = []entities.Evidence{}
	}
	return t
}

func cloneLifecycle(l entities.Lifecycle) entities.Lifecycle {
	l.LastProgressionDate = clonePtr(l.LastProgressionDate)
	return l
}

// fields

type fields struct{ s *Store }

func (r fields) List(context.Context) ([]entities.Field, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]entities.Field, 0, len(r.s.fields))
	for _, f := range r.s.fields {
		out = append(out, cloneField(f))
	}
	return out, nil
}

func (r fields) FindByID(_ context.Context, id string) (*entities.Field, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, f := range r.s.fields {
		if f.ID == id {
			c := cloneField(f)
			return &c, nil
		}
	}
	return nil, apperr.NotFound("field", id)
}

func (r fields) Create(_ context.Context, f *entities.Field) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	f.ID = newID(f.ID)
	now := r.s.now()
	if f.CreatedAt.IsZero() {
		f.CreatedAt = now
	}
	f.UpdatedAt = now
	r.s.fields = append(r.s.fields, cloneField(*f))
	return nil
}

func (r fields) Update(_ context.Context, f *entities.Field) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for i := range r.s.fields {
		if r.s.fields[i].ID == f.ID {
			f.CreatedAt = r.s.fields[i].CreatedAt
			f.UpdatedAt = r.s.now()
			r.s.fields[i] = cloneField(*f)
			return nil
		}
	}
	return apperr.NotFound("field", f.ID)
}

func (r fields) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for i := range r.s.fields {
		if r.s.fields[i].ID == id {
			r.s.fields = slices.Delete(r.s.fields, i, i+1)
			return nil
		}
	}
	return apperr.NotFound("field", id)
}

// tasks

type tasks struct{ s *Store }

func (r tasks) List(_ context.Context, q taskRepo.TaskQuery) ([]entities.Task, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]entities.Task, 0, len(r.s.tasks))
	for _, t := range r.s.tasks {
		if q.FieldID != "" && t.FieldID != q.FieldID {
			continue
		}
		if q.AssignedTo != "" && t.AssignedTo != q.AssignedTo {
			continue
		}
		out = append(out, cloneTask(t))
	}
	return out, nil
}

func (r tasks) FindByID(_ context.Context, id string) (*entities.Task, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	if i := r.s.taskIndex(id); i >= 0 {
		c := cloneTask(r.s.tasks[i])
		return &c, nil
	}
	return nil, apperr.NotFound("task", id)
}

func (r tasks) Create(_ context.Context, t *entities.Task) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	t.ID = newID(t.ID)
	now := r.s.now()
	if t.CreatedAt.IsZero() {
		t.CreatedAt = now
	}
	t.UpdatedAt = now
	r.s.tasks = append(r.s.tasks, cloneTask(*t))
	return nil
}

func (r tasks) Update(_ context.Context, t *entities.Task) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	i := r.s.taskIndex(t.ID)
	if i < 0 {
		return apperr.NotFound("task", t.ID)
	}
	cur := r.s.tasks[i]
	t.FieldID = cur.FieldID
	t.CreatedAt = cur.CreatedAt
	t.Evidence = slices.Clone(cur.Evidence)
	t.UpdatedAt = r.s.now()
	r.s.tasks[i] = cloneTask(*t)
	return nil
}

func (r tasks) AppendEvidence(_ context.Context, taskID string, ev *entities.Evidence) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	i := r.s.taskIndex(taskID)
	if i < 0 {
		return apperr.NotFound("task", taskID)
	}
	ev.ID = newID(ev.ID)
	ev.TaskID = taskID
	r.s.tasks[i].Evidence = append(slices.Clone(r.s.tasks[i].Evidence), *ev)
	r.s.tasks[i].UpdatedAt = r.s.now()
	return nil
}

func (s *Store) taskIndex(id string) int {
	return slices.IndexFunc(s.tasks, func(t entities.Task) bool { return t.ID == id })
}

// users

type users struct{ s *Store }

func (r users) List(context.Context) ([]entities.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return slices.Clone(r.s.users), nil
}

func (r users) FindByID(_ context.Context, id string) (*entities.User, error) {
	return r.find("user", id, func(u entities.User) bool { return u.ID == id })
}

func (r users) FindByEmail(_ context.Context, email string) (*entities.User, error) {
	email = strings.TrimSpace(email)
	return r.find("user", email, func(u entities.User) bool { return strings.EqualFold(u.Email, email) })
}

func (r users) find(resource, key string, match func(entities.User) bool) (*entities.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	if i := slices.IndexFunc(r.s.users, match); i >= 0 {
		u := r.s.users[i]
		return &u, nil
	}
	return nil, apperr.NotFound(resource, key)
}

func (r users) Create(_ context.Context, u *entities.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if slices.ContainsFunc(r.s.users, func(x entities.User) bool { return strings.EqualFold(x.Email, u.Email) }) {
		return apperr.Validationf("email %s is already registered", u.Email)
	}
	u.ID = newID(u.ID)
	now := r.s.now()
	if u.CreatedAt.IsZero() {
		u.CreatedAt = now
	}
	u.UpdatedAt = now
	r.s.users = append(r.s.users, *u)
	return nil
}

// lifecycles

type lifecycles struct{ s *Store }

func (r lifecycles) FindByFieldID(_ context.Context, fieldID string) (*entities.Lifecycle, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, l := range r.s.lifecycles {
		if l.FieldID == fieldID {
			c := cloneLifecycle(l)
			return &c, nil
		}
	}
	return nil, apperr.NotFound("lifecycle", fieldID)
}

func (r lifecycles) Save(_ context.Context, l *entities.Lifecycle) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	now := r.s.now()
	l.UpdatedAt = now
	for i := range r.s.lifecycles {
		if r.s.lifecycles[i].FieldID == l.FieldID {
			l.ID = r.s.lifecycles[i].ID
			l.CreatedAt = r.s.lifecycles[i].CreatedAt
			r.s.lifecycles[i] = cloneLifecycle(*l)
			return nil
		}
	}
	l.ID = newID(l.ID)
	if l.CreatedAt.IsZero() {
		l.CreatedAt = now
	}
	r.s.lifecycles = append(r.s.lifecycles, cloneLifecycle(*l))
	return nil
}

func (r lifecycles) DeleteByFieldID(_ context.Context, fieldID string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.lifecycles = slices.DeleteFunc(r.s.lifecycles, func(l entities.Lifecycle) bool { return l.FieldID == fieldID })
	return nil
}
