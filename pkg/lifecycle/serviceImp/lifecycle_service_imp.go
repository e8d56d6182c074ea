package serviceImp

import (
	"context"
	"fmt"
	"time"

	"github.com/labstack/gommon/log"

	"olive/entities"
	"olive/pkg/apperr"
	fieldRepo "olive/pkg/field/repository"
	repo "olive/pkg/lifecycle/repository"
	"olive/pkg/lifecycle/service"
	"olive/pkg/policy"
)

var logger = log.New("lifecycle")

type lifecycleSvc struct {
	lifecycles repo.LifecycleRepository
	fields     fieldRepo.FieldRepository
	now        func() time.Time
}

func NewLifecycleService(l repo.LifecycleRepository, f fieldRepo.FieldRepository, now func() time.Time) service.LifecycleService {
	if now == nil {
		now = time.Now
	}
	return &lifecycleSvc{lifecycles: l, fields: f, now: now}
}

func (s *lifecycleSvc) Get(ctx context.Context, actor *entities.User, fieldID string) (*entities.Lifecycle, error) {
	f, err := s.fields.FindByID(ctx, fieldID)
	if err != nil {
		return nil, err
	}
	if !policy.CanAccessField(actor, f) {
		return nil, apperr.Unauthorized("no access to field " + fieldID)
	}
	return s.getOrInit(ctx, f)
}

func (s *lifecycleSvc) getOrInit(ctx context.Context, f *entities.Field) (*entities.Lifecycle, error) {
	l, err := s.lifecycles.FindByFieldID(ctx, f.ID)
	if err == nil {
		return l, nil
	}
	if !apperr.Is(err, apperr.CodeNotFound) {
		return nil, err
	}
	year := f.CurrentLifecycleYear
	if !year.Valid() {
		year = entities.LifecycleLow
	}
	l = &entities.Lifecycle{FieldID: f.ID, CurrentYear: year, CycleStartDate: s.now()}
	if _, upstream := s.lifecycles.(repo.Progressor); upstream {
		// not ours to persist; report what the field implies
		return l, nil
	}
	if err := s.lifecycles.Save(ctx, l); err != nil {
		return nil, err
	}
	logger.Infof("lifecycle initialised for field %s at %s", f.ID, year)
	return l, nil
}

func (s *lifecycleSvc) Progress(ctx context.Context, actor *entities.User, fieldID string) (*entities.Lifecycle, error) {
	f, err := s.fields.FindByID(ctx, fieldID)
	if err != nil {
		return nil, err
	}
	if !policy.CanMutateField(actor, f) {
		return nil, apperr.Unauthorized("no write access to field " + fieldID)
	}
	if p, ok := s.lifecycles.(repo.Progressor); ok {
		return p.Progress(ctx, fieldID)
	}

	l, err := s.getOrInit(ctx, f)
	if err != nil {
		return nil, err
	}

	now := s.now()
	l.CurrentYear = l.CurrentYear.Next()
	l.LastProgressionDate = &now
	if err := s.lifecycles.Save(ctx, l); err != nil {
		return nil, err
	}

	f.CurrentLifecycleYear = l.CurrentYear
	if err := s.fields.Update(ctx, f); err != nil {
		logger.Errorf("field %s left at previous year after lifecycle moved to %s: %v", fieldID, l.CurrentYear, err)
		return l, fmt.Errorf("%w: field %s: %w", service.ErrPartialProgression, fieldID, err)
	}
	return l, nil
}
