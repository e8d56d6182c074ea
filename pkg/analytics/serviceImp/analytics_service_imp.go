package serviceImp

import (
	"context"

	"golang.org/x/sync/errgroup"

	"olive/entities"
	"olive/pkg/analytics"
	"olive/pkg/analytics/service"
	fieldRepo "olive/pkg/field/repository"
	"olive/pkg/policy"
	taskRepo "olive/pkg/task/repository"
)

type analyticsSvc struct {
	fields fieldRepo.FieldRepository
	tasks  taskRepo.TaskRepository
}

func NewAnalyticsService(f fieldRepo.FieldRepository, t taskRepo.TaskRepository) service.AnalyticsService {
	return &analyticsSvc{fields: f, tasks: t}
}

type snapshot struct {
	fields []entities.Field
	tasks  []entities.Task
}

// load reads both collections in full and narrows them to what actor may see.
func (s *analyticsSvc) load(ctx context.Context, actor *entities.User) (snapshot, error) {
	var (
		fields []entities.Field
		tasks  []entities.Task
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		fields, err = s.fields.List(gctx)
		return err
	})
	g.Go(func() (err error) {
		tasks, err = s.tasks.List(gctx, taskRepo.TaskQuery{})
		return err
	})
	if err := g.Wait(); err != nil {
		return snapshot{}, err
	}
	return snapshot{
		fields: policy.VisibleFields(actor, fields),
		tasks:  policy.VisibleTasks(actor, tasks, fields),
	}, nil
}

func (s *analyticsSvc) TaskMetrics(ctx context.Context, actor *entities.User, r analytics.DateRange) (analytics.TaskMetrics, error) {
	snap, err := s.load(ctx, actor)
	if err != nil {
		return analytics.TaskMetrics{}, err
	}
	return analytics.ComputeTaskMetrics(snap.tasks, r), nil
}

func (s *analyticsSvc) FieldMetrics(ctx context.Context, actor *entities.User, fieldIDs []string, r analytics.DateRange) ([]analytics.FieldMetrics, error) {
	snap, err := s.load(ctx, actor)
	if err != nil {
		return nil, err
	}
	return fieldMetrics(snap, fieldIDs, r), nil
}

func fieldMetrics(snap snapshot, ids []string, r analytics.DateRange) []analytics.FieldMetrics {
	if len(ids) == 0 {
		ids = make([]string, 0, len(snap.fields))
		for _, f := range snap.fields {
			ids = append(ids, f.ID)
		}
	}
	return analytics.ComputeFieldMetrics(ids, snap.fields, snap.tasks, r)
}

func (s *analyticsSvc) CostAnalysis(ctx context.Context, actor *entities.User, r analytics.DateRange) (analytics.CostAnalysis, error) {
	snap, err := s.load(ctx, actor)
	if err != nil {
		return analytics.CostAnalysis{}, err
	}
	return analytics.ComputeCostAnalysis(snap.fields, snap.tasks, r), nil
}

func (s *analyticsSvc) CompletionRates(ctx context.Context, actor *entities.User, r analytics.DateRange) (analytics.CompletionRates, error) {
	snap, err := s.load(ctx, actor)
	if err != nil {
		return analytics.CompletionRates{}, err
	}
	return analytics.ComputeCompletionRates(snap.tasks, r), nil
}

func (s *analyticsSvc) StatusDistribution(ctx context.Context, actor *entities.User, r analytics.DateRange) (analytics.StatusDistribution, error) {
	snap, err := s.load(ctx, actor)
	if err != nil {
		return analytics.StatusDistribution{}, err
	}
	return analytics.ComputeStatusDistribution(snap.tasks, r), nil
}

// Dashboard fans the five aggregators out over a single snapshot.
func (s *analyticsSvc) Dashboard(ctx context.Context, actor *entities.User, r analytics.DateRange) (*service.Dashboard, error) {
	snap, err := s.load(ctx, actor)
	if err != nil {
		return nil, err
	}
	d := &service.Dashboard{Range: r}
	var g errgroup.Group
	g.Go(func() error {
		d.TaskMetrics = analytics.ComputeTaskMetrics(snap.tasks, r)
		return nil
	})
	g.Go(func() error {
		d.FieldMetrics = fieldMetrics(snap, nil, r)
		return nil
	})
	g.Go(func() error {
		d.CostAnalysis = analytics.ComputeCostAnalysis(snap.fields, snap.tasks, r)
		return nil
	})
	g.Go(func() error {
		d.CompletionRates = analytics.ComputeCompletionRates(snap.tasks, r)
		return nil
	})
	g.Go(func() error {
		d.StatusDistribution = analytics.ComputeStatusDistribution(snap.tasks, r)
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return d, nil
}
