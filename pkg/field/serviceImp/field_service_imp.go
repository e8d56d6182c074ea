package serviceImp

import (
	"context"
	"sort"
	"strings"

	"github.com/labstack/gommon/log"
	"github.com/paulmach/orb/geo"
	"github.com/paulmach/orb/geojson"

	"olive/entities"
	"olive/pkg/apperr"
	repo "olive/pkg/field/repository"
	"olive/pkg/field/service"
	lifecycleRepo "olive/pkg/lifecycle/repository"
	"olive/pkg/policy"
)

var logger = log.New("field")

type fieldSvc struct {
	fields     repo.FieldRepository
	lifecycles lifecycleRepo.LifecycleRepository
}

func NewFieldService(r repo.FieldRepository, l lifecycleRepo.LifecycleRepository) service.FieldService {
	return &fieldSvc{fields: r, lifecycles: l}
}

func (s *fieldSvc) List(ctx context.Context, actor *entities.User, q service.ListQuery) ([]entities.Field, error) {
	all, err := s.fields.List(ctx)
	if err != nil {
		return nil, err
	}
	visible := policy.VisibleFields(actor, all)
	if q.Near == nil {
		return visible, nil
	}
	return near(visible, *q.Near), nil
}

// near keeps the groves within the radius, closest first. Groves without coordinates drop out.
func near(fields []entities.Field, n service.Near) []entities.Field {
	type hit struct {
		f entities.Field
		d float64
	}
	var hits []hit
	for _, f := range fields {
		p, ok := f.Location()
		if !ok {
			continue
		}
		if d := geo.DistanceHaversine(n.Center, p) / 1000; d <= n.RadiusKm {
			hits = append(hits, hit{f, d})
		}
	}
	sort.SliceStable(hits, func(i, j int) bool { return hits[i].d < hits[j].d })
	out := make([]entities.Field, 0, len(hits))
	for _, h := range hits {
		out = append(out, h.f)
	}
	return out
}

func (s *fieldSvc) Get(ctx context.Context, actor *entities.User, id string) (*entities.Field, error) {
	f, err := s.fields.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !policy.CanAccessField(actor, f) {
		return nil, apperr.Unauthorized("no access to field " + id)
	}
	return f, nil
}

func (s *fieldSvc) Create(ctx context.Context, actor *entities.User, in service.CreateFieldInput) (*entities.Field, error) {
	if actor == nil {
		return nil, apperr.Unauthorized("login required")
	}
	switch actor.Role {
	case entities.RoleAdministrator, entities.RoleFieldOwner, entities.RoleProducer:
	default:
		return nil, apperr.Unauthorized("role " + string(actor.Role) + " cannot register fields")
	}
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, apperr.Validation("name is required")
	}
	if in.Area <= 0 {
		return nil, apperr.Validation("area must be greater than zero")
	}
	if (in.Latitude == nil) != (in.Longitude == nil) {
		return nil, apperr.Validation("latitude and longitude go together")
	}
	year := in.CurrentLifecycleYear
	if year == "" {
		year = entities.LifecycleLow
	}
	if !year.Valid() {
		return nil, apperr.Validationf("unknown lifecycle year %q", year)
	}
	owner := actor.ID
	if in.OwnerID != "" && in.OwnerID != actor.ID {
		if actor.Role != entities.RoleAdministrator {
			return nil, apperr.Unauthorized("only administrators register fields for others")
		}
		owner = in.OwnerID
	}

	f := &entities.Field{
		OwnerID:              owner,
		Name:                 name,
		Latitude:             in.Latitude,
		Longitude:            in.Longitude,
		Area:                 in.Area,
		Variety:              in.Variety,
		TreeAge:              in.TreeAge,
		GroundType:           in.GroundType,
		Irrigation:           in.Irrigation,
		CurrentLifecycleYear: year,
	}
	if err := s.fields.Create(ctx, f); err != nil {
		return nil, err
	}
	logger.Infof("field %s created by %s", f.ID, actor.ID)
	return f, nil
}

func (s *fieldSvc) Update(ctx context.Context, actor *entities.User, id string, p service.FieldPatch) (*entities.Field, error) {
	cur, err := s.fields.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !policy.CanMutateField(actor, cur) {
		return nil, apperr.Unauthorized("no write access to field " + id)
	}
	if p.Name != nil {
		name := strings.TrimSpace(*p.Name)
		if name == "" {
			return nil, apperr.Validation("name is required")
		}
		cur.Name = name
	}
	if p.Area != nil {
		if *p.Area <= 0 {
			return nil, apperr.Validation("area must be greater than zero")
		}
		cur.Area = *p.Area
	}
	if p.Latitude != nil {
		cur.Latitude = p.Latitude
	}
	if p.Longitude != nil {
		cur.Longitude = p.Longitude
	}
	if p.Variety != nil {
		cur.Variety = *p.Variety
	}
	if p.TreeAge != nil {
		cur.TreeAge = p.TreeAge
	}
	if p.GroundType != nil {
		cur.GroundType = *p.GroundType
	}
	if p.Irrigation != nil {
		cur.Irrigation = *p.Irrigation
	}
	if err := s.fields.Update(ctx, cur); err != nil {
		return nil, err
	}
	return cur, nil
}

// Delete removes the field and its lifecycle record. Tasks stay and report as "Unknown Field".
func (s *fieldSvc) Delete(ctx context.Context, actor *entities.User, id string) error {
	cur, err := s.fields.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if !policy.CanMutateField(actor, cur) {
		return apperr.Unauthorized("no write access to field " + id)
	}
	if err := s.fields.Delete(ctx, id); err != nil {
		return err
	}
	if err := s.lifecycles.DeleteByFieldID(ctx, id); err != nil {
		logger.Warnf("field %s deleted but lifecycle cleanup failed: %v", id, err)
		return err
	}
	return nil
}

// GeoJSON renders the visible groves that have coordinates as point features.
func (s *fieldSvc) GeoJSON(ctx context.Context, actor *entities.User) (*geojson.FeatureCollection, error) {
	fields, err := s.List(ctx, actor, service.ListQuery{})
	if err != nil {
		return nil, err
	}
	fc := geojson.NewFeatureCollection()
	for _, f := range fields {
		p, ok := f.Location()
		if !ok {
			continue
		}
		ft := geojson.NewFeature(p)
		ft.ID = f.ID
		ft.Properties["name"] = f.Name
		ft.Properties["variety"] = f.Variety
		ft.Properties["area"] = f.Area
		ft.Properties["irrigation"] = f.Irrigation
		ft.Properties["currentLifecycleYear"] = string(f.CurrentLifecycleYear)
		fc.Append(ft)
	}
	return fc, nil
}
