package serviceImp

import (
	"context"
	"testing"
	"time"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"olive/entities"
	"olive/pkg/apperr"
	"olive/pkg/field/service"
	"olive/pkg/store/fixtures"
	"olive/pkg/store/memory"
)

func setup(t *testing.T) (service.FieldService, *memory.Store) {
	t.Helper()
	st := memory.NewWithFixtures(time.Now())
	return NewFieldService(st.Fields(), st.Lifecycles()), st
}

func actor(id string, r entities.Role) *entities.User { return &entities.User{ID: id, Role: r} }

func ids(fs []entities.Field) []string {
	out := make([]string, 0, len(fs))
	for _, f := range fs {
		out = append(out, f.ID)
	}
	return out
}

func TestListFollowsPolicy(t *testing.T) {
	svc, _ := setup(t)
	ctx := context.Background()

	all, err := svc.List(ctx, actor(fixtures.AgronomistID, entities.RoleAgronomist), service.ListQuery{})
	require.NoError(t, err)
	assert.Len(t, all, 3)

	own, err := svc.List(ctx, actor(fixtures.OwnerID, entities.RoleFieldOwner), service.ListQuery{})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{fixtures.KoroneikiID, fixtures.TerraceID}, ids(own))

	none, err := svc.List(ctx, actor(fixtures.ProviderID, entities.RoleServiceProvider), service.ListQuery{})
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestListNear(t *testing.T) {
	svc, _ := setup(t)
	ctx := context.Background()
	admin := actor(fixtures.AdminID, entities.RoleAdministrator)
	center := orb.Point{22.1142, 37.0389}

	got, err := svc.List(ctx, admin, service.ListQuery{Near: &service.Near{Center: center, RadiusKm: 1}})
	require.NoError(t, err)
	assert.Equal(t, []string{fixtures.KoroneikiID}, ids(got))

	got, err = svc.List(ctx, admin, service.ListQuery{Near: &service.Near{Center: center, RadiusKm: 10}})
	require.NoError(t, err)
	assert.Equal(t, []string{fixtures.KoroneikiID, fixtures.TerraceID}, ids(got))
}

func TestCreateDefaults(t *testing.T) {
	svc, _ := setup(t)
	ctx := context.Background()
	owner := actor(fixtures.OwnerID, entities.RoleFieldOwner)

	f, err := svc.Create(ctx, owner, service.CreateFieldInput{Name: "  New grove ", Area: 1.1})
	require.NoError(t, err)
	assert.NotEmpty(t, f.ID)
	assert.Equal(t, "New grove", f.Name)
	assert.Equal(t, fixtures.OwnerID, f.OwnerID)
	assert.Equal(t, entities.LifecycleLow, f.CurrentLifecycleYear)

	got, err := svc.Get(ctx, owner, f.ID)
	require.NoError(t, err)
	assert.Equal(t, f.Name, got.Name)
}

func TestCreateRejects(t *testing.T) {
	svc, _ := setup(t)
	ctx := context.Background()
	owner := actor(fixtures.OwnerID, entities.RoleFieldOwner)
	lat := 37.0

	tests := []struct {
		name  string
		actor *entities.User
		in    service.CreateFieldInput
		code  apperr.Code
	}{
		{"blank name", owner, service.CreateFieldInput{Name: " ", Area: 1}, apperr.CodeValidation},
		{"zero area", owner, service.CreateFieldInput{Name: "x"}, apperr.CodeValidation},
		{"half coordinates", owner, service.CreateFieldInput{Name: "x", Area: 1, Latitude: &lat}, apperr.CodeValidation},
		{"bad year", owner, service.CreateFieldInput{Name: "x", Area: 1, CurrentLifecycleYear: "mid"}, apperr.CodeValidation},
		{"provider", actor(fixtures.ProviderID, entities.RoleServiceProvider), service.CreateFieldInput{Name: "x", Area: 1}, apperr.CodeUnauthorized},
		{"owner for someone else", owner, service.CreateFieldInput{Name: "x", Area: 1, OwnerID: "u-other"}, apperr.CodeUnauthorized},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(ctx, tt.actor, tt.in)
			assert.Equal(t, tt.code, apperr.CodeOf(err))
		})
	}
}

func TestUpdatePatchesOnlyGivenMembers(t *testing.T) {
	svc, _ := setup(t)
	ctx := context.Background()
	owner := actor(fixtures.OwnerID, entities.RoleFieldOwner)
	area := 5.0

	f, err := svc.Update(ctx, owner, fixtures.KoroneikiID, service.FieldPatch{Area: &area})
	require.NoError(t, err)
	assert.Equal(t, 5.0, f.Area)
	assert.Equal(t, "Koroneiki North Grove", f.Name)
	assert.Equal(t, entities.LifecycleHigh, f.CurrentLifecycleYear)

	_, err = svc.Update(ctx, actor(fixtures.AgronomistID, entities.RoleAgronomist), fixtures.KoroneikiID, service.FieldPatch{Area: &area})
	assert.True(t, apperr.Is(err, apperr.CodeUnauthorized))

	_, err = svc.Update(ctx, owner, "missing", service.FieldPatch{})
	assert.True(t, apperr.Is(err, apperr.CodeNotFound))
}

func TestDeleteRemovesLifecycle(t *testing.T) {
	svc, st := setup(t)
	ctx := context.Background()
	owner := actor(fixtures.OwnerID, entities.RoleFieldOwner)

	require.NoError(t, svc.Delete(ctx, owner, fixtures.KoroneikiID))
	_, err := st.Fields().FindByID(ctx, fixtures.KoroneikiID)
	assert.True(t, apperr.Is(err, apperr.CodeNotFound))
	_, err = st.Lifecycles().FindByFieldID(ctx, fixtures.KoroneikiID)
	assert.True(t, apperr.Is(err, apperr.CodeNotFound))
}

func TestGeoJSONSkipsFieldsWithoutCoordinates(t *testing.T) {
	svc, _ := setup(t)
	fc, err := svc.GeoJSON(context.Background(), actor(fixtures.AdminID, entities.RoleAdministrator))
	require.NoError(t, err)
	require.Len(t, fc.Features, 2)
	assert.Equal(t, fixtures.KoroneikiID, fc.Features[0].ID)
	assert.Equal(t, orb.Point{22.1142, 37.0389}, fc.Features[0].Geometry)
}
