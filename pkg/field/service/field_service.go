package service

import (
	"context"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	"olive/entities"
)

// Near restricts a listing to groves within RadiusKm of Center (lon/lat).
type Near struct {
	Center   orb.Point
	RadiusKm float64
}

type ListQuery struct {
	Near *Near
}

type CreateFieldInput struct {
	OwnerID              string                 `json:"ownerId"`
	Name                 string                 `json:"name" validate:"required"`
	Latitude             *float64               `json:"latitude" validate:"omitempty,latitude"`
	Longitude            *float64               `json:"longitude" validate:"omitempty,longitude"`
	Area                 float64                `json:"area" validate:"gt=0"`
	Variety              string                 `json:"variety"`
	TreeAge              *int                   `json:"treeAge" validate:"omitempty,gte=0"`
	GroundType           string                 `json:"groundType"`
	Irrigation           bool                   `json:"irrigation"`
	CurrentLifecycleYear entities.LifecycleYear `json:"currentLifecycleYear" validate:"omitempty,oneof=low high"`
}

// FieldPatch updates only the non-nil members. The lifecycle year moves through the
// lifecycle endpoints, never through a patch.
type FieldPatch struct {
	Name       *string  `json:"name" validate:"omitempty,min=1"`
	Latitude   *float64 `json:"latitude" validate:"omitempty,latitude"`
	Longitude  *float64 `json:"longitude" validate:"omitempty,longitude"`
	Area       *float64 `json:"area" validate:"omitempty,gt=0"`
	Variety    *string  `json:"variety"`
	TreeAge    *int     `json:"treeAge" validate:"omitempty,gte=0"`
	GroundType *string  `json:"groundType"`
	Irrigation *bool    `json:"irrigation"`
}

type FieldService interface {
	List(ctx context.Context, actor *entities.User, q ListQuery) ([]entities.Field, error)
	Get(ctx context.Context, actor *entities.User, id string) (*entities.Field, error)
	Create(ctx context.Context, actor *entities.User, in CreateFieldInput) (*entities.Field, error)
	Update(ctx context.Context, actor *entities.User, id string, p FieldPatch) (*entities.Field, error)
	Delete(ctx context.Context, actor *entities.User, id string) error
	GeoJSON(ctx context.Context, actor *entities.User) (*geojson.FeatureCollection, error)
}
