package entities

import (
	"time"

	"github.com/paulmach/orb"
)

type LifecycleYear string

const (
	LifecycleLow  LifecycleYear = "low"
	LifecycleHigh LifecycleYear = "high"
)

// Next returns the opposite year of the alternation cycle.
func (y LifecycleYear) Next() LifecycleYear {
	if y == LifecycleHigh {
		return LifecycleLow
	}
	return LifecycleHigh
}

func (y LifecycleYear) Valid() bool { return y == LifecycleLow || y == LifecycleHigh }

type Field struct {
	ID                   string        `gorm:"primaryKey" json:"id"`
	OwnerID              string        `gorm:"index" json:"ownerId"`
	Name                 string        `json:"name"`
	Latitude             *float64      `json:"latitude,omitempty"`
	Longitude            *float64      `json:"longitude,omitempty"`
	Area                 float64       `json:"area"` // hectares
	Variety              string        `json:"variety,omitempty"`
	TreeAge              *int          `json:"treeAge,omitempty"`
	GroundType           string        `json:"groundType,omitempty"`
	Irrigation           bool          `json:"irrigation"`
	CurrentLifecycleYear LifecycleYear `json:"currentLifecycleYear"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Location returns the field position as lon/lat, false when the field has no coordinates.
func (f *Field) Location() (orb.Point, bool) {
	if f.Latitude == nil || f.Longitude == nil {
		return orb.Point{}, false
	}
	return orb.Point{*f.Longitude, *f.Latitude}, true
}
