package serviceImp

import (
	"bytes"
	"context"
	"encoding/json"
	"slices"
	"time"

	"github.com/labstack/gommon/log"

	"olive/entities"
	"olive/pkg/apperr"
	"olive/pkg/preference/repository"
	"olive/pkg/preference/service"
)

var logger = log.New("prefs")

var (
	themes      = []string{"light", "dark", "system"}
	dateFormats = []string{"DD/MM/YYYY", "MM/DD/YYYY", "YYYY-MM-DD"}
	views       = []string{"dashboard", "calendar", "tasks", "fields", "analytics"}
)

type prefSvc struct {
	repo repository.PreferenceRepository
	now  func() time.Time
}

func NewPreferenceService(r repository.PreferenceRepository) service.PreferenceService {
	return &prefSvc{repo: r, now: time.Now}
}

func (s *prefSvc) Get(ctx context.Context, ownerID string) (entities.Preferences, error) {
	p := entities.DefaultPreferences()
	b, err := s.repo.Find(ctx, ownerID, entities.PreferenceKey)
	if apperr.Is(err, apperr.CodeNotFound) {
		return p, nil
	}
	if err != nil {
		return p, err
	}
	// a corrupt document falls back to the defaults rather than locking the user out
	if err := json.Unmarshal([]byte(b.Value), &p); err != nil {
		logger.Warnf("ignoring unreadable preferences of %s: %v", ownerID, err)
		return entities.DefaultPreferences(), nil
	}
	return p, nil
}

func (s *prefSvc) Update(ctx context.Context, ownerID string, patch json.RawMessage) (entities.Preferences, error) {
	cur, err := s.Get(ctx, ownerID)
	if err != nil {
		return cur, err
	}
	dec := json.NewDecoder(bytes.NewReader(patch))
	dec.DisallowUnknownFields()
	next := cur
	if err := dec.Decode(&next); err != nil {
		return cur, apperr.Validation("bad preferences: " + err.Error())
	}
	if err := validate(next); err != nil {
		return cur, err
	}

	raw, err := json.Marshal(next)
	if err != nil {
		return cur, err
	}
	b := &entities.PreferenceBlob{OwnerID: ownerID, Key: entities.PreferenceKey, Value: string(raw), UpdatedAt: s.now()}
	if err := s.repo.Save(ctx, b); err != nil {
		return cur, err
	}
	return next, nil
}

func validate(p entities.Preferences) error {
	switch {
	case !slices.Contains(themes, p.Theme):
		return apperr.Validationf("theme must be one of %v", themes)
	case !slices.Contains(dateFormats, p.DateFormat):
		return apperr.Validationf("dateFormat must be one of %v", dateFormats)
	case !slices.Contains(views, p.DefaultView):
		return apperr.Validationf("defaultView must be one of %v", views)
	case p.Language == "":
		return apperr.Validation("language is required")
	}
	return nil
}

func (s *prefSvc) Reset(ctx context.Context, ownerID string) (entities.Preferences, error) {
	if err := s.repo.Delete(ctx, ownerID, entities.PreferenceKey); err != nil {
		return entities.Preferences{}, err
	}
	return entities.DefaultPreferences(), nil
}
