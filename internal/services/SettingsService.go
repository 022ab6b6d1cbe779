package services

import (
	"context"
	"fmt"
	"respire/internal/models"
	"respire/internal/providers"
	"respire/internal/storage"
	"respire/internal/storage/interfaces"
	"respire/internal/structures"
	"strconv"
)

type SettingsServiceInterface interface {
	Load(ctx context.Context) models.Settings
	Fetch(ctx context.Context) (models.Settings, error)
	Save(ctx context.Context, settings models.Settings) error
	Defaults() models.Settings
}

type SettingsService struct {
	store    interfaces.KeyValueStoreInterface
	keys     storage.Keys
	guard    *WriteGuard
	logger   providers.Logger
	defaults models.Settings
}

func NewSettingsService(conf *structures.Config, store interfaces.KeyValueStoreInterface, keys storage.Keys, guard *WriteGuard, logger providers.Logger) SettingsServiceInterface {
	// Missing config keys are filled with models.DefaultSettings by the
	// config provider, so zero here is a configured value.
	defaults := models.Settings{
		UnitsPerDay:    conf.Ledger.UnitsPerDay,
		ConversionRate: conf.Ledger.ConversionRate,
	}
	return &SettingsService{
		store:    store,
		keys:     keys,
		guard:    guard,
		logger:   logger,
		defaults: defaults,
	}
}

func (s *SettingsService) Defaults() models.Settings {
	return s.defaults
}

// Load never fails: unset, unparsable or unreadable fields fall back to
// the defaults. A v0 layout with cost_per_pack is migrated in place.
func (s *SettingsService) Load(ctx context.Context) models.Settings {
	settings, err := s.Fetch(ctx)
	if err != nil {
		s.logger.Errorf(providers.TypeApp, "Failed to get settings: %s", err)
	}
	return settings
}

// Fetch is Load that also reports a failed store read, returning the
// defaults alongside the error.
func (s *SettingsService) Fetch(ctx context.Context) (models.Settings, error) {
	settings := s.defaults

	values, err := s.store.MultiGet(ctx, s.keys.UnitsPerDay, s.keys.ConversionRate, s.keys.CostPerPack, s.keys.SchemaVersion)
	if err != nil {
		return settings, fmt.Errorf("%w: %w", models.ErrStoreUnavailable, err)
	}

	if v, ok := parseSetting(values, s.keys.UnitsPerDay); ok {
		settings.UnitsPerDay = v
	}

	if v, ok := parseSetting(values, s.keys.ConversionRate); ok {
		settings.ConversionRate = v
		return settings, nil
	}

	if _, versioned := values[s.keys.SchemaVersion]; !versioned {
		if cost, ok := parseSetting(values, s.keys.CostPerPack); ok {
			settings.ConversionRate = models.ConversionRateFromPackCost(cost)
			s.migrateLegacy(ctx, settings)
		}
	}
	return settings, nil
}

func (s *SettingsService) migrateLegacy(ctx context.Context, settings models.Settings) {
	s.logger.Warnf(providers.TypeApp, "Legacy cost_per_pack setting found, migrating to conversion rate %g", settings.ConversionRate)
	if err := s.Save(ctx, settings); err != nil {
		s.logger.Errorf(providers.TypeApp, "Settings migration failed: %s", err)
		return
	}
	if err := s.store.Remove(ctx, s.keys.CostPerPack); err != nil {
		s.logger.Warnf(providers.TypeApp, "Unable to remove legacy cost_per_pack: %s", err)
	}
}

func (s *SettingsService) Save(ctx context.Context, settings models.Settings) error {
	if err := settings.Validate(); err != nil {
		return err
	}

	s.guard.Lock()
	defer s.guard.Unlock()

	err := s.store.MultiSet(ctx, map[string]string{
		s.keys.UnitsPerDay:    strconv.FormatFloat(settings.UnitsPerDay, 'f', -1, 64),
		s.keys.ConversionRate: strconv.FormatFloat(settings.ConversionRate, 'f', -1, 64),
		s.keys.SchemaVersion:  strconv.Itoa(models.SettingsSchemaVersion),
	})
	if err != nil {
		s.logger.Errorf(providers.TypeApp, "Failed to save settings: %s", err)
		return fmt.Errorf("%w: %w", models.ErrStoreUnavailable, err)
	}
	return nil
}

func parseSetting(values map[string]string, key string) (float64, bool) {
	raw, ok := values[key]
	if !ok || raw == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, false
	}
	return v, models.ValidAmount(v)
}
