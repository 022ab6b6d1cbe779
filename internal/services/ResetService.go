package services

import (
	"context"
	"fmt"
	"respire/internal/models"
	"respire/internal/providers"
	"respire/internal/storage"
	"respire/internal/storage/interfaces"
)

type ResetServiceInterface interface {
	FactoryReset(ctx context.Context) error
}

type ResetService struct {
	store   interfaces.KeyValueStoreInterface
	keys    storage.Keys
	guard   *WriteGuard
	logger  providers.Logger
	metrics providers.MetricsProviderInterface
}

func NewResetService(store interfaces.KeyValueStoreInterface, keys storage.Keys, guard *WriteGuard, logger providers.Logger, metrics providers.MetricsProviderInterface) ResetServiceInterface {
	return &ResetService{store: store, keys: keys, guard: guard, logger: logger, metrics: metrics}
}

// FactoryReset wipes the quit date, settings, bounties and logs. Settings
// read back as defaults afterwards.
func (s *ResetService) FactoryReset(ctx context.Context) error {
	s.guard.Lock()
	defer s.guard.Unlock()

	if err := s.store.Remove(ctx, s.keys.All()...); err != nil {
		s.logger.Errorf(providers.TypeApp, "Factory reset failed: %s", err)
		return fmt.Errorf("%w: %w", models.ErrStoreUnavailable, err)
	}
	s.metrics.SetRecordsTotal("bounties", 0)
	s.metrics.SetRecordsTotal("logs", 0)
	s.logger.Warnf(providers.TypeApp, "Factory reset: all data purged")
	return nil
}
