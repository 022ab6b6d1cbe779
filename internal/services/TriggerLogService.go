package services

import (
	"context"
	"fmt"
	"respire/internal/models"
	"respire/internal/providers"
	"respire/internal/storage"
	"respire/internal/storage/interfaces"
	"strings"

	"github.com/google/uuid"
)

type TriggerLogServiceInterface interface {
	Append(ctx context.Context, trigger string, logType models.LogType) (models.LogEntry, error)
	List(ctx context.Context) []models.LogEntry
	Fetch(ctx context.Context) ([]models.LogEntry, error)
}

type TriggerLogService struct {
	store   interfaces.KeyValueStoreInterface
	keys    storage.Keys
	guard   *WriteGuard
	clock   Clock
	logger  providers.Logger
	metrics providers.MetricsProviderInterface
}

func NewTriggerLogService(store interfaces.KeyValueStoreInterface, keys storage.Keys, guard *WriteGuard, clock Clock, logger providers.Logger, metrics providers.MetricsProviderInterface) TriggerLogServiceInterface {
	return &TriggerLogService{
		store:   store,
		keys:    keys,
		guard:   guard,
		clock:   clock,
		logger:  logger,
		metrics: metrics,
	}
}

// Append prepends an entry. A panic entry with a blank trigger is
// rejected; relapse entries are always written.
func (s *TriggerLogService) Append(ctx context.Context, trigger string, logType models.LogType) (models.LogEntry, error) {
	if _, err := models.ParseLogType(string(logType)); err != nil {
		return models.LogEntry{}, err
	}
	if logType == models.LogTypePanic && strings.TrimSpace(trigger) == "" {
		return models.LogEntry{}, fmt.Errorf("%w: trigger text is empty", models.ErrInvalidInput)
	}

	id, err := uuid.NewV7()
	if err != nil {
		return models.LogEntry{}, fmt.Errorf("generate log id: %w", err)
	}
	entry := models.LogEntry{
		ID:        id.String(),
		Timestamp: s.clock.Now().UnixMilli(),
		Trigger:   trigger,
		Type:      logType,
	}

	s.guard.Lock()
	defer s.guard.Unlock()

	logs, err := loadList[models.LogEntry](ctx, s.store, s.keys.Logs)
	if err != nil {
		s.logger.Errorf(providers.TypeApp, "Failed to save log: %s", err)
		return models.LogEntry{}, err
	}
	logs = append([]models.LogEntry{entry}, logs...)
	if err := saveList(ctx, s.store, s.keys.Logs, logs); err != nil {
		s.logger.Errorf(providers.TypeApp, "Failed to save log: %s", err)
		return models.LogEntry{}, err
	}

	s.metrics.IncLogEntries(string(logType))
	s.metrics.SetRecordsTotal("logs", len(logs))
	return entry, nil
}

// List returns the whole log newest-first, or an empty list if the store
// cannot be read.
func (s *TriggerLogService) List(ctx context.Context) []models.LogEntry {
	logs, err := s.Fetch(ctx)
	if err != nil {
		s.logger.Errorf(providers.TypeApp, "Failed to fetch logs: %s", err)
	}
	return logs
}

// Fetch is List that also reports a failed read, returning an empty list
// alongside the error.
func (s *TriggerLogService) Fetch(ctx context.Context) ([]models.LogEntry, error) {
	logs, err := loadList[models.LogEntry](ctx, s.store, s.keys.Logs)
	if err != nil {
		return []models.LogEntry{}, err
	}
	return logs, nil
}
