package services

import (
	"context"
	"fmt"
	"respire/internal/models"
	"respire/internal/providers"
	"respire/internal/storage"
	"respire/internal/storage/interfaces"
	"strconv"
	"time"
)

type QuitClockServiceInterface interface {
	Load(ctx context.Context) models.QuitState
	Fetch(ctx context.Context) (models.QuitState, error)
	Start(ctx context.Context, referenceTimestamp int64) error
	StartWithOffset(ctx context.Context, days, hours int) (int64, error)
	Reset(ctx context.Context) error
	Relapse(ctx context.Context, trigger string) error
	CurrentElapsed(ctx context.Context, now time.Time) int64
}

type QuitClockService struct {
	store   interfaces.KeyValueStoreInterface
	keys    storage.Keys
	guard   *WriteGuard
	clock   Clock
	logger  providers.Logger
	journal TriggerLogServiceInterface
}

func NewQuitClockService(store interfaces.KeyValueStoreInterface, keys storage.Keys, guard *WriteGuard, clock Clock, logger providers.Logger, journal TriggerLogServiceInterface) QuitClockServiceInterface {
	return &QuitClockService{
		store:   store,
		keys:    keys,
		guard:   guard,
		clock:   clock,
		logger:  logger,
		journal: journal,
	}
}

// Load returns the absent state when nothing is stored, the value does
// not parse, or the store fails.
func (s *QuitClockService) Load(ctx context.Context) models.QuitState {
	state, err := s.Fetch(ctx)
	if err != nil {
		s.logger.Errorf(providers.TypeApp, "Failed to fetch quit date: %s", err)
	}
	return state
}

// Fetch is Load that also reports a failed store read. The returned state
// is the absent fallback in that case.
func (s *QuitClockService) Fetch(ctx context.Context) (models.QuitState, error) {
	raw, ok, err := s.store.Get(ctx, s.keys.QuitDate)
	if err != nil {
		return models.QuitState{}, fmt.Errorf("%w: %w", models.ErrStoreUnavailable, err)
	}
	if !ok || raw == "" {
		return models.QuitState{}, nil
	}
	ts, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		f, ferr := strconv.ParseFloat(raw, 64)
		if ferr != nil {
			s.logger.Warnf(providers.TypeApp, "Ignoring unparsable quit date %q", raw)
			return models.QuitState{}, nil
		}
		ts = int64(f)
	}
	return models.NewQuitState(ts), nil
}

func (s *QuitClockService) Start(ctx context.Context, referenceTimestamp int64) error {
	if referenceTimestamp < 0 {
		return fmt.Errorf("%w: quit timestamp must not be negative", models.ErrInvalidInput)
	}

	s.guard.Lock()
	defer s.guard.Unlock()

	if err := s.store.Set(ctx, s.keys.QuitDate, strconv.FormatInt(referenceTimestamp, 10)); err != nil {
		s.logger.Errorf(providers.TypeApp, "Failed to save quit date: %s", err)
		return fmt.Errorf("%w: %w", models.ErrStoreUnavailable, err)
	}
	s.logger.Infof(providers.TypeApp, "Quit clock started at %d", referenceTimestamp)
	return nil
}

// StartWithOffset backdates the start by the days and hours already sober.
// Negative parts count as zero.
func (s *QuitClockService) StartWithOffset(ctx context.Context, days, hours int) (int64, error) {
	offset := int64(max(days, 0))*models.MsPerDay + int64(max(hours, 0))*models.MsPerHour
	ts := s.clock.Now().UnixMilli() - offset
	if err := s.Start(ctx, ts); err != nil {
		return 0, err
	}
	return ts, nil
}

func (s *QuitClockService) Reset(ctx context.Context) error {
	s.guard.Lock()
	defer s.guard.Unlock()

	if err := s.store.Remove(ctx, s.keys.QuitDate); err != nil {
		s.logger.Errorf(providers.TypeApp, "Failed to clear quit date: %s", err)
		return fmt.Errorf("%w: %w", models.ErrStoreUnavailable, err)
	}
	s.logger.Infof(providers.TypeApp, "Quit clock reset")
	return nil
}

// Relapse records a relapse entry before clearing the clock, since Reset
// keeps no history of the cleared value. When an earlier attempt logged
// the relapse but failed to reset, the retry only resets.
func (s *QuitClockService) Relapse(ctx context.Context, trigger string) error {
	if !s.relapseLogged(ctx, trigger) {
		if _, err := s.journal.Append(ctx, trigger, models.LogTypeRelapse); err != nil {
			return err
		}
	}
	return s.Reset(ctx)
}

// relapseLogged reports whether the newest log entry is a relapse with
// this trigger written during the current run of the clock.
func (s *QuitClockService) relapseLogged(ctx context.Context, trigger string) bool {
	state, err := s.Fetch(ctx)
	if err != nil || !state.Running() {
		return false
	}
	logs, err := s.journal.Fetch(ctx)
	if err != nil || len(logs) == 0 {
		return false
	}
	newest := logs[0]
	return newest.Type == models.LogTypeRelapse &&
		newest.Trigger == trigger &&
		newest.Timestamp >= *state.QuitTimestamp
}

func (s *QuitClockService) CurrentElapsed(ctx context.Context, now time.Time) int64 {
	return s.Load(ctx).Elapsed(now)
}
