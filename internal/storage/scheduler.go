package storage

import (
	"respire/internal/providers"
	"respire/internal/storage/interfaces"
	"respire/internal/structures"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
)

// Scheduler flushes the in-memory store to disk on store.saveInterval.
// With the sqlite driver every method is a no-op.
type Scheduler struct {
	config      *structures.Config
	logger      providers.Logger
	store       *MemoryStore
	fileManager *FileManager
	metrics     providers.MetricsProviderInterface
	cron        *cron.Cron
	opsMu       sync.Mutex
}

func (s *Scheduler) enabled() bool {
	return s.config.Store.Driver != DriverSQLite
}

func (s *Scheduler) Init() {
	if !s.enabled() {
		return
	}
	s.cron = cron.New()
	_, err := s.cron.AddFunc("@every "+s.config.Store.SaveInterval.String(), func() {
		if !s.store.Dirty() {
			return
		}
		if err := s.flush(); err != nil {
			s.logger.Errorf(providers.TypeApp, "Error while persisting data: %s", err)
			return
		}
		s.logger.Debugf(providers.TypeApp, "Persisted store to file %s", s.config.Store.FilePath)
	})
	if err != nil {
		s.logger.Errorf(providers.TypeApp, "Unable to schedule store flush: %s", err)
		return
	}
	s.cron.Start()
}

func (s *Scheduler) Stop() {
	if s.cron != nil {
		<-s.cron.Stop().Done()
	}
}

func (s *Scheduler) Restore() error {
	if !s.enabled() {
		return nil
	}
	s.opsMu.Lock()
	defer s.opsMu.Unlock()
	return s.fileManager.LoadFromFile(s.config.Store.FilePath)
}

func (s *Scheduler) Persist() error {
	if !s.enabled() {
		return nil
	}
	s.logger.Infof(providers.TypeApp, "Persisting store to file...")
	if err := s.flush(); err != nil {
		s.logger.Errorf(providers.TypeApp, "Error while persisting data: %s", err)
		return err
	}
	return nil
}

// Close releases the file compressor. Call it after the final Persist.
func (s *Scheduler) Close() {
	s.fileManager.Close()
}

func (s *Scheduler) flush() error {
	s.opsMu.Lock()
	defer s.opsMu.Unlock()

	start := time.Now()
	err := s.fileManager.SaveToFile(s.config.Store.FilePath)
	s.metrics.ObservePersistenceDuration(time.Since(start))
	return err
}

func NewScheduler(config *structures.Config, logger providers.Logger, store *MemoryStore, fileManager *FileManager, metrics providers.MetricsProviderInterface) interfaces.SchedulerInterface {
	return &Scheduler{
		config:      config,
		logger:      logger,
		store:       store,
		fileManager: fileManager,
		metrics:     metrics,
	}
}
