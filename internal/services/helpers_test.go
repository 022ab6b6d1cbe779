package services

import (
	"respire/internal/storage"
	"respire/internal/storage/interfaces"
	"respire/internal/structures"
	"respire/internal/testutil"
	"time"
)

var testNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

type testEnv struct {
	conf      *structures.Config
	store     interfaces.KeyValueStoreInterface
	keys      storage.Keys
	guard     *WriteGuard
	clock     *testutil.FakeClock
	logger    *testutil.MockLogger
	metrics   *testutil.MockMetrics
	settings  SettingsServiceInterface
	journal   TriggerLogServiceInterface
	quitClock QuitClockServiceInterface
	bounties  BountyLedgerServiceInterface
	dashboard DashboardServiceInterface
	reset     ResetServiceInterface
}

func testConfig() *structures.Config {
	return &structures.Config{
		Store: structures.StoreConfig{Namespace: "respire"},
		Ledger: structures.LedgerConfig{
			UnitsPerDay:    10,
			ConversionRate: 1,
			RefundOnDelete: true,
			TickInterval:   10 * time.Millisecond,
		},
	}
}

func newTestEnv(conf *structures.Config, store interfaces.KeyValueStoreInterface) *testEnv {
	env := &testEnv{
		conf:    conf,
		store:   store,
		keys:    storage.NewKeys(conf),
		guard:   NewWriteGuard(),
		clock:   testutil.NewFakeClock(testNow),
		logger:  &testutil.MockLogger{},
		metrics: testutil.NewMockMetrics(),
	}
	env.settings = NewSettingsService(conf, store, env.keys, env.guard, env.logger)
	env.journal = NewTriggerLogService(store, env.keys, env.guard, env.clock, env.logger, env.metrics)
	env.quitClock = NewQuitClockService(store, env.keys, env.guard, env.clock, env.logger, env.journal)
	env.bounties = NewBountyLedgerService(conf, store, env.keys, env.guard, env.clock, env.logger, env.metrics)
	env.dashboard = NewDashboardService(conf, env.clock, env.quitClock, env.settings, env.bounties)
	env.reset = NewResetService(store, env.keys, env.guard, env.logger, env.metrics)
	return env
}

func newMemoryEnv() *testEnv {
	return newTestEnv(testConfig(), storage.NewMemoryStore())
}
