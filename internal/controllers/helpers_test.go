package controllers

import (
	"net/http"
	"net/http/httptest"
	"respire/internal/coping"
	"respire/internal/services"
	"respire/internal/storage"
	"respire/internal/structures"
	"respire/internal/testutil"
	"strings"
	"time"
)

type testBridge struct {
	ledger    *LedgerController
	panicCtl  *PanicController
	health    *HealthController
	store     *testutil.MockKV
	cache     *testutil.MockCache
	logger    *testutil.MockLogger
	quitClock services.QuitClockServiceInterface
	journal   services.TriggerLogServiceInterface
	protocol  coping.ProtocolInterface
}

func newTestBridge() *testBridge {
	conf := &structures.Config{
		Version: "test",
		Store:   structures.StoreConfig{Namespace: "respire"},
		Ledger: structures.LedgerConfig{
			UnitsPerDay:    10,
			ConversionRate: 1,
			RefundOnDelete: true,
			TickInterval:   10 * time.Millisecond,
		},
		Panic: structures.PanicConfig{BreathUnit: time.Millisecond},
	}
	store := testutil.NewMockKV()
	keys := storage.NewKeys(conf)
	guard := services.NewWriteGuard()
	clock := services.NewSystemClock()
	logger := &testutil.MockLogger{}
	metrics := testutil.NewMockMetrics()
	cache := testutil.NewMockCache()

	settings := services.NewSettingsService(conf, store, keys, guard, logger)
	journal := services.NewTriggerLogService(store, keys, guard, clock, logger, metrics)
	quitClock := services.NewQuitClockService(store, keys, guard, clock, logger, journal)
	bounties := services.NewBountyLedgerService(conf, store, keys, guard, clock, logger, metrics)
	dashboard := services.NewDashboardService(conf, clock, quitClock, settings, bounties)
	reset := services.NewResetService(store, keys, guard, logger, metrics)
	protocol := coping.NewProtocol(conf, journal, logger)

	return &testBridge{
		ledger:    NewLedgerController(logger, quitClock, settings, bounties, journal, dashboard, reset, cache),
		panicCtl:  NewPanicController(logger, protocol, cache),
		health:    NewHealthController(conf, quitClock, protocol),
		store:     store,
		cache:     cache,
		logger:    logger,
		quitClock: quitClock,
		journal:   journal,
		protocol:  protocol,
	}
}

func doRequest(handler http.HandlerFunc, method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
	}
	rr := httptest.NewRecorder()
	handler(rr, req)
	return rr
}
