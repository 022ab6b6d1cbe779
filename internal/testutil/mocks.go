package testutil

import (
	"context"
	"errors"
	"respire/internal/providers"
	"sort"
	"sync"
	"time"
)

// MockLogger implements providers.Logger and records calls.
type MockLogger struct {
	mu   sync.Mutex
	Logs []LogEntry
}

type LogEntry struct {
	Level  string
	Type   providers.TypeEnum
	Format string
	Args   []interface{}
}

func (m *MockLogger) record(level string, t providers.TypeEnum, format string, args ...interface{}) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Logs = append(m.Logs, LogEntry{Level: level, Type: t, Format: format, Args: args})
}

func (m *MockLogger) Errorf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("error", t, format, args...)
}
func (m *MockLogger) Warnf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("warn", t, format, args...)
}
func (m *MockLogger) Debugf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("debug", t, format, args...)
}
func (m *MockLogger) Infof(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("info", t, format, args...)
}
func (m *MockLogger) Fatalf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("fatal", t, format, args...)
}
func (m *MockLogger) Close() {}

// Count returns how many entries were logged at level.
func (m *MockLogger) Count(level string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, l := range m.Logs {
		if l.Level == level {
			n++
		}
	}
	return n
}

// MockMetrics implements providers.MetricsProviderInterface and keeps counters.
type MockMetrics struct {
	mu          sync.Mutex
	Requests    int
	CacheHits   int
	CacheMisses int
	Persisted   int
	Records     map[string]int
	Redemptions map[string]int
	LogEntries  map[string]int
	Watched     providers.LedgerStatsSource
}

func NewMockMetrics() *MockMetrics {
	return &MockMetrics{
		Records:     make(map[string]int),
		Redemptions: make(map[string]int),
		LogEntries:  make(map[string]int),
	}
}

func (m *MockMetrics) IncRequestsTotal(_ string, _ int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Requests++
}
func (m *MockMetrics) ObserveRequestDuration(_ string, _ time.Duration) {}
func (m *MockMetrics) IncCacheHits() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CacheHits++
}
func (m *MockMetrics) IncCacheMisses() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CacheMisses++
}
func (m *MockMetrics) ObservePersistenceDuration(_ time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Persisted++
}
func (m *MockMetrics) SetRecordsTotal(collection string, count int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Records[collection] = count
}
func (m *MockMetrics) IncRedemptions(outcome string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Redemptions[outcome]++
}
func (m *MockMetrics) IncLogEntries(logType string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.LogEntries[logType]++
}
func (m *MockMetrics) WatchLedger(source providers.LedgerStatsSource) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Watched = source
}

func (m *MockMetrics) RedemptionCount(outcome string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.Redemptions[outcome]
}

// MockCache implements providers.CacheProviderInterface.
type MockCache struct {
	mu   sync.Mutex
	Data map[string][]byte
}

func NewMockCache() *MockCache {
	return &MockCache{Data: make(map[string][]byte)}
}

func (m *MockCache) Get(key string) ([]byte, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	val, ok := m.Data[key]
	return val, ok
}

func (m *MockCache) Set(key string, value []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Data[key] = value
}

func (m *MockCache) Del(keys ...string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, k := range keys {
		delete(m.Data, k)
	}
}

// MockCompressor implements interfaces.CompressorInterface with injectable behavior.
type MockCompressor struct {
	CompressFn   func([]byte) ([]byte, error)
	DecompressFn func([]byte) ([]byte, error)
}

func (m *MockCompressor) Compress(val []byte) ([]byte, error) {
	if m.CompressFn != nil {
		return m.CompressFn(val)
	}
	// Default: return as-is (identity)
	out := make([]byte, len(val))
	copy(out, val)
	return out, nil
}

func (m *MockCompressor) Decompress(val []byte) ([]byte, error) {
	if m.DecompressFn != nil {
		return m.DecompressFn(val)
	}
	out := make([]byte, len(val))
	copy(out, val)
	return out, nil
}

func (m *MockCompressor) Close() {}

var ErrStoreDown = errors.New("store down")

// MockKV implements interfaces.KeyValueStoreInterface over a map. Setting
// FailReads or FailWrites makes the matching calls return ErrStoreDown.
// FailRemoves fails Remove alone.
type MockKV struct {
	mu          sync.Mutex
	Data        map[string]string
	FailReads   bool
	FailWrites  bool
	FailRemoves bool
	Writes      int
}

func NewMockKV() *MockKV {
	return &MockKV{Data: make(map[string]string)}
}

func (m *MockKV) Get(_ context.Context, key string) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailReads {
		return "", false, ErrStoreDown
	}
	v, ok := m.Data[key]
	return v, ok, nil
}

func (m *MockKV) Set(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailWrites {
		return ErrStoreDown
	}
	m.Writes++
	m.Data[key] = value
	return nil
}

func (m *MockKV) Remove(_ context.Context, keys ...string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailWrites || m.FailRemoves {
		return ErrStoreDown
	}
	m.Writes++
	for _, k := range keys {
		delete(m.Data, k)
	}
	return nil
}

func (m *MockKV) MultiGet(_ context.Context, keys ...string) (map[string]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailReads {
		return nil, ErrStoreDown
	}
	out := make(map[string]string, len(keys))
	for _, k := range keys {
		if v, ok := m.Data[k]; ok {
			out[k] = v
		}
	}
	return out, nil
}

func (m *MockKV) MultiSet(_ context.Context, pairs map[string]string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailWrites {
		return ErrStoreDown
	}
	m.Writes++
	for k, v := range pairs {
		m.Data[k] = v
	}
	return nil
}

func (m *MockKV) Close() error { return nil }

// Keys returns the stored keys in sorted order.
func (m *MockKV) Keys() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, 0, len(m.Data))
	for k := range m.Data {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// SetFailReads toggles read failures.
func (m *MockKV) SetFailReads(fail bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.FailReads = fail
}

// SetFailRemoves toggles Remove failures.
func (m *MockKV) SetFailRemoves(fail bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.FailRemoves = fail
}

// SetFailWrites toggles write failures.
func (m *MockKV) SetFailWrites(fail bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.FailWrites = fail
}

// FakeClock is a settable clock for the services package.
type FakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func NewFakeClock(now time.Time) *FakeClock {
	return &FakeClock{now: now}
}

func (c *FakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *FakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func (c *FakeClock) Set(now time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = now
}
