package services

import (
	"context"
	"math"
	"respire/internal/models"
	"respire/internal/testutil"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettingsService_LoadDefaults(t *testing.T) {
	env := newMemoryEnv()
	assert.Equal(t, models.Settings{UnitsPerDay: 10, ConversionRate: 1}, env.settings.Load(context.Background()))
}

func TestSettingsService_DefaultsFromConfig(t *testing.T) {
	conf := testConfig()
	conf.Ledger.UnitsPerDay = 20
	conf.Ledger.ConversionRate = 0.5
	env := newTestEnv(conf, testutil.NewMockKV())

	assert.Equal(t, models.Settings{UnitsPerDay: 20, ConversionRate: 0.5}, env.settings.Defaults())
	assert.Equal(t, env.settings.Defaults(), env.settings.Load(context.Background()))
}

func TestSettingsService_SaveThenLoad(t *testing.T) {
	ctx := context.Background()
	env := newMemoryEnv()

	want := models.Settings{UnitsPerDay: 15, ConversionRate: 0.35}
	require.NoError(t, env.settings.Save(ctx, want))
	assert.Equal(t, want, env.settings.Load(ctx))

	v, ok, _ := env.store.Get(ctx, env.keys.SchemaVersion)
	assert.True(t, ok)
	assert.Equal(t, "1", v)
}

func TestSettingsService_SaveRejectsInvalid(t *testing.T) {
	ctx := context.Background()
	env := newMemoryEnv()

	assert.ErrorIs(t, env.settings.Save(ctx, models.Settings{UnitsPerDay: -1, ConversionRate: 1}), models.ErrInvalidInput)
	assert.ErrorIs(t, env.settings.Save(ctx, models.Settings{UnitsPerDay: 1, ConversionRate: math.NaN()}), models.ErrInvalidInput)
	assert.Equal(t, env.settings.Defaults(), env.settings.Load(ctx))
}

func TestSettingsService_UnparsableFieldsFallBack(t *testing.T) {
	ctx := context.Background()
	env := newMemoryEnv()
	require.NoError(t, env.store.MultiSet(ctx, map[string]string{
		env.keys.UnitsPerDay:    "abc",
		env.keys.ConversionRate: "2.5",
	}))

	got := env.settings.Load(ctx)
	assert.Equal(t, 10.0, got.UnitsPerDay)
	assert.Equal(t, 2.5, got.ConversionRate)
}

func TestSettingsService_NegativeStoredValueFallsBack(t *testing.T) {
	ctx := context.Background()
	env := newMemoryEnv()
	require.NoError(t, env.store.Set(ctx, env.keys.UnitsPerDay, "-4"))

	assert.Equal(t, 10.0, env.settings.Load(ctx).UnitsPerDay)
}

func TestSettingsService_MigratesLegacyCostPerPack(t *testing.T) {
	ctx := context.Background()
	env := newMemoryEnv()
	require.NoError(t, env.store.MultiSet(ctx, map[string]string{
		env.keys.UnitsPerDay: "20",
		env.keys.CostPerPack: "10",
	}))

	got := env.settings.Load(ctx)
	assert.Equal(t, models.Settings{UnitsPerDay: 20, ConversionRate: 0.5}, got)

	_, ok, _ := env.store.Get(ctx, env.keys.CostPerPack)
	assert.False(t, ok)
	rate, ok, _ := env.store.Get(ctx, env.keys.ConversionRate)
	assert.True(t, ok)
	assert.Equal(t, "0.5", rate)

	// second load reads the migrated layout
	assert.Equal(t, got, env.settings.Load(ctx))
}

func TestSettingsService_StoreFailure(t *testing.T) {
	ctx := context.Background()
	kv := testutil.NewMockKV()
	env := newTestEnv(testConfig(), kv)

	kv.FailReads = true
	assert.Equal(t, env.settings.Defaults(), env.settings.Load(ctx))
	assert.Equal(t, 1, env.logger.Count("error"))

	kv.FailReads = false
	kv.SetFailWrites(true)
	err := env.settings.Save(ctx, models.Settings{UnitsPerDay: 5, ConversionRate: 1})
	assert.ErrorIs(t, err, models.ErrStoreUnavailable)
}

func TestSettingsService_FetchReportsReadFailure(t *testing.T) {
	ctx := context.Background()
	kv := testutil.NewMockKV()
	env := newTestEnv(testConfig(), kv)
	saved := models.Settings{UnitsPerDay: 20, ConversionRate: 2}
	require.NoError(t, env.settings.Save(ctx, saved))

	kv.SetFailReads(true)
	got, err := env.settings.Fetch(ctx)
	assert.ErrorIs(t, err, models.ErrStoreUnavailable)
	assert.Equal(t, env.settings.Defaults(), got)
	assert.Zero(t, env.logger.Count("error"))

	kv.SetFailReads(false)
	got, err = env.settings.Fetch(ctx)
	require.NoError(t, err)
	assert.Equal(t, saved, got)
}

func TestSettingsService_ZeroConfigIsHonoured(t *testing.T) {
	conf := testConfig()
	conf.Ledger.UnitsPerDay = 0
	conf.Ledger.ConversionRate = 0
	env := newTestEnv(conf, testutil.NewMockKV())

	assert.Equal(t, models.Settings{}, env.settings.Defaults())
	assert.Equal(t, models.Settings{}, env.settings.Load(context.Background()))
}
