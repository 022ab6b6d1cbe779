package services

import (
	"context"
	"respire/internal/models"
	"respire/internal/testutil"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResetService_FactoryReset(t *testing.T) {
	ctx := context.Background()
	kv := testutil.NewMockKV()
	env := newTestEnv(testConfig(), kv)

	require.NoError(t, env.quitClock.Start(ctx, 1_000))
	require.NoError(t, env.settings.Save(ctx, models.Settings{UnitsPerDay: 3, ConversionRate: 2}))
	_, err := env.bounties.Add(ctx, "x", 1)
	require.NoError(t, err)
	_, err = env.journal.Append(ctx, "coffee", models.LogTypePanic)
	require.NoError(t, err)
	require.NoError(t, kv.Set(ctx, "other:key", "kept"))

	require.NoError(t, env.reset.FactoryReset(ctx))

	assert.Equal(t, []string{"other:key"}, kv.Keys())
	assert.False(t, env.quitClock.Load(ctx).Running())
	assert.Equal(t, env.settings.Defaults(), env.settings.Load(ctx))
	assert.Empty(t, env.bounties.List(ctx))
	assert.Empty(t, env.journal.List(ctx))
}

func TestResetService_StoreFailure(t *testing.T) {
	kv := testutil.NewMockKV()
	env := newTestEnv(testConfig(), kv)
	kv.SetFailWrites(true)

	assert.ErrorIs(t, env.reset.FactoryReset(context.Background()), models.ErrStoreUnavailable)
}
