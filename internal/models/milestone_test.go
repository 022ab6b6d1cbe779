package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluateMilestones_AtStart(t *testing.T) {
	got := EvaluateMilestones(0)
	require.Len(t, got, len(HealthMilestones))

	assert.True(t, got[0].Unlocked)
	assert.False(t, got[1].Unlocked)
	// 20 minutes away still reports a whole day
	assert.Equal(t, int64(1), got[1].DaysUntilUnlock)
	assert.Equal(t, int64(365), got[len(got)-1].DaysUntilUnlock)
}

func TestEvaluateMilestones_UnlockAtExactDuration(t *testing.T) {
	got := EvaluateMilestones(24 * MsPerHour)
	assert.True(t, got[3].Unlocked)
	assert.Equal(t, int64(0), got[3].DaysUntilUnlock)
	assert.False(t, got[4].Unlocked)
	assert.Equal(t, int64(1), got[4].DaysUntilUnlock)
}

func TestEvaluateMilestones_NegativeElapsed(t *testing.T) {
	got := EvaluateMilestones(-MsPerDay)
	assert.True(t, got[0].Unlocked)
	assert.False(t, got[1].Unlocked)
}

func TestEvaluateMilestones_OrderedByDuration(t *testing.T) {
	for i := 1; i < len(HealthMilestones); i++ {
		assert.Greater(t, HealthMilestones[i].DurationMs, HealthMilestones[i-1].DurationMs)
	}
}
