package coping

import (
	"context"
	"time"
)

type BreathPhase string

const (
	PhaseNone   BreathPhase = ""
	PhaseInhale BreathPhase = "inhale"
	PhaseHold   BreathPhase = "hold"
	PhaseExhale BreathPhase = "exhale"
)

type BreathStep struct {
	Phase BreathPhase `json:"phase"`
	Units int         `json:"units"`
}

// BreathCycle is the 4-7-8 pattern, in breath units.
var BreathCycle = []BreathStep{
	{Phase: PhaseInhale, Units: 4},
	{Phase: PhaseHold, Units: 7},
	{Phase: PhaseExhale, Units: 8},
}

// RunBreathing walks BreathCycle over and over, calling onStep when each
// step begins, until ctx is cancelled.
func RunBreathing(ctx context.Context, unit time.Duration, onStep func(BreathStep)) {
	if unit <= 0 {
		unit = time.Second
	}
	timer := time.NewTimer(0)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	for {
		for _, step := range BreathCycle {
			if ctx.Err() != nil {
				return
			}
			onStep(step)
			timer.Reset(time.Duration(step.Units) * unit)
			select {
			case <-ctx.Done():
				return
			case <-timer.C:
			}
		}
	}
}
