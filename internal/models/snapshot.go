package models

import "math"

const (
	MsPerSecond int64 = 1000
	MsPerMinute       = 60 * MsPerSecond
	MsPerHour         = 60 * MsPerMinute
	MsPerDay          = 24 * MsPerHour
)

// Snapshot is recomputed on every tick and never persisted.
//
// Days is the floor of the whole elapsed time while Hours, Minutes and
// Seconds are residues of their own unit, the way a countdown clock shows
// them. The four fields do not add back up to ElapsedMs.
type Snapshot struct {
	ElapsedMs     int64 `json:"elapsedMs"`
	Days          int64 `json:"days"`
	Hours         int64 `json:"hours"`
	Minutes       int64 `json:"minutes"`
	Seconds       int64 `json:"seconds"`
	CreditsEarned int64 `json:"creditsEarned"`
	UnitsAvoided  int64 `json:"unitsAvoided"`
}

// DeriveStats maps an elapsed duration and the settings to a snapshot.
// Negative durations (clock moved backwards) are clamped to zero.
//
// Earnings accrue on fractional days. UnitsAvoided and CreditsEarned are
// floored independently from the same product, so credits are not
// unitsAvoided*rate rounded.
func DeriveStats(elapsedMs int64, settings Settings) Snapshot {
	if elapsedMs < 0 {
		elapsedMs = 0
	}

	fractionalDays := float64(elapsedMs) / float64(MsPerDay)

	return Snapshot{
		ElapsedMs:     elapsedMs,
		Days:          elapsedMs / MsPerDay,
		Hours:         (elapsedMs / MsPerHour) % 24,
		Minutes:       (elapsedMs / MsPerMinute) % 60,
		Seconds:       (elapsedMs / MsPerSecond) % 60,
		UnitsAvoided:  floorCount(fractionalDays * settings.UnitsPerDay),
		CreditsEarned: floorCount(fractionalDays * settings.UnitsPerDay * settings.ConversionRate),
	}
}

func floorCount(v float64) int64 {
	if math.IsNaN(v) || v <= 0 {
		return 0
	}
	if v >= math.MaxInt64 {
		return math.MaxInt64
	}
	return int64(math.Floor(v))
}
