package models

import (
	"fmt"
	"math"
)

const (
	DefaultUnitsPerDay    = 10.0
	DefaultConversionRate = 1.0

	// CigarettesPerPack converts the legacy cost-per-pack setting into a
	// per-unit conversion rate.
	CigarettesPerPack = 20.0

	// SettingsSchemaVersion is written next to the settings keys. Version 0
	// stored cost_per_pack instead of conversion_rate.
	SettingsSchemaVersion = 1
)

// Settings is the canonical credits-per-unit model.
type Settings struct {
	UnitsPerDay    float64 `json:"unitsPerDay"`
	ConversionRate float64 `json:"conversionRate"`
}

func DefaultSettings() Settings {
	return Settings{UnitsPerDay: DefaultUnitsPerDay, ConversionRate: DefaultConversionRate}
}

func (s Settings) Validate() error {
	if !ValidAmount(s.UnitsPerDay) {
		return fmt.Errorf("%w: unitsPerDay must be a finite number >= 0", ErrInvalidInput)
	}
	if !ValidAmount(s.ConversionRate) {
		return fmt.Errorf("%w: conversionRate must be a finite number >= 0", ErrInvalidInput)
	}
	return nil
}

func ConversionRateFromPackCost(costPerPack float64) float64 {
	return costPerPack / CigarettesPerPack
}

// ValidAmount reports whether v is a finite number >= 0.
func ValidAmount(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v >= 0
}
