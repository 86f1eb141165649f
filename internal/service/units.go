package service

import (
	"fmt"
	"strings"
)

type unitKind string

const (
	unitKindMass   unitKind = "mass"
	unitKindVolume unitKind = "volume"
)

type unitDef struct {
	kind       unitKind
	toBaseUnit float64
}

var unitTable = map[string]unitDef{
	// mass (base = kg)
	"g":   {kind: unitKindMass, toBaseUnit: 0.001},
	"kg":  {kind: unitKindMass, toBaseUnit: 1},
	"lb":  {kind: unitKindMass, toBaseUnit: 0.45359237},
	"lbs": {kind: unitKindMass, toBaseUnit: 0.45359237},
	"st":  {kind: unitKindMass, toBaseUnit: 6.35029318},

	// volume (base = l)
	"ml":    {kind: unitKindVolume, toBaseUnit: 0.001},
	"l":     {kind: unitKindVolume, toBaseUnit: 1},
	"cup":   {kind: unitKindVolume, toBaseUnit: 0.2365882365},
	"fl-oz": {kind: unitKindVolume, toBaseUnit: 0.0295735295625},
}

// ToKilograms converts a body weight in unit to kg, the unit UserData stores.
func ToKilograms(value float64, unit string) (float64, error) {
	return toBase(value, unit, unitKindMass)
}

// ToLiters converts a water intake in unit to liters.
func ToLiters(value float64, unit string) (float64, error) {
	return toBase(value, unit, unitKindVolume)
}

func toBase(value float64, unit string, kind unitKind) (float64, error) {
	if value < 0 {
		return 0, fmt.Errorf("amount must be >= 0")
	}
	def, ok := resolveUnit(unit)
	if !ok || def.kind != kind {
		return 0, fmt.Errorf("unsupported %s unit %q", kind, unit)
	}
	return value * def.toBaseUnit, nil
}

func resolveUnit(unit string) (unitDef, bool) {
	u := strings.ToLower(strings.TrimSpace(unit))
	if u == "" {
		return unitDef{}, false
	}
	def, ok := unitTable[u]
	return def, ok
}
