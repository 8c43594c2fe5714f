package recipeclip

import (
	"math"
	"strings"
)

// Unit is a kitchen measurement unit. Every unit belongs to exactly one
// family, identified by its base unit (Liter for volume, Gram for weight),
// and carries a fixed linear factor to that base. Conversion is always
// mediated through the base unit, so adding a unit only requires its
// to-base factor.
//
// The factors are kitchen approximations (1 cup = 0.25 l, 1 oz = 30 g),
// not legally precise measures.
type Unit int

const (
	UnitNone Unit = iota

	// Volume, metric.
	Milliliter
	Centiliter
	Deciliter
	Liter

	// Volume, US kitchen.
	Teaspoon
	Tablespoon
	FluidOunce
	Cup
	Pint
	Quart
	Gallon

	// Volume, approximate.
	Drop
	Smidgen
	Pinch
	Dash

	// Weight, metric.
	Milligram
	Gram
	Kilogram

	// Weight, US.
	Ounce
	Pound
)

// zeroEpsilon is the magnitude below which a value is treated as exactly
// zero, skipping the conversion arithmetic.
const zeroEpsilon = 1e-10

// unitInfo holds the display symbol and the factor to the family base.
type unitInfo struct {
	symbol string
	base   Unit
	factor float64
}

var unitTable = map[Unit]unitInfo{
	Milliliter: {"ml", Liter, 0.001},
	Centiliter: {"cl", Liter, 0.01},
	Deciliter:  {"dl", Liter, 0.1},
	Liter:      {"l", Liter, 1},

	Teaspoon:   {"tsp", Liter, 0.005},
	Tablespoon: {"tbsp", Liter, 0.015},
	FluidOunce: {"fl oz", Liter, 0.03},
	Cup:        {"cup", Liter, 0.25},
	Pint:       {"pint", Liter, 0.5},
	Quart:      {"quart", Liter, 0.95},
	Gallon:     {"gallon", Liter, 3.8},

	Drop:    {"drop", Liter, 0.00005},
	Smidgen: {"smidgen", Liter, 0.0001},
	Pinch:   {"pinch", Liter, 0.0003},
	Dash:    {"dash", Liter, 0.0006},

	Milligram: {"mg", Gram, 0.001},
	Gram:      {"g", Gram, 1},
	Kilogram:  {"kg", Gram, 1000},

	Ounce: {"oz", Gram, 30},
	Pound: {"lb", Gram, 450},
}

// String returns the unit's display symbol.
func (u Unit) String() string {
	if info, ok := unitTable[u]; ok {
		return info.symbol
	}
	return ""
}

// Base returns the canonical base unit of the unit's family, or UnitNone
// for an unknown unit.
func (u Unit) Base() Unit {
	if info, ok := unitTable[u]; ok {
		return info.base
	}
	return UnitNone
}

// Convert converts a value between two units of the same family.
//
// The second return value is false when the units belong to different
// families (weight and volume are semantically incompatible) or when
// either unit is unknown. Callers must check it before using the result.
func Convert(value float64, from, to Unit) (float64, bool) {
	fromInfo, ok := unitTable[from]
	if !ok {
		return 0, false
	}
	toInfo, ok := unitTable[to]
	if !ok {
		return 0, false
	}
	if fromInfo.base != toInfo.base {
		return 0, false
	}

	// Already-zero inputs skip the multiply to avoid accumulating
	// floating point noise.
	if math.Abs(value) < zeroEpsilon {
		return 0, true
	}

	return value * fromInfo.factor / toInfo.factor, true
}

// unitAliases maps lowercase spellings to units for ParseUnit.
var unitAliases = map[string]Unit{
	"ml": Milliliter, "milliliter": Milliliter, "millilitre": Milliliter,
	"cl": Centiliter, "centiliter": Centiliter, "centilitre": Centiliter,
	"dl": Deciliter, "deciliter": Deciliter, "decilitre": Deciliter,
	"l": Liter, "liter": Liter, "litre": Liter,

	"tsp": Teaspoon, "teaspoon": Teaspoon, "teaspoons": Teaspoon,
	"tbsp": Tablespoon, "tablespoon": Tablespoon, "tablespoons": Tablespoon,
	"floz": FluidOunce, "fl oz": FluidOunce, "fluid ounce": FluidOunce,
	"cup": Cup, "cups": Cup,
	"pint": Pint, "pints": Pint, "pt": Pint,
	"quart": Quart, "quarts": Quart, "qt": Quart,
	"gallon": Gallon, "gallons": Gallon, "gal": Gallon,

	"drop": Drop, "drops": Drop,
	"smidgen": Smidgen,
	"pinch":   Pinch, "pinches": Pinch,
	"dash": Dash, "dashes": Dash,

	"mg": Milligram, "milligram": Milligram,
	"g": Gram, "gram": Gram, "grams": Gram,
	"kg": Kilogram, "kilogram": Kilogram, "kilograms": Kilogram,

	"oz": Ounce, "ounce": Ounce, "ounces": Ounce,
	"lb": Pound, "lbs": Pound, "pound": Pound, "pounds": Pound,
}

// ParseUnit resolves a unit name or common alias, case-insensitively.
// Returns false for an unrecognized name.
func ParseUnit(name string) (Unit, bool) {
	u, ok := unitAliases[strings.ToLower(strings.TrimSpace(name))]
	return u, ok
}

// Units returns all known units in display order.
func Units() []Unit {
	units := make([]Unit, 0, len(unitTable))
	for u := Milliliter; u <= Pound; u++ {
		units = append(units, u)
	}
	return units
}
