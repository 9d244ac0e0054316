// Package units converts decimal quantities between measurement units and
// performs unit-aware arithmetic for expression evaluators.
//
// The catalog is a closed set of units, each belonging to exactly one
// Category and carrying an exact decimal weight relative to its category's
// base unit. Quantities are immutable values; every operation returns a new
// Quantity or a *errors.UnitError and is safe for concurrent use.
package units

//go:generate go run ../../cmd/unitgen -in catalog.yaml -out unit_table.go

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Unit identifies one entry of the catalog. The constants are generated from
// catalog.yaml into unit_table.go.
type Unit int

type unitDef struct {
	name     string
	symbol   string
	category Category
	weight   decimal.Decimal
}

// Valid reports whether u is a catalog entry.
func (u Unit) Valid() bool {
	return u >= 0 && u < numUnits
}

// Category returns the dimension u measures. Units outside the catalog
// belong to no valid category.
func (u Unit) Category() Category {
	if !u.Valid() {
		return numCategories
	}
	return unitTable[u].category
}

// Weight returns the number of base units in one u. Temperature units
// report zero: their conversions are affine.
func (u Unit) Weight() decimal.Decimal {
	if !u.Valid() {
		return decimal.Zero
	}
	return unitTable[u].weight
}

// Symbol returns the conventional abbreviation, or "" when the unit has none.
func (u Unit) Symbol() string {
	if !u.Valid() {
		return ""
	}
	return unitTable[u].symbol
}

// String returns the human name ("square kilometer").
func (u Unit) String() string {
	if !u.Valid() {
		return fmt.Sprintf("Unit(%d)", int(u))
	}
	return unitTable[u].name
}
