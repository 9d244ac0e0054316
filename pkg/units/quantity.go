package units

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Quantity is a decimal value tagged with a unit. It is a plain value:
// operations never modify their operands.
type Quantity struct {
	Value decimal.Decimal
	Unit  Unit
}

// New returns the quantity value × unit.
func New(value decimal.Decimal, unit Unit) Quantity {
	return Quantity{Value: value, Unit: unit}
}

// NewFromString parses value as a decimal ("1.5", "-2e3") and tags it with unit.
func NewFromString(value string, unit Unit) (Quantity, error) {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return Quantity{}, fmt.Errorf("invalid quantity %q: %w", value, err)
	}
	return New(d, unit), nil
}

// Category returns the category of the quantity's unit.
func (q Quantity) Category() Category {
	return q.Unit.Category()
}

// Equal reports whether q and other have the same unit and numerically
// equal values (1.50 equals 1.5).
func (q Quantity) Equal(other Quantity) bool {
	return q.Unit == other.Unit && q.Value.Equal(other.Value)
}

// String renders the value followed by the unit's symbol, or its name when
// it has none. Dimensionless quantities render as the bare value.
func (q Quantity) String() string {
	if q.Unit == NoUnit {
		return q.Value.String()
	}
	label := q.Unit.Symbol()
	if label == "" {
		label = q.Unit.String()
	}
	return q.Value.String() + " " + label
}
