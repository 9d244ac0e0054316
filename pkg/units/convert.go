package units

import (
	uerrors "github.com/sambeau/measure/pkg/units/errors"
	"github.com/shopspring/decimal"
)

// Context carries the rounding used when a result needs a division or a
// fractional power. Precision counts significant digits, so a tiny quotient
// keeps as many digits as a large one. A result also keeps at least that
// many decimal places, so exact quotients such as 2 mi in mm stay exact.
// Contexts are plain values and safe to share.
type Context struct {
	// DivisionPrecision is the number of significant digits kept after a
	// division.
	DivisionPrecision int32
	// PowPrecision is the number of significant digits kept for fractional
	// or negative exponents.
	PowPrecision int32
}

// DefaultContext keeps 34 significant digits, as a decimal128 does.
var DefaultContext = Context{DivisionPrecision: 34, PowPrecision: 34}

// Convert expresses q in target using DefaultContext.
func Convert(q Quantity, target Unit) (Quantity, error) {
	return DefaultContext.Convert(q, target)
}

// ConvertToLowest brings a and b onto a common unit using DefaultContext.
func ConvertToLowest(a, b Quantity) (Quantity, Quantity, error) {
	return DefaultContext.ConvertToLowest(a, b)
}

// Convert expresses q in target. Both units must share a category.
// Temperatures convert through an explicit affine table; every other
// category scales the value by weight(source) / weight(target).
func (c Context) Convert(q Quantity, target Unit) (Quantity, error) {
	if err := checkUnits("convert", q.Unit, target); err != nil {
		return Quantity{}, err
	}

	from := q.Unit
	if from.Category() != target.Category() {
		return Quantity{}, uerrors.New("CONV-0001", map[string]any{
			"From":         from.String(),
			"To":           target.String(),
			"FromCategory": from.Category().String(),
			"ToCategory":   target.Category().String(),
		})
	}

	if from.Category() == Temperature {
		convert, ok := temperatureConversions[unitPair{from, target}]
		if !ok {
			return Quantity{}, uerrors.New("CONV-0002", map[string]any{
				"From": from.String(),
				"To":   target.String(),
			})
		}
		return New(convert(c, q.Value), target), nil
	}

	if from == target {
		return q, nil
	}

	// value × (w_from / w_to), multiplied first so only one rounding happens
	value := quotient(q.Value.Mul(from.Weight()), target.Weight(), c.DivisionPrecision)
	return New(value, target), nil
}

// ConvertToLowest expresses a and b in the unit with the smaller weight.
// Units of equal weight (synonyms such as joule and newton meter) are left
// as they are.
func (c Context) ConvertToLowest(a, b Quantity) (Quantity, Quantity, error) {
	if err := checkUnits("convert", a.Unit, b.Unit); err != nil {
		return Quantity{}, Quantity{}, err
	}
	if a.Category() != b.Category() {
		// Convert reports the mismatch
		_, err := c.Convert(a, b.Unit)
		return Quantity{}, Quantity{}, err
	}

	switch a.Unit.Weight().Cmp(b.Unit.Weight()) {
	case 0:
		return a, b, nil
	case 1:
		converted, err := c.Convert(a, b.Unit)
		if err != nil {
			return Quantity{}, Quantity{}, err
		}
		return converted, b, nil
	default:
		converted, err := c.Convert(b, a.Unit)
		if err != nil {
			return Quantity{}, Quantity{}, err
		}
		return a, converted, nil
	}
}

type unitPair struct {
	from, to Unit
}

var (
	celsiusOffset    = decimal.RequireFromString("273.15")
	fahrenheitOffset = decimal.RequireFromString("459.67")
	fahrenheitScale  = decimal.RequireFromString("1.8")
	fahrenheitFreeze = decimal.NewFromInt(32)
	five             = decimal.NewFromInt(5)
	nine             = decimal.NewFromInt(9)
)

type temperatureConversion func(c Context, v decimal.Decimal) decimal.Decimal

var temperatureConversions = map[unitPair]temperatureConversion{
	{Kelvin, Kelvin}:         sameTemperature,
	{Kelvin, Celsius}:        kelvinToCelsius,
	{Kelvin, Fahrenheit}:     kelvinToFahrenheit,
	{Celsius, Celsius}:       sameTemperature,
	{Celsius, Kelvin}:        celsiusToKelvin,
	{Celsius, Fahrenheit}:    celsiusToFahrenheit,
	{Fahrenheit, Fahrenheit}: sameTemperature,
	{Fahrenheit, Kelvin}:     fahrenheitToKelvin,
	{Fahrenheit, Celsius}:    fahrenheitToCelsius,
}

func sameTemperature(_ Context, v decimal.Decimal) decimal.Decimal {
	return v
}

func kelvinToCelsius(_ Context, v decimal.Decimal) decimal.Decimal {
	return v.Sub(celsiusOffset)
}

func kelvinToFahrenheit(_ Context, v decimal.Decimal) decimal.Decimal {
	return v.Mul(fahrenheitScale).Sub(fahrenheitOffset)
}

func celsiusToKelvin(_ Context, v decimal.Decimal) decimal.Decimal {
	return v.Add(celsiusOffset)
}

func celsiusToFahrenheit(_ Context, v decimal.Decimal) decimal.Decimal {
	return v.Mul(fahrenheitScale).Add(fahrenheitFreeze)
}

func fahrenheitToKelvin(c Context, v decimal.Decimal) decimal.Decimal {
	return quotient(v.Add(fahrenheitOffset).Mul(five), nine, c.DivisionPrecision)
}

func fahrenheitToCelsius(c Context, v decimal.Decimal) decimal.Decimal {
	return quotient(v.Sub(fahrenheitFreeze), fahrenheitScale, c.DivisionPrecision)
}

// quotient returns x / y rounded to keep at least digits significant digits
// and at least digits decimal places. y must not be zero.
func quotient(x, y decimal.Decimal, digits int32) decimal.Decimal {
	if x.IsZero() {
		return decimal.Zero
	}
	return x.DivRound(y, max(digits, digits-magnitude(x)+magnitude(y)))
}

// magnitude counts the digits of d before the decimal point. It is zero or
// negative for values below 1: 0.05 has magnitude -1.
func magnitude(d decimal.Decimal) int32 {
	return int32(d.NumDigits()) + d.Exponent()
}

// checkUnits rejects units outside the catalog before any lookup divides by
// their zero weight.
func checkUnits(op string, units ...Unit) error {
	for _, u := range units {
		if !u.Valid() {
			return uerrors.New("UNDEF-0002", map[string]any{
				"Operator": op,
				"Unit":     u.String(),
			})
		}
	}
	return nil
}
