package units

import (
	"errors"

	uerrors "github.com/sambeau/measure/pkg/units/errors"
	"github.com/shopspring/decimal"
)

// Operator names used in error messages.
const (
	opAdd      = "add"
	opSubtract = "subtract"
	opMultiply = "multiply"
	opDivide   = "divide"
	opModulo   = "modulo"
	opPow      = "pow"
)

// Add returns a + b using DefaultContext.
func Add(a, b Quantity) (Quantity, error) { return DefaultContext.Add(a, b) }

// Subtract returns a - b using DefaultContext.
func Subtract(a, b Quantity) (Quantity, error) { return DefaultContext.Subtract(a, b) }

// Multiply returns a × b using DefaultContext.
func Multiply(a, b Quantity) (Quantity, error) { return DefaultContext.Multiply(a, b) }

// Divide returns a ÷ b using DefaultContext.
func Divide(a, b Quantity) (Quantity, error) { return DefaultContext.Divide(a, b) }

// Modulo returns a % b using DefaultContext.
func Modulo(a, b Quantity) (Quantity, error) { return DefaultContext.Modulo(a, b) }

// Pow returns base raised to exponent using DefaultContext.
func Pow(base, exponent Quantity) (Quantity, error) { return DefaultContext.Pow(base, exponent) }

// Add sums two quantities of one category. The result is expressed in the
// lower-weight unit of the two (1 km + 500 m = 1500 m).
func (c Context) Add(a, b Quantity) (Quantity, error) {
	return c.combineSameCategory(opAdd, a, b, decimal.Decimal.Add)
}

// Subtract is Add with the second operand negated.
func (c Context) Subtract(a, b Quantity) (Quantity, error) {
	return c.combineSameCategory(opSubtract, a, b, decimal.Decimal.Sub)
}

// Modulo returns the remainder of a divided by b, which must share a
// category. The remainder takes the sign of a.
func (c Context) Modulo(a, b Quantity) (Quantity, error) {
	return c.combineSameCategory(opModulo, a, b, decimal.Decimal.Mod)
}

// combineSameCategory implements the operators that need both operands in
// one non-temperature category, expressed in the lowest unit.
func (c Context) combineSameCategory(op string, a, b Quantity, combine func(x, y decimal.Decimal) decimal.Decimal) (Quantity, error) {
	if err := checkUnits(op, a.Unit, b.Unit); err != nil {
		return Quantity{}, err
	}
	if isTemperature(a, b) {
		return Quantity{}, unsupported(op, a, b)
	}
	if a.Category() != b.Category() {
		return Quantity{}, uerrors.New("OP-0001", operandData(op, a, b))
	}

	left, right, err := c.ConvertToLowest(a, b)
	if err != nil {
		return Quantity{}, err
	}
	if op == opModulo && right.Value.IsZero() {
		return Quantity{}, divisionByZero(op, a)
	}

	return New(combine(left.Value, right.Value), left.Unit), nil
}

// Multiply scales a quantity by a dimensionless factor. At most one operand
// may carry a unit; unit × unit would need a derived unit and is rejected.
func (c Context) Multiply(a, b Quantity) (Quantity, error) {
	if err := checkUnits(opMultiply, a.Unit, b.Unit); err != nil {
		return Quantity{}, err
	}

	switch {
	case isTemperature(a, b):
		return Quantity{}, unsupported(opMultiply, a, b)
	case a.Unit == NoUnit && b.Unit == NoUnit:
		return New(a.Value.Mul(b.Value), NoUnit), nil
	case a.Unit == NoUnit:
		return New(a.Value.Mul(b.Value), b.Unit), nil
	case b.Unit == NoUnit:
		return New(a.Value.Mul(b.Value), a.Unit), nil
	default:
		return Quantity{}, unsupported(opMultiply, a, b)
	}
}

// Divide supports three shapes: scalar ÷ scalar, quantity ÷ scalar (keeps
// the quantity's unit) and quantity ÷ quantity of one category (a
// dimensionless ratio, 10 m ÷ 2 m = 5).
func (c Context) Divide(a, b Quantity) (Quantity, error) {
	if err := checkUnits(opDivide, a.Unit, b.Unit); err != nil {
		return Quantity{}, err
	}

	switch {
	case isTemperature(a, b):
		return Quantity{}, unsupported(opDivide, a, b)
	case b.Unit == NoUnit:
		if b.Value.IsZero() {
			return Quantity{}, divisionByZero(opDivide, a)
		}
		return New(quotient(a.Value, b.Value, c.DivisionPrecision), a.Unit), nil
	case a.Category() == b.Category():
		left, right, err := c.ConvertToLowest(a, b)
		if err != nil {
			return Quantity{}, err
		}
		if right.Value.IsZero() {
			return Quantity{}, divisionByZero(opDivide, a)
		}
		return New(quotient(left.Value, right.Value, c.DivisionPrecision), NoUnit), nil
	default:
		return Quantity{}, unsupported(opDivide, a, b)
	}
}

// maxPowDigits bounds the digits a power may carry in its coefficient and
// exponent together.
const maxPowDigits = 10_000

var (
	one = decimal.NewFromInt(1)
	two = decimal.NewFromInt(2)

	errPowOutOfRange = errors.New("result out of range")
)

// Pow raises base to a dimensionless exponent. The result keeps the base's
// unit whatever the exponent: squaring a length is still a length.
func (c Context) Pow(base, exponent Quantity) (Quantity, error) {
	if err := checkUnits(opPow, base.Unit, exponent.Unit); err != nil {
		return Quantity{}, err
	}
	if isTemperature(base, exponent) || exponent.Unit != NoUnit {
		return Quantity{}, unsupported(opPow, base, exponent)
	}

	value, err := c.pow(base.Value, exponent.Value)
	if err != nil {
		return Quantity{}, uerrors.New("OP-0004", map[string]any{
			"Base":     base.String(),
			"Exponent": exponent.Value.String(),
			"Reason":   err.Error(),
		})
	}
	return New(value, base.Unit), nil
}

func (c Context) pow(x, y decimal.Decimal) (decimal.Decimal, error) {
	switch {
	case x.IsZero() || y.IsZero():
		return x.PowWithPrecision(y, c.PowPrecision)
	case x.Equal(one):
		return one, nil
	case x.Equal(one.Neg()) && y.IsInteger():
		if y.Mod(two).IsZero() {
			return one, nil
		}
		return x, nil
	case powTooLarge(x, y):
		return decimal.Decimal{}, errPowOutOfRange
	case y.IsNegative():
		p, err := x.PowWithPrecision(y.Neg(), c.powPlaces(x))
		if err != nil {
			return decimal.Decimal{}, err
		}
		return quotient(one, p, c.PowPrecision), nil
	default:
		return x.PowWithPrecision(y, c.powPlaces(x))
	}
}

// powTooLarge estimates the digits of x^y from the coefficient and exponent
// of x. Exponents below 1 count as 1.
func powTooLarge(x, y decimal.Decimal) bool {
	exp := int64(x.Exponent())
	if exp < 0 {
		exp = -exp
	}
	perFactor := decimal.NewFromInt(int64(x.NumDigits()) + exp)
	return decimal.Max(y.Abs(), one).Mul(perFactor).GreaterThan(decimal.NewFromInt(maxPowDigits))
}

// powPlaces widens PowPrecision by the leading zeros of a base below 1, so
// the decimal places of a fractional power cover its significant digits.
func (c Context) powPlaces(x decimal.Decimal) int32 {
	if m := magnitude(x); m <= 0 {
		return c.PowPrecision + 1 - m
	}
	return c.PowPrecision
}

func isTemperature(a, b Quantity) bool {
	return a.Category() == Temperature || b.Category() == Temperature
}

func operandData(op string, a, b Quantity) map[string]any {
	return map[string]any{
		"Operator":      op,
		"Left":          a.Unit.String(),
		"Right":         b.Unit.String(),
		"LeftCategory":  a.Category().String(),
		"RightCategory": b.Category().String(),
		"Temperature":   isTemperature(a, b),
	}
}

func unsupported(op string, a, b Quantity) error {
	return uerrors.New("OP-0002", operandData(op, a, b))
}

func divisionByZero(op string, a Quantity) error {
	return uerrors.New("OP-0003", map[string]any{
		"Operator": op,
		"Left":     a.String(),
	})
}
