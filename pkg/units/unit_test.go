package units

import (
	"errors"
	"strings"
	"testing"

	uerrors "github.com/sambeau/measure/pkg/units/errors"
)

func TestCategoryCounts(t *testing.T) {
	expected := map[Category]int{
		Dimensionless:  1,
		Time:           14,
		Length:         12,
		Area:           13,
		Volume:         21,
		Mass:           9,
		DigitalStorage: 34,
		Energy:         16,
		Power:          11,
		Pressure:       8,
		Speed:          5,
		Temperature:    3,
	}

	if got := len(Categories()); got != len(expected) {
		t.Fatalf("expected %d categories, got %d", len(expected), got)
	}

	total := 0
	for _, c := range Categories() {
		got := len(InCategory(c))
		if got != expected[c] {
			t.Errorf("%s: expected %d units, got %d", c, expected[c], got)
		}
		total += got
	}
	if total != len(All()) {
		t.Errorf("categories hold %d units, catalog has %d", total, len(All()))
	}
}

func TestUnitWeights(t *testing.T) {
	for _, u := range All() {
		w := u.Weight()
		if u.Category() == Temperature {
			if !w.IsZero() {
				t.Errorf("%s: temperature weight should be 0, got %s", u, w)
			}
			continue
		}
		if !w.IsPositive() {
			t.Errorf("%s: weight should be positive, got %s", u, w)
		}
	}

	// every multiplicative category has a base unit
	for _, c := range Categories() {
		if c == Temperature {
			continue
		}
		found := false
		for _, u := range InCategory(c) {
			if u.Weight().Equal(dec("1")) {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("%s: no unit of weight 1", c)
		}
	}

	if !NoUnit.Weight().Equal(dec("1")) || NoUnit.Category() != Dimensionless {
		t.Errorf("NoUnit should be the dimensionless unit of weight 1")
	}
}

func TestUnitNamesAndSymbolsAreUnique(t *testing.T) {
	names := make(map[string]Unit)
	symbols := make(map[string]Unit)

	for _, u := range All() {
		if prev, ok := names[u.String()]; ok {
			t.Errorf("name %q used by %d and %d", u.String(), prev, u)
		}
		names[u.String()] = u

		if u.Symbol() == "" {
			continue
		}
		if prev, ok := symbols[u.Symbol()]; ok {
			t.Errorf("symbol %q used by %s and %s", u.Symbol(), prev, u)
		}
		symbols[u.Symbol()] = u
	}
}

func TestUnitAccessors(t *testing.T) {
	tests := []struct {
		unit     Unit
		name     string
		symbol   string
		category Category
		weight   string
	}{
		{NoUnit, "no unit", "", Dimensionless, "1"},
		{Kilometer, "kilometer", "km", Length, "1000000"},
		{SquareMile, "square mile", "mi²", Area, "2589988110336"},
		{Cup, "cup", "", Volume, "236588.2365"},
		{Pound, "pound", "lb", Mass, "453.59237"},
		{Bit, "bit", "b", DigitalStorage, "1"},
		{Byte, "byte", "B", DigitalStorage, "8"},
		{Yobibyte, "yobibyte", "YiB", DigitalStorage, "9671406556917033397649408"},
		{NewtonMeter, "newton meter", "N·m", Energy, "1"},
		{Horsepower, "horsepower", "hp", Power, "745.69987158227022"},
		{Bar, "bar", "", Pressure, "100000"},
		{Knot, "knot", "kn", Speed, "1.852"},
		{Celsius, "celsius", "°C", Temperature, "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.unit.String(); got != tt.name {
				t.Errorf("String() = %q, want %q", got, tt.name)
			}
			if got := tt.unit.Symbol(); got != tt.symbol {
				t.Errorf("Symbol() = %q, want %q", got, tt.symbol)
			}
			if got := tt.unit.Category(); got != tt.category {
				t.Errorf("Category() = %s, want %s", got, tt.category)
			}
			if got := tt.unit.Weight(); !got.Equal(dec(tt.weight)) {
				t.Errorf("Weight() = %s, want %s", got, tt.weight)
			}
		})
	}
}

func TestInvalidUnit(t *testing.T) {
	for _, u := range []Unit{-1, numUnits, numUnits + 100} {
		if u.Valid() {
			t.Errorf("%d should not be valid", u)
		}
		if u.Symbol() != "" {
			t.Errorf("%d: expected no symbol, got %q", u, u.Symbol())
		}
		if !u.Weight().IsZero() {
			t.Errorf("%d: expected zero weight, got %s", u, u.Weight())
		}
		if c := u.Category(); c == Dimensionless || c.String() != "Category(12)" {
			t.Errorf("%d: expected no category, got %s", u, c)
		}
	}

	if got := Unit(-1).String(); got != "Unit(-1)" {
		t.Errorf("String() = %q", got)
	}
	if got := Category(-2).String(); got != "Category(-2)" {
		t.Errorf("String() = %q", got)
	}
}

func TestLookup(t *testing.T) {
	tests := []struct {
		input    string
		expected Unit
	}{
		// symbols
		{"km", Kilometer},
		{" m ", Meter},
		{"b", Bit},
		{"B", Byte},
		{"Mb", Megabit},
		{"MB", Megabyte},
		{"mbar", Millibar},
		{"°C", Celsius},
		{"fl oz", FluidOunce},
		{"N·m", NewtonMeter},
		{"BTU/h", BritishThermalUnitsPerHour},
		{"km/h", KilometersPerHour},
		// names
		{"kilometer", Kilometer},
		{"Kilometer", Kilometer},
		{"KILOMETER", Kilometer},
		{"square kilometer", SquareKilometer},
		{"Square Kilometer", SquareKilometer},
		{"square_kilometer", SquareKilometer},
		{"square-kilometer", SquareKilometer},
		{"no unit", NoUnit},
		{"torr", Torr},
		{"cup", Cup},
		// identifiers
		{"SquareKilometer", SquareKilometer},
		{"NauticalMile", NauticalMile},
		{"BritishThermalUnitsPerMinute", BritishThermalUnitsPerMinute},
		{"NoUnit", NoUnit},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := Lookup(tt.input)
			if !ok {
				t.Fatalf("Lookup(%q) found nothing", tt.input)
			}
			if got != tt.expected {
				t.Errorf("Lookup(%q) = %s, want %s", tt.input, got, tt.expected)
			}
		})
	}
}

func TestLookupEveryUnit(t *testing.T) {
	for _, u := range All() {
		if got, ok := Lookup(u.String()); !ok || got != u {
			t.Errorf("Lookup(%q) = %s, %v", u.String(), got, ok)
		}
		if u.Symbol() == "" {
			continue
		}
		if got, ok := Lookup(u.Symbol()); !ok || got != u {
			t.Errorf("Lookup(%q) = %s, %v", u.Symbol(), got, ok)
		}
	}
}

func TestLookupUnknown(t *testing.T) {
	for _, input := range []string{"", "parsec", "kilometre", "mb", "kilo meter s"} {
		if u, ok := Lookup(input); ok {
			t.Errorf("Lookup(%q) = %s, want nothing", input, u)
		}
	}
}

func TestParse(t *testing.T) {
	u, err := Parse("Fahrenheit")
	if err != nil || u != Fahrenheit {
		t.Fatalf("Parse(Fahrenheit) = %s, %v", u, err)
	}

	_, err = Parse("kilometr")
	if !errors.Is(err, uerrors.ErrUnknownUnit) {
		t.Fatalf("expected unknown unit error, got %v", err)
	}
	if !strings.Contains(err.Error(), "Did you mean `kilometer`?") {
		t.Errorf("expected suggestion, got %q", err.Error())
	}

	_, err = Parse("parsec")
	if err == nil || err.Error() != "unknown unit 'parsec'" {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestInCategoryOrdering(t *testing.T) {
	for _, c := range Categories() {
		units := InCategory(c)
		for i := 1; i < len(units); i++ {
			if units[i].Weight().LessThan(units[i-1].Weight()) {
				t.Errorf("%s: %s listed after heavier %s", c, units[i], units[i-1])
			}
			if units[i].Category() != c {
				t.Errorf("%s: %s belongs to %s", c, units[i], units[i].Category())
			}
		}
	}

	length := InCategory(Length)
	if length[0] != Millimeter || length[len(length)-1] != LightYear {
		t.Errorf("length runs from %s to %s", length[0], length[len(length)-1])
	}

	energy := InCategory(Energy)
	if energy[1] != Joule || energy[2] != NewtonMeter {
		t.Errorf("equal weights should keep catalog order, got %v", energy[:3])
	}

	temps := InCategory(Temperature)
	if temps[0] != Kelvin || temps[1] != Celsius || temps[2] != Fahrenheit {
		t.Errorf("temperature order = %v", temps)
	}

	if got := InCategory(Category(42)); len(got) != 0 {
		t.Errorf("expected no units for an unknown category, got %v", got)
	}
}

func TestQuantityString(t *testing.T) {
	tests := []struct {
		q        Quantity
		expected string
	}{
		{q("42", NoUnit), "42"},
		{q("1.50", Kilometer), "1.5 km"},
		{q("-3", Celsius), "-3 °C"},
		{q("2", Cup), "2 cup"},
		{q("0.001", Gram), "0.001 g"},
	}

	for _, tt := range tests {
		if got := tt.q.String(); got != tt.expected {
			t.Errorf("String() = %q, want %q", got, tt.expected)
		}
	}
}

func TestNewFromString(t *testing.T) {
	got, err := NewFromString("1.50", Meter)
	testExpectedQuantity(t, "1.50 m", got, err, q("1.5", Meter))

	got, err = NewFromString("-2e3", Gram)
	testExpectedQuantity(t, "-2e3 g", got, err, q("-2000", Gram))

	if _, err := NewFromString("ten", Meter); err == nil || !strings.Contains(err.Error(), `invalid quantity "ten"`) {
		t.Errorf("expected parse error, got %v", err)
	}
}

func TestQuantityEqual(t *testing.T) {
	if !q("1.5", Meter).Equal(q("1.50", Meter)) {
		t.Error("expected 1.5 m to equal 1.50 m")
	}
	if q("1000", Meter).Equal(q("1", Kilometer)) {
		t.Error("Equal compares units, not magnitudes")
	}
	if q("1", Joule).Equal(q("1", NewtonMeter)) {
		t.Error("synonyms are distinct units")
	}
	if q("1", Meter).Category() != Length {
		t.Error("expected length")
	}
}
