package units

import (
	"sort"
	"strings"

	uerrors "github.com/sambeau/measure/pkg/units/errors"
	"golang.org/x/text/cases"
)

var (
	bySymbol = make(map[string]Unit, numUnits)
	byName   = make(map[string]Unit, numUnits)
	names    = make([]string, 0, numUnits)
)

func init() {
	for u := Unit(0); u < numUnits; u++ {
		def := unitTable[u]
		if def.symbol != "" {
			bySymbol[def.symbol] = u
		}
		byName[nameKey(def.name)] = u
		names = append(names, def.name)
	}
}

// nameKey folds case and drops separators, so "Square Kilometer",
// "square_kilometer" and "SquareKilometer" share a key.
func nameKey(s string) string {
	folded := cases.Fold().String(strings.TrimSpace(s))
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', '_', '-':
			return -1
		}
		return r
	}, folded)
}

// Lookup resolves a unit from its symbol ("km", case-sensitive so "b" and
// "B" stay distinct), its human name or its Go identifier (both
// case-insensitive).
func Lookup(name string) (Unit, bool) {
	if u, ok := bySymbol[strings.TrimSpace(name)]; ok {
		return u, true
	}
	u, ok := byName[nameKey(name)]
	return u, ok
}

// Parse is Lookup with an UnknownUnit error that suggests the closest name.
func Parse(name string) (Unit, error) {
	if u, ok := Lookup(name); ok {
		return u, nil
	}
	return NoUnit, uerrors.NewUnknownUnit(name, names)
}

// All returns every unit in catalog order.
func All() []Unit {
	all := make([]Unit, numUnits)
	for i := range all {
		all[i] = Unit(i)
	}
	return all
}

// InCategory returns the units of c ordered by ascending weight. Units of
// equal weight keep catalog order.
func InCategory(c Category) []Unit {
	var units []Unit
	for u := Unit(0); u < numUnits; u++ {
		if unitTable[u].category == c {
			units = append(units, u)
		}
	}
	sort.SliceStable(units, func(i, j int) bool {
		return units[i].Weight().LessThan(units[j].Weight())
	})
	return units
}
