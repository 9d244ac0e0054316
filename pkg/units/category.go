package units

import "fmt"

// Category is the dimension a unit measures. Conversions and most arithmetic
// are only legal between units of one category.
type Category int

const (
	Dimensionless Category = iota
	Time
	Length
	Area
	Volume
	Mass
	DigitalStorage
	Energy
	Power
	Pressure
	Speed
	Temperature

	numCategories
)

var categoryNames = [numCategories]string{
	Dimensionless:  "dimensionless",
	Time:           "time",
	Length:         "length",
	Area:           "area",
	Volume:         "volume",
	Mass:           "mass",
	DigitalStorage: "digital storage",
	Energy:         "energy",
	Power:          "power",
	Pressure:       "pressure",
	Speed:          "speed",
	Temperature:    "temperature",
}

// Categories returns every category in declaration order.
func Categories() []Category {
	all := make([]Category, numCategories)
	for i := range all {
		all[i] = Category(i)
	}
	return all
}

// String returns the lower-case name used in messages ("digital storage").
func (c Category) String() string {
	if c < 0 || c >= numCategories {
		return fmt.Sprintf("Category(%d)", int(c))
	}
	return categoryNames[c]
}
