package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// validCatalog returns the smallest catalog that passes validation.
func validCatalog() *Catalog {
	catalog := &Catalog{}
	for _, name := range knownCategories {
		c := CategoryEntry{Name: name}
		switch name {
		case dimensionless:
			c.Units = []UnitEntry{{Name: "no unit", Weight: "1"}}
		case temperature:
			c.Units = []UnitEntry{{Name: "kelvin", Symbol: "K", Weight: "0"}}
		case "length":
			c.Units = []UnitEntry{
				{Name: "millimeter", Symbol: "mm", Weight: "1"},
				{Name: "meter", Symbol: "m", Weight: "1000"},
			}
		default:
			c.Units = []UnitEntry{{Name: "base " + name, Weight: "1"}}
		}
		catalog.Categories = append(catalog.Categories, c)
	}
	return catalog
}

func TestRunHelp(t *testing.T) {
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	if err := run([]string{"-help"}, stdout, stderr); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if !strings.Contains(stdout.String(), "unitgen - compile the unit catalog") {
		t.Errorf("expected help output, got %q", stdout.String())
	}
}

func TestRunInvalidFlag(t *testing.T) {
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	if err := run([]string{"-bogus"}, stdout, stderr); err == nil {
		t.Error("expected error for invalid flag")
	}
	if !strings.Contains(stderr.String(), "Usage:") {
		t.Errorf("expected usage on stderr, got %q", stderr.String())
	}
}

func TestRunMissingCatalog(t *testing.T) {
	dir := t.TempDir()
	err := run([]string{"-in", filepath.Join(dir, "nope.yaml"), "-out", filepath.Join(dir, "out.go")}, &bytes.Buffer{}, &bytes.Buffer{})
	if err == nil || !strings.Contains(err.Error(), "reading catalog") {
		t.Errorf("expected read error, got %v", err)
	}
}

func TestRunRejectsInvalidCatalog(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "catalog.yaml")
	out := filepath.Join(dir, "out.go")
	if err := os.WriteFile(in, []byte("categories:\n  - name: time\n    units:\n      - {name: second, weight: \"x\"}\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	err := run([]string{"-in", in, "-out", out}, &bytes.Buffer{}, &bytes.Buffer{})
	if err == nil {
		t.Fatal("expected validation error")
	}
	if !strings.Contains(err.Error(), `time "second": weight "x" is not a decimal`) {
		t.Errorf("unexpected error: %v", err)
	}
	if _, err := os.Stat(out); !os.IsNotExist(err) {
		t.Error("no table should be written for an invalid catalog")
	}
}

// TestGeneratedTableIsCurrent fails when pkg/units/unit_table.go was edited by
// hand or catalog.yaml changed without go generate.
func TestGeneratedTableIsCurrent(t *testing.T) {
	out := filepath.Join(t.TempDir(), "unit_table.go")
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	err := run([]string{"-in", "../../pkg/units/catalog.yaml", "-out", out, "-v"}, stdout, stderr)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	want, err := os.ReadFile("../../pkg/units/unit_table.go")
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got, want) {
		t.Error("pkg/units/unit_table.go is stale; run go generate ./pkg/units")
	}

	if !strings.Contains(stdout.String(), "[INFO] wrote 147 units in 12 categories") {
		t.Errorf("unexpected log output: %q", stdout.String())
	}
	if !strings.Contains(stdout.String(), "(3 inexact weights)") {
		t.Errorf("expected inexact count, got %q", stdout.String())
	}
	if !strings.Contains(stderr.String(), "[WARN] pounds per square inch (pressure): inexact weight 6894.757293168361") {
		t.Errorf("expected inexact weights listed, got %q", stderr.String())
	}
}

func TestRender(t *testing.T) {
	catalog := validCatalog()
	catalog.Categories[2].Units[1].Inexact = true

	src, err := render(catalog, "measures", "small.yaml")
	if err != nil {
		t.Fatalf("render() error: %v", err)
	}
	out := string(src)

	expected := []string{
		"// Code generated by unitgen from small.yaml. DO NOT EDIT.",
		"package measures",
		"\tNoUnit Unit = iota\n",
		"\t// DigitalStorage\n\tBaseDigitalStorage\n",
		"\tnumUnits\n)",
		`{name: "no unit", category: Dimensionless, weight: decimal.RequireFromString("1")},`,
		`{name: "millimeter", symbol: "mm", category: Length, weight: decimal.RequireFromString("1")},`,
		`{name: "meter", symbol: "m", category: Length, weight: decimal.RequireFromString("1000")}, // inexact`,
		`Kelvin: {name: "kelvin", symbol: "K", category: Temperature, weight: decimal.RequireFromString("0")},`,
	}
	for _, want := range expected {
		if !strings.Contains(out, want) {
			t.Errorf("expected output to contain %q\n%s", want, out)
		}
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *Catalog)
		errMsg string
	}{
		{
			name:   "duplicate name",
			mutate: func(c *Catalog) { c.Categories[2].Units[1].Name = "millimeter" },
			errMsg: `length "millimeter": duplicate name`,
		},
		{
			name:   "duplicate symbol",
			mutate: func(c *Catalog) { c.Categories[2].Units[1].Symbol = "mm" },
			errMsg: `symbol "mm" already used by "millimeter"`,
		},
		{
			name:   "missing name",
			mutate: func(c *Catalog) { c.Categories[2].Units[1].Name = "" },
			errMsg: "length[1]: name is required",
		},
		{
			name:   "bad identifier",
			mutate: func(c *Catalog) { c.Categories[2].Units[1].Name = "2nd meter" },
			errMsg: "is not a Go identifier",
		},
		{
			name:   "weight not a decimal",
			mutate: func(c *Catalog) { c.Categories[2].Units[1].Weight = "1/3" },
			errMsg: `weight "1/3" is not a decimal`,
		},
		{
			name:   "zero weight",
			mutate: func(c *Catalog) { c.Categories[2].Units[1].Weight = "0" },
			errMsg: "weight must be positive",
		},
		{
			name:   "negative weight",
			mutate: func(c *Catalog) { c.Categories[2].Units[1].Weight = "-5" },
			errMsg: "weight must be positive",
		},
		{
			name:   "temperature weight",
			mutate: func(c *Catalog) { c.Categories[11].Units[0].Weight = "1" },
			errMsg: "temperature weight must be 0",
		},
		{
			name:   "two dimensionless units",
			mutate: func(c *Catalog) { c.Categories[0].Units = append(c.Categories[0].Units, UnitEntry{Name: "percent", Weight: "0.01"}) },
			errMsg: "dimensionless: expected exactly one unit of weight 1",
		},
		{
			name:   "dimensionless weight",
			mutate: func(c *Catalog) { c.Categories[0].Units[0].Weight = "2" },
			errMsg: "dimensionless: expected exactly one unit of weight 1",
		},
		{
			name:   "empty category",
			mutate: func(c *Catalog) { c.Categories[3].Units = nil },
			errMsg: "area: no units",
		},
		{
			name:   "unknown category",
			mutate: func(c *Catalog) { c.Categories[4].Name = "luminosity" },
			errMsg: `categories[4]: expected "volume", found "luminosity"`,
		},
		{
			name:   "missing category",
			mutate: func(c *Catalog) { c.Categories = c.Categories[:11] },
			errMsg: "expected 12 categories, found 11",
		},
	}

	if err := validate(validCatalog()); err != nil {
		t.Fatalf("baseline catalog should be valid: %v", err)
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			catalog := validCatalog()
			tt.mutate(catalog)

			err := validate(catalog)
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.errMsg) {
				t.Errorf("expected error containing %q, got %q", tt.errMsg, err.Error())
			}
		})
	}
}

func TestIdentifier(t *testing.T) {
	tests := []struct {
		name     string
		expected string
	}{
		{"meter", "Meter"},
		{"no unit", "NoUnit"},
		{"square kilometer", "SquareKilometer"},
		{"british thermal units per minute", "BritishThermalUnitsPerMinute"},
		{"digital storage", "DigitalStorage"},
		{"inch of mercury", "InchOfMercury"},
	}

	for _, tt := range tests {
		if got := identifier(tt.name); got != tt.expected {
			t.Errorf("identifier(%q) = %q, want %q", tt.name, got, tt.expected)
		}
	}
}
