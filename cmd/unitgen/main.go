// Command unitgen compiles the unit catalog (catalog.yaml) into the Go table
// behind package units. It runs from go:generate:
//
//	go run ../../cmd/unitgen -in catalog.yaml -out unit_table.go
package main

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"go/format"
	"go/token"
	"io"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// knownCategories lists the Category constants of package units in
// declaration order. The catalog must use the same names in the same order.
var knownCategories = []string{
	"dimensionless",
	"time",
	"length",
	"area",
	"volume",
	"mass",
	"digital storage",
	"energy",
	"power",
	"pressure",
	"speed",
	"temperature",
}

const (
	dimensionless = "dimensionless"
	temperature   = "temperature"
)

// Catalog is the parsed catalog.yaml.
type Catalog struct {
	Categories []CategoryEntry `yaml:"categories"`
}

// CategoryEntry holds the units of one category in catalog order.
type CategoryEntry struct {
	Name  string      `yaml:"name"`
	Units []UnitEntry `yaml:"units"`
}

// UnitEntry is one unit as written in the catalog.
type UnitEntry struct {
	Name    string `yaml:"name"`
	Symbol  string `yaml:"symbol"`
	Weight  string `yaml:"weight"`  // exact decimal literal
	Inexact bool   `yaml:"inexact"` // weight derives from a constant with no exact decimal form
}

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "[ERROR] %v\n", err)
		os.Exit(1)
	}
}

type generator struct {
	stdout io.Writer
	stderr io.Writer
}

// logInfo logs an info message
func (g *generator) logInfo(format string, args ...interface{}) {
	fmt.Fprintf(g.stdout, "[INFO] "+format+"\n", args...)
}

// logWarn logs a warning message
func (g *generator) logWarn(format string, args ...interface{}) {
	fmt.Fprintf(g.stderr, "[WARN] "+format+"\n", args...)
}

// run is the entry point, with I/O injected for tests.
func run(args []string, stdout, stderr io.Writer) error {
	flags := flag.NewFlagSet("unitgen", flag.ContinueOnError)
	flags.SetOutput(io.Discard)

	var (
		in      = flags.String("in", "catalog.yaml", "Path to the unit catalog")
		out     = flags.String("out", "unit_table.go", "Path of the generated Go file")
		pkg     = flags.String("package", "units", "Package name of the generated file")
		verbose = flags.Bool("v", false, "List inexact weights")
	)

	if err := flags.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			printUsage(stdout)
			return nil
		}
		printUsage(stderr)
		return err
	}

	g := &generator{stdout: stdout, stderr: stderr}

	data, err := os.ReadFile(*in)
	if err != nil {
		return fmt.Errorf("reading catalog: %w", err)
	}

	catalog, err := parseCatalog(data)
	if err != nil {
		return fmt.Errorf("%s: %w", *in, err)
	}

	src, err := render(catalog, *pkg, filepath.Base(*in))
	if err != nil {
		return err
	}

	if err := os.WriteFile(*out, src, 0o644); err != nil {
		return fmt.Errorf("writing table: %w", err)
	}

	units, inexact := 0, 0
	for _, c := range catalog.Categories {
		for _, u := range c.Units {
			units++
			if u.Inexact {
				inexact++
				if *verbose {
					g.logWarn("%s (%s): inexact weight %s", u.Name, c.Name, u.Weight)
				}
			}
		}
	}
	g.logInfo("wrote %d units in %d categories to %s (%d inexact weights)", units, len(catalog.Categories), *out, inexact)

	return nil
}

func printUsage(w io.Writer) {
	fmt.Fprintf(w, `unitgen - compile the unit catalog into Go

Usage:
  unitgen [options]

Options:
  -in PATH         Unit catalog (default: catalog.yaml)
  -out PATH        Generated file (default: unit_table.go)
  -package NAME    Package name (default: units)
  -v               List inexact weights
  -h, -help        Show this help
`)
}

// parseCatalog decodes and validates catalog YAML.
func parseCatalog(data []byte) (*Catalog, error) {
	var catalog Catalog
	if err := yaml.Unmarshal(data, &catalog); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}
	if err := validate(&catalog); err != nil {
		return nil, err
	}
	return &catalog, nil
}

// validate checks the catalog for errors, reporting all of them at once.
func validate(catalog *Catalog) error {
	var errs []string

	if len(catalog.Categories) != len(knownCategories) {
		errs = append(errs, fmt.Sprintf("expected %d categories, found %d", len(knownCategories), len(catalog.Categories)))
	}

	names := make(map[string]bool)
	symbols := make(map[string]string)
	idents := make(map[string]string)
	dimensionlessBase := 0

	for i, c := range catalog.Categories {
		if i < len(knownCategories) && c.Name != knownCategories[i] {
			errs = append(errs, fmt.Sprintf("categories[%d]: expected %q, found %q", i, knownCategories[i], c.Name))
		}
		if len(c.Units) == 0 {
			errs = append(errs, fmt.Sprintf("%s: no units", c.Name))
		}

		for j, u := range c.Units {
			where := fmt.Sprintf("%s[%d]", c.Name, j)
			if u.Name == "" {
				errs = append(errs, where+": name is required")
				continue
			}
			where = fmt.Sprintf("%s %q", c.Name, u.Name)

			if names[u.Name] {
				errs = append(errs, where+": duplicate name")
			}
			names[u.Name] = true

			ident := identifier(u.Name)
			if !token.IsIdentifier(ident) {
				errs = append(errs, fmt.Sprintf("%s: %q is not a Go identifier", where, ident))
			} else if prev, ok := idents[ident]; ok {
				errs = append(errs, fmt.Sprintf("%s: identifier %s already used by %q", where, ident, prev))
			}
			idents[ident] = u.Name

			if u.Symbol != "" {
				if prev, ok := symbols[u.Symbol]; ok {
					errs = append(errs, fmt.Sprintf("%s: symbol %q already used by %q", where, u.Symbol, prev))
				}
				symbols[u.Symbol] = u.Name
			}

			w, err := decimal.NewFromString(u.Weight)
			if err != nil {
				errs = append(errs, fmt.Sprintf("%s: weight %q is not a decimal", where, u.Weight))
				continue
			}
			switch {
			case c.Name == temperature && !w.IsZero():
				errs = append(errs, fmt.Sprintf("%s: temperature weight must be 0, found %s", where, u.Weight))
			case c.Name != temperature && !w.IsPositive():
				errs = append(errs, fmt.Sprintf("%s: weight must be positive, found %s", where, u.Weight))
			}
			if c.Name == dimensionless && w.Equal(decimal.NewFromInt(1)) {
				dimensionlessBase++
			}
		}

		if c.Name == dimensionless && (len(c.Units) != 1 || dimensionlessBase != 1) {
			errs = append(errs, "dimensionless: expected exactly one unit of weight 1")
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("catalog errors:\n  - %s", strings.Join(errs, "\n  - "))
	}

	return nil
}

// identifier derives the Go name of a unit or category from its human
// name: "square kilometer" becomes SquareKilometer.
func identifier(name string) string {
	title := cases.Title(language.English).String(name)
	return strings.Join(strings.Fields(title), "")
}

type tableData struct {
	Source     string
	Package    string
	Categories []categoryData
}

type categoryData struct {
	Ident string
	Units []unitData
}

type unitData struct {
	Ident   string
	Name    string
	Symbol  string
	Weight  string
	Inexact bool
}

var tableTemplate = template.Must(template.New("table").Parse(`// Code generated by unitgen from {{.Source}}. DO NOT EDIT.

package {{.Package}}

import "github.com/shopspring/decimal"

const (
{{- range $i, $c := .Categories}}
{{- if $i}}

	// {{$c.Ident}}
{{- end}}
{{- range $j, $u := $c.Units}}
	{{$u.Ident}}{{if and (eq $i 0) (eq $j 0)}} Unit = iota{{end}}
{{- end}}
{{- end}}

	numUnits
)

var unitTable = [numUnits]unitDef{
{{- range $i, $c := .Categories}}
{{- if $i}}
{{end}}
{{- range $c.Units}}
	{{.Ident}}: {name: {{printf "%q" .Name}}, {{if .Symbol}}symbol: {{printf "%q" .Symbol}}, {{end}}category: {{$c.Ident}}, weight: decimal.RequireFromString({{printf "%q" .Weight}})},{{if .Inexact}} // inexact{{end}}
{{- end}}
{{- end}}
}
`))

// render produces the gofmt-formatted table source.
func render(catalog *Catalog, pkg, source string) ([]byte, error) {
	data := tableData{Source: source, Package: pkg}
	for _, c := range catalog.Categories {
		cd := categoryData{Ident: identifier(c.Name)}
		for _, u := range c.Units {
			cd.Units = append(cd.Units, unitData{
				Ident:   identifier(u.Name),
				Name:    u.Name,
				Symbol:  u.Symbol,
				Weight:  u.Weight,
				Inexact: u.Inexact,
			})
		}
		data.Categories = append(data.Categories, cd)
	}

	var buf bytes.Buffer
	if err := tableTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("rendering table: %w", err)
	}

	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("formatting table: %w", err)
	}
	return src, nil
}
