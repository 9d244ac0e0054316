// Package errors provides structured error types for unit conversion and
// unit-aware arithmetic.
//
// Every error is a UnitError built from a catalog entry: a Kind that places it
// in the taxonomy, a stable code (e.g. "OP-0002") and a message template
// rendered with the offending units. Evaluators can surface the message
// verbatim, branch on the Kind with errors.Is, or serialize the whole error.
package errors

import (
	"bytes"
	"encoding/json"
	"sort"
	"strings"
	"text/template"

	"github.com/agnivade/levenshtein"
)

// Kind places an error in the taxonomy.
type Kind string

const (
	KindCategoryMismatch      Kind = "category mismatch"      // Units measure different things
	KindUnsupportedOperation  Kind = "unsupported operation"  // Operator not defined for these units
	KindUnsupportedConversion Kind = "unsupported conversion" // No conversion rule for the unit pair
	KindDivisionByZero        Kind = "division by zero"       // Zero divisor in divide or modulo
	KindInvalidOperand        Kind = "invalid operand"        // Result has no decimal value
	KindUnknownUnit           Kind = "unknown unit"           // Name does not resolve to a unit
)

// UnitError represents any error from the units package.
type UnitError struct {
	Kind    Kind           `json:"kind"`            // Taxonomy entry
	Code    string         `json:"code"`            // Error code (e.g., "OP-0001")
	Message string         `json:"message"`         // Human-readable message
	Hints   []string       `json:"hints,omitempty"` // Suggestions for fixing
	Data    map[string]any `json:"data,omitempty"`  // Template variables
}

// Sentinels for errors.Is. They match any UnitError of the same Kind.
var (
	ErrCategoryMismatch      = &UnitError{Kind: KindCategoryMismatch}
	ErrUnsupportedOperation  = &UnitError{Kind: KindUnsupportedOperation}
	ErrUnsupportedConversion = &UnitError{Kind: KindUnsupportedConversion}
	ErrDivisionByZero        = &UnitError{Kind: KindDivisionByZero}
	ErrInvalidOperand        = &UnitError{Kind: KindInvalidOperand}
	ErrUnknownUnit           = &UnitError{Kind: KindUnknownUnit}
)

// Error implements the error interface.
func (e *UnitError) Error() string {
	var sb strings.Builder

	if e.Message != "" {
		sb.WriteString(e.Message)
	} else {
		sb.WriteString(string(e.Kind))
	}

	for _, hint := range e.Hints {
		sb.WriteString("\n  ")
		sb.WriteString(hint)
	}

	return sb.String()
}

// Is reports whether target is a UnitError of the same Kind.
func (e *UnitError) Is(target error) bool {
	t, ok := target.(*UnitError)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

// ToJSON returns the error as JSON bytes.
func (e *UnitError) ToJSON() ([]byte, error) {
	return json.Marshal(e)
}

// ErrorDef defines an error in the catalog.
type ErrorDef struct {
	Kind     Kind     // Taxonomy entry
	Template string   // Message template with {{.placeholders}}
	Hints    []string // Hint templates (may use {{.placeholders}})
}

// ErrorCatalog maps error codes to their definitions.
var ErrorCatalog = map[string]ErrorDef{
	// ========================================
	// Conversion errors (CONV-0xxx)
	// ========================================
	"CONV-0001": {
		Kind:     KindCategoryMismatch,
		Template: "cannot convert {{.From}} to {{.To}}: {{.FromCategory}} is not {{.ToCategory}}",
	},
	"CONV-0002": {
		Kind:     KindUnsupportedConversion,
		Template: "error converting temperature {{.From}} to {{.To}}",
	},

	// ========================================
	// Operator errors (OP-0xxx)
	// ========================================
	"OP-0001": {
		Kind:     KindCategoryMismatch,
		Template: "cannot {{.Operator}} {{.Left}} and {{.Right}}: {{.LeftCategory}} is not {{.RightCategory}}",
		Hints:    []string{"convert one side first so both operands measure {{.LeftCategory}}"},
	},
	"OP-0002": {
		Kind:     KindUnsupportedOperation,
		Template: "cannot {{.Operator}} {{.Left}} ({{.LeftCategory}}) and {{.Right}} ({{.RightCategory}})",
		Hints:    []string{"{{if .Temperature}}temperatures only convert; strip the unit to do arithmetic on the value{{end}}"},
	},
	"OP-0003": {
		Kind:     KindDivisionByZero,
		Template: "cannot {{.Operator}} {{.Left}} by zero",
	},
	"OP-0004": {
		Kind:     KindInvalidOperand,
		Template: "cannot raise {{.Base}} to the power {{.Exponent}}: {{.Reason}}",
	},

	// ========================================
	// Lookup errors (UNDEF-0xxx)
	// ========================================
	"UNDEF-0001": {
		Kind:     KindUnknownUnit,
		Template: "unknown unit '{{.Name}}'",
	},
	"UNDEF-0002": {
		Kind:     KindUnknownUnit,
		Template: "cannot {{.Operator}}: {{.Unit}} is not a known unit",
	},
}

// New creates a UnitError from a catalog code with template data.
func New(code string, data map[string]any) *UnitError {
	def, ok := ErrorCatalog[code]
	if !ok {
		msg := "unknown error: " + code
		if m, ok := data["message"].(string); ok {
			msg = m
		}
		return &UnitError{
			Kind:    KindUnsupportedOperation,
			Code:    code,
			Message: msg,
			Data:    data,
		}
	}

	msg := renderTemplate(def.Template, data)

	var hints []string
	for _, hintTmpl := range def.Hints {
		rendered := renderTemplate(hintTmpl, data)
		if rendered != "" {
			hints = append(hints, rendered)
		}
	}

	return &UnitError{
		Kind:    def.Kind,
		Code:    code,
		Message: msg,
		Hints:   hints,
		Data:    data,
	}
}

// renderTemplate renders a Go template with the given data.
func renderTemplate(tmplStr string, data map[string]any) string {
	if data == nil {
		return tmplStr
	}

	tmpl, err := template.New("").Parse(tmplStr)
	if err != nil {
		return tmplStr
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return tmplStr
	}

	return buf.String()
}

// ============================================================================
// Fuzzy Matching - "Did you mean?" suggestions
// ============================================================================

// FuzzyMatch represents a fuzzy match result with its distance.
type FuzzyMatch struct {
	Value    string
	Distance int
}

// threshold is the largest edit distance still worth suggesting.
// Short words (1-3): max 1 edit
// Medium words (4-6): max 2 edits
// Longer words (7+): max 3 edits
func threshold(input string) int {
	n := len(input)
	switch {
	case n >= 7:
		return 3
	case n >= 4:
		return 2
	default:
		return 1
	}
}

// FindClosestMatch finds the closest match to the given string from candidates.
// Returns the best match if the distance is within the threshold, otherwise empty string.
func FindClosestMatch(input string, candidates []string) string {
	matches := FindTopMatches(input, candidates, 1)
	if len(matches) == 0 {
		return ""
	}
	return matches[0]
}

// FindTopMatches returns the top n closest matches to the input, nearest first.
// Exact matches are excluded; ties keep candidate order.
func FindTopMatches(input string, candidates []string, n int) []string {
	if len(input) == 0 || len(candidates) == 0 || n <= 0 {
		return nil
	}

	inputLower := strings.ToLower(input)
	limit := threshold(input)

	var matches []FuzzyMatch
	for _, candidate := range candidates {
		dist := levenshtein.ComputeDistance(inputLower, strings.ToLower(candidate))
		if dist > 0 && dist <= limit {
			matches = append(matches, FuzzyMatch{Value: candidate, Distance: dist})
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Distance < matches[j].Distance
	})

	var result []string
	for i := 0; i < len(matches) && i < n; i++ {
		result = append(result, matches[i].Value)
	}

	return result
}

// NewUnknownUnit creates an unknown unit error with an optional "Did you mean" hint.
func NewUnknownUnit(name string, knownNames []string) *UnitError {
	err := New("UNDEF-0001", map[string]any{"Name": name})

	if suggestion := FindClosestMatch(name, knownNames); suggestion != "" {
		err.Hints = append(err.Hints, "Did you mean `"+suggestion+"`?")
	}

	return err
}
