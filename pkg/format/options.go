package format

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/pseudomuto/sqlfmt/pkg/dialect"
)

// ErrConfig is the root of all option validation failures. Callers can test
// for it with errors.Is.
var ErrConfig = errors.New("invalid format options")

// Case selects how a word category is rendered.
type Case string

// Case values.
const (
	CasePreserve Case = "preserve"
	CaseUpper    Case = "upper"
	CaseLower    Case = "lower"
)

// IndentStyle selects the overall layout scheme.
type IndentStyle string

// IndentStyle values. The tabular styles pad clause keywords to a fixed
// column so clause bodies align vertically.
const (
	IndentStandard     IndentStyle = "standard"
	IndentTabularLeft  IndentStyle = "tabularLeft"
	IndentTabularRight IndentStyle = "tabularRight"
)

// OperatorNewline selects whether a logical operator starts or ends a line.
type OperatorNewline string

// OperatorNewline values.
const (
	NewlineBefore OperatorNewline = "before"
	NewlineAfter  OperatorNewline = "after"
)

// Options controls formatting behavior. Start from Defaults and override
// individual fields; the zero value does not validate.
type Options struct {
	// TabWidth is the number of spaces per indentation level.
	TabWidth int
	// UseTabs indents with tab characters instead of spaces.
	UseTabs bool

	KeywordCase    Case
	IdentifierCase Case
	DataTypeCase   Case
	FunctionCase   Case

	IndentStyle IndentStyle

	// LogicalOperatorNewline places AND/OR/XOR before or after the break.
	LogicalOperatorNewline OperatorNewline

	// ExpressionWidth is the single-line budget for speculative inline
	// rendering. Must be positive.
	ExpressionWidth int

	// LinesBetweenQueries is the number of blank lines separating
	// formatted statements. Must not be negative.
	LinesBetweenQueries int

	// DenseOperators suppresses the spaces around operators.
	DenseOperators bool

	// NewlineBeforeSemicolon puts each statement's terminator on its own
	// line.
	NewlineBeforeSemicolon bool

	// Params, when set, substitutes placeholder tokens at render time.
	Params *Params

	// ParamTypes overrides the dialect's placeholder syntax for this
	// formatter only; the shared compiled-dialect cache is never touched.
	ParamTypes *dialect.ParamStyle
}

// Defaults returns the standard formatting options.
func Defaults() Options {
	return Options{
		TabWidth:               2,
		KeywordCase:            CaseUpper,
		IdentifierCase:         CasePreserve,
		DataTypeCase:           CaseUpper,
		FunctionCase:           CaseUpper,
		IndentStyle:            IndentStandard,
		LogicalOperatorNewline: NewlineBefore,
		ExpressionWidth:        50,
		LinesBetweenQueries:    1,
	}
}

// Validate reports the first invalid option value, wrapped around ErrConfig.
func (o Options) Validate() error {
	if o.ExpressionWidth <= 0 {
		return errors.Wrapf(ErrConfig, "expressionWidth must be positive, got %d", o.ExpressionWidth)
	}
	if o.LinesBetweenQueries < 0 {
		return errors.Wrapf(ErrConfig, "linesBetweenQueries must not be negative, got %d", o.LinesBetweenQueries)
	}
	if o.TabWidth < 0 {
		return errors.Wrapf(ErrConfig, "tabWidth must not be negative, got %d", o.TabWidth)
	}

	for name, c := range map[string]Case{
		"keywordCase":    o.KeywordCase,
		"identifierCase": o.IdentifierCase,
		"dataTypeCase":   o.DataTypeCase,
		"functionCase":   o.FunctionCase,
	} {
		switch c {
		case CasePreserve, CaseUpper, CaseLower:
		default:
			return errors.Wrapf(ErrConfig, "%s must be one of preserve, upper, lower; got %q", name, string(c))
		}
	}

	switch o.IndentStyle {
	case IndentStandard, IndentTabularLeft, IndentTabularRight:
	default:
		return errors.Wrapf(ErrConfig, "indentStyle must be one of standard, tabularLeft, tabularRight; got %q", string(o.IndentStyle))
	}

	switch o.LogicalOperatorNewline {
	case NewlineBefore, NewlineAfter:
	default:
		return errors.Wrapf(ErrConfig, "logicalOperatorNewline must be before or after; got %q", string(o.LogicalOperatorNewline))
	}

	return nil
}

// indentUnit returns one level's worth of indentation text.
func (o Options) indentUnit() string {
	if o.UseTabs {
		return "\t"
	}
	return strings.Repeat(" ", o.TabWidth)
}

// tabular reports whether either tabular style is active.
func (o Options) tabular() bool {
	return o.IndentStyle == IndentTabularLeft || o.IndentStyle == IndentTabularRight
}
