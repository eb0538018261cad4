// Package dialect describes SQL dialects as data: reserved vocabulary,
// operator sets, quoting rules, parameter marker styles, and comment syntax.
//
// A Dialect is a pure description. It contains no compiled state; the lexer
// package compiles a Dialect into tokenizer rules and caches the result, so
// dialects are cheap to share between concurrent format calls.
//
// Example usage:
//
//	d, err := dialect.Get("postgresql")
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(d.Name)
package dialect

import "strings"

// EscapeMode describes how a quote character is escaped inside a quoted
// region.
type EscapeMode int

const (
	// EscapeNone means the quote character cannot appear inside the region.
	EscapeNone EscapeMode = iota
	// EscapeDouble escapes the closing quote by doubling it ('it''s').
	EscapeDouble
	// EscapeBackslash escapes any character with a backslash ('it\'s').
	EscapeBackslash
	// EscapeDoubleOrBackslash accepts either escaping style.
	EscapeDoubleOrBackslash
)

type (
	// QuoteStyle describes one string or identifier quoting variant.
	QuoteStyle struct {
		// Start and End are the opening and closing quote characters.
		Start string
		End   string
		// Escape selects the escaping style for embedded End characters.
		Escape EscapeMode
		// Prefixes lists optional case-insensitive prefixes (N'...', E'...').
		Prefixes []string
		// RequiredPrefix, when true, makes a prefix mandatory for a match.
		RequiredPrefix bool
	}

	// CommentStyle describes the line and block comment syntax of a dialect.
	CommentStyle struct {
		// Line lists the markers that start a comment running to end of line.
		Line []string
		// BlockOpen and BlockClose delimit block comments.
		BlockOpen  string
		BlockClose string
		// Nested marks dialects whose block comments nest.
		Nested bool
	}

	// ParamStyle describes which parameter placeholder syntaxes a dialect
	// accepts. All fields may be combined.
	ParamStyle struct {
		// Positional enables bare "?" placeholders.
		Positional bool
		// Numbered lists prefixes for numbered placeholders ("$" -> $1).
		Numbered []string
		// Named lists prefixes for named placeholders (":" -> :name).
		Named []string
		// Quoted lists prefixes for quoted named placeholders (@"name").
		Quoted []string
		// Custom lists raw regular expressions for bespoke placeholder
		// syntax. An empty pattern is a configuration error.
		Custom []string
	}

	// Dialect is the complete formatting-relevant description of one SQL
	// variant. Instances are immutable after construction.
	Dialect struct {
		// Name identifies the dialect in the registry ("postgresql").
		Name string

		// ReservedClauses are keywords that open a clause (FROM, WHERE).
		// Multi-word entries match with flexible internal whitespace.
		ReservedClauses []string
		// ReservedSelect are the SELECT-starting keywords.
		ReservedSelect []string
		// ReservedSetOperations are statement-joining operations (UNION ALL).
		ReservedSetOperations []string
		// ReservedJoins are join keywords (LEFT JOIN).
		ReservedJoins []string
		// ReservedPhrases are multi-word keyword phrases that must be kept
		// together (IS NOT NULL).
		ReservedPhrases []string
		// ReservedKeywords are the remaining single reserved words.
		ReservedKeywords []string
		// ReservedFunctionNames are words treated as function names when
		// followed by an open parenthesis.
		ReservedFunctionNames []string
		// ReservedDataTypes are type names (VARCHAR); when followed by an
		// open parenthesis they become parameterized data types.
		ReservedDataTypes []string
		// OnelineClauses render with keyword and body on a single line
		// regardless of width.
		OnelineClauses []string

		// Operators lists dialect operators beyond the common core set.
		Operators []string
		// PropertyAccessOperators join an object to a member (".", "::").
		PropertyAccessOperators []string
		// Parens lists accepted bracket pairs as two-character strings
		// ("()", "[]").
		Parens []string

		StringTypes []QuoteStyle
		IdentTypes  []QuoteStyle
		// IdentChars are word characters beyond [A-Za-z0-9_] permitted in
		// bare identifiers ("$", "#").
		IdentChars string

		Comments CommentStyle
		Params   ParamStyle
	}
)

// commonOperators are shared by every built-in dialect.
var commonOperators = []string{
	"+", "-", "*", "/", "%", "=", "!=", "<>", "<", ">", "<=", ">=", "||",
}

// AllOperators returns the dialect's operators merged with the common core
// set. The result is a fresh slice.
func (d *Dialect) AllOperators() []string {
	out := make([]string, 0, len(commonOperators)+len(d.Operators))
	out = append(out, commonOperators...)
	out = append(out, d.Operators...)
	return out
}

// IsQuotedIdentifier reports whether raw is written with one of the
// dialect's identifier quoting styles, directly or through one of the
// style's prefixes (U&"col").
func (d *Dialect) IsQuotedIdentifier(raw string) bool {
	for _, q := range d.IdentTypes {
		if !q.RequiredPrefix && strings.HasPrefix(raw, q.Start) {
			return true
		}
		for _, p := range q.Prefixes {
			if len(raw) > len(p) && strings.EqualFold(raw[:len(p)], p) && strings.HasPrefix(raw[len(p):], q.Start) {
				return true
			}
		}
	}
	return false
}

// IsOnelineClause reports whether the canonical clause keyword should render
// with its body on the keyword's own line.
func (d *Dialect) IsOnelineClause(keyword string) bool {
	for _, c := range d.OnelineClauses {
		if c == keyword {
			return true
		}
	}
	return false
}
