package format

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/pseudomuto/sqlfmt/pkg/dialect"
	"github.com/pseudomuto/sqlfmt/pkg/lexer"
	"github.com/pseudomuto/sqlfmt/pkg/parser"
)

// Formatter formats SQL text for one dialect under one set of options. A
// Formatter is safe for concurrent use; each Format call carries its own
// rendering state.
//
// Example usage:
//
//	d, _ := dialect.Get("postgresql")
//	f, err := format.NewFormatter(d, format.Defaults())
//	if err != nil { ... }
//	out, err := f.Format("SELECT id, name FROM users WHERE id = $1")
type Formatter struct {
	d    *dialect.Dialect
	opts Options
}

// NewFormatter validates the options and binds them to a dialect.
func NewFormatter(d *dialect.Dialect, opts Options) (*Formatter, error) {
	if d == nil {
		return nil, errors.Wrap(ErrConfig, "dialect must not be nil")
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	return &Formatter{d: d, opts: opts}, nil
}

// Format tokenizes, parses, and re-renders the query. The output contains
// exactly the input's tokens (after substitution and re-casing); a query that
// does not tokenize or parse returns an error and no partial output.
func (f *Formatter) Format(query string) (string, error) {
	rules, err := f.rules()
	if err != nil {
		return "", err
	}

	tokens, err := rules.Tokenize(query)
	if err != nil {
		return "", errors.Wrap(err, "tokenizing query")
	}
	tokens = lexer.Disambiguate(tokens)

	statements, err := parser.Parse(tokens)
	if err != nil {
		return "", errors.Wrap(err, "parsing query")
	}

	cursor := &paramCursor{table: f.opts.Params}
	parts := make([]string, 0, len(statements))
	for _, stmt := range statements {
		s, err := f.renderStatement(stmt, cursor)
		if err != nil {
			return "", err
		}
		parts = append(parts, s)
	}

	sep := strings.Repeat("\n", f.opts.LinesBetweenQueries+1)
	return strings.Join(parts, sep), nil
}

// rules returns the compiled lexer rules for this formatter's dialect. A
// ParamTypes override compiles a private rule set; everything else shares the
// package cache.
func (f *Formatter) rules() (*lexer.RuleSet, error) {
	if f.opts.ParamTypes != nil {
		return lexer.CompileWithParams(f.d, *f.opts.ParamTypes)
	}
	return lexer.Cached(f.d)
}

func (f *Formatter) renderStatement(stmt *parser.Statement, cursor *paramCursor) (string, error) {
	ind := newIndentation(f.opts.indentUnit())
	lay := newLayout(ind)

	e := &expressionFormatter{
		d:      f.d,
		opts:   f.opts,
		params: cursor,
		buf:    lay,
		ind:    ind,
	}
	if err := e.formatNodes(stmt.Children); err != nil {
		return "", err
	}

	s := trimLineEnds(lay.String())
	if stmt.HasSemicolon {
		if f.opts.NewlineBeforeSemicolon {
			s += "\n;"
		} else {
			s += ";"
		}
	}
	return s, nil
}

// trimLineEnds strips trailing whitespace from every line and blank lines
// from both ends of the statement.
func trimLineEnds(s string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t")
	}
	return strings.Trim(strings.Join(lines, "\n"), "\n")
}
