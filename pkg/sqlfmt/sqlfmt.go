// Package sqlfmt is the top-level entry point for formatting SQL text. It
// resolves dialect names and wraps the lexer, parser, and format packages
// behind two calls.
//
// Example usage:
//
//	out, err := sqlfmt.Format("select id from users where id = 1", sqlfmt.Config{
//		Dialect: "postgresql",
//	})
package sqlfmt

import (
	"github.com/pseudomuto/sqlfmt/pkg/dialect"
	"github.com/pseudomuto/sqlfmt/pkg/format"
)

// Config names a dialect and carries the formatting options. An empty
// Dialect selects the generic "sql" dialect; zero-valued Options are
// replaced with format.Defaults.
type Config struct {
	Dialect string
	Options *format.Options
}

// New builds a formatter for the configured dialect.
func New(cfg Config) (*format.Formatter, error) {
	name := cfg.Dialect
	if name == "" {
		name = "sql"
	}

	d, err := dialect.Get(name)
	if err != nil {
		return nil, err
	}

	opts := format.Defaults()
	if cfg.Options != nil {
		opts = *cfg.Options
	}

	return format.NewFormatter(d, opts)
}

// Format formats a query in one call. Callers formatting many queries with
// the same configuration should build the formatter once with New instead.
func Format(query string, cfg Config) (string, error) {
	f, err := New(cfg)
	if err != nil {
		return "", err
	}
	return f.Format(query)
}

// Dialects returns the names of all supported dialects, sorted.
func Dialects() []string {
	return dialect.Names()
}
