package format

import (
	"strconv"

	"github.com/pseudomuto/sqlfmt/pkg/lexer"
)

// Params is a substitution table for parameter placeholders. Named, quoted,
// numbered, and custom placeholders resolve by key; positional placeholders
// consume a cursor that counts ? tokens in render order.
//
// A Params value describes the substitutions only; every format call runs
// with its own cursor, so one table is safe to reuse across calls.
type Params struct {
	named      map[string]string
	positional []string
}

// NamedParams builds a table keyed by placeholder name or number.
func NamedParams(values map[string]string) *Params {
	return &Params{named: values}
}

// PositionalParams builds a table consumed left to right by ? placeholders.
func PositionalParams(values ...string) *Params {
	return &Params{positional: values}
}

// paramCursor is the per-call substitution state: the shared table plus this
// call's positional index. The index is snapshotted around speculative
// inline renders so an abandoned attempt cannot consume placeholders.
type paramCursor struct {
	table *Params
	index int
}

func (c *paramCursor) snapshot() int { return c.index }

func (c *paramCursor) restore(index int) { c.index = index }

// resolve returns the substitution for a parameter token, if any. The
// positional cursor advances whether or not a value is available, keeping
// later positional lookups aligned.
func (c *paramCursor) resolve(tok lexer.Token) (string, bool) {
	switch tok.Type {
	case lexer.TypePositionalParameter:
		idx := c.index
		c.index++
		if c.table == nil {
			return "", false
		}
		if idx < len(c.table.positional) {
			return c.table.positional[idx], true
		}
		if v, ok := c.table.named[strconv.Itoa(idx+1)]; ok {
			return v, true
		}
		return "", false
	default:
		if c.table == nil || tok.Key == "" {
			return "", false
		}
		v, ok := c.table.named[tok.Key]
		return v, ok
	}
}
