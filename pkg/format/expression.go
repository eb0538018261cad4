package format

import (
	"fmt"
	"strings"

	"github.com/pseudomuto/sqlfmt/pkg/dialect"
	"github.com/pseudomuto/sqlfmt/pkg/lexer"
	"github.com/pseudomuto/sqlfmt/pkg/parser"
)

// expressionFormatter recursively renders syntax nodes into a layout buffer,
// one policy per node kind. The same formatter type drives both block
// rendering and bounded inline attempts; the inline flag switches clause,
// join, comma, and logical-operator policies to their single-line forms.
type expressionFormatter struct {
	d      *dialect.Dialect
	opts   Options
	params *paramCursor
	buf    buffer
	ind    *indentation

	// inline marks a speculative single-line render.
	inline bool
	// compactCommas keeps commas on one line even in block mode; LIMIT
	// bodies use this.
	compactCommas bool
}

func (e *expressionFormatter) formatNodes(nodes []parser.Node) error {
	for _, n := range nodes {
		if err := e.formatNode(n); err != nil {
			return err
		}
	}
	return nil
}

// formatNode dispatches over the closed node union. A node kind missing here
// is a programmer error, not a formatting condition.
func (e *expressionFormatter) formatNode(n parser.Node) error {
	switch n := n.(type) {
	case *parser.Clause:
		return e.formatClause(n)
	case *parser.SetOperation:
		return e.formatSetOperation(n)
	case *parser.LimitClause:
		return e.formatLimitClause(n)
	case *parser.FunctionCall:
		return e.formatFunctionCall(n)
	case *parser.ParameterizedDataType:
		return e.formatParameterizedDataType(n)
	case *parser.ArraySubscript:
		return e.formatArraySubscript(n)
	case *parser.PropertyAccess:
		return e.formatPropertyAccess(n)
	case *parser.Parenthesis:
		return e.formatParenthesis(n)
	case *parser.BetweenPredicate:
		return e.formatBetween(n)
	case *parser.CaseExpression:
		return e.formatCase(n)
	case *parser.CaseWhen:
		return e.formatCaseWhen(n)
	case *parser.CaseElse:
		return e.formatCaseElse(n)
	case *parser.AllColumnsAsterisk:
		return e.buf.add("*", space)
	case *parser.Literal:
		return e.buf.add(n.Token.Raw, space)
	case *parser.Identifier:
		return e.formatIdentifier(n.Token)
	case *parser.Keyword:
		return e.formatKeyword(n.Token)
	case *parser.DataType:
		return e.buf.add(e.cased(n.Token, e.opts.DataTypeCase), space)
	case *parser.Parameter:
		return e.formatParameter(n.Token)
	case *parser.Operator:
		return e.formatOperator(n.Token.Raw)
	case *parser.Comma:
		return e.formatComma()
	case *parser.LineComment:
		return e.formatLineComment(n.Token)
	case *parser.BlockComment:
		return e.formatBlockComment(n.Token)
	default:
		panic(fmt.Sprintf("format: unhandled node type %T", n))
	}
}

// cased renders a token under one of the case options. Upper and lower also
// canonicalize the internal whitespace of multi-word phrases; preserve keeps
// the raw source text.
func (e *expressionFormatter) cased(tok lexer.Token, c Case) string {
	switch c {
	case CaseUpper:
		return tok.Text
	case CaseLower:
		return strings.ToLower(tok.Text)
	default:
		return tok.Raw
	}
}

func (e *expressionFormatter) keyword(tok lexer.Token) string {
	return e.cased(tok, e.opts.KeywordCase)
}

func (e *expressionFormatter) formatIdentifier(tok lexer.Token) error {
	return e.buf.add(e.identifier(tok), space)
}

// identifier renders an identifier token. Quoting fixes an identifier's
// case; only bare identifiers follow the identifierCase option. Array
// identifiers lose their original token type, so quoting is detected from
// the raw text against the dialect's identifier quote styles.
func (e *expressionFormatter) identifier(tok lexer.Token) string {
	if e.d.IsQuotedIdentifier(tok.Raw) {
		return tok.Raw
	}
	return e.cased(tok, e.opts.IdentifierCase)
}

func (e *expressionFormatter) formatKeyword(tok lexer.Token) error {
	switch tok.Type {
	case lexer.TypeAnd, lexer.TypeOr, lexer.TypeXor:
		return e.formatLogicalOperator(tok)
	case lexer.TypeReservedJoin:
		return e.formatJoin(tok)
	default:
		return e.buf.add(e.keyword(tok), space)
	}
}

// formatLogicalOperator breaks the expression before or after AND/OR/XOR.
// Under the tabular styles the operator is padded and sits flush with the
// clause keywords instead of nesting under them.
func (e *expressionFormatter) formatLogicalOperator(tok lexer.Token) error {
	kw := e.keyword(tok)
	if e.inline {
		return e.buf.add(kw, space)
	}
	if e.opts.tabular() {
		kw = e.tabularKeyword(kw)
	}

	if e.opts.LogicalOperatorNewline == NewlineAfter {
		return e.buf.add(kw, newline, wsIndent)
	}
	return e.buf.add(newline, wsIndent, kw, space)
}

func (e *expressionFormatter) formatJoin(tok lexer.Token) error {
	kw := e.keyword(tok)
	if e.inline {
		return e.buf.add(kw, space)
	}
	if e.opts.tabular() {
		kw = e.tabularKeyword(kw)
	}
	return e.buf.add(newline, wsIndent, kw, space)
}

func (e *expressionFormatter) formatOperator(raw string) error {
	// Cast and path operators always bind tightly.
	if raw == "::" || e.opts.DenseOperators {
		return e.buf.add(noSpace, raw, noSpace)
	}
	return e.buf.add(raw, space)
}

func (e *expressionFormatter) formatComma() error {
	if e.inline || e.compactCommas {
		return e.buf.add(noSpace, ",", space)
	}
	return e.buf.add(noSpace, ",", newline, wsIndent)
}

func (e *expressionFormatter) formatParameter(tok lexer.Token) error {
	if v, ok := e.params.resolve(tok); ok {
		return e.buf.add(v, space)
	}
	return e.buf.add(tok.Raw, space)
}

func (e *expressionFormatter) formatPropertyAccess(n *parser.PropertyAccess) error {
	if err := e.formatNode(n.Object); err != nil {
		return err
	}
	if err := e.buf.add(noSpace, n.Operator.Raw, noSpace); err != nil {
		return err
	}
	return e.formatNode(n.Property)
}

func (e *expressionFormatter) formatFunctionCall(n *parser.FunctionCall) error {
	name := n.NameKw.Raw
	if n.NameKw.Type == lexer.TypeReservedFunctionName {
		name = e.cased(n.NameKw, e.opts.FunctionCase)
	}
	if err := e.buf.add(name); err != nil {
		return err
	}
	return e.formatParenthesis(n.Parens)
}

func (e *expressionFormatter) formatParameterizedDataType(n *parser.ParameterizedDataType) error {
	if err := e.buf.add(e.cased(n.NameKw, e.opts.DataTypeCase)); err != nil {
		return err
	}
	return e.formatParenthesis(n.Parens)
}

func (e *expressionFormatter) formatArraySubscript(n *parser.ArraySubscript) error {
	var name string
	if n.Array.Type == lexer.TypeArrayKeyword {
		name = e.keyword(n.Array)
	} else {
		name = e.identifier(n.Array)
	}
	if err := e.buf.add(name); err != nil {
		return err
	}
	return e.formatParenthesis(n.Parens)
}

// formatParenthesis attempts a full speculative inline render of the
// bracketed expression; on overflow it re-renders in block form with the
// children one level deeper.
func (e *expressionFormatter) formatParenthesis(n *parser.Parenthesis) error {
	if e.inline {
		if err := e.buf.add(n.Open, noSpace); err != nil {
			return err
		}
		if err := e.formatNodes(n.Children); err != nil {
			return err
		}
		return e.buf.add(noSpace, n.Close, space)
	}

	if s, ok := e.tryInline(func(sub *expressionFormatter) error {
		return sub.formatParenthesis(n)
	}); ok {
		return e.buf.add(s, space)
	}

	if err := e.buf.add(n.Open, mandatoryNewline); err != nil {
		return err
	}
	e.ind.increaseBlockLevel()
	if err := e.buf.add(wsIndent); err != nil {
		return err
	}
	if err := e.formatNodes(n.Children); err != nil {
		return err
	}
	if err := e.buf.add(newline); err != nil {
		return err
	}
	e.ind.decreaseBlockLevel()
	return e.buf.add(wsIndent, n.Close, space)
}

func (e *expressionFormatter) formatClause(n *parser.Clause) error {
	kw := e.keyword(n.NameKw)

	if e.inline {
		if err := e.buf.add(kw, space); err != nil {
			return err
		}
		return e.formatNodes(n.Children)
	}

	if e.d.IsOnelineClause(n.NameKw.Text) {
		return e.formatClauseOneline(n, kw)
	}

	switch e.opts.IndentStyle {
	case IndentTabularLeft, IndentTabularRight:
		return e.formatClauseTabular(n, kw)
	default:
		return e.formatClauseIndented(n, kw)
	}
}

// formatClauseIndented first attempts the whole clause on a single bounded
// line; past the expression width the keyword gets its own line and the body
// indents one level under it.
func (e *expressionFormatter) formatClauseIndented(n *parser.Clause, kw string) error {
	if s, ok := e.tryInline(func(sub *expressionFormatter) error {
		if err := sub.buf.add(kw, space); err != nil {
			return err
		}
		return sub.formatNodes(n.Children)
	}); ok {
		return e.buf.add(newline, wsIndent, s, space)
	}

	if err := e.buf.add(newline, wsIndent, kw, newline); err != nil {
		return err
	}
	e.ind.increaseTopLevel()
	if err := e.buf.add(wsIndent); err != nil {
		return err
	}
	if err := e.formatNodes(n.Children); err != nil {
		return err
	}
	e.ind.decreaseTopLevel()
	return nil
}

// formatClauseOneline keeps the keyword and body on one line regardless of
// width; the dialect declares which clauses read better unbroken. Commas stay
// inline too, so VALUES row lists do not break.
func (e *expressionFormatter) formatClauseOneline(n *parser.Clause, kw string) error {
	if err := e.buf.add(newline, wsIndent, kw, space); err != nil {
		return err
	}

	compact := e.compactCommas
	e.compactCommas = true
	err := e.formatNodes(n.Children)
	e.compactCommas = compact
	return err
}

// formatClauseTabular pads the keyword to a fixed column; the body stays at
// the keyword's own indent level with no extra nesting.
func (e *expressionFormatter) formatClauseTabular(n *parser.Clause, kw string) error {
	if err := e.buf.add(newline, wsIndent, e.tabularKeyword(kw), space); err != nil {
		return err
	}
	return e.formatNodes(n.Children)
}

func (e *expressionFormatter) formatSetOperation(n *parser.SetOperation) error {
	kw := e.keyword(n.NameKw)

	if e.inline {
		if err := e.buf.add(kw, space); err != nil {
			return err
		}
		return e.formatNodes(n.Children)
	}

	if e.opts.tabular() {
		if err := e.buf.add(newline, wsIndent, e.tabularKeyword(kw), space); err != nil {
			return err
		}
		return e.formatNodes(n.Children)
	}

	if err := e.buf.add(newline, wsIndent, kw, newline); err != nil {
		return err
	}
	if len(n.Children) == 0 {
		return nil
	}
	e.ind.increaseTopLevel()
	if err := e.buf.add(wsIndent); err != nil {
		return err
	}
	if err := e.formatNodes(n.Children); err != nil {
		return err
	}
	e.ind.decreaseTopLevel()
	return nil
}

func (e *expressionFormatter) formatLimitClause(n *parser.LimitClause) error {
	kw := e.keyword(n.LimitKw)

	if e.inline {
		if err := e.buf.add(kw, space); err != nil {
			return err
		}
		return e.formatNodes(n.Children)
	}

	if !e.opts.tabular() {
		if s, ok := e.tryInline(func(sub *expressionFormatter) error {
			if err := sub.buf.add(kw, space); err != nil {
				return err
			}
			return sub.formatNodes(n.Children)
		}); ok {
			return e.buf.add(newline, wsIndent, s, space)
		}
	} else {
		kw = e.tabularKeyword(kw)
	}
	if err := e.buf.add(newline, wsIndent, kw, space); err != nil {
		return err
	}

	// LIMIT 10, 20 keeps its count and offset together.
	compact := e.compactCommas
	e.compactCommas = true
	err := e.formatNodes(n.Children)
	e.compactCommas = compact
	return err
}

func (e *expressionFormatter) formatBetween(n *parser.BetweenPredicate) error {
	if err := e.buf.add(e.keyword(n.BetweenKw), space); err != nil {
		return err
	}
	if err := e.formatNodes(n.Expr1); err != nil {
		return err
	}
	// This AND belongs to the predicate and never breaks the line.
	if err := e.buf.add(e.keyword(n.AndKw), space); err != nil {
		return err
	}
	return e.formatNodes(n.Expr2)
}

// formatCase renders CASE in block form: each WHEN/ELSE arm on its own
// indented line and END aligned with CASE. During an inline attempt the
// newline request below reports overflow, so a CASE always forces its
// enclosing expression into block form.
func (e *expressionFormatter) formatCase(n *parser.CaseExpression) error {
	if e.inline {
		return e.buf.add(mandatoryNewline)
	}

	if err := e.buf.add(e.keyword(n.CaseKw), space); err != nil {
		return err
	}
	if err := e.formatNodes(n.Subject); err != nil {
		return err
	}

	e.ind.increaseBlockLevel()
	if err := e.formatNodes(n.Clauses); err != nil {
		return err
	}
	e.ind.decreaseBlockLevel()

	return e.buf.add(newline, wsIndent, e.keyword(n.EndKw), space)
}

func (e *expressionFormatter) formatCaseWhen(n *parser.CaseWhen) error {
	if err := e.buf.add(newline, wsIndent, e.keyword(n.WhenKw), space); err != nil {
		return err
	}
	if err := e.formatNodes(n.Condition); err != nil {
		return err
	}
	if err := e.buf.add(e.keyword(n.ThenKw), space); err != nil {
		return err
	}
	return e.formatNodes(n.Result)
}

func (e *expressionFormatter) formatCaseElse(n *parser.CaseElse) error {
	if err := e.buf.add(newline, wsIndent, e.keyword(n.ElseKw), space); err != nil {
		return err
	}
	return e.formatNodes(n.Result)
}

// tryInline renders through the given function into a bounded single-line
// buffer. Overflow is an ordinary negative result: the positional parameter
// cursor is rolled back and the caller falls through to block rendering.
func (e *expressionFormatter) tryInline(render func(*expressionFormatter) error) (string, bool) {
	snap := e.params.snapshot()

	il := newInlineLayout(e.opts.ExpressionWidth)
	sub := &expressionFormatter{
		d:             e.d,
		opts:          e.opts,
		params:        e.params,
		buf:           il,
		ind:           e.ind,
		inline:        true,
		compactCommas: e.compactCommas,
	}

	if err := render(sub); err != nil {
		e.params.restore(snap)
		return "", false
	}
	return il.String(), true
}

// tabularKeyword pads a keyword so clause bodies align at a fixed column.
// Left alignment pads the keyword's tail; right alignment pads the first
// word's head.
func (e *expressionFormatter) tabularKeyword(kw string) string {
	const width = 9

	if e.opts.IndentStyle == IndentTabularRight {
		first, rest, found := strings.Cut(kw, " ")
		first = strings.Repeat(" ", max(0, width-len(first))) + first
		if found {
			return first + " " + rest
		}
		return first
	}

	if len(kw) < width {
		return kw + strings.Repeat(" ", width-len(kw))
	}
	return kw
}
