package parser

import (
	"fmt"

	"github.com/pseudomuto/sqlfmt/pkg/lexer"
)

// ParseError reports malformed input: the token stream does not form a valid
// statement sequence. The parser never recovers and never returns a partial
// tree alongside an error.
type ParseError struct {
	Message string
	Token   lexer.Token
}

func (e *ParseError) Error() string {
	if e.Token.Type == lexer.TypeEOF {
		return fmt.Sprintf("parse error: %s at end of input", e.Message)
	}
	return fmt.Sprintf("parse error: %s near %q (offset %d)", e.Message, e.Token.Raw, e.Token.Start)
}

// Parse consumes a disambiguated token stream and returns the statement list.
// The stream must be terminated by an EOF token, as produced by the lexer.
//
// Example usage:
//
//	tokens, err := rules.Tokenize("SELECT 1;")
//	if err != nil {
//		log.Fatal(err)
//	}
//	stmts, err := parser.Parse(lexer.Disambiguate(tokens))
func Parse(tokens []lexer.Token) ([]*Statement, error) {
	p := &parser{tokens: tokens}

	var stmts []*Statement
	for p.cur().Type != lexer.TypeEOF {
		stmt, err := p.statement()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
	}
	return stmts, nil
}

type parser struct {
	tokens []lexer.Token
	pos    int
}

func (p *parser) cur() lexer.Token {
	if p.pos >= len(p.tokens) {
		return lexer.Token{Type: lexer.TypeEOF}
	}
	return p.tokens[p.pos]
}

func (p *parser) advance() lexer.Token {
	t := p.cur()
	if p.pos < len(p.tokens) {
		p.pos++
	}
	return t
}

func (p *parser) errorf(format string, args ...any) error {
	return &ParseError{Message: fmt.Sprintf(format, args...), Token: p.cur()}
}

func (p *parser) statement() (*Statement, error) {
	stmt := &Statement{}

	for {
		switch p.cur().Type {
		case lexer.TypeEOF:
			return stmt, nil
		case lexer.TypeDelimiter:
			p.advance()
			stmt.HasSemicolon = true
			return stmt, nil
		}

		n, err := p.topLevelNode()
		if err != nil {
			return nil, err
		}
		stmt.Children = append(stmt.Children, n)
	}
}

// topLevelNode parses one clause, set operation, limit clause, or free
// expression node. The same dispatch applies inside parentheses, which is
// what lets subqueries carry full clause structure.
func (p *parser) topLevelNode() (Node, error) {
	switch p.cur().Type {
	case lexer.TypeReservedClause, lexer.TypeReservedSelect:
		return p.clause()
	case lexer.TypeReservedSetOperation:
		return p.setOperation()
	case lexer.TypeLimit:
		return p.limitClause()
	default:
		return p.expressionNode()
	}
}

// atClauseBoundary reports whether the current token ends a clause body.
func (p *parser) atClauseBoundary() bool {
	switch p.cur().Type {
	case lexer.TypeEOF, lexer.TypeDelimiter, lexer.TypeCloseParen,
		lexer.TypeReservedClause, lexer.TypeReservedSelect,
		lexer.TypeReservedSetOperation, lexer.TypeLimit:
		return true
	}
	return false
}

func (p *parser) clause() (Node, error) {
	kw := p.advance()
	children, err := p.clauseBody()
	if err != nil {
		return nil, err
	}
	return &Clause{NameKw: kw, Children: children}, nil
}

func (p *parser) setOperation() (Node, error) {
	kw := p.advance()
	children, err := p.clauseBody()
	if err != nil {
		return nil, err
	}
	return &SetOperation{NameKw: kw, Children: children}, nil
}

func (p *parser) limitClause() (Node, error) {
	kw := p.advance()
	children, err := p.clauseBody()
	if err != nil {
		return nil, err
	}
	return &LimitClause{LimitKw: kw, Children: children}, nil
}

func (p *parser) clauseBody() ([]Node, error) {
	var children []Node
	for !p.atClauseBoundary() {
		n, err := p.expressionNode()
		if err != nil {
			return nil, err
		}
		children = append(children, n)
	}
	return children, nil
}

// expressionNode parses one atom and any property access chain hanging off
// it (a.b.c, schema.table.*).
func (p *parser) expressionNode() (Node, error) {
	n, err := p.atom()
	if err != nil {
		return nil, err
	}

	for p.cur().Type == lexer.TypeDot {
		op := p.advance()
		prop, err := p.property()
		if err != nil {
			return nil, err
		}
		n = &PropertyAccess{Object: n, Operator: op, Property: prop}
	}
	return n, nil
}

// property parses the member side of a property access.
func (p *parser) property() (Node, error) {
	switch p.cur().Type {
	case lexer.TypeAsterisk:
		return &AllColumnsAsterisk{Token: p.advance()}, nil
	case lexer.TypeIdentifier, lexer.TypeQuotedIdentifier, lexer.TypeNumber:
		return &Identifier{Token: p.advance()}, nil
	case lexer.TypeArrayIdentifier:
		return p.atom()
	default:
		return nil, p.errorf("expected identifier after %q", ".")
	}
}

func (p *parser) atom() (Node, error) {
	t := p.cur()

	switch t.Type {
	case lexer.TypeOpenParen:
		return p.parenthesis()

	case lexer.TypeReservedFunctionName:
		return p.functionCall()

	case lexer.TypeIdentifier, lexer.TypeQuotedIdentifier:
		// A bare identifier glued to an open parenthesis is a call of a
		// function this formatter has no table entry for.
		if p.tightCallFollows() {
			return p.functionCall()
		}
		return &Identifier{Token: p.advance()}, nil

	case lexer.TypeReservedParameterizedType:
		kw := p.advance()
		parens, err := p.parenthesis()
		if err != nil {
			return nil, err
		}
		return &ParameterizedDataType{NameKw: kw, Parens: parens.(*Parenthesis)}, nil

	case lexer.TypeArrayIdentifier, lexer.TypeArrayKeyword:
		arr := p.advance()
		parens, err := p.parenthesis()
		if err != nil {
			return nil, err
		}
		return &ArraySubscript{Array: arr, Parens: parens.(*Parenthesis)}, nil

	case lexer.TypeCase:
		return p.caseExpression()

	case lexer.TypeBetween:
		return p.betweenPredicate()

	case lexer.TypeString, lexer.TypeNumber:
		return &Literal{Token: p.advance()}, nil

	case lexer.TypeReservedKeyword, lexer.TypeReservedPhrase,
		lexer.TypeReservedJoin, lexer.TypeAnd, lexer.TypeOr, lexer.TypeXor:
		return &Keyword{Token: p.advance()}, nil

	case lexer.TypeReservedDataType:
		return &DataType{Token: p.advance()}, nil

	case lexer.TypeNamedParameter, lexer.TypeQuotedParameter,
		lexer.TypeNumberedParameter, lexer.TypePositionalParameter,
		lexer.TypeCustomParameter:
		return &Parameter{Token: p.advance()}, nil

	case lexer.TypeAsterisk:
		if p.allColumnsContext() {
			return &AllColumnsAsterisk{Token: p.advance()}, nil
		}
		return &Operator{Token: p.advance()}, nil

	case lexer.TypeOperator:
		return &Operator{Token: p.advance()}, nil

	case lexer.TypeComma:
		return &Comma{Token: p.advance()}, nil

	case lexer.TypeLineComment:
		return &LineComment{Token: p.advance()}, nil
	case lexer.TypeBlockComment:
		return &BlockComment{Token: p.advance()}, nil

	case lexer.TypeCloseParen:
		return nil, p.errorf("unexpected %q", t.Raw)
	case lexer.TypeEnd:
		return nil, p.errorf("END without matching CASE")
	default:
		return nil, p.errorf("unexpected token %q", t.Raw)
	}
}

// tightCallFollows reports whether the next token is an open parenthesis
// glued directly to the current one.
func (p *parser) tightCallFollows() bool {
	if p.pos+1 >= len(p.tokens) {
		return false
	}
	next := p.tokens[p.pos+1]
	return next.Type == lexer.TypeOpenParen && next.Raw == "(" && next.PrecedingWhitespace == ""
}

// allColumnsContext reports whether a * means "all columns" rather than
// multiplication: at the start of an expression list, or right after a
// SELECT keyword, comma, or open parenthesis.
func (p *parser) allColumnsContext() bool {
	for i := p.pos - 1; i >= 0; i-- {
		t := p.tokens[i]
		if t.IsComment() {
			continue
		}
		switch t.Type {
		case lexer.TypeReservedSelect, lexer.TypeComma, lexer.TypeOpenParen:
			return true
		default:
			return false
		}
	}
	return true
}

func (p *parser) functionCall() (Node, error) {
	name := p.advance()
	parens, err := p.parenthesis()
	if err != nil {
		return nil, err
	}
	return &FunctionCall{NameKw: name, Parens: parens.(*Parenthesis)}, nil
}

// matching close brackets for each supported opener.
var closing = map[string]string{"(": ")", "[": "]", "{": "}"}

func (p *parser) parenthesis() (Node, error) {
	open := p.cur()
	if open.Type != lexer.TypeOpenParen {
		return nil, p.errorf("expected opening bracket")
	}
	p.advance()
	want := closing[open.Raw]

	parens := &Parenthesis{Open: open.Raw, Close: want}
	for {
		switch p.cur().Type {
		case lexer.TypeCloseParen:
			close := p.advance()
			if close.Raw != want {
				return nil, &ParseError{
					Message: fmt.Sprintf("expected %q to close %q, found %q", want, open.Raw, close.Raw),
					Token:   close,
				}
			}
			return parens, nil
		case lexer.TypeEOF:
			return nil, p.errorf("missing closing %q", want)
		case lexer.TypeDelimiter:
			return nil, p.errorf("unexpected %q inside brackets", ";")
		}

		n, err := p.topLevelNode()
		if err != nil {
			return nil, err
		}
		parens.Children = append(parens.Children, n)
	}
}

func (p *parser) caseExpression() (Node, error) {
	caseExpr := &CaseExpression{CaseKw: p.advance()}

	subject, err := p.caseBody()
	if err != nil {
		return nil, err
	}
	caseExpr.Subject = subject

	for p.cur().Text == "WHEN" {
		arm, err := p.caseWhen()
		if err != nil {
			return nil, err
		}
		caseExpr.Clauses = append(caseExpr.Clauses, arm)
	}

	if p.cur().Text == "ELSE" {
		elseKw := p.advance()
		result, err := p.caseBody()
		if err != nil {
			return nil, err
		}
		caseExpr.Clauses = append(caseExpr.Clauses, &CaseElse{ElseKw: elseKw, Result: result})
	}

	if p.cur().Type != lexer.TypeEnd {
		return nil, p.errorf("CASE without matching END")
	}
	caseExpr.EndKw = p.advance()
	return caseExpr, nil
}

func (p *parser) caseWhen() (Node, error) {
	whenKw := p.advance()

	condition, err := p.caseBody()
	if err != nil {
		return nil, err
	}
	if p.cur().Text != "THEN" {
		return nil, p.errorf("WHEN without matching THEN")
	}
	thenKw := p.advance()

	result, err := p.caseBody()
	if err != nil {
		return nil, err
	}
	return &CaseWhen{WhenKw: whenKw, Condition: condition, ThenKw: thenKw, Result: result}, nil
}

// caseBody collects expression nodes up to the next WHEN/THEN/ELSE/END or
// clause boundary.
func (p *parser) caseBody() ([]Node, error) {
	var nodes []Node
	for {
		if p.atClauseBoundary() || p.cur().Type == lexer.TypeEnd {
			return nodes, nil
		}
		switch p.cur().Text {
		case "WHEN", "THEN", "ELSE":
			return nodes, nil
		}

		n, err := p.expressionNode()
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, n)
	}
}

func (p *parser) betweenPredicate() (Node, error) {
	betweenKw := p.advance()

	var expr1 []Node
	for p.cur().Type != lexer.TypeAnd {
		if p.atClauseBoundary() {
			return nil, p.errorf("BETWEEN without matching AND")
		}
		n, err := p.expressionNode()
		if err != nil {
			return nil, err
		}
		expr1 = append(expr1, n)
	}
	andKw := p.advance()

	if p.atClauseBoundary() {
		return nil, p.errorf("missing expression after BETWEEN .. AND")
	}
	n, err := p.expressionNode()
	if err != nil {
		return nil, err
	}

	return &BetweenPredicate{
		BetweenKw: betweenKw,
		Expr1:     expr1,
		AndKw:     andKw,
		Expr2:     []Node{n},
	}, nil
}
