// Package parser turns the disambiguated token stream into a typed syntax
// tree.
//
// The grammar is intentionally shallow: expressions are flat sequences of
// atoms and operators, and only parentheses, brackets, CASE..END and
// BETWEEN..AND introduce nesting. There is no operator precedence to model,
// so a small hand-written recursive descent parser reproduces the full tree
// shape. Parsing either yields a complete tree or fails; a partial tree is
// never returned.
package parser

import "github.com/pseudomuto/sqlfmt/pkg/lexer"

// Node is the closed union of syntax tree nodes. Every implementation lives
// in this package; rendering code switches over the concrete types and treats
// an unknown type as a programmer error.
type Node interface {
	node()
}

type (
	// Statement is one statement's worth of top-level nodes.
	Statement struct {
		Children []Node

		// HasSemicolon records whether the source terminated the statement
		// with a delimiter; the formatter only prints semicolons that were
		// present in the input.
		HasSemicolon bool
	}

	// Clause is a reserved clause keyword and the expression sequence it
	// governs (FROM, WHERE, GROUP BY, SELECT variants).
	Clause struct {
		NameKw   lexer.Token
		Children []Node
	}

	// SetOperation is a statement-joining keyword such as UNION ALL,
	// together with any expressions up to the next clause.
	SetOperation struct {
		NameKw   lexer.Token
		Children []Node
	}

	// FunctionCall is a function name directly followed by its argument
	// parenthesis.
	FunctionCall struct {
		NameKw lexer.Token
		Parens *Parenthesis
	}

	// ParameterizedDataType is a data type name directly followed by its
	// parameter parenthesis (VARCHAR(100)).
	ParameterizedDataType struct {
		NameKw lexer.Token
		Parens *Parenthesis
	}

	// ArraySubscript is an array identifier or keyword followed by a
	// bracketed index expression.
	ArraySubscript struct {
		Array  lexer.Token
		Parens *Parenthesis
	}

	// PropertyAccess joins an object to a member through a dot.
	PropertyAccess struct {
		Object   Node
		Operator lexer.Token
		Property Node
	}

	// Parenthesis is a bracketed expression sequence; Open and Close retain
	// the concrete bracket characters.
	Parenthesis struct {
		Open     string
		Close    string
		Children []Node
	}

	// BetweenPredicate is BETWEEN <expr> AND <expr>; the AND belongs to the
	// predicate, not to the logical operator layout rules.
	BetweenPredicate struct {
		BetweenKw lexer.Token
		Expr1     []Node
		AndKw     lexer.Token
		Expr2     []Node
	}

	// CaseExpression is CASE [subject] WHEN.. [ELSE..] END.
	CaseExpression struct {
		CaseKw  lexer.Token
		EndKw   lexer.Token
		Subject []Node
		// Clauses holds *CaseWhen and at most one trailing *CaseElse.
		Clauses []Node
	}

	// CaseWhen is one WHEN <condition> THEN <result> arm.
	CaseWhen struct {
		WhenKw    lexer.Token
		Condition []Node
		ThenKw    lexer.Token
		Result    []Node
	}

	// CaseElse is the ELSE <result> arm.
	CaseElse struct {
		ElseKw lexer.Token
		Result []Node
	}

	// LimitClause is LIMIT with its count (and optional offset) expressions.
	LimitClause struct {
		LimitKw  lexer.Token
		Children []Node
	}

	// AllColumnsAsterisk is the * of SELECT *, as opposed to the
	// multiplication operator.
	AllColumnsAsterisk struct {
		Token lexer.Token
	}

	// Literal is a string or number token.
	Literal struct {
		Token lexer.Token
	}

	// Identifier is a bare or quoted identifier.
	Identifier struct {
		Token lexer.Token
	}

	// Keyword is any reserved word that needs no structure of its own,
	// including the logical operators whose layout the formatter decides by
	// token type.
	Keyword struct {
		Token lexer.Token
	}

	// DataType is a non-parameterized reserved data type.
	DataType struct {
		Token lexer.Token
	}

	// Parameter is a placeholder of any style; Key carries the name or
	// number when the style has one.
	Parameter struct {
		Token lexer.Token
	}

	// Operator is a non-word operator token.
	Operator struct {
		Token lexer.Token
	}

	// Comma separates expressions in a sequence.
	Comma struct {
		Token lexer.Token
	}

	// LineComment is a comment running to end of line.
	LineComment struct {
		Token lexer.Token
	}

	// BlockComment is a delimited (possibly multi-line) comment.
	BlockComment struct {
		Token lexer.Token
	}
)

func (*Statement) node()             {}
func (*Clause) node()                {}
func (*SetOperation) node()          {}
func (*FunctionCall) node()          {}
func (*ParameterizedDataType) node() {}
func (*ArraySubscript) node()        {}
func (*PropertyAccess) node()        {}
func (*Parenthesis) node()           {}
func (*BetweenPredicate) node()      {}
func (*CaseExpression) node()        {}
func (*CaseWhen) node()              {}
func (*CaseElse) node()              {}
func (*LimitClause) node()           {}
func (*AllColumnsAsterisk) node()    {}
func (*Literal) node()               {}
func (*Identifier) node()            {}
func (*Keyword) node()               {}
func (*DataType) node()              {}
func (*Parameter) node()             {}
func (*Operator) node()              {}
func (*Comma) node()                 {}
func (*LineComment) node()           {}
func (*BlockComment) node()          {}
