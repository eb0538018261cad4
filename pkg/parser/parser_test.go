package parser_test

import (
	"testing"

	"github.com/pseudomuto/sqlfmt/pkg/dialect"
	"github.com/pseudomuto/sqlfmt/pkg/lexer"
	. "github.com/pseudomuto/sqlfmt/pkg/parser"
	"github.com/stretchr/testify/require"
)

func parse(t *testing.T, dialectName, sql string) []*Statement {
	t.Helper()

	stmts, err := tryParse(t, dialectName, sql)
	require.NoError(t, err)
	return stmts
}

func tryParse(t *testing.T, dialectName, sql string) ([]*Statement, error) {
	t.Helper()

	d, err := dialect.Get(dialectName)
	require.NoError(t, err)

	rs, err := lexer.Cached(d)
	require.NoError(t, err)

	tokens, err := rs.Tokenize(sql)
	require.NoError(t, err)

	return Parse(lexer.Disambiguate(tokens))
}

func TestParse_statements(t *testing.T) {
	stmts := parse(t, "sql", "select 1; select 2")

	require.Len(t, stmts, 2)
	require.True(t, stmts[0].HasSemicolon)
	require.False(t, stmts[1].HasSemicolon)
}

func TestParse_clauses(t *testing.T) {
	stmts := parse(t, "sql", "select a, b from t where a = 1")
	require.Len(t, stmts, 1)

	children := stmts[0].Children
	require.Len(t, children, 3)

	sel, ok := children[0].(*Clause)
	require.True(t, ok)
	require.Equal(t, "SELECT", sel.NameKw.Text)
	require.Len(t, sel.Children, 3) // a , b

	from, ok := children[1].(*Clause)
	require.True(t, ok)
	require.Equal(t, "FROM", from.NameKw.Text)
	require.Len(t, from.Children, 1)

	where, ok := children[2].(*Clause)
	require.True(t, ok)
	require.Len(t, where.Children, 3) // a = 1
}

func TestParse_functionCall(t *testing.T) {
	stmts := parse(t, "sql", "select count(*) from t")

	sel := stmts[0].Children[0].(*Clause)
	call, ok := sel.Children[0].(*FunctionCall)
	require.True(t, ok)
	require.Equal(t, "COUNT", call.NameKw.Text)
	require.Len(t, call.Parens.Children, 1)
	require.IsType(t, &AllColumnsAsterisk{}, call.Parens.Children[0])
}

func TestParse_unknownFunctionCall(t *testing.T) {
	// An identifier glued to a parenthesis parses as a call even without a
	// dialect table entry.
	stmts := parse(t, "sql", "select my_func(1)")

	sel := stmts[0].Children[0].(*Clause)
	call, ok := sel.Children[0].(*FunctionCall)
	require.True(t, ok)
	require.Equal(t, "my_func", call.NameKw.Raw)

	// With a space between, it is an identifier and a parenthesis.
	stmts = parse(t, "sql", "select my_func (1)")
	sel = stmts[0].Children[0].(*Clause)
	require.IsType(t, &Identifier{}, sel.Children[0])
	require.IsType(t, &Parenthesis{}, sel.Children[1])
}

func TestParse_propertyAccess(t *testing.T) {
	stmts := parse(t, "sql", "select t.*, a.b.c from t")

	sel := stmts[0].Children[0].(*Clause)

	star, ok := sel.Children[0].(*PropertyAccess)
	require.True(t, ok)
	require.IsType(t, &AllColumnsAsterisk{}, star.Property)

	chain, ok := sel.Children[2].(*PropertyAccess)
	require.True(t, ok)
	require.IsType(t, &PropertyAccess{}, chain.Object)
}

func TestParse_asteriskDisambiguation(t *testing.T) {
	stmts := parse(t, "sql", "select a * 2 from t")

	sel := stmts[0].Children[0].(*Clause)
	require.Len(t, sel.Children, 3)
	require.IsType(t, &Operator{}, sel.Children[1])

	stmts = parse(t, "sql", "select *, a from t")
	sel = stmts[0].Children[0].(*Clause)
	require.IsType(t, &AllColumnsAsterisk{}, sel.Children[0])
}

func TestParse_subquery(t *testing.T) {
	stmts := parse(t, "sql", "select * from (select id from t) x")

	from := stmts[0].Children[1].(*Clause)
	parens, ok := from.Children[0].(*Parenthesis)
	require.True(t, ok)
	require.Len(t, parens.Children, 2)
	require.IsType(t, &Clause{}, parens.Children[0])
	require.IsType(t, &Clause{}, parens.Children[1])
}

func TestParse_caseExpression(t *testing.T) {
	stmts := parse(t, "sql", "select case x when 1 then 'one' else 'many' end from t")

	sel := stmts[0].Children[0].(*Clause)
	caseExpr, ok := sel.Children[0].(*CaseExpression)
	require.True(t, ok)

	require.Len(t, caseExpr.Subject, 1)
	require.Len(t, caseExpr.Clauses, 2)
	require.IsType(t, &CaseWhen{}, caseExpr.Clauses[0])
	require.IsType(t, &CaseElse{}, caseExpr.Clauses[1])
	require.Equal(t, "END", caseExpr.EndKw.Text)
}

func TestParse_between(t *testing.T) {
	stmts := parse(t, "sql", "select * from t where a between 1 and 10 and b = 2")

	where := stmts[0].Children[2].(*Clause)

	between, ok := where.Children[1].(*BetweenPredicate)
	require.True(t, ok)
	require.Len(t, between.Expr1, 1)
	require.Len(t, between.Expr2, 1)

	// The second AND is an ordinary logical operator.
	kw, ok := where.Children[2].(*Keyword)
	require.True(t, ok)
	require.Equal(t, "AND", kw.Token.Text)
}

func TestParse_limit(t *testing.T) {
	stmts := parse(t, "sql", "select * from t limit 10, 20")

	limit, ok := stmts[0].Children[2].(*LimitClause)
	require.True(t, ok)
	require.Len(t, limit.Children, 3)
}

func TestParse_setOperation(t *testing.T) {
	stmts := parse(t, "sql", "select a from t union all select b from u")

	require.Len(t, stmts, 1)
	require.IsType(t, &SetOperation{}, stmts[0].Children[2])
}

func TestParse_errors(t *testing.T) {
	tests := []struct {
		name string
		sql  string
		msg  string
	}{
		{name: "unclosed paren", sql: "select (1", msg: `missing closing ")"`},
		{name: "stray close paren", sql: "select 1)", msg: "unexpected"},
		{name: "stray end", sql: "select end", msg: "END without matching CASE"},
		{name: "case without end", sql: "select case when a then 1", msg: "CASE without matching END"},
		{name: "when without then", sql: "select case when a end", msg: "WHEN without matching THEN"},
		{name: "between without and", sql: "select * from t where a between 1", msg: "BETWEEN without matching AND"},
		{name: "semicolon inside parens", sql: "select (1;2)", msg: "inside brackets"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tryParse(t, "sql", tt.sql)
			require.Error(t, err)

			var perr *ParseError
			require.ErrorAs(t, err, &perr)
			require.ErrorContains(t, err, tt.msg)
		})
	}
}

func TestParse_mismatchedBrackets(t *testing.T) {
	_, err := tryParse(t, "postgresql", "select arr[1)")
	require.Error(t, err)
	require.ErrorContains(t, err, `expected "]"`)
}
