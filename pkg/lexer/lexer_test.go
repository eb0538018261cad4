package lexer_test

import (
	"testing"

	"github.com/pseudomuto/sqlfmt/pkg/dialect"
	. "github.com/pseudomuto/sqlfmt/pkg/lexer"
	"github.com/stretchr/testify/require"
)

func tokenize(t *testing.T, dialectName, input string) []Token {
	t.Helper()

	d, err := dialect.Get(dialectName)
	require.NoError(t, err)

	rs, err := Cached(d)
	require.NoError(t, err)

	tokens, err := rs.Tokenize(input)
	require.NoError(t, err)
	return tokens
}

func types(tokens []Token) []TokenType {
	out := make([]TokenType, len(tokens))
	for i, tok := range tokens {
		out[i] = tok.Type
	}
	return out
}

func TestTokenize(t *testing.T) {
	tokens := tokenize(t, "sql", "select a,b from t where a=1 and b=2")

	require.Equal(t, []TokenType{
		TypeReservedSelect,
		TypeIdentifier, TypeComma, TypeIdentifier,
		TypeReservedClause, TypeIdentifier,
		TypeReservedClause,
		TypeIdentifier, TypeOperator, TypeNumber,
		TypeAnd,
		TypeIdentifier, TypeOperator, TypeNumber,
		TypeEOF,
	}, types(tokens))
}

func TestTokenize_caseInsensitive(t *testing.T) {
	lower := tokenize(t, "sql", "select a from t")
	upper := tokenize(t, "sql", "SELECT a FROM t")

	require.Equal(t, types(lower), types(upper))

	// Canonical text is identical; only the raw text differs.
	require.Equal(t, "SELECT", lower[0].Text)
	require.Equal(t, "SELECT", upper[0].Text)
	require.Equal(t, "select", lower[0].Raw)
}

func TestTokenize_multiWordKeywords(t *testing.T) {
	tokens := tokenize(t, "sql", "select a from t group   by a")

	require.Equal(t, TypeReservedClause, tokens[4].Type)
	require.Equal(t, "GROUP BY", tokens[4].Text)
	require.Equal(t, "group   by", tokens[4].Raw)
}

func TestTokenize_wordBoundary(t *testing.T) {
	// A reserved word prefix inside a longer identifier must not split.
	tokens := tokenize(t, "sql", "selection")

	require.Equal(t, TypeIdentifier, tokens[0].Type)
	require.Equal(t, "selection", tokens[0].Raw)
}

func TestTokenize_strings(t *testing.T) {
	tokens := tokenize(t, "sql", "select 'it''s', \"my col\" from t")

	require.Equal(t, TypeString, tokens[1].Type)
	require.Equal(t, "'it''s'", tokens[1].Raw)
	require.Equal(t, TypeQuotedIdentifier, tokens[3].Type)
	require.Equal(t, `"my col"`, tokens[3].Raw)
}

func TestTokenize_comments(t *testing.T) {
	tokens := tokenize(t, "sql", "-- first\nselect /* note */ 1")

	require.Equal(t, TypeLineComment, tokens[0].Type)
	require.Equal(t, "-- first", tokens[0].Raw)

	require.Equal(t, TypeReservedSelect, tokens[1].Type)
	require.True(t, tokens[1].HasNewlineBefore())

	require.Equal(t, TypeBlockComment, tokens[2].Type)
	require.Equal(t, "/* note */", tokens[2].Raw)
}

func TestTokenize_nestedComments(t *testing.T) {
	input := "/* a /* b */ c */"

	// PostgreSQL block comments nest: the whole input is one token.
	tokens := tokenize(t, "postgresql", input)
	require.Equal(t, []TokenType{TypeBlockComment, TypeEOF}, types(tokens))
	require.Equal(t, input, tokens[0].Raw)

	// The generic dialect stops at the first close marker.
	tokens = tokenize(t, "sql", input)
	require.Equal(t, TypeBlockComment, tokens[0].Type)
	require.Equal(t, "/* a /* b */", tokens[0].Raw)
	require.Greater(t, len(tokens), 2)
}

func TestTokenize_unbalancedNestedComment(t *testing.T) {
	// An unterminated nested comment consumes the rest of the input.
	tokens := tokenize(t, "postgresql", "/* a /* b */ select 1")

	require.Equal(t, []TokenType{TypeBlockComment, TypeEOF}, types(tokens))
	require.Equal(t, "/* a /* b */ select 1", tokens[0].Raw)
}

func TestTokenize_params(t *testing.T) {
	tokens := tokenize(t, "sql", "select * from t where id = ?")
	require.Equal(t, TypePositionalParameter, tokens[len(tokens)-2].Type)

	tokens = tokenize(t, "postgresql", "select $1, $2")
	require.Equal(t, TypeNumberedParameter, tokens[1].Type)
	require.Equal(t, "1", tokens[1].Key)
	require.Equal(t, "2", tokens[3].Key)

	tokens = tokenize(t, "transactsql", "select @name")
	require.Equal(t, TypeNamedParameter, tokens[1].Type)
	require.Equal(t, "name", tokens[1].Key)
}

func TestTokenize_error(t *testing.T) {
	d, err := dialect.Get("sql")
	require.NoError(t, err)

	rs, err := Cached(d)
	require.NoError(t, err)

	_, err = rs.Tokenize("select a #")
	require.Error(t, err)

	var terr *TokenizeError
	require.ErrorAs(t, err, &terr)
	require.Equal(t, 1, terr.Line)
	require.Equal(t, 10, terr.Column)
	require.ErrorContains(t, err, "generic sql dialect")

	// The same character is a valid operator elsewhere.
	tokens := tokenize(t, "postgresql", "select a # b")
	require.Equal(t, TypeOperator, tokens[2].Type)
}

func TestCompileWithParams(t *testing.T) {
	d, err := dialect.Get("sql")
	require.NoError(t, err)

	rs, err := CompileWithParams(d, dialect.ParamStyle{Custom: []string{`\{\d+\}`}})
	require.NoError(t, err)

	tokens, err := rs.Tokenize("select {0}")
	require.NoError(t, err)
	require.Equal(t, TypeCustomParameter, tokens[1].Type)
	require.Equal(t, "{0}", tokens[1].Raw)
}

func TestCompileWithParams_badPattern(t *testing.T) {
	d, err := dialect.Get("sql")
	require.NoError(t, err)

	_, err = CompileWithParams(d, dialect.ParamStyle{Custom: []string{""}})
	require.ErrorIs(t, err, ErrBadCustomParam)

	_, err = CompileWithParams(d, dialect.ParamStyle{Custom: []string{"("}})
	require.ErrorIs(t, err, ErrBadCustomParam)
}

func TestCached_sharesRuleSets(t *testing.T) {
	d, err := dialect.Get("mysql")
	require.NoError(t, err)

	a, err := Cached(d)
	require.NoError(t, err)
	b, err := Cached(d)
	require.NoError(t, err)

	require.Same(t, a, b)
}
