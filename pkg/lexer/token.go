// Package lexer compiles a dialect description into an ordered set of
// tokenizer rules and scans SQL text into a flat token stream.
//
// Rule sets are pure functions of their dialect and are memoized in a
// process-wide, thread-safe cache, so concurrent format calls sharing one
// dialect never recompile patterns.
package lexer

import "strings"

// TokenType classifies a scanned token.
type TokenType string

// Token types produced by the tokenizer. The RESERVED_* types come straight
// from the dialect's word tables; ARRAY_* and RESERVED_PARAMETERIZED_DATA_TYPE
// are only introduced by the disambiguation pass.
const (
	TypeEOF                       TokenType = "EOF"
	TypeLineComment               TokenType = "LINE_COMMENT"
	TypeBlockComment              TokenType = "BLOCK_COMMENT"
	TypeQuotedIdentifier          TokenType = "QUOTED_IDENTIFIER"
	TypeIdentifier                TokenType = "IDENTIFIER"
	TypeString                    TokenType = "STRING"
	TypeNumber                    TokenType = "NUMBER"
	TypeReservedClause            TokenType = "RESERVED_CLAUSE"
	TypeReservedSelect            TokenType = "RESERVED_SELECT"
	TypeReservedSetOperation      TokenType = "RESERVED_SET_OPERATION"
	TypeReservedJoin              TokenType = "RESERVED_JOIN"
	TypeReservedPhrase            TokenType = "RESERVED_PHRASE"
	TypeReservedKeyword           TokenType = "RESERVED_KEYWORD"
	TypeReservedFunctionName      TokenType = "RESERVED_FUNCTION_NAME"
	TypeReservedDataType          TokenType = "RESERVED_DATA_TYPE"
	TypeReservedParameterizedType TokenType = "RESERVED_PARAMETERIZED_DATA_TYPE"
	TypeArrayIdentifier           TokenType = "ARRAY_IDENTIFIER"
	TypeArrayKeyword              TokenType = "ARRAY_KEYWORD"
	TypeCase                      TokenType = "CASE"
	TypeEnd                       TokenType = "END"
	TypeBetween                   TokenType = "BETWEEN"
	TypeLimit                     TokenType = "LIMIT"
	TypeAnd                       TokenType = "AND"
	TypeOr                        TokenType = "OR"
	TypeXor                       TokenType = "XOR"
	TypeNamedParameter            TokenType = "NAMED_PARAMETER"
	TypeQuotedParameter           TokenType = "QUOTED_PARAMETER"
	TypeNumberedParameter         TokenType = "NUMBERED_PARAMETER"
	TypePositionalParameter       TokenType = "POSITIONAL_PARAMETER"
	TypeCustomParameter           TokenType = "CUSTOM_PARAMETER"
	TypeOperator                  TokenType = "OPERATOR"
	TypeAsterisk                  TokenType = "ASTERISK"
	TypeDot                       TokenType = "DOT"
	TypeComma                     TokenType = "COMMA"
	TypeOpenParen                 TokenType = "OPEN_PAREN"
	TypeCloseParen                TokenType = "CLOSE_PAREN"
	TypeDelimiter                 TokenType = "DELIMITER"
)

// Token is one scanned unit of input. Tokens are immutable once produced.
type Token struct {
	Type TokenType

	// Raw is the exact matched source text.
	Raw string

	// Text is the canonical form: upper-cased with internal whitespace
	// collapsed for reserved words, identical to Raw otherwise.
	Text string

	// Start is the byte offset of the token in the input. The EOF token
	// reports the input length.
	Start int

	// Key carries the name or number of a parameter token, without its
	// prefix or quotes.
	Key string

	// PrecedingWhitespace is the whitespace between the previous token and
	// this one. Whitespace never forms a token of its own.
	PrecedingWhitespace string
}

// IsComment reports whether the token is a line or block comment.
func (t Token) IsComment() bool {
	return t.Type == TypeLineComment || t.Type == TypeBlockComment
}

// IsReserved reports whether the token came from a reserved-word table.
func (t Token) IsReserved() bool {
	switch t.Type {
	case TypeReservedClause, TypeReservedSelect, TypeReservedSetOperation,
		TypeReservedJoin, TypeReservedPhrase, TypeReservedKeyword,
		TypeReservedFunctionName, TypeReservedDataType,
		TypeReservedParameterizedType, TypeCase, TypeEnd, TypeBetween,
		TypeLimit, TypeAnd, TypeOr, TypeXor:
		return true
	}
	return false
}

// HasNewlineBefore reports whether the token was preceded by a line break in
// the source.
func (t Token) HasNewlineBefore() bool {
	return strings.ContainsAny(t.PrecedingWhitespace, "\r\n")
}
