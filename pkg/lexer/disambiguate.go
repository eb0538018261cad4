package lexer

// Disambiguate reclassifies tokens that the rule-based scan cannot type
// correctly on its own, using one token of lookahead and lookbehind (comments
// are transparent to both). Token text is never changed, only the type.
//
// The rules, in order of application per token:
//   - a reserved function name not followed by "(" is a plain identifier
//   - any reserved word adjacent to a property access dot is an identifier
//   - a reserved data type followed by "(" is a parameterized data type
//   - an identifier or data type followed by "[" becomes the array variant,
//     consumed later as an array subscript
func Disambiguate(tokens []Token) []Token {
	out := make([]Token, len(tokens))
	copy(out, tokens)

	for i := range out {
		prev := neighbor(out, i, -1)
		next := neighbor(out, i, +1)

		t := &out[i]

		if t.Type == TypeReservedFunctionName && !isOpenParen(next) {
			t.Type = TypeIdentifier
		}

		if t.IsReserved() && (isDot(prev) || isDot(next)) {
			t.Type = TypeIdentifier
		}

		if t.Type == TypeReservedDataType && isOpenParen(next) {
			t.Type = TypeReservedParameterizedType
		}

		if isOpenBracket(next) {
			switch t.Type {
			case TypeIdentifier, TypeQuotedIdentifier:
				t.Type = TypeArrayIdentifier
			case TypeReservedKeyword, TypeReservedDataType:
				t.Type = TypeArrayKeyword
			}
		}
	}

	return out
}

// neighbor returns the nearest non-comment token in the given direction, or
// a zero Token at the stream edges.
func neighbor(tokens []Token, i, dir int) Token {
	for j := i + dir; j >= 0 && j < len(tokens); j += dir {
		if !tokens[j].IsComment() {
			return tokens[j]
		}
	}
	return Token{}
}

func isDot(t Token) bool {
	return t.Type == TypeDot
}

func isOpenParen(t Token) bool {
	return t.Type == TypeOpenParen && t.Raw == "("
}

func isOpenBracket(t Token) bool {
	return t.Type == TypeOpenParen && t.Raw == "["
}
