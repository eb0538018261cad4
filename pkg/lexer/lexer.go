package lexer

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// TokenizeError reports a scan failure: no rule matched at the current
// offset. A tokenize error is fatal for the format call; the scanner never
// skips unmatchable input.
type TokenizeError struct {
	// Line and Column locate the failure (1-based).
	Line   int
	Column int
	// Snippet is a short run of source text starting at the failure.
	Snippet string
	// Dialect is the name of the dialect whose rules were in effect.
	Dialect string
}

func (e *TokenizeError) Error() string {
	msg := fmt.Sprintf("parse error at line %d, column %d near %q", e.Line, e.Column, e.Snippet)
	if e.Dialect == "sql" {
		msg += " (the generic sql dialect was used; a more specific dialect may accept this syntax)"
	}
	return msg
}

// whitespaceRun collapses internal whitespace for canonical reserved text.
var whitespaceRun = strings.NewReplacer("\t", " ", "\n", " ", "\r", " ")

// Tokenize scans the input into an ordered token list terminated by a
// synthetic EOF token. The token stream covers the input completely: every
// non-whitespace byte belongs to exactly one token, and whitespace is
// attached to the following token.
func (rs *RuleSet) Tokenize(input string) ([]Token, error) {
	var tokens []Token
	pos := 0

	for pos < len(input) {
		ws := leadingWhitespace(input[pos:])
		pos += len(ws)
		if pos >= len(input) {
			// Trailing whitespace belongs to the EOF token.
			tokens = append(tokens, Token{Type: TypeEOF, Start: len(input), PrecedingWhitespace: ws})
			return tokens, nil
		}

		tok, ok := rs.match(input, pos)
		if !ok {
			line, col := position(input, pos)
			return nil, &TokenizeError{
				Line:    line,
				Column:  col,
				Snippet: snippet(input[pos:]),
				Dialect: rs.dialect.Name,
			}
		}

		tok.PrecedingWhitespace = ws
		tokens = append(tokens, tok)
		pos += len(tok.Raw)
	}

	tokens = append(tokens, Token{Type: TypeEOF, Start: len(input)})
	return tokens, nil
}

// match tries the nested comment scanner and then each compiled rule, in
// priority order, anchored at pos.
func (rs *RuleSet) match(input string, pos int) (Token, bool) {
	rest := input[pos:]

	if rs.nestedOpen != "" && strings.HasPrefix(rest, rs.nestedOpen) {
		length := scanNestedComment(rest, rs.nestedOpen, rs.nestedClose)
		raw := rest[:length]
		return Token{Type: TypeBlockComment, Raw: raw, Text: raw, Start: pos}, true
	}

	for _, r := range rs.rules {
		raw := r.re.FindString(rest)
		if raw == "" {
			continue
		}
		if r.word && rs.isWordChar(rest[len(raw):]) {
			// A reserved word immediately followed by another word
			// character is part of a longer identifier ("selection").
			continue
		}

		tok := Token{Type: r.typ, Raw: raw, Text: raw, Start: pos}
		if r.word {
			tok.Text = canonical(raw)
		}
		if r.key != nil {
			tok.Key = r.key(raw)
		}
		return tok, true
	}

	return Token{}, false
}

// scanNestedComment is a depth-counting scanner for dialects whose block
// comments nest; this cannot be expressed as a single regular expression.
// It returns the length of the comment, or of the whole remaining input when
// the comment is never balanced.
func scanNestedComment(input, open, close string) int {
	depth := 0
	i := 0

	for i < len(input) {
		switch {
		case strings.HasPrefix(input[i:], open):
			depth++
			i += len(open)
		case strings.HasPrefix(input[i:], close):
			depth--
			i += len(close)
			if depth == 0 {
				return i
			}
		default:
			_, size := utf8.DecodeRuneInString(input[i:])
			i += size
		}
	}
	return len(input)
}

// canonical upper-cases a reserved word and collapses any internal
// whitespace run to a single space ("group   by" -> "GROUP BY").
func canonical(raw string) string {
	s := whitespaceRun.Replace(strings.ToUpper(raw))
	for strings.Contains(s, "  ") {
		s = strings.ReplaceAll(s, "  ", " ")
	}
	return s
}

// isWordChar reports whether the string starts with an identifier character.
func (rs *RuleSet) isWordChar(s string) bool {
	if s == "" {
		return false
	}
	r, _ := utf8.DecodeRuneInString(s)
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' || strings.ContainsRune(rs.wordChars, r)
}

func leadingWhitespace(s string) string {
	end := len(s)
	for i, r := range s {
		if !unicode.IsSpace(r) {
			end = i
			break
		}
	}
	return s[:end]
}

// position converts a byte offset to a 1-based line and column.
func position(input string, offset int) (line, col int) {
	before := input[:offset]
	line = strings.Count(before, "\n") + 1
	if i := strings.LastIndexByte(before, '\n'); i >= 0 {
		col = utf8.RuneCountInString(before[i+1:]) + 1
	} else {
		col = utf8.RuneCountInString(before) + 1
	}
	return line, col
}

// snippet returns a short context string for error messages.
func snippet(s string) string {
	if i := strings.IndexAny(s, "\r\n"); i >= 0 {
		s = s[:i]
	}
	if len(s) > 30 {
		s = s[:30]
	}
	return s
}
