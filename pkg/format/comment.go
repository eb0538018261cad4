package format

import (
	"strings"

	"github.com/pseudomuto/sqlfmt/pkg/lexer"
)

// formatLineComment emits a line comment followed by a mandatory break, since
// everything after it on the same line would be swallowed. A comment that had
// a line of its own in the source keeps it; one that trailed code stays
// attached to the preceding text.
func (e *expressionFormatter) formatLineComment(tok lexer.Token) error {
	if tok.HasNewlineBefore() {
		return e.buf.add(newline, wsIndent, tok.Raw, mandatoryNewline, wsIndent)
	}
	return e.buf.add(tok.Raw, mandatoryNewline, wsIndent)
}

// formatBlockComment re-indents a block comment to the current depth. In doc
// comment shape, where every continuation line starts with an asterisk, the
// asterisks are re-aligned one column past the opening slash; otherwise
// continuation lines are flattened to the current indent.
func (e *expressionFormatter) formatBlockComment(tok lexer.Token) error {
	if tok.HasNewlineBefore() {
		if err := e.buf.add(newline, wsIndent); err != nil {
			return err
		}
	}

	lines := strings.Split(tok.Raw, "\n")
	if len(lines) == 1 {
		return e.buf.add(tok.Raw, space)
	}

	doc := true
	for _, line := range lines[1:] {
		if !strings.HasPrefix(strings.TrimLeft(line, " \t"), "*") {
			doc = false
			break
		}
	}

	if err := e.buf.add(strings.TrimRight(lines[0], " \t")); err != nil {
		return err
	}
	for _, line := range lines[1:] {
		line = strings.TrimLeft(line, " \t")
		if doc {
			line = " " + line
		}
		if err := e.buf.add(mandatoryNewline, wsIndent, line); err != nil {
			return err
		}
	}
	return e.buf.add(space)
}
