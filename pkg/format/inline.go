package format

import (
	"strings"
	"unicode/utf8"

	"github.com/pkg/errors"
)

// errInlineOverflow is the expected, package-internal signal that a
// speculative single-line render does not fit. It always resolves into a
// block-form render and is never observable outside the formatter.
var errInlineOverflow = errors.New("inline rendering exceeds expression width")

// inlineLayout is the bounded single-line buffer used for speculative inline
// rendering. Consecutive space-like directives collapse to one; any newline
// request, or exceeding the width budget, reports overflow immediately.
type inlineLayout struct {
	width        int
	length       int
	pendingSpace bool
	sb           strings.Builder
}

func newInlineLayout(width int) *inlineLayout {
	return &inlineLayout{width: width}
}

func (l *inlineLayout) add(args ...any) error {
	for _, arg := range args {
		switch v := arg.(type) {
		case string:
			if l.pendingSpace && l.sb.Len() > 0 {
				l.sb.WriteByte(' ')
				l.length++
			}
			l.pendingSpace = false
			l.sb.WriteString(v)
			l.length += utf8.RuneCountInString(v)
			if l.length > l.width {
				return errInlineOverflow
			}
		case ws:
			switch v {
			case space, wsIndent, singleIndent:
				l.pendingSpace = true
			case noSpace, noNewline:
				l.pendingSpace = false
			case newline, mandatoryNewline:
				return errInlineOverflow
			}
		default:
			panic("layout: argument must be string or ws directive")
		}
	}
	return nil
}

func (l *inlineLayout) String() string {
	return l.sb.String()
}
