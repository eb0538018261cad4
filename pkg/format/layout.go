// Package format renders parsed SQL statements into consistently indented,
// consistently cased text.
//
// Rendering happens in two layers. The expression formatter walks the syntax
// tree and emits literal text plus symbolic whitespace directives into a
// layout buffer; the buffer interprets directive semantics (collapsing
// newlines, trimming before punctuation, expanding indentation) and produces
// the final string. Sub-expressions are first attempted on a single bounded
// line and fall back to block form when they exceed the configured expression
// width.
package format

import (
	"strings"
)

// ws is a symbolic whitespace directive understood by layout buffers.
type ws int

const (
	// space requests a single separating space.
	space ws = iota
	// noSpace trims any trailing space or indentation.
	noSpace
	// noNewline additionally trims a trailing soft newline.
	noNewline
	// newline requests a line break; consecutive requests collapse, and a
	// mandatory newline supersedes a soft one.
	newline
	// mandatoryNewline is a line break that later directives cannot trim.
	mandatoryNewline
	// wsIndent expands to one singleIndent per indentation stack frame.
	wsIndent
	// singleIndent is exactly one indentation unit.
	singleIndent
)

type itemKind int

const (
	itemText itemKind = iota
	itemSpace
	itemNewline
	itemMandatoryNewline
	itemSingleIndent
)

type item struct {
	kind itemKind
	text string
}

// frame kinds for the indentation stack.
type frameKind int

const (
	frameTopLevel frameKind = iota
	frameBlockLevel
)

// indentation tracks the current indent depth as a stack of frames:
// top-level frames for clause bodies, block-level frames for bracketed
// sub-expressions. Depth can never go negative; mismatched decreases are
// absorbed rather than underflowing.
type indentation struct {
	unit   string
	frames []frameKind
}

func newIndentation(unit string) *indentation {
	return &indentation{unit: unit}
}

func (i *indentation) depth() int { return len(i.frames) }

func (i *indentation) increaseTopLevel() {
	i.frames = append(i.frames, frameTopLevel)
}

func (i *indentation) increaseBlockLevel() {
	i.frames = append(i.frames, frameBlockLevel)
}

// decreaseTopLevel pops the top frame only when it is a top-level frame, so
// an unbalanced call cannot eat an enclosing block.
func (i *indentation) decreaseTopLevel() {
	if n := len(i.frames); n > 0 && i.frames[n-1] == frameTopLevel {
		i.frames = i.frames[:n-1]
	}
}

// decreaseBlockLevel pops frames until it has removed the nearest
// block-level frame, discarding top-level frames nested inside it; a clause
// that was never explicitly closed must not leak indentation past its
// enclosing brackets.
func (i *indentation) decreaseBlockLevel() {
	for n := len(i.frames); n > 0; n = len(i.frames) {
		top := i.frames[n-1]
		i.frames = i.frames[:n-1]
		if top == frameBlockLevel {
			return
		}
	}
}

// buffer is the shared surface of the block layout and the bounded inline
// layout. Arguments to add are literal strings and ws directives; the inline
// variant reports width overflow through the returned error.
type buffer interface {
	add(args ...any) error
}

// layout is the unbounded block buffer. Its add never fails.
type layout struct {
	items       []item
	indentation *indentation
}

func newLayout(ind *indentation) *layout {
	return &layout{indentation: ind}
}

func (l *layout) add(args ...any) error {
	for _, arg := range args {
		switch v := arg.(type) {
		case string:
			l.items = append(l.items, item{kind: itemText, text: v})
		case ws:
			l.directive(v)
		default:
			panic("layout: argument must be string or ws directive")
		}
	}
	return nil
}

func (l *layout) directive(d ws) {
	switch d {
	case space:
		if k, ok := l.last(); ok && k == itemText {
			l.items = append(l.items, item{kind: itemSpace})
		}
	case noSpace:
		l.trimHorizontal()
	case noNewline:
		l.trimHorizontal()
		if k, ok := l.last(); ok && k == itemNewline {
			l.items = l.items[:len(l.items)-1]
			l.trimHorizontal()
		}
	case newline:
		l.trimHorizontal()
		if k, ok := l.last(); ok && k != itemNewline && k != itemMandatoryNewline {
			l.items = append(l.items, item{kind: itemNewline})
		}
	case mandatoryNewline:
		l.trimHorizontal()
		if k, ok := l.last(); ok {
			if k == itemNewline {
				l.items[len(l.items)-1] = item{kind: itemMandatoryNewline}
			} else if k != itemMandatoryNewline {
				l.items = append(l.items, item{kind: itemMandatoryNewline})
			}
		}
	case wsIndent:
		for i := 0; i < l.indentation.depth(); i++ {
			l.items = append(l.items, item{kind: itemSingleIndent})
		}
	case singleIndent:
		l.items = append(l.items, item{kind: itemSingleIndent})
	}
}

// last returns the kind of the final item, or false for an empty buffer.
// Directives that only separate existing content are no-ops at the start of
// the buffer, which keeps statements from opening with blank lines.
func (l *layout) last() (itemKind, bool) {
	if len(l.items) == 0 {
		return 0, false
	}
	return l.items[len(l.items)-1].kind, true
}

// trimHorizontal drops trailing spaces and indentation.
func (l *layout) trimHorizontal() {
	for n := len(l.items); n > 0; n = len(l.items) {
		k := l.items[n-1].kind
		if k != itemSpace && k != itemSingleIndent {
			return
		}
		l.items = l.items[:n-1]
	}
}

func (l *layout) String() string {
	var sb strings.Builder
	for _, it := range l.items {
		switch it.kind {
		case itemText:
			sb.WriteString(it.text)
		case itemSpace:
			sb.WriteByte(' ')
		case itemNewline, itemMandatoryNewline:
			sb.WriteByte('\n')
		case itemSingleIndent:
			sb.WriteString(l.indentation.unit)
		}
	}
	return sb.String()
}
