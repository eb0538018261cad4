package lexer

import (
	"regexp"
	"sort"
	"strings"
	"sync"

	"github.com/pkg/errors"
	"github.com/pseudomuto/sqlfmt/pkg/dialect"
)

// ErrBadCustomParam is returned when a dialect or caller supplies a custom
// parameter pattern that is empty or does not compile. An empty pattern would
// match at every offset and never terminate the scan.
var ErrBadCustomParam = errors.New("invalid custom parameter pattern")

type (
	// rule is one compiled tokenizer rule. Rules are tried in order at the
	// current scan offset; the first anchored match wins.
	rule struct {
		typ TokenType
		re  *regexp.Regexp

		// word marks rules that match reserved words or identifiers; their
		// matches are rejected when followed by another word character, and
		// their canonical text is upper-cased with internal whitespace
		// collapsed.
		word bool

		// key extracts the parameter key from the raw match, when set.
		key func(string) string
	}

	// RuleSet is a dialect compiled into an ordered list of rules. It is
	// immutable and safe for concurrent use.
	RuleSet struct {
		dialect   *dialect.Dialect
		rules     []rule
		wordChars string

		// nestedOpen/nestedClose enable the depth-counting block comment
		// scanner; both are empty for dialects without nested comments.
		nestedOpen  string
		nestedClose string
	}
)

// cache memoizes compiled rule sets by dialect identity. Entries are added on
// first use and never evicted; dialects are immutable so entries never go
// stale.
var cache sync.Map // *dialect.Dialect -> *RuleSet

// Cached returns the memoized rule set for d, compiling it on first use.
// Concurrent callers may race to compile but always observe a single stored
// result.
func Cached(d *dialect.Dialect) (*RuleSet, error) {
	if v, ok := cache.Load(d); ok {
		return v.(*RuleSet), nil
	}

	rs, err := Compile(d)
	if err != nil {
		return nil, err
	}

	v, _ := cache.LoadOrStore(d, rs)
	return v.(*RuleSet), nil
}

// Compile builds the ordered rule list for a dialect using the dialect's own
// parameter style.
func Compile(d *dialect.Dialect) (*RuleSet, error) {
	return compile(d, d.Params)
}

// CompileWithParams builds a rule set with the parameter style replaced by an
// explicit per-call override. The result is not cached; parameter overrides
// are call-scoped state and must never leak into the shared dialect cache.
func CompileWithParams(d *dialect.Dialect, params dialect.ParamStyle) (*RuleSet, error) {
	return compile(d, params)
}

func compile(d *dialect.Dialect, params dialect.ParamStyle) (*RuleSet, error) {
	rs := &RuleSet{
		dialect:   d,
		wordChars: d.IdentChars,
	}
	if d.Comments.Nested {
		rs.nestedOpen = d.Comments.BlockOpen
		rs.nestedClose = d.Comments.BlockClose
	}

	b := &ruleBuilder{wordPattern: wordPattern(d.IdentChars)}

	// Comments first: comment markers often share characters with operators.
	if len(d.Comments.Line) > 0 {
		b.add(TypeLineComment, alternation(d.Comments.Line)+`[^\r\n]*`)
	}
	if d.Comments.BlockOpen != "" && !d.Comments.Nested {
		open, close := regexp.QuoteMeta(d.Comments.BlockOpen), regexp.QuoteMeta(d.Comments.BlockClose)
		b.add(TypeBlockComment, open+`[\s\S]*?`+close)
	}

	// Quoted regions before any word or operator rules.
	for _, q := range d.StringTypes {
		b.add(TypeString, quotePattern(q))
	}
	for _, q := range d.IdentTypes {
		b.add(TypeQuotedIdentifier, quotePattern(q))
	}

	if err := b.addParamRules(params, d); err != nil {
		return nil, err
	}

	b.add(TypeNumber, `0x[0-9a-fA-F]+|0b[01]+|\d+(?:\.\d*)?(?:[eE][+-]?\d+)?|\.\d+`)

	// Reserved vocabulary: phrases and multi-word variants must outrank the
	// single words they start with, so every word list is sorted longest
	// match first and phrases precede plain keywords.
	b.addWord(TypeReservedPhrase, d.ReservedPhrases)
	b.addWord(TypeCase, []string{"CASE"})
	b.addWord(TypeEnd, []string{"END"})
	b.addWord(TypeBetween, []string{"BETWEEN"})
	b.addWord(TypeLimit, []string{"LIMIT"})
	b.addWord(TypeAnd, []string{"AND"})
	b.addWord(TypeOr, []string{"OR"})
	b.addWord(TypeXor, []string{"XOR"})
	b.addWord(TypeReservedSetOperation, d.ReservedSetOperations)
	b.addWord(TypeReservedSelect, d.ReservedSelect)
	b.addWord(TypeReservedClause, d.ReservedClauses)
	b.addWord(TypeReservedJoin, d.ReservedJoins)
	b.addWord(TypeReservedDataType, d.ReservedDataTypes)
	b.addWord(TypeReservedFunctionName, d.ReservedFunctionNames)
	b.addWord(TypeReservedKeyword, d.ReservedKeywords)

	b.addRule(rule{typ: TypeIdentifier, re: anchored(b.wordPattern), word: true})

	b.add(TypeDelimiter, `;`)
	b.add(TypeComma, `,`)

	// Multi-character operators must win over their single-character
	// prefixes; the bare asterisk keeps its own token type.
	if ops := operatorList(d); len(ops) > 0 {
		b.add(TypeOperator, alternation(ops))
	}
	b.add(TypeAsterisk, `\*`)
	b.add(TypeDot, `\.`)

	b.add(TypeOpenParen, alternation(openParens(d)))
	b.add(TypeCloseParen, alternation(closeParens(d)))

	rs.rules = b.rules
	return rs, nil
}

// ruleBuilder accumulates compiled rules in priority order.
type ruleBuilder struct {
	rules       []rule
	wordPattern string
}

func (b *ruleBuilder) addRule(r rule) {
	b.rules = append(b.rules, r)
}

func (b *ruleBuilder) add(typ TokenType, pattern string) {
	b.addRule(rule{typ: typ, re: anchored(pattern)})
}

// addWord compiles a reserved word list into one case-insensitive rule.
// Multi-word entries tolerate arbitrary internal whitespace.
func (b *ruleBuilder) addWord(typ TokenType, words []string) {
	if len(words) == 0 {
		return
	}

	sorted := make([]string, len(words))
	copy(sorted, words)
	sort.Slice(sorted, func(i, j int) bool { return len(sorted[i]) > len(sorted[j]) })

	parts := make([]string, len(sorted))
	for i, w := range sorted {
		fields := strings.Fields(w)
		for j, f := range fields {
			fields[j] = regexp.QuoteMeta(f)
		}
		parts[i] = strings.Join(fields, `\s+`)
	}

	b.addRule(rule{
		typ:  typ,
		re:   anchored(`(?i)(?:` + strings.Join(parts, "|") + `)`),
		word: true,
	})
}

func (b *ruleBuilder) addParamRules(params dialect.ParamStyle, d *dialect.Dialect) error {
	for _, pattern := range params.Custom {
		if pattern == "" {
			return errors.Wrap(ErrBadCustomParam, "empty pattern")
		}
		re, err := regexp.Compile(`\A(?:` + pattern + `)`)
		if err != nil {
			return errors.Wrapf(ErrBadCustomParam, "%q: %v", pattern, err)
		}
		b.addRule(rule{typ: TypeCustomParameter, re: re})
	}

	for _, prefix := range params.Quoted {
		p := prefix
		quotes := make([]string, 0, len(d.IdentTypes))
		for _, q := range d.IdentTypes {
			quotes = append(quotes, quotePattern(q))
		}
		b.addRule(rule{
			typ: TypeQuotedParameter,
			re:  anchored(regexp.QuoteMeta(p) + `(?:` + strings.Join(quotes, "|") + `)`),
			key: func(raw string) string {
				unprefixed := raw[len(p):]
				return unprefixed[1 : len(unprefixed)-1]
			},
		})
	}

	for _, prefix := range params.Named {
		p := prefix
		b.addRule(rule{
			typ: TypeNamedParameter,
			re:  anchored(regexp.QuoteMeta(p) + b.wordPattern),
			key: func(raw string) string { return raw[len(p):] },
		})
	}

	for _, prefix := range params.Numbered {
		p := prefix
		b.addRule(rule{
			typ: TypeNumberedParameter,
			re:  anchored(regexp.QuoteMeta(p) + `\d+`),
			key: func(raw string) string { return raw[len(p):] },
		})
	}

	if params.Positional {
		b.add(TypePositionalParameter, `\?`)
	}

	return nil
}

// anchored compiles a pattern that must match at the start of the remaining
// input.
func anchored(pattern string) *regexp.Regexp {
	return regexp.MustCompile(`\A(?:` + pattern + `)`)
}

// alternation builds a regex matching any of the literals, longest first so
// that prefixes never shadow longer variants.
func alternation(literals []string) string {
	sorted := make([]string, len(literals))
	copy(sorted, literals)
	sort.Slice(sorted, func(i, j int) bool { return len(sorted[i]) > len(sorted[j]) })

	for i, l := range sorted {
		sorted[i] = regexp.QuoteMeta(l)
	}
	return `(?:` + strings.Join(sorted, "|") + `)`
}

// wordPattern builds the bare identifier pattern, extended with the
// dialect's extra identifier characters.
func wordPattern(identChars string) string {
	return `[\p{L}\p{N}_` + regexp.QuoteMeta(identChars) + `]+`
}

// quotePattern builds the pattern for one quoting variant, including its
// optional or required prefixes and escaping style.
func quotePattern(q dialect.QuoteStyle) string {
	var body string
	end := classEscape(q.End)
	endLit := regexp.QuoteMeta(q.End)

	switch q.Escape {
	case dialect.EscapeDouble:
		body = `(?:[^` + end + `]|` + endLit + endLit + `)*`
	case dialect.EscapeBackslash:
		body = `(?:[^` + end + `\\]|\\[\s\S])*`
	case dialect.EscapeDoubleOrBackslash:
		body = `(?:[^` + end + `\\]|` + endLit + endLit + `|\\[\s\S])*`
	default:
		body = `[^` + end + `]*`
	}

	pattern := regexp.QuoteMeta(q.Start) + body + endLit

	if len(q.Prefixes) > 0 {
		prefix := `(?i)(?:` + alternation(q.Prefixes) + `)`
		if !q.RequiredPrefix {
			prefix += `?`
		}
		pattern = prefix + pattern
	}
	return pattern
}

// classEscape escapes a single character for use inside a regex character
// class.
func classEscape(c string) string {
	switch c {
	case `]`, `\`, `^`, `-`:
		return `\` + c
	}
	return c
}

// operatorList returns the dialect's operators with the bare asterisk
// removed; "*" keeps its dedicated token type.
func operatorList(d *dialect.Dialect) []string {
	all := d.AllOperators()
	out := all[:0]
	for _, op := range all {
		if op != "*" && op != "." {
			out = append(out, op)
		}
	}
	return out
}

func openParens(d *dialect.Dialect) []string {
	out := make([]string, 0, len(d.Parens))
	for _, p := range d.Parens {
		out = append(out, p[:1])
	}
	return out
}

func closeParens(d *dialect.Dialect) []string {
	out := make([]string, 0, len(d.Parens))
	for _, p := range d.Parens {
		out = append(out, p[1:])
	}
	return out
}
