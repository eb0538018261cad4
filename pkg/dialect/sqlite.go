package dialect

func init() {
	register(&Dialect{
		Name: "sqlite",

		ReservedClauses:       standardClauses,
		ReservedSelect:        []string{"SELECT", "SELECT DISTINCT", "SELECT ALL"},
		ReservedSetOperations: standardSetOperations,
		ReservedJoins:         standardJoins,
		ReservedPhrases:       standardPhrases,
		ReservedKeywords:      merge(standardKeywords, []string{"GLOB", "MATCH", "REGEXP", "WITHOUT"}),
		ReservedFunctionNames: merge(standardFunctions, []string{"DATETIME", "IFNULL", "INSTR", "JULIANDAY", "STRFTIME", "TYPEOF"}),
		ReservedDataTypes:     standardDataTypes,
		OnelineClauses:        standardOnelineClauses,

		Operators:               []string{"->>", "->", "&", "|", "~", "<<", ">>"},
		PropertyAccessOperators: []string{"."},
		Parens:                  []string{"()"},

		StringTypes: []QuoteStyle{
			{Start: "'", End: "'", Escape: EscapeDouble, Prefixes: []string{"X"}},
		},
		IdentTypes: []QuoteStyle{
			{Start: `"`, End: `"`, Escape: EscapeDouble},
			{Start: "[", End: "]", Escape: EscapeNone},
			{Start: "`", End: "`", Escape: EscapeDouble},
		},
		IdentChars: "$",

		Comments: CommentStyle{Line: []string{"--"}, BlockOpen: "/*", BlockClose: "*/"},
		Params:   ParamStyle{Positional: true, Named: []string{":", "@", "$"}, Numbered: []string{"?"}},
	})
}
