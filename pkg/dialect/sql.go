package dialect

func init() {
	register(&Dialect{
		Name: "sql",

		ReservedClauses:       standardClauses,
		ReservedSelect:        []string{"SELECT", "SELECT DISTINCT", "SELECT ALL"},
		ReservedSetOperations: standardSetOperations,
		ReservedJoins:         standardJoins,
		ReservedPhrases:       standardPhrases,
		ReservedKeywords:      standardKeywords,
		ReservedFunctionNames: standardFunctions,
		ReservedDataTypes:     standardDataTypes,
		OnelineClauses:        standardOnelineClauses,

		PropertyAccessOperators: []string{"."},
		Parens:                  []string{"()"},

		StringTypes: []QuoteStyle{
			{Start: "'", End: "'", Escape: EscapeDouble, Prefixes: []string{"N", "X"}},
		},
		IdentTypes: []QuoteStyle{
			{Start: `"`, End: `"`, Escape: EscapeDouble},
		},

		Comments: CommentStyle{Line: []string{"--"}, BlockOpen: "/*", BlockClose: "*/"},
		Params:   ParamStyle{Positional: true},
	})
}
