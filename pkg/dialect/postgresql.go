package dialect

func init() {
	register(&Dialect{
		Name: "postgresql",

		ReservedClauses:       merge(standardClauses, []string{"FOR UPDATE", "FOR SHARE"}),
		ReservedSelect:        []string{"SELECT", "SELECT DISTINCT", "SELECT ALL"},
		ReservedSetOperations: standardSetOperations,
		ReservedJoins:         standardJoins,
		ReservedPhrases:       merge(standardPhrases, []string{"AT TIME ZONE"}),
		ReservedKeywords:      merge(standardKeywords, []string{"ILIKE", "LATERAL", "ONLY"}),
		ReservedFunctionNames: merge(standardFunctions, []string{"ARRAY_AGG", "GENERATE_SERIES", "JSONB_AGG", "STRING_AGG", "TO_CHAR", "TO_DATE", "UNNEST"}),
		ReservedDataTypes:     merge(standardDataTypes, []string{"BYTEA", "JSONB", "SERIAL", "BIGSERIAL", "UUID", "TIMESTAMPTZ"}),
		OnelineClauses:        standardOnelineClauses,

		Operators: []string{
			"::", "->>", "->", "#>>", "#>", "@>", "<@", "&&", "||/", "|/",
			"!!", "~*", "!~*", "!~", "~", "^", "#", "&", "|", "<<", ">>",
		},
		PropertyAccessOperators: []string{".", "::"},
		Parens:                  []string{"()", "[]"},

		StringTypes: []QuoteStyle{
			{Start: "'", End: "'", Escape: EscapeDouble},
			{Start: "'", End: "'", Escape: EscapeBackslash, Prefixes: []string{"E"}, RequiredPrefix: true},
		},
		IdentTypes: []QuoteStyle{
			{Start: `"`, End: `"`, Escape: EscapeDouble, Prefixes: []string{"U&"}},
		},
		IdentChars: "$",

		// PostgreSQL block comments nest.
		Comments: CommentStyle{Line: []string{"--"}, BlockOpen: "/*", BlockClose: "*/", Nested: true},
		Params:   ParamStyle{Numbered: []string{"$"}},
	})
}
