package dialect

func init() {
	register(&Dialect{
		Name: "bigquery",

		ReservedClauses:       merge(standardClauses, []string{"QUALIFY", "OMIT RECORD IF"}),
		ReservedSelect:        []string{"SELECT", "SELECT DISTINCT", "SELECT ALL", "SELECT AS STRUCT", "SELECT AS VALUE"},
		ReservedSetOperations: standardSetOperations,
		ReservedJoins:         standardJoins,
		ReservedPhrases:       standardPhrases,
		ReservedKeywords:      merge(standardKeywords, []string{"STRUCT", "UNNEST", "TABLESAMPLE"}),
		ReservedFunctionNames: merge(standardFunctions, []string{"ARRAY_AGG", "ARRAY_LENGTH", "DATE_DIFF", "FORMAT", "PARSE_DATE", "SAFE_CAST", "TIMESTAMP_DIFF"}),
		ReservedDataTypes:     merge(standardDataTypes, []string{"ARRAY", "BYTES", "FLOAT64", "INT64", "STRING"}),
		OnelineClauses:        standardOnelineClauses,

		PropertyAccessOperators: []string{"."},
		Parens:                  []string{"()", "[]"},

		StringTypes: []QuoteStyle{
			{Start: "'", End: "'", Escape: EscapeBackslash, Prefixes: []string{"R", "B", "RB", "BR"}},
			{Start: `"`, End: `"`, Escape: EscapeBackslash, Prefixes: []string{"R", "B", "RB", "BR"}},
		},
		IdentTypes: []QuoteStyle{
			{Start: "`", End: "`", Escape: EscapeBackslash},
		},

		Comments: CommentStyle{Line: []string{"--", "#"}, BlockOpen: "/*", BlockClose: "*/"},
		Params:   ParamStyle{Positional: true, Named: []string{"@"}, Quoted: []string{"@"}},
	})
}
