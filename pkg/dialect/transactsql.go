package dialect

func init() {
	register(&Dialect{
		Name: "transactsql",

		ReservedClauses:       merge(standardClauses, []string{"INSERT", "OUTPUT", "OPTION"}),
		ReservedSelect:        []string{"SELECT", "SELECT DISTINCT", "SELECT ALL"},
		ReservedSetOperations: standardSetOperations,
		ReservedJoins:         merge(standardJoins, []string{"CROSS APPLY", "OUTER APPLY"}),
		ReservedPhrases:       standardPhrases,
		ReservedKeywords:      merge(standardKeywords, []string{"TOP", "PERCENT", "PIVOT", "UNPIVOT", "NOLOCK"}),
		ReservedFunctionNames: merge(standardFunctions, []string{"CHARINDEX", "DATEADD", "DATEDIFF", "GETDATE", "ISNULL", "LEN", "STUFF"}),
		ReservedDataTypes:     merge(standardDataTypes, []string{"BIT", "MONEY", "NCHAR", "NTEXT", "NVARCHAR", "SMALLDATETIME", "UNIQUEIDENTIFIER"}),
		OnelineClauses:        standardOnelineClauses,

		Operators:               []string{"+=", "-=", "*=", "/=", "%=", "&=", "|=", "^=", "!<", "!>", "&", "|", "^", "~"},
		PropertyAccessOperators: []string{"."},
		Parens:                  []string{"()"},

		StringTypes: []QuoteStyle{
			{Start: "'", End: "'", Escape: EscapeDouble, Prefixes: []string{"N"}},
		},
		IdentTypes: []QuoteStyle{
			{Start: `"`, End: `"`, Escape: EscapeDouble},
			{Start: "[", End: "]", Escape: EscapeDouble},
		},
		IdentChars: "$@#",

		Comments: CommentStyle{Line: []string{"--"}, BlockOpen: "/*", BlockClose: "*/"},
		Params:   ParamStyle{Named: []string{"@"}, Quoted: []string{"@"}},
	})
}
