package dialect

func init() {
	register(&Dialect{
		Name: "plsql",

		ReservedClauses:       merge(standardClauses, []string{"CONNECT BY", "START WITH", "MODEL"}),
		ReservedSelect:        []string{"SELECT", "SELECT DISTINCT", "SELECT ALL", "SELECT UNIQUE"},
		ReservedSetOperations: merge(standardSetOperations, []string{"MINUS"}),
		ReservedJoins:         standardJoins,
		ReservedPhrases:       standardPhrases,
		ReservedKeywords:      merge(standardKeywords, []string{"CONNECT", "LEVEL", "PRIOR", "ROWNUM", "SYSDATE"}),
		ReservedFunctionNames: merge(standardFunctions, []string{"DECODE", "LISTAGG", "NVL", "NVL2", "TO_CHAR", "TO_DATE", "TO_NUMBER"}),
		ReservedDataTypes:     merge(standardDataTypes, []string{"CLOB", "NCLOB", "NUMBER", "RAW", "VARCHAR2"}),
		OnelineClauses:        standardOnelineClauses,

		Operators:               []string{"**", ":=", "=>", "~=", "^="},
		PropertyAccessOperators: []string{"."},
		Parens:                  []string{"()"},

		StringTypes: []QuoteStyle{
			{Start: "'", End: "'", Escape: EscapeDouble, Prefixes: []string{"N"}},
		},
		IdentTypes: []QuoteStyle{
			{Start: `"`, End: `"`, Escape: EscapeDouble},
		},
		IdentChars: "$#",

		Comments: CommentStyle{Line: []string{"--"}, BlockOpen: "/*", BlockClose: "*/"},
		Params:   ParamStyle{Named: []string{":"}},
	})
}
