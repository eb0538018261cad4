package dialect

func init() {
	register(mysqlLike("mysql"))
	register(mysqlLike("mariadb"))
}

// mysqlLike builds the shared MySQL/MariaDB description; the two dialects
// differ only in vocabulary this formatter does not carry.
func mysqlLike(name string) *Dialect {
	return &Dialect{
		Name: name,

		ReservedClauses:       merge(standardClauses, []string{"LOCK IN SHARE MODE", "FOR UPDATE"}),
		ReservedSelect:        []string{"SELECT", "SELECT DISTINCT", "SELECT ALL"},
		ReservedSetOperations: standardSetOperations,
		ReservedJoins:         merge(standardJoins, []string{"STRAIGHT_JOIN"}),
		ReservedPhrases:       standardPhrases,
		ReservedKeywords:      merge(standardKeywords, []string{"AUTO_INCREMENT", "BINARY", "REGEXP", "RLIKE", "UNSIGNED", "ZEROFILL"}),
		ReservedFunctionNames: merge(standardFunctions, []string{"DATE_ADD", "DATE_FORMAT", "DATE_SUB", "GROUP_CONCAT", "IFNULL", "JSON_EXTRACT"}),
		ReservedDataTypes:     merge(standardDataTypes, []string{"ENUM", "LONGTEXT", "MEDIUMINT", "MEDIUMTEXT", "TINYINT", "TINYTEXT", "VARBINARY"}),
		OnelineClauses:        standardOnelineClauses,

		Operators:               []string{":=", "<=>", "->>", "->", "&&", "&", "|", "^", "~", "<<", ">>"},
		PropertyAccessOperators: []string{"."},
		Parens:                  []string{"()"},

		StringTypes: []QuoteStyle{
			{Start: "'", End: "'", Escape: EscapeDoubleOrBackslash, Prefixes: []string{"N", "X", "B"}},
			{Start: `"`, End: `"`, Escape: EscapeDoubleOrBackslash},
		},
		IdentTypes: []QuoteStyle{
			{Start: "`", End: "`", Escape: EscapeDouble},
		},
		IdentChars: "$",

		Comments: CommentStyle{Line: []string{"--", "#"}, BlockOpen: "/*", BlockClose: "*/"},
		Params:   ParamStyle{Positional: true, Named: []string{"@"}, Quoted: []string{"@"}},
	}
}
