package dialect

// Shared vocabulary used as the base of every built-in dialect. Individual
// dialects extend these lists; they deliberately cover the common working set
// rather than each vendor's exhaustive reserved-word catalog.

var standardClauses = []string{
	"WITH",
	"FROM",
	"WHERE",
	"GROUP BY",
	"HAVING",
	"ORDER BY",
	"PARTITION BY",
	"WINDOW",
	"OFFSET",
	"FETCH FIRST",
	"FETCH NEXT",
	"INSERT INTO",
	"VALUES",
	"SET",
	"UPDATE",
	"DELETE FROM",
	"RETURNING",
	"CREATE TABLE",
	"CREATE VIEW",
	"ALTER TABLE",
	"DROP TABLE",
	"ADD COLUMN",
	"DROP COLUMN",
	"ALTER COLUMN",
	"ON CONFLICT",
	"ON DUPLICATE KEY UPDATE",
}

var standardOnelineClauses = []string{
	"SET",
	"UPDATE",
	"INSERT INTO",
	"VALUES",
	"CREATE TABLE",
	"CREATE VIEW",
	"ALTER TABLE",
	"DROP TABLE",
	"ADD COLUMN",
	"DROP COLUMN",
	"ALTER COLUMN",
	"DELETE FROM",
	"RETURNING",
	"ON CONFLICT",
	"ON DUPLICATE KEY UPDATE",
}

var standardSetOperations = []string{
	"UNION ALL",
	"UNION DISTINCT",
	"UNION",
	"EXCEPT ALL",
	"EXCEPT",
	"INTERSECT ALL",
	"INTERSECT",
}

var standardJoins = []string{
	"JOIN",
	"INNER JOIN",
	"LEFT JOIN",
	"LEFT OUTER JOIN",
	"RIGHT JOIN",
	"RIGHT OUTER JOIN",
	"FULL JOIN",
	"FULL OUTER JOIN",
	"CROSS JOIN",
	"NATURAL JOIN",
}

var standardPhrases = []string{
	"IS NULL",
	"IS NOT NULL",
	"IS DISTINCT FROM",
	"IS NOT DISTINCT FROM",
	"NOT LIKE",
	"NOT IN",
	"NOT EXISTS",
	"PRIMARY KEY",
	"FOREIGN KEY",
	"NULLS FIRST",
	"NULLS LAST",
}

var standardKeywords = []string{
	"ALL", "AS", "ASC", "BY", "CONSTRAINT", "DEFAULT", "DESC", "DISTINCT",
	"ELSE", "EXISTS", "FALSE", "GROUP", "IF", "IN", "INTERVAL", "IS",
	"LIKE", "NOT", "NULL", "ON", "ORDER", "OVER", "REFERENCES", "THEN",
	"TRUE", "UNIQUE", "USING", "WHEN",
}

var standardFunctions = []string{
	"ABS", "AVG", "CAST", "COALESCE", "CONCAT", "COUNT", "DENSE_RANK",
	"EXTRACT", "FLOOR", "LENGTH", "LOWER", "MAX", "MIN", "NOW", "NULLIF",
	"RANK", "REPLACE", "ROUND", "ROW_NUMBER", "SUBSTRING", "SUM", "TRIM",
	"UPPER",
}

var standardDataTypes = []string{
	"BIGINT", "BLOB", "BOOLEAN", "CHAR", "CHARACTER", "DATE", "DATETIME",
	"DECIMAL", "DOUBLE", "FLOAT", "INT", "INTEGER", "JSON", "NUMERIC",
	"REAL", "SMALLINT", "TEXT", "TIME", "TIMESTAMP", "VARCHAR",
}

// merge returns the concatenation of word lists as a fresh slice.
func merge(lists ...[]string) []string {
	var out []string
	for _, l := range lists {
		out = append(out, l...)
	}
	return out
}
