package format_test

import (
	"strings"
	"testing"

	"github.com/pseudomuto/sqlfmt/pkg/dialect"
	. "github.com/pseudomuto/sqlfmt/pkg/format"
	"github.com/stretchr/testify/require"
)

func formatSQL(t *testing.T, dialectName string, opts Options, sql string) string {
	t.Helper()

	d, err := dialect.Get(dialectName)
	require.NoError(t, err)

	f, err := NewFormatter(d, opts)
	require.NoError(t, err)

	out, err := f.Format(sql)
	require.NoError(t, err)
	return out
}

func TestFormatter(t *testing.T) {
	tests := []struct {
		name     string
		dialect  string
		sql      string
		opts     func(*Options)
		expected []string
	}{
		{
			name: "short clauses stay on one line",
			sql:  "select a,b from t where a=1 and b=2",
			expected: []string{
				"SELECT a, b",
				"FROM t",
				"WHERE a = 1 AND b = 2",
			},
		},
		{
			name: "keyword case lower",
			sql:  "SELECT * FROM foo",
			opts: func(o *Options) { o.KeywordCase = CaseLower },
			expected: []string{
				"select *",
				"from foo",
			},
		},
		{
			name: "identifier case upper",
			sql:  "select foo from bar",
			opts: func(o *Options) { o.IdentifierCase = CaseUpper },
			expected: []string{
				"SELECT FOO",
				"FROM BAR",
			},
		},
		{
			name: "function case lower",
			sql:  "select count(*) from t",
			opts: func(o *Options) { o.FunctionCase = CaseLower },
			expected: []string{
				"SELECT count(*)",
				"FROM t",
			},
		},
		{
			name: "quoted identifiers keep their case",
			sql:  `select "Foo" from t`,
			opts: func(o *Options) { o.IdentifierCase = CaseUpper },
			expected: []string{
				`SELECT "Foo"`,
				"FROM T",
			},
		},
		{
			name:    "dialect word chars follow identifier case",
			dialect: "transactsql",
			sql:     "select #temp, [Col] from t",
			opts:    func(o *Options) { o.IdentifierCase = CaseUpper },
			expected: []string{
				"SELECT #TEMP, [Col]",
				"FROM T",
			},
		},
		{
			name: "overflowing where breaks per condition",
			sql:  "select a from t where aaa = 1 and bbb = 2",
			opts: func(o *Options) { o.ExpressionWidth = 10 },
			expected: []string{
				"SELECT a",
				"FROM t",
				"WHERE",
				"  aaa = 1",
				"  AND bbb = 2",
			},
		},
		{
			name: "logical operator newline after",
			sql:  "select a from t where aaa = 1 and bbb = 2",
			opts: func(o *Options) {
				o.ExpressionWidth = 10
				o.LogicalOperatorNewline = NewlineAfter
			},
			expected: []string{
				"SELECT a",
				"FROM t",
				"WHERE",
				"  aaa = 1 AND",
				"  bbb = 2",
			},
		},
		{
			name: "case expression always breaks",
			sql:  "select case when a then 1 else 2 end from t",
			expected: []string{
				"SELECT",
				"  CASE",
				"    WHEN a THEN 1",
				"    ELSE 2",
				"  END",
				"FROM t",
			},
		},
		{
			name: "tabular left",
			sql:  "select aaa from t where x = 1",
			opts: func(o *Options) { o.IndentStyle = IndentTabularLeft },
			expected: []string{
				"SELECT    aaa",
				"FROM      t",
				"WHERE     x = 1",
			},
		},
		{
			name: "tabular right",
			sql:  "select aaa from t where x = 1",
			opts: func(o *Options) { o.IndentStyle = IndentTabularRight },
			expected: []string{
				"   SELECT aaa",
				"     FROM t",
				"    WHERE x = 1",
			},
		},
		{
			name: "oneline clauses",
			sql:  "update t set x = 1, y = 2 where id = 3",
			expected: []string{
				"UPDATE t",
				"SET x = 1, y = 2",
				"WHERE id = 3",
			},
		},
		{
			name: "insert values",
			sql:  "insert into users (id, name) values (1, 'a'), (2, 'b')",
			expected: []string{
				"INSERT INTO users (id, name)",
				"VALUES (1, 'a'), (2, 'b')",
			},
		},
		{
			name: "dense operators",
			sql:  "select a + b from t",
			opts: func(o *Options) { o.DenseOperators = true },
			expected: []string{
				"SELECT a+b",
				"FROM t",
			},
		},
		{
			name:    "cast operator always dense",
			dialect: "postgresql",
			sql:     "select a :: int from t",
			expected: []string{
				"SELECT a::INT",
				"FROM t",
			},
		},
		{
			name: "line comments",
			sql:  "select a, -- note\nb from t",
			expected: []string{
				"SELECT",
				"  a,",
				"  -- note",
				"  b",
				"FROM t",
			},
		},
		{
			name: "inline block comment",
			sql:  "select /* note */ a from t",
			expected: []string{
				"SELECT /* note */ a",
				"FROM t",
			},
		},
		{
			name: "positional params",
			sql:  "select * from t where a = ? and b = ?",
			opts: func(o *Options) { o.Params = PositionalParams("10", "'x'") },
			expected: []string{
				"SELECT *",
				"FROM t",
				"WHERE a = 10 AND b = 'x'",
			},
		},
		{
			name: "positional params from indexed map",
			sql:  "select * from t where a = ?",
			opts: func(o *Options) { o.Params = NamedParams(map[string]string{"1": "foo"}) },
			expected: []string{
				"SELECT *",
				"FROM t",
				"WHERE a = foo",
			},
		},
		{
			name:    "numbered params",
			dialect: "postgresql",
			sql:     "select * from t where name = $1",
			opts:    func(o *Options) { o.Params = NamedParams(map[string]string{"1": "'bob'"}) },
			expected: []string{
				"SELECT *",
				"FROM t",
				"WHERE name = 'bob'",
			},
		},
		{
			name: "params roll back with abandoned inline render",
			sql:  "select * from t where x = ? and yyy = ?",
			opts: func(o *Options) {
				o.ExpressionWidth = 12
				o.Params = PositionalParams("1", "2")
			},
			expected: []string{
				"SELECT *",
				"FROM t",
				"WHERE",
				"  x = 1",
				"  AND yyy = 2",
			},
		},
		{
			name: "custom param types",
			sql:  "select {0} from t",
			opts: func(o *Options) {
				o.ParamTypes = &dialect.ParamStyle{Custom: []string{`\{\d+\}`}}
			},
			expected: []string{
				"SELECT {0}",
				"FROM t",
			},
		},
		{
			name: "tabs for indentation",
			sql:  "select a from t where aaa = 1 and bbb = 2",
			opts: func(o *Options) {
				o.ExpressionWidth = 10
				o.UseTabs = true
			},
			expected: []string{
				"SELECT a",
				"FROM t",
				"WHERE",
				"\taaa = 1",
				"\tAND bbb = 2",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dialectName := tt.dialect
			if dialectName == "" {
				dialectName = "sql"
			}

			opts := Defaults()
			if tt.opts != nil {
				tt.opts(&opts)
			}

			out := formatSQL(t, dialectName, opts, tt.sql)
			require.Equal(t, strings.Join(tt.expected, "\n"), out)

			// Formatting is idempotent.
			require.Equal(t, out, formatSQL(t, dialectName, opts, out))
		})
	}
}

func TestFormatter_statementSeparation(t *testing.T) {
	opts := Defaults()
	out := formatSQL(t, "sql", opts, "select 1; select 2;")
	require.Equal(t, "SELECT 1;\n\nSELECT 2;", out)

	opts.LinesBetweenQueries = 2
	out = formatSQL(t, "sql", opts, "select 1; select 2;")
	require.Equal(t, "SELECT 1;\n\n\nSELECT 2;", out)

	// A missing trailing semicolon is never invented.
	out = formatSQL(t, "sql", Defaults(), "select 1")
	require.Equal(t, "SELECT 1", out)
}

func TestFormatter_newlineBeforeSemicolon(t *testing.T) {
	opts := Defaults()
	opts.NewlineBeforeSemicolon = true

	out := formatSQL(t, "sql", opts, "select 1;")
	require.Equal(t, "SELECT 1\n;", out)
}

func TestFormatter_inlineWidthBound(t *testing.T) {
	// No inline-rendered line exceeds the configured width.
	opts := Defaults()
	opts.ExpressionWidth = 20

	out := formatSQL(t, "sql", opts, "select aaaa, bbbb, cccc, dddd from some_table where x = 1")
	for _, line := range strings.Split(out, "\n") {
		require.LessOrEqual(t, len(strings.TrimRight(line, " ")), 20, "line %q", line)
	}
}

func TestNewFormatter_validation(t *testing.T) {
	d, err := dialect.Get("sql")
	require.NoError(t, err)

	_, err = NewFormatter(nil, Defaults())
	require.ErrorIs(t, err, ErrConfig)

	opts := Defaults()
	opts.ExpressionWidth = 0
	_, err = NewFormatter(d, opts)
	require.ErrorIs(t, err, ErrConfig)

	opts = Defaults()
	opts.KeywordCase = "shouting"
	_, err = NewFormatter(d, opts)
	require.ErrorIs(t, err, ErrConfig)
}

func TestFormatter_errors(t *testing.T) {
	d, err := dialect.Get("sql")
	require.NoError(t, err)

	f, err := NewFormatter(d, Defaults())
	require.NoError(t, err)

	_, err = f.Format("select #")
	require.ErrorContains(t, err, "tokenizing query")

	_, err = f.Format("select (1")
	require.ErrorContains(t, err, "parsing query")
}
