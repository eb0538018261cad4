package sqlfmt_test

import (
	"testing"

	"github.com/pseudomuto/sqlfmt/pkg/dialect"
	"github.com/pseudomuto/sqlfmt/pkg/format"
	. "github.com/pseudomuto/sqlfmt/pkg/sqlfmt"
	"github.com/stretchr/testify/require"
)

func TestFormat(t *testing.T) {
	out, err := Format("select id, name from users where id = 1", Config{})
	require.NoError(t, err)
	require.Equal(t, "SELECT id, name\nFROM users\nWHERE id = 1", out)
}

func TestFormat_dialect(t *testing.T) {
	out, err := Format("select a::int from t", Config{Dialect: "postgresql"})
	require.NoError(t, err)
	require.Equal(t, "SELECT a::INT\nFROM t", out)

	// The cast operator is not part of the generic dialect.
	_, err = Format("select a::int from t", Config{Dialect: "sql"})
	require.Error(t, err)
	require.ErrorContains(t, err, "generic sql dialect")
}

func TestFormat_options(t *testing.T) {
	opts := format.Defaults()
	opts.KeywordCase = format.CaseLower

	out, err := Format("SELECT 1", Config{Options: &opts})
	require.NoError(t, err)
	require.Equal(t, "select 1", out)
}

func TestFormat_unknownDialect(t *testing.T) {
	_, err := Format("select 1", Config{Dialect: "nope"})
	require.ErrorIs(t, err, dialect.ErrUnknownDialect)
}

func TestFormat_invalidOptions(t *testing.T) {
	opts := format.Defaults()
	opts.ExpressionWidth = -1

	_, err := Format("select 1", Config{Options: &opts})
	require.ErrorIs(t, err, format.ErrConfig)
}

func TestDialects(t *testing.T) {
	names := Dialects()
	require.Contains(t, names, "sql")
	require.Contains(t, names, "postgresql")
}
