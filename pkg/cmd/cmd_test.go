package cmd

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRoot_stdin(t *testing.T) {
	var buf bytes.Buffer
	app := Root("test")
	app.Reader = strings.NewReader("select a,b from t where a=1 and b=2")
	app.Writer = &buf

	err := app.Run(context.Background(), []string{"sqlfmt"})
	require.NoError(t, err)
	require.Equal(t, "SELECT a, b\nFROM t\nWHERE a = 1 AND b = 2\n", buf.String())
}

func TestRoot_dialectFlag(t *testing.T) {
	var buf bytes.Buffer
	app := Root("test")
	app.Reader = strings.NewReader("select a::int from t")
	app.Writer = &buf

	err := app.Run(context.Background(), []string{"sqlfmt", "-d", "postgresql"})
	require.NoError(t, err)
	require.Equal(t, "SELECT a::INT\nFROM t\n", buf.String())
}

func TestRoot_files(t *testing.T) {
	tmpDir := t.TempDir()
	sqlFile := filepath.Join(tmpDir, "query.sql")
	err := os.WriteFile(sqlFile, []byte("select 1;select 2;"), filePerm)
	require.NoError(t, err)

	var buf bytes.Buffer
	app := Root("test")
	app.Writer = &buf

	err = app.Run(context.Background(), []string{"sqlfmt", sqlFile})
	require.NoError(t, err)
	require.Equal(t, "SELECT 1;\n\nSELECT 2;\n", buf.String())

	// The file itself is untouched without -w.
	content, err := os.ReadFile(sqlFile)
	require.NoError(t, err)
	require.Equal(t, "select 1;select 2;", string(content))
}

func TestRoot_writeBack(t *testing.T) {
	tmpDir := t.TempDir()
	sqlFile := filepath.Join(tmpDir, "query.sql")
	err := os.WriteFile(sqlFile, []byte("select id from t;"), filePerm)
	require.NoError(t, err)

	app := Root("test")
	app.Writer = new(bytes.Buffer)

	err = app.Run(context.Background(), []string{"sqlfmt", "-w", sqlFile})
	require.NoError(t, err)

	content, err := os.ReadFile(sqlFile)
	require.NoError(t, err)
	require.Equal(t, "SELECT id\nFROM t;\n", string(content))
}

func TestRoot_writeBackFromStdin(t *testing.T) {
	app := Root("test")
	app.Reader = strings.NewReader("select 1")
	app.Writer = new(bytes.Buffer)

	err := app.Run(context.Background(), []string{"sqlfmt", "-w"})
	require.Error(t, err)
	require.Contains(t, err.Error(), "cannot use -w when reading from stdin")
}

func TestRoot_configFile(t *testing.T) {
	tmpDir := t.TempDir()
	cfgFile := filepath.Join(tmpDir, "sqlfmt.yaml")
	err := os.WriteFile(cfgFile, []byte("dialect: postgresql\nkeyword_case: lower\n"), filePerm)
	require.NoError(t, err)

	var buf bytes.Buffer
	app := Root("test")
	app.Reader = strings.NewReader("SELECT a::int FROM t")
	app.Writer = &buf

	err = app.Run(context.Background(), []string{"sqlfmt", "-c", cfgFile})
	require.NoError(t, err)
	require.Equal(t, "select a::INT\nfrom t\n", buf.String())
}

func TestRoot_invalidSQL(t *testing.T) {
	app := Root("test")
	app.Reader = strings.NewReader("select (1")
	app.Writer = new(bytes.Buffer)

	err := app.Run(context.Background(), []string{"sqlfmt"})
	require.Error(t, err)
	require.Contains(t, err.Error(), "parse error")
}

func TestDialectsCommand(t *testing.T) {
	var buf bytes.Buffer
	app := Root("test")
	app.Writer = &buf

	err := app.Run(context.Background(), []string{"sqlfmt", "dialects"})
	require.NoError(t, err)

	out := buf.String()
	require.Contains(t, out, "postgresql\n")
	require.Contains(t, out, "mysql\n")
	require.Contains(t, out, "sqlite\n")
}
