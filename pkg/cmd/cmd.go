// Package cmd provides the CLI commands for the sqlfmt tool.
//
// The root command formats SQL from files or stdin; the dialects command
// lists the supported dialect names. Each command is implemented as a
// function returning a *cli.Command, following the urfave/cli/v3 pattern.
package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/pseudomuto/sqlfmt/pkg/config"
	"github.com/pseudomuto/sqlfmt/pkg/format"
	"github.com/pseudomuto/sqlfmt/pkg/sqlfmt"
	"github.com/urfave/cli/v3"
)

const filePerm = 0o644

// Root builds the sqlfmt CLI.
//
// Example usage:
//
//	sqlfmt -d postgresql query.sql
//	sqlfmt -d mysql -w db/queries/*.sql
//	echo 'select 1' | sqlfmt
//	sqlfmt dialects
func Root(version string) *cli.Command {
	return &cli.Command{
		Name:      "sqlfmt",
		Usage:     "Format SQL queries for a chosen dialect",
		ArgsUsage: "[files...]",
		Version:   version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "dialect",
				Aliases: []string{"d"},
				Usage:   "SQL dialect to format for",
				Sources: cli.EnvVars("SQLFMT_DIALECT"),
				Value:   "sql",
			},
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "the sqlfmt config file",
				Sources: cli.EnvVars("SQLFMT_CONFIG"),
			},
			&cli.BoolFlag{
				Name:    "write",
				Aliases: []string{"w"},
				Usage:   "Write result to source files instead of stdout",
			},
		},
		Commands: []*cli.Command{
			dialectsCmd(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			f, err := sqlfmt.New(*cfg)
			if err != nil {
				return err
			}

			if cmd.Args().Len() == 0 {
				if cmd.Bool("write") {
					return errors.New("cannot use -w when reading from stdin")
				}
				return formatStream(f, cmd.Reader, cmd.Writer)
			}

			for _, path := range cmd.Args().Slice() {
				if err := formatFile(f, path, cmd.Bool("write"), cmd.Writer); err != nil {
					return err
				}
			}

			return nil
		},
	}
}

func dialectsCmd() *cli.Command {
	return &cli.Command{
		Name:  "dialects",
		Usage: "List supported SQL dialects",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			// Subcommands do not inherit the root's Writer.
			for _, name := range sqlfmt.Dialects() {
				fmt.Fprintln(cmd.Root().Writer, name)
			}
			return nil
		},
	}
}

// loadConfig resolves the effective configuration: the config file when one
// is given, overridden by the dialect flag when set on the command line.
func loadConfig(cmd *cli.Command) (*sqlfmt.Config, error) {
	cfg := sqlfmt.Config{Dialect: cmd.String("dialect")}

	if path := cmd.String("config"); path != "" {
		fileCfg, err := config.LoadConfigFile(path)
		if err != nil {
			return nil, err
		}

		opts := fileCfg.Options()
		cfg.Options = &opts
		if fileCfg.Dialect != "" && !cmd.IsSet("dialect") {
			cfg.Dialect = fileCfg.Dialect
		}
	}

	return &cfg, nil
}

func formatStream(f *format.Formatter, r io.Reader, w io.Writer) error {
	query, err := io.ReadAll(r)
	if err != nil {
		return errors.Wrap(err, "failed to read query from stdin")
	}

	out, err := f.Format(string(query))
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(w, out)
	return err
}

func formatFile(f *format.Formatter, path string, writeBack bool, w io.Writer) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrapf(err, "failed to read file: %s", path)
	}

	out, err := f.Format(string(content))
	if err != nil {
		return errors.Wrapf(err, "failed to format file: %s", path)
	}
	out += "\n"

	if writeBack {
		if err := os.WriteFile(path, []byte(out), filePerm); err != nil {
			return errors.Wrapf(err, "failed to write formatted content to file: %s", path)
		}
		return nil
	}

	_, err = fmt.Fprint(w, out)
	return err
}
