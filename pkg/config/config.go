// Package config loads formatter configuration from YAML.
package config

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/pseudomuto/sqlfmt/pkg/format"
	"gopkg.in/yaml.v3"
)

// Config is the on-disk formatter configuration. All fields are optional;
// unset fields keep their defaults, so a config file only needs to name what
// it changes.
type Config struct {
	// Dialect names the SQL dialect to format for (e.g. "postgresql").
	Dialect string `yaml:"dialect,omitempty"`

	TabWidth *int  `yaml:"tab_width,omitempty"`
	UseTabs  *bool `yaml:"use_tabs,omitempty"`

	KeywordCase    string `yaml:"keyword_case,omitempty"`
	IdentifierCase string `yaml:"identifier_case,omitempty"`
	DataTypeCase   string `yaml:"data_type_case,omitempty"`
	FunctionCase   string `yaml:"function_case,omitempty"`

	IndentStyle            string `yaml:"indent_style,omitempty"`
	LogicalOperatorNewline string `yaml:"logical_operator_newline,omitempty"`

	ExpressionWidth     *int `yaml:"expression_width,omitempty"`
	LinesBetweenQueries *int `yaml:"lines_between_queries,omitempty"`

	DenseOperators         *bool `yaml:"dense_operators,omitempty"`
	NewlineBeforeSemicolon *bool `yaml:"newline_before_semicolon,omitempty"`
}

// LoadConfig parses a formatter configuration from the provided io.Reader.
//
// Example:
//
//	cfg, err := config.LoadConfig(strings.NewReader(`
//	dialect: postgresql
//	keyword_case: lower
//	`))
func LoadConfig(r io.Reader) (*Config, error) {
	var cfg Config
	if err := yaml.NewDecoder(r).Decode(&cfg); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal formatter config")
	}

	return &cfg, nil
}

// LoadConfigFile loads a formatter configuration from the specified file
// path. This is a convenience function that opens the file and calls
// LoadConfig.
func LoadConfigFile(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open file: %s", path)
	}
	defer func() { _ = f.Close() }()

	return LoadConfig(f)
}

// Options applies the config on top of format.Defaults. Validation happens
// when the options reach the formatter, not here.
func (c *Config) Options() format.Options {
	opts := format.Defaults()

	if c.TabWidth != nil {
		opts.TabWidth = *c.TabWidth
	}
	if c.UseTabs != nil {
		opts.UseTabs = *c.UseTabs
	}
	if c.KeywordCase != "" {
		opts.KeywordCase = format.Case(c.KeywordCase)
	}
	if c.IdentifierCase != "" {
		opts.IdentifierCase = format.Case(c.IdentifierCase)
	}
	if c.DataTypeCase != "" {
		opts.DataTypeCase = format.Case(c.DataTypeCase)
	}
	if c.FunctionCase != "" {
		opts.FunctionCase = format.Case(c.FunctionCase)
	}
	if c.IndentStyle != "" {
		opts.IndentStyle = format.IndentStyle(c.IndentStyle)
	}
	if c.LogicalOperatorNewline != "" {
		opts.LogicalOperatorNewline = format.OperatorNewline(c.LogicalOperatorNewline)
	}
	if c.ExpressionWidth != nil {
		opts.ExpressionWidth = *c.ExpressionWidth
	}
	if c.LinesBetweenQueries != nil {
		opts.LinesBetweenQueries = *c.LinesBetweenQueries
	}
	if c.DenseOperators != nil {
		opts.DenseOperators = *c.DenseOperators
	}
	if c.NewlineBeforeSemicolon != nil {
		opts.NewlineBeforeSemicolon = *c.NewlineBeforeSemicolon
	}

	return opts
}
