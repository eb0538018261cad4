package dialect

import (
	"sort"
	"strings"

	"github.com/pkg/errors"
)

// ErrUnknownDialect is returned by Get for names missing from the registry.
var ErrUnknownDialect = errors.New("unknown dialect")

// registry holds the built-in dialects, keyed by lower-case name. It is
// populated once at init time and read-only afterwards, so lookups are safe
// from concurrent format calls.
var registry = map[string]*Dialect{}

func register(d *Dialect) {
	registry[strings.ToLower(d.Name)] = d
}

// Get returns the built-in dialect with the given name (case-insensitive).
//
// Example usage:
//
//	d, err := dialect.Get("mysql")
//	if err != nil {
//		log.Fatal(err)
//	}
func Get(name string) (*Dialect, error) {
	d, ok := registry[strings.ToLower(name)]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownDialect, "%q (available: %s)", name, strings.Join(Names(), ", "))
	}
	return d, nil
}

// Names returns the sorted names of all registered dialects.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
