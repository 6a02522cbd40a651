// Package config resolves the per-invocation search configuration and the
// optional settings file.
package config

import "errors"

// IgnoreCaseEnv is the environment variable whose presence enables
// case-insensitive matching. Its value is not inspected.
const IgnoreCaseEnv = "MG_IGNORE_CASE"

// ErrMissingArgument is returned by Build when the query or file path is absent.
var ErrMissingArgument = errors.New("not enough arguments: expected <query> <filepath>")

// LookupEnvFunc reports the value of an environment variable and whether it
// is set. os.LookupEnv satisfies it.
type LookupEnvFunc func(key string) (string, bool)

// Config is the resolved configuration for a single search.
type Config struct {
	query      string
	filePath   string
	ignoreCase bool
}

// Build resolves a Config from argv-style args, where args[0] is the program
// name, args[1] the query and args[2] the file path. Extra arguments are
// ignored. The file path is not checked here.
func Build(args []string, lookup LookupEnvFunc) (*Config, error) {
	if len(args) < 3 {
		return nil, ErrMissingArgument
	}

	ignoreCase := false
	if lookup != nil {
		_, ignoreCase = lookup(IgnoreCaseEnv)
	}

	return &Config{
		query:      args[1],
		filePath:   args[2],
		ignoreCase: ignoreCase,
	}, nil
}

// Query returns the text to search for.
func (c *Config) Query() string { return c.query }

// FilePath returns the path of the file to search.
func (c *Config) FilePath() string { return c.filePath }

// IgnoreCase reports whether matching is case-insensitive.
func (c *Config) IgnoreCase() bool { return c.ignoreCase }
