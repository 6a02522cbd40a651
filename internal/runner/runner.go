// Package runner reads the target file, runs the search and renders the matches.
package runner

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"unicode/utf8"

	"github.com/runger/minigrep/internal/config"
	mglog "github.com/runger/minigrep/internal/log"
	"github.com/runger/minigrep/internal/search"
)

// ErrInvalidUTF8 is wrapped by IOError when the file is not valid UTF-8 text.
var ErrInvalidUTF8 = errors.New("stream did not contain valid UTF-8")

// IOError reports a failure to read the file being searched.
type IOError struct {
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("read %s: %v", e.Path, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

// Options controls where and how results are written.
type Options struct {
	Stdout io.Writer    // default os.Stdout
	Format Format       // default FormatDebug
	Logger *slog.Logger // default discards
}

// Run searches the file named by cfg and writes the matches to opts.Stdout.
func Run(cfg *config.Config, opts Options) error {
	stdout := opts.Stdout
	if stdout == nil {
		stdout = os.Stdout
	}
	logger := opts.Logger
	if logger == nil {
		logger = mglog.Discard()
	}
	format := opts.Format
	if format == "" {
		format = FormatDebug
	}

	mglog.LogSearchStart(logger, cfg.Query(), cfg.FilePath(), cfg.IgnoreCase())

	contents, err := readContents(cfg.FilePath())
	if err != nil {
		mglog.LogReadFailed(logger, cfg.FilePath(), err)
		return err
	}
	mglog.LogFileRead(logger, cfg.FilePath(), len(contents))

	var results []string
	if cfg.IgnoreCase() {
		results = search.SearchCaseInsensitive(cfg.Query(), contents)
	} else {
		results = search.Search(cfg.Query(), contents)
	}
	mglog.LogSearchDone(logger, cfg.FilePath(), len(results))

	return Write(stdout, format, Result{
		Query:      cfg.Query(),
		Path:       cfg.FilePath(),
		IgnoreCase: cfg.IgnoreCase(),
		Matches:    results,
	})
}

func readContents(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", &IOError{Path: path, Err: err}
	}
	if !utf8.Valid(data) {
		return "", &IOError{Path: path, Err: ErrInvalidUTF8}
	}
	return string(data), nil
}
