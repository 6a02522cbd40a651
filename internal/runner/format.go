package runner

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/runger/minigrep/internal/config"
)

// Format selects how matches are rendered.
type Format string

// Supported formats: debug prints ["a", "b"] on one line, lines prints one
// match per line, json prints a Result object.
const (
	FormatDebug Format = "debug"
	FormatLines Format = "lines"
	FormatJSON  Format = "json"
)

// ParseFormat validates s as an output format.
func ParseFormat(s string) (Format, error) {
	if !config.IsValidFormat(s) {
		return "", fmt.Errorf("unknown output format: %s (must be debug, lines, or json)", s)
	}
	return Format(s), nil
}

// Result is a completed search.
type Result struct {
	Query      string   `json:"query"`
	Path       string   `json:"path"`
	IgnoreCase bool     `json:"ignore_case"`
	Matches    []string `json:"matches"`
	Total      int      `json:"total"`
}

// Write renders r to w in the given format.
func Write(w io.Writer, format Format, r Result) error {
	switch format {
	case FormatDebug, "":
		_, err := fmt.Fprintln(w, DebugString(r.Matches))
		return err
	case FormatLines:
		for _, line := range r.Matches {
			if _, err := fmt.Fprintln(w, line); err != nil {
				return err
			}
		}
		return nil
	case FormatJSON:
		if r.Matches == nil {
			r.Matches = []string{}
		}
		r.Total = len(r.Matches)
		enc := json.NewEncoder(w)
		enc.SetEscapeHTML(false)
		return enc.Encode(r)
	default:
		return fmt.Errorf("unknown output format: %s", format)
	}
}

// DebugString renders lines as a bracketed, quoted, comma-separated list.
func DebugString(lines []string) string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, line := range lines {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(strconv.Quote(line))
	}
	sb.WriteByte(']')
	return sb.String()
}
