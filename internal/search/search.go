// Package search implements line matching over in-memory text.
package search

import "strings"

// Search returns the lines of contents that contain query, compared byte
// for byte. The returned strings are substrings of contents.
func Search(query, contents string) []string {
	return Filter(NewExactMatcher(query, true), contents)
}

// SearchCaseInsensitive returns the lines of contents that contain query
// once both are lowercased.
func SearchCaseInsensitive(query, contents string) []string {
	return Filter(NewExactMatcher(query, false), contents)
}

// Filter returns the lines of contents accepted by m, in their original order.
// It never returns nil.
func Filter(m Matcher, contents string) []string {
	matches := make([]string, 0)
	for _, line := range Lines(contents) {
		if m.Match(line) {
			matches = append(matches, line)
		}
	}
	return matches
}

// Lines splits contents on '\n'. A trailing '\r' is dropped from each line
// and a final newline does not start an extra empty line, so "a\r\nb\n"
// yields ["a", "b"].
func Lines(contents string) []string {
	if contents == "" {
		return nil
	}
	contents = strings.TrimSuffix(contents, "\n")
	lines := strings.Split(contents, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}
