package search

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearch_OneResult(t *testing.T) {
	query := "duct"
	contents := `Rust:
safe, fast, productive.
Pick three.`

	assert.Equal(t, []string{"safe, fast, productive."}, Search(query, contents))
}

func TestSearch_CaseSensitive(t *testing.T) {
	query := "duct"
	contents := `Rust:
safe, fast, productive.
Pick three.
Duct tape.`

	assert.Equal(t, []string{"safe, fast, productive."}, Search(query, contents))
}

func TestSearchCaseInsensitive(t *testing.T) {
	query := "rUsT"
	contents := `Rust:
safe, fast, productive.
Pick three.
Trust me.`

	assert.Equal(t, []string{"Rust:", "Trust me."}, SearchCaseInsensitive(query, contents))
}

func TestSearch_EmptyContents(t *testing.T) {
	for _, query := range []string{"duct", "a", "ß"} {
		got := Search(query, "")
		require.NotNil(t, got)
		assert.Empty(t, got)

		got = SearchCaseInsensitive(query, "")
		require.NotNil(t, got)
		assert.Empty(t, got)
	}
}

func TestSearch_NoMatch(t *testing.T) {
	contents := "alpha\nbeta\ngamma"

	got := Search("delta", contents)
	require.NotNil(t, got)
	assert.Empty(t, got)

	got = SearchCaseInsensitive("DELTA", contents)
	require.NotNil(t, got)
	assert.Empty(t, got)
}

func TestSearch_EmptyQueryMatchesEveryLine(t *testing.T) {
	contents := "one\n\nthree\n"
	want := []string{"one", "", "three"}

	assert.Equal(t, want, Search("", contents))
	assert.Equal(t, want, SearchCaseInsensitive("", contents))
}

func TestSearch_PreservesOrderAndDuplicates(t *testing.T) {
	contents := "go fast\nstop\ngo fast\ngo slow"

	assert.Equal(t, []string{"go fast", "go fast", "go slow"}, Search("go", contents))
}

func TestSearch_LastLineWithoutNewline(t *testing.T) {
	assert.Equal(t, []string{"last needle"}, Search("needle", "first\nlast needle"))
}

func TestSearch_SubstringNotWholeLine(t *testing.T) {
	assert.Equal(t, []string{"concatenate"}, Search("cat", "concatenate\ndog"))
}

func TestSearch_CRLF(t *testing.T) {
	contents := "Rust:\r\nsafe, fast, productive.\r\nPick three.\r\n"

	assert.Equal(t, []string{"safe, fast, productive."}, Search("duct", contents))
	// The carriage return is not part of the line.
	assert.Equal(t, []string{"Rust:"}, Search(":", contents))
	assert.Empty(t, Search("\r", contents))
}

func TestSearchCaseInsensitive_Unicode(t *testing.T) {
	contents := "ÉCOLE primaire\nécole\nÖl und Wasser\nnothing here"

	assert.Equal(t, []string{"ÉCOLE primaire", "école"}, SearchCaseInsensitive("éCoLe", contents))
	assert.Equal(t, []string{"Öl und Wasser"}, SearchCaseInsensitive("öL", contents))
	assert.Empty(t, Search("öl", contents))
}

func TestSearch_ResultsAreViewsIntoContents(t *testing.T) {
	contents := "abc\nneedle in here\nxyz"
	got := Search("needle", contents)
	require.Len(t, got, 1)

	idx := strings.Index(contents, got[0])
	require.GreaterOrEqual(t, idx, 0)
	assert.Equal(t, contents[idx:idx+len(got[0])], got[0])
}

// Every returned line contains the query and every containing line is returned.
func TestSearch_SoundAndComplete(t *testing.T) {
	contents := strings.Join([]string{
		"The quick brown fox",
		"jumps over",
		"the lazy dog",
		"THE END",
		"",
		"other",
	}, "\n")

	for _, query := range []string{"the", "The", "o", "", "x", "missing", "THE"} {
		t.Run("exact/"+query, func(t *testing.T) {
			var want []string
			for _, line := range Lines(contents) {
				if strings.Contains(line, query) {
					want = append(want, line)
				}
			}
			got := Search(query, contents)
			if len(want) == 0 {
				assert.Empty(t, got)
				return
			}
			assert.Equal(t, want, got)
		})
		t.Run("insensitive/"+query, func(t *testing.T) {
			var want []string
			for _, line := range Lines(contents) {
				if strings.Contains(strings.ToLower(line), strings.ToLower(query)) {
					want = append(want, line)
				}
			}
			got := SearchCaseInsensitive(query, contents)
			if len(want) == 0 {
				assert.Empty(t, got)
				return
			}
			assert.Equal(t, want, got)
		})
	}
}

func TestLines(t *testing.T) {
	tests := []struct {
		name     string
		contents string
		want     []string
	}{
		{"empty", "", nil},
		{"single line", "one", []string{"one"}},
		{"trailing newline", "one\n", []string{"one"}},
		{"only newline", "\n", []string{""}},
		{"blank line kept", "a\n\nb", []string{"a", "", "b"}},
		{"two trailing newlines", "a\n\n", []string{"a", ""}},
		{"crlf", "a\r\nb\r\n", []string{"a", "b"}},
		{"mixed endings", "a\r\nb\nc", []string{"a", "b", "c"}},
		{"bare cr at end", "a\r", []string{"a"}},
		{"cr inside line", "a\rb", []string{"a\rb"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Lines(tt.contents))
		})
	}
}
