package service

import (
	"io"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/Vincent-than/ai-code-fixer/internal/language"
)

func testLogger() zerolog.Logger {
	return zerolog.New(io.Discard)
}

func pythonLang(t *testing.T) language.Language {
	t.Helper()
	lang, ok := language.Lookup("python")
	require.True(t, ok)
	return lang
}

func TestNormalizeWellFormedRoundTrip(t *testing.T) {
	n := NewResponseNormalizer(testLogger())
	raw := `{"correctedCode":"def f(x): return x + 1","explanation":"fixed dangling operator","issues":["incomplete expression"]}`

	result := n.Normalize(raw, "def f(x): return x+", pythonLang(t))

	require.Equal(t, "def f(x): return x + 1", result.CorrectedCode)
	require.Equal(t, "fixed dangling operator", result.Explanation)
	require.Equal(t, []string{"incomplete expression"}, result.Issues)
}

func TestNormalizeStripsMarkdownFence(t *testing.T) {
	n := NewResponseNormalizer(testLogger())
	raw := "```json\n{\"correctedCode\":\"x\",\"explanation\":\"y\",\"issues\":[\"z\"]}\n```"

	result := n.Normalize(raw, "original", pythonLang(t))

	require.Equal(t, "x", result.CorrectedCode)
	require.Equal(t, "y", result.Explanation)
	require.Equal(t, []string{"z"}, result.Issues)
}

func TestNormalizeStripsFenceWithoutLanguageTag(t *testing.T) {
	n := NewResponseNormalizer(testLogger())
	raw := "```\n{\"correctedCode\":\"x\"}\n```"

	result := n.Normalize(raw, "original", pythonLang(t))

	require.Equal(t, "x", result.CorrectedCode)
}

func TestNormalizeToleratesSurroundingProse(t *testing.T) {
	n := NewResponseNormalizer(testLogger())
	raw := "Sure! Here is the fix:\n{\"correctedCode\":\"x\",\"explanation\":\"y\",\"issues\":[]}\nHope that helps."

	result := n.Normalize(raw, "original", pythonLang(t))

	require.Equal(t, "x", result.CorrectedCode)
	require.Equal(t, "y", result.Explanation)
	require.Empty(t, result.Issues)
}

func TestNormalizeRepairsMalformedJSON(t *testing.T) {
	n := NewResponseNormalizer(testLogger())
	raw := `{"correctedCode": "x", "explanation": "y", "issues": ["z",],}`

	result := n.Normalize(raw, "original", pythonLang(t))

	require.Equal(t, "x", result.CorrectedCode)
	require.Equal(t, []string{"z"}, result.Issues)
}

func TestNormalizeFallbackOnProse(t *testing.T) {
	n := NewResponseNormalizer(testLogger())
	original := "def f(x): return x+"
	raw := "I cannot produce JSON today.\nTry again later."

	result := n.Normalize(raw, original, pythonLang(t))

	require.Len(t, result.Issues, 3)
	require.True(t, strings.HasSuffix(result.CorrectedCode, original))
	require.Contains(t, result.CorrectedCode, "# I cannot produce JSON today.")
	require.Contains(t, result.CorrectedCode, "# Try again later.")
	require.Equal(t, fallbackExplanation, result.Explanation)
}

func TestNormalizeFallbackUsesLanguageCommentPrefix(t *testing.T) {
	n := NewResponseNormalizer(testLogger())
	goLang, ok := language.Lookup("go")
	require.True(t, ok)

	result := n.Normalize("no json here", "package main", goLang)

	require.Contains(t, result.CorrectedCode, "// no json here")
}

func TestNormalizePartialFailureMissingCorrectedCode(t *testing.T) {
	n := NewResponseNormalizer(testLogger())
	original := "def f(x): return x+"
	raw := `{"explanation":"something","issues":["a","b","c"]}`

	result := n.Normalize(raw, original, pythonLang(t))

	require.Equal(t, original, result.CorrectedCode)
	require.Len(t, result.Issues, 2)
	require.Equal(t, missingCodeExplanation, result.Explanation)
}

func TestNormalizeDefaultsMissingFields(t *testing.T) {
	n := NewResponseNormalizer(testLogger())
	raw := `{"correctedCode":"fixed"}`

	result := n.Normalize(raw, "original", pythonLang(t))

	require.Equal(t, "fixed", result.CorrectedCode)
	require.Equal(t, defaultExplanation, result.Explanation)
	require.NotNil(t, result.Issues)
	require.Empty(t, result.Issues)
}

func TestNormalizeRepairsNonSequenceIssues(t *testing.T) {
	n := NewResponseNormalizer(testLogger())
	raw := `{"correctedCode":"fixed","issues":"not an array"}`

	result := n.Normalize(raw, "original", pythonLang(t))

	require.Equal(t, "fixed", result.CorrectedCode)
	require.Equal(t, []string{malformedIssuesNote}, result.Issues)
}

func TestNormalizeNullIssuesBecomesEmpty(t *testing.T) {
	n := NewResponseNormalizer(testLogger())
	raw := `{"correctedCode":"fixed","issues":null}`

	result := n.Normalize(raw, "original", pythonLang(t))

	require.NotNil(t, result.Issues)
	require.Empty(t, result.Issues)
}

func TestExtractCandidate(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
		ok    bool
	}{
		{name: "bare object", input: `{"a":1}`, want: `{"a":1}`, ok: true},
		{name: "prose wrapped", input: `before {"a":1} after`, want: `{"a":1}`, ok: true},
		{name: "no braces", input: "plain prose", ok: false},
		{name: "only opening brace", input: "broken {", ok: false},
		{name: "empty", input: "", ok: false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := extractCandidate(tc.input)
			require.Equal(t, tc.ok, ok)
			if tc.ok {
				require.Equal(t, tc.want, got)
			}
		})
	}
}

func TestPreviewIsBounded(t *testing.T) {
	long := strings.Repeat("x", rawPreviewLimit*2)
	require.Len(t, preview(long), rawPreviewLimit)
	require.Equal(t, "short", preview("short"))
}
