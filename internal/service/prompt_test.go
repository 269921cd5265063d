package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuildCorrectionPromptEmbedsCodeAndLanguage(t *testing.T) {
	lang := pythonLang(t)
	code := "def f(x): return x+"

	prompt := BuildCorrectionPrompt(code, lang, "")

	require.Contains(t, prompt, code)
	require.Contains(t, prompt, "python")
	require.Contains(t, prompt, "```python\n"+code+"\n```")
	require.Contains(t, prompt, `"correctedCode"`)
	require.Contains(t, prompt, `"explanation"`)
	require.Contains(t, prompt, `"issues"`)
	require.Contains(t, prompt, "only the JSON object")
}

func TestBuildCorrectionPromptIncludesDescription(t *testing.T) {
	lang := pythonLang(t)

	prompt := BuildCorrectionPrompt("code", lang, "  it crashes on empty input  ")

	require.True(t, strings.HasPrefix(prompt, "Context from the user: it crashes on empty input"))
}

func TestBuildCorrectionPromptOmitsBlankDescription(t *testing.T) {
	lang := pythonLang(t)

	prompt := BuildCorrectionPrompt("code", lang, "   ")

	require.NotContains(t, prompt, "Context from the user")
}

func TestBuildCorrectionPromptIsDeterministic(t *testing.T) {
	lang := pythonLang(t)

	first := BuildCorrectionPrompt("code", lang, "desc")
	second := BuildCorrectionPrompt("code", lang, "desc")

	require.Equal(t, first, second)
}

func TestCorrectionSystemPromptMandatesShape(t *testing.T) {
	system := correctionSystemPrompt()

	require.Contains(t, system, "correctedCode")
	require.Contains(t, system, "explanation")
	require.Contains(t, system, "issues")
	require.Contains(t, system, "only that JSON object")
}
