package service

import (
	"strings"

	"github.com/Vincent-than/ai-code-fixer/internal/language"
)

func correctionSystemPrompt() string {
	return "You are an expert software engineer who fixes broken code. Respond with a JSON object containing correctedCode " +
		"(the complete fixed source as a string), explanation (a short string), and issues (an array of short strings). " +
		"Reply with only that JSON object and no surrounding prose or markdown."
}

// BuildCorrectionPrompt formats the user prompt sent to the completion
// provider. Pure string formatting over already-validated input.
func BuildCorrectionPrompt(code string, lang language.Language, description string) string {
	builder := strings.Builder{}

	if trimmed := strings.TrimSpace(description); trimmed != "" {
		builder.WriteString("Context from the user: ")
		builder.WriteString(trimmed)
		builder.WriteString("\n\n")
	}

	builder.WriteString("Fix the following ")
	builder.WriteString(lang.ID)
	builder.WriteString(" code.\n\n```")
	builder.WriteString(lang.ID)
	builder.WriteString("\n")
	builder.WriteString(code)
	builder.WriteString("\n```\n\n")
	builder.WriteString(`Return a JSON object with exactly these fields: "correctedCode" (the full fixed source), `)
	builder.WriteString(`"explanation" (what was wrong and how it was fixed), and "issues" (an array of short strings `)
	builder.WriteString("naming each detected problem). Reply with only the JSON object, no prose and no markdown fences.")

	return builder.String()
}
