package service

import (
	"encoding/json"
	"strings"

	"github.com/kaptinlin/jsonrepair"
	"github.com/rs/zerolog"

	"github.com/Vincent-than/ai-code-fixer/internal/dto"
	"github.com/Vincent-than/ai-code-fixer/internal/language"
	"github.com/Vincent-than/ai-code-fixer/internal/observability"
)

const (
	rawPreviewLimit = 200

	defaultExplanation     = "The model returned corrected code without an explanation."
	missingCodeExplanation = "The model reply did not include corrected code, so your original code is returned unchanged."
	fallbackExplanation    = "The model reply was not in the expected format. The raw reply is included as comments above your original code."
	malformedIssuesNote    = "issues were reported in an unexpected format"
)

var missingCodeIssues = []string{
	"the model reply was missing the correctedCode field",
	"the original code was returned unchanged",
}

var fallbackIssues = []string{
	"the model reply could not be parsed as JSON",
	"the raw reply was preserved as comments in the corrected code",
	"the original code was returned unchanged below the comments",
}

// ResponseNormalizer converts an untrusted provider reply into a
// CorrectionResult. It never fails: every path yields a result with
// correctedCode populated, an explanation, and a non-nil issues slice.
type ResponseNormalizer struct {
	logger zerolog.Logger
}

// NewResponseNormalizer constructs a normalizer with a component-scoped logger.
func NewResponseNormalizer(logger zerolog.Logger) *ResponseNormalizer {
	return &ResponseNormalizer{
		logger: logger.With().Str("component", "response_normalizer").Logger(),
	}
}

type replyPayload struct {
	CorrectedCode string          `json:"correctedCode"`
	Explanation   string          `json:"explanation"`
	Issues        json.RawMessage `json:"issues"`
}

// Normalize extracts a CorrectionResult from the raw reply text. The chain is
// fence-strip, brace-scan, parse (with one jsonrepair retry), then field
// validation with defaulting. Parse failure enters fallback mode; a parsed
// reply missing correctedCode enters partial-failure mode. Both modes return
// the same shape as the success path.
func (n *ResponseNormalizer) Normalize(raw, originalCode string, lang language.Language) dto.CorrectionResult {
	trimmed := strings.TrimSpace(raw)
	candidate, ok := extractCandidate(trimmed)
	if !ok {
		return n.fallback(trimmed, originalCode, lang)
	}

	payload, ok := n.parseCandidate(candidate)
	if !ok {
		return n.fallback(trimmed, originalCode, lang)
	}

	if payload.CorrectedCode == "" {
		n.logger.Warn().Str("reply_preview", preview(trimmed)).Msg("model reply parsed but correctedCode is missing")
		observability.Corrections().WithLabelValues("partial").Inc()
		return dto.CorrectionResult{
			CorrectedCode: originalCode,
			Explanation:   missingCodeExplanation,
			Issues:        append([]string(nil), missingCodeIssues...),
		}
	}

	explanation := payload.Explanation
	if explanation == "" {
		explanation = defaultExplanation
	}

	observability.Corrections().WithLabelValues("success").Inc()
	return dto.CorrectionResult{
		CorrectedCode: payload.CorrectedCode,
		Explanation:   explanation,
		Issues:        repairIssues(payload.Issues),
	}
}

func (n *ResponseNormalizer) parseCandidate(candidate string) (replyPayload, bool) {
	var payload replyPayload
	if err := json.Unmarshal([]byte(candidate), &payload); err == nil {
		return payload, true
	}

	repaired, err := jsonrepair.JSONRepair(candidate)
	if err != nil {
		return replyPayload{}, false
	}

	payload = replyPayload{}
	if err := json.Unmarshal([]byte(repaired), &payload); err != nil {
		return replyPayload{}, false
	}

	return payload, true
}

func (n *ResponseNormalizer) fallback(trimmed, originalCode string, lang language.Language) dto.CorrectionResult {
	n.logger.Warn().Str("reply_preview", preview(trimmed)).Msg("model reply could not be parsed, entering fallback mode")
	observability.Corrections().WithLabelValues("fallback").Inc()

	return dto.CorrectionResult{
		CorrectedCode: annotateRaw(trimmed, originalCode, lang),
		Explanation:   fallbackExplanation,
		Issues:        append([]string(nil), fallbackIssues...),
	}
}

// extractCandidate isolates the structured-data candidate: the substring from
// the first '{' to the last '}' after any markdown fences are removed. The
// second return value is false when no brace pair exists.
func extractCandidate(trimmed string) (string, bool) {
	text := stripFences(trimmed)

	first := strings.Index(text, "{")
	last := strings.LastIndex(text, "}")
	if first < 0 || last < first {
		return "", false
	}

	return text[first : last+1], true
}

// stripFences removes a wrapping markdown code fence, with or without a
// language tag on the opening line.
func stripFences(text string) string {
	if !strings.HasPrefix(text, "```") {
		return text
	}

	if idx := strings.Index(text, "\n"); idx >= 0 {
		text = text[idx+1:]
	} else {
		text = strings.TrimPrefix(text, "```")
	}

	if end := strings.LastIndex(text, "```"); end >= 0 {
		text = text[:end]
	}

	return strings.TrimSpace(text)
}

// repairIssues coerces the raw issues field into a string slice. Absent or
// null becomes the empty slice; anything that is not an ordered sequence of
// strings is replaced by a single fixed diagnostic element.
func repairIssues(raw json.RawMessage) []string {
	if len(raw) == 0 || string(raw) == "null" {
		return []string{}
	}

	var issues []string
	if err := json.Unmarshal(raw, &issues); err != nil {
		return []string{malformedIssuesNote}
	}

	if issues == nil {
		return []string{}
	}

	return issues
}

// annotateRaw prefixes every line of the raw reply with the language's
// comment marker and appends the original code unchanged.
func annotateRaw(raw, originalCode string, lang language.Language) string {
	prefix := lang.CommentPrefix
	if prefix == "" {
		prefix = "//"
	}

	builder := strings.Builder{}
	for _, line := range strings.Split(raw, "\n") {
		builder.WriteString(prefix)
		builder.WriteString(" ")
		builder.WriteString(line)
		builder.WriteString("\n")
	}
	builder.WriteString("\n")
	builder.WriteString(originalCode)

	return builder.String()
}

func preview(text string) string {
	if len(text) <= rawPreviewLimit {
		return text
	}
	return text[:rawPreviewLimit]
}
