package dto

// CorrectionRequest represents the payload for requesting a code correction.
type CorrectionRequest struct {
	Code        string `json:"code" validate:"required"`
	Language    string `json:"language" validate:"required"`
	Description string `json:"description,omitempty" validate:"max=2000"`
}

// CorrectionResult is the normalized outcome returned to API consumers.
// Every field is always populated: the normalizer guarantees correctedCode is
// non-empty, explanation falls back to a canned sentence, and issues is never nil.
type CorrectionResult struct {
	CorrectedCode string   `json:"correctedCode"`
	Explanation   string   `json:"explanation"`
	Issues        []string `json:"issues"`
}
