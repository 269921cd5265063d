package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/Vincent-than/ai-code-fixer/internal/dto"
	"github.com/Vincent-than/ai-code-fixer/internal/language"
	"github.com/Vincent-than/ai-code-fixer/pkg/ai"
)

// CorrectionService exposes the code correction operation.
type CorrectionService interface {
	Correct(ctx context.Context, payload dto.CorrectionRequest) (dto.CorrectionResult, error)
}

// ErrProviderUnconfigured indicates the completion provider credential is missing.
var ErrProviderUnconfigured = errors.New("completion provider is not configured")

// ErrEmptyCode indicates the submitted code is empty or whitespace-only.
var ErrEmptyCode = errors.New("code must not be empty")

// ErrUnsupportedLanguage indicates the requested language is not in the registry.
var ErrUnsupportedLanguage = errors.New("unsupported language")

// ProviderError wraps a completion provider failure with its classified category.
type ProviderError struct {
	Category ai.Category
	Err      error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("completion provider failed (%s): %v", e.Category, e.Err)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

type correctionService struct {
	completer  ai.Completer
	normalizer *ResponseNormalizer
	validator  *validator.Validate
	logger     zerolog.Logger
}

// NewCorrectionService constructs a correction service. A nil completer is
// allowed so the service can boot without a provider credential; each
// correction attempt then fails with ErrProviderUnconfigured.
func NewCorrectionService(completer ai.Completer, validate *validator.Validate, logger zerolog.Logger) CorrectionService {
	return &correctionService{
		completer:  completer,
		normalizer: NewResponseNormalizer(logger),
		validator:  validate,
		logger:     logger.With().Str("component", "correction_service").Logger(),
	}
}

func (s *correctionService) Correct(ctx context.Context, payload dto.CorrectionRequest) (dto.CorrectionResult, error) {
	if s.completer == nil {
		return dto.CorrectionResult{}, ErrProviderUnconfigured
	}

	if err := s.validator.Struct(payload); err != nil {
		return dto.CorrectionResult{}, err
	}

	if strings.TrimSpace(payload.Code) == "" {
		return dto.CorrectionResult{}, ErrEmptyCode
	}

	lang, ok := language.Lookup(payload.Language)
	if !ok {
		return dto.CorrectionResult{}, ErrUnsupportedLanguage
	}

	request := ai.CompletionRequest{
		System: correctionSystemPrompt(),
		User:   BuildCorrectionPrompt(payload.Code, lang, payload.Description),
	}

	reply, err := s.completer.Complete(ctx, request)
	if err != nil {
		category := ai.Classify(err)
		s.logger.Error().Err(err).Str("category", string(category)).Msg("completion provider call failed")
		return dto.CorrectionResult{}, &ProviderError{Category: category, Err: err}
	}

	s.logger.Info().
		Str("language", lang.ID).
		Str("reply_preview", preview(strings.TrimSpace(reply))).
		Msg("completion provider reply received")

	return s.normalizer.Normalize(reply, payload.Code, lang), nil
}
