package ai

import (
	"context"
	"encoding/json"
	"errors"
	"net"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

// Category buckets provider failures into the stable taxonomy exposed to callers.
type Category string

const (
	CategoryAuth              Category = "auth"
	CategoryRateLimit         Category = "rate_limit"
	CategoryTimeout           Category = "timeout"
	CategoryMalformedResponse Category = "malformed_response"
	CategoryUnknown           Category = "unknown"
)

// Classify maps a provider invocation error to its failure category. Typed
// error codes from the client library take precedence; message substrings are
// kept as a fallback for wrapped transport errors.
func Classify(err error) Category {
	if err == nil {
		return CategoryUnknown
	}

	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.HTTPStatusCode {
		case 401, 403:
			return CategoryAuth
		case 429:
			return CategoryRateLimit
		}
	}

	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		switch reqErr.HTTPStatusCode {
		case 401, 403:
			return CategoryAuth
		case 429:
			return CategoryRateLimit
		}
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return CategoryTimeout
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return CategoryTimeout
	}

	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &syntaxErr) || errors.As(err, &typeErr) {
		return CategoryMalformedResponse
	}

	message := strings.ToLower(err.Error())
	switch {
	case strings.Contains(message, "api key") ||
		strings.Contains(message, "unauthorized") ||
		strings.Contains(message, "authentication"):
		return CategoryAuth
	case strings.Contains(message, "rate limit") ||
		strings.Contains(message, "quota") ||
		strings.Contains(message, "too many requests"):
		return CategoryRateLimit
	case strings.Contains(message, "timeout") ||
		strings.Contains(message, "timed out") ||
		strings.Contains(message, "deadline exceeded"):
		return CategoryTimeout
	case strings.Contains(message, "invalid character") ||
		strings.Contains(message, "unexpected end of json"):
		return CategoryMalformedResponse
	default:
		return CategoryUnknown
	}
}
