package ai

import "context"

// CompletionRequest carries the prompt pair sent to the completion provider.
type CompletionRequest struct {
	System string
	User   string
}

// Completer describes a text-completion provider: given a prompt, return the
// raw reply text or fail. The reply is untrusted free-form text.
type Completer interface {
	Complete(ctx context.Context, req CompletionRequest) (string, error)
}
