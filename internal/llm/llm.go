package llm

import (
	"context"
	"errors"
)

// Client abstracts text-generation providers. Implementations may block on
// network calls; failures are expected and callers must degrade gracefully.
type Client interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// ErrEmptyCompletion is returned when the provider answers with no content.
var ErrEmptyCompletion = errors.New("empty completion from provider")

// ErrNotImplemented is returned by the placeholder client.
var ErrNotImplemented = errors.New("LLM not implemented")

// PlaceholderClient is a stub implementation until provider wiring is added.
type PlaceholderClient struct{}

// Generate returns ErrNotImplemented.
func (PlaceholderClient) Generate(ctx context.Context, prompt string) (string, error) {
	_ = ctx
	_ = prompt
	return "", ErrNotImplemented
}
