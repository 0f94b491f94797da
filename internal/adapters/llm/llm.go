// Package llm defines the completion oracle seam used by summaries and replies
package llm

import "context"

// Oracle turns a prompt into a completion.
// Implementations must honor ctx cancellation and return an oracle coded
// error on failure so transports map it to a bad gateway
type Oracle interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// OracleFunc adapts a function to the Oracle interface
type OracleFunc func(ctx context.Context, prompt string) (string, error)

// Complete implements Oracle
func (f OracleFunc) Complete(ctx context.Context, prompt string) (string, error) { return f(ctx, prompt) }
