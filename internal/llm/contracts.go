package llm

import "context"

// Completer is the model interface the extraction pipeline depends on.
// Complete sends a system and user message and returns the raw text of the
// first choice.
type Completer interface {
	Complete(ctx context.Context, system, user string) (string, error)
}
