package mock

import (
	"context"

	"stackdigest"
)

var _ stackdigest.Summarizer = (*Summarizer)(nil)

// Summarizer is a mock implementation of stackdigest.Summarizer.
type Summarizer struct {
	SummarizeFn func(ctx context.Context, text string) (string, error)
}

func (s *Summarizer) Summarize(ctx context.Context, text string) (string, error) {
	return s.SummarizeFn(ctx, text)
}
