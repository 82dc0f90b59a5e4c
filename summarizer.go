package stackdigest

import "context"

// Summarizer turns raw article text into a short digest via an external
// completion service.
//
// A successful return is always a usable digest; failures are reported as
// code-tagged errors, never as sentinel strings in the data channel:
// EUNAVAILABLE for transport failures, EINTERNAL for non-2xx responses
// (message carries status and body) and malformed response shapes, and
// EUNPROCESSABLE when the response contains no usable content.
type Summarizer interface {
	Summarize(ctx context.Context, text string) (string, error)
}
