package driven

import "context"

// CorpusSource supplies raw corpus text to the parser.
// The source is read-only for the duration of a call; each invocation
// reloads the text, so independent corpora need no coordination.
type CorpusSource interface {
	// Load returns the corpus text at uri.
	// An absent resource returns an error wrapping domain.ErrNotFound;
	// that failure is fatal to the invocation, with no partial result.
	Load(ctx context.Context, uri string) (string, error)
}
