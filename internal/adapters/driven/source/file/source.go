// Package file provides a filesystem-backed CorpusSource.
package file

import (
	"context"
	"fmt"
	"os"

	"github.com/glosskit/glosskit-cli/internal/core/domain"
	"github.com/glosskit/glosskit-cli/internal/core/ports/driven"
)

// Ensure Source implements the interface.
var _ driven.CorpusSource = (*Source)(nil)

// Source reads corpus text from the local filesystem.
type Source struct{}

// New creates a new filesystem corpus source.
func New() *Source {
	return &Source{}
}

// Load returns the contents of the file at uri.
// A missing file wraps domain.ErrNotFound so callers can classify it.
func (s *Source) Load(ctx context.Context, uri string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	data, err := os.ReadFile(uri)
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("corpus %s: %w", uri, domain.ErrNotFound)
		}
		return "", fmt.Errorf("reading corpus %s: %w", uri, err)
	}
	return string(data), nil
}
