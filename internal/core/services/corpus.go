package services

import (
	"context"
	"fmt"
	"time"

	"github.com/jackisacoolryan/test-mcp/internal/core/domain"
	"github.com/jackisacoolryan/test-mcp/internal/core/ports/driven"
	"github.com/jackisacoolryan/test-mcp/internal/logger"
)

// LoadCorpus runs loader once and freezes its output into a corpus.
// Any failure, including a malformed document, is reported as
// domain.ErrCorpusUnavailable so bring-up can abort instead of serving a
// partial corpus.
func LoadCorpus(ctx context.Context, loader driven.CorpusLoader) (*domain.Corpus, error) {
	if loader == nil {
		return nil, fmt.Errorf("%w: no loader configured", domain.ErrCorpusUnavailable)
	}

	logger.Section("Corpus")
	logger.Info("Loading corpus from %s", loader.Name())
	start := time.Now()

	docs, err := loader.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", domain.ErrCorpusUnavailable, loader.Name(), err)
	}

	corpus, err := domain.NewCorpus(docs)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", domain.ErrCorpusUnavailable, loader.Name(), err)
	}

	logger.Info("Loaded %d documents in %s", corpus.Len(), time.Since(start).Round(time.Millisecond))
	return corpus, nil
}
