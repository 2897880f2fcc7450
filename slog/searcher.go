// Package slog provides logging decorators for mdsearch services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/mdsearch"
)

// Ensure LoggingSearcher implements mdsearch.SearchService.
var _ mdsearch.SearchService = (*LoggingSearcher)(nil)

// LoggingSearcher wraps a SearchService with logging.
type LoggingSearcher struct {
	next   mdsearch.SearchService
	logger *slog.Logger
}

// NewLoggingSearcher creates a new LoggingSearcher.
func NewLoggingSearcher(next mdsearch.SearchService, logger *slog.Logger) *LoggingSearcher {
	return &LoggingSearcher{next: next, logger: logger}
}

// Search delegates to the wrapped service and logs the operation.
// Each document that could not be read is logged at warn level.
func (s *LoggingSearcher) Search(ctx context.Context, root, query string, opts mdsearch.SearchOptions) (results *mdsearch.ResultList, err error) {
	defer func(begin time.Time) {
		var terms []string
		var failures int
		if results != nil {
			terms = results.Terms
			failures = len(results.Failures)
			for _, f := range results.Failures {
				s.logger.Warn("document skipped",
					"path", f.Path,
					"err", f.Err,
				)
			}
		}
		s.logger.Info("search",
			"root", root,
			"query", query,
			"terms", terms,
			"fuzzy", opts.Fuzzy,
			"matches", results.Len(),
			"failures", failures,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Search(ctx, root, query, opts)
}
