package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/mdsearch"
)

// Ensure LoggingReader implements mdsearch.DocumentReader.
var _ mdsearch.DocumentReader = (*LoggingReader)(nil)

// LoggingReader wraps a DocumentReader with debug logging.
type LoggingReader struct {
	next   mdsearch.DocumentReader
	logger *slog.Logger
}

// NewLoggingReader creates a new LoggingReader.
func NewLoggingReader(next mdsearch.DocumentReader, logger *slog.Logger) *LoggingReader {
	return &LoggingReader{next: next, logger: logger}
}

// ReadDocument delegates to the wrapped reader and logs the operation.
func (r *LoggingReader) ReadDocument(ctx context.Context, path string) (doc *mdsearch.Document, err error) {
	defer func(begin time.Time) {
		var size int
		if doc != nil {
			size = len(doc.Content)
		}
		r.logger.Debug("read document",
			"path", path,
			"bytes", size,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return r.next.ReadDocument(ctx, path)
}
