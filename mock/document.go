package mock

import (
	"context"
	"iter"

	"github.com/fwojciec/mdsearch"
)

// Compile-time interface verification.
var (
	_ mdsearch.DocumentWalker = (*DocumentWalker)(nil)
	_ mdsearch.DocumentReader = (*DocumentReader)(nil)
)

// DocumentWalker is a mock implementation of mdsearch.DocumentWalker.
type DocumentWalker struct {
	WalkFn func(ctx context.Context, root string) iter.Seq2[string, error]
}

func (w *DocumentWalker) Walk(ctx context.Context, root string) iter.Seq2[string, error] {
	return w.WalkFn(ctx, root)
}

// DocumentReader is a mock implementation of mdsearch.DocumentReader.
type DocumentReader struct {
	ReadDocumentFn func(ctx context.Context, path string) (*mdsearch.Document, error)
}

func (r *DocumentReader) ReadDocument(ctx context.Context, path string) (*mdsearch.Document, error) {
	return r.ReadDocumentFn(ctx, path)
}

// Corpus is an in-memory corpus keyed by path. It implements both
// mdsearch.DocumentWalker and mdsearch.DocumentReader.
type Corpus struct {
	Docs map[string]string

	// Paths whose reads fail with EREAD.
	Unreadable map[string]bool
}

var (
	_ mdsearch.DocumentWalker = (*Corpus)(nil)
	_ mdsearch.DocumentReader = (*Corpus)(nil)
)

func (c *Corpus) Walk(ctx context.Context, root string) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		for path := range c.Docs {
			if err := ctx.Err(); err != nil {
				yield("", err)
				return
			}
			if !yield(path, nil) {
				return
			}
		}
	}
}

func (c *Corpus) ReadDocument(ctx context.Context, path string) (*mdsearch.Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	content, ok := c.Docs[path]
	if !ok || c.Unreadable[path] {
		return nil, mdsearch.Errorf(mdsearch.EREAD, "cannot read document %q", path)
	}
	return &mdsearch.Document{
		Path:    path,
		Title:   mdsearch.ExtractTitle(content),
		Content: content,
	}, nil
}
