// Package fs provides file-based access to a markdown corpus.
package fs

import (
	"context"
	"errors"
	"fmt"
	iofs "io/fs"
	"iter"
	"os"
	"path/filepath"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/mdsearch"
)

// Ensure DocumentStore implements the walker and reader interfaces at compile time.
var (
	_ mdsearch.DocumentWalker = (*DocumentStore)(nil)
	_ mdsearch.DocumentReader = (*DocumentStore)(nil)
)

// DefaultExtensions lists the file extensions recognized as documents.
var DefaultExtensions = []string{".md"}

// DocumentStore reads markdown documents from the local filesystem.
// It holds no mutable state and is safe for concurrent use.
type DocumentStore struct {
	extensions []string
}

// Option configures a DocumentStore.
type Option func(*DocumentStore)

// WithExtensions sets the recognized document extensions (e.g. ".md").
// Extensions are compared case-insensitively.
func WithExtensions(exts ...string) Option {
	return func(s *DocumentStore) {
		s.extensions = nil
		for _, ext := range exts {
			ext = strings.ToLower(strings.TrimSpace(ext))
			if ext == "" {
				continue
			}
			if !strings.HasPrefix(ext, ".") {
				ext = "." + ext
			}
			s.extensions = append(s.extensions, ext)
		}
	}
}

// NewDocumentStore creates a new DocumentStore.
func NewDocumentStore(opts ...Option) *DocumentStore {
	s := &DocumentStore{extensions: DefaultExtensions}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Walk yields the absolute path of every document below root.
// Errors that prevent the walk from starting are yielded with an empty path;
// unreadable subdirectories are yielded with their path and skipped.
func (s *DocumentStore) Walk(ctx context.Context, root string) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		abs, err := filepath.Abs(root)
		if err != nil {
			yield("", mdsearch.Errorf(mdsearch.EINVALID, "invalid directory %q: %v", root, err))
			return
		}

		info, err := os.Stat(abs)
		if errors.Is(err, iofs.ErrNotExist) {
			yield("", mdsearch.Errorf(mdsearch.ENOTFOUND, "directory %q not found", root))
			return
		} else if err != nil {
			yield("", mdsearch.Errorf(mdsearch.EREAD, "cannot read directory %q: %v", root, err))
			return
		} else if !info.IsDir() {
			yield("", mdsearch.Errorf(mdsearch.EINVALID, "%q is not a directory", root))
			return
		}

		// WalkDir does not follow a symlinked root. Walk the resolved
		// directory and report paths under the root as given.
		resolved, err := filepath.EvalSymlinks(abs)
		if err != nil {
			yield("", mdsearch.Errorf(mdsearch.EREAD, "cannot read directory %q: %v", root, err))
			return
		}

		stopped := false
		emit := func(path string, err error) bool {
			if !yield(path, err) {
				stopped = true
			}
			return !stopped
		}

		walkErr := filepath.WalkDir(resolved, func(path string, d iofs.DirEntry, err error) error {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return ctxErr
			}
			if rel, relErr := filepath.Rel(resolved, path); relErr == nil {
				path = filepath.Join(abs, rel)
			}
			if err != nil {
				if path == abs {
					emit("", mdsearch.Errorf(mdsearch.EREAD, "cannot read directory %q: %v", root, err))
					return iofs.SkipAll
				}
				if !emit(path, mdsearch.Errorf(mdsearch.EREAD, "cannot read %q: %v", path, err)) {
					return iofs.SkipAll
				}
				if d != nil && d.IsDir() {
					return iofs.SkipDir
				}
				return nil
			}
			if d.IsDir() || !s.recognized(d.Name()) {
				return nil
			}
			if !emit(path, nil) {
				return iofs.SkipAll
			}
			return nil
		})
		if walkErr != nil && !stopped {
			yield("", walkErr)
		}
	}
}

func (s *DocumentStore) recognized(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	for _, e := range s.extensions {
		if ext == e {
			return true
		}
	}
	return false
}

// ReadDocument reads the document at path. Invalid UTF-8 sequences are
// dropped rather than treated as an error.
func (s *DocumentStore) ReadDocument(ctx context.Context, path string) (*mdsearch.Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return nil, mdsearch.Errorf(mdsearch.EREAD, "cannot read document %q: %v", path, err)
	}

	content := strings.ToValidUTF8(string(b), "")
	return &mdsearch.Document{
		Path:    path,
		Title:   mdsearch.ExtractTitle(content),
		Content: content,
		Hash:    HashContent(content),
	}, nil
}

// HashContent computes the xxHash of content as a hex string.
func HashContent(content string) string {
	return fmt.Sprintf("%016x", xxhash.Sum64String(content))
}
