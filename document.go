package mdsearch

import (
	"context"
	"iter"
	"regexp"
	"strings"
)

// NoTitle is the title of a document without a level-one heading.
const NoTitle = "No Title"

// Document represents a markdown file read from the corpus.
// Documents are re-read on every search and never cached.
type Document struct {
	Path    string `json:"path"`
	Title   string `json:"title"`
	Content string `json:"content"`
	Hash    string `json:"hash"`
}

// DocumentWalker enumerates candidate documents under a root directory.
type DocumentWalker interface {
	// Walk yields the absolute path of every document under root.
	// Traversal is recursive and order is not guaranteed.
	//
	// A missing root yields a single ENOTFOUND error. A nested directory
	// that cannot be read yields an EREAD error for that path and the walk
	// continues with the remaining entries.
	Walk(ctx context.Context, root string) iter.Seq2[string, error]
}

// DocumentReader reads a single document from the corpus.
type DocumentReader interface {
	// ReadDocument reads the document at path and derives its title.
	// Returns EREAD if the file cannot be read.
	ReadDocument(ctx context.Context, path string) (*Document, error)
}

var titleRe = regexp.MustCompile(`(?m)^# (.+)$`)

// ExtractTitle returns the text of the first "# " heading line in content,
// or NoTitle if there is none.
func ExtractTitle(content string) string {
	m := titleRe.FindStringSubmatch(content)
	if m == nil {
		return NoTitle
	}
	title := strings.TrimSpace(m[1])
	if title == "" {
		return NoTitle
	}
	return title
}
