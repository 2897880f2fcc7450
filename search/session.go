package search

import (
	"context"
	"fmt"
	"sync"

	"github.com/fwojciec/mdsearch"
)

// Session holds the result list of the most recent search and opens
// documents from it. Starting a search cancels the one in flight.
// It is safe for concurrent use.
type Session struct {
	searcher mdsearch.SearchService
	reader   mdsearch.DocumentReader

	mu      sync.Mutex
	results *mdsearch.ResultList
	cancel  context.CancelFunc
	gen     uint64
}

// NewSession creates a new Session.
func NewSession(searcher mdsearch.SearchService, reader mdsearch.DocumentReader) *Session {
	return &Session{searcher: searcher, reader: reader}
}

// Run searches root for query, superseding any search still in flight.
// On success the result list replaces the current one; on failure the
// current one is kept. A superseded search returns context.Canceled.
func (s *Session) Run(ctx context.Context, root, query string, opts mdsearch.SearchOptions) (*mdsearch.ResultList, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	s.mu.Lock()
	if s.cancel != nil {
		s.cancel()
	}
	s.gen++
	gen := s.gen
	s.cancel = cancel
	s.mu.Unlock()

	results, err := s.searcher.Search(ctx, root, query, opts)

	s.mu.Lock()
	defer s.mu.Unlock()

	if gen != s.gen {
		return nil, fmt.Errorf("search %q superseded: %w", query, context.Canceled)
	}
	s.cancel = nil
	if err != nil {
		return nil, err
	}
	s.results = results
	return results, nil
}

// Results returns the current result list, or nil if there is none.
func (s *Session) Results() *mdsearch.ResultList {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.results
}

// Reset discards the current result list and cancels any search in flight.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
	s.gen++
	s.results = nil
}

// Open re-reads the n-th (1-based) document of the current result list.
// Returns ENOTFOUND if there are no results and EINVALID if n is out of range.
func (s *Session) Open(ctx context.Context, n int) (*mdsearch.View, error) {
	results := s.Results()
	if results.Len() == 0 {
		return nil, mdsearch.Errorf(mdsearch.ENOTFOUND, "no search results; run a search first")
	}
	if n < 1 || n > results.Len() {
		return nil, mdsearch.Errorf(mdsearch.EINVALID, "invalid result number %d; choose 1-%d", n, results.Len())
	}

	match := results.Matches[n-1]
	doc, err := s.reader.ReadDocument(ctx, match.Path)
	if err != nil {
		return nil, err
	}

	return &mdsearch.View{
		Match:    match,
		Document: doc,
		Changed:  doc.Hash != match.Hash,
	}, nil
}
