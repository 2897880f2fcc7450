package mock

import (
	"context"

	"github.com/fwojciec/mdsearch"
)

// Compile-time interface verification.
var (
	_ mdsearch.SearchService    = (*SearchService)(nil)
	_ mdsearch.QueryExpander    = (*QueryExpander)(nil)
	_ mdsearch.SimilarityScorer = (*SimilarityScorer)(nil)
)

// SearchService is a mock implementation of mdsearch.SearchService.
type SearchService struct {
	SearchFn func(ctx context.Context, root, query string, opts mdsearch.SearchOptions) (*mdsearch.ResultList, error)
}

func (s *SearchService) Search(ctx context.Context, root, query string, opts mdsearch.SearchOptions) (*mdsearch.ResultList, error) {
	return s.SearchFn(ctx, root, query, opts)
}

// QueryExpander is a mock implementation of mdsearch.QueryExpander.
type QueryExpander struct {
	ExpandFn func(term string) []string
}

func (e *QueryExpander) Expand(term string) []string {
	return e.ExpandFn(term)
}

// SimilarityScorer is a mock implementation of mdsearch.SimilarityScorer.
type SimilarityScorer struct {
	PartialRatioFn func(a, b string) int
}

func (s *SimilarityScorer) PartialRatio(a, b string) int {
	return s.PartialRatioFn(a, b)
}
