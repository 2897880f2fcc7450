// Package search provides concurrent search orchestration.
// It coordinates document walking, per-document matching, and ranking
// of the results.
package search

import (
	"cmp"
	"context"
	"slices"
	"strings"

	"github.com/fwojciec/mdsearch"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency is the number of documents matched in parallel.
const DefaultConcurrency = 8

// Compile-time interface verification.
var _ mdsearch.SearchService = (*Searcher)(nil)

// Searcher scans a markdown corpus for a query.
type Searcher struct {
	Walker   mdsearch.DocumentWalker
	Reader   mdsearch.DocumentReader
	Expander mdsearch.QueryExpander
	Scorer   mdsearch.SimilarityScorer

	// Zero values select DefaultConcurrency and DefaultFuzzyThreshold.
	Concurrency    int
	FuzzyThreshold int
}

// docResult holds the outcome of matching a single document.
type docResult struct {
	path  string
	match *mdsearch.Match
	err   error
}

// Search expands query, matches every document under root in parallel, and
// returns the matches ranked exact tier first. Documents that cannot be read
// are recorded as failures and do not affect the others.
func (s *Searcher) Search(ctx context.Context, root, query string, opts mdsearch.SearchOptions) (*mdsearch.ResultList, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, mdsearch.Errorf(mdsearch.EINVALID, "query required")
	}
	if opts.Fuzzy && s.Scorer == nil {
		return nil, mdsearch.Errorf(mdsearch.EINVALID, "fuzzy search is not available")
	}

	terms := []string{query}
	if s.Expander != nil {
		terms = s.Expander.Expand(query)
	}
	q, err := NewQuery(query, terms)
	if err != nil {
		return nil, err
	}

	concurrency := s.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}
	matcher := &Matcher{Scorer: s.Scorer, Threshold: s.FuzzyThreshold}
	if matcher.Threshold <= 0 {
		matcher.Threshold = DefaultFuzzyThreshold
	}

	resultCh := make(chan docResult, concurrency)

	// Written by the dispatcher, read after resultCh is closed.
	var walkErr error
	var walkFailures []mdsearch.DocumentFailure

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	go func() {
		for path, err := range s.Walker.Walk(gctx, root) {
			if err != nil {
				if path == "" {
					walkErr = err
					break
				}
				walkFailures = append(walkFailures, mdsearch.DocumentFailure{Path: path, Err: err})
				continue
			}
			g.Go(func() error {
				resultCh <- s.processDocument(gctx, path, q, matcher, opts.Fuzzy)
				return nil
			})
		}
		_ = g.Wait()
		close(resultCh)
	}()

	var matches []mdsearch.Match
	var failures []mdsearch.DocumentFailure
	for result := range resultCh {
		switch {
		case result.err != nil:
			failures = append(failures, mdsearch.DocumentFailure{Path: result.path, Err: result.err})
		case result.match != nil:
			matches = append(matches, *result.match)
		}
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if walkErr != nil {
		return nil, walkErr
	}

	failures = append(failures, walkFailures...)
	slices.SortFunc(failures, func(a, b mdsearch.DocumentFailure) int {
		return strings.Compare(a.Path, b.Path)
	})
	Rank(matches, opts.Fuzzy)

	if matches == nil {
		matches = []mdsearch.Match{}
	}
	return &mdsearch.ResultList{
		ID:       uuid.NewString(),
		Query:    query,
		Terms:    q.Terms,
		Fuzzy:    opts.Fuzzy,
		Matches:  matches,
		Failures: failures,
	}, nil
}

// processDocument reads, matches, and classifies a single document.
// A fuzzy title hit whose terms never occur in the content is discarded.
func (s *Searcher) processDocument(ctx context.Context, path string, q *Query, matcher *Matcher, fuzzy bool) docResult {
	result := docResult{path: path}

	doc, err := s.Reader.ReadDocument(ctx, path)
	if err != nil {
		result.err = err
		return result
	}

	match, ok := matcher.Match(doc, q, fuzzy)
	if !ok {
		return result
	}

	tier, ok := q.Classify(doc.Content)
	if !ok {
		return result
	}
	match.Tier = tier
	result.match = &match

	return result
}

// Rank orders matches in place: exact tier before partial tier, then by
// path. When fuzzy is set, partial-tier matches are ordered by descending
// score before path.
func Rank(matches []mdsearch.Match, fuzzy bool) {
	slices.SortStableFunc(matches, func(a, b mdsearch.Match) int {
		if c := cmp.Compare(a.Tier, b.Tier); c != 0 {
			return c
		}
		if fuzzy && a.Tier == mdsearch.TierPartial {
			if c := cmp.Compare(b.Score, a.Score); c != 0 {
				return c
			}
		}
		return strings.Compare(a.Path, b.Path)
	})
}
