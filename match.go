package mdsearch

import "context"

// Tier classifies how well a document matched a query.
type Tier int

// Tier constants. Exact-tier matches always rank above partial-tier matches.
const (
	TierExact Tier = iota + 1
	TierPartial
)

// String returns the lowercase name of the tier.
func (t Tier) String() string {
	switch t {
	case TierExact:
		return "exact"
	case TierPartial:
		return "partial"
	default:
		return "unknown"
	}
}

// Match represents a document that matched a query.
// A document produces at most one match per search.
type Match struct {
	Path  string `json:"path"`
	Title string `json:"title"`
	Tier  Tier   `json:"tier"`

	// Fuzzy similarity between a query term and the title (0-100).
	// Zero when fuzzy scoring was not requested.
	Score int `json:"score,omitempty"`

	// Content hash at the time of matching.
	Hash string `json:"hash"`
}

// DocumentFailure records a document that could not be searched.
type DocumentFailure struct {
	Path string `json:"path"`
	Err  error  `json:"-"`
}

// ResultList is the ranked outcome of a search.
type ResultList struct {
	ID    string   `json:"id"`
	Query string   `json:"query"`
	Terms []string `json:"terms"`
	Fuzzy bool     `json:"fuzzy"`

	// Exact-tier matches first, then partial-tier matches.
	Matches []Match `json:"matches"`

	// Documents skipped because they could not be read.
	Failures []DocumentFailure `json:"failures,omitempty"`
}

// Len returns the number of matches.
func (l *ResultList) Len() int {
	if l == nil {
		return 0
	}
	return len(l.Matches)
}

// SearchOptions configures search behavior.
type SearchOptions struct {
	// Score titles with fuzzy similarity instead of scanning content.
	Fuzzy bool `json:"fuzzy,omitempty"`
}

// SearchService searches a directory of markdown documents.
type SearchService interface {
	// Search scans every document under root for the expanded query and
	// returns the ranked matches. No matches is not an error.
	//
	// Returns EINVALID if query is empty and ENOTFOUND if root does not exist.
	// Documents that cannot be read are recorded in ResultList.Failures.
	Search(ctx context.Context, root, query string, opts SearchOptions) (*ResultList, error)
}

// SimilarityScorer computes fuzzy string similarity.
type SimilarityScorer interface {
	// PartialRatio returns the best similarity (0-100) between the shorter
	// string and any equally long substring of the longer one.
	PartialRatio(a, b string) int
}
