package search

import (
	"strings"

	"github.com/fwojciec/mdsearch"
)

// DefaultFuzzyThreshold is the title similarity a fuzzy match must exceed.
const DefaultFuzzyThreshold = 80

// Matcher decides whether a single document matches a query.
type Matcher struct {
	Scorer    mdsearch.SimilarityScorer
	Threshold int
}

// Match returns a record for the first term of q that matches doc.
//
// In fuzzy mode each term is scored against the title and matches when the
// score exceeds the threshold. Otherwise each term is searched for in the
// content as a case-insensitive substring. The returned record has no tier;
// see Query.Classify.
func (m *Matcher) Match(doc *mdsearch.Document, q *Query, fuzzy bool) (mdsearch.Match, bool) {
	match := mdsearch.Match{
		Path:  doc.Path,
		Title: doc.Title,
		Hash:  doc.Hash,
	}

	if fuzzy {
		if m.Scorer == nil {
			return mdsearch.Match{}, false
		}
		title := strings.ToLower(doc.Title)
		for _, term := range q.lower {
			if score := m.Scorer.PartialRatio(term, title); score > m.Threshold {
				match.Score = score
				return match, true
			}
		}
		return mdsearch.Match{}, false
	}

	content := strings.ToLower(doc.Content)
	for _, term := range q.lower {
		if strings.Contains(content, term) {
			return match, true
		}
	}
	return mdsearch.Match{}, false
}
