package search

import (
	"regexp"
	"strings"

	"github.com/fwojciec/mdsearch"
)

// Query is an expanded query prepared for matching.
// It is read-only after construction and shared by all workers.
type Query struct {
	Raw   string
	Terms []string

	lower []string
	words []*regexp.Regexp
}

// NewQuery prepares the expanded terms of raw for matching.
// Empty terms are dropped. Returns EINVALID if no term remains.
func NewQuery(raw string, terms []string) (*Query, error) {
	q := &Query{Raw: raw}
	for _, term := range terms {
		if strings.TrimSpace(term) == "" {
			continue
		}
		q.Terms = append(q.Terms, term)
		q.lower = append(q.lower, strings.ToLower(term))
		q.words = append(q.words, regexp.MustCompile(`(?i)\b`+regexp.QuoteMeta(term)+`\b`))
	}
	if len(q.Terms) == 0 {
		return nil, mdsearch.Errorf(mdsearch.EINVALID, "query required")
	}
	return q, nil
}

// Classify returns the tier of content for the first term, in expansion
// order, that occurs in it: exact for a whole-word match, partial for a
// substring match. Both tests ignore case. Returns false if no term occurs.
func (q *Query) Classify(content string) (mdsearch.Tier, bool) {
	lowered := strings.ToLower(content)
	for i, term := range q.lower {
		if !strings.Contains(lowered, term) {
			continue
		}
		if q.words[i].MatchString(content) {
			return mdsearch.TierExact, true
		}
		return mdsearch.TierPartial, true
	}
	return 0, false
}
