package mdsearch

import "strings"

// QueryExpander maps a raw query term to the ordered set of terms to search for.
type QueryExpander interface {
	Expand(term string) []string
}

// Ensure SynonymTable implements QueryExpander at compile time.
var _ QueryExpander = (*SynonymTable)(nil)

// SynonymTable is an immutable synonym lookup table.
// It is safe for concurrent use.
type SynonymTable struct {
	m map[string][]string
}

// NewSynonymTable returns a table holding a copy of synonyms.
// Later changes to the argument do not affect the table.
func NewSynonymTable(synonyms map[string][]string) *SynonymTable {
	m := make(map[string][]string, len(synonyms))
	for k, v := range synonyms {
		m[k] = append([]string(nil), v...)
	}
	return &SynonymTable{m: m}
}

// Expand returns term followed by its synonyms, if term is a key of the
// table. Keys match case-sensitively. The result never contains two terms
// that are equal ignoring case; the first occurrence wins.
func (t *SynonymTable) Expand(term string) []string {
	var synonyms []string
	if t != nil {
		synonyms = t.m[term]
	}

	terms := make([]string, 0, len(synonyms)+1)
	seen := make(map[string]bool, len(synonyms)+1)
	for _, s := range append([]string{term}, synonyms...) {
		key := strings.ToLower(s)
		if seen[key] {
			continue
		}
		seen[key] = true
		terms = append(terms, s)
	}
	return terms
}

// Len returns the number of keys in the table.
func (t *SynonymTable) Len() int {
	if t == nil {
		return 0
	}
	return len(t.m)
}
