// Package edlib provides fuzzy string similarity backed by go-edlib.
package edlib

import (
	"math"

	"github.com/fwojciec/mdsearch"
	"github.com/hbollon/go-edlib"
)

// Ensure Scorer implements mdsearch.SimilarityScorer at compile time.
var _ mdsearch.SimilarityScorer = (*Scorer)(nil)

// Scorer computes indel-based similarity ratios. Comparison is
// case-sensitive; callers fold case beforehand when needed.
type Scorer struct{}

// NewScorer creates a new Scorer.
func NewScorer() *Scorer {
	return &Scorer{}
}

// Ratio returns the normalized indel similarity of a and b (0-100):
// twice the longest common subsequence over the combined length.
func (s *Scorer) Ratio(a, b string) int {
	total := len([]rune(a)) + len([]rune(b))
	if total == 0 {
		return 100
	}
	lcs := edlib.LCS(a, b)
	return int(math.Round(200 * float64(lcs) / float64(total)))
}

// PartialRatio returns the best Ratio between the shorter string and every
// window of the longer string with the same length. Windows overhanging
// either end of the longer string are included, truncated to fit.
// Returns 0 if either string is empty.
func (s *Scorer) PartialRatio(a, b string) int {
	short, long := []rune(a), []rune(b)
	if len(short) > len(long) {
		short, long = long, short
	}
	if len(short) == 0 {
		return 0
	}

	needle := string(short)
	m := len(short)
	best := 0
	for start := 1 - m; start < len(long); start++ {
		lo, hi := max(start, 0), min(start+m, len(long))
		if r := s.Ratio(needle, string(long[lo:hi])); r > best {
			best = r
			if best == 100 {
				break
			}
		}
	}
	return best
}
