package mdsearch_test

import (
	"testing"

	"github.com/fwojciec/mdsearch"
	"github.com/stretchr/testify/assert"
)

func TestTier_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "exact", mdsearch.TierExact.String())
	assert.Equal(t, "partial", mdsearch.TierPartial.String())
	assert.Equal(t, "unknown", mdsearch.Tier(0).String())
}

func TestTier_ExactRanksFirst(t *testing.T) {
	t.Parallel()

	assert.Less(t, mdsearch.TierExact, mdsearch.TierPartial)
}

func TestResultList_Len(t *testing.T) {
	t.Parallel()

	var nilList *mdsearch.ResultList
	assert.Equal(t, 0, nilList.Len())

	list := &mdsearch.ResultList{Matches: []mdsearch.Match{{Path: "/a.md"}, {Path: "/b.md"}}}
	assert.Equal(t, 2, list.Len())
}
