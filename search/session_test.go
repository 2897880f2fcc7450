package search_test

import (
	"context"
	"errors"
	"testing"

	"github.com/fwojciec/mdsearch"
	"github.com/fwojciec/mdsearch/mock"
	"github.com/fwojciec/mdsearch/search"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSession_Run(t *testing.T) {
	t.Parallel()

	t.Run("stores result list", func(t *testing.T) {
		t.Parallel()

		corpus := &mock.Corpus{Docs: map[string]string{"/docs/a.md": "# A\npersistence via cron"}}
		session := search.NewSession(newSearcher(corpus), corpus)

		list, err := session.Run(context.Background(), "/docs", "persistence", mdsearch.SearchOptions{})

		require.NoError(t, err)
		assert.Same(t, list, session.Results())
		assert.Equal(t, 1, session.Results().Len())
	})

	t.Run("keeps previous results on failure", func(t *testing.T) {
		t.Parallel()

		corpus := &mock.Corpus{Docs: map[string]string{"/docs/a.md": "# A\nrce"}}
		session := search.NewSession(newSearcher(corpus), corpus)
		first, err := session.Run(context.Background(), "/docs", "rce", mdsearch.SearchOptions{})
		require.NoError(t, err)

		_, err = session.Run(context.Background(), "/docs", "", mdsearch.SearchOptions{})

		assert.Equal(t, mdsearch.EINVALID, mdsearch.ErrorCode(err))
		assert.Same(t, first, session.Results())
	})

	t.Run("supersedes search in flight", func(t *testing.T) {
		t.Parallel()

		started := make(chan struct{})
		searcher := &mock.SearchService{
			SearchFn: func(ctx context.Context, root, query string, opts mdsearch.SearchOptions) (*mdsearch.ResultList, error) {
				if query == "slow" {
					close(started)
					<-ctx.Done()
					return nil, ctx.Err()
				}
				return &mdsearch.ResultList{Query: query, Matches: []mdsearch.Match{{Path: "/docs/fast.md"}}}, nil
			},
		}
		session := search.NewSession(searcher, &mock.Corpus{})

		slowErr := make(chan error, 1)
		go func() {
			_, err := session.Run(context.Background(), "/docs", "slow", mdsearch.SearchOptions{})
			slowErr <- err
		}()
		<-started

		list, err := session.Run(context.Background(), "/docs", "fast", mdsearch.SearchOptions{})
		require.NoError(t, err)

		assert.ErrorIs(t, <-slowErr, context.Canceled)
		assert.Same(t, list, session.Results())
		assert.Equal(t, "fast", session.Results().Query)
	})
}

func TestSession_Reset(t *testing.T) {
	t.Parallel()

	corpus := &mock.Corpus{Docs: map[string]string{"/docs/a.md": "# A\nshell"}}
	session := search.NewSession(newSearcher(corpus), corpus)
	_, err := session.Run(context.Background(), "/docs", "shell", mdsearch.SearchOptions{})
	require.NoError(t, err)

	session.Reset()

	assert.Nil(t, session.Results())
	_, err = session.Open(context.Background(), 1)
	assert.Equal(t, mdsearch.ENOTFOUND, mdsearch.ErrorCode(err))
}

func TestSession_Open(t *testing.T) {
	t.Parallel()

	newSession := func(t *testing.T, reader mdsearch.DocumentReader) *search.Session {
		t.Helper()
		searcher := &mock.SearchService{
			SearchFn: func(ctx context.Context, root, query string, opts mdsearch.SearchOptions) (*mdsearch.ResultList, error) {
				return &mdsearch.ResultList{
					Query: query,
					Matches: []mdsearch.Match{
						{Path: "/docs/a.md", Title: "A", Tier: mdsearch.TierExact, Hash: "h1"},
						{Path: "/docs/b.md", Title: "B", Tier: mdsearch.TierPartial, Hash: "h2"},
					},
				}, nil
			},
		}
		session := search.NewSession(searcher, reader)
		_, err := session.Run(context.Background(), "/docs", "smb", mdsearch.SearchOptions{})
		require.NoError(t, err)
		return session
	}

	reader := &mock.DocumentReader{
		ReadDocumentFn: func(ctx context.Context, path string) (*mdsearch.Document, error) {
			switch path {
			case "/docs/a.md":
				return &mdsearch.Document{Path: path, Title: "A", Content: "# A\nsmb", Hash: "h1"}, nil
			case "/docs/b.md":
				return &mdsearch.Document{Path: path, Title: "B", Content: "# B\nsmb edited", Hash: "h3"}, nil
			}
			return nil, mdsearch.Errorf(mdsearch.EREAD, "cannot read document %q", path)
		},
	}

	t.Run("opens n-th result", func(t *testing.T) {
		t.Parallel()

		view, err := newSession(t, reader).Open(context.Background(), 1)

		require.NoError(t, err)
		assert.Equal(t, "/docs/a.md", view.Match.Path)
		assert.Equal(t, "# A\nsmb", view.Document.Content)
		assert.False(t, view.Changed)
	})

	t.Run("flags document changed since search", func(t *testing.T) {
		t.Parallel()

		view, err := newSession(t, reader).Open(context.Background(), 2)

		require.NoError(t, err)
		assert.True(t, view.Changed)
	})

	t.Run("rejects out of range index", func(t *testing.T) {
		t.Parallel()

		session := newSession(t, reader)

		for _, n := range []int{0, 3, -1} {
			_, err := session.Open(context.Background(), n)
			assert.Equal(t, mdsearch.EINVALID, mdsearch.ErrorCode(err), "n=%d", n)
		}
	})

	t.Run("returns read error", func(t *testing.T) {
		t.Parallel()

		failing := &mock.DocumentReader{
			ReadDocumentFn: func(ctx context.Context, path string) (*mdsearch.Document, error) {
				return nil, mdsearch.Errorf(mdsearch.EREAD, "gone")
			},
		}

		_, err := newSession(t, failing).Open(context.Background(), 1)

		var appErr *mdsearch.Error
		require.True(t, errors.As(err, &appErr))
		assert.Equal(t, mdsearch.EREAD, appErr.Code)
	})

	t.Run("requires a search first", func(t *testing.T) {
		t.Parallel()

		session := search.NewSession(&mock.SearchService{}, reader)

		_, err := session.Open(context.Background(), 1)

		assert.Equal(t, mdsearch.ENOTFOUND, mdsearch.ErrorCode(err))
	})
}
