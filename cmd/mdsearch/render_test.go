package main_test

import (
	"bytes"
	"testing"

	main "github.com/fwojciec/mdsearch/cmd/mdsearch"
	"github.com/stretchr/testify/assert"
)

func TestTruncateMiddle(t *testing.T) {
	t.Parallel()

	t.Run("keeps short strings", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "/docs/a.md", main.TruncateMiddle("/docs/a.md", 20))
	})

	t.Run("replaces middle with ellipsis", func(t *testing.T) {
		t.Parallel()

		got := main.TruncateMiddle("/home/user/hacktricks/windows/active-directory/kerberoast.md", 20)

		assert.Equal(t, "/home/us...eroast.md", got)
	})

	t.Run("ignores non-positive width", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "/docs/a.md", main.TruncateMiddle("/docs/a.md", 0))
	})
}

func TestRenderer(t *testing.T) {
	t.Parallel()

	t.Run("nil renderer leaves text unstyled", func(t *testing.T) {
		t.Parallel()

		var r *main.Renderer

		assert.Equal(t, "TGS", r.Highlight("TGS"))
		assert.Equal(t, "Title", r.Title("Title"))
		assert.Equal(t, "/path", r.Dim("/path"))
		assert.Equal(t, "warning", r.Warn("warning"))
	})

	t.Run("keeps text when writing to a non-terminal", func(t *testing.T) {
		t.Parallel()

		r := main.NewRenderer(&bytes.Buffer{})

		assert.Contains(t, r.Highlight("TGS"), "TGS")
		assert.Contains(t, r.Title("Kerberoasting"), "Kerberoasting")
	})
}
