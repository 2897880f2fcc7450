package main_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/mdsearch"
	main "github.com/fwojciec/mdsearch/cmd/mdsearch"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCLI_HelpShowsAllCommands(t *testing.T) {
	t.Parallel()

	cli := &main.CLI{}
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	parser, err := kong.New(cli,
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
	)
	require.NoError(t, err)

	_, _ = parser.Parse([]string{"--help"})

	helpOutput := stdout.String()
	for _, cmd := range []string{"search", "show", "links"} {
		assert.Contains(t, helpOutput, cmd, "Help should mention %s command", cmd)
	}
}

func TestMain_Run(t *testing.T) {
	t.Parallel()

	// writeCorpus creates a corpus and a config file pointing at it.
	writeCorpus := func(t *testing.T) (root, configPath string) {
		t.Helper()
		dir := t.TempDir()
		root = filepath.Join(dir, "notes")
		require.NoError(t, os.MkdirAll(filepath.Join(root, "windows"), 0o755))
		require.NoError(t, os.WriteFile(filepath.Join(root, "windows", "kerberoast.md"),
			[]byte("# Kerberoasting\n\nRequest a TGS.\n\nhttps://example.org/kerberos\n"), 0o644))
		require.NoError(t, os.WriteFile(filepath.Join(root, "readme.txt"),
			[]byte("kerberoasting"), 0o644))

		configPath = filepath.Join(dir, "mdsearch.yaml")
		require.NoError(t, os.WriteFile(configPath, []byte("root: "+root+"\n"), 0o644))
		return root, configPath
	}

	t.Run("help shows kong output", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		err := main.NewMain().Run(context.Background(), []string{"--help"}, stdout, &bytes.Buffer{})

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "Usage:")
		assert.Contains(t, stdout.String(), "Flags:")
		assert.Contains(t, stdout.String(), "search")
	})

	t.Run("returns error without command", func(t *testing.T) {
		t.Parallel()

		stderr := &bytes.Buffer{}
		err := main.NewMain().Run(context.Background(), nil, &bytes.Buffer{}, stderr)

		require.Error(t, err)
		assert.Contains(t, stderr.String(), "no command specified")
	})

	t.Run("searches configured root", func(t *testing.T) {
		t.Parallel()

		root, configPath := writeCorpus(t)
		stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}

		m := main.NewMain()
		err := m.Run(context.Background(), []string{"--config", configPath, "search", "kerberoasting"}, stdout, stderr)

		require.NoError(t, err, stderr.String())
		assert.Equal(t, root, m.Config.Root)
		out := stdout.String()
		assert.Contains(t, out, "Searching for: kerberoasting, kerberoast, kerberos roasting")
		assert.Contains(t, out, `Found 1 results for "kerberoasting":`)
		assert.Contains(t, out, "Kerberoasting")
		assert.Contains(t, out, "[exact]")
		assert.Contains(t, out, "kerberoast.md")
		assert.NotContains(t, out, "readme.txt")
	})

	t.Run("opens a result and lists its links", func(t *testing.T) {
		t.Parallel()

		_, configPath := writeCorpus(t)
		stdout := &bytes.Buffer{}

		err := main.NewMain().Run(context.Background(),
			[]string{"-c", configPath, "search", "tgs", "--open", "1", "--show", "links"},
			stdout, &bytes.Buffer{})

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "1. https://example.org/kerberos")
	})

	t.Run("logs search at debug level when verbose", func(t *testing.T) {
		t.Parallel()

		_, configPath := writeCorpus(t)
		stderr := &bytes.Buffer{}

		err := main.NewMain().Run(context.Background(),
			[]string{"--verbose", "--config", configPath, "search", "kerberoasting"},
			&bytes.Buffer{}, stderr)

		require.NoError(t, err)
		assert.Contains(t, stderr.String(), "msg=\"read document\"")
		assert.Contains(t, stderr.String(), "msg=search")
	})

	t.Run("reports missing root", func(t *testing.T) {
		t.Parallel()

		_, configPath := writeCorpus(t)
		stderr := &bytes.Buffer{}

		err := main.NewMain().Run(context.Background(),
			[]string{"--config", configPath, "search", "--root", filepath.Join(t.TempDir(), "missing"), "smb"},
			&bytes.Buffer{}, stderr)

		assert.Equal(t, mdsearch.ENOTFOUND, mdsearch.ErrorCode(err))
		assert.Contains(t, stderr.String(), "error: directory")
	})

	t.Run("shows a document", func(t *testing.T) {
		t.Parallel()

		root, configPath := writeCorpus(t)
		stdout := &bytes.Buffer{}

		err := main.NewMain().Run(context.Background(),
			[]string{"--config", configPath, "show", filepath.Join(root, "windows", "kerberoast.md"), "--keyword", "tgs"},
			stdout, &bytes.Buffer{})

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "Request a")
		assert.Contains(t, stdout.String(), "TGS")
	})
}
