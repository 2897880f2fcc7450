package main

import (
	"fmt"
	"strings"

	"github.com/fwojciec/mdsearch"
)

// maxPathWidth bounds the width of result paths.
const maxPathWidth = 100

// Run executes the search command.
func (c *SearchCmd) Run(deps *Dependencies) error {
	root := c.Root
	if root == "" {
		root = deps.Root
	}
	query := strings.Join(c.Query, " ")

	results, err := deps.Session.Run(deps.Ctx, root, query, mdsearch.SearchOptions{Fuzzy: c.Fuzzy})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", mdsearch.ErrorMessage(err))
		return err
	}

	if n := len(results.Failures); n > 0 {
		fmt.Fprintln(deps.Stderr, deps.Renderer.Warn(fmt.Sprintf("warning: skipped %d unreadable documents", n)))
	}

	if results.Len() == 0 {
		fmt.Fprintf(deps.Stdout, "No results found for %q.\n", query)
		return nil
	}

	if len(results.Terms) > 1 {
		fmt.Fprintf(deps.Stdout, "Searching for: %s\n", strings.Join(results.Terms, ", "))
	}
	fmt.Fprintf(deps.Stdout, "Found %d results for %q:\n\n", results.Len(), query)
	for i, m := range results.Matches {
		label := m.Tier.String()
		if results.Fuzzy {
			label = fmt.Sprintf("%s %d", label, m.Score)
		}
		fmt.Fprintf(deps.Stdout, "%3d. %s [%s]\n     %s\n",
			i+1,
			deps.Renderer.Title(m.Title),
			label,
			deps.Renderer.Dim(TruncateMiddle(m.Path, maxPathWidth)),
		)
	}

	if c.Open == 0 {
		return nil
	}

	view, err := deps.Session.Open(deps.Ctx, c.Open)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", mdsearch.ErrorMessage(err))
		return err
	}
	fmt.Fprintln(deps.Stdout)
	return printView(deps, view, c.Show, c.Keyword)
}
