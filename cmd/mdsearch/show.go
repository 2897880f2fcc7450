package main

import (
	"fmt"

	"github.com/fwojciec/mdsearch"
)

// Run executes the show command.
func (c *ShowCmd) Run(deps *Dependencies) error {
	doc, err := deps.Reader.ReadDocument(deps.Ctx, c.Path)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", mdsearch.ErrorMessage(err))
		return err
	}

	view := &mdsearch.View{
		Match:    mdsearch.Match{Path: doc.Path, Title: doc.Title, Hash: doc.Hash},
		Document: doc,
	}
	return printView(deps, view, c.Show, c.Keyword)
}

// printView writes the part of an opened document selected by show.
// A keyword narrows the output to the fragments around it.
func printView(deps *Dependencies, view *mdsearch.View, show, keyword string) error {
	r := deps.Renderer

	fmt.Fprintf(deps.Stdout, "%s\n%s\n\n", r.Title(view.Document.Title), r.Dim(view.Document.Path))
	if view.Changed {
		fmt.Fprintln(deps.Stderr, r.Warn("warning: document changed since the search"))
	}

	if keyword != "" {
		fragments, err := view.Fragments(keyword)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", mdsearch.ErrorMessage(err))
			return err
		}
		if len(fragments) == 0 {
			fmt.Fprintf(deps.Stdout, "No occurrences of %q in this document.\n", keyword)
			return nil
		}
		fmt.Fprintln(deps.Stdout, mdsearch.FormatFragments(fragments, r.Highlight))
		return nil
	}

	switch show {
	case "text":
		fmt.Fprintln(deps.Stdout, view.Text())
	case "commands":
		blocks := view.CodeBlocks()
		if len(blocks) == 0 {
			fmt.Fprintln(deps.Stdout, "No code blocks found.")
			return nil
		}
		fmt.Fprintln(deps.Stdout, mdsearch.FormatFragments(blocks, nil))
	case "links":
		printLinks(deps, view.Links(deps.Links))
	default:
		fmt.Fprintln(deps.Stdout, view.Document.Content)
	}
	return nil
}
