package main

import (
	"fmt"

	"github.com/fwojciec/mdsearch"
)

// Run executes the links command.
func (c *LinksCmd) Run(deps *Dependencies) error {
	doc, err := deps.Reader.ReadDocument(deps.Ctx, c.Path)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", mdsearch.ErrorMessage(err))
		return err
	}

	view := &mdsearch.View{Document: doc}
	printLinks(deps, view.Links(deps.Links))
	return nil
}

func printLinks(deps *Dependencies, links mdsearch.LinkSet) {
	if links.Len() == 0 {
		fmt.Fprintln(deps.Stdout, "No links found.")
		return
	}
	for i, link := range links.Sorted() {
		fmt.Fprintf(deps.Stdout, "%3d. %s\n", i+1, link)
	}
}
