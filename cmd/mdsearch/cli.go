package main

import (
	"context"
	"io"

	"github.com/fwojciec/mdsearch"
	"github.com/fwojciec/mdsearch/search"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx      context.Context
	Stdout   io.Writer
	Stderr   io.Writer
	Root     string
	Session  *search.Session
	Reader   mdsearch.DocumentReader
	Links    *mdsearch.LinkNormalizer
	Renderer *Renderer
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Config  string `short:"c" type:"path" env:"MDSEARCH_CONFIG" help:"Path to a YAML config file"`
	Verbose bool   `short:"v" help:"Enable debug logging"`

	Search SearchCmd `cmd:"" help:"Search the corpus for a query"`
	Show   ShowCmd   `cmd:"" help:"Show a document"`
	Links  LinksCmd  `cmd:"" help:"List the links in a document"`
}

// SearchCmd is the "search" subcommand.
type SearchCmd struct {
	Query   []string `arg:"" help:"Search query (words are joined with spaces)"`
	Fuzzy   bool     `short:"f" help:"Match document titles by fuzzy similarity"`
	Root    string   `short:"r" type:"path" help:"Corpus directory (overrides config)"`
	Open    int      `short:"o" help:"Show the n-th result after searching"`
	Show    string   `short:"s" enum:"all,text,commands,links" default:"all" help:"What to show of the opened result (all, text, commands, links)"`
	Keyword string   `short:"k" help:"Show only paragraphs and code blocks containing keyword"`
}

// ShowCmd is the "show" subcommand.
type ShowCmd struct {
	Path    string `arg:"" type:"path" help:"Document path"`
	Show    string `short:"s" enum:"all,text,commands,links" default:"all" help:"What to show (all, text, commands, links)"`
	Keyword string `short:"k" help:"Show only paragraphs and code blocks containing keyword"`
}

// LinksCmd is the "links" subcommand.
type LinksCmd struct {
	Path string `arg:"" type:"path" help:"Document path"`
}
