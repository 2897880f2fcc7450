package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/mdsearch"
	"github.com/fwojciec/mdsearch/config"
	"github.com/fwojciec/mdsearch/edlib"
	"github.com/fwojciec/mdsearch/fs"
	"github.com/fwojciec/mdsearch/search"
	mdslog "github.com/fwojciec/mdsearch/slog"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		stop()
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Loaded configuration. Set by Run().
	Config *config.Config

	// Services for end-to-end testing.
	Searcher mdsearch.SearchService
	Reader   mdsearch.DocumentReader
}

// NewMain returns a new instance of Main.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	// Initialize dependencies struct for Kong binding
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("mdsearch"),
		kong.Description("Search a local corpus of markdown notes."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		err := fmt.Errorf("no command specified. Run 'mdsearch --help' to see available commands")
		fmt.Fprintf(stderr, "error: %s\n", err)
		return err
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		fmt.Fprintf(stderr, "error: %s\n", err)
		return err
	}

	cfg, err := config.Load(cli.Config)
	if err != nil {
		fmt.Fprintf(stderr, "error: %s\n", mdsearch.ErrorMessage(err))
		return err
	}
	m.Config = cfg

	level, _ := cfg.Level()
	if cli.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	store := fs.NewDocumentStore(fs.WithExtensions(cfg.Extensions...))
	m.Reader = mdslog.NewLoggingReader(store, logger)
	m.Searcher = mdslog.NewLoggingSearcher(&search.Searcher{
		Walker:         store,
		Reader:         m.Reader,
		Expander:       mdsearch.NewSynonymTable(cfg.Synonyms),
		Scorer:         edlib.NewScorer(),
		Concurrency:    cfg.Concurrency,
		FuzzyThreshold: cfg.FuzzyThreshold,
	}, logger)

	deps.Root = cfg.Root
	deps.Session = search.NewSession(m.Searcher, m.Reader)
	deps.Reader = m.Reader
	deps.Links = mdsearch.NewLinkNormalizer(cfg.LinkDenylist)
	deps.Renderer = NewRenderer(stdout)

	return kongCtx.Run(deps)
}
