package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/scout/pipeline"
	"github.com/joho/godotenv"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// EnvFile is loaded into the environment before flags are parsed.
	// Variables already set take precedence. Empty disables loading.
	EnvFile string
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{EnvFile: ".env"}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	if m.EnvFile != "" {
		if err := godotenv.Load(m.EnvFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("loading %s: %w", m.EnvFile, err)
		}
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("scout"),
		kong.Description("Find the places an article mentions and put them on a map."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'scout --help' to see available commands")
	}

	if args[0] == "help" || args[0] == "--help" || args[0] == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	logger := NewLogger(stderr, cli.Verbose)

	fetcher, err := cli.NewFetcher(logger)
	if err != nil {
		if cli.Fetcher == "rod" || cli.Fetcher == "auto" {
			fmt.Fprintln(stderr, "Hint: Chrome or Chromium must be installed")
		}
		return err
	}
	defer fetcher.Close()

	clients := pipeline.NewClients(cli.InitClients(logger))

	p := &pipeline.Pipeline{
		Fetcher:            fetcher,
		Clients:            clients,
		GeocodeConcurrency: cli.GeocodeConcurrency,
		GeocodeTimeout:     cli.GeocodeTimeout,
		LLMTimeout:         cli.LLMTimeout,
		MaxPageTokens:      cli.MaxPageTokens,
		TokenCounter:       cli.NewTokenCounter(logger),
		Logger:             logger,
	}

	deps := &Dependencies{
		Ctx:     ctx,
		Stdout:  stdout,
		Stderr:  stderr,
		Logger:  logger,
		Runner:  p,
		Clients: clients,
	}

	return kongCtx.Run(deps)
}
