package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/fwojciec/scout"
	"github.com/fwojciec/scout/gemini"
	"github.com/fwojciec/scout/googlemaps"
	"github.com/fwojciec/scout/goquery"
	"github.com/fwojciec/scout/htmltomarkdown"
	scouthttp "github.com/fwojciec/scout/http"
	"github.com/fwojciec/scout/openai"
	"github.com/fwojciec/scout/pipeline"
	"github.com/fwojciec/scout/readability"
	"github.com/fwojciec/scout/rod"
	scoutslog "github.com/fwojciec/scout/slog"
	"github.com/fwojciec/scout/trafilatura"
)

// NewLogger returns a text logger writing to w. Verbose enables debug level.
func NewLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// NewFetcher builds the page fetcher selected by Fetcher and Content.
func (c *Config) NewFetcher(logger *slog.Logger) (scout.Fetcher, error) {
	var fetcher scout.Fetcher
	switch c.Fetcher {
	case "rod":
		f, err := rod.NewFetcher(rod.WithFetchTimeout(c.FetchTimeout))
		if err != nil {
			return nil, err
		}
		fetcher = f
	case "auto":
		f, err := rod.NewFetcher(rod.WithFetchTimeout(c.FetchTimeout))
		if err != nil {
			return nil, err
		}
		fetcher = pipeline.NewFallbackFetcher(
			scouthttp.NewFetcher(scouthttp.WithTimeout(c.FetchTimeout)),
			f,
			goquery.NewTextExtractor(),
			pipeline.WithFallbackTimeout(c.FetchTimeout),
		)
	default:
		fetcher = scouthttp.NewFetcher(scouthttp.WithTimeout(c.FetchTimeout))
	}
	fetcher = scoutslog.NewLoggingFetcher(fetcher, logger)

	extractor, converter := c.ContentStages()
	if extractor == nil {
		return fetcher, nil
	}
	return pipeline.NewArticleFetcher(fetcher, scoutslog.NewLoggingExtractor(extractor, logger), converter), nil
}

// ContentStages returns the extractor and converter for Content. Raw mode
// returns neither.
func (c *Config) ContentStages() (scout.Extractor, scout.Converter) {
	switch c.Content {
	case "trafilatura":
		return trafilatura.NewExtractor(), htmltomarkdown.NewConverter()
	case "readability":
		return readability.NewExtractor(), htmltomarkdown.NewConverter()
	case "text":
		return goquery.NewTextExtractor(), nil
	default:
		return nil, nil
	}
}

// InitClients returns the function that creates the language model and
// geocoding clients. Missing credentials fail initialisation, not startup.
func (c *Config) InitClients(logger *slog.Logger) pipeline.InitFunc {
	return func(ctx context.Context) (scout.Completer, scout.Geocoder, error) {
		completer, err := c.newCompleter(ctx)
		if err != nil {
			return nil, nil, err
		}

		geocoder, err := googlemaps.NewGeocoder(c.MapsAPIKey)
		if err != nil {
			return nil, nil, err
		}

		logger.Info("clients initialised", "llm", c.LLM)
		return scoutslog.NewLoggingCompleter(completer, logger),
			scoutslog.NewLoggingGeocoder(geocoder, logger),
			nil
	}
}

func (c *Config) newCompleter(ctx context.Context) (scout.Completer, error) {
	if c.LLM == "openai" {
		completer, err := openai.NewCompleter(c.OpenAIAPIKey, c.Model)
		if err != nil {
			return nil, err
		}
		return completer, nil
	}

	client, err := gemini.NewClient(ctx, c.GenAIAPIKey)
	if err != nil {
		return nil, err
	}
	return gemini.NewCompleter(client, c.Model), nil
}

// NewTokenCounter returns a local Gemini token counter when MaxPageTokens is
// set. The counter approximates other providers' tokenizers closely enough
// for a size cap. It returns nil when the cap is disabled or the tokenizer
// cannot be loaded.
func (c *Config) NewTokenCounter(logger *slog.Logger) scout.TokenCounter {
	if c.MaxPageTokens <= 0 {
		return nil
	}

	model := gemini.DefaultModel
	if c.LLM == "gemini" && c.Model != "" {
		model = c.Model
	}

	counter, err := gemini.NewTokenCounter(model)
	if err != nil {
		logger.Warn("page token cap disabled", "model", model, "err", err)
		return nil
	}
	return counter
}
