package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/scout"
	"github.com/fwojciec/scout/pipeline"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger
	Runner scout.Runner

	// Clients is initialised eagerly by serve. May be nil.
	Clients *pipeline.Clients
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Config

	Serve   ServeCmd   `cmd:"" help:"Run the HTTP API server"`
	Extract ExtractCmd `cmd:"" help:"Extract coordinates from a single article URL"`
}

// Config holds the settings shared by all commands.
type Config struct {
	LLM     string `name:"llm" enum:"gemini,openai" default:"gemini" env:"SCOUT_LLM" help:"Language model provider (gemini, openai)"`
	Model   string `env:"SCOUT_MODEL" help:"Model name; empty selects the provider default"`
	Fetcher string `enum:"http,rod,auto" default:"http" env:"SCOUT_FETCHER" help:"Page fetcher (http, rod, auto: http with rod fallback for thin pages)"`
	Content string `enum:"raw,trafilatura,readability,text" default:"raw" env:"SCOUT_CONTENT" help:"Content reduction before the model sees the page (raw, trafilatura, readability, text)"`

	FetchTimeout       time.Duration `default:"10s" env:"SCOUT_FETCH_TIMEOUT" help:"Page fetch timeout"`
	LLMTimeout         time.Duration `name:"llm-timeout" default:"60s" env:"SCOUT_LLM_TIMEOUT" help:"Language model call timeout"`
	GeocodeTimeout     time.Duration `default:"10s" env:"SCOUT_GEOCODE_TIMEOUT" help:"Per-place geocoding timeout"`
	GeocodeConcurrency int           `default:"1" env:"SCOUT_GEOCODE_CONCURRENCY" help:"Places geocoded in parallel"`
	MaxPageTokens      int           `default:"0" env:"SCOUT_MAX_PAGE_TOKENS" help:"Truncate page text to this many tokens (0 disables)"`

	GenAIAPIKey  string `name:"genai-api-key" env:"GENAI_API_KEY" help:"Gemini API key"`
	OpenAIAPIKey string `name:"openai-api-key" env:"OPENAI_API_KEY" help:"OpenAI API key"`
	MapsAPIKey   string `name:"maps-api-key" env:"MAPS_API_KEY" help:"Google Maps API key"`

	Verbose bool `short:"v" help:"Enable debug logging"`
}

// ServeCmd is the "serve" subcommand.
type ServeCmd struct {
	Addr string `default:":8080" env:"SCOUT_ADDR" help:"Address to listen on"`
}

// ExtractCmd is the "extract" subcommand.
type ExtractCmd struct {
	URL string `arg:"" help:"Article URL"`
}
