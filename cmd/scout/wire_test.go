package main_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/fwojciec/scout"
	main "github.com/fwojciec/scout/cmd/scout"
	"github.com/fwojciec/scout/goquery"
	"github.com/fwojciec/scout/htmltomarkdown"
	"github.com/fwojciec/scout/pipeline"
	"github.com/fwojciec/scout/readability"
	scoutslog "github.com/fwojciec/scout/slog"
	"github.com/fwojciec/scout/trafilatura"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func TestConfig_ContentStages(t *testing.T) {
	t.Parallel()

	tests := []struct {
		content   string
		extractor scout.Extractor
		converter scout.Converter
	}{
		{"raw", nil, nil},
		{"trafilatura", &trafilatura.Extractor{}, &htmltomarkdown.Converter{}},
		{"readability", &readability.Extractor{}, &htmltomarkdown.Converter{}},
		{"text", &goquery.TextExtractor{}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.content, func(t *testing.T) {
			t.Parallel()

			cfg := &main.Config{Content: tt.content}
			extractor, converter := cfg.ContentStages()

			if tt.extractor == nil {
				assert.Nil(t, extractor)
			} else {
				assert.IsType(t, tt.extractor, extractor)
			}
			if tt.converter == nil {
				assert.Nil(t, converter)
			} else {
				assert.IsType(t, tt.converter, converter)
			}
		})
	}
}

func TestConfig_NewFetcher(t *testing.T) {
	t.Parallel()

	t.Run("wraps fetcher for content reduction", func(t *testing.T) {
		t.Parallel()

		cfg := &main.Config{Fetcher: "http", Content: "text"}
		fetcher, err := cfg.NewFetcher(discardLogger())

		require.NoError(t, err)
		defer fetcher.Close()
		assert.IsType(t, &pipeline.ArticleFetcher{}, fetcher)
	})

	t.Run("returns plain fetcher in raw mode", func(t *testing.T) {
		t.Parallel()

		cfg := &main.Config{Fetcher: "http", Content: "raw"}
		fetcher, err := cfg.NewFetcher(discardLogger())

		require.NoError(t, err)
		defer fetcher.Close()
		assert.IsType(t, &scoutslog.LoggingFetcher{}, fetcher)
	})
}

func TestConfig_InitClients(t *testing.T) {
	t.Parallel()

	t.Run("requires gemini key", func(t *testing.T) {
		t.Parallel()

		cfg := &main.Config{LLM: "gemini", MapsAPIKey: "maps-key"}
		_, _, err := cfg.InitClients(discardLogger())(context.Background())

		require.Error(t, err)
		assert.Equal(t, scout.EUPSTREAM, scout.ErrorCode(err))
		assert.Contains(t, scout.ErrorMessage(err), "GENAI_API_KEY")
	})

	t.Run("requires openai key when selected", func(t *testing.T) {
		t.Parallel()

		cfg := &main.Config{LLM: "openai", GenAIAPIKey: "genai-key", MapsAPIKey: "maps-key"}
		_, _, err := cfg.InitClients(discardLogger())(context.Background())

		require.Error(t, err)
		assert.Contains(t, scout.ErrorMessage(err), "OPENAI_API_KEY")
	})

	t.Run("requires maps key", func(t *testing.T) {
		t.Parallel()

		cfg := &main.Config{LLM: "openai", OpenAIAPIKey: "openai-key"}
		_, _, err := cfg.InitClients(discardLogger())(context.Background())

		require.Error(t, err)
		assert.Contains(t, scout.ErrorMessage(err), "MAPS_API_KEY")
	})

	t.Run("creates both clients", func(t *testing.T) {
		t.Parallel()

		cfg := &main.Config{LLM: "openai", OpenAIAPIKey: "openai-key", MapsAPIKey: "maps-key"}
		completer, geocoder, err := cfg.InitClients(discardLogger())(context.Background())

		require.NoError(t, err)
		assert.NotNil(t, completer)
		assert.NotNil(t, geocoder)
	})
}

func TestConfig_NewTokenCounter_DisabledByDefault(t *testing.T) {
	t.Parallel()

	cfg := &main.Config{}

	assert.Nil(t, cfg.NewTokenCounter(discardLogger()))
}

func TestNewLogger(t *testing.T) {
	t.Parallel()

	t.Run("hides debug by default", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		main.NewLogger(&buf, false).Debug("hidden")

		assert.Empty(t, buf.String())
	})

	t.Run("shows debug when verbose", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		main.NewLogger(&buf, true).Debug("shown")

		assert.Contains(t, buf.String(), "shown")
	})
}
