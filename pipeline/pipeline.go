// Package pipeline turns an article URL into geocoded points of interest.
// It sequences fetching, entity extraction, and geocoding, and defines how
// failures in each stage affect the run.
package pipeline

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/fwojciec/scout"
	"github.com/google/uuid"
)

// Ensure Pipeline implements scout.Runner at compile time.
var _ scout.Runner = (*Pipeline)(nil)

// DefaultLLMTimeout bounds the language model call.
const DefaultLLMTimeout = 60 * time.Second

// State is a step of a pipeline run.
type State int

const (
	StateIdle State = iota
	StateFetching
	StateExtracting
	StateResolving
	StateDone
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateFetching:
		return "fetching"
	case StateExtracting:
		return "extracting"
	case StateResolving:
		return "resolving"
	case StateDone:
		return "done"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// StateFunc is a callback invoked on every state transition of a run.
type StateFunc func(state State)

// Pipeline runs Fetch, Extract and Resolve for a single URL. A Pipeline
// holds no per-run state and is safe for concurrent use.
type Pipeline struct {
	Fetcher scout.Fetcher
	Clients *Clients

	// GeocodeConcurrency is passed to Resolver.Concurrency.
	GeocodeConcurrency int

	// GeocodeTimeout bounds each geocoding call.
	GeocodeTimeout time.Duration

	// LLMTimeout bounds the language model call. Zero means DefaultLLMTimeout.
	LLMTimeout time.Duration

	// MaxPageTokens caps the page text sent to the model when TokenCounter
	// is set. Zero disables the cap.
	MaxPageTokens int
	TokenCounter  scout.TokenCounter

	Logger  *slog.Logger
	OnState StateFunc
}

// Run fetches url, extracts the points of interest it mentions, and geocodes
// them. It returns EINVALID for an empty URL, EFETCH when the page cannot be
// retrieved, and EUPSTREAM when the language model or its clients fail.
// Geocoding problems never fail the run; they only add to Unresolved.
func (p *Pipeline) Run(ctx context.Context, url string) (*scout.Result, error) {
	url = strings.TrimSpace(url)
	if url == "" {
		return nil, scout.Errorf(scout.EINVALID, "URL is required.")
	}

	logger := p.logger().With("run_id", uuid.NewString(), "url", url)
	begin := time.Now()
	p.transition(StateIdle)

	p.transition(StateFetching)
	text, err := p.Fetcher.Fetch(ctx, url)
	if err != nil {
		return nil, p.fail(logger, begin, scout.Errorf(scout.EFETCH, "Error fetching URL: %v", err))
	}
	logger.Info("page fetched", "bytes", len(text), "elapsed", time.Since(begin))
	text = p.fitBudget(ctx, logger, text)

	p.transition(StateExtracting)
	completer, geocoder, err := p.Clients.Ensure(ctx)
	if err != nil {
		return nil, p.fail(logger, begin, err)
	}
	entities, err := p.extract(ctx, completer, text)
	if err != nil {
		return nil, p.fail(logger, begin, err)
	}
	logger.Info("entities extracted", "count", len(entities), "elapsed", time.Since(begin))

	p.transition(StateResolving)
	resolver := &Resolver{
		Geocoder:    geocoder,
		Concurrency: p.GeocodeConcurrency,
		CallTimeout: p.GeocodeTimeout,
	}
	result := resolver.Resolve(ctx, entities)

	p.transition(StateDone)
	logger.Info("run completed",
		"resolved", len(result.Coordinates),
		"unresolved", len(result.Unresolved),
		"elapsed", time.Since(begin),
	)
	return result, nil
}

func (p *Pipeline) extract(ctx context.Context, completer scout.Completer, text string) ([]string, error) {
	timeout := p.LLMTimeout
	if timeout <= 0 {
		timeout = DefaultLLMTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	return NewEntityExtractor(completer).Extract(ctx, text)
}

// fitBudget truncates text to MaxPageTokens. Counting failures leave the
// text as it is.
func (p *Pipeline) fitBudget(ctx context.Context, logger *slog.Logger, text string) string {
	if p.TokenCounter == nil || p.MaxPageTokens <= 0 {
		return text
	}
	truncated, err := TruncateToTokens(ctx, p.TokenCounter, text, p.MaxPageTokens)
	if err != nil {
		logger.Warn("token count failed", "err", err)
		return text
	}
	if len(truncated) < len(text) {
		logger.Info("page truncated", "from_bytes", len(text), "to_bytes", len(truncated))
	}
	return truncated
}

func (p *Pipeline) fail(logger *slog.Logger, begin time.Time, err error) error {
	p.transition(StateFailed)
	logger.Error("run failed",
		"code", scout.ErrorCode(err),
		"err", err,
		"elapsed", time.Since(begin),
	)
	return err
}

func (p *Pipeline) transition(state State) {
	if p.OnState != nil {
		p.OnState(state)
	}
}

func (p *Pipeline) logger() *slog.Logger {
	if p.Logger != nil {
		return p.Logger
	}
	return slog.New(slog.DiscardHandler)
}
