package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/fwojciec/scout"
	scouthttp "github.com/fwojciec/scout/http"
)

// Run executes the serve command. It blocks until the context is cancelled
// or the process receives SIGINT or SIGTERM.
func (c *ServeCmd) Run(deps *Dependencies) error {
	ctx, stop := signal.NotifyContext(deps.Ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	if deps.Clients != nil {
		if _, _, err := deps.Clients.Ensure(ctx); err != nil {
			deps.Logger.Warn("clients not initialised, retrying on first request",
				"err", scout.ErrorMessage(err),
			)
		}
	}

	s := scouthttp.NewServer()
	s.Addr = c.Addr
	s.Runner = deps.Runner
	s.Logger = deps.Logger

	if err := s.Open(); err != nil {
		return err
	}
	deps.Logger.Info("listening", "url", s.URL())

	<-ctx.Done()

	deps.Logger.Info("shutting down")
	return s.Close()
}
