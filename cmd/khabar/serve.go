package main

import (
	"fmt"
	"os"
	"os/signal"

	khhttp "github.com/gujnews/khabar/http"
)

// Run executes the serve command. It blocks until interrupted.
func (c *ServeCmd) Run(deps *Dependencies) error {
	server := khhttp.NewServer()
	server.Addr = c.Addr
	server.Extractor = deps.Extractor
	server.Registry = deps.Registry
	server.Generator = deps.Generator
	server.Cache = deps.Cache
	server.Logger = deps.Logger

	if err := server.Open(); err != nil {
		return fmt.Errorf("failed to listen on %s: %w", c.Addr, err)
	}
	defer server.Close()

	deps.Logger.Info("api server listening",
		"addr", c.Addr,
		"domains", deps.Registry.Names(),
	)

	ctx, stop := signal.NotifyContext(deps.Ctx, os.Interrupt)
	defer stop()
	<-ctx.Done()

	deps.Logger.Info("shutting down")
	return nil
}
