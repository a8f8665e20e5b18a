package service

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"devapi/internal/api"
	"devapi/internal/domain"
	"devapi/internal/service/capability"
	"devapi/internal/service/dataset"
)

type Orchestrator struct {
	ctx *domain.Context
}

func CreateOrchestrator(ctx *domain.Context) *Orchestrator {
	return &Orchestrator{
		ctx: ctx,
	}
}

func (o *Orchestrator) Run() error {
	log.Printf("Starting %s (Version: %s)...", o.ctx.Config.APIName, o.ctx.Config.Version)

	// Probe optional capabilities once; handlers only see the flags.
	caps := capability.Probe(o.ctx.Config)

	// Sample dataset, hot-reloaded when an override file is configured.
	data := dataset.Fixed()
	if path := o.ctx.Config.DatasetPath; path != "" {
		d, err := dataset.Open(path)
		if err != nil {
			log.Printf("dataset: %v, continuing without hot reload", err)
		}
		data = d
	}
	defer data.Close()

	// Initialize API Server
	server := api.Create(o.ctx, caps, data)

	// http.ListenAndServe is blocking, so run it in a goroutine and listen
	// for signals here. /shutdown bypasses all of this on purpose.
	go func() {
		if err := server.Run(); err != nil {
			log.Fatalf("API Server failed: %v", err)
		}
	}()

	// Wait for shutdown signal
	w := make(chan os.Signal, 1)
	signal.Notify(w, syscall.SIGTERM, syscall.SIGINT)
	log.Printf("Received %s signal. Shutting down...", <-w)

	return nil
}
