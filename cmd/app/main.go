package main

import (
	"flag"
	"log"

	"devapi/internal/config"
	"devapi/internal/domain"
	"devapi/internal/service"
)

var Version = "1.0.0"

func main() {
	configPath := flag.String("config", "", "Optional YAML config file")
	host := flag.String("host", "", "Host to bind to (default 127.0.0.1)")
	flag.Parse()

	// The first positional argument is the port, matching how the shell
	// spawns the service: `app 8123`.
	cfg, err := config.Load(*configPath, *host, flag.Args())
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}
	cfg.Version = Version

	ctx := &domain.Context{Config: cfg}

	// Create and Run Orchestrator
	orchestrator := service.CreateOrchestrator(ctx)
	if err := orchestrator.Run(); err != nil {
		log.Fatalf("Error running orchestrator: %v", err)
	}
}
