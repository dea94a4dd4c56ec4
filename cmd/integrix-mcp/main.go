// Command integrix-mcp exposes the integration engine as an MCP tool
// server, over stdio or streamable HTTP.
//
// Environment:
//
//	TRANSPORT  "stdio" (default) or "streamable-http"
//	PORT       HTTP port for the streamable-http transport (default 8080)
//
// Flags:
//
//	-config    optional YAML file with engine tunables
package main

import (
	"flag"
	"os"

	"go.uber.org/zap"

	"github.com/katalvlaran/integrix/engine"
)

const (
	serverName    = "integrix"
	serverVersion = "1.0.0"
)

func main() {
	configPath := flag.String("config", "", "optional YAML config for engine tunables")
	flag.Parse()

	logger := zap.Must(zap.NewProduction())
	defer func() { _ = logger.Sync() }()

	cfg := engine.DefaultConfig()
	if *configPath != "" {
		var err error
		if cfg, err = engine.LoadConfig(*configPath); err != nil {
			logger.Fatal("load config", zap.Error(err))
		}
		logger.Info("config loaded", zap.String("path", *configPath))
	}
	h := engine.New(engine.WithConfig(cfg), engine.WithLogger(logger))

	s := newMCPServer(h, logger)
	transport := os.Getenv("TRANSPORT")
	if transport == "" {
		transport = "stdio"
	}
	logger.Info("starting", zap.String("transport", transport))

	switch transport {
	case "stdio":
		serveStdio(s, logger)
	case "streamable-http":
		serveHTTP(s, logger)
	default:
		logger.Fatal("unsupported transport (want stdio or streamable-http)",
			zap.String("transport", transport))
	}
}
