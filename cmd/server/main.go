package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/minhngoc2704/article-flow/internal/analyzer"
	"github.com/minhngoc2704/article-flow/internal/config"
	"github.com/minhngoc2704/article-flow/internal/generator"
	"github.com/minhngoc2704/article-flow/internal/llm"
	"github.com/minhngoc2704/article-flow/internal/logger"
	"github.com/minhngoc2704/article-flow/internal/normalizer"
	"github.com/minhngoc2704/article-flow/internal/server"
	"github.com/minhngoc2704/article-flow/internal/youtube"
	"github.com/minhngoc2704/article-flow/pkg/executor"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	flag.Parse()

	ctx := context.Background()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Logging.Level, cfg.Logging.Format)

	norm := normalizer.New(log)
	an := analyzer.New(analyzer.DefaultVocabulary(), log)
	gen := generator.New(log)

	var writer llm.Writer
	if len(cfg.Gemini.APIKeys) > 0 {
		writer = llm.New(cfg.Gemini.APIKeys, cfg.Gemini.Model, log)
	}

	provider := youtube.New(cfg.YouTube.BinaryPath, cfg.YouTube.Language, executor.New(), log)

	srv := server.New(cfg, norm, an, gen, writer, provider, log)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	errChan := make(chan error, 1)
	go func() {
		errChan <- srv.Listen()
	}()

	log.Info(ctx, "API server listening on port %d", cfg.Server.Port)

	select {
	case <-sigChan:
		log.Info(ctx, "Shutdown signal received")
	case err := <-errChan:
		log.Error(ctx, "Server error: %v", err)
		os.Exit(1)
	}

	if err := srv.Shutdown(); err != nil {
		log.Error(ctx, "Shutdown error: %v", err)
	}
	log.Info(ctx, "API server stopped")
}
