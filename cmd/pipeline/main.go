package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"
	"strings"
	"syscall"

	"github.com/minhngoc2704/article-flow/internal/analyzer"
	"github.com/minhngoc2704/article-flow/internal/config"
	"github.com/minhngoc2704/article-flow/internal/generator"
	"github.com/minhngoc2704/article-flow/internal/llm"
	"github.com/minhngoc2704/article-flow/internal/logger"
	"github.com/minhngoc2704/article-flow/internal/normalizer"
	"github.com/minhngoc2704/article-flow/internal/processor"
	"github.com/minhngoc2704/article-flow/internal/transcript"
	"github.com/minhngoc2704/article-flow/internal/watcher"
	"github.com/minhngoc2704/article-flow/internal/youtube"
	"github.com/minhngoc2704/article-flow/pkg/executor"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	url := flag.String("url", "", "process a single YouTube URL and exit")
	flag.Parse()

	ctx := context.Background()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	log.Info(ctx, "========================================")
	log.Info(ctx, "Transcript-to-Article Pipeline")
	log.Info(ctx, "========================================")
	log.Info(ctx, "System: %s/%s", runtime.GOOS, runtime.GOARCH)
	log.Info(ctx, "CPU Cores: %d", runtime.NumCPU())
	log.Info(ctx, "Max Concurrent Processing: %d", cfg.Performance.MaxConcurrent)
	log.Info(ctx, "Configuration loaded successfully")

	// Verify required directories exist
	if err := ensureDirectories(cfg); err != nil {
		log.Error(ctx, "Failed to create directories: %v", err)
		os.Exit(1)
	}

	// Initialize dependencies
	proc := buildProcessor(cfg, log)

	// Single URL mode: process one video and exit
	if *url != "" {
		if err := proc.ProcessURL(ctx, *url); err != nil {
			log.Error(ctx, "Failed to process %s: %v", *url, err)
			os.Exit(1)
		}
		return
	}

	// Process transcripts already sitting in the input folder
	if err := processExisting(ctx, cfg, proc, log); err != nil {
		log.Warn(ctx, "Failed to process existing files: %v", err)
	}

	// Create watcher with processor as handler and concurrency control
	w, err := watcher.New(cfg.Paths.Input, proc.Process, log, cfg.Performance.MaxConcurrent)
	if err != nil {
		log.Error(ctx, "Failed to create watcher: %v", err)
		os.Exit(1)
	}
	defer w.Stop()

	// Create context with cancellation
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// Setup graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	// Start watcher in goroutine
	errChan := make(chan error, 1)
	go func() {
		if err := w.Start(ctx); err != nil && err != context.Canceled {
			errChan <- err
		}
	}()

	log.Info(ctx, "========================================")
	log.Info(ctx, "Article Pipeline is ready!")
	log.Info(ctx, "Monitoring: %s", cfg.Paths.Input)
	log.Info(ctx, "Output: %s", cfg.Paths.Output)
	log.Info(ctx, "Press Ctrl+C to stop")
	log.Info(ctx, "========================================")

	// Wait for shutdown signal or error
	select {
	case <-sigChan:
		log.Info(ctx, "Shutdown signal received")
	case err := <-errChan:
		log.Error(ctx, "Watcher error: %v", err)
	}

	// Graceful shutdown
	log.Info(ctx, "Shutting down gracefully...")
	cancel()

	log.Info(ctx, "Article Pipeline stopped")
}

// buildProcessor wires the pipeline stages from configuration.
func buildProcessor(cfg *config.Config, log logger.Logger) processor.Processor {
	norm := normalizer.New(log)
	an := analyzer.New(analyzer.DefaultVocabulary(), log)
	gen := generator.New(log)

	var writer llm.Writer
	if len(cfg.Gemini.APIKeys) > 0 {
		writer = llm.New(cfg.Gemini.APIKeys, cfg.Gemini.Model, log)
	}

	provider := youtube.New(cfg.YouTube.BinaryPath, cfg.YouTube.Language, executor.New(), log)

	return processor.New(cfg, norm, an, gen, writer, provider, log)
}

// processExisting runs the pipeline over transcripts that were already
// in the input folder before the watcher started.
func processExisting(ctx context.Context, cfg *config.Config, proc processor.Processor, log logger.Logger) error {
	entries, err := os.ReadDir(cfg.Paths.Input)
	if err != nil {
		return err
	}

	for _, e := range entries {
		if e.IsDir() || !isTranscriptFile(e.Name()) {
			continue
		}
		path := filepath.Join(cfg.Paths.Input, e.Name())
		log.Info(ctx, "Found existing transcript: %s", path)
		if err := proc.Process(ctx, path); err != nil {
			log.Error(ctx, "Failed to process %s: %v", path, err)
		}
	}
	return nil
}

func isTranscriptFile(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	for _, supported := range transcript.SupportedExtensions() {
		if ext == supported {
			return true
		}
	}
	return false
}

// ensureDirectories creates required directories if they don't exist
func ensureDirectories(cfg *config.Config) error {
	dirs := []string{
		cfg.Paths.Input,
		cfg.Paths.Output,
		cfg.Paths.Archived,
		cfg.Paths.Temp,
	}

	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create directory %s: %w", dir, err)
		}
	}

	return nil
}
