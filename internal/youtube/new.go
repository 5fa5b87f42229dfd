package youtube

import (
	"github.com/minhngoc2704/article-flow/internal/logger"
	"github.com/minhngoc2704/article-flow/pkg/executor"
)

type implProvider struct {
	binary   string
	language string
	executor executor.Executor
	logger   logger.Logger
}

// New creates a Provider backed by the yt-dlp binary.
func New(binary, language string, exec executor.Executor, log logger.Logger) Provider {
	if binary == "" {
		binary = "yt-dlp"
	}
	if language == "" {
		language = "en"
	}
	return &implProvider{
		binary:   binary,
		language: language,
		executor: exec,
		logger:   log,
	}
}
