package llm

import (
	"sync"

	"github.com/minhngoc2704/article-flow/internal/logger"
)

// implWriter is shared by concurrent request handlers and watcher
// goroutines; mu guards the rotating key index.
type implWriter struct {
	apiKeys    []string
	mu         sync.Mutex
	currentKey int
	logger     logger.Logger
	model      string
}

// New creates a Writer that rotates through the supplied Gemini API keys.
func New(apiKeys []string, model string, log logger.Logger) Writer {
	if model == "" {
		model = "gemini-2.5-flash"
	}
	return &implWriter{
		apiKeys: apiKeys,
		logger:  log,
		model:   model,
	}
}
