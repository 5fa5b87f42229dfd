package normalizer

import (
	"github.com/minhngoc2704/article-flow/internal/logger"
)

type implNormalizer struct {
	logger logger.Logger
}

// New creates a new Normalizer instance
func New(log logger.Logger) Normalizer {
	return &implNormalizer{
		logger: log,
	}
}
