package generator

import (
	"github.com/minhngoc2704/article-flow/internal/logger"
)

type implGenerator struct {
	logger logger.Logger
}

// New creates a new Generator instance
func New(log logger.Logger) Generator {
	return &implGenerator{
		logger: log,
	}
}
