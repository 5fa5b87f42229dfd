package analyzer

import (
	"github.com/minhngoc2704/article-flow/internal/logger"
)

type implAnalyzer struct {
	vocab  Vocabulary
	logger logger.Logger
}

// New creates an Analyzer using the given vocabulary.
func New(vocab Vocabulary, log logger.Logger) Analyzer {
	vocab.buildSets()
	return &implAnalyzer{
		vocab:  vocab,
		logger: log,
	}
}
