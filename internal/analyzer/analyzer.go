package analyzer

import (
	"github.com/minhngoc2704/article-flow/internal/transcript"
)

// Analyze runs the full analysis pipeline: word frequencies, topic
// clustering, key points, extractive summary, outline and sentiment.
// Identical transcript and options always produce an identical result;
// nothing here depends on map iteration order or the clock.
func (a *implAnalyzer) Analyze(t transcript.Transcript, opts Options) ContentAnalysis {
	opts = opts.withDefaults()

	freqs := a.ExtractKeywords(t, opts.MinKeywordFrequency, opts.MaxKeywords)
	topics := a.identifyTopics(freqs, opts)
	sentences := a.scoreSentences(t, freqs)
	keyPoints := a.extractKeyPoints(sentences, opts)
	summary := a.buildSummary(sentences, opts)
	outline := a.suggestOutline(topics, keyPoints)
	sentiment := a.classifySentiment(t.FullText())

	return ContentAnalysis{
		Topics:             topics,
		KeyPoints:          keyPoints,
		Summary:            summary,
		SuggestedStructure: outline,
		Sentiment:          sentiment,
	}
}
