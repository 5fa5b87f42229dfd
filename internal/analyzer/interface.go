package analyzer

import (
	"github.com/minhngoc2704/article-flow/internal/transcript"
)

// Sentiment labels produced by Analyze.
const (
	SentimentPositive = "positive"
	SentimentNeutral  = "neutral"
	SentimentNegative = "negative"
)

// Key point categories. The set is closed and heuristic.
const (
	CategoryTechnical = "Technical"
	CategoryBusiness  = "Business"
	CategoryProcess   = "Process"
	CategoryGeneral   = "General"
)

// Analyzer turns a transcript into a ContentAnalysis.
type Analyzer interface {
	Analyze(t transcript.Transcript, opts Options) ContentAnalysis
	ExtractKeywords(t transcript.Transcript, minFrequency, maxKeywords int) []WordFrequency
}

// Options controls the analysis. Zero values fall back to defaults.
type Options struct {
	MaxKeywords         int     `json:"max_keywords"`
	MaxTopics           int     `json:"max_topics"`
	MaxKeyPoints        int     `json:"max_key_points"`
	MinKeywordFrequency int     `json:"min_keyword_frequency"`
	MinTopicRelevance   float64 `json:"min_topic_relevance"`
	SummaryLength       int     `json:"summary_length"`
	IncludeTimestamps   bool    `json:"include_timestamps"`
}

// DefaultOptions returns the standard analysis configuration.
func DefaultOptions() Options {
	return Options{
		MaxKeywords:         20,
		MaxTopics:           8,
		MaxKeyPoints:        10,
		MinKeywordFrequency: 1,
		MinTopicRelevance:   0.05,
		SummaryLength:       3,
		IncludeTimestamps:   true,
	}
}

// withDefaults fills in zero-valued fields.
func (o Options) withDefaults() Options {
	def := DefaultOptions()
	if o.MaxKeywords <= 0 {
		o.MaxKeywords = def.MaxKeywords
	}
	if o.MaxTopics <= 0 {
		o.MaxTopics = def.MaxTopics
	}
	if o.MaxKeyPoints <= 0 {
		o.MaxKeyPoints = def.MaxKeyPoints
	}
	if o.MinKeywordFrequency <= 0 {
		o.MinKeywordFrequency = def.MinKeywordFrequency
	}
	if o.MinTopicRelevance <= 0 {
		o.MinTopicRelevance = def.MinTopicRelevance
	}
	if o.SummaryLength <= 0 {
		o.SummaryLength = def.SummaryLength
	}
	return o
}

// WordFrequency is a keyword with its occurrence count and the start
// times of the segments it occurred in. Computed fresh per analysis,
// never persisted.
type WordFrequency struct {
	Word      string    `json:"word"`
	Frequency int       `json:"frequency"`
	Positions []float64 `json:"positions"`
}

// TimeRange is a span of transcript time in seconds.
type TimeRange struct {
	Start float64 `json:"start"`
	End   float64 `json:"end"`
}

// Topic is a cluster of temporally co-occurring keywords.
type Topic struct {
	Name       string      `json:"name"`
	Relevance  float64     `json:"relevance"`
	TimeRanges []TimeRange `json:"time_ranges"`
}

// KeyPoint is a ranked, timestamped sentence extracted as noteworthy.
type KeyPoint struct {
	Text       string  `json:"text"`
	Importance float64 `json:"importance"`
	Timestamp  float64 `json:"timestamp"`
	Category   string  `json:"category"`
}

// OutlineSection is one entry of the suggested article structure.
type OutlineSection struct {
	Heading string `json:"heading"`
	Content string `json:"content"`
}

// ContentAnalysis is the sole interface between the analyzer and the
// article generator. It is fully serializable and holds no references
// back into the transcript.
type ContentAnalysis struct {
	Topics             []Topic          `json:"topics"`
	KeyPoints          []KeyPoint       `json:"key_points"`
	Summary            string           `json:"summary"`
	SuggestedStructure []OutlineSection `json:"suggested_structure"`
	Sentiment          string           `json:"sentiment"`
}
