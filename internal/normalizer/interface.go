package normalizer

import (
	"github.com/minhngoc2704/article-flow/internal/transcript"
)

// Normalizer cleans raw time-stamped transcript segments.
type Normalizer interface {
	Process(t transcript.Transcript, opts Options) Result
}

// Options controls the individual cleaning passes. All passes are
// independently toggleable; merge thresholds default to none.
type Options struct {
	RemoveFillerWords    bool    `json:"remove_filler_words"`
	CleanFormatting      bool    `json:"clean_formatting"`
	NormalizeWhitespace  bool    `json:"normalize_whitespace"`
	MergeSimilarSegments bool    `json:"merge_similar_segments"`
	MinSegmentDuration   float64 `json:"min_segment_duration"`
	MaxSegmentDuration   float64 `json:"max_segment_duration"`

	// FillerWords overrides the default filler vocabulary when non-nil.
	FillerWords []string `json:"filler_words,omitempty"`
}

// DefaultOptions enables every cleaning pass except segment merging.
func DefaultOptions() Options {
	return Options{
		RemoveFillerWords:   true,
		CleanFormatting:     true,
		NormalizeWhitespace: true,
	}
}

// Stats counts what each cleaning pass changed.
type Stats struct {
	FillerWordsRemoved int `json:"filler_words_removed"`
	FormattingCleaned  int `json:"formatting_cleaned"`
	SegmentsMerged     int `json:"segments_merged"`
}

// Result is the output of a normalization run.
type Result struct {
	Segments              []transcript.Segment `json:"segments"`
	CleanedText           string               `json:"cleaned_text"`
	OriginalSegmentCount  int                  `json:"original_segment_count"`
	ProcessedSegmentCount int                  `json:"processed_segment_count"`
	Duration              float64              `json:"duration"`
	Language              string               `json:"language"`
	Confidence            float64              `json:"confidence"`
	Stats                 Stats                `json:"processing_stats"`
}

// AsTranscript repackages the cleaned segments as a Transcript so the
// result can feed the segmenter and analyzer.
func (r Result) AsTranscript() transcript.Transcript {
	return transcript.Transcript{
		Segments:   r.Segments,
		Language:   r.Language,
		Confidence: r.Confidence,
		Duration:   r.Duration,
	}
}
