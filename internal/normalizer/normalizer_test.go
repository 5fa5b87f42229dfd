package normalizer

import (
	"strings"
	"testing"

	"github.com/minhngoc2704/article-flow/internal/logger"
	"github.com/minhngoc2704/article-flow/internal/transcript"
)

func testNormalizer() Normalizer {
	return New(logger.New("error", "text"))
}

func singleSegment(text string) transcript.Transcript {
	return transcript.Transcript{
		Segments: []transcript.Segment{
			{Text: text, StartTime: 0, EndTime: 5, Confidence: 0.9},
		},
		Language:   "en",
		Confidence: 0.9,
		Duration:   5,
	}
}

func TestRemoveFillerWords(t *testing.T) {
	n := testNormalizer()

	result := n.Process(singleSegment("Um, hello everyone, uh, welcome"), Options{
		RemoveFillerWords:   true,
		NormalizeWhitespace: true,
	})

	if len(result.Segments) != 1 {
		t.Fatalf("got %d segments, want 1", len(result.Segments))
	}

	lowered := strings.ToLower(result.Segments[0].Text)
	for _, filler := range []string{"um", "uh"} {
		for _, word := range strings.Fields(strings.NewReplacer(",", "", ".", "").Replace(lowered)) {
			if word == filler {
				t.Errorf("output %q still contains filler %q", result.Segments[0].Text, filler)
			}
		}
	}

	if result.Stats.FillerWordsRemoved == 0 {
		t.Error("FillerWordsRemoved = 0, want > 0")
	}
	if !strings.Contains(lowered, "hello everyone") {
		t.Errorf("output %q lost real content", result.Segments[0].Text)
	}
}

func TestCleanFormatting(t *testing.T) {
	n := testNormalizer()

	result := n.Process(singleSegment("[Music] Well, let's get started."), Options{
		CleanFormatting:     true,
		NormalizeWhitespace: true,
	})

	if len(result.Segments) != 1 {
		t.Fatalf("got %d segments, want 1", len(result.Segments))
	}
	if strings.Contains(result.Segments[0].Text, "[Music]") {
		t.Errorf("output %q still contains bracketed annotation", result.Segments[0].Text)
	}
	if result.Stats.FormattingCleaned != 1 {
		t.Errorf("FormattingCleaned = %d, want 1", result.Stats.FormattingCleaned)
	}
	if !strings.Contains(result.Segments[0].Text, "let's get started") {
		t.Errorf("output %q lost real content", result.Segments[0].Text)
	}
}

func TestNormalizeWhitespace(t *testing.T) {
	n := testNormalizer()

	result := n.Process(singleSegment("  too   many\t\tspaces \n here  "), Options{
		NormalizeWhitespace: true,
	})

	if got := result.Segments[0].Text; got != "too many spaces here" {
		t.Errorf("Text = %q, want %q", got, "too many spaces here")
	}
}

func TestEmptySegmentsDropped(t *testing.T) {
	n := testNormalizer()

	input := transcript.Transcript{
		Segments: []transcript.Segment{
			{Text: "[Applause]", StartTime: 0, EndTime: 2, Confidence: 1},
			{Text: "real content here", StartTime: 2, EndTime: 5, Confidence: 1},
			{Text: "   ", StartTime: 5, EndTime: 6, Confidence: 1},
		},
		Language: "en",
		Duration: 6,
	}

	result := n.Process(input, DefaultOptions())

	if len(result.Segments) != 1 {
		t.Fatalf("got %d segments, want 1", len(result.Segments))
	}
	if result.OriginalSegmentCount != 3 {
		t.Errorf("OriginalSegmentCount = %d, want 3", result.OriginalSegmentCount)
	}
	if result.ProcessedSegmentCount != 1 {
		t.Errorf("ProcessedSegmentCount = %d, want 1", result.ProcessedSegmentCount)
	}
	if result.CleanedText != "real content here" {
		t.Errorf("CleanedText = %q, want %q", result.CleanedText, "real content here")
	}
}

func TestMergeShortSegments(t *testing.T) {
	n := testNormalizer()

	input := transcript.Transcript{
		Segments: []transcript.Segment{
			{Text: "short one", StartTime: 0, EndTime: 1, Confidence: 0.9, Speaker: "alice"},
			{Text: "short two", StartTime: 1, EndTime: 2, Confidence: 0.8, Speaker: "bob"},
			{Text: "a longer segment that stands on its own", StartTime: 2, EndTime: 12, Confidence: 1},
		},
		Language: "en",
		Duration: 12,
	}

	result := n.Process(input, Options{
		NormalizeWhitespace:  true,
		MergeSimilarSegments: true,
		MinSegmentDuration:   3,
		MaxSegmentDuration:   8,
	})

	if len(result.Segments) != 2 {
		t.Fatalf("got %d segments, want 2: %+v", len(result.Segments), result.Segments)
	}

	merged := result.Segments[0]
	if merged.Text != "short one short two" {
		t.Errorf("merged text = %q", merged.Text)
	}
	// The earlier segment's speaker wins on merge.
	if merged.Speaker != "alice" {
		t.Errorf("merged speaker = %q, want alice", merged.Speaker)
	}
	if merged.StartTime != 0 || merged.EndTime != 2 {
		t.Errorf("merged range = [%v, %v], want [0, 2]", merged.StartTime, merged.EndTime)
	}
	if result.Stats.SegmentsMerged != 1 {
		t.Errorf("SegmentsMerged = %d, want 1", result.Stats.SegmentsMerged)
	}
}

func TestMergeRespectsMaxDuration(t *testing.T) {
	n := testNormalizer()

	input := transcript.Transcript{
		Segments: []transcript.Segment{
			{Text: "first", StartTime: 0, EndTime: 1, Confidence: 1},
			{Text: "second", StartTime: 20, EndTime: 21, Confidence: 1},
		},
		Language: "en",
		Duration: 21,
	}

	result := n.Process(input, Options{
		MergeSimilarSegments: true,
		MinSegmentDuration:   3,
		MaxSegmentDuration:   5,
	})

	if len(result.Segments) != 2 {
		t.Fatalf("got %d segments, want 2 (merge would exceed max duration)", len(result.Segments))
	}
	if result.Stats.SegmentsMerged != 0 {
		t.Errorf("SegmentsMerged = %d, want 0", result.Stats.SegmentsMerged)
	}
}

func TestChronologicalOrder(t *testing.T) {
	n := testNormalizer()

	input := transcript.Transcript{
		Segments: []transcript.Segment{
			{Text: "later", StartTime: 10, EndTime: 15, Confidence: 1},
			{Text: "earlier", StartTime: 0, EndTime: 5, Confidence: 1},
		},
		Language: "en",
		Duration: 15,
	}

	result := n.Process(input, DefaultOptions())

	for i := 1; i < len(result.Segments); i++ {
		if result.Segments[i].StartTime < result.Segments[i-1].StartTime {
			t.Errorf("segments out of order at %d: %v after %v",
				i, result.Segments[i].StartTime, result.Segments[i-1].StartTime)
		}
	}
}

func TestEmptyTranscript(t *testing.T) {
	n := testNormalizer()

	result := n.Process(transcript.Transcript{Language: "en"}, DefaultOptions())

	if len(result.Segments) != 0 {
		t.Errorf("got %d segments, want 0", len(result.Segments))
	}
	if result.CleanedText != "" {
		t.Errorf("CleanedText = %q, want empty", result.CleanedText)
	}
}

func TestIdempotentOnCleanInput(t *testing.T) {
	n := testNormalizer()

	input := transcript.Transcript{
		Segments: []transcript.Segment{
			{Text: "Um, so, welcome to the [Music] show", StartTime: 0, EndTime: 5, Confidence: 1},
			{Text: "today we talk about compilers", StartTime: 5, EndTime: 10, Confidence: 1},
		},
		Language: "en",
		Duration: 10,
	}

	opts := DefaultOptions()
	first := n.Process(input, opts)
	second := n.Process(first.AsTranscript(), opts)

	if second.Stats.FillerWordsRemoved != 0 {
		t.Errorf("second pass FillerWordsRemoved = %d, want 0", second.Stats.FillerWordsRemoved)
	}
	if second.Stats.FormattingCleaned != 0 {
		t.Errorf("second pass FormattingCleaned = %d, want 0", second.Stats.FormattingCleaned)
	}
	if second.Stats.SegmentsMerged != 0 {
		t.Errorf("second pass SegmentsMerged = %d, want 0", second.Stats.SegmentsMerged)
	}
	if second.CleanedText != first.CleanedText {
		t.Errorf("second pass changed text: %q -> %q", first.CleanedText, second.CleanedText)
	}
}

func TestCustomFillerVocabulary(t *testing.T) {
	n := testNormalizer()

	result := n.Process(singleSegment("foo hello foo world"), Options{
		RemoveFillerWords:   true,
		NormalizeWhitespace: true,
		FillerWords:         []string{"foo"},
	})

	if got := result.Segments[0].Text; got != "hello world" {
		t.Errorf("Text = %q, want %q", got, "hello world")
	}
	if result.Stats.FillerWordsRemoved != 2 {
		t.Errorf("FillerWordsRemoved = %d, want 2", result.Stats.FillerWordsRemoved)
	}
}
