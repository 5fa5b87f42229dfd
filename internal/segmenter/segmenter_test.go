package segmenter

import (
	"strings"
	"testing"

	"github.com/minhngoc2704/article-flow/internal/transcript"
)

func TestSegmentByWordCount(t *testing.T) {
	input := transcript.Transcript{
		Segments: []transcript.Segment{
			{Text: "one two three four five", StartTime: 0, EndTime: 5, Confidence: 1},
			{Text: "six seven eight nine ten", StartTime: 5, EndTime: 10, Confidence: 1},
			{Text: "eleven twelve thirteen fourteen fifteen", StartTime: 10, EndTime: 15, Confidence: 1},
		},
		Language: "en",
		Duration: 15,
	}

	out := Segment(input, 10, 30)

	if len(out) != 2 {
		t.Fatalf("got %d segments, want 2: %+v", len(out), out)
	}
	if got := len(strings.Fields(out[0].Text)); got != 10 {
		t.Errorf("first segment word count = %d, want 10", got)
	}
	if got := len(strings.Fields(out[1].Text)); got != 5 {
		t.Errorf("second segment word count = %d, want 5", got)
	}
}

func TestSegmentByPause(t *testing.T) {
	input := transcript.Transcript{
		Segments: []transcript.Segment{
			{Text: "before the pause", StartTime: 0, EndTime: 3, Confidence: 1},
			{Text: "after the pause", StartTime: 30, EndTime: 33, Confidence: 1},
		},
		Language: "en",
		Duration: 33,
	}

	out := Segment(input, 100, 5)

	if len(out) != 2 {
		t.Fatalf("got %d segments, want 2: %+v", len(out), out)
	}
	if out[0].Text != "before the pause" {
		t.Errorf("first segment = %q", out[0].Text)
	}
	if out[1].Text != "after the pause" {
		t.Errorf("second segment = %q", out[1].Text)
	}
}

func TestOversizedSegmentEmittedWhole(t *testing.T) {
	big := strings.Repeat("word ", 25)
	input := transcript.Transcript{
		Segments: []transcript.Segment{
			{Text: "short intro here", StartTime: 0, EndTime: 2, Confidence: 1},
			{Text: strings.TrimSpace(big), StartTime: 2, EndTime: 30, Confidence: 1},
			{Text: "short middle part", StartTime: 30, EndTime: 32, Confidence: 1},
			{Text: "short closing words", StartTime: 32, EndTime: 34, Confidence: 1},
		},
		Language: "en",
		Duration: 34,
	}

	out := Segment(input, 10, 60)

	oversized := 0
	for _, seg := range out {
		n := len(strings.Fields(seg.Text))
		if n > 10 {
			oversized++
			if n != 25 {
				t.Errorf("oversized segment has %d words, want the whole 25", n)
			}
		}
	}
	if oversized != 1 {
		t.Errorf("got %d oversized segments, want exactly 1", oversized)
	}
}

func TestTimeRangeInvariants(t *testing.T) {
	input := transcript.Transcript{
		Segments: []transcript.Segment{
			{Text: "alpha beta gamma", StartTime: 1.5, EndTime: 5, Confidence: 1},
			{Text: "delta epsilon zeta", StartTime: 5, EndTime: 10, Confidence: 1},
		},
		Language: "en",
		Duration: 12,
	}

	out := Segment(input, 4, 30)

	if len(out) == 0 {
		t.Fatal("no output segments")
	}
	if out[0].StartTime != 1.5 {
		t.Errorf("first StartTime = %v, want 1.5", out[0].StartTime)
	}
	if out[len(out)-1].EndTime != 12 {
		t.Errorf("last EndTime = %v, want transcript duration 12", out[len(out)-1].EndTime)
	}

	for i := 1; i < len(out); i++ {
		if out[i].StartTime < out[i-1].StartTime {
			t.Errorf("segments out of chronological order at %d", i)
		}
	}
}

func TestEmptyInput(t *testing.T) {
	out := Segment(transcript.Transcript{Language: "en"}, 10, 5)
	if len(out) != 0 {
		t.Errorf("got %d segments, want 0", len(out))
	}
}
