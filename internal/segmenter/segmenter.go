// Package segmenter re-chunks transcript segments into spans bounded
// by a word budget and a pause threshold, independent of the original
// segment boundaries.
package segmenter

import (
	"strings"

	"github.com/minhngoc2704/article-flow/internal/transcript"
)

// Segment walks the input chronologically, accumulating words into a
// buffer. A new output segment starts when the silence gap before a
// source segment exceeds pauseThreshold seconds, or when appending it
// would push the buffer past maxWords. A single source segment larger
// than maxWords is emitted whole rather than cut mid-sentence.
func Segment(t transcript.Transcript, maxWords int, pauseThreshold float64) []transcript.Segment {
	if len(t.Segments) == 0 {
		return []transcript.Segment{}
	}
	if maxWords <= 0 {
		maxWords = 100
	}

	var out []transcript.Segment
	var buffer []string
	bufferStart := t.Segments[0].StartTime
	bufferConfidence := t.Segments[0].Confidence
	bufferSpeaker := t.Segments[0].Speaker
	prevEnd := t.Segments[0].StartTime

	flush := func(end float64) {
		if len(buffer) == 0 {
			return
		}
		out = append(out, transcript.Segment{
			Text:       strings.Join(buffer, " "),
			StartTime:  bufferStart,
			EndTime:    end,
			Confidence: bufferConfidence,
			Speaker:    bufferSpeaker,
		})
		buffer = nil
	}

	for _, seg := range t.Segments {
		words := strings.Fields(seg.Text)
		gap := seg.StartTime - prevEnd

		if len(buffer) > 0 && (gap > pauseThreshold || len(buffer)+len(words) > maxWords) {
			flush(prevEnd)
		}

		if len(buffer) == 0 {
			bufferStart = seg.StartTime
			bufferConfidence = seg.Confidence
			bufferSpeaker = seg.Speaker
		}
		buffer = append(buffer, words...)
		if seg.Confidence < bufferConfidence {
			bufferConfidence = seg.Confidence
		}
		prevEnd = seg.EndTime
	}

	// The last emitted segment closes at the transcript's duration.
	end := t.Duration
	if end < prevEnd {
		end = prevEnd
	}
	flush(end)

	if len(out) == 0 {
		return []transcript.Segment{}
	}

	out[0].StartTime = t.Segments[0].StartTime
	out[len(out)-1].EndTime = end

	return out
}
