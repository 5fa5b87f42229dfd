package normalizer

import (
	"regexp"
	"sort"
	"strings"

	"github.com/minhngoc2704/article-flow/internal/transcript"
)

// defaultFillerWords is the discourse-filler vocabulary stripped by
// RemoveFillerWords. Entries ending in a comma only match that exact
// comma-attached form ("so," but not "so").
var defaultFillerWords = []string{
	"um", "uh", "er", "ah", "hmm", "uhm",
	"you know", "i mean", "sort of", "kind of",
	"like,", "so,", "well,", "actually,", "basically,", "literally,",
}

var (
	reBracketed   = regexp.MustCompile(`\[[^\]]*\]`)
	reParenNoise  = regexp.MustCompile(`\((?i:music|applause|laughter|noise|inaudible)\)`)
	reArtifacts   = regexp.MustCompile(`(>>+|--+|♪+)`)
	reWhitespace  = regexp.MustCompile(`\s+`)
	reDanglingSep = regexp.MustCompile(`^[,.;:\s]+`)
)

// fillerPatterns compiles the filler vocabulary into word-boundary
// aware, case-insensitive patterns that also consume an attached
// comma/period and trailing whitespace.
func fillerPatterns(words []string) []*regexp.Regexp {
	patterns := make([]*regexp.Regexp, 0, len(words))
	for _, w := range words {
		esc := regexp.QuoteMeta(w)
		if strings.HasSuffix(w, ",") {
			patterns = append(patterns, regexp.MustCompile(`(?i)\b`+esc+`\s*`))
		} else {
			patterns = append(patterns, regexp.MustCompile(`(?i)\b`+esc+`\b[,.]?\s*`))
		}
	}
	return patterns
}

// Process runs the enabled cleaning passes over every segment, drops
// segments that come out empty, optionally merges short neighbors and
// returns a chronologically ordered result. An empty input yields an
// empty result, not an error.
func (n *implNormalizer) Process(t transcript.Transcript, opts Options) Result {
	stats := Stats{}

	fillers := opts.FillerWords
	if fillers == nil {
		fillers = defaultFillerWords
	}
	patterns := fillerPatterns(fillers)

	cleaned := make([]transcript.Segment, 0, len(t.Segments))
	for _, seg := range t.Segments {
		text := seg.Text

		if opts.RemoveFillerWords {
			for _, p := range patterns {
				matches := p.FindAllString(text, -1)
				if len(matches) > 0 {
					stats.FillerWordsRemoved += len(matches)
					text = p.ReplaceAllString(text, "")
				}
			}
		}

		if opts.CleanFormatting {
			for _, p := range []*regexp.Regexp{reBracketed, reParenNoise, reArtifacts} {
				matches := p.FindAllString(text, -1)
				if len(matches) > 0 {
					stats.FormattingCleaned += len(matches)
					text = p.ReplaceAllString(text, " ")
				}
			}
			text = reDanglingSep.ReplaceAllString(strings.TrimSpace(text), "")
		}

		if opts.NormalizeWhitespace {
			text = strings.TrimSpace(reWhitespace.ReplaceAllString(text, " "))
		}

		// Segments cleaned down to nothing are dropped, not emitted empty.
		if strings.TrimSpace(text) == "" {
			continue
		}

		out := seg
		out.Text = text
		cleaned = append(cleaned, out)
	}

	sort.SliceStable(cleaned, func(i, j int) bool {
		return cleaned[i].StartTime < cleaned[j].StartTime
	})

	if opts.MergeSimilarSegments && opts.MinSegmentDuration > 0 {
		cleaned = n.mergeShortSegments(cleaned, opts, &stats)
	}

	texts := make([]string, 0, len(cleaned))
	for _, seg := range cleaned {
		texts = append(texts, seg.Text)
	}

	return Result{
		Segments:              cleaned,
		CleanedText:           strings.Join(texts, " "),
		OriginalSegmentCount:  len(t.Segments),
		ProcessedSegmentCount: len(cleaned),
		Duration:              t.Duration,
		Language:              t.Language,
		Confidence:            t.Confidence,
		Stats:                 stats,
	}
}

// mergeShortSegments folds segments shorter than MinSegmentDuration
// into their neighbor, refusing any merge that would push the combined
// span past MaxSegmentDuration. On merge the earlier segment's speaker
// wins.
func (n *implNormalizer) mergeShortSegments(segments []transcript.Segment, opts Options, stats *Stats) []transcript.Segment {
	if len(segments) < 2 {
		return segments
	}

	merged := make([]transcript.Segment, 0, len(segments))
	for _, seg := range segments {
		if len(merged) > 0 {
			last := &merged[len(merged)-1]
			lastDur := last.EndTime - last.StartTime
			segDur := seg.EndTime - seg.StartTime
			combined := seg.EndTime - last.StartTime

			short := lastDur < opts.MinSegmentDuration || segDur < opts.MinSegmentDuration
			withinCap := opts.MaxSegmentDuration <= 0 || combined <= opts.MaxSegmentDuration

			if short && withinCap {
				last.Text = last.Text + " " + seg.Text
				last.EndTime = seg.EndTime
				if seg.Confidence < last.Confidence {
					last.Confidence = seg.Confidence
				}
				stats.SegmentsMerged++
				continue
			}
		}
		merged = append(merged, seg)
	}

	return merged
}
