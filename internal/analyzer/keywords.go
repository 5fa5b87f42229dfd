package analyzer

import (
	"sort"

	"github.com/minhngoc2704/article-flow/internal/transcript"
)

// ExtractKeywords builds the word-frequency table for a transcript.
// Each occurrence records its segment's start time. Results are sorted
// by descending frequency (ties broken by word) and truncated to
// maxKeywords.
func (a *implAnalyzer) ExtractKeywords(t transcript.Transcript, minFrequency, maxKeywords int) []WordFrequency {
	if minFrequency <= 0 {
		minFrequency = 1
	}
	if maxKeywords <= 0 {
		maxKeywords = DefaultOptions().MaxKeywords
	}

	counts := make(map[string]*WordFrequency)
	for _, seg := range t.Segments {
		for _, tok := range a.tokenize(seg.Text) {
			wf, ok := counts[tok]
			if !ok {
				wf = &WordFrequency{Word: tok}
				counts[tok] = wf
			}
			wf.Frequency++
			wf.Positions = append(wf.Positions, seg.StartTime)
		}
	}

	freqs := make([]WordFrequency, 0, len(counts))
	for _, wf := range counts {
		if wf.Frequency >= minFrequency {
			freqs = append(freqs, *wf)
		}
	}

	// Tie-break on the word itself so map iteration order never leaks
	// into the result.
	sort.Slice(freqs, func(i, j int) bool {
		if freqs[i].Frequency != freqs[j].Frequency {
			return freqs[i].Frequency > freqs[j].Frequency
		}
		return freqs[i].Word < freqs[j].Word
	})

	if len(freqs) > maxKeywords {
		freqs = freqs[:maxKeywords]
	}
	return freqs
}
