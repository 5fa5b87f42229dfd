package analyzer

import (
	"math"
	"sort"
	"strings"
)

// summaryDiversityGap is the minimum timestamp distance between
// selected summary sentences, preventing the summary from collapsing
// into one burst of the transcript.
const summaryDiversityGap = 30.0

// buildSummary selects sentences greedily by descending score while
// enforcing temporal diversity, backfills when too few diverse
// sentences exist, then re-sorts by timestamp and joins. An empty
// transcript yields ".".
func (a *implAnalyzer) buildSummary(sentences []scoredSentence, opts Options) string {
	ranked := byScore(sentences)

	var selected []scoredSentence
	for _, s := range ranked {
		if len(selected) >= opts.SummaryLength {
			break
		}
		diverse := true
		for _, chosen := range selected {
			if math.Abs(s.timestamp-chosen.timestamp) < summaryDiversityGap {
				diverse = false
				break
			}
		}
		if diverse {
			selected = append(selected, s)
		}
	}

	// Backfill with the next-highest-scoring sentences regardless of
	// proximity when diversity left us short.
	if len(selected) < opts.SummaryLength {
		chosen := make(map[string]bool, len(selected))
		for _, s := range selected {
			chosen[s.text] = true
		}
		for _, s := range ranked {
			if len(selected) >= opts.SummaryLength {
				break
			}
			if !chosen[s.text] {
				chosen[s.text] = true
				selected = append(selected, s)
			}
		}
	}

	sort.SliceStable(selected, func(i, j int) bool {
		return selected[i].timestamp < selected[j].timestamp
	})

	texts := make([]string, 0, len(selected))
	for _, s := range selected {
		texts = append(texts, s.text)
	}
	return strings.Join(texts, ". ") + "."
}
