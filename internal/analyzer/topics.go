package analyzer

import (
	"math"
	"sort"
)

const (
	// Words co-occurring within this window of a seed word's positions
	// are considered related.
	cooccurrenceWindow = 30.0
	// Occurrence positions closer than this are merged into one range.
	rangeMergeGap = 60.0
	// A cluster holds the seed plus at most four related words.
	maxClusterSize = 5
)

// identifyTopics clusters the word-frequency table by temporal
// co-occurrence. Frequencies must already be sorted highest-first.
func (a *implAnalyzer) identifyTopics(freqs []WordFrequency, opts Options) []Topic {
	if len(freqs) == 0 {
		return []Topic{}
	}

	totalFreq := 0
	for _, wf := range freqs {
		totalFreq += wf.Frequency
	}

	used := make(map[string]bool)
	var topics []Topic

	for _, seed := range freqs {
		if len(topics) >= opts.MaxTopics {
			break
		}
		if used[seed.Word] {
			continue
		}

		cluster := []WordFrequency{seed}
		for _, other := range freqs {
			if len(cluster) >= maxClusterSize {
				break
			}
			if other.Word == seed.Word || used[other.Word] {
				continue
			}
			if cooccurs(seed.Positions, other.Positions, cooccurrenceWindow) {
				cluster = append(cluster, other)
			}
		}

		clusterFreq := 0
		members := make(map[string]bool, len(cluster))
		var positions []float64
		for _, wf := range cluster {
			clusterFreq += wf.Frequency
			members[wf.Word] = true
			positions = append(positions, wf.Positions...)
		}

		relevance := float64(clusterFreq) / float64(totalFreq)
		if relevance < opts.MinTopicRelevance {
			continue
		}

		for word := range members {
			used[word] = true
		}

		sort.Float64s(positions)
		topics = append(topics, Topic{
			Name:       a.topicName(seed.Word, members),
			Relevance:  relevance,
			TimeRanges: mergePositions(positions, rangeMergeGap),
		})
	}

	// No temporal co-occurrence at all: fall back to the top words as
	// singleton topics so sparse content still yields something.
	if len(topics) == 0 {
		top := freqs
		if len(top) > 3 {
			top = top[:3]
		}
		maxFreq := float64(freqs[0].Frequency)
		for _, wf := range top {
			positions := append([]float64(nil), wf.Positions...)
			sort.Float64s(positions)
			topics = append(topics, Topic{
				Name:       capitalize(wf.Word),
				Relevance:  float64(wf.Frequency) / maxFreq,
				TimeRanges: mergePositions(positions, rangeMergeGap),
			})
		}
	}

	return topics
}

// topicName capitalizes the seed word, preferring a known two-word
// compound when the cluster contains one.
func (a *implAnalyzer) topicName(seed string, members map[string]bool) string {
	if name := a.vocab.compoundName(members); name != "" {
		return name
	}
	return capitalize(seed)
}

// cooccurs reports whether any position in b falls within window
// seconds of any position in a.
func cooccurs(a, b []float64, window float64) bool {
	for _, pa := range a {
		for _, pb := range b {
			if math.Abs(pa-pb) <= window {
				return true
			}
		}
	}
	return false
}

// mergePositions folds sorted occurrence positions into time ranges,
// merging neighbors closer than gap seconds.
func mergePositions(positions []float64, gap float64) []TimeRange {
	if len(positions) == 0 {
		return []TimeRange{}
	}

	ranges := []TimeRange{{Start: positions[0], End: positions[0]}}
	for _, p := range positions[1:] {
		last := &ranges[len(ranges)-1]
		if p-last.End <= gap {
			last.End = p
		} else {
			ranges = append(ranges, TimeRange{Start: p, End: p})
		}
	}
	return ranges
}
