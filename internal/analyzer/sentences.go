package analyzer

import (
	"regexp"
	"sort"
	"strings"

	"github.com/minhngoc2704/article-flow/internal/transcript"
)

var reSentenceSplit = regexp.MustCompile(`[.!?]+`)

// minSentenceLength discards fragments too short to be meaningful.
const minSentenceLength = 10

// scoredSentence is a transcript-derived sentence with its importance
// score and the keywords it matched.
type scoredSentence struct {
	text      string
	timestamp float64
	score     float64
	matched   []string
}

// scoreSentences splits every segment into sentence fragments and
// scores each against the keyword table: summed normalized frequency
// per matched keyword, a flat bonus for comfortable sentence length,
// and a small bonus per distinct match.
func (a *implAnalyzer) scoreSentences(t transcript.Transcript, freqs []WordFrequency) []scoredSentence {
	maxFreq := 0
	freqByWord := make(map[string]int, len(freqs))
	for _, wf := range freqs {
		freqByWord[wf.Word] = wf.Frequency
		if wf.Frequency > maxFreq {
			maxFreq = wf.Frequency
		}
	}

	var sentences []scoredSentence
	for _, seg := range t.Segments {
		for _, frag := range reSentenceSplit.Split(seg.Text, -1) {
			text := strings.TrimSpace(frag)
			if len(text) <= minSentenceLength {
				continue
			}

			tokens := a.tokenize(text)
			seen := make(map[string]bool)
			var matched []string
			score := 0.0
			for _, tok := range tokens {
				freq, ok := freqByWord[tok]
				if !ok || seen[tok] {
					continue
				}
				seen[tok] = true
				matched = append(matched, tok)
				score += float64(freq) / float64(maxFreq)
			}

			wordCount := len(strings.Fields(text))
			if wordCount >= 8 && wordCount <= 25 {
				score += 0.2
			}
			score += 0.1 * float64(len(matched))

			sentences = append(sentences, scoredSentence{
				text:      text,
				timestamp: seg.StartTime,
				score:     score,
				matched:   matched,
			})
		}
	}

	return sentences
}

// byScore returns a copy sorted by descending score, ties broken by
// ascending timestamp for determinism.
func byScore(sentences []scoredSentence) []scoredSentence {
	sorted := append([]scoredSentence(nil), sentences...)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].score != sorted[j].score {
			return sorted[i].score > sorted[j].score
		}
		return sorted[i].timestamp < sorted[j].timestamp
	})
	return sorted
}
