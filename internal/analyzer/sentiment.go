package analyzer

// Sentiment classification thresholds on the positive share of all
// sentiment-word hits.
const (
	positiveThreshold = 0.6
	negativeThreshold = 0.4
)

// classifySentiment counts fixed positive/negative vocabulary hits
// across the full text. Zero hits is neutral.
func (a *implAnalyzer) classifySentiment(fullText string) string {
	positive, negative := 0, 0
	for _, tok := range rawTokens(fullText) {
		if _, ok := a.vocab.positiveSet[tok]; ok {
			positive++
		}
		if _, ok := a.vocab.negativeSet[tok]; ok {
			negative++
		}
	}

	total := positive + negative
	if total == 0 {
		return SentimentNeutral
	}

	share := float64(positive) / float64(total)
	switch {
	case share > positiveThreshold:
		return SentimentPositive
	case share < negativeThreshold:
		return SentimentNegative
	default:
		return SentimentNeutral
	}
}
