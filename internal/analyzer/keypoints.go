package analyzer

// extractKeyPoints takes the highest-scoring sentences and categorizes
// each by its matched keywords.
func (a *implAnalyzer) extractKeyPoints(sentences []scoredSentence, opts Options) []KeyPoint {
	ranked := byScore(sentences)
	if len(ranked) > opts.MaxKeyPoints {
		ranked = ranked[:opts.MaxKeyPoints]
	}

	points := make([]KeyPoint, 0, len(ranked))
	for _, s := range ranked {
		points = append(points, KeyPoint{
			Text:       s.text,
			Importance: s.score,
			Timestamp:  s.timestamp,
			Category:   a.categorize(s.matched),
		})
	}
	return points
}

// categorize scans matched keywords against the category term lists.
// The list with the most hits wins; ties resolve in the order
// Technical, Business, Process. No hits means General.
func (a *implAnalyzer) categorize(matched []string) string {
	techHits, bizHits, procHits := 0, 0, 0
	for _, word := range matched {
		if _, ok := a.vocab.technicalSet[word]; ok {
			techHits++
		}
		if _, ok := a.vocab.businessSet[word]; ok {
			bizHits++
		}
		if _, ok := a.vocab.processSet[word]; ok {
			procHits++
		}
	}

	switch {
	case techHits == 0 && bizHits == 0 && procHits == 0:
		return CategoryGeneral
	case techHits >= bizHits && techHits >= procHits:
		return CategoryTechnical
	case bizHits >= procHits:
		return CategoryBusiness
	default:
		return CategoryProcess
	}
}
