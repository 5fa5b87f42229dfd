package generator

import (
	"strings"

	"github.com/minhngoc2704/article-flow/internal/analyzer"
)

// selectTemplate scores every template's signature keywords against
// the topic names and key-point texts and picks the highest. Ties and
// zero scores fall back to the General Article; an explicit
// customTemplate (by type or name) overrides the heuristic.
func (g *implGenerator) selectTemplate(analysis analyzer.ContentAnalysis, customTemplate string) ArticleTemplate {
	if customTemplate != "" {
		want := strings.ToLower(customTemplate)
		for _, tpl := range articleTemplates {
			if tpl.Type == want || strings.ToLower(tpl.Name) == want {
				return tpl
			}
		}
	}

	var corpus strings.Builder
	for _, topic := range analysis.Topics {
		corpus.WriteString(strings.ToLower(topic.Name))
		corpus.WriteString(" ")
	}
	for _, kp := range analysis.KeyPoints {
		corpus.WriteString(strings.ToLower(kp.Text))
		corpus.WriteString(" ")
	}
	text := corpus.String()

	bestType := TypeGeneral
	bestScore := 0
	for _, tpl := range articleTemplates {
		signature, ok := templateSignatures[tpl.Type]
		if !ok {
			continue
		}
		score := 0
		for _, word := range signature {
			score += strings.Count(text, word)
		}
		// Strictly greater keeps General on ties.
		if score > bestScore {
			bestScore = score
			bestType = tpl.Type
		}
	}

	for _, tpl := range articleTemplates {
		if tpl.Type == bestType {
			return tpl
		}
	}
	return articleTemplates[len(articleTemplates)-1]
}
