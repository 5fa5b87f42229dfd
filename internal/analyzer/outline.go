package analyzer

import (
	"strings"
)

// suggestOutline emits an Introduction, one section per topic, and a
// Conclusion. Topic section content comes from key points whose text
// mentions the topic or whose timestamp falls inside one of its time
// ranges, with a generic description as fallback.
func (a *implAnalyzer) suggestOutline(topics []Topic, keyPoints []KeyPoint) []OutlineSection {
	outline := []OutlineSection{
		{Heading: "Introduction", Content: "Opening remarks and context for the discussion."},
	}

	for _, topic := range topics {
		var texts []string
		lowerName := strings.ToLower(topic.Name)
		for _, kp := range keyPoints {
			inRange := false
			for _, tr := range topic.TimeRanges {
				if kp.Timestamp >= tr.Start && kp.Timestamp <= tr.End {
					inRange = true
					break
				}
			}
			if inRange || strings.Contains(strings.ToLower(kp.Text), lowerName) {
				texts = append(texts, kp.Text)
			}
		}

		content := strings.Join(texts, ". ")
		if content == "" {
			content = "Discussion of " + strings.ToLower(topic.Name) + "."
		}
		outline = append(outline, OutlineSection{
			Heading: topic.Name,
			Content: content,
		})
	}

	outline = append(outline, OutlineSection{
		Heading: "Conclusion", Content: "Closing thoughts and key takeaways.",
	})
	return outline
}
