package generator

import "strings"

// Tone transformation is a small fixed set of lexical substitutions
// applied to the introduction and conclusion. Professional is the
// neutral baseline and passes text through unchanged.
var toneReplacements = map[string][][2]string{
	ToneCasual: {
		{"This article", "This post"},
		{"this article", "this post"},
		{"In conclusion,", "So, to wrap things up,"},
		{"covered", "went through"},
		{"provides", "gives you"},
	},
	ToneTechnical: {
		{"In conclusion,", "In summary,"},
		{"covered", "examined"},
		{"shows", "demonstrates"},
		{"talks about", "demonstrates"},
	},
}

func applyTone(text, tone string) string {
	for _, pair := range toneReplacements[tone] {
		text = strings.ReplaceAll(text, pair[0], pair[1])
	}
	return text
}
