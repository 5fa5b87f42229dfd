package export

import (
	"strings"
	"testing"

	"github.com/minhngoc2704/article-flow/internal/generator"
)

func TestRenderMarkdown(t *testing.T) {
	article := generator.Article{
		Title:        "Intro to Machine Learning: A Step-by-Step Guide",
		Introduction: "This article was created from the video.",
		Sections: []generator.ArticleSection{
			{
				Heading: "Key Concepts",
				Content: "The video covers Machine Learning.",
				Subsections: []generator.ArticleSection{
					{Heading: "Machine Learning", Content: "Discussion of machine learning."},
				},
			},
		},
		Conclusion: "In conclusion, this video covered machine learning.",
		Tags:       []string{"machine learning", "video-summary"},
		Metadata:   generator.ArticleMetadata{WordCount: 250, ReadingTime: 2},
	}

	md := RenderMarkdown(article)

	wantLines := []string{
		"# Intro to Machine Learning: A Step-by-Step Guide",
		"_Tags: machine learning, video-summary_",
		"## Key Concepts",
		"### Machine Learning",
		"## Conclusion",
	}
	for _, want := range wantLines {
		if !strings.Contains(md, want) {
			t.Errorf("markdown missing %q:\n%s", want, md)
		}
	}

	if !strings.HasSuffix(md, "In conclusion, this video covered machine learning.\n") {
		t.Errorf("markdown does not end with the conclusion:\n%s", md)
	}
}

func TestRenderMarkdownEmptySections(t *testing.T) {
	article := generator.Article{
		Title:        "Video Summary: Key Points and Insights",
		Introduction: "This article was created from the video.",
		Conclusion:   "In conclusion, the points above capture the essence of the video.",
	}

	md := RenderMarkdown(article)

	if !strings.HasPrefix(md, "# Video Summary") {
		t.Errorf("markdown missing title heading:\n%s", md)
	}
	if strings.Contains(md, "_Tags:") {
		t.Error("tags line rendered for an article without tags")
	}
}
