package generator

// articleTemplates is the fixed template catalog. Selection scores the
// analysis against each template's signature keywords; General is the
// fallback and carries no signature.
var articleTemplates = []ArticleTemplate{
	{
		Name:            "Tutorial Guide",
		Type:            TypeTutorial,
		DefaultTone:     ToneProfessional,
		EstimatedLength: LengthMedium,
		Structure: []TemplateSection{
			{Heading: "What You'll Learn", ContentType: ContentSummary},
			{Heading: "Step-by-Step Guide", ContentType: ContentKeyPoints, MinLength: 100, IncludeTimestamps: true},
			{Heading: "Key Concepts", ContentType: ContentTopics},
			{Heading: "Common Pitfalls", ContentType: ContentKeyPoints},
		},
	},
	{
		Name:            "Interview Summary",
		Type:            TypeInterview,
		DefaultTone:     ToneCasual,
		EstimatedLength: LengthMedium,
		Structure: []TemplateSection{
			{Heading: "Background", ContentType: ContentSummary},
			{Heading: "Key Insights", ContentType: ContentKeyPoints, IncludeTimestamps: true},
			{Heading: "Main Themes", ContentType: ContentTopics},
		},
	},
	{
		Name:            "Presentation Notes",
		Type:            TypePresentation,
		DefaultTone:     ToneProfessional,
		EstimatedLength: LengthShort,
		Structure: []TemplateSection{
			{Heading: "Presentation Overview", ContentType: ContentSummary},
			{Heading: "Main Points", ContentType: ContentKeyPoints, IncludeTimestamps: true},
			{Heading: "Topics Covered", ContentType: ContentTopics},
		},
	},
	{
		Name:            "Discussion Summary",
		Type:            TypeDiscussion,
		DefaultTone:     ToneCasual,
		EstimatedLength: LengthMedium,
		Structure: []TemplateSection{
			{Heading: "Discussion Context", ContentType: ContentSummary},
			{Heading: "Viewpoints and Arguments", ContentType: ContentKeyPoints, IncludeTimestamps: true},
			{Heading: "Recurring Themes", ContentType: ContentTopics},
		},
	},
	{
		Name:            "General Article",
		Type:            TypeGeneral,
		DefaultTone:     ToneProfessional,
		EstimatedLength: LengthMedium,
		Structure: []TemplateSection{
			{Heading: "Overview", ContentType: ContentSummary},
			{Heading: "Highlights", ContentType: ContentKeyPoints, IncludeTimestamps: true},
			{Heading: "Topics", ContentType: ContentTopics},
		},
	},
}

// templateSignatures maps template types to the keywords that vote for
// them during selection.
var templateSignatures = map[string][]string{
	TypeTutorial:     {"step", "guide", "tutorial", "how", "learn", "install", "setup", "build", "create"},
	TypeInterview:    {"interview", "question", "answer", "guest", "conversation", "asked", "tells"},
	TypePresentation: {"presentation", "slide", "talk", "conference", "audience", "agenda", "keynote"},
	TypeDiscussion:   {"discussion", "debate", "opinion", "panel", "argue", "perspective", "thoughts"},
}

// AvailableTemplates returns a copy of the template catalog.
func (g *implGenerator) AvailableTemplates() []ArticleTemplate {
	out := make([]ArticleTemplate, len(articleTemplates))
	copy(out, articleTemplates)
	return out
}
