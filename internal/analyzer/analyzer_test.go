package analyzer

import (
	"reflect"
	"strings"
	"testing"

	"github.com/minhngoc2704/article-flow/internal/logger"
	"github.com/minhngoc2704/article-flow/internal/transcript"
)

func testAnalyzer() Analyzer {
	return New(DefaultVocabulary(), logger.New("error", "text"))
}

func tutorialTranscript() transcript.Transcript {
	return transcript.Transcript{
		Segments: []transcript.Segment{
			{Text: "Welcome to this tutorial about machine learning algorithms", StartTime: 0, EndTime: 5, Confidence: 0.95},
			{Text: "Machine learning is a powerful technology for data analysis", StartTime: 5, EndTime: 10, Confidence: 0.95},
			{Text: "Today we will discuss neural networks and deep learning", StartTime: 10, EndTime: 15, Confidence: 0.95},
			{Text: "Neural networks are fundamental to modern artificial intelligence", StartTime: 15, EndTime: 20, Confidence: 0.95},
		},
		Language:   "en",
		Confidence: 0.95,
		Duration:   20,
	}
}

func TestExtractKeywords(t *testing.T) {
	a := testAnalyzer()

	input := transcript.Transcript{
		Segments: []transcript.Segment{
			{Text: "apple banana apple cherry apple banana date", StartTime: 0, EndTime: 10, Confidence: 1},
		},
		Language: "en",
		Duration: 10,
	}

	freqs := a.ExtractKeywords(input, 2, 20)

	want := map[string]int{"apple": 3, "banana": 2}
	if len(freqs) != len(want) {
		t.Fatalf("got %d keywords, want %d: %+v", len(freqs), len(want), freqs)
	}
	for _, wf := range freqs {
		if want[wf.Word] != wf.Frequency {
			t.Errorf("keyword %q frequency = %d, want %d", wf.Word, wf.Frequency, want[wf.Word])
		}
	}

	// Sorted descending by frequency.
	if freqs[0].Word != "apple" || freqs[1].Word != "banana" {
		t.Errorf("order = [%s, %s], want [apple, banana]", freqs[0].Word, freqs[1].Word)
	}

	// Positions track the segment start time per occurrence.
	if len(freqs[0].Positions) != 3 {
		t.Errorf("apple positions = %v, want 3 entries", freqs[0].Positions)
	}
}

func TestExtractKeywordsFiltersShortAndStopWords(t *testing.T) {
	a := testAnalyzer()

	input := transcript.Transcript{
		Segments: []transcript.Segment{
			{Text: "the and it is compiler compiler", StartTime: 0, EndTime: 5, Confidence: 1},
		},
		Language: "en",
		Duration: 5,
	}

	freqs := a.ExtractKeywords(input, 1, 20)

	if len(freqs) != 1 || freqs[0].Word != "compiler" {
		t.Errorf("got %+v, want only [compiler]", freqs)
	}
}

func TestAnalyzeEmptyTranscript(t *testing.T) {
	a := testAnalyzer()

	result := a.Analyze(transcript.Transcript{
		Segments: []transcript.Segment{}, Language: "en", Confidence: 0, Duration: 0,
	}, DefaultOptions())

	if len(result.Topics) != 0 {
		t.Errorf("Topics = %+v, want empty", result.Topics)
	}
	if len(result.KeyPoints) != 0 {
		t.Errorf("KeyPoints = %+v, want empty", result.KeyPoints)
	}
	if result.Summary != "." {
		t.Errorf("Summary = %q, want %q", result.Summary, ".")
	}
	if result.Sentiment != SentimentNeutral {
		t.Errorf("Sentiment = %q, want neutral", result.Sentiment)
	}

	if len(result.SuggestedStructure) < 2 {
		t.Fatalf("SuggestedStructure = %+v, want at least Introduction and Conclusion", result.SuggestedStructure)
	}
	if result.SuggestedStructure[0].Heading != "Introduction" {
		t.Errorf("first heading = %q, want Introduction", result.SuggestedStructure[0].Heading)
	}
	if last := result.SuggestedStructure[len(result.SuggestedStructure)-1]; last.Heading != "Conclusion" {
		t.Errorf("last heading = %q, want Conclusion", last.Heading)
	}
}

func TestSentimentClassification(t *testing.T) {
	a := testAnalyzer()

	tests := []struct {
		name string
		text string
		want string
	}{
		{
			name: "positive vocabulary",
			text: "This was a good great excellent amazing wonderful session with fantastic results",
			want: SentimentPositive,
		},
		{
			name: "negative vocabulary",
			text: "A terrible awful experience full of bad errors and confusing broken problems",
			want: SentimentNegative,
		},
		{
			name: "neutral technical prose",
			text: "The compiler parses tokens into syntax trees before emitting bytecode",
			want: SentimentNeutral,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := a.Analyze(transcript.Transcript{
				Segments: []transcript.Segment{
					{Text: tt.text, StartTime: 0, EndTime: 10, Confidence: 1},
				},
				Language: "en",
				Duration: 10,
			}, DefaultOptions())

			if result.Sentiment != tt.want {
				t.Errorf("Sentiment = %q, want %q", result.Sentiment, tt.want)
			}
		})
	}
}

func TestAnalyzeEndToEnd(t *testing.T) {
	a := testAnalyzer()

	result := a.Analyze(tutorialTranscript(), DefaultOptions())

	foundTopic := false
	for _, topic := range result.Topics {
		name := strings.ToLower(topic.Name)
		if strings.Contains(name, "machine") || strings.Contains(name, "learning") || strings.Contains(name, "data") {
			foundTopic = true
		}
		if topic.Relevance <= 0 || topic.Relevance > 1 {
			t.Errorf("topic %q relevance = %v, want (0, 1]", topic.Name, topic.Relevance)
		}
	}
	if !foundTopic {
		t.Errorf("no topic referencing machine/learning/data: %+v", result.Topics)
	}

	if len(result.KeyPoints) == 0 {
		t.Error("no key points extracted")
	}
	if len(result.Summary) <= 20 {
		t.Errorf("Summary = %q, want longer than 20 chars", result.Summary)
	}

	headings := make(map[string]bool)
	for _, section := range result.SuggestedStructure {
		headings[section.Heading] = true
	}
	if !headings["Introduction"] || !headings["Conclusion"] {
		t.Errorf("outline missing Introduction/Conclusion: %+v", result.SuggestedStructure)
	}
}

func TestTopicCompoundNaming(t *testing.T) {
	a := testAnalyzer()

	result := a.Analyze(tutorialTranscript(), DefaultOptions())

	if len(result.Topics) == 0 {
		t.Fatal("no topics")
	}
	// "machine" and "learning" co-occur within the window, so the top
	// cluster should carry the compound name.
	if result.Topics[0].Name != "Machine Learning" {
		t.Errorf("top topic = %q, want Machine Learning", result.Topics[0].Name)
	}
}

func TestTopicFallbackToSingletons(t *testing.T) {
	a := testAnalyzer()

	// A relevance floor no cluster can reach forces the singleton
	// fallback path.
	opts := DefaultOptions()
	opts.MinTopicRelevance = 0.99

	input := transcript.Transcript{
		Segments: []transcript.Segment{
			{Text: "kubernetes kubernetes deployment", StartTime: 0, EndTime: 5, Confidence: 1},
			{Text: "postgres replication postgres", StartTime: 100, EndTime: 105, Confidence: 1},
		},
		Language: "en",
		Duration: 105,
	}

	result := a.Analyze(input, opts)

	if len(result.Topics) == 0 || len(result.Topics) > 3 {
		t.Fatalf("got %d fallback topics, want 1-3: %+v", len(result.Topics), result.Topics)
	}
	if result.Topics[0].Relevance != 1.0 {
		t.Errorf("top fallback relevance = %v, want 1.0 (relative to highest frequency)", result.Topics[0].Relevance)
	}
}

func TestSummaryTemporalDiversity(t *testing.T) {
	a := testAnalyzer()

	// Three high-scoring sentences in one burst plus one far away; the
	// summary should not be built from the burst alone.
	input := transcript.Transcript{
		Segments: []transcript.Segment{
			{Text: "The database migration requires careful schema planning today", StartTime: 0, EndTime: 5, Confidence: 1},
			{Text: "Database schema changes need planning and migration tooling", StartTime: 5, EndTime: 10, Confidence: 1},
			{Text: "Migration tooling for the database schema is essential", StartTime: 10, EndTime: 15, Confidence: 1},
			{Text: "The database deployment completes the migration schema story", StartTime: 200, EndTime: 205, Confidence: 1},
		},
		Language: "en",
		Duration: 205,
	}

	opts := DefaultOptions()
	opts.SummaryLength = 2
	result := a.Analyze(input, opts)

	if !strings.Contains(result.Summary, "deployment") {
		t.Errorf("Summary = %q, expected the temporally distant sentence to be selected", result.Summary)
	}
}

func TestKeyPointCategorization(t *testing.T) {
	a := testAnalyzer()

	input := transcript.Transcript{
		Segments: []transcript.Segment{
			{Text: "The database server code uses a neural network model for the algorithm", StartTime: 0, EndTime: 5, Confidence: 1},
			{Text: "Our revenue growth strategy targets the customer market segment", StartTime: 5, EndTime: 10, Confidence: 1},
		},
		Language: "en",
		Duration: 10,
	}

	result := a.Analyze(input, DefaultOptions())

	categories := make(map[string]bool)
	for _, kp := range result.KeyPoints {
		categories[kp.Category] = true
	}
	if !categories[CategoryTechnical] {
		t.Errorf("expected a Technical key point, got %+v", result.KeyPoints)
	}
	if !categories[CategoryBusiness] {
		t.Errorf("expected a Business key point, got %+v", result.KeyPoints)
	}
}

func TestAnalyzeDeterministic(t *testing.T) {
	a := testAnalyzer()
	input := tutorialTranscript()
	opts := DefaultOptions()

	first := a.Analyze(input, opts)
	second := a.Analyze(input, opts)

	if !reflect.DeepEqual(first, second) {
		t.Error("Analyze is not deterministic for identical input")
	}
}

func TestCustomVocabulary(t *testing.T) {
	vocab := Vocabulary{
		StopWords:     []string{"flubber"},
		PositiveWords: []string{"zork"},
		NegativeWords: []string{"grum"},
	}
	a := New(vocab, logger.New("error", "text"))

	input := transcript.Transcript{
		Segments: []transcript.Segment{
			{Text: "flubber zork zork widget", StartTime: 0, EndTime: 5, Confidence: 1},
		},
		Language: "en",
		Duration: 5,
	}

	freqs := a.ExtractKeywords(input, 1, 10)
	for _, wf := range freqs {
		if wf.Word == "flubber" {
			t.Error("substitute stop word was not filtered")
		}
	}

	result := a.Analyze(input, DefaultOptions())
	if result.Sentiment != SentimentPositive {
		t.Errorf("Sentiment = %q, want positive with substitute vocabulary", result.Sentiment)
	}
}
