package analyzer

// Vocabulary bundles the fixed word lists the analyzer depends on.
// It is injected at construction so tests can substitute their own
// lists instead of relying on ambient globals.
type Vocabulary struct {
	StopWords     []string
	PositiveWords []string
	NegativeWords []string

	TechnicalTerms []string
	BusinessTerms  []string
	ProcessTerms   []string

	// Compounds are common keyword bigrams used for topic naming.
	Compounds [][2]string

	stopSet      map[string]struct{}
	positiveSet  map[string]struct{}
	negativeSet  map[string]struct{}
	technicalSet map[string]struct{}
	businessSet  map[string]struct{}
	processSet   map[string]struct{}
}

// DefaultVocabulary returns the built-in English word lists.
func DefaultVocabulary() Vocabulary {
	return Vocabulary{
		StopWords: []string{
			"the", "and", "for", "are", "but", "not", "you", "all", "can",
			"had", "her", "was", "one", "our", "out", "day", "get", "has",
			"him", "his", "how", "man", "new", "now", "old", "see", "two",
			"way", "who", "its", "did", "yes", "your", "that", "with",
			"have", "this", "will", "from", "they", "know", "want", "been",
			"good", "much", "some", "time", "very", "when", "come", "here",
			"just", "like", "long", "make", "many", "over", "such", "take",
			"than", "them", "well", "were", "what", "there", "which",
			"their", "would", "could", "should", "about", "after", "before",
			"other", "these", "those", "where", "while", "going", "doing",
			"being", "having", "into", "also", "because", "really", "thing",
			"things", "something", "actually", "right", "okay", "yeah",
		},
		PositiveWords: []string{
			"good", "great", "excellent", "amazing", "awesome", "love",
			"best", "wonderful", "fantastic", "perfect", "happy", "success",
			"successful", "easy", "helpful", "beautiful", "powerful",
			"impressive", "interesting", "useful", "valuable", "exciting",
		},
		NegativeWords: []string{
			"bad", "worst", "terrible", "awful", "hate", "problem",
			"difficult", "hard", "wrong", "fail", "failure", "broken",
			"issue", "error", "poor", "confusing", "slow", "expensive",
			"frustrating", "annoying", "disappointing", "useless",
		},
		TechnicalTerms: []string{
			"algorithm", "code", "software", "system", "data", "server",
			"database", "network", "machine", "learning", "model", "api",
			"framework", "cloud", "security", "programming", "computer",
			"technology", "neural", "digital", "architecture", "engineering",
		},
		BusinessTerms: []string{
			"market", "revenue", "customer", "business", "strategy",
			"sales", "growth", "product", "brand", "profit", "investment",
			"startup", "company", "finance", "pricing", "marketing",
		},
		ProcessTerms: []string{
			"step", "process", "method", "approach", "workflow", "plan",
			"phase", "stage", "procedure", "guide", "setup", "install",
			"configure", "deploy", "build", "test",
		},
		Compounds: [][2]string{
			{"machine", "learning"},
			{"deep", "learning"},
			{"data", "science"},
			{"data", "analysis"},
			{"artificial", "intelligence"},
			{"neural", "networks"},
			{"neural", "network"},
			{"web", "development"},
			{"software", "engineering"},
			{"open", "source"},
			{"cloud", "computing"},
			{"user", "experience"},
			{"social", "media"},
		},
	}
}

func toSet(words []string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}

// buildSets materializes lookup sets once at construction.
func (v *Vocabulary) buildSets() {
	v.stopSet = toSet(v.StopWords)
	v.positiveSet = toSet(v.PositiveWords)
	v.negativeSet = toSet(v.NegativeWords)
	v.technicalSet = toSet(v.TechnicalTerms)
	v.businessSet = toSet(v.BusinessTerms)
	v.processSet = toSet(v.ProcessTerms)
}

func (v *Vocabulary) isStopWord(w string) bool {
	_, ok := v.stopSet[w]
	return ok
}

// compoundName returns the two-word topic name for a known bigram made
// of cluster members, or "" when none applies.
func (v *Vocabulary) compoundName(members map[string]bool) string {
	for _, pair := range v.Compounds {
		if members[pair[0]] && members[pair[1]] {
			return capitalize(pair[0]) + " " + capitalize(pair[1])
		}
	}
	return ""
}
