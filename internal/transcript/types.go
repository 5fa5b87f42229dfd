package transcript

import "strings"

// Segment is a contiguous span of spoken text with its time range.
type Segment struct {
	Text       string  `json:"text"`
	StartTime  float64 `json:"start_time"`
	EndTime    float64 `json:"end_time"`
	Confidence float64 `json:"confidence"`
	Speaker    string  `json:"speaker,omitempty"`
}

// Transcript is an ordered, chronological sequence of segments.
// Duration should equal or exceed the last segment's end time in
// well-formed inputs, but consumers must not assume it does.
type Transcript struct {
	Segments   []Segment `json:"segments"`
	Language   string    `json:"language"`
	Confidence float64   `json:"confidence"`
	Duration   float64   `json:"duration"`
}

// FullText joins all segment texts with single spaces.
func (t Transcript) FullText() string {
	texts := make([]string, 0, len(t.Segments))
	for _, seg := range t.Segments {
		if seg.Text != "" {
			texts = append(texts, seg.Text)
		}
	}
	return strings.Join(texts, " ")
}

// WordCount counts whitespace-separated tokens across all segments.
func (t Transcript) WordCount() int {
	count := 0
	for _, seg := range t.Segments {
		count += len(strings.Fields(seg.Text))
	}
	return count
}
