package transcript

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	reVttHeader   = regexp.MustCompile(`^WEBVTT\b`)
	reVttTiming   = regexp.MustCompile(`^(\d{1,2}:\d{2}:\d{2}\.\d{3}|\d{1,2}:\d{2}\.\d{3})\s*-->\s*(\d{1,2}:\d{2}:\d{2}\.\d{3}|\d{1,2}:\d{2}\.\d{3})`)
	reVttMetadata = regexp.MustCompile(`^(Kind|Language|NOTE|STYLE|REGION)\b`)
	reHTMLTag     = regexp.MustCompile(`<[^>]+>`)
)

// ParseVTT parses WebVTT subtitle content into a Transcript. HTML-style
// styling tags are stripped and consecutive duplicate cue lines (the
// rolling repeats of auto-generated captions) are collapsed.
func ParseVTT(content, language string) (Transcript, error) {
	lines := strings.Split(content, "\n")
	if len(lines) == 0 || !reVttHeader.MatchString(strings.TrimSpace(lines[0])) {
		return Transcript{}, fmt.Errorf("parse vtt: missing WEBVTT header")
	}

	var segments []Segment
	var current *Segment
	prevText := ""

	flush := func() {
		if current != nil && strings.TrimSpace(current.Text) != "" {
			current.Text = strings.TrimSpace(current.Text)
			segments = append(segments, *current)
		}
		current = nil
	}

	for _, raw := range lines[1:] {
		line := strings.TrimRight(raw, "\r")
		trimmed := strings.TrimSpace(line)

		if reVttMetadata.MatchString(trimmed) {
			continue
		}

		if m := reVttTiming.FindStringSubmatch(trimmed); m != nil {
			flush()
			start, err := ParseTimestamp(m[1])
			if err != nil {
				return Transcript{}, fmt.Errorf("parse vtt: %w", err)
			}
			end, err := ParseTimestamp(m[2])
			if err != nil {
				return Transcript{}, fmt.Errorf("parse vtt: %w", err)
			}
			current = &Segment{StartTime: start, EndTime: end, Confidence: 1.0}
			continue
		}

		// A blank line terminates the current cue, so the next
		// non-blank line before a timing line is a cue identifier.
		if trimmed == "" {
			flush()
			continue
		}
		if reSrtIndex.MatchString(trimmed) {
			continue
		}

		if current == nil {
			// Cue identifier line before a timing cue.
			continue
		}

		text := strings.TrimSpace(reHTMLTag.ReplaceAllString(trimmed, ""))
		if text == "" || text == prevText {
			continue
		}
		prevText = text

		if current.Text != "" {
			current.Text += " "
		}
		current.Text += text
	}
	flush()

	return fromSegments(segments, language), nil
}
