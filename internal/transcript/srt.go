package transcript

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	reSrtTiming = regexp.MustCompile(`^(\d{1,2}:\d{2}:\d{2})[,.](\d{1,3})\s*-->\s*(\d{1,2}:\d{2}:\d{2})[,.](\d{1,3})`)
	reSrtIndex  = regexp.MustCompile(`^\d+$`)
)

// ParseSRT parses SubRip subtitle content into a Transcript.
// Cue indexes are optional; timing lines use "HH:MM:SS,mmm --> HH:MM:SS,mmm".
func ParseSRT(content, language string) (Transcript, error) {
	var segments []Segment

	lines := strings.Split(content, "\n")
	i := 0
	for i < len(lines) {
		line := strings.TrimSpace(strings.TrimRight(lines[i], "\r"))
		if line == "" || reSrtIndex.MatchString(line) {
			i++
			continue
		}

		m := reSrtTiming.FindStringSubmatch(line)
		if m == nil {
			return Transcript{}, fmt.Errorf("parse srt: unexpected line %q", line)
		}

		start, err := parseCueTime(m[1], m[2])
		if err != nil {
			return Transcript{}, fmt.Errorf("parse srt: %w", err)
		}
		end, err := parseCueTime(m[3], m[4])
		if err != nil {
			return Transcript{}, fmt.Errorf("parse srt: %w", err)
		}

		// Collect text lines until the next blank line.
		i++
		var texts []string
		for i < len(lines) {
			text := strings.TrimSpace(strings.TrimRight(lines[i], "\r"))
			if text == "" {
				break
			}
			texts = append(texts, text)
			i++
		}

		text := strings.Join(texts, " ")
		if text != "" {
			segments = append(segments, Segment{
				Text:       text,
				StartTime:  start,
				EndTime:    end,
				Confidence: 1.0,
			})
		}
	}

	return fromSegments(segments, language), nil
}

// parseCueTime combines a clock part and a millisecond part.
func parseCueTime(clock, millis string) (float64, error) {
	base, err := ParseTimestamp(clock)
	if err != nil {
		return 0, err
	}

	// Milliseconds may be 1-3 digits; pad to a fixed scale.
	for len(millis) < 3 {
		millis += "0"
	}
	ms := 0.0
	for _, c := range millis {
		if c < '0' || c > '9' {
			return 0, fmt.Errorf("invalid millisecond part %q", millis)
		}
		ms = ms*10 + float64(c-'0')
	}

	return base + ms/1000, nil
}

func fromSegments(segments []Segment, language string) Transcript {
	duration := 0.0
	for _, seg := range segments {
		if seg.EndTime > duration {
			duration = seg.EndTime
		}
	}
	if language == "" {
		language = "en"
	}
	return Transcript{
		Segments:   segments,
		Language:   language,
		Confidence: 1.0,
		Duration:   duration,
	}
}
