package transcript

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseTimestamp converts "SS", "MM:SS" or "HH:MM:SS" (each with an
// optional fractional part on the last component) into seconds.
// Any other shape is a parse error, never silently defaulted.
func ParseTimestamp(s string) (float64, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return 0, fmt.Errorf("parse timestamp: empty string")
	}

	parts := strings.Split(trimmed, ":")
	if len(parts) > 3 {
		return 0, fmt.Errorf("parse timestamp %q: too many components", s)
	}

	total := 0.0
	for i, part := range parts {
		var v float64
		if i == len(parts)-1 {
			// Only the seconds component may carry a fraction.
			f, err := strconv.ParseFloat(part, 64)
			if err != nil {
				return 0, fmt.Errorf("parse timestamp %q: %w", s, err)
			}
			v = f
		} else {
			n, err := strconv.Atoi(part)
			if err != nil {
				return 0, fmt.Errorf("parse timestamp %q: %w", s, err)
			}
			v = float64(n)
		}
		if v < 0 {
			return 0, fmt.Errorf("parse timestamp %q: negative component", s)
		}
		total = total*60 + v
	}

	return total, nil
}

// FormatTimestamp renders seconds as "M:SS", or "H:MM:SS" when
// forceHours is set. Values of an hour or more always include the
// hours component regardless of forceHours.
func FormatTimestamp(seconds float64, forceHours bool) string {
	if seconds < 0 {
		seconds = 0
	}

	total := int(seconds)
	hours := total / 3600
	minutes := (total % 3600) / 60
	secs := total % 60

	if forceHours || hours > 0 {
		return fmt.Sprintf("%d:%02d:%02d", hours, minutes, secs)
	}
	return fmt.Sprintf("%d:%02d", minutes, secs)
}
