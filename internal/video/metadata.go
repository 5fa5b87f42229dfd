// Package video holds the metadata shape supplied by video providers.
package video

import "fmt"

// Accepted video duration bounds, enforced upstream of the analysis
// pipeline.
const (
	MinDuration = 60.0
	MaxDuration = 10800.0
)

// Metadata describes a source video. PublishDate crosses the JSON
// boundary as an ISO-8601 string; consumers parse it, the pipeline
// never does.
type Metadata struct {
	ID           string  `json:"id"`
	Title        string  `json:"title"`
	Description  string  `json:"description"`
	Duration     float64 `json:"duration"`
	ThumbnailURL string  `json:"thumbnail_url"`
	ChannelName  string  `json:"channel_name"`
	PublishDate  string  `json:"publish_date"`
	ViewCount    int64   `json:"view_count"`
}

// ValidateDuration rejects videos shorter than a minute or longer than
// three hours.
func ValidateDuration(seconds float64) error {
	if seconds < MinDuration {
		return fmt.Errorf("video too short: %.0fs (minimum %.0fs)", seconds, MinDuration)
	}
	if seconds > MaxDuration {
		return fmt.Errorf("video too long: %.0fs (maximum %.0fs)", seconds, MaxDuration)
	}
	return nil
}
