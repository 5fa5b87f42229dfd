package processor

import "context"

// Processor runs the full transcript-to-article pipeline, either for a
// local transcript file or for a YouTube URL.
type Processor interface {
	Process(ctx context.Context, transcriptPath string) error
	ProcessURL(ctx context.Context, url string) error
}
