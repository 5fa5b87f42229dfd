package youtube

import (
	"context"

	"github.com/minhngoc2704/article-flow/internal/video"
)

// Provider fetches video metadata and subtitle tracks from YouTube.
type Provider interface {
	FetchMetadata(ctx context.Context, url string) (video.Metadata, error)
	DownloadSubtitles(ctx context.Context, url, destDir string) (string, error)
}
