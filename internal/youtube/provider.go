package youtube

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/minhngoc2704/article-flow/internal/video"
)

// ytdlpInfo is the subset of `yt-dlp -j` output the pipeline consumes.
type ytdlpInfo struct {
	ID         string  `json:"id"`
	Title      string  `json:"title"`
	Description string `json:"description"`
	Duration   float64 `json:"duration"`
	Thumbnail  string  `json:"thumbnail"`
	Channel    string  `json:"channel"`
	Uploader   string  `json:"uploader"`
	UploadDate string  `json:"upload_date"`
	ViewCount  int64   `json:"view_count"`
}

// FetchMetadata runs yt-dlp in metadata-only mode and maps the result.
// Videos outside the accepted duration bounds are rejected here, before
// any subtitle download happens.
func (p *implProvider) FetchMetadata(ctx context.Context, url string) (video.Metadata, error) {
	p.logger.Info(ctx, "Fetching metadata: %s", url)

	out, err := p.executor.Execute(ctx, p.binary, "-j", "--no-playlist", url)
	if err != nil {
		return video.Metadata{}, fmt.Errorf("yt-dlp metadata: %w", err)
	}

	var info ytdlpInfo
	if err := json.Unmarshal([]byte(out), &info); err != nil {
		return video.Metadata{}, fmt.Errorf("parse yt-dlp output: %w", err)
	}

	if err := video.ValidateDuration(info.Duration); err != nil {
		return video.Metadata{}, err
	}

	channel := info.Channel
	if channel == "" {
		channel = info.Uploader
	}

	return video.Metadata{
		ID:           info.ID,
		Title:        info.Title,
		Description:  info.Description,
		Duration:     info.Duration,
		ThumbnailURL: info.Thumbnail,
		ChannelName:  channel,
		PublishDate:  formatUploadDate(info.UploadDate),
		ViewCount:    info.ViewCount,
	}, nil
}

// DownloadSubtitles fetches the manual subtitle track when one exists,
// falling back to YouTube's auto-generated captions, and returns the
// path of the downloaded file.
func (p *implProvider) DownloadSubtitles(ctx context.Context, url, destDir string) (string, error) {
	if err := os.MkdirAll(destDir, 0755); err != nil {
		return "", fmt.Errorf("create subtitle dir: %w", err)
	}

	p.logger.Info(ctx, "Downloading subtitles (%s): %s", p.language, url)

	args := []string{
		"--skip-download",
		"--no-playlist",
		"--write-subs",
		"--write-auto-subs",
		"--sub-langs", p.language,
		"-o", filepath.Join(destDir, "%(id)s.%(ext)s"),
		url,
	}
	if _, err := p.executor.Execute(ctx, p.binary, args...); err != nil {
		return "", fmt.Errorf("yt-dlp subtitles: %w", err)
	}

	path, err := findSubtitleFile(destDir)
	if err != nil {
		return "", err
	}

	p.logger.Info(ctx, "Subtitles downloaded: %s", path)
	return path, nil
}

// findSubtitleFile locates the newest subtitle file yt-dlp wrote.
func findSubtitleFile(dir string) (string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", fmt.Errorf("read subtitle dir: %w", err)
	}

	var newest string
	var newestMod time.Time
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(e.Name()))
		if ext != ".srt" && ext != ".vtt" {
			continue
		}
		info, err := e.Info()
		if err != nil {
			continue
		}
		if newest == "" || info.ModTime().After(newestMod) {
			newest = filepath.Join(dir, e.Name())
			newestMod = info.ModTime()
		}
	}

	if newest == "" {
		return "", fmt.Errorf("no subtitles available")
	}
	return newest, nil
}

// formatUploadDate converts yt-dlp's YYYYMMDD form to ISO-8601. An
// unparseable date passes through empty rather than failing the fetch.
func formatUploadDate(s string) string {
	t, err := time.Parse("20060102", s)
	if err != nil {
		return ""
	}
	return t.Format(time.RFC3339)
}
