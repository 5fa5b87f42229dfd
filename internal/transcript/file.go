package transcript

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// LoadFile reads a transcript from disk, dispatching on extension.
// Supported formats: .srt, .vtt and .json (the Transcript JSON shape).
func LoadFile(path string) (Transcript, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Transcript{}, fmt.Errorf("read transcript: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".srt":
		return ParseSRT(string(data), "")
	case ".vtt":
		return ParseVTT(string(data), "")
	case ".json":
		var t Transcript
		if err := json.Unmarshal(data, &t); err != nil {
			return Transcript{}, fmt.Errorf("parse transcript json: %w", err)
		}
		return t, nil
	default:
		return Transcript{}, fmt.Errorf("unsupported transcript format: %s", filepath.Ext(path))
	}
}

// SupportedExtensions lists the transcript file formats LoadFile accepts.
func SupportedExtensions() []string {
	return []string{".srt", ".vtt", ".json"}
}
