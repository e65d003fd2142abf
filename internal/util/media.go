package util

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	ffmpeg "github.com/u2takey/ffmpeg-go"
)

// RecordingInfo holds metadata probed from an uploaded interview recording.
type RecordingInfo struct {
	Duration float64 `json:"duration"` // seconds
	Format   string  `json:"format"`
	Size     int64   `json:"size"`
}

// ProbeRecording reads recording metadata with ffprobe. A recording that
// ffprobe cannot parse is an error; callers decide whether that is fatal.
func ProbeRecording(path string) (*RecordingInfo, error) {
	fileInfo, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("recording file not found: %v", err)
	}

	jsonOutput, err := ffmpeg.Probe(path)
	if err != nil {
		return nil, fmt.Errorf("probe failed: %v", err)
	}

	var result struct {
		Format struct {
			Duration string `json:"duration"`
			Size     string `json:"size"`
			Format   string `json:"format_name"`
		} `json:"format"`
	}

	if err := json.Unmarshal([]byte(jsonOutput), &result); err != nil {
		return nil, fmt.Errorf("parse probe output: %v", err)
	}

	duration, err := strconv.ParseFloat(result.Format.Duration, 64)
	if err != nil {
		duration = 0
	}

	size, err := strconv.ParseInt(result.Format.Size, 10, 64)
	if err != nil {
		size = fileInfo.Size()
	}

	format := "unknown"
	if len(result.Format.Format) > 0 {
		formatParts := strings.Split(result.Format.Format, ",")
		if len(formatParts) > 0 {
			format = formatParts[0]
		}
	}

	return &RecordingInfo{
		Duration: duration,
		Format:   format,
		Size:     size,
	}, nil
}
