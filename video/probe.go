package video

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	ffmpeg "github.com/u2takey/ffmpeg-go"
)

var ErrNoDuration = errors.New("probe reported no duration")

type probeOutput struct {
	Format struct {
		Duration string `json:"duration"`
	} `json:"format"`
}

// ProbeDuration asks ffprobe for the container duration of path.
func ProbeDuration(path string) (float64, error) {
	out, err := ffmpeg.Probe(path)
	if err != nil {
		return 0, fmt.Errorf("ffprobe failed: %w", err)
	}
	return parseDuration(out)
}

func parseDuration(probe string) (float64, error) {
	var p probeOutput
	if err := json.Unmarshal([]byte(probe), &p); err != nil {
		return 0, fmt.Errorf("failed to parse probe output: %w", err)
	}
	if p.Format.Duration == "" {
		return 0, ErrNoDuration
	}
	d, err := strconv.ParseFloat(p.Format.Duration, 64)
	if err != nil {
		return 0, fmt.Errorf("failed to parse duration %q: %w", p.Format.Duration, err)
	}
	return d, nil
}
