package video

import (
	"fmt"

	"newsreel/config"

	ffmpeg "github.com/u2takey/ffmpeg-go"
)

// Input is one still frame held for Duration seconds over the narration.
type Input struct {
	ImagePath string
	AudioPath string
	Duration  float64
}

// Composer renders image+audio videos and probes audio length with ffmpeg.
type Composer struct{}

// NewComposer returns a Composer using the ffmpeg and ffprobe found in PATH.
func NewComposer() *Composer {
	return &Composer{}
}

// CreateVideo encodes input into outputPath, overwriting an existing file.
func (c *Composer) CreateVideo(input Input, outputPath string) error {
	if err := buildVideo(input, outputPath).Run(); err != nil {
		return fmt.Errorf("ffmpeg failed: %w", err)
	}
	return nil
}

// Duration returns the length of an audio file in seconds.
func (c *Composer) Duration(audioPath string) (float64, error) {
	return ProbeDuration(audioPath)
}

func buildVideo(input Input, outputPath string) *ffmpeg.Stream {
	// Loop the still image at the output frame rate; the audio track simply
	// ends before the padded video does.
	image := ffmpeg.Input(input.ImagePath, ffmpeg.KwArgs{
		"loop":      "1",
		"framerate": fmt.Sprintf("%d", config.VideoFPS),
	})
	audio := ffmpeg.Input(input.AudioPath)

	return ffmpeg.Output([]*ffmpeg.Stream{image, audio}, outputPath, ffmpeg.KwArgs{
		"t":       fmt.Sprintf("%.2f", input.Duration),
		"r":       fmt.Sprintf("%d", config.VideoFPS),
		"c:v":     config.VideoCodec,
		"c:a":     config.AudioCodec,
		"b:a":     config.AudioBitrate,
		"pix_fmt": config.VideoPixelFormat,
		"tune":    "stillimage",
	}).OverWriteOutput()
}
