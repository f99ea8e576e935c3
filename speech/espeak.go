package speech

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"

	"newsreel/config"
	"newsreel/ssml"

	"github.com/sirupsen/logrus"
	ffmpeg "github.com/u2takey/ffmpeg-go"
)

var ErrEspeakNotFound = errors.New("espeak-ng not found in PATH")

// Espeak synthesizes locally with the espeak-ng CLI, then transcodes its
// WAV output to MP3 with ffmpeg.
type Espeak struct {
	exe string
	log logrus.FieldLogger
}

// NewEspeak uses exe when set, otherwise looks espeak-ng up in PATH.
func NewEspeak(exe string, log logrus.FieldLogger) (*Espeak, error) {
	if exe == "" {
		p, err := exec.LookPath("espeak-ng")
		if err != nil {
			return nil, ErrEspeakNotFound
		}
		exe = p
	}
	return &Espeak{exe: exe, log: log}, nil
}

func (e *Espeak) Synthesize(ctx context.Context, doc ssml.Document, voice Voice, outPath string) error {
	wav := strings.TrimSuffix(outPath, filepath.Ext(outPath)) + ".wav"
	defer os.Remove(wav)

	var stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, e.exe, espeakArgs(voice, wav)...)
	cmd.Stdin = strings.NewReader(doc.String())
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("espeak-ng failed: %w: %s", err, strings.TrimSpace(stderr.String()))
	}

	if err := transcode(wav, outPath).Run(); err != nil {
		return fmt.Errorf("ffmpeg transcode failed: %w", err)
	}

	e.log.WithFields(logrus.Fields{"file": outPath, "voice": voice.Espeak}).Info("Text voiced")
	return nil
}

func (e *Espeak) Close() error { return nil }

// espeakArgs reads SSML (-m) from stdin and writes a WAV file.
func espeakArgs(voice Voice, wav string) []string {
	rate := voice.Rate
	if rate <= 0 {
		rate = NormalRate
	}
	return []string{
		"-m",
		"-v", voice.Espeak,
		"-s", strconv.Itoa(rate),
		"-w", wav,
		"--stdin",
	}
}

func transcode(wav, mp3 string) *ffmpeg.Stream {
	return ffmpeg.Input(wav).
		Output(mp3, ffmpeg.KwArgs{
			"c:a": "libmp3lame",
			"b:a": config.AudioBitrate,
		}).
		OverWriteOutput()
}
