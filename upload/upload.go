// Package upload hands a finished video to its final destination.
package upload

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
)

// Ref identifies an uploaded video
type Ref struct {
	Backend string
	ID      string
	Name    string
	URL     string
}

// Uploader stores the file at path under name.
type Uploader interface {
	Upload(ctx context.Context, path, name string) (Ref, error)
}

// Local keeps the video where it was written.
type Local struct {
	log logrus.FieldLogger
}

func NewLocal(log logrus.FieldLogger) *Local {
	return &Local{log: log}
}

func (l *Local) Upload(_ context.Context, path, name string) (Ref, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return Ref{}, fmt.Errorf("failed to resolve %s: %w", path, err)
	}
	if _, err := os.Stat(abs); err != nil {
		return Ref{}, fmt.Errorf("video not found: %w", err)
	}
	l.log.WithField("file", abs).Info("Upload disabled, video kept locally")
	return Ref{Backend: "none", ID: name, Name: name, URL: abs}, nil
}

func fileSizeMB(f *os.File) float64 {
	info, err := f.Stat()
	if err != nil {
		return 0
	}
	return float64(info.Size()) / (1024 * 1024)
}
