package pipeline

import (
	"newsreel/preview"
	"newsreel/speech"
	"newsreel/ssml"
	"newsreel/types"
	"newsreel/upload"

	"github.com/sirupsen/logrus"
)

// Run accumulates the artifacts of one pipeline execution. Each step reads
// what earlier steps produced and fills in its own fields.
type Run struct {
	ID  string
	URL string

	Article   *types.Article
	Narration string
	Document  ssml.Document

	Voice  speech.Voice
	Scheme preview.ColorScheme
	Layout preview.Layout

	AudioPath   string
	PreviewPath string
	// VideoName is the upload name; VideoPath is where the file is on disk
	VideoName   string
	VideoPath   string
	Duration    float64

	Ref upload.Ref

	log logrus.FieldLogger
}
