// Package pipeline turns a single article URL into an uploaded video.
package pipeline

import (
	"context"
	"fmt"
	"math/rand"

	"newsreel/config"
	"newsreel/preview"
	"newsreel/speech"
	"newsreel/types"
	"newsreel/upload"
	"newsreel/video"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Step is one stage of a run. Steps execute in order and the first error
// aborts the run.
type Step interface {
	Do(ctx context.Context, run *Run) error
	Name() string
}

// ArticleSource fetches and extracts one article page.
type ArticleSource interface {
	Fetch(ctx context.Context, url string) (*types.Article, error)
}

// Previewer draws the title card.
type Previewer interface {
	Render(title string, scheme preview.ColorScheme, path string) (preview.Layout, error)
}

// VideoComposer probes the narration and muxes it with the title card.
type VideoComposer interface {
	Duration(audioPath string) (float64, error)
	CreateVideo(input video.Input, outputPath string) error
}

// Deps are the collaborators a Driver runs against. The caller owns them.
type Deps struct {
	Articles    ArticleSource
	Synthesizer speech.Synthesizer
	Previewer   Previewer
	Composer    VideoComposer
	Uploader    upload.Uploader
	Palette     []preview.ColorScheme
	Rand        *rand.Rand
	Log         logrus.FieldLogger
}

// Driver executes the fixed sequence of steps for one article.
type Driver struct {
	cfg   config.Config
	deps  Deps
	steps []Step
}

// NewDriver wires the steps against deps.
func NewDriver(cfg config.Config, deps Deps) (*Driver, error) {
	if len(deps.Palette) == 0 {
		palette, err := preview.ParsePalette(config.Palette)
		if err != nil {
			return nil, err
		}
		deps.Palette = palette
	}
	if deps.Rand == nil {
		return nil, fmt.Errorf("pipeline: random source is required")
	}
	if deps.Log == nil {
		deps.Log = logrus.StandardLogger()
	}

	d := &Driver{cfg: cfg, deps: deps}
	d.steps = []Step{
		&fetchStep{articles: deps.Articles},
		&composeStep{callToAction: cfg.CallToAction},
		&synthesizeStep{synth: deps.Synthesizer, rng: deps.Rand},
		&previewStep{previewer: deps.Previewer, palette: deps.Palette, rng: deps.Rand},
		&videoStep{composer: deps.Composer, workDir: cfg.WorkDir},
		&uploadStep{uploader: deps.Uploader},
		&cleanupStep{},
	}
	return d, nil
}

// Steps returns the step names in execution order.
func (d *Driver) Steps() []string {
	names := make([]string, len(d.steps))
	for i, s := range d.steps {
		names[i] = s.Name()
	}
	return names
}

// Run processes url end to end and returns where the video ended up.
func (d *Driver) Run(ctx context.Context, url string) (upload.Ref, error) {
	run := &Run{
		ID:          uuid.NewString(),
		URL:         url,
		AudioPath:   d.cfg.AudioPath(),
		PreviewPath: d.cfg.PreviewPath(),
	}
	run.log = d.deps.Log.WithFields(logrus.Fields{"run": run.ID, "url": url})

	for _, step := range d.steps {
		select {
		case <-ctx.Done():
			run.log.WithField("step", step.Name()).Warn("Run cancelled")
			return upload.Ref{}, ctx.Err()
		default:
		}

		run.log.WithField("step", step.Name()).Debug("Executing step")

		if err := step.Do(ctx, run); err != nil {
			run.log.WithError(err).WithField("step", step.Name()).Error("Step failed")
			return upload.Ref{}, fmt.Errorf("%s: %w", step.Name(), err)
		}
	}

	run.log.WithFields(logrus.Fields{"backend": run.Ref.Backend, "location": run.Ref.URL}).Info("Run complete")
	return run.Ref, nil
}
