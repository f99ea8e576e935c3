package pipeline

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"strings"

	"newsreel/article"
	"newsreel/config"
	"newsreel/preview"
	"newsreel/speech"
	"newsreel/ssml"
	"newsreel/upload"
	"newsreel/video"

	"github.com/sirupsen/logrus"
)

// fetchStep downloads the page and extracts the localized title and body.
type fetchStep struct {
	articles ArticleSource
}

func (s *fetchStep) Name() string { return "fetch" }

func (s *fetchStep) Do(ctx context.Context, run *Run) error {
	a, err := s.articles.Fetch(ctx, run.URL)
	if err != nil {
		return err
	}
	run.Article = a
	run.log = run.log.WithField("article", a.ID())
	run.log.WithFields(logrus.Fields{"title": a.Title, "body_len": len(a.Body)}).Info("Article extracted")
	return nil
}

// composeStep builds the narration and its speech markup.
type composeStep struct {
	callToAction string
}

func (s *composeStep) Name() string { return "compose" }

func (s *composeStep) Do(_ context.Context, run *Run) error {
	run.Narration = article.Narration(run.Article, s.callToAction)
	run.Document = ssml.Segment(run.Narration)
	run.log.WithField("sentences", len(run.Document.Sentences())).Debug("Narration segmented")
	return nil
}

// synthesizeStep voices the document with a randomly chosen preset.
type synthesizeStep struct {
	synth speech.Synthesizer
	rng   *rand.Rand
}

func (s *synthesizeStep) Name() string { return "synthesize" }

func (s *synthesizeStep) Do(ctx context.Context, run *Run) error {
	run.Voice = speech.PickVoice(s.rng)
	if err := s.synth.Synthesize(ctx, run.Document, run.Voice, run.AudioPath); err != nil {
		return fmt.Errorf("failed to voice text: %w", err)
	}
	return nil
}

// previewStep draws the title card in a random color scheme.
type previewStep struct {
	previewer Previewer
	palette   []preview.ColorScheme
	rng       *rand.Rand
}

func (s *previewStep) Name() string { return "preview" }

func (s *previewStep) Do(_ context.Context, run *Run) error {
	run.Scheme = preview.PickScheme(s.rng, s.palette)
	layout, err := s.previewer.Render(run.Article.Title, run.Scheme, run.PreviewPath)
	if err != nil {
		return fmt.Errorf("failed to render preview: %w", err)
	}
	run.Layout = layout
	run.log.WithFields(logrus.Fields{"file": run.PreviewPath, "lines": len(layout.Lines)}).Info("Preview created")
	return nil
}

// videoStep holds the title card over the narration plus a short tail.
type videoStep struct {
	composer VideoComposer
	workDir  string
}

func (s *videoStep) Name() string { return "video" }

func (s *videoStep) Do(_ context.Context, run *Run) error {
	duration, err := s.composer.Duration(run.AudioPath)
	if err != nil {
		return fmt.Errorf("failed to read audio duration: %w", err)
	}
	run.Duration = duration + config.VideoEndPadding
	run.VideoName = run.Article.VideoFilename()
	run.VideoPath = filepath.Join(s.workDir, localName(run.VideoName))

	input := video.Input{
		ImagePath: run.PreviewPath,
		AudioPath: run.AudioPath,
		Duration:  run.Duration,
	}
	if err := s.composer.CreateVideo(input, run.VideoPath); err != nil {
		return fmt.Errorf("failed to create video: %w", err)
	}
	run.log.WithFields(logrus.Fields{"file": run.VideoPath, "seconds": run.Duration}).Info("Video created")
	return nil
}

// uploadStep hands the finished video to the uploader.
type uploadStep struct {
	uploader upload.Uploader
}

func (s *uploadStep) Name() string { return "upload" }

func (s *uploadStep) Do(ctx context.Context, run *Run) error {
	ref, err := s.uploader.Upload(ctx, run.VideoPath, run.VideoName)
	if err != nil {
		return err
	}
	run.Ref = ref
	return nil
}

// cleanupStep removes the audio and preview files, but only when both are
// present.
type cleanupStep struct{}

func (s *cleanupStep) Name() string { return "cleanup" }

func (s *cleanupStep) Do(_ context.Context, run *Run) error {
	if !exists(run.AudioPath) || !exists(run.PreviewPath) {
		run.log.Warn("Temporary files not found, cleanup skipped")
		return nil
	}
	for _, p := range []string{run.AudioPath, run.PreviewPath} {
		if err := os.Remove(p); err != nil {
			return fmt.Errorf("failed to remove %s: %w", p, err)
		}
	}
	run.log.Info("Temporary files removed")
	return nil
}

// localName keeps a title-derived file name inside the work dir.
func localName(name string) string {
	return strings.NewReplacer("/", "_", `\`, "_").Replace(name)
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
