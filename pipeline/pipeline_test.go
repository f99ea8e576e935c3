package pipeline

import (
	"context"
	"errors"
	"math/rand"
	"os"
	"path/filepath"
	"testing"

	"newsreel/article"
	"newsreel/config"
	"newsreel/logging"
	"newsreel/preview"
	"newsreel/speech"
	"newsreel/ssml"
	"newsreel/types"
	"newsreel/upload"
	"newsreel/video"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeArticles struct {
	article *types.Article
	err     error
}

func (f *fakeArticles) Fetch(_ context.Context, url string) (*types.Article, error) {
	if f.err != nil {
		return nil, f.err
	}
	a := *f.article
	a.URL = url
	return &a, nil
}

type fakeSynth struct {
	doc   ssml.Document
	voice speech.Voice
	calls int
	err   error
}

func (f *fakeSynth) Synthesize(_ context.Context, doc ssml.Document, voice speech.Voice, outPath string) error {
	f.calls++
	if f.err != nil {
		return f.err
	}
	f.doc, f.voice = doc, voice
	return os.WriteFile(outPath, []byte("mp3"), 0o644)
}

func (f *fakeSynth) Close() error { return nil }

type fakePreviewer struct {
	title  string
	scheme preview.ColorScheme
	skip   bool
}

func (f *fakePreviewer) Render(title string, scheme preview.ColorScheme, path string) (preview.Layout, error) {
	f.title, f.scheme = title, scheme
	if f.skip {
		return preview.Layout{}, nil
	}
	return preview.Layout{Lines: []preview.Line{{Text: title}}}, os.WriteFile(path, []byte("jpg"), 0o644)
}

type fakeComposer struct {
	duration float64
	input    video.Input
	out      string
}

func (f *fakeComposer) Duration(string) (float64, error) { return f.duration, nil }

func (f *fakeComposer) CreateVideo(input video.Input, out string) error {
	f.input, f.out = input, out
	return os.WriteFile(out, []byte("mp4"), 0o644)
}

type fakeUploader struct {
	path, name string
	calls      int
}

func (f *fakeUploader) Upload(_ context.Context, path, name string) (upload.Ref, error) {
	f.path, f.name = path, name
	f.calls++
	return upload.Ref{Backend: "fake", ID: "1", Name: name, URL: "fake://" + name}, nil
}

type fixture struct {
	cfg       config.Config
	articles  *fakeArticles
	synth     *fakeSynth
	previewer *fakePreviewer
	composer  *fakeComposer
	uploader  *fakeUploader
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	cfg := config.Default()
	cfg.WorkDir = t.TempDir()
	return &fixture{
		cfg: cfg,
		articles: &fakeArticles{article: &types.Article{
			Title: "Short Title",
			Body:  "First sentence. Second one?\n\nNew paragraph.",
		}},
		synth:     &fakeSynth{},
		previewer: &fakePreviewer{},
		composer:  &fakeComposer{duration: 10},
		uploader:  &fakeUploader{},
	}
}

func (f *fixture) driver(t *testing.T) *Driver {
	t.Helper()
	d, err := NewDriver(f.cfg, Deps{
		Articles:    f.articles,
		Synthesizer: f.synth,
		Previewer:   f.previewer,
		Composer:    f.composer,
		Uploader:    f.uploader,
		Rand:        rand.New(rand.NewSource(42)),
		Log:         logging.Discard(),
	})
	require.NoError(t, err)
	return d
}

func TestDriverSteps(t *testing.T) {
	d := newFixture(t).driver(t)
	assert.Equal(t, []string{"fetch", "compose", "synthesize", "preview", "video", "upload", "cleanup"}, d.Steps())
}

func TestDriverRequiresRand(t *testing.T) {
	_, err := NewDriver(config.Default(), Deps{})
	assert.Error(t, err)
}

func TestDriverRun(t *testing.T) {
	f := newFixture(t)
	ref, err := f.driver(t).Run(context.Background(), "https://example.com/news/1")
	require.NoError(t, err)

	assert.Equal(t, "Short_Title.mp4", ref.Name)
	assert.Equal(t, "Short_Title.mp4", f.uploader.name)
	assert.Equal(t, filepath.Join(f.cfg.WorkDir, "Short_Title.mp4"), f.uploader.path)

	// narration is title, body and the call to action
	sentences := f.synth.doc.Sentences()
	require.NotEmpty(t, sentences)
	assert.Equal(t, "Short Title", sentences[0])
	assert.Equal(t, f.cfg.CallToAction, sentences[len(sentences)-1])
	assert.Contains(t, sentences, "Second one?")
	assert.Contains(t, speech.Presets, f.synth.voice)

	assert.Equal(t, "Short Title", f.previewer.title)
	assert.NotZero(t, f.previewer.scheme.Background.A)

	assert.InDelta(t, 13.0, f.composer.input.Duration, 1e-9)
	assert.Equal(t, f.cfg.PreviewPath(), f.composer.input.ImagePath)
	assert.Equal(t, f.cfg.AudioPath(), f.composer.input.AudioPath)

	// temp artifacts are gone, the video stays
	assert.NoFileExists(t, f.cfg.AudioPath())
	assert.NoFileExists(t, f.cfg.PreviewPath())
	assert.FileExists(t, filepath.Join(f.cfg.WorkDir, "Short_Title.mp4"))
}

func TestDriverRunSeeded(t *testing.T) {
	a, b := newFixture(t), newFixture(t)
	_, err := a.driver(t).Run(context.Background(), "https://example.com/a")
	require.NoError(t, err)
	_, err = b.driver(t).Run(context.Background(), "https://example.com/a")
	require.NoError(t, err)

	assert.Equal(t, a.synth.voice, b.synth.voice)
	assert.Equal(t, a.previewer.scheme, b.previewer.scheme)
}

func TestDriverFetchError(t *testing.T) {
	f := newFixture(t)
	f.articles.err = article.ErrConnection

	_, err := f.driver(t).Run(context.Background(), "https://example.com/down")
	assert.ErrorIs(t, err, article.ErrConnection)
	assert.Zero(t, f.synth.calls)
	assert.Zero(t, f.uploader.calls)
}

func TestDriverSynthesisErrorStops(t *testing.T) {
	f := newFixture(t)
	f.synth.err = errors.New("quota exceeded")

	_, err := f.driver(t).Run(context.Background(), "https://example.com/news/1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "synthesize")
	assert.Zero(t, f.uploader.calls)
}

func TestDriverCleanupSkipped(t *testing.T) {
	f := newFixture(t)
	f.previewer.skip = true

	_, err := f.driver(t).Run(context.Background(), "https://example.com/news/1")
	require.NoError(t, err)

	// the preview was never written, so the audio survives
	assert.FileExists(t, f.cfg.AudioPath())
}

func TestDriverCancelled(t *testing.T) {
	f := newFixture(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := f.driver(t).Run(ctx, "https://example.com/news/1")
	assert.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, f.synth.calls)
}

func TestDriverVideoStaysInWorkDir(t *testing.T) {
	cases := []struct {
		title     string
		localName string
		upload    string
	}{
		{"Open 24/7 now", "Open_24_7_now.mp4", "Open_24/7_now.mp4"},
		{"../../escape", ".._.._escape.mp4", "../../escape.mp4"},
		{`back\slash`, "back_slash.mp4", `back\slash.mp4`},
	}

	for _, c := range cases {
		t.Run(c.title, func(t *testing.T) {
			f := newFixture(t)
			f.articles.article.Title = c.title

			_, err := f.driver(t).Run(context.Background(), "https://example.com/news/1")
			require.NoError(t, err)

			want := filepath.Join(f.cfg.WorkDir, c.localName)
			assert.Equal(t, want, f.composer.out)
			assert.Equal(t, want, f.uploader.path)
			assert.Equal(t, c.upload, f.uploader.name)
			assert.FileExists(t, want)
			assert.Equal(t, f.cfg.WorkDir, filepath.Dir(f.composer.out))
		})
	}
}
