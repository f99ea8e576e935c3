package main

import (
	"context"
	"errors"
	"fmt"

	"newsreel/article"
	"newsreel/config"
	"newsreel/pipeline"
	"newsreel/preview"
	"newsreel/speech"
	"newsreel/upload"
	"newsreel/video"

	"github.com/sirupsen/logrus"
)

// depsBuilder constructs the collaborators of one run. The returned func
// releases them.
type depsBuilder func(ctx context.Context, cfg config.Config, log logrus.FieldLogger, interactive bool) (pipeline.Deps, func(), error)

func buildDeps(ctx context.Context, cfg config.Config, log logrus.FieldLogger, interactive bool) (pipeline.Deps, func(), error) {
	var closers []func() error
	closeAll := func() {
		for i := len(closers) - 1; i >= 0; i-- {
			if err := closers[i](); err != nil {
				log.WithError(err).Warn("Failed to release resource")
			}
		}
	}
	fail := func(err error) (pipeline.Deps, func(), error) {
		closeAll()
		return pipeline.Deps{}, nil, err
	}

	uploader, err := newUploader(ctx, cfg, log, interactive)
	if err != nil {
		return fail(err)
	}

	synth, err := newSynthesizer(ctx, cfg, log)
	if err != nil {
		return fail(err)
	}
	closers = append(closers, synth.Close)

	font, err := preview.LoadFont(cfg.FontPath)
	if err != nil {
		return fail(err)
	}
	renderer, err := preview.NewRenderer(font, config.PreviewFontSize, config.PreviewDPI, config.PreviewWidth, config.PreviewHeight)
	if err != nil {
		return fail(err)
	}
	closers = append(closers, renderer.Close)

	palette, err := preview.ParsePalette(config.Palette)
	if err != nil {
		return fail(err)
	}

	deps := pipeline.Deps{
		Articles:    article.NewFetcher(nil, article.OptionsFromConfig(cfg), log),
		Synthesizer: synth,
		Previewer:   renderer,
		Composer:    video.NewComposer(),
		Uploader:    uploader,
		Palette:     palette,
	}
	return deps, closeAll, nil
}

func newSynthesizer(ctx context.Context, cfg config.Config, log logrus.FieldLogger) (speech.Synthesizer, error) {
	switch cfg.SpeechEngine {
	case config.SpeechEngineGoogle:
		return speech.NewGoogle(ctx, log)
	case config.SpeechEngineEspeak:
		return speech.NewEspeak(cfg.EspeakPath, log)
	}
	return nil, fmt.Errorf("%w: %q", config.ErrUnknownSpeechEngine, cfg.SpeechEngine)
}

func newUploader(ctx context.Context, cfg config.Config, log logrus.FieldLogger, interactive bool) (upload.Uploader, error) {
	switch cfg.Uploader {
	case config.UploaderDrive:
		auth := upload.DriveAuth{
			Credentials: cfg.DriveCredentials,
			Token:       cfg.DriveToken,
			Interactive: interactive,
			Prompt: func(url string) {
				log.Infof("Open this URL to allow uploads to Google Drive: %s", url)
			},
		}
		client, err := auth.Client(ctx)
		if err != nil {
			if errors.Is(err, upload.ErrNoToken) {
				return nil, fmt.Errorf("%w, run once without --no-auth-prompt", err)
			}
			return nil, err
		}
		return upload.NewDrive(ctx, client, log)
	case config.UploaderS3:
		return upload.NewS3(ctx, upload.S3Config{
			Bucket:       cfg.S3.Bucket,
			Prefix:       cfg.S3.Prefix,
			Region:       cfg.S3.Region,
			Profile:      cfg.S3.Profile,
			UsePathStyle: cfg.S3.UsePathStyle,
		}, log)
	case config.UploaderNone:
		return upload.NewLocal(log), nil
	}
	return nil, fmt.Errorf("%w: %q", config.ErrUnknownUploader, cfg.Uploader)
}
