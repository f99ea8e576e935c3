package speech

import (
	"context"
	"fmt"
	"os"

	"newsreel/config"
	"newsreel/ssml"

	texttospeech "cloud.google.com/go/texttospeech/apiv1"
	"cloud.google.com/go/texttospeech/apiv1/texttospeechpb"
	"github.com/sirupsen/logrus"
	"google.golang.org/api/option"
)

// Google synthesizes through Google Cloud Text-to-Speech.
type Google struct {
	client *texttospeech.Client
	limit  int
	log    logrus.FieldLogger
}

// NewGoogle opens a TTS client. Credentials come from the standard Google
// application default chain unless opts say otherwise.
func NewGoogle(ctx context.Context, log logrus.FieldLogger, opts ...option.ClientOption) (*Google, error) {
	client, err := texttospeech.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create TTS client: %w", err)
	}
	return &Google{client: client, limit: config.GoogleSSMLLimit, log: log}, nil
}

// Synthesize sends the document in request-sized chunks and concatenates
// the returned MP3 frames into outPath.
func (g *Google) Synthesize(ctx context.Context, doc ssml.Document, voice Voice, outPath string) error {
	out, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("failed to create audio file: %w", err)
	}

	chunks := doc.Chunks(g.limit)
	for i, chunk := range chunks {
		resp, err := g.client.SynthesizeSpeech(ctx, synthesisRequest(chunk, voice))
		if err != nil {
			out.Close()
			return fmt.Errorf("failed to synthesize chunk %d/%d: %w", i+1, len(chunks), err)
		}
		if _, err := out.Write(resp.AudioContent); err != nil {
			out.Close()
			return fmt.Errorf("failed to write audio: %w", err)
		}
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("failed to write audio: %w", err)
	}

	g.log.WithFields(logrus.Fields{"file": outPath, "voice": voice.Name, "chunks": len(chunks)}).Info("Text voiced")
	return nil
}

// Close releases the client connection.
func (g *Google) Close() error {
	return g.client.Close()
}

func synthesisRequest(markup string, voice Voice) *texttospeechpb.SynthesizeSpeechRequest {
	return &texttospeechpb.SynthesizeSpeechRequest{
		Input: &texttospeechpb.SynthesisInput{
			InputSource: &texttospeechpb.SynthesisInput_Ssml{Ssml: markup},
		},
		Voice: &texttospeechpb.VoiceSelectionParams{
			LanguageCode: voice.LanguageCode,
			Name:         voice.Name,
		},
		AudioConfig: &texttospeechpb.AudioConfig{
			AudioEncoding: texttospeechpb.AudioEncoding_MP3,
			SpeakingRate:  voice.SpeakingRate(),
		},
	}
}
