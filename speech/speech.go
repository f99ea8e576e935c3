// Package speech turns an SSML document into an MP3 narration file.
//
// Two engines are available: Google Cloud Text-to-Speech, and espeak-ng for
// offline runs. Both read the same markup and the same voice presets.
package speech

import (
	"context"
	"math/rand"

	"newsreel/ssml"
)

// NormalRate is the speaking rate, in words per minute, that engines treat
// as their unscaled default.
const NormalRate = 175

// Voice is a named speaker and the rate it reads at.
type Voice struct {
	// Name is the Google Cloud voice name
	Name string
	// Espeak is the espeak-ng voice and variant
	Espeak       string
	LanguageCode string
	// Rate in words per minute
	Rate int
}

// Presets are the two narrators a run chooses between.
var Presets = []Voice{
	{Name: "ru-RU-Wavenet-D", Espeak: "ru", LanguageCode: "ru-RU", Rate: 175},
	{Name: "ru-RU-Wavenet-C", Espeak: "ru+f3", LanguageCode: "ru-RU", Rate: 165},
}

// PickVoice chooses uniformly between the presets.
func PickVoice(rng *rand.Rand) Voice {
	return Presets[rng.Intn(len(Presets))]
}

// SpeakingRate scales Rate against NormalRate.
func (v Voice) SpeakingRate() float64 {
	if v.Rate <= 0 {
		return 1.0
	}
	return float64(v.Rate) / NormalRate
}

// Synthesizer renders a document with one voice into outPath.
type Synthesizer interface {
	Synthesize(ctx context.Context, doc ssml.Document, voice Voice, outPath string) error
	Close() error
}
