package config

// Preview Image Constants
const (
	// PreviewWidth is the preview frame width in pixels
	PreviewWidth = 1280

	// PreviewHeight is the preview frame height in pixels
	PreviewHeight = 720

	// PreviewFontSize is the title size in points
	PreviewFontSize = 70

	// PreviewDPI is the resolution used to convert points to pixels
	PreviewDPI = 72
)

// Video Output Constants
const (
	// VideoFPS is the frame rate of the rendered video
	VideoFPS = 24

	// VideoEndPadding is added to the narration length, in seconds
	VideoEndPadding = 3.0

	// VideoCodec is the video encoding codec
	VideoCodec = "libx264"

	// AudioCodec is the audio encoding codec
	AudioCodec = "aac"

	// AudioBitrate is the audio quality bitrate
	AudioBitrate = "192k"

	// VideoPixelFormat keeps the output playable in common players
	VideoPixelFormat = "yuv420p"
)

// Artifact Constants
const (
	// AudioFile is the fixed name of the narration file inside the work dir
	AudioFile = "news_audio.mp3"

	// PreviewFile is the fixed name of the preview image inside the work dir
	PreviewFile = "news_image.jpg"
)

// Article Extraction Constants
const (
	// TitleSelector finds the headline block
	TitleSelector = ".blog_header"

	// BodySelector finds the article text block
	BodySelector = ".article_text"

	// ReplacePhrase is swapped for ReplaceWith in the article body
	ReplacePhrase = "Читайте по теме:"
	ReplaceWith   = "Listen to the topic:"

	// CallToAction closes every narration
	CallToAction = "Subscribe and like! It helps the channel."

	// UserAgent is sent with the article request
	UserAgent = "newsreel/1.0 (+https://github.com/newsreel)"
)

// Speech Constants
const (
	// SpeechEngineGoogle synthesizes with Google Cloud Text-to-Speech
	SpeechEngineGoogle = "google"

	// SpeechEngineEspeak synthesizes locally with espeak-ng
	SpeechEngineEspeak = "espeak"

	// GoogleSSMLLimit is the maximum SSML request size accepted by Google TTS
	GoogleSSMLLimit = 5000
)

// Upload Constants
const (
	UploaderDrive = "drive"
	UploaderS3    = "s3"
	UploaderNone  = "none"
)

// Extraction Fallback Constants
const (
	FallbackNone        = "none"
	FallbackReadability = "readability"
)
