package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// AppName is used for XDG directory paths
const AppName = "newsreel"

// EnvPrefix prefixes every environment override
const EnvPrefix = "NEWSREEL_"

var (
	ErrUnknownSpeechEngine = errors.New("unknown speech engine")
	ErrUnknownUploader     = errors.New("unknown uploader")
	ErrUnknownFallback     = errors.New("unknown extraction fallback")
	ErrMissingBucket       = errors.New("s3 uploader requires a bucket")
)

// Config holds the runtime settings of a single pipeline run
type Config struct {
	WorkDir  string `yaml:"work_dir"`
	FontPath string `yaml:"font_path"`

	TitleSelector string `yaml:"title_selector"`
	BodySelector  string `yaml:"body_selector"`
	ReplacePhrase string `yaml:"replace_phrase"`
	ReplaceWith   string `yaml:"replace_with"`
	CallToAction  string `yaml:"call_to_action"`
	UserAgent     string `yaml:"user_agent"`
	Fallback      string `yaml:"fallback"`

	SpeechEngine string `yaml:"speech_engine"`
	EspeakPath   string `yaml:"espeak_path"`

	Uploader         string `yaml:"uploader"`
	DriveCredentials string `yaml:"drive_credentials"`
	DriveToken       string `yaml:"drive_token"`
	S3               S3     `yaml:"s3"`

	LogLevel string `yaml:"log_level"`
	LogFile  string `yaml:"log_file"`
}

// S3 selects the bucket that receives videos when the s3 uploader is used
type S3 struct {
	Bucket       string `yaml:"bucket"`
	Prefix       string `yaml:"prefix"`
	Region       string `yaml:"region"`
	Profile      string `yaml:"profile"`
	UsePathStyle bool   `yaml:"use_path_style"`
}

// Default returns the compiled-in configuration
func Default() Config {
	return Config{
		WorkDir:          ".",
		TitleSelector:    TitleSelector,
		BodySelector:     BodySelector,
		ReplacePhrase:    ReplacePhrase,
		ReplaceWith:      ReplaceWith,
		CallToAction:     CallToAction,
		UserAgent:        UserAgent,
		Fallback:         FallbackNone,
		SpeechEngine:     SpeechEngineGoogle,
		Uploader:         UploaderDrive,
		DriveCredentials: "credentials.json",
		DriveToken:       filepath.Join(xdg.DataHome, AppName, "drive_token.json"),
		LogLevel:         "info",
	}
}

// DefaultConfigPath is where Load looks when no explicit file is given
func DefaultConfigPath() string {
	return filepath.Join(xdg.ConfigHome, AppName, "config.yaml")
}

// Load layers the defaults, the YAML file and the environment. An explicit
// path must exist; the default path is optional.
func Load(path string) (Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = DefaultConfigPath()
	}

	if err := loadFile(path, &cfg); err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			// no config file, defaults apply
		} else {
			return Config{}, fmt.Errorf("failed to load config %s: %w", path, err)
		}
	}

	// Load environment variables from .env if present (non-fatal if missing)
	_ = godotenv.Load()
	applyEnv(&cfg)

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func loadFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}

func applyEnv(cfg *Config) {
	overrides := map[string]*string{
		"WORK_DIR":          &cfg.WorkDir,
		"FONT_PATH":         &cfg.FontPath,
		"TITLE_SELECTOR":    &cfg.TitleSelector,
		"BODY_SELECTOR":     &cfg.BodySelector,
		"USER_AGENT":        &cfg.UserAgent,
		"FALLBACK":          &cfg.Fallback,
		"SPEECH_ENGINE":     &cfg.SpeechEngine,
		"ESPEAK_PATH":       &cfg.EspeakPath,
		"UPLOADER":          &cfg.Uploader,
		"DRIVE_CREDENTIALS": &cfg.DriveCredentials,
		"DRIVE_TOKEN":       &cfg.DriveToken,
		"S3_BUCKET":         &cfg.S3.Bucket,
		"S3_PREFIX":         &cfg.S3.Prefix,
		"S3_REGION":         &cfg.S3.Region,
		"S3_PROFILE":        &cfg.S3.Profile,
		"LOG_LEVEL":         &cfg.LogLevel,
		"LOG_FILE":          &cfg.LogFile,
	}
	for key, dst := range overrides {
		if v := strings.TrimSpace(os.Getenv(EnvPrefix + key)); v != "" {
			*dst = v
		}
	}
	if v := strings.TrimSpace(os.Getenv(EnvPrefix + "S3_USE_PATH_STYLE")); v != "" {
		cfg.S3.UsePathStyle = strings.EqualFold(v, "true")
	}
}

// Validate rejects settings that would only fail halfway through a run
func (c Config) Validate() error {
	switch c.SpeechEngine {
	case SpeechEngineGoogle, SpeechEngineEspeak:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownSpeechEngine, c.SpeechEngine)
	}

	switch c.Uploader {
	case UploaderDrive, UploaderNone:
	case UploaderS3:
		if strings.TrimSpace(c.S3.Bucket) == "" {
			return ErrMissingBucket
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownUploader, c.Uploader)
	}

	switch c.Fallback {
	case FallbackNone, FallbackReadability:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFallback, c.Fallback)
	}
	return nil
}

// AudioPath is the narration file inside the work dir
func (c Config) AudioPath() string {
	return filepath.Join(c.WorkDir, AudioFile)
}

// PreviewPath is the preview image inside the work dir
func (c Config) PreviewPath() string {
	return filepath.Join(c.WorkDir, PreviewFile)
}
