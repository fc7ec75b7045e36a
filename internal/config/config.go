package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Provider names accepted in *_PROVIDER variables
const (
	ProviderGoogle     = "google"
	ProviderGemini     = "gemini"
	ProviderElevenLabs = "elevenlabs"
	ProviderMock       = "mock"
)

// Config is the process configuration, read once at startup
type Config struct {
	Port   string
	AppEnv string

	ScratchDir      string
	MaxUploadSize   string // echo body limit syntax, e.g. "32M"
	UpstreamTimeout time.Duration

	// GoogleCredentialsFile is the service account key used by every Google client.
	// Empty means application default credentials.
	GoogleCredentialsFile string

	STTProvider       string
	TranslateProvider string
	TTSProvider       string

	FFmpegPath  string
	FFprobePath string

	VoiceGender   string
	VoiceEncoding string
}

// Load reads an optional .env file and then the environment
func Load() (*Config, error) {
	// A missing .env is fine, real deployments use the environment
	_ = godotenv.Load()

	cfg := &Config{
		Port:                  getEnv("PORT", "8080"),
		AppEnv:                getEnv("APP_ENV", "production"),
		ScratchDir:            getEnv("SCRATCH_DIR", "."),
		MaxUploadSize:         getEnv("MAX_UPLOAD_SIZE", "32M"),
		GoogleCredentialsFile: os.Getenv("GOOGLE_APPLICATION_CREDENTIALS"),
		STTProvider:           strings.ToLower(getEnv("STT_PROVIDER", ProviderGoogle)),
		TranslateProvider:     strings.ToLower(getEnv("TRANSLATE_PROVIDER", ProviderGoogle)),
		TTSProvider:           strings.ToLower(getEnv("TTS_PROVIDER", ProviderGoogle)),
		FFmpegPath:            os.Getenv("FFMPEG_PATH"),
		FFprobePath:           os.Getenv("FFPROBE_PATH"),
		VoiceGender:           strings.ToUpper(getEnv("TTS_VOICE_GENDER", "NEUTRAL")),
		VoiceEncoding:         strings.ToUpper(getEnv("TTS_AUDIO_ENCODING", "LINEAR16")),
	}

	if timeout := os.Getenv("UPSTREAM_TIMEOUT"); timeout != "" {
		d, err := time.ParseDuration(timeout)
		if err != nil {
			return nil, fmt.Errorf("invalid UPSTREAM_TIMEOUT %q: %w", timeout, err)
		}
		cfg.UpstreamTimeout = d
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks provider names and value ranges
func (c *Config) Validate() error {
	if err := oneOf("STT_PROVIDER", c.STTProvider, ProviderGoogle, ProviderMock); err != nil {
		return err
	}
	if err := oneOf("TRANSLATE_PROVIDER", c.TranslateProvider, ProviderGoogle, ProviderGemini, ProviderMock); err != nil {
		return err
	}
	if err := oneOf("TTS_PROVIDER", c.TTSProvider, ProviderGoogle, ProviderElevenLabs, ProviderMock); err != nil {
		return err
	}
	if err := oneOf("TTS_VOICE_GENDER", c.VoiceGender, "NEUTRAL", "FEMALE", "MALE"); err != nil {
		return err
	}
	if err := oneOf("TTS_AUDIO_ENCODING", c.VoiceEncoding, "LINEAR16", "MP3", "OGG_OPUS"); err != nil {
		return err
	}

	if c.UpstreamTimeout < 0 {
		return fmt.Errorf("UPSTREAM_TIMEOUT must not be negative, got %s", c.UpstreamTimeout)
	}

	if c.Port == "" {
		return fmt.Errorf("PORT must not be empty")
	}

	return nil
}

// IsDevelopment reports whether APP_ENV selects development logging
func (c *Config) IsDevelopment() bool {
	return c.AppEnv == "development" || c.AppEnv == "dev"
}

// UsesGoogle reports whether any configured provider is a Google Cloud client
func (c *Config) UsesGoogle() bool {
	return c.STTProvider == ProviderGoogle || c.TranslateProvider == ProviderGoogle || c.TTSProvider == ProviderGoogle
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func oneOf(key, value string, allowed ...string) error {
	for _, a := range allowed {
		if value == a {
			return nil
		}
	}
	return fmt.Errorf("invalid %s %q, expected one of %s", key, value, strings.Join(allowed, ", "))
}
