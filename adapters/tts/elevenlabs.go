package tts

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/text/language"

	"github.com/satriahrh/lingua/server/adapters/audio"
	"github.com/satriahrh/lingua/server/domain/repositories"
)

const (
	defaultAPIBaseURL      = "https://api.elevenlabs.io/v1"
	defaultVoiceID         = "21m00Tcm4TlvDq8ikWAM" // Rachel
	defaultModelID         = "eleven_multilingual_v2"
	defaultOutputFormat    = "pcm_16000"
	defaultStability       = 0.5
	defaultSimilarityBoost = 0.75
	defaultRequestTimeout  = 60 * time.Second

	errorBodyLimit = 4096
)

// ElevenLabsConfig configures the ElevenLabs synthesizer. Only APIKey is required.
// OutputFormat must be pcm_<rate> or mp3_<rate>_<bitrate>; PCM is returned as WAV.
type ElevenLabsConfig struct {
	APIKey          string
	APIBaseURL      string
	VoiceID         string
	ModelID         string
	OutputFormat    string
	Stability       float64
	SimilarityBoost float64
}

// withDefaults fills every unset optional field
func (c ElevenLabsConfig) withDefaults() ElevenLabsConfig {
	if c.APIBaseURL == "" {
		c.APIBaseURL = defaultAPIBaseURL
	}
	c.APIBaseURL = strings.TrimRight(c.APIBaseURL, "/")
	if c.VoiceID == "" {
		c.VoiceID = defaultVoiceID
	}
	if c.ModelID == "" {
		c.ModelID = defaultModelID
	}
	if c.OutputFormat == "" {
		c.OutputFormat = defaultOutputFormat
	}
	if c.Stability == 0 {
		c.Stability = defaultStability
	}
	if c.SimilarityBoost == 0 {
		c.SimilarityBoost = defaultSimilarityBoost
	}
	return c
}

// NewElevenLabsConfigFromEnv reads the ELEVEN_LABS_* variables. Unparsable or
// out of range voice settings are left unset.
func NewElevenLabsConfigFromEnv() ElevenLabsConfig {
	return ElevenLabsConfig{
		APIKey:          os.Getenv("ELEVEN_LABS_API_KEY"),
		APIBaseURL:      os.Getenv("ELEVEN_LABS_API_BASE_URL"),
		VoiceID:         os.Getenv("ELEVEN_LABS_VOICE_ID"),
		ModelID:         os.Getenv("ELEVEN_LABS_MODEL_ID"),
		OutputFormat:    os.Getenv("ELEVEN_LABS_OUTPUT_FORMAT"),
		Stability:       unitFloatEnv("ELEVEN_LABS_STABILITY"),
		SimilarityBoost: unitFloatEnv("ELEVEN_LABS_SIMILARITY_BOOST"),
	}
}

// ValidateElevenLabsConfig validates the ElevenLabsConfig
func ValidateElevenLabsConfig(config ElevenLabsConfig) error {
	if config.APIKey == "" {
		return fmt.Errorf("ELEVEN_LABS_API_KEY is required for the elevenlabs synthesis provider")
	}
	if config.Stability < 0 || config.Stability > 1 {
		return fmt.Errorf("stability must be between 0 and 1, got %f", config.Stability)
	}
	if config.SimilarityBoost < 0 || config.SimilarityBoost > 1 {
		return fmt.Errorf("similarity boost must be between 0 and 1, got %f", config.SimilarityBoost)
	}
	if f := config.OutputFormat; f != "" && !strings.HasPrefix(f, "pcm_") && !strings.HasPrefix(f, "mp3_") {
		return fmt.Errorf("output format must be pcm_* or mp3_*, got %s", f)
	}
	return nil
}

// ElevenLabsTTS synthesizes speech with the ElevenLabs REST API
type ElevenLabsTTS struct {
	config     ElevenLabsConfig
	httpClient *http.Client
	logger     *zap.Logger
}

var _ repositories.TextToSpeech = (*ElevenLabsTTS)(nil)

type voiceSettings struct {
	Stability       float64 `json:"stability"`
	SimilarityBoost float64 `json:"similarity_boost"`
	UseSpeakerBoost bool    `json:"use_speaker_boost,omitempty"`
}

type synthesisRequest struct {
	Text                   string        `json:"text"`
	ModelID                string        `json:"model_id"`
	LanguageCode           string        `json:"language_code,omitempty"`
	VoiceSettings          voiceSettings `json:"voice_settings"`
	ApplyTextNormalization string        `json:"apply_text_normalization,omitempty"`
}

// NewElevenLabsTTS validates config and applies defaults
func NewElevenLabsTTS(config ElevenLabsConfig, logger *zap.Logger) (*ElevenLabsTTS, error) {
	if err := ValidateElevenLabsConfig(config); err != nil {
		return nil, err
	}

	config = config.withDefaults()
	logger.Info("ElevenLabs synthesizer configured",
		zap.String("apiBaseURL", config.APIBaseURL),
		zap.String("voiceID", config.VoiceID),
		zap.String("modelID", config.ModelID),
		zap.String("outputFormat", config.OutputFormat))

	return &ElevenLabsTTS{
		config:     config,
		httpClient: &http.Client{Timeout: defaultRequestTimeout},
		logger:     logger,
	}, nil
}

// SynthesizeAudio converts text to speech. PCM output is returned as a mono
// 16-bit WAV so callers can treat it like any other provider.
func (e *ElevenLabsTTS) SynthesizeAudio(ctx context.Context, text string, config repositories.VoiceConfig) ([]byte, error) {
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("text cannot be empty")
	}

	voiceID := e.config.VoiceID
	if config.Voice != "" {
		voiceID = config.Voice
	}

	payload, err := json.Marshal(synthesisRequest{
		Text:                   text,
		ModelID:                e.config.ModelID,
		LanguageCode:           baseLanguage(config.Language),
		ApplyTextNormalization: "auto",
		VoiceSettings: voiceSettings{
			Stability:       e.config.Stability,
			SimilarityBoost: e.config.SimilarityBoost,
			UseSpeakerBoost: true,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode synthesis request: %w", err)
	}

	endpoint := fmt.Sprintf("%s/text-to-speech/%s?output_format=%s&enable_logging=false",
		e.config.APIBaseURL, voiceID, e.config.OutputFormat)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to build synthesis request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("xi-api-key", e.config.APIKey)
	if _, ok := pcmSampleRate(e.config.OutputFormat); ok {
		req.Header.Set("Accept", "audio/pcm")
	} else {
		req.Header.Set("Accept", "audio/mpeg")
	}

	e.logger.Debug("Requesting ElevenLabs synthesis",
		zap.Int("textLength", len(text)),
		zap.String("voiceID", voiceID),
		zap.String("language", config.Language))

	resp, err := e.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("elevenlabs request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, errorBodyLimit))
		return nil, fmt.Errorf("elevenlabs returned %d: %s", resp.StatusCode, strings.TrimSpace(string(detail)))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read synthesized audio: %w", err)
	}

	if rate, ok := pcmSampleRate(e.config.OutputFormat); ok {
		return audio.EncodeWAV(body, rate, 1, 16), nil
	}
	return body, nil
}

func unitFloatEnv(key string) float64 {
	v, err := strconv.ParseFloat(os.Getenv(key), 64)
	if err != nil || v < 0 || v > 1 {
		return 0
	}
	return v
}

// pcmSampleRate extracts the rate from formats like "pcm_24000"
func pcmSampleRate(format string) (int, bool) {
	rateStr, ok := strings.CutPrefix(format, "pcm_")
	if !ok {
		return 0, false
	}
	rate, err := strconv.Atoi(rateStr)
	if err != nil || rate <= 0 {
		return 0, false
	}
	return rate, true
}

// baseLanguage reduces a locale such as "pt-BR" or "cmn-Hans-CN" to its ISO 639-1 base
func baseLanguage(locale string) string {
	if locale == "" {
		return ""
	}
	tag, err := language.Macro.Parse(locale)
	if err != nil {
		return ""
	}
	base, _ := tag.Base()
	return base.String()
}
