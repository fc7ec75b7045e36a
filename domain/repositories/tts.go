package repositories

import "context"

// TextToSpeech abstracts speech synthesis services
type TextToSpeech interface {
	// SynthesizeAudio converts text to encoded audio bytes
	SynthesizeAudio(ctx context.Context, text string, config VoiceConfig) ([]byte, error)
}

// VoiceConfig represents voice configuration for TTS
type VoiceConfig struct {
	Language string `json:"language"` // locale code, e.g. "en-US"
	Gender   string `json:"gender"`   // NEUTRAL, FEMALE or MALE
	Encoding string `json:"encoding"` // LINEAR16, MP3 or OGG_OPUS
	Voice    string `json:"voice,omitempty"`
}
