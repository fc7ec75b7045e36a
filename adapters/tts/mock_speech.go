package tts

import (
	"context"

	"go.uber.org/zap"

	"github.com/satriahrh/lingua/server/adapters/audio"
	"github.com/satriahrh/lingua/server/domain/repositories"
)

const mockSampleRate = 16000

// MockTextToSpeech is a placeholder implementation for speech synthesis
type MockTextToSpeech struct {
	logger *zap.Logger
}

// NewMockTextToSpeech creates a new mock text-to-speech service
func NewMockTextToSpeech(logger *zap.Logger) repositories.TextToSpeech {
	return &MockTextToSpeech{
		logger: logger,
	}
}

// SynthesizeAudio returns a silent WAV whose length grows with the text, 50ms per character
func (m *MockTextToSpeech) SynthesizeAudio(ctx context.Context, text string, config repositories.VoiceConfig) ([]byte, error) {
	m.logger.Info("Processing mock text-to-speech",
		zap.Int("textLength", len(text)),
		zap.String("language", config.Language))

	samples := len([]rune(text)) * mockSampleRate / 20
	return audio.EncodeWAV(make([]byte, samples*2), mockSampleRate, 1, 16), nil
}
