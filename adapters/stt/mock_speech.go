package stt

import (
	"context"

	"go.uber.org/zap"

	"github.com/satriahrh/lingua/server/domain/repositories"
)

// MockSpeechToText is a placeholder implementation for speech recognition
type MockSpeechToText struct {
	logger *zap.Logger
}

// NewMockSpeechToText creates a new mock speech-to-text service
func NewMockSpeechToText(logger *zap.Logger) repositories.SpeechToText {
	return &MockSpeechToText{
		logger: logger,
	}
}

// TranscribeAudio implements repositories.SpeechToText
func (s *MockSpeechToText) TranscribeAudio(ctx context.Context, audioData []byte, config repositories.AudioConfig) (string, error) {
	s.logger.Info("Processing mock speech-to-text",
		zap.Int("audioSize", len(audioData)),
		zap.Int("sampleRate", config.SampleRate),
		zap.String("encoding", config.Encoding),
		zap.String("language", config.Language))

	// Mock transcription based on audio size; a bare WAV header is treated as silence
	switch {
	case len(audioData) > 64000:
		return "Hello, this is a longer mock transcription of the uploaded audio.", nil
	case len(audioData) > 1000:
		return "Hello world", nil
	case len(audioData) > 44:
		return "Hi", nil
	default:
		return "", nil
	}
}
