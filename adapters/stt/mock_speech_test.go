package stt_test

import (
	"context"
	"testing"

	"go.uber.org/zap"

	"github.com/satriahrh/lingua/server/adapters/stt"
	"github.com/satriahrh/lingua/server/domain/repositories"
)

var _ repositories.SpeechToText = &stt.GoogleSpeechToText{}

func TestMockSpeechToText_Silence(t *testing.T) {
	mock := stt.NewMockSpeechToText(zap.NewNop())

	text, err := mock.TranscribeAudio(context.Background(), make([]byte, 44), repositories.AudioConfig{
		SampleRate: 16000,
		Encoding:   "LINEAR16",
		Language:   "en-US",
	})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if text != "" {
		t.Errorf("Expected empty transcript, got '%s'", text)
	}
}

func TestMockSpeechToText_Speech(t *testing.T) {
	mock := stt.NewMockSpeechToText(zap.NewNop())

	text, err := mock.TranscribeAudio(context.Background(), make([]byte, 2000), repositories.AudioConfig{})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if text != "Hello world" {
		t.Errorf("Expected 'Hello world', got '%s'", text)
	}
}
