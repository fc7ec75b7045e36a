package stt

import (
	"testing"

	"cloud.google.com/go/speech/apiv1/speechpb"
)

func TestJoinTranscripts(t *testing.T) {
	resp := &speechpb.RecognizeResponse{
		Results: []*speechpb.SpeechRecognitionResult{
			{Alternatives: []*speechpb.SpeechRecognitionAlternative{
				{Transcript: "hello there", Confidence: 0.9},
				{Transcript: "hollow there", Confidence: 0.4},
			}},
			{Alternatives: nil},
			{Alternatives: []*speechpb.SpeechRecognitionAlternative{
				{Transcript: " general kenobi"},
			}},
		},
	}

	got := joinTranscripts(resp)
	if got != "hello there general kenobi" {
		t.Errorf("Expected 'hello there general kenobi', got '%s'", got)
	}
}

func TestJoinTranscripts_NoSpeech(t *testing.T) {
	if got := joinTranscripts(&speechpb.RecognizeResponse{}); got != "" {
		t.Errorf("Expected empty transcript, got '%s'", got)
	}

	if got := joinTranscripts(nil); got != "" {
		t.Errorf("Expected empty transcript for nil response, got '%s'", got)
	}
}

func TestGetAudioEncoding(t *testing.T) {
	tests := map[string]speechpb.RecognitionConfig_AudioEncoding{
		"LINEAR16":  speechpb.RecognitionConfig_LINEAR16,
		"WAV":       speechpb.RecognitionConfig_LINEAR16,
		"FLAC":      speechpb.RecognitionConfig_FLAC,
		"OGG_OPUS":  speechpb.RecognitionConfig_OGG_OPUS,
		"WEBM_OPUS": speechpb.RecognitionConfig_WEBM_OPUS,
	}

	for in, want := range tests {
		got, err := getAudioEncoding(in)
		if err != nil {
			t.Errorf("getAudioEncoding(%s): unexpected error %v", in, err)
		}
		if got != want {
			t.Errorf("getAudioEncoding(%s): expected %v, got %v", in, want, got)
		}
	}

	if _, err := getAudioEncoding("MP3"); err == nil {
		t.Error("Expected error for unsupported encoding")
	}
}
