package api

import "github.com/satriahrh/lingua/server/domain/entities"

// WelcomeResponse is served from the root path
type WelcomeResponse struct {
	Message            string   `json:"message"`
	AvailableEndpoints []string `json:"available_endpoints"`
}

// RecognizeResponse represents the speech-to-text result
type RecognizeResponse struct {
	RecognizedText string `json:"recognized_text"`
}

// TranslateResponse represents the translation result
type TranslateResponse struct {
	TranslatedText string `json:"translated_text"`
}

// SynthesizeResponse points at the synthesized audio file
type SynthesizeResponse struct {
	AudioFile string `json:"audio_file"`
}

// LanguagesResponse lists the supported languages
type LanguagesResponse struct {
	Languages []entities.Language `json:"languages"`
}

// ErrorResponse represents an error response. Details and Traceback are only
// set for server side failures.
type ErrorResponse struct {
	Error     string   `json:"error"`
	Details   string   `json:"details,omitempty"`
	Traceback []string `json:"traceback,omitempty"`
}
