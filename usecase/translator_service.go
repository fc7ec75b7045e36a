package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"github.com/satriahrh/lingua/server/domain/entities"
	"github.com/satriahrh/lingua/server/domain/repositories"
)

const (
	// Scratch artifacts keep fixed names, so concurrent requests share and
	// overwrite them.
	uploadFilePrefix  = "input_"
	convertedFileName = "converted.wav"
	outputFileName    = "output.wav"

	recognitionEncoding = "LINEAR16"
)

// ErrUnsupportedLanguage is returned when a language name is not in the registry
var ErrUnsupportedLanguage = errors.New("unsupported language")

// TranslatorOptions tunes the service; zero values are usable
type TranslatorOptions struct {
	// ScratchDir holds uploads, normalized audio and synthesized output. Defaults to ".".
	ScratchDir string
	// Voice is the base voice configuration; Language is filled per request.
	Voice repositories.VoiceConfig
	// UpstreamTimeout bounds each provider call. Zero means no bound.
	UpstreamTimeout time.Duration
}

// TranslatorService orchestrates recognition, translation and synthesis
type TranslatorService struct {
	languages       *entities.LanguageRegistry
	speechToText    repositories.SpeechToText
	translator      repositories.Translator
	textToSpeech    repositories.TextToSpeech
	normalizer      repositories.AudioNormalizer
	scratchDir      string
	voice           repositories.VoiceConfig
	upstreamTimeout time.Duration
	logger          *zap.Logger
}

// NewTranslatorService creates a new translator service
func NewTranslatorService(
	languages *entities.LanguageRegistry,
	stt repositories.SpeechToText,
	translator repositories.Translator,
	tts repositories.TextToSpeech,
	normalizer repositories.AudioNormalizer,
	opts TranslatorOptions,
	logger *zap.Logger,
) *TranslatorService {
	scratchDir := opts.ScratchDir
	if scratchDir == "" {
		scratchDir = "."
	}

	voice := opts.Voice
	if voice.Gender == "" {
		voice.Gender = "NEUTRAL"
	}
	if voice.Encoding == "" {
		voice.Encoding = "LINEAR16"
	}

	return &TranslatorService{
		languages:       languages,
		speechToText:    stt,
		translator:      translator,
		textToSpeech:    tts,
		normalizer:      normalizer,
		scratchDir:      scratchDir,
		voice:           voice,
		upstreamTimeout: opts.UpstreamTimeout,
		logger:          logger,
	}
}

// Languages lists the supported languages in registry order
func (s *TranslatorService) Languages() []entities.Language {
	return s.languages.All()
}

// Recognize stores the upload, normalizes it to 16 kHz mono PCM and transcribes it.
// An empty transcript means no speech was detected.
func (s *TranslatorService) Recognize(ctx context.Context, filename string, audio io.Reader, sourceLanguage string) (string, error) {
	lang, err := s.lookup(sourceLanguage)
	if err != nil {
		return "", err
	}

	uploadPath := s.uploadPath(filename)
	if err := writeFile(uploadPath, audio); err != nil {
		return "", fmt.Errorf("failed to store upload: %w", err)
	}

	convertedPath := filepath.Join(s.scratchDir, convertedFileName)
	if err := s.normalizer.Normalize(ctx, uploadPath, convertedPath); err != nil {
		return "", fmt.Errorf("audio normalization failed: %w", err)
	}

	sampleRate, err := s.normalizer.SampleRate(ctx, convertedPath)
	if err != nil {
		return "", fmt.Errorf("failed to read sample rate: %w", err)
	}

	audioData, err := os.ReadFile(convertedPath)
	if err != nil {
		return "", fmt.Errorf("failed to read normalized audio: %w", err)
	}

	s.logger.Info("Recognizing speech",
		zap.String("language", lang.LocaleCode),
		zap.String("upload", uploadPath),
		zap.Int("sampleRate", sampleRate),
		zap.Int("audioSize", len(audioData)))

	callCtx, cancel := s.upstreamContext(ctx)
	defer cancel()

	transcript, err := s.speechToText.TranscribeAudio(callCtx, audioData, repositories.AudioConfig{
		SampleRate: sampleRate,
		Encoding:   recognitionEncoding,
		Language:   lang.LocaleCode,
	})
	if err != nil {
		return "", fmt.Errorf("transcription failed: %w", err)
	}

	return transcript, nil
}

// Translate translates text into the target language
func (s *TranslatorService) Translate(ctx context.Context, text string, targetLanguage string) (string, error) {
	lang, err := s.lookup(targetLanguage)
	if err != nil {
		return "", err
	}

	s.logger.Info("Translating text",
		zap.String("target", lang.ShortCode),
		zap.Int("textLength", len(text)))

	callCtx, cancel := s.upstreamContext(ctx)
	defer cancel()

	translated, err := s.translator.TranslateText(callCtx, text, lang.ShortCode)
	if err != nil {
		return "", fmt.Errorf("translation failed: %w", err)
	}

	return translated, nil
}

// Synthesize speaks text in the target language and writes the audio to the fixed
// output file, replacing any previous result. It returns the file path.
func (s *TranslatorService) Synthesize(ctx context.Context, text string, targetLanguage string) (string, error) {
	lang, err := s.lookup(targetLanguage)
	if err != nil {
		return "", err
	}

	voice := s.voice
	voice.Language = lang.LocaleCode

	s.logger.Info("Synthesizing speech",
		zap.String("language", voice.Language),
		zap.String("gender", voice.Gender),
		zap.Int("textLength", len(text)))

	callCtx, cancel := s.upstreamContext(ctx)
	defer cancel()

	audioData, err := s.textToSpeech.SynthesizeAudio(callCtx, text, voice)
	if err != nil {
		return "", fmt.Errorf("text-to-speech failed: %w", err)
	}

	outputPath := filepath.Join(s.scratchDir, outputFileName)
	if err := os.WriteFile(outputPath, audioData, 0644); err != nil {
		return "", fmt.Errorf("failed to write synthesized audio: %w", err)
	}

	s.logger.Info("Synthesis completed",
		zap.String("output", outputPath),
		zap.Int("audioSize", len(audioData)))

	return outputPath, nil
}

func (s *TranslatorService) lookup(name string) (entities.Language, error) {
	lang, ok := s.languages.Lookup(name)
	if !ok {
		s.logger.Warn("Rejected unsupported language", zap.String("language", name))
		return entities.Language{}, fmt.Errorf("%w: %q", ErrUnsupportedLanguage, name)
	}
	return lang, nil
}

// uploadPath names the scratch file after the client supplied filename. Only the
// base name is kept so uploads cannot escape the scratch directory.
func (s *TranslatorService) uploadPath(filename string) string {
	name := filepath.Base(filepath.Clean("/" + filename))
	if name == "/" || name == "." || name == string(filepath.Separator) {
		name = "upload"
	}
	return filepath.Join(s.scratchDir, uploadFilePrefix+name)
}

func (s *TranslatorService) upstreamContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.upstreamTimeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, s.upstreamTimeout)
}

func writeFile(path string, r io.Reader) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}
