package main

import (
	"context"
	"fmt"
	"io"

	"go.uber.org/zap"
	"google.golang.org/api/option"

	"github.com/satriahrh/lingua/server/adapters/stt"
	"github.com/satriahrh/lingua/server/adapters/translate"
	"github.com/satriahrh/lingua/server/adapters/tts"
	"github.com/satriahrh/lingua/server/domain/repositories"
	"github.com/satriahrh/lingua/server/internal/config"
)

// providers holds the external clients and whatever must be closed on shutdown
type providers struct {
	speechToText repositories.SpeechToText
	translator   repositories.Translator
	textToSpeech repositories.TextToSpeech
	closers      []io.Closer
}

func (p *providers) Close(logger *zap.Logger) {
	for _, c := range p.closers {
		if err := c.Close(); err != nil {
			logger.Warn("Failed to close client", zap.Error(err))
		}
	}
}

func newProviders(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*providers, error) {
	var opts []option.ClientOption
	if cfg.GoogleCredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.GoogleCredentialsFile))
	}

	p := &providers{}

	switch cfg.STTProvider {
	case config.ProviderGoogle:
		client, err := stt.NewGoogleSpeechToText(ctx, logger, opts...)
		if err != nil {
			p.Close(logger)
			return nil, err
		}
		p.speechToText = client
		p.closers = append(p.closers, client)
	default:
		p.speechToText = stt.NewMockSpeechToText(logger)
	}

	switch cfg.TranslateProvider {
	case config.ProviderGoogle:
		client, err := translate.NewGoogleTranslator(ctx, logger, opts...)
		if err != nil {
			p.Close(logger)
			return nil, err
		}
		p.translator = client
		p.closers = append(p.closers, client)
	case config.ProviderGemini:
		client, err := translate.NewGeminiTranslator(ctx, translate.NewGeminiConfigFromEnv(), logger)
		if err != nil {
			p.Close(logger)
			return nil, fmt.Errorf("failed to create Gemini translator: %w", err)
		}
		p.translator = client
	default:
		p.translator = translate.NewMockTranslator(logger)
	}

	switch cfg.TTSProvider {
	case config.ProviderGoogle:
		client, err := tts.NewGoogleTextToSpeech(ctx, logger, opts...)
		if err != nil {
			p.Close(logger)
			return nil, err
		}
		p.textToSpeech = client
		p.closers = append(p.closers, client)
	case config.ProviderElevenLabs:
		client, err := tts.NewElevenLabsTTS(tts.NewElevenLabsConfigFromEnv(), logger)
		if err != nil {
			p.Close(logger)
			return nil, fmt.Errorf("failed to create Eleven Labs TTS: %w", err)
		}
		p.textToSpeech = client
	default:
		p.textToSpeech = tts.NewMockTextToSpeech(logger)
	}

	logger.Info("Providers initialized",
		zap.String("stt", cfg.STTProvider),
		zap.String("translate", cfg.TranslateProvider),
		zap.String("tts", cfg.TTSProvider))

	return p, nil
}
