package translate

import (
	"context"
	"fmt"

	"cloud.google.com/go/translate"
	"go.uber.org/zap"
	"golang.org/x/text/language"
	"google.golang.org/api/option"

	"github.com/satriahrh/lingua/server/domain/repositories"
)

// GoogleTranslator implements Translator with the Cloud Translation v2 API
type GoogleTranslator struct {
	client *translate.Client
	logger *zap.Logger
}

var _ repositories.Translator = (*GoogleTranslator)(nil)

// NewGoogleTranslator creates a Cloud Translation client
func NewGoogleTranslator(ctx context.Context, logger *zap.Logger, opts ...option.ClientOption) (*GoogleTranslator, error) {
	client, err := translate.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create translate client: %w", err)
	}

	return &GoogleTranslator{
		client: client,
		logger: logger,
	}, nil
}

// TranslateText translates text, letting the service detect the source language
func (g *GoogleTranslator) TranslateText(ctx context.Context, text string, targetCode string) (string, error) {
	target, err := language.Parse(targetCode)
	if err != nil {
		return "", fmt.Errorf("failed to parse target language %q: %w", targetCode, err)
	}

	translations, err := g.client.Translate(ctx, []string{text}, target, nil)
	if err != nil {
		return "", fmt.Errorf("failed to translate text: %w", err)
	}
	if len(translations) == 0 {
		return "", fmt.Errorf("translation service returned no results")
	}

	g.logger.Info("Translation completed",
		zap.String("target", target.String()),
		zap.String("detectedSource", translations[0].Source.String()),
		zap.Int("inputLength", len(text)))

	return translations[0].Text, nil
}

// Close releases the underlying HTTP client
func (g *GoogleTranslator) Close() error {
	return g.client.Close()
}
