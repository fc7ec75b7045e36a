package translate

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"go.uber.org/zap"
	"google.golang.org/genai"

	"github.com/satriahrh/lingua/server/domain/repositories"
)

const (
	defaultGeminiModel          = "gemini-2.0-flash"
	defaultGeminiTimeoutSeconds = 30
)

// GeminiConfig holds configuration for the Gemini translator
// Required fields:
// - APIKey: Google AI API key
// Optional fields with defaults:
// - Model: model name (default: "gemini-2.0-flash")
// - TimeoutSeconds: per request timeout (default: 30)
type GeminiConfig struct {
	APIKey         string
	Model          string
	TimeoutSeconds int
}

// GeminiTranslator implements Translator by prompting a Gemini model
type GeminiTranslator struct {
	client         *genai.Client
	model          string
	timeoutSeconds int
	logger         *zap.Logger
}

var _ repositories.Translator = (*GeminiTranslator)(nil)

// NewGeminiConfigFromEnv reads GEMINI_API_KEY, GEMINI_MODEL and GEMINI_TIMEOUT_SECONDS
func NewGeminiConfigFromEnv() GeminiConfig {
	config := GeminiConfig{
		APIKey: os.Getenv("GEMINI_API_KEY"),
		Model:  os.Getenv("GEMINI_MODEL"),
	}

	if timeout := os.Getenv("GEMINI_TIMEOUT_SECONDS"); timeout != "" {
		var seconds int
		if _, err := fmt.Sscanf(timeout, "%d", &seconds); err == nil && seconds > 0 {
			config.TimeoutSeconds = seconds
		}
	}

	return config
}

// ValidateGeminiConfig validates the GeminiConfig
func ValidateGeminiConfig(config GeminiConfig) error {
	if config.APIKey == "" {
		return fmt.Errorf("GEMINI_API_KEY is required for the gemini translation provider")
	}

	if config.TimeoutSeconds < 0 {
		return fmt.Errorf("timeout must be positive, got %d", config.TimeoutSeconds)
	}

	return nil
}

// NewGeminiTranslator creates a Gemini client for translation
func NewGeminiTranslator(ctx context.Context, config GeminiConfig, logger *zap.Logger) (*GeminiTranslator, error) {
	if err := ValidateGeminiConfig(config); err != nil {
		return nil, err
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  config.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	model := config.Model
	if model == "" {
		model = defaultGeminiModel
		logger.Info("Using default model", zap.String("model", model))
	}

	timeoutSeconds := config.TimeoutSeconds
	if timeoutSeconds == 0 {
		timeoutSeconds = defaultGeminiTimeoutSeconds
	}

	return &GeminiTranslator{
		client:         client,
		model:          model,
		timeoutSeconds: timeoutSeconds,
		logger:         logger,
	}, nil
}

// TranslateText asks the model for a bare translation of text
func (g *GeminiTranslator) TranslateText(ctx context.Context, text string, targetCode string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, time.Duration(g.timeoutSeconds)*time.Second)
	defer cancel()

	contents := []*genai.Content{
		genai.NewContentFromText(buildTranslationPrompt(text, targetCode), genai.RoleUser),
	}
	config := &genai.GenerateContentConfig{
		Temperature: genai.Ptr(float32(0)),
	}

	response, err := g.client.Models.GenerateContent(ctx, g.model, contents, config)
	if err != nil {
		return "", fmt.Errorf("failed to generate translation: %w", err)
	}

	translated, err := extractText(response)
	if err != nil {
		return "", err
	}

	g.logger.Info("Translation completed",
		zap.String("model", g.model),
		zap.String("target", targetCode),
		zap.Int("inputLength", len(text)))

	return translated, nil
}

func buildTranslationPrompt(text, targetCode string) string {
	var sb strings.Builder
	sb.WriteString("Translate the text between the <text> tags into the language with ISO 639-1 code ")
	sb.WriteString(targetCode)
	sb.WriteString(". Reply with the translation only, without quotes, notes or explanations.\n<text>\n")
	sb.WriteString(text)
	sb.WriteString("\n</text>")
	return sb.String()
}

func extractText(response *genai.GenerateContentResponse) (string, error) {
	if response == nil || len(response.Candidates) == 0 {
		return "", fmt.Errorf("no content generated")
	}

	content := response.Candidates[0].Content
	if content == nil {
		return "", fmt.Errorf("no content generated")
	}

	var responseText string
	for _, part := range content.Parts {
		if part != nil && part.Text != "" {
			responseText += part.Text
		}
	}

	return strings.TrimSpace(responseText), nil
}
