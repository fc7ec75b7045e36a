package translate

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/satriahrh/lingua/server/domain/repositories"
)

// MockTranslator is a placeholder implementation for translation
type MockTranslator struct {
	logger *zap.Logger
}

// NewMockTranslator creates a new mock translator
func NewMockTranslator(logger *zap.Logger) repositories.Translator {
	return &MockTranslator{
		logger: logger,
	}
}

// TranslateText tags the input with the target code instead of translating it
func (m *MockTranslator) TranslateText(ctx context.Context, text string, targetCode string) (string, error) {
	m.logger.Info("Processing mock translation",
		zap.String("target", targetCode),
		zap.Int("inputLength", len(text)))

	return fmt.Sprintf("[%s] %s", targetCode, text), nil
}
