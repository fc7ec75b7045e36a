package repositories

import "context"

// Translator abstracts text translation services
type Translator interface {
	// TranslateText translates text into the language identified by targetCode (e.g. "fr")
	TranslateText(ctx context.Context, text string, targetCode string) (string, error)
}
