package entities

// Language is a supported language as presented to API callers
type Language struct {
	Name       string `json:"name"`
	ShortCode  string `json:"short_code"`  // used by translation services, e.g. "en"
	LocaleCode string `json:"locale_code"` // used by recognition and synthesis, e.g. "en-US"
}

// LanguageRegistry maps display names to languages. It is built once and never mutated.
type LanguageRegistry struct {
	ordered []Language
	byName  map[string]Language
}

// NewLanguageRegistry builds a registry from the given entries, keeping their order.
// Later entries with a duplicate name replace earlier ones.
func NewLanguageRegistry(languages []Language) *LanguageRegistry {
	r := &LanguageRegistry{
		ordered: make([]Language, 0, len(languages)),
		byName:  make(map[string]Language, len(languages)),
	}

	for _, lang := range languages {
		if _, exists := r.byName[lang.Name]; exists {
			for i := range r.ordered {
				if r.ordered[i].Name == lang.Name {
					r.ordered[i] = lang
				}
			}
		} else {
			r.ordered = append(r.ordered, lang)
		}
		r.byName[lang.Name] = lang
	}

	return r
}

// DefaultLanguages returns the languages supported by recognition, translation and synthesis
func DefaultLanguages() []Language {
	return []Language{
		{Name: "English (US)", ShortCode: "en", LocaleCode: "en-US"},
		{Name: "French (France)", ShortCode: "fr", LocaleCode: "fr-FR"},
		{Name: "Spanish", ShortCode: "es", LocaleCode: "es-ES"},
		{Name: "German", ShortCode: "de", LocaleCode: "de-DE"},
		{Name: "Italian", ShortCode: "it", LocaleCode: "it-IT"},
		{Name: "Japanese", ShortCode: "ja", LocaleCode: "ja-JP"},
		{Name: "Korean", ShortCode: "ko", LocaleCode: "ko-KR"},
		{Name: "Portuguese (Brazil)", ShortCode: "pt", LocaleCode: "pt-BR"},
		{Name: "Russian", ShortCode: "ru", LocaleCode: "ru-RU"},
		{Name: "Hindi", ShortCode: "hi", LocaleCode: "hi-IN"},
		{Name: "Indonesian", ShortCode: "id", LocaleCode: "id-ID"},
		{Name: "Turkish", ShortCode: "tr", LocaleCode: "tr-TR"},
		{Name: "Vietnamese", ShortCode: "vi", LocaleCode: "vi-VN"},
		{Name: "Thai", ShortCode: "th", LocaleCode: "th-TH"},
		{Name: "Ukrainian", ShortCode: "uk", LocaleCode: "uk-UA"},
		{Name: "Arabic", ShortCode: "ar", LocaleCode: "ar-EG"},
		{Name: "Chinese (Simplified)", ShortCode: "zh", LocaleCode: "cmn-Hans-CN"},
	}
}

// NewDefaultLanguageRegistry creates a registry holding DefaultLanguages
func NewDefaultLanguageRegistry() *LanguageRegistry {
	return NewLanguageRegistry(DefaultLanguages())
}

// Lookup finds a language by its exact display name. Matching is case-sensitive
// and does not trim whitespace.
func (r *LanguageRegistry) Lookup(name string) (Language, bool) {
	lang, ok := r.byName[name]
	return lang, ok
}

// All returns a copy of the registered languages in registration order
func (r *LanguageRegistry) All() []Language {
	out := make([]Language, len(r.ordered))
	copy(out, r.ordered)
	return out
}

// Len returns the number of registered languages
func (r *LanguageRegistry) Len() int {
	return len(r.ordered)
}
