package entities

import "testing"

func TestDefaultLanguageRegistry(t *testing.T) {
	registry := NewDefaultLanguageRegistry()

	if registry.Len() != 17 {
		t.Errorf("Expected 17 languages, got %d", registry.Len())
	}

	lang, ok := registry.Lookup("French (France)")
	if !ok {
		t.Fatal("Expected French (France) to be registered")
	}

	if lang.ShortCode != "fr" {
		t.Errorf("Expected short code fr, got %s", lang.ShortCode)
	}

	if lang.LocaleCode != "fr-FR" {
		t.Errorf("Expected locale code fr-FR, got %s", lang.LocaleCode)
	}

	chinese, ok := registry.Lookup("Chinese (Simplified)")
	if !ok {
		t.Fatal("Expected Chinese (Simplified) to be registered")
	}

	if chinese.LocaleCode != "cmn-Hans-CN" {
		t.Errorf("Expected locale code cmn-Hans-CN, got %s", chinese.LocaleCode)
	}
}

func TestLanguageRegistry_LookupIsExact(t *testing.T) {
	registry := NewDefaultLanguageRegistry()

	for _, name := range []string{"french (france)", "French", " French (France)", "French (France) ", "fr", "fr-FR", ""} {
		if _, ok := registry.Lookup(name); ok {
			t.Errorf("Expected lookup of %q to fail", name)
		}
	}
}

func TestLanguageRegistry_AllKeepsOrder(t *testing.T) {
	registry := NewDefaultLanguageRegistry()
	all := registry.All()

	if all[0].Name != "English (US)" {
		t.Errorf("Expected first language English (US), got %s", all[0].Name)
	}

	if all[len(all)-1].Name != "Chinese (Simplified)" {
		t.Errorf("Expected last language Chinese (Simplified), got %s", all[len(all)-1].Name)
	}

	// Mutating the returned slice must not leak into the registry
	all[0].ShortCode = "xx"
	lang, _ := registry.Lookup("English (US)")
	if lang.ShortCode != "en" {
		t.Errorf("Expected registry to be unaffected, got short code %s", lang.ShortCode)
	}
}

func TestLanguageRegistry_DuplicateNameReplaces(t *testing.T) {
	registry := NewLanguageRegistry([]Language{
		{Name: "Spanish", ShortCode: "es", LocaleCode: "es-ES"},
		{Name: "German", ShortCode: "de", LocaleCode: "de-DE"},
		{Name: "Spanish", ShortCode: "es", LocaleCode: "es-MX"},
	})

	if registry.Len() != 2 {
		t.Errorf("Expected 2 languages, got %d", registry.Len())
	}

	lang, _ := registry.Lookup("Spanish")
	if lang.LocaleCode != "es-MX" {
		t.Errorf("Expected es-MX, got %s", lang.LocaleCode)
	}

	if registry.All()[0].LocaleCode != "es-MX" {
		t.Errorf("Expected replaced entry to keep its position")
	}
}

func TestDefaultLanguages_CodesArePopulated(t *testing.T) {
	seen := make(map[string]bool)
	for _, lang := range DefaultLanguages() {
		if lang.Name == "" || lang.ShortCode == "" || lang.LocaleCode == "" {
			t.Errorf("Language entry has empty field: %+v", lang)
		}
		if seen[lang.Name] {
			t.Errorf("Duplicate language name %s", lang.Name)
		}
		seen[lang.Name] = true
	}
}
