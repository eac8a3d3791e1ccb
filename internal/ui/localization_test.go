package ui

import "testing"

func TestAllLanguagesCoverAllKeys(t *testing.T) {
	l := NewLocalization()

	english := l.texts["en"]
	if len(english) == 0 {
		t.Fatal("English texts must not be empty")
	}

	for lang, texts := range l.texts {
		for key := range english {
			if _, found := texts[key]; !found {
				t.Errorf("Language %s is missing key %s", lang, key)
			}
		}
		if len(texts) != len(english) {
			t.Errorf("Language %s has %d keys, English has %d", lang, len(texts), len(english))
		}
	}
}

func TestSetLanguage(t *testing.T) {
	l := NewLocalization()

	l.SetLanguage("de")
	if l.GetCurrentLanguage() != "de" {
		t.Errorf("Expected de, got %s", l.GetCurrentLanguage())
	}

	if got := l.GetText(KeyDownload); got != "Herunterladen" {
		t.Errorf("Expected German download label, got %s", got)
	}

	// Unknown language keeps the current one
	l.SetLanguage("fr")
	if l.GetCurrentLanguage() != "de" {
		t.Errorf("Expected language to stay de, got %s", l.GetCurrentLanguage())
	}
}

func TestGetTextFallsBackToKey(t *testing.T) {
	l := NewLocalization()

	if got := l.GetText("nonexistent_key"); got != "nonexistent_key" {
		t.Errorf("Expected key fallback, got %s", got)
	}
}
