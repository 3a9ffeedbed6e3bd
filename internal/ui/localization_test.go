package ui

import "testing"

func TestLocalizationDefaultsToEnglish(t *testing.T) {
	l := NewLocalization()

	if l.GetCurrentLanguage() != "en" {
		t.Errorf("expected default language en, got %s", l.GetCurrentLanguage())
	}

	if got := l.GetText(KeyDownload); got != "Download" {
		t.Errorf("expected %q, got %q", "Download", got)
	}
}

func TestLocalizationSetLanguage(t *testing.T) {
	l := NewLocalization()

	l.SetLanguage("ru")
	if got := l.GetText(KeyDownload); got != "Скачать" {
		t.Errorf("expected Russian translation, got %q", got)
	}

	// Unknown languages are ignored
	l.SetLanguage("de")
	if l.GetCurrentLanguage() != "ru" {
		t.Errorf("expected language to stay ru, got %s", l.GetCurrentLanguage())
	}

	// "system" falls back to English
	l.SetLanguage("system")
	if l.GetCurrentLanguage() != "en" {
		t.Errorf("expected system to resolve to en, got %s", l.GetCurrentLanguage())
	}
}

func TestLocalizationUnknownKeyFallsBack(t *testing.T) {
	l := NewLocalization()

	if got := l.GetText("no_such_key"); got != "no_such_key" {
		t.Errorf("expected key itself as fallback, got %q", got)
	}
}
