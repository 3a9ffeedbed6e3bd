package config

import (
	"testing"

	"fyne.io/fyne/v2/test"

	"github.com/ytiv/video-downloader/internal/model"
)

func TestSettingsQualityDefault(t *testing.T) {
	app := test.NewApp()
	defer test.NewApp()

	settings := NewSettings(app)

	quality := settings.GetQuality()
	if quality != DefaultQuality {
		t.Errorf("expected default quality %q, got %q", DefaultQuality, quality)
	}

	// Default is persisted on first read
	stored := app.Preferences().String(KeyQuality)
	if stored != string(DefaultQuality) {
		t.Errorf("expected stored quality %q, got %q", DefaultQuality, stored)
	}
}

func TestSettingsQualityRoundTrip(t *testing.T) {
	app := test.NewApp()
	defer test.NewApp()

	settings := NewSettings(app)

	settings.SetQuality(model.Quality1080p)
	if got := settings.GetQuality(); got != model.Quality1080p {
		t.Errorf("expected %q, got %q", model.Quality1080p, got)
	}
}

func TestSettingsDownloadDirectoryRoundTrip(t *testing.T) {
	app := test.NewApp()
	defer test.NewApp()

	settings := NewSettings(app)

	dir := t.TempDir()
	settings.SetDownloadDirectory(dir)
	if got := settings.GetDownloadDirectory(); got != dir {
		t.Errorf("expected %q, got %q", dir, got)
	}
}

func TestSettingsDownloadDirectoryDefaultNotEmpty(t *testing.T) {
	app := test.NewApp()
	defer test.NewApp()

	settings := NewSettings(app)

	if got := settings.GetDownloadDirectory(); got == "" {
		t.Error("expected non-empty default download directory")
	}
}

func TestSettingsFlags(t *testing.T) {
	app := test.NewApp()
	defer test.NewApp()

	settings := NewSettings(app)

	if settings.GetSubtitles() {
		t.Error("expected subtitles disabled by default")
	}
	settings.SetSubtitles(true)
	if !settings.GetSubtitles() {
		t.Error("expected subtitles enabled after set")
	}

	if settings.GetThumbnail() {
		t.Error("expected thumbnail disabled by default")
	}
	settings.SetThumbnail(true)
	if !settings.GetThumbnail() {
		t.Error("expected thumbnail enabled after set")
	}

	if !settings.GetAutoRevealOnComplete() {
		t.Error("expected auto-reveal enabled by default")
	}
	settings.SetAutoRevealOnComplete(false)
	if settings.GetAutoRevealOnComplete() {
		t.Error("expected auto-reveal disabled after set")
	}
}

func TestSettingsLanguage(t *testing.T) {
	app := test.NewApp()
	defer test.NewApp()

	settings := NewSettings(app)

	if got := settings.GetLanguage(); got != DefaultLanguage {
		t.Errorf("expected default language %q, got %q", DefaultLanguage, got)
	}

	settings.SetLanguage("ru")
	if got := settings.GetLanguage(); got != "ru" {
		t.Errorf("expected %q, got %q", "ru", got)
	}

	options := settings.GetLanguageOptions()
	for _, code := range []string{"system", "en", "ru", "pt"} {
		if _, ok := options[code]; !ok {
			t.Errorf("expected language option %q", code)
		}
	}
}
