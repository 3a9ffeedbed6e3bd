package config

import (
	"fyne.io/fyne/v2"

	"github.com/ytiv/video-downloader/internal/model"
	"github.com/ytiv/video-downloader/internal/platform"
)

// Settings keys for Fyne preferences
const (
	KeyDownloadDir        = "download_directory"
	KeyQuality            = "quality"
	KeySubtitles          = "download_subtitles"
	KeyThumbnail          = "download_thumbnail"
	KeyLanguage           = "app_language"
	KeyAutoRevealComplete = "auto_reveal_on_complete"
)

// Default values
const (
	DefaultQuality            = model.Quality720p
	DefaultLanguage           = "system"
	DefaultAutoRevealComplete = true
)

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetDownloadDirectory returns the configured download directory
func (s *Settings) GetDownloadDirectory() string {
	dir := s.app.Preferences().String(KeyDownloadDir)
	if dir == "" {
		// Use system default Downloads directory
		defaultDir, err := platform.GetHomeDownloadsDir()
		if err != nil {
			defaultDir = "/tmp/downloads"
		}
		s.SetDownloadDirectory(defaultDir)
		return defaultDir
	}
	return dir
}

// SetDownloadDirectory sets the download directory
func (s *Settings) SetDownloadDirectory(dir string) {
	s.app.Preferences().SetString(KeyDownloadDir, dir)
}

// GetQuality returns the configured quality level
func (s *Settings) GetQuality() model.Quality {
	quality := s.app.Preferences().String(KeyQuality)
	if quality == "" {
		s.SetQuality(DefaultQuality)
		return DefaultQuality
	}
	return model.Quality(quality)
}

// SetQuality sets the quality level
func (s *Settings) SetQuality(quality model.Quality) {
	s.app.Preferences().SetString(KeyQuality, string(quality))
}

// GetSubtitles returns whether subtitles are downloaded and converted to srt
func (s *Settings) GetSubtitles() bool {
	return s.app.Preferences().BoolWithFallback(KeySubtitles, false)
}

// SetSubtitles sets the subtitle download flag
func (s *Settings) SetSubtitles(enabled bool) {
	s.app.Preferences().SetBool(KeySubtitles, enabled)
}

// GetThumbnail returns whether the video thumbnail is written alongside
func (s *Settings) GetThumbnail() bool {
	return s.app.Preferences().BoolWithFallback(KeyThumbnail, false)
}

// SetThumbnail sets the thumbnail download flag
func (s *Settings) SetThumbnail(enabled bool) {
	s.app.Preferences().SetBool(KeyThumbnail, enabled)
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetAutoRevealOnComplete returns whether to auto-reveal completed downloads
func (s *Settings) GetAutoRevealOnComplete() bool {
	return s.app.Preferences().BoolWithFallback(KeyAutoRevealComplete, DefaultAutoRevealComplete)
}

// SetAutoRevealOnComplete sets whether to auto-reveal completed downloads
func (s *Settings) SetAutoRevealOnComplete(autoReveal bool) {
	s.app.Preferences().SetBool(KeyAutoRevealComplete, autoReveal)
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"ru":     "Русский",
		"pt":     "Português",
	}
}
