package ui

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle          = "app_title"
	KeyFetchInfo         = "fetch_info"
	KeyFetchingInfo      = "fetching_info"
	KeyFetchFailed       = "fetch_failed"
	KeyDownload          = "download"
	KeyDownloading       = "downloading"
	KeyCompress          = "compress"
	KeyConverting        = "converting"
	KeySettings          = "settings"
	KeyFile              = "file"
	KeyLanguage          = "language"
	KeyQuality           = "quality"
	KeySubtitles         = "subtitles"
	KeyThumbnail         = "thumbnail"
	KeyRecentURLs        = "recent_urls"
	KeyDownloadDirectory = "download_directory"
	KeyAutoReveal        = "auto_reveal"
	KeySave              = "save"
	KeyCancel            = "cancel"
	KeyBrowse            = "browse"
	KeyReveal            = "reveal"
	KeyOpen              = "open"
	KeyEnterURL          = "enter_url"
	KeySettingsSaved     = "settings_saved"
	KeyDownloadStarted   = "download_started"
	KeyDownloadCompleted = "download_completed"
	KeyDownloadFailed    = "download_failed"
	KeyConversionDone    = "conversion_done"
	KeyErrorOpeningFile  = "error_opening_file"
	KeyInvalidURL        = "invalid_url"
	KeyPleaseEnterURL    = "please_enter_url"
	KeyJobAlreadyActive  = "job_already_active"
	KeyConverterMissing  = "converter_missing"
	KeyTitle             = "title"
	KeyUploader          = "uploader"
	KeyDuration          = "duration"
	KeyViews             = "views"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "en",
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language
func (l *Localization) SetLanguage(lang string) {
	if lang == "system" {
		// Use system locale - simplified to English for now
		lang = "en"
	}

	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to English
	if texts, exists := l.texts["en"]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Final fallback - return key itself
	return key
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		"en": "English",
		"ru": "Русский",
		"pt": "Português",
	}
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	// English texts
	l.texts["en"] = map[string]string{
		KeyAppTitle:          "YTIV Video Downloader",
		KeyFetchInfo:         "Fetch Info",
		KeyFetchingInfo:      "Fetching video information...",
		KeyFetchFailed:       "Failed to fetch video information",
		KeyDownload:          "Download",
		KeyDownloading:       "Downloading...",
		KeyCompress:          "Compress",
		KeyConverting:        "Converting...",
		KeySettings:          "Settings",
		KeyFile:              "File",
		KeyLanguage:          "Language",
		KeyQuality:           "Quality",
		KeySubtitles:         "Download subtitles",
		KeyThumbnail:         "Save thumbnail",
		KeyRecentURLs:        "Recent URLs",
		KeyDownloadDirectory: "Download Directory",
		KeyAutoReveal:        "Reveal file when download completes",
		KeySave:              "Save",
		KeyCancel:            "Cancel",
		KeyBrowse:            "Browse",
		KeyReveal:            "Reveal",
		KeyOpen:              "Open",
		KeyEnterURL:          "Enter video URL (https://youtube.com/watch?v=...)",
		KeySettingsSaved:     "Settings saved successfully!",
		KeyDownloadStarted:   "Download started",
		KeyDownloadCompleted: "Download completed",
		KeyDownloadFailed:    "Download failed",
		KeyConversionDone:    "Conversion completed",
		KeyErrorOpeningFile:  "Error opening file",
		KeyInvalidURL:        "Invalid URL",
		KeyPleaseEnterURL:    "Please enter a URL",
		KeyJobAlreadyActive:  "A download is already running",
		KeyConverterMissing:  "ffmpeg was not found. Install it and make sure it is on PATH.",
		KeyTitle:             "Title",
		KeyUploader:          "Uploader",
		KeyDuration:          "Duration",
		KeyViews:             "Views",
	}

	// Russian texts
	l.texts["ru"] = map[string]string{
		KeyAppTitle:          "YTIV Загрузчик видео",
		KeyFetchInfo:         "Получить инфо",
		KeyFetchingInfo:      "Получение информации о видео...",
		KeyFetchFailed:       "Не удалось получить информацию о видео",
		KeyDownload:          "Скачать",
		KeyDownloading:       "Загрузка...",
		KeyCompress:          "Сжать",
		KeyConverting:        "Конвертация...",
		KeySettings:          "Настройки",
		KeyFile:              "Файл",
		KeyLanguage:          "Язык",
		KeyQuality:           "Качество",
		KeySubtitles:         "Скачивать субтитры",
		KeyThumbnail:         "Сохранять обложку",
		KeyRecentURLs:        "Недавние URL",
		KeyDownloadDirectory: "Папка загрузки",
		KeyAutoReveal:        "Показывать файл после загрузки",
		KeySave:              "Сохранить",
		KeyCancel:            "Отмена",
		KeyBrowse:            "Обзор",
		KeyReveal:            "Показать",
		KeyOpen:              "Открыть",
		KeyEnterURL:          "Введите URL видео (https://youtube.com/watch?v=...)",
		KeySettingsSaved:     "Настройки успешно сохранены!",
		KeyDownloadStarted:   "Загрузка начата",
		KeyDownloadCompleted: "Загрузка завершена",
		KeyDownloadFailed:    "Ошибка загрузки",
		KeyConversionDone:    "Конвертация завершена",
		KeyErrorOpeningFile:  "Ошибка открытия файла",
		KeyInvalidURL:        "Неверный URL",
		KeyPleaseEnterURL:    "Пожалуйста, введите URL",
		KeyJobAlreadyActive:  "Загрузка уже выполняется",
		KeyConverterMissing:  "ffmpeg не найден. Установите его и добавьте в PATH.",
		KeyTitle:             "Название",
		KeyUploader:          "Автор",
		KeyDuration:          "Длительность",
		KeyViews:             "Просмотры",
	}

	// Portuguese texts
	l.texts["pt"] = map[string]string{
		KeyAppTitle:          "YTIV Video Downloader",
		KeyFetchInfo:         "Obter Info",
		KeyFetchingInfo:      "Obtendo informações do vídeo...",
		KeyFetchFailed:       "Falha ao obter informações do vídeo",
		KeyDownload:          "Baixar",
		KeyDownloading:       "Baixando...",
		KeyCompress:          "Comprimir",
		KeyConverting:        "Convertendo...",
		KeySettings:          "Configurações",
		KeyFile:              "Arquivo",
		KeyLanguage:          "Idioma",
		KeyQuality:           "Qualidade",
		KeySubtitles:         "Baixar legendas",
		KeyThumbnail:         "Salvar miniatura",
		KeyRecentURLs:        "URLs recentes",
		KeyDownloadDirectory: "Diretório de Download",
		KeyAutoReveal:        "Revelar arquivo ao concluir",
		KeySave:              "Salvar",
		KeyCancel:            "Cancelar",
		KeyBrowse:            "Navegar",
		KeyReveal:            "Revelar",
		KeyOpen:              "Abrir",
		KeyEnterURL:          "Digite a URL do vídeo (https://youtube.com/watch?v=...)",
		KeySettingsSaved:     "Configurações salvas com sucesso!",
		KeyDownloadStarted:   "Download iniciado",
		KeyDownloadCompleted: "Download concluído",
		KeyDownloadFailed:    "Falha no download",
		KeyConversionDone:    "Conversão concluída",
		KeyErrorOpeningFile:  "Erro ao abrir arquivo",
		KeyInvalidURL:        "URL inválida",
		KeyPleaseEnterURL:    "Por favor, digite uma URL",
		KeyJobAlreadyActive:  "Um download já está em andamento",
		KeyConverterMissing:  "ffmpeg não encontrado. Instale-o e adicione ao PATH.",
		KeyTitle:             "Título",
		KeyUploader:          "Autor",
		KeyDuration:          "Duração",
		KeyViews:             "Visualizações",
	}
}
