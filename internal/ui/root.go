package ui

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/url"
	"strings"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytiv/video-downloader/internal/compress"
	"github.com/ytiv/video-downloader/internal/config"
	"github.com/ytiv/video-downloader/internal/download"
	"github.com/ytiv/video-downloader/internal/history"
	"github.com/ytiv/video-downloader/internal/metadata"
	"github.com/ytiv/video-downloader/internal/model"
	"github.com/ytiv/video-downloader/internal/platform"
)

// RootUI represents the main UI structure
type RootUI struct {
	window       fyne.Window
	settings     *config.Settings
	localization *Localization

	downloadSvc  download.Downloader
	fetcher      metadata.Provider
	compressSvc  compress.Compressor
	historyStore *history.Store

	// Input row
	urlEntry     *widget.Entry
	fetchBtn     *widget.Button
	recentSelect *widget.Select

	// Options row
	qualitySelect  *widget.Select
	subtitlesCheck *widget.Check
	thumbnailCheck *widget.Check
	dirEntry       *widget.Entry

	// Action row
	downloadBtn *widget.Button
	compressBtn *widget.Button

	// Progress panel
	progressBar *widget.ProgressBar
	rateLabel   *widget.Label
	statusLabel *widget.Label

	// Metadata panel
	titleLabel    *widget.Label
	uploaderLabel *widget.Label
	durationLabel *widget.Label
	viewsLabel    *widget.Label

	// Notification panel
	notificationContainer *fyne.Container
	notificationLabel     *widget.Label
	notificationSpinner   *widget.ProgressBarInfinite
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, app fyne.App, downloadSvc download.Downloader, fetcher metadata.Provider, compressSvc compress.Compressor, historyStore *history.Store) *RootUI {
	// Initialize settings
	settings := config.NewSettings(app)

	// Initialize localization
	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	// Get configured downloads directory and make sure it exists
	downloadsDir := settings.GetDownloadDirectory()
	if err := platform.CreateDirectoryIfNotExists(downloadsDir); err != nil {
		log.Printf("Failed to ensure downloads dir %s: %v", downloadsDir, err)
	}

	ui := &RootUI{
		window:       window,
		settings:     settings,
		localization: localization,
		downloadSvc:  downloadSvc,
		fetcher:      fetcher,
		compressSvc:  compressSvc,
		historyStore: historyStore,
	}

	log.Printf("RootUI initialized with download service: %v", ui.downloadSvc != nil)

	// Set window title
	window.SetTitle(localization.GetText(KeyAppTitle))

	// Conversion progress flows back through the update callback
	ui.compressSvc.SetUpdateCallback(ui.onConversionUpdate)

	ui.setupUI()
	return ui
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	// Create menu
	ui.createMenu()

	// Create URL entry
	ui.urlEntry = widget.NewEntry()
	ui.urlEntry.SetPlaceHolder(ui.localization.GetText(KeyEnterURL))
	ui.urlEntry.Validator = ui.validateURL
	// Trigger metadata fetch when user presses Enter in the URL field
	ui.urlEntry.OnSubmitted = func(string) {
		ui.onFetchClick()
	}

	// Fetch info button
	ui.fetchBtn = widget.NewButton(ui.localization.GetText(KeyFetchInfo), ui.onFetchClick)

	// Recent URL history fed by the history store
	ui.recentSelect = widget.NewSelect(ui.historyStore.Load(), func(selected string) {
		if selected != "" {
			ui.urlEntry.SetText(selected)
		}
	})
	ui.recentSelect.PlaceHolder = ui.localization.GetText(KeyRecentURLs)

	// Settings button
	settingsBtn := widget.NewButton(IconSettings, ui.onShowSettings)
	settingsBtn.Importance = widget.LowImportance

	// Create logo
	logo, err := LoadLogoResource()
	var logoImage *canvas.Image
	if err == nil {
		logoImage = canvas.NewImageFromResource(logo)
		logoImage.SetMinSize(fyne.NewSize(32, 32))
		logoImage.FillMode = canvas.ImageFillContain
	}

	// Create top panel (URL row) with logo
	var urlRow *fyne.Container
	if logoImage != nil {
		urlRow = container.NewBorder(nil, nil, container.NewHBox(logoImage, settingsBtn), ui.fetchBtn, ui.urlEntry)
	} else {
		urlRow = container.NewBorder(nil, nil, container.NewHBox(settingsBtn), ui.fetchBtn, ui.urlEntry)
	}

	// Create notification panel under URL input (hidden by default)
	ui.notificationLabel = widget.NewLabel("")
	ui.notificationLabel.Alignment = fyne.TextAlignLeading
	ui.notificationSpinner = widget.NewProgressBarInfinite()
	ui.notificationSpinner.Hide()
	ui.notificationContainer = container.NewHBox(ui.notificationSpinner, container.NewPadded(ui.notificationLabel))
	ui.notificationContainer.Hide()

	// Quality selection
	qualityOptions := []string{}
	for _, q := range model.QualityOptions() {
		qualityOptions = append(qualityOptions, string(q))
	}
	ui.qualitySelect = widget.NewSelect(qualityOptions, func(selected string) {
		ui.settings.SetQuality(model.Quality(selected))
	})
	ui.qualitySelect.SetSelected(string(ui.settings.GetQuality()))

	// Subtitle / thumbnail flags
	ui.subtitlesCheck = widget.NewCheck(ui.localization.GetText(KeySubtitles), func(checked bool) {
		ui.settings.SetSubtitles(checked)
	})
	ui.subtitlesCheck.SetChecked(ui.settings.GetSubtitles())

	ui.thumbnailCheck = widget.NewCheck(ui.localization.GetText(KeyThumbnail), func(checked bool) {
		ui.settings.SetThumbnail(checked)
	})
	ui.thumbnailCheck.SetChecked(ui.settings.GetThumbnail())

	// Destination directory row with folder dialog
	ui.dirEntry = widget.NewEntry()
	ui.dirEntry.SetText(ui.settings.GetDownloadDirectory())
	browseBtn := widget.NewButton(IconFolder, ui.onBrowseDirectory)
	dirRow := container.NewBorder(nil, nil, nil, browseBtn, ui.dirEntry)

	optionsRow := container.NewHBox(
		widget.NewLabel(ui.localization.GetText(KeyQuality)),
		ui.qualitySelect,
		ui.subtitlesCheck,
		ui.thumbnailCheck,
	)

	// Action buttons
	ui.downloadBtn = widget.NewButton(ui.localization.GetText(KeyDownload), ui.onDownloadClick)
	ui.downloadBtn.Importance = widget.HighImportance
	ui.compressBtn = widget.NewButton(ui.localization.GetText(KeyCompress), ui.onCompressClick)
	actionRow := container.NewHBox(ui.downloadBtn, ui.compressBtn)

	// Progress panel
	ui.progressBar = widget.NewProgressBar()
	ui.rateLabel = widget.NewLabel(DashPlaceholder)
	ui.statusLabel = widget.NewLabel("")
	progressRow := container.NewBorder(nil, nil, nil, ui.rateLabel, ui.progressBar)

	// Metadata panel
	ui.titleLabel = widget.NewLabel(DashPlaceholder)
	ui.titleLabel.TextStyle = fyne.TextStyle{Bold: true}
	ui.titleLabel.Truncation = fyne.TextTruncateEllipsis
	ui.uploaderLabel = widget.NewLabel(DashPlaceholder)
	ui.durationLabel = widget.NewLabel(DashPlaceholder)
	ui.viewsLabel = widget.NewLabel(DashPlaceholder)

	metadataPanel := container.NewVBox(
		widget.NewSeparator(),
		ui.titleLabel,
		container.NewHBox(
			widget.NewLabel(ui.localization.GetText(KeyUploader)),
			ui.uploaderLabel,
		),
		container.NewHBox(
			widget.NewLabel(ui.localization.GetText(KeyDuration)),
			ui.durationLabel,
			widget.NewLabel(MiddleDotSeparator),
			widget.NewLabel(ui.localization.GetText(KeyViews)),
			ui.viewsLabel,
		),
	)

	content := container.NewVBox(
		urlRow,
		ui.notificationContainer,
		ui.recentSelect,
		optionsRow,
		dirRow,
		actionRow,
		progressRow,
		ui.statusLabel,
		metadataPanel,
	)

	ui.window.SetContent(container.NewPadded(content))

	log.Printf("UI setup completed successfully")
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	// Settings menu item
	settingsItem := fyne.NewMenuItem(ui.localization.GetText(KeySettings), ui.onShowSettings)

	// Language submenu
	languageMenu := fyne.NewMenu(ui.localization.GetText(KeyLanguage))

	availableLanguages := ui.localization.GetAvailableLanguages()
	for code, name := range availableLanguages {
		langCode := code // Capture for closure
		langItem := fyne.NewMenuItem(name, func() {
			ui.onLanguageChange(langCode)
		})

		// Mark current language
		if ui.localization.GetCurrentLanguage() == code {
			langItem.Checked = true
		}

		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	mainMenu := fyne.NewMainMenu(
		fyne.NewMenu(ui.localization.GetText(KeyFile), settingsItem),
		languageMenu,
	)

	ui.window.SetMainMenu(mainMenu)
}

// onLanguageChange handles language change
func (ui *RootUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.settings.SetLanguage(langCode)

	// Update UI texts
	ui.refreshUITexts()

	// Recreate menu to update checkmarks
	ui.createMenu()
}

// refreshUITexts updates all UI texts with current language
func (ui *RootUI) refreshUITexts() {
	ui.window.SetTitle(ui.localization.GetText(KeyAppTitle))
	ui.urlEntry.SetPlaceHolder(ui.localization.GetText(KeyEnterURL))
	ui.fetchBtn.SetText(ui.localization.GetText(KeyFetchInfo))
	ui.recentSelect.PlaceHolder = ui.localization.GetText(KeyRecentURLs)
	ui.recentSelect.Refresh()
	ui.subtitlesCheck.Text = ui.localization.GetText(KeySubtitles)
	ui.subtitlesCheck.Refresh()
	ui.thumbnailCheck.Text = ui.localization.GetText(KeyThumbnail)
	ui.thumbnailCheck.Refresh()
	ui.downloadBtn.SetText(ui.localization.GetText(KeyDownload))
	ui.compressBtn.SetText(ui.localization.GetText(KeyCompress))
}

// validateURL validates the entered URL
func (ui *RootUI) validateURL(input string) error {
	if strings.TrimSpace(input) == "" {
		return nil // Empty is allowed
	}

	parsedURL, err := url.Parse(input)
	if err != nil {
		return err
	}

	if parsedURL.Scheme != "http" && parsedURL.Scheme != "https" {
		return fmt.Errorf("URL must start with http:// or https://")
	}

	return nil
}

// currentURL returns the trimmed URL from the entry, or empty when the input
// is unusable. Validation errors are surfaced in the notification panel.
func (ui *RootUI) currentURL() string {
	urlText := strings.TrimSpace(ui.urlEntry.Text)
	if urlText == "" {
		ui.showNotification(ui.localization.GetText(KeyPleaseEnterURL), false)
		return ""
	}

	if err := ui.validateURL(urlText); err != nil {
		ui.showNotification(ui.localization.GetText(KeyInvalidURL)+": "+err.Error(), false)
		return ""
	}

	return urlText
}

// onFetchClick fetches video metadata in the background and fills the
// metadata panel. The UI stays responsive while yt-dlp probes the URL.
func (ui *RootUI) onFetchClick() {
	urlText := ui.currentURL()
	if urlText == "" {
		return
	}

	log.Printf("Fetching metadata for URL: %s", urlText)
	ui.showNotification(ui.localization.GetText(KeyFetchingInfo), true)

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), MetadataFetchTimeout)
		defer cancel()

		meta, err := ui.fetcher.Fetch(ctx, urlText)

		fyne.Do(func() {
			if err != nil {
				log.Printf("Metadata fetch failed for %s: %v", urlText, err)
				ui.showNotification(ui.localization.GetText(KeyFetchFailed)+": "+err.Error(), false)
				return
			}

			ui.hideNotification()
			ui.titleLabel.SetText(meta.Title)
			ui.uploaderLabel.SetText(meta.Uploader)
			ui.durationLabel.SetText(formatDuration(meta.Duration))
			ui.viewsLabel.SetText(fmt.Sprintf("%d", meta.ViewCount))

			// A successful fetch is what makes a URL "recent"; downloads
			// that fail later leave the history untouched.
			ui.recentSelect.Options = ui.historyStore.Record(urlText)
			ui.recentSelect.Refresh()
			log.Printf("Metadata loaded: title=%q uploader=%q duration=%ds views=%d formats=%d",
				meta.Title, meta.Uploader, meta.Duration, meta.ViewCount, len(meta.Formats))
		})
	}()
}

// onDownloadClick handles the download button click
func (ui *RootUI) onDownloadClick() {
	urlText := ui.currentURL()
	if urlText == "" {
		return
	}

	// Converter preflight: fail before the service ever sees the request
	converterPath, err := platform.FindConverter()
	if err != nil {
		log.Printf("Converter preflight failed: %v", err)
		dialog.ShowError(errors.New(ui.localization.GetText(KeyConverterMissing)), ui.window)
		return
	}

	req := model.DownloadRequest{
		URL:           urlText,
		Quality:       model.Quality(ui.qualitySelect.Selected),
		DestDir:       strings.TrimSpace(ui.dirEntry.Text),
		ConverterPath: converterPath,
		Subtitles:     ui.subtitlesCheck.Checked,
		Thumbnail:     ui.thumbnailCheck.Checked,
	}

	job, err := ui.downloadSvc.Start(req)
	if err != nil {
		log.Printf("Failed to start download: %v", err)
		if errors.Is(err, download.ErrJobActive) {
			ui.showNotification(ui.localization.GetText(KeyJobAlreadyActive), false)
		} else {
			dialog.ShowError(err, ui.window)
		}
		return
	}

	ui.downloadBtn.Disable()
	ui.progressBar.SetValue(0)
	ui.rateLabel.SetText(DashPlaceholder)
	ui.statusLabel.SetText(ui.localization.GetText(KeyDownloading))
	ui.showNotification(ui.localization.GetText(KeyDownloadStarted), true)

	log.Printf("Download job %s started for %s", job.ID, urlText)

	go ui.drainJobEvents(job, req)
}

// drainJobEvents consumes the job's event stream until the channel closes,
// mirroring every event into the progress panel on the UI thread.
func (ui *RootUI) drainJobEvents(job *download.Job, req model.DownloadRequest) {
	for event := range job.Events() {
		switch event.Kind {
		case download.EventProgress:
			percent := event.Percent
			fyne.Do(func() {
				ui.progressBar.SetValue(float64(percent) / 100.0)
			})
		case download.EventRate:
			rate := event.Rate
			fyne.Do(func() {
				ui.rateLabel.SetText(rate)
			})
		case download.EventDone:
			ui.onJobDone(event, req)
		}
	}
}

// onJobDone handles the terminal event of a download job
func (ui *RootUI) onJobDone(event download.Event, req model.DownloadRequest) {
	fyne.Do(func() {
		ui.downloadBtn.Enable()

		if event.Err != nil {
			log.Printf("Download failed: %v", event.Err)
			ui.statusLabel.SetText(ui.localization.GetText(KeyDownloadFailed))
			ui.showNotification(ui.localization.GetText(KeyDownloadFailed)+": "+event.Err.Error(), false)
			return
		}

		log.Printf("Download completed: %s", event.Message)
		ui.progressBar.SetValue(1.0)
		ui.statusLabel.SetText(event.Message)
		ui.hideNotification()

		ui.sendCompletionNotification(event.Message)

		// Auto-reveal the destination folder if enabled
		if ui.settings.GetAutoRevealOnComplete() {
			ui.onRevealFile(req.DestDir)
		}
	})
}

// onConversionUpdate handles conversion task updates from the compress service
func (ui *RootUI) onConversionUpdate(task *model.ConversionTask) {
	fyne.Do(func() {
		switch task.Status {
		case model.TaskStatusConverting:
			ui.statusLabel.SetText(fmt.Sprintf("%s "+ProgressLabelFormat,
				ui.localization.GetText(KeyConverting), task.Percent))
		case model.TaskStatusCompleted:
			log.Printf("Conversion %s completed: %s", task.ID, task.OutputPath)
			ui.statusLabel.SetText(ui.localization.GetText(KeyConversionDone))
			ui.sendCompletionNotification(task.OutputPath)
		case model.TaskStatusError:
			log.Printf("Conversion %s failed: %s", task.ID, task.LastError)
			ui.statusLabel.SetText(ui.localization.GetText(KeyDownloadFailed) + ": " + task.LastError)
		}
	})
}

// onCompressClick lets the user pick a downloaded file and re-encodes it
func (ui *RootUI) onCompressClick() {
	dialog.ShowFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			return
		}
		inputPath := reader.URI().Path()
		reader.Close()

		task, err := ui.compressSvc.StartConversion(inputPath)
		if err != nil {
			log.Printf("Failed to start conversion for %s: %v", inputPath, err)
			dialog.ShowError(err, ui.window)
			return
		}

		log.Printf("Conversion %s started: %s -> %s", task.ID, task.InputPath, task.OutputPath)
		ui.statusLabel.SetText(ui.localization.GetText(KeyConverting))
	}, ui.window)
}

// onBrowseDirectory opens a folder dialog for the destination directory
func (ui *RootUI) onBrowseDirectory() {
	dialog.ShowFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil || uri == nil {
			return
		}
		ui.dirEntry.SetText(uri.Path())
		ui.settings.SetDownloadDirectory(uri.Path())
	}, ui.window)
}

// showNotification displays a message in the notification panel under the URL input.
// When spinning is true, a spinner is shown to indicate background activity.
func (ui *RootUI) showNotification(message string, spinning bool) {
	if ui.notificationLabel == nil || ui.notificationContainer == nil || ui.notificationSpinner == nil {
		return
	}
	fyne.Do(func() {
		ui.notificationLabel.SetText(message)
		if spinning {
			ui.notificationSpinner.Show()
		} else {
			ui.notificationSpinner.Hide()
		}
		ui.notificationContainer.Show()
		ui.notificationContainer.Refresh()
	})
}

// hideNotification hides the notification panel.
func (ui *RootUI) hideNotification() {
	if ui.notificationContainer == nil || ui.notificationSpinner == nil {
		return
	}
	fyne.Do(func() {
		ui.notificationSpinner.Hide()
		ui.notificationContainer.Hide()
	})
}

// onShowSettings shows the settings dialog
func (ui *RootUI) onShowSettings() {
	ShowSettingsDialog(ui.window, ui.settings, ui.localization, func() {
		// Mirror settings back into the main window controls
		ui.qualitySelect.SetSelected(string(ui.settings.GetQuality()))
		ui.subtitlesCheck.SetChecked(ui.settings.GetSubtitles())
		ui.thumbnailCheck.SetChecked(ui.settings.GetThumbnail())
		ui.dirEntry.SetText(ui.settings.GetDownloadDirectory())
		ui.localization.SetLanguage(ui.settings.GetLanguage())
		ui.refreshUITexts()
		ui.createMenu()
	})
}

// onRevealFile handles revealing a file in the system file manager
func (ui *RootUI) onRevealFile(filePath string) {
	log.Printf("onRevealFile called for path: %s", filePath)

	if filePath == "" {
		widget.ShowPopUp(widget.NewLabel("Error: No file path provided"), ui.window.Canvas())
		return
	}

	err := platform.OpenFileInManager(filePath)
	if err != nil {
		log.Printf("Error revealing file %s: %v", filePath, err)
		widget.ShowPopUp(widget.NewLabel(ui.localization.GetText(KeyErrorOpeningFile)+": "+err.Error()), ui.window.Canvas())
		return
	}

	log.Printf("File revealed successfully: %s", filePath)
}

// onOpenFile handles opening a downloaded file with the default application
func (ui *RootUI) onOpenFile(filePath string) {
	log.Printf("onOpenFile called for path: %s", filePath)

	if filePath == "" {
		widget.ShowPopUp(widget.NewLabel("Error: No file path provided"), ui.window.Canvas())
		return
	}

	err := platform.OpenFileWithDefaultApp(filePath)
	if err != nil {
		log.Printf("Error opening file %s: %v", filePath, err)
		widget.ShowPopUp(widget.NewLabel(ui.localization.GetText(KeyErrorOpeningFile)+": "+err.Error()), ui.window.Canvas())
		return
	}

	log.Printf("File opened successfully: %s", filePath)
}

// sendCompletionNotification sends a system notification and an in-app toast
func (ui *RootUI) sendCompletionNotification(message string) {
	title := ui.localization.GetText(KeyDownloadCompleted)

	// Use Fyne's SendNotification
	fyne.CurrentApp().SendNotification(&fyne.Notification{
		Title:   title,
		Content: message,
	})

	ui.showToastNotification(message)
}

// showToastNotification shows an in-app toast notification with action buttons
func (ui *RootUI) showToastNotification(message string) {
	titleLabel := widget.NewLabel(ui.localization.GetText(KeyDownloadCompleted))
	titleLabel.TextStyle = fyne.TextStyle{Bold: true}

	messageLabel := widget.NewLabel(message)
	messageLabel.Truncation = fyne.TextTruncateEllipsis

	destDir := strings.TrimSpace(ui.dirEntry.Text)
	revealBtn := widget.NewButton(ui.localization.GetText(KeyReveal), func() {
		ui.onRevealFile(destDir)
	})
	revealBtn.Importance = widget.HighImportance

	openBtn := widget.NewButton(ui.localization.GetText(KeyOpen), func() {
		ui.onOpenFile(destDir)
	})
	openBtn.Importance = widget.MediumImportance

	// Create close button
	var toastPopup *widget.PopUp
	closeBtn := widget.NewButton(IconClose, func() {
		if toastPopup != nil {
			toastPopup.Hide()
		}
	})
	closeBtn.Importance = widget.LowImportance

	// Layout the toast content
	header := container.NewBorder(nil, nil, titleLabel, closeBtn)
	actions := container.NewHBox(revealBtn, openBtn)
	content := container.NewVBox(
		header,
		messageLabel,
		actions,
	)

	toastPopup = widget.NewModalPopUp(content, ui.window.Canvas())

	// Position in top-right corner
	canvasSize := ui.window.Canvas().Size()
	toastSize := fyne.NewSize(ToastWidth, ToastHeight)
	toastPos := fyne.NewPos(canvasSize.Width-toastSize.Width-ToastMargin, ToastMargin)

	toastPopup.Resize(toastSize)
	toastPopup.Move(toastPos)
	toastPopup.Show()

	// Auto-hide after configured time
	go func() {
		time.Sleep(ToastAutoHide)
		if toastPopup != nil {
			fyne.Do(toastPopup.Hide)
		}
	}()
}

// formatDuration renders a duration in seconds as mm:ss or h:mm:ss
func formatDuration(seconds int64) string {
	if seconds <= 0 {
		return DashPlaceholder
	}

	h := seconds / 3600
	m := (seconds % 3600) / 60
	s := seconds % 60

	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%d:%02d", m, s)
}
