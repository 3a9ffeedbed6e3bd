package main

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/ytiv/video-downloader/internal/compress"
	"github.com/ytiv/video-downloader/internal/config"
	"github.com/ytiv/video-downloader/internal/download"
	"github.com/ytiv/video-downloader/internal/history"
	"github.com/ytiv/video-downloader/internal/metadata"
	"github.com/ytiv/video-downloader/internal/platform"
	"github.com/ytiv/video-downloader/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.ytiv.video-downloader"
	AppName = "YTIV Video Downloader"

	WindowWidth  = 640
	WindowHeight = 540
)

func main() {
	// Log version information
	fmt.Printf("%s v%s starting...\n", AppName, version)

	// Create new Fyne app
	myApp := app.NewWithID(AppID)

	// Apply compact theme
	myApp.Settings().SetTheme(ui.NewCompactTheme())

	windowTitle := fmt.Sprintf("%s v%s", AppName, version)
	myWindow := myApp.NewWindow(windowTitle)
	myWindow.Resize(fyne.NewSize(WindowWidth, WindowHeight))

	// Initialize services
	settings := config.NewSettings(myApp)
	downloadsDir := settings.GetDownloadDirectory()
	if err := platform.CreateDirectoryIfNotExists(downloadsDir); err != nil {
		fmt.Printf("failed to ensure downloads dir: %v\n", err)
	}

	downloadSvc := download.NewService()
	fetcher := metadata.NewFetcher()
	compressSvc := compress.NewService()
	historyStore := history.NewStore(history.DefaultPath())

	// Create and setup UI
	ui.NewRootUI(myWindow, myApp, downloadSvc, fetcher, compressSvc, historyStore)

	// Show and run
	myWindow.ShowAndRun()
}
