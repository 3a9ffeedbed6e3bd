package ui

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"fyne.io/fyne/v2/test"

	"github.com/ytiv/video-downloader/internal/download"
	"github.com/ytiv/video-downloader/internal/history"
	"github.com/ytiv/video-downloader/internal/metadata"
	"github.com/ytiv/video-downloader/internal/model"
)

type stubFetcher struct {
	meta *model.VideoMetadata
	err  error
}

func (s *stubFetcher) Fetch(ctx context.Context, url string) (*model.VideoMetadata, error) {
	return s.meta, s.err
}

type stubDownloader struct {
	err     error
	started int
}

func (s *stubDownloader) Start(req model.DownloadRequest) (*download.Job, error) {
	s.started++
	return nil, s.err
}

type stubCompressor struct{}

func (s *stubCompressor) SetUpdateCallback(func(*model.ConversionTask)) {}
func (s *stubCompressor) StartConversion(inputPath string) (*model.ConversionTask, error) {
	return nil, errors.New("conversion unavailable")
}
func (s *stubCompressor) StopConversion(taskID string) error                  { return nil }
func (s *stubCompressor) GetTask(taskID string) (*model.ConversionTask, bool) { return nil, false }

func newTestRootUI(t *testing.T, fetcher metadata.Provider, downloader download.Downloader) (*RootUI, *history.Store) {
	t.Helper()

	app := test.NewApp()
	t.Cleanup(func() { test.NewApp() })

	window := app.NewWindow("test")
	store := history.NewStore(filepath.Join(t.TempDir(), "history.txt"))

	return NewRootUI(window, app, downloader, fetcher, &stubCompressor{}, store), store
}

// waitFor polls a condition until it holds or the timeout expires.
func waitFor(t *testing.T, what string, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatalf("Timed out waiting for %s", what)
}

func TestFetchSuccessRecordsHistory(t *testing.T) {
	fetcher := &stubFetcher{meta: &model.VideoMetadata{Title: "Test Video", Uploader: "Test Channel"}}
	ui, store := newTestRootUI(t, fetcher, &stubDownloader{err: download.ErrJobActive})

	url := "https://youtube.com/watch?v=abc"
	ui.urlEntry.SetText(url)
	ui.onFetchClick()

	waitFor(t, "history entry", func() bool {
		urls := store.Load()
		return len(urls) == 1 && urls[0] == url
	})

	waitFor(t, "recent select options", func() bool {
		return len(ui.recentSelect.Options) == 1 && ui.recentSelect.Options[0] == url
	})
}

func TestFetchFailureDoesNotRecordHistory(t *testing.T) {
	fetcher := &stubFetcher{err: errors.New("ERROR: Unsupported URL")}
	ui, store := newTestRootUI(t, fetcher, &stubDownloader{err: download.ErrJobActive})

	ui.urlEntry.SetText("https://youtube.com/watch?v=bad")
	ui.onFetchClick()

	// Give the background fetch time to finish before asserting
	time.Sleep(200 * time.Millisecond)

	if urls := store.Load(); len(urls) != 0 {
		t.Errorf("Expected empty history after failed fetch, got %v", urls)
	}
}

func TestDownloadDoesNotRecordHistory(t *testing.T) {
	fetcher := &stubFetcher{meta: &model.VideoMetadata{Title: "Test Video"}}
	downloader := &stubDownloader{err: download.ErrJobActive}
	ui, store := newTestRootUI(t, fetcher, downloader)

	ui.urlEntry.SetText("https://youtube.com/watch?v=abc")
	ui.onDownloadClick()

	time.Sleep(200 * time.Millisecond)

	// History records on successful fetch only; starting (or failing to
	// start) a download must leave it untouched.
	if urls := store.Load(); len(urls) != 0 {
		t.Errorf("Expected empty history after download click, got %v", urls)
	}
}
