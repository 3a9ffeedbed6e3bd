package download

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/lrstanley/go-ytdlp"

	"github.com/ytiv/video-downloader/internal/format"
	"github.com/ytiv/video-downloader/internal/model"
)

// Network resilience constants passed through to yt-dlp; the service itself
// never retries.
const (
	downloadRetries  = "3"
	fragmentRetries  = "3"
	socketTimeoutSec = 30.0

	progressInterval = 500 * time.Millisecond

	outputTemplate = "%(title)s.%(ext)s"

	// SuccessMessage is the terminal message for a completed job.
	SuccessMessage = "Video downloaded and converted successfully."
)

// Pre-flight rejections. All of them fire synchronously from Start, before
// any worker goroutine exists.
var (
	ErrEmptyURL          = errors.New("download URL is empty")
	ErrBadDestination    = errors.New("destination directory does not exist or is not writable")
	ErrConverterNotFound = errors.New("converter binary not found")
	ErrJobActive         = errors.New("another download is already running")
)

// Job is one in-flight download. Events are delivered on the channel returned
// by Events; the channel is closed after the terminal event.
type Job struct {
	ID      string
	Request model.DownloadRequest

	relay *relay
}

// Events returns the job's event stream.
func (j *Job) Events() <-chan Event {
	return j.relay.events
}

// Service owns download execution and enforces the at-most-one-job invariant:
// Start fails with ErrJobActive while a job is in flight, regardless of what
// the UI does with its buttons.
type Service struct {
	mu     sync.Mutex
	active bool

	concurrency int

	// run is swapped out in tests; the default invokes yt-dlp.
	run func(ctx context.Context, req model.DownloadRequest, spec string, r *relay) error
}

// NewService creates a download service. The concurrency hint for the
// delegated library is derived once here and reused for every job.
func NewService() *Service {
	s := &Service{
		concurrency: max(1, runtime.NumCPU()-1),
	}
	s.run = s.runYtdlp
	return s
}

// Start validates the request and, if it passes, launches the download on a
// background goroutine and returns the job. All rejections happen
// synchronously: an error return means no goroutine was started and no event
// will ever fire.
func (s *Service) Start(req model.DownloadRequest) (*Job, error) {
	if err := validate(req); err != nil {
		return nil, err
	}

	s.mu.Lock()
	if s.active {
		s.mu.Unlock()
		return nil, ErrJobActive
	}
	s.active = true
	s.mu.Unlock()

	job := &Job{
		ID:      generateJobID(),
		Request: req,
		relay:   newRelay(),
	}

	log.Printf("Starting download job %s: url=%s quality=%s dest=%s", job.ID, req.URL, req.Quality, req.DestDir)

	go s.runJob(job)

	return job, nil
}

// validate applies the pre-flight checks from the error taxonomy: input
// validation first, then environment.
func validate(req model.DownloadRequest) error {
	if req.URL == "" {
		return ErrEmptyURL
	}
	if info, err := os.Stat(req.DestDir); err != nil || !info.IsDir() {
		return fmt.Errorf("%w: %s", ErrBadDestination, req.DestDir)
	}
	// The destination must also be writable; probe with a temp file so a
	// read-only directory is rejected here instead of failing mid-job.
	probe, err := os.CreateTemp(req.DestDir, ".write-check-*")
	if err != nil {
		return fmt.Errorf("%w: %s", ErrBadDestination, req.DestDir)
	}
	probe.Close()
	os.Remove(probe.Name())
	if _, err := os.Stat(req.ConverterPath); err != nil {
		return fmt.Errorf("%w: %s", ErrConverterNotFound, req.ConverterPath)
	}
	return nil
}

// runJob executes the download and delivers the single terminal event.
func (s *Service) runJob(job *Job) {
	defer func() {
		s.mu.Lock()
		s.active = false
		s.mu.Unlock()
	}()

	spec := format.Select(job.Request.URL, job.Request.Quality)
	log.Printf("Job %s format spec: %s", job.ID, spec)

	err := s.run(context.Background(), job.Request, spec, job.relay)
	if err != nil {
		log.Printf("Job %s failed: %v", job.ID, err)
		job.relay.Done("", err)
		return
	}

	log.Printf("Job %s completed", job.ID)
	job.relay.Done(SuccessMessage, nil)
}

// runYtdlp builds the delegated configuration from the request and runs the
// download. The post-processing pipeline always recodes to mp4; subtitle and
// thumbnail steps are appended per the request flags.
func (s *Service) runYtdlp(ctx context.Context, req model.DownloadRequest, spec string, r *relay) error {
	dl := ytdlp.New().
		Format(spec).
		Output(filepath.Join(req.DestDir, outputTemplate)).
		FFmpegLocation(req.ConverterPath).
		ForceOverwrites().
		RestrictFilenames().
		NoWarnings().
		ConcurrentFragments(s.concurrency).
		Retries(downloadRetries).
		FragmentRetries(fragmentRetries).
		SocketTimeout(socketTimeoutSec).
		RecodeVideo("mp4")

	if req.Subtitles {
		dl = dl.WriteSubs().ConvertSubs("srt")
	}
	if req.Thumbnail {
		dl = dl.WriteThumbnail()
	}

	dl.ProgressFunc(progressInterval, func(update ytdlp.ProgressUpdate) {
		r.Progress(update.DownloadedBytes, update.TotalBytes)

		if !update.Started.IsZero() {
			if elapsed := time.Since(update.Started); elapsed > 0 {
				r.Rate(float64(update.DownloadedBytes) / elapsed.Seconds())
			}
		}
	})

	_, err := dl.Run(ctx, req.URL)
	return err
}

// generateJobID returns a unique job ID using UUID v7 for time ordering.
func generateJobID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return fmt.Sprintf("job-%d", time.Now().UnixNano())
	}
	return "job-" + id.String()
}
