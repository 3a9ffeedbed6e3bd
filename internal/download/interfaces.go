package download

import (
	"github.com/ytiv/video-downloader/internal/model"
)

// Downloader defines the interface the UI uses to start downloads.
type Downloader interface {
	Start(req model.DownloadRequest) (*Job, error)
}
