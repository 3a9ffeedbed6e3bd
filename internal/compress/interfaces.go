package compress

import (
	"github.com/ytiv/video-downloader/internal/model"
)

// Compressor defines the interface for the re-encode service.
type Compressor interface {
	SetUpdateCallback(func(*model.ConversionTask))
	StartConversion(inputPath string) (*model.ConversionTask, error)
	StopConversion(taskID string) error
	GetTask(taskID string) (*model.ConversionTask, bool)
}
