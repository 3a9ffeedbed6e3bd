package metadata

import (
	"context"

	"github.com/ytiv/video-downloader/internal/model"
)

// Provider defines the interface for metadata retrieval.
type Provider interface {
	Fetch(ctx context.Context, url string) (*model.VideoMetadata, error)
}
