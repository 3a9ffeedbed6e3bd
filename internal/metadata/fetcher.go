package metadata

import (
	"context"
	"errors"
	"fmt"

	"github.com/lrstanley/go-ytdlp"

	"github.com/ytiv/video-downloader/internal/model"
)

// FetchError wraps a failure reported by the extraction library. The message
// is carried verbatim; no classification is attempted.
type FetchError struct {
	Message string
}

// Error returns the extractor's message unchanged.
func (e *FetchError) Error() string {
	return e.Message
}

// Fetcher retrieves video metadata without downloading any media bytes.
// Fetch is blocking and network-bound; callers that need a responsive UI must
// run it off the interaction thread.
type Fetcher struct {
	// extract is swapped out in tests; the default runs yt-dlp.
	extract func(ctx context.Context, url string) (*ytdlp.ExtractedInfo, error)
}

// NewFetcher creates a metadata fetcher backed by yt-dlp.
func NewFetcher() *Fetcher {
	return &Fetcher{extract: extractInfo}
}

// Fetch returns the metadata record for url. Any failure from the extraction
// library is returned as a *FetchError carrying the library's message; Fetch
// itself never panics past this boundary.
func (f *Fetcher) Fetch(ctx context.Context, url string) (*model.VideoMetadata, error) {
	info, err := f.extract(ctx, url)
	if err != nil {
		return nil, &FetchError{Message: err.Error()}
	}

	return metadataFromInfo(info), nil
}

// extractInfo runs the delegated extractor in metadata-only mode.
func extractInfo(ctx context.Context, url string) (*ytdlp.ExtractedInfo, error) {
	dl := ytdlp.New().
		SkipDownload().
		Quiet().
		NoWarnings().
		DumpSingleJSON()

	result, err := dl.Run(ctx, url)
	if err != nil {
		return nil, err
	}

	info, err := result.GetExtractedInfo()
	if err != nil {
		return nil, fmt.Errorf("parse extractor output: %w", err)
	}
	if len(info) == 0 {
		return nil, errors.New("extractor returned no metadata")
	}

	return info[0], nil
}

// metadataFromInfo maps the extractor's loosely-typed record into the fixed
// metadata shape, substituting defaults for anything missing.
func metadataFromInfo(info *ytdlp.ExtractedInfo) *model.VideoMetadata {
	meta := &model.VideoMetadata{
		Title:    model.DefaultTitle,
		Uploader: model.DefaultUploader,
	}
	if info == nil {
		return meta
	}

	if info.Title != nil && *info.Title != "" {
		meta.Title = *info.Title
	}
	if info.Uploader != nil && *info.Uploader != "" {
		meta.Uploader = *info.Uploader
	}
	if info.Duration != nil && *info.Duration > 0 {
		meta.Duration = int64(*info.Duration)
	}
	if info.ViewCount != nil && *info.ViewCount > 0 {
		meta.ViewCount = int64(*info.ViewCount)
	}
	if info.Thumbnail != nil {
		meta.Thumbnail = *info.Thumbnail
	}

	for _, f := range info.Formats {
		if f == nil {
			continue
		}
		desc := model.FormatDescriptor{}
		if f.FormatID != nil {
			desc.ID = *f.FormatID
		}
		if f.Extension != nil {
			desc.Ext = *f.Extension
		}
		if f.Resolution != nil {
			desc.Resolution = *f.Resolution
		}
		if f.FormatNote != nil {
			desc.Note = *f.FormatNote
		}
		meta.Formats = append(meta.Formats, desc)
	}

	return meta
}
