package model

// Defaults substituted for fields the extractor did not report.
const (
	DefaultTitle    = "Unknown Title"
	DefaultUploader = "Unknown Uploader"
)

// FormatDescriptor describes one media format the extractor reported for a
// video. The fields are informational only; format selection for downloads is
// expressed as a format spec string, not through these descriptors.
type FormatDescriptor struct {
	ID         string
	Ext        string
	Resolution string
	Note       string
}

// VideoMetadata is the fixed record produced by a metadata fetch. It is
// immutable once returned and never persisted.
type VideoMetadata struct {
	Title     string
	Uploader  string
	Duration  int64 // seconds
	ViewCount int64
	Thumbnail string
	Formats   []FormatDescriptor
}
