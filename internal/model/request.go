package model

// DownloadRequest carries everything a single download job needs. It is
// constructed once per job and must not be mutated afterwards.
type DownloadRequest struct {
	URL           string
	Quality       Quality
	DestDir       string // must exist and be writable
	ConverterPath string // ffmpeg binary, must exist
	Subtitles     bool   // also convert subtitles to srt
	Thumbnail     bool   // write thumbnail alongside the video
}
