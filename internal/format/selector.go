package format

import (
	"fmt"
	"strings"

	"github.com/ytiv/video-downloader/internal/model"
)

// Package format builds yt-dlp format spec strings from a URL and a quality
// level. Selection is a fixed per-host rule table; there is no network access
// and no failure mode.

// Format spec fragments.
const (
	// DefaultSpec is used for any host without a dedicated rule and for
	// hosts that only serve a single muxed rendition.
	DefaultSpec = "best[ext=mp4]"

	bestMP4Spec = "bestvideo[ext=mp4]+bestaudio[ext=m4a]/best[ext=mp4]"

	heightSpecTemplate = "bestvideo[height<=%d][ext=mp4]+bestaudio[ext=m4a]/best[height<=%d][ext=mp4]"
)

// rule maps URLs containing one of its host markers to a format spec.
type rule struct {
	hosts []string
	build func(quality model.Quality) string
}

// rules is evaluated in order and the first match wins. Order matters: a host
// marker may be a substring of another, so precedence must stay explicit
// rather than depending on map iteration.
var rules = []rule{
	{
		hosts: []string{"youtube.com", "youtu.be"},
		build: youtubeSpec,
	},
	{
		hosts: []string{"instagram.com", "vimeo.com", "facebook.com"},
		build: func(model.Quality) string { return DefaultSpec },
	},
}

// Select returns the yt-dlp format spec for the given URL and quality level.
// It is pure and total: unknown hosts and malformed quality labels both fall
// back to a usable spec.
func Select(url string, quality model.Quality) string {
	for _, r := range rules {
		for _, host := range r.hosts {
			if strings.Contains(url, host) {
				return r.build(quality)
			}
		}
	}
	return DefaultSpec
}

// youtubeSpec prefers separate video+audio streams merged into mp4/m4a. A
// fixed quality caps the video height; QualityBest (and any label without a
// parseable height) takes the best streams available.
func youtubeSpec(quality model.Quality) string {
	height, fixed := quality.Height()
	if !fixed {
		return bestMP4Spec
	}
	return fmt.Sprintf(heightSpecTemplate, height, height)
}
