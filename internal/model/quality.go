package model

import (
	"strconv"
	"strings"
)

// Quality is a user-facing quality level for a download.
type Quality string

const (
	Quality360p  Quality = "360p"
	Quality480p  Quality = "480p"
	Quality720p  Quality = "720p"
	Quality1080p Quality = "1080p"

	// QualityBest lets the extractor pick the best available streams.
	QualityBest Quality = "Best Available"
)

// QualityOptions returns all quality levels in UI display order.
func QualityOptions() []Quality {
	return []Quality{Quality360p, Quality480p, Quality720p, Quality1080p, QualityBest}
}

// Height returns the numeric pixel height for a fixed quality level, such as
// 720 for "720p". The second result is false for QualityBest and for any
// label that does not parse as "<digits>p"; malformed labels are treated the
// same as QualityBest so the caller never has to handle a failure.
func (q Quality) Height() (int, bool) {
	label := string(q)
	if !strings.HasSuffix(label, "p") {
		return 0, false
	}

	height, err := strconv.Atoi(strings.TrimSuffix(label, "p"))
	if err != nil || height <= 0 {
		return 0, false
	}
	return height, true
}

// String returns the display label of the quality level.
func (q Quality) String() string {
	return string(q)
}
