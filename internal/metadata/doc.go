package metadata

// Package metadata fetches video information through yt-dlp in metadata-only
// mode (via github.com/lrstanley/go-ytdlp) and normalizes the result into a
// fixed record with documented defaults for missing fields.
