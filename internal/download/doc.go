package download

// Package download implements the single-job download pipeline built on top
// of yt-dlp (via github.com/lrstanley/go-ytdlp). It validates requests before
// any work starts, builds the delegated configuration from the request, and
// relays progress, transfer rate, and the terminal outcome to the UI through
// an event channel.
