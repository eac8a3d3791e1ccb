package extract

// Package extract wraps the external extraction library (yt-dlp via
// github.com/lrstanley/go-ytdlp) behind a small interface. The library does
// all real work: network transfer, format negotiation, and media remuxing
// through the transcoding binary whose path is passed in opaquely.
