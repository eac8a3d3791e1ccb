package ffmpeg

// Package ffmpeg locates or provisions the external transcoding binary at
// startup. A cheap PATH lookup runs first, then a probe of well-known install
// directories; on Windows a missing binary is fetched as a zip archive and
// unpacked into the application's working directory. All failures downgrade
// to the missing state; nothing here is fatal to the process.
