// Package scan builds playlists from audio files on disk.
//
// Scanner walks a directory tree, reads each matching file's ID3 tags
// and produces a model.Playlist in stable lexical path order:
//
//	scanner := scan.NewScanner(settings)
//	playlist, err := scanner.ScanDirectory(ctx, "/music/incoming")
//
// Tag extraction is concurrent (bounded by ScanConcurrency) and
// respects context cancellation. This package is a collaborator of
// the core model: it feeds attribute mappings in, and never touches
// playlist text itself.
package scan
