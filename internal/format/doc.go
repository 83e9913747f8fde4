// Package format provides bidirectional playlist codecs built on the
// model package's public contract.
//
// Each codec maps between a model.Playlist and one line-oriented text
// encoding. Text comes in and goes out as strings; the caller owns
// all file and network I/O.
//
//	f, err := format.ForPath("mix.m3u")
//	playlist, err := f.Parse(text)
//	out, err := f.Generate(playlist)
//
// Supported formats:
//   - M3U: extended M3U with #EXTINF directives (primary format)
//   - PLS: Winamp INI-style (location, title, duration only)
//
// Parsing is fail-fast: a corrupt record fails the whole parse rather
// than being dropped, since playlists are typically hand- or
// tool-written and silent data loss is worse than a visible error.
package format
