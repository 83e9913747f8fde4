package scan

import (
	"context"
	"fmt"
	"io/fs"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/bogem/id3v2"
	"golang.org/x/sync/errgroup"

	"tracklist/internal/config"
	"tracklist/internal/model"
)

// Scanner builds a playlist from the audio files under a directory.
//
// Files are discovered with a lexical walk, so playlist order is
// stable across runs. Tag extraction runs concurrently with a bounded
// worker count; the resulting tracks keep walk order regardless of
// which file finishes first.
type Scanner struct {
	extensions []string
	workers    int
}

// NewScanner creates a Scanner from settings.
func NewScanner(settings *config.Settings) *Scanner {
	workers := settings.ScanConcurrency
	if workers < 1 {
		workers = 1
	}
	exts := make([]string, 0, len(settings.ScanExtensions))
	for _, e := range settings.ScanExtensions {
		exts = append(exts, strings.ToLower(e))
	}
	return &Scanner{extensions: exts, workers: workers}
}

// ScanDirectory walks dir and returns a playlist with one track per
// matching audio file, in lexical path order.
func (s *Scanner) ScanDirectory(ctx context.Context, dir string) (*model.Playlist, error) {
	var paths []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if s.matches(path) {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	tracks := make([]*model.Track, len(paths))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers)
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			track, err := TrackFromFile(path)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			tracks[i] = track
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	playlist := &model.Playlist{}
	for _, track := range tracks {
		if _, err := playlist.AddTrack(track); err != nil {
			return nil, err
		}
	}
	return playlist, nil
}

func (s *Scanner) matches(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range s.extensions {
		if ext == e {
			return true
		}
	}
	return false
}

// TrackFromFile builds a track from one audio file's ID3 tags.
//
// Frames read: TIT2 (title), TPE1 (performer), TALB (album),
// TRCK (track number), TLEN (duration, milliseconds), TSRC (ISRC).
// A file without tags still yields a track, titled after its
// filename. Unparseable TLEN/TRCK frames are ignored rather than
// failing the scan; tag data in the wild is messy.
func TrackFromFile(path string) (*model.Track, error) {
	tag, err := id3v2.Open(path, id3v2.Options{Parse: true})
	if err != nil {
		return nil, err
	}
	defer tag.Close()

	track, err := model.NewTrack(model.Attrs{"location": path})
	if err != nil {
		return nil, err
	}

	if title := tag.Title(); title != "" {
		track.Title = title
	} else {
		track.Title = titleFromPath(path)
	}
	if artist := tag.Artist(); artist != "" {
		track.SetPerformer(artist)
	}
	track.Album = tag.Album()

	if tlen := tag.GetTextFrame("TLEN").Text; tlen != "" {
		_ = track.SetDuration(strings.TrimSpace(tlen))
	}
	if trck := tag.GetTextFrame("TRCK").Text; trck != "" {
		// TRCK may be "4" or "4/12".
		num, _, _ := strings.Cut(trck, "/")
		if n, err := strconv.Atoi(strings.TrimSpace(num)); err == nil {
			track.TrackNumber = n
		}
	}
	if isrc := tag.GetTextFrame("TSRC").Text; isrc != "" {
		track.SetISRC(isrc)
	}

	return track, nil
}

// titleFromPath derives a fallback title from the file name.
func titleFromPath(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
