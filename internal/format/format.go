package format

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"tracklist/internal/model"
)

// Format is a bidirectional codec between a Playlist and one specific
// line-oriented text encoding.
//
// Parse and Generate are exact inverses for the fields the format
// supports: Generate(Parse(text)) reproduces canonical input
// byte-for-byte, and Parse(Generate(p)) reconstructs the supported
// track fields. Both work purely on text; reading and writing files
// is the caller's job.
type Format interface {
	// Name is the short lowercase format name ("m3u").
	Name() string

	// Extension is the conventional file extension, including the dot.
	Extension() string

	// Parse decodes playlist text. Malformed records fail the whole
	// parse with an error wrapping ErrMalformed; nothing is skipped
	// silently.
	Parse(text string) (*model.Playlist, error)

	// Generate renders the playlist in this format's canonical
	// encoding, one record per track in playlist order.
	Generate(p *model.Playlist) (string, error)
}

// ErrMalformed is wrapped by parse errors for input that does not
// match the format's record grammar.
var ErrMalformed = errors.New("malformed playlist")

// ErrUnknownFormat is returned by the registry lookups.
var ErrUnknownFormat = errors.New("unknown playlist format")

var formats = []Format{M3U{}, PLS{}}

// All returns the registered formats.
func All() []Format {
	return formats
}

// ForName looks a format up by name ("m3u", "pls").
func ForName(name string) (Format, error) {
	name = strings.ToLower(name)
	for _, f := range formats {
		if f.Name() == name {
			return f, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, name)
}

// ForPath looks a format up by a file path's extension.
func ForPath(path string) (Format, error) {
	ext := strings.ToLower(filepath.Ext(path))
	for _, f := range formats {
		if f.Extension() == ext {
			return f, nil
		}
	}
	return nil, fmt.Errorf("%w: extension %q", ErrUnknownFormat, ext)
}

func malformed(line int, msg string) error {
	return fmt.Errorf("%w: line %d: %s", ErrMalformed, line, msg)
}
