package format

import (
	"bufio"
	"fmt"
	"strconv"
	"strings"

	"tracklist/internal/model"
)

// PLS is the Winamp/SHOUTcast INI-style playlist codec.
//
// Canonical encoding:
//
//	[playlist]
//	File1=one_one_one.mp3
//	Title1=One One One
//	Length1=215
//	NumberOfEntries=1
//	Version=2
//
// PLS carries location, title and duration only; contributor credits
// are not representable in this format. Length is the duration in
// whole seconds, -1 when unknown.
//
// Parse requires the [playlist] header and a File<n> entry for every
// index from 1 to NumberOfEntries; gaps, non-numeric values and a
// wrong NumberOfEntries fail the parse. Unrecognized keys are
// tolerated so playlists written by other tools still load.
type PLS struct{}

// Name returns "pls".
func (PLS) Name() string { return "pls" }

// Extension returns ".pls".
func (PLS) Extension() string { return ".pls" }

// Parse decodes PLS text.
func (PLS) Parse(text string) (*model.Playlist, error) {
	files := make(map[int]string)
	titles := make(map[int]string)
	lengths := make(map[int]float64)
	entries := -1
	sawHeader := false
	maxIndex := 0

	sc := bufio.NewScanner(strings.NewReader(text))
	line := 0
	for sc.Scan() {
		line++
		raw := strings.TrimSpace(strings.TrimSuffix(sc.Text(), "\r"))
		if raw == "" || strings.HasPrefix(raw, ";") {
			continue
		}
		if strings.HasPrefix(raw, "[") {
			if !strings.EqualFold(raw, "[playlist]") {
				return nil, malformed(line, "unexpected section "+strconv.Quote(raw))
			}
			sawHeader = true
			continue
		}
		if !sawHeader {
			return nil, malformed(line, "entry before [playlist] header")
		}

		key, value, found := strings.Cut(raw, "=")
		if !found {
			return nil, malformed(line, "expected key=value")
		}

		switch {
		case strings.HasPrefix(key, "File"):
			i, err := plsIndex(key, "File")
			if err != nil {
				return nil, malformed(line, err.Error())
			}
			files[i] = value
			if i > maxIndex {
				maxIndex = i
			}
		case strings.HasPrefix(key, "Title"):
			i, err := plsIndex(key, "Title")
			if err != nil {
				return nil, malformed(line, err.Error())
			}
			titles[i] = value
			if i > maxIndex {
				maxIndex = i
			}
		case strings.HasPrefix(key, "Length"):
			i, err := plsIndex(key, "Length")
			if err != nil {
				return nil, malformed(line, err.Error())
			}
			secs, err := parseSeconds(value)
			if err != nil {
				return nil, malformed(line, "Length "+strconv.Quote(value)+" is not numeric")
			}
			lengths[i] = secs
			if i > maxIndex {
				maxIndex = i
			}
		case key == "NumberOfEntries":
			n, err := strconv.Atoi(value)
			if err != nil {
				return nil, malformed(line, "NumberOfEntries "+strconv.Quote(value)+" is not numeric")
			}
			entries = n
		case key == "Version":
			// Accepted and ignored; we always write version 2.
		default:
			// Other tools write extra keys; ignore them.
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if !sawHeader {
		return nil, fmt.Errorf("%w: missing [playlist] header", ErrMalformed)
	}
	if entries >= 0 && entries != maxIndex {
		return nil, fmt.Errorf("%w: NumberOfEntries=%d but highest entry index is %d", ErrMalformed, entries, maxIndex)
	}

	playlist := &model.Playlist{}
	for i := 1; i <= maxIndex; i++ {
		location, ok := files[i]
		if !ok {
			return nil, fmt.Errorf("%w: missing File%d", ErrMalformed, i)
		}
		attrs := model.Attrs{
			"location": location,
			"title":    titles[i],
		}
		if secs, ok := lengths[i]; ok {
			if secs <= 0 {
				attrs["duration"] = -1
			} else {
				attrs["duration"] = secs * 1000
			}
		}
		if _, err := playlist.AddTrack(attrs); err != nil {
			return nil, err
		}
	}
	return playlist, nil
}

// Generate renders the canonical PLS encoding.
func (PLS) Generate(p *model.Playlist) (string, error) {
	var sb strings.Builder
	sb.WriteString("[playlist]\n")

	tracks := p.Tracks()
	for i, track := range tracks {
		idx := i + 1
		fmt.Fprintf(&sb, "File%d=%s\n", idx, track.Location)
		fmt.Fprintf(&sb, "Title%d=%s\n", idx, track.Title)
		fmt.Fprintf(&sb, "Length%d=%d\n", idx, extinfSeconds(track))
	}

	fmt.Fprintf(&sb, "NumberOfEntries=%d\n", len(tracks))
	sb.WriteString("Version=2\n")
	return sb.String(), nil
}

// plsIndex extracts the numeric suffix of an indexed PLS key.
func plsIndex(key, prefix string) (int, error) {
	i, err := strconv.Atoi(strings.TrimPrefix(key, prefix))
	if err != nil || i < 1 {
		return 0, fmt.Errorf("bad entry index in %q", key)
	}
	return i, nil
}
