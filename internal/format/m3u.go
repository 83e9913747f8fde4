package format

import (
	"bufio"
	"math"
	"strconv"
	"strings"

	"tracklist/internal/model"
)

// M3U is the extended M3U codec.
//
// Canonical encoding, one record per track:
//
//	#EXTM3U
//	#EXTINF:215,Hot Chip - One One One
//	one_one_one.mp3
//
// The EXTINF length is the duration in whole seconds, -1 when the
// duration is unknown; sub-second precision is not representable and
// is rounded on generate. The display field is "Artist - Title" when
// an artist (performer, falling back to creator) is credited, else
// just the title; on parse the display is split on the first " - ",
// the left side becoming the creator credit.
//
// Parse is lenient about simple (non-extended) M3U: the #EXTM3U
// header is optional, lines starting with "#" other than directives
// are comments, and a bare location line yields a track with only a
// location. Corrupt directives fail the parse; records are never
// dropped silently.
type M3U struct{}

// Name returns "m3u".
func (M3U) Name() string { return "m3u" }

// Extension returns ".m3u".
func (M3U) Extension() string { return ".m3u" }

// Parse decodes extended or simple M3U text.
func (M3U) Parse(text string) (*model.Playlist, error) {
	playlist := &model.Playlist{}

	var pending model.Attrs // EXTINF fields awaiting their location line
	pendingLine := 0

	sc := bufio.NewScanner(strings.NewReader(text))
	line := 0
	for sc.Scan() {
		line++
		raw := strings.TrimSuffix(sc.Text(), "\r")

		switch {
		case strings.TrimSpace(raw) == "":
			continue
		case raw == "#EXTM3U" || strings.HasPrefix(raw, "#EXTM3U "):
			continue
		case strings.HasPrefix(raw, "#EXTINF:"):
			if pending != nil {
				return nil, malformed(pendingLine, "#EXTINF directive without a location line")
			}
			attrs, err := parseExtinf(raw, line)
			if err != nil {
				return nil, err
			}
			pending = attrs
			pendingLine = line
		case strings.HasPrefix(raw, "#"):
			// Comment.
			continue
		default:
			attrs := pending
			if attrs == nil {
				attrs = model.Attrs{}
			}
			attrs["location"] = raw
			if _, err := playlist.AddTrack(attrs); err != nil {
				return nil, err
			}
			pending = nil
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if pending != nil {
		return nil, malformed(pendingLine, "#EXTINF directive without a location line")
	}
	return playlist, nil
}

// Generate renders the canonical extended M3U encoding.
func (M3U) Generate(p *model.Playlist) (string, error) {
	var sb strings.Builder
	sb.WriteString("#EXTM3U\n")
	for _, track := range p.Tracks() {
		sb.WriteString("#EXTINF:")
		sb.WriteString(strconv.Itoa(extinfSeconds(track)))
		sb.WriteString(",")
		sb.WriteString(displayName(track))
		sb.WriteString("\n")
		sb.WriteString(track.Location)
		sb.WriteString("\n")
	}
	return sb.String(), nil
}

// extinfSeconds converts the stored millisecond duration to the EXTINF
// whole-second length, -1 when unknown.
func extinfSeconds(t *model.Track) int {
	ms, ok := t.Duration()
	if !ok {
		return -1
	}
	return int(math.Round(ms / 1000))
}

// displayName renders the EXTINF display field.
func displayName(t *model.Track) string {
	if artist := t.Artist(); artist != "" {
		return artist + " - " + t.Title
	}
	return t.Title
}

// parseExtinf extracts duration, creator and title from an EXTINF
// directive into a track attribute mapping.
func parseExtinf(raw string, line int) (model.Attrs, error) {
	body := strings.TrimPrefix(raw, "#EXTINF:")
	length, display, found := strings.Cut(body, ",")
	if !found {
		return nil, malformed(line, "#EXTINF has no comma separator")
	}

	secs, err := parseSeconds(length)
	if err != nil {
		return nil, malformed(line, "#EXTINF length "+strconv.Quote(length)+" is not numeric")
	}

	attrs := model.Attrs{}
	if secs <= 0 {
		// -1 (and 0) mark an unknown duration.
		attrs["duration"] = -1
	} else {
		attrs["duration"] = secs * 1000
	}

	if artist, title, found := strings.Cut(display, " - "); found {
		attrs["creator"] = artist
		attrs["title"] = title
	} else {
		attrs["title"] = display
	}
	return attrs, nil
}

// parseSeconds parses an EXTINF length: integer seconds normally,
// fractional seconds accepted on input.
func parseSeconds(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if strings.Contains(s, ".") {
		return strconv.ParseFloat(s, 64)
	}
	n, err := strconv.ParseInt(s, 10, 64)
	return float64(n), err
}
