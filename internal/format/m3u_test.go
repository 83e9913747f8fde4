package format

import (
	"errors"
	"strings"
	"testing"

	"tracklist/internal/model"
)

const twoTrackM3U = `#EXTM3U
#EXTINF:215,Hot Chip - One One One
one_one_one.mp3
#EXTINF:110,Blur - Song 2
song2.mp3
`

func TestM3U_ParseFixture(t *testing.T) {
	playlist, err := M3U{}.Parse(twoTrackM3U)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	tracks := playlist.Tracks()
	if len(tracks) != 2 {
		t.Fatalf("parsed %d tracks, want 2", len(tracks))
	}

	tests := []struct {
		creator  string
		title    string
		duration float64
		location string
	}{
		{"Hot Chip", "One One One", 215000, "one_one_one.mp3"},
		{"Blur", "Song 2", 110000, "song2.mp3"},
	}
	for i, want := range tests {
		track := tracks[i]
		if track.Creator() != want.creator {
			t.Errorf("track %d Creator() = %q, want %q", i, track.Creator(), want.creator)
		}
		if track.Title != want.title {
			t.Errorf("track %d Title = %q, want %q", i, track.Title, want.title)
		}
		if ms, ok := track.Duration(); !ok || ms != want.duration {
			t.Errorf("track %d Duration() = %v, %v; want %v", i, ms, ok, want.duration)
		}
		if track.Location != want.location {
			t.Errorf("track %d Location = %q, want %q", i, track.Location, want.location)
		}
	}
}

func TestM3U_RoundTripBytes(t *testing.T) {
	playlist, err := M3U{}.Parse(twoTrackM3U)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	out, err := M3U{}.Generate(playlist)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if out != twoTrackM3U {
		t.Errorf("Generate(Parse(text)) != text\ngot:\n%s\nwant:\n%s", out, twoTrackM3U)
	}
}

func TestM3U_GenerateFromAttrs(t *testing.T) {
	playlist := &model.Playlist{}
	fixtures := []model.Attrs{
		{"creator": "Hot Chip", "title": "One One One", "duration": 215000, "location": "one_one_one.mp3"},
		{"creator": "Blur", "title": "Song 2", "duration": 110000, "location": "song2.mp3"},
	}
	for _, attrs := range fixtures {
		if _, err := playlist.AddTrack(attrs); err != nil {
			t.Fatalf("AddTrack() error = %v", err)
		}
	}

	out, err := M3U{}.Generate(playlist)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if out != twoTrackM3U {
		t.Errorf("Generate() = %q, want %q", out, twoTrackM3U)
	}
}

func TestM3U_UnknownDuration(t *testing.T) {
	text := "#EXTM3U\n#EXTINF:-1,Live Stream\nhttp://example.com/stream\n"
	playlist, err := M3U{}.Parse(text)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if _, ok := playlist.Tracks()[0].Duration(); ok {
		t.Error("EXTINF:-1 should parse as unknown duration")
	}

	out, err := M3U{}.Generate(playlist)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if out != text {
		t.Errorf("round trip with unknown duration: got %q, want %q", out, text)
	}
}

func TestM3U_DisplayWithoutArtist(t *testing.T) {
	text := "#EXTM3U\n#EXTINF:95,Untitled\nuntitled.mp3\n"
	playlist, err := M3U{}.Parse(text)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	track := playlist.Tracks()[0]
	if track.Title != "Untitled" {
		t.Errorf("Title = %q", track.Title)
	}
	if track.Creator() != "" {
		t.Errorf("Creator() = %q, want absent", track.Creator())
	}

	out, err := M3U{}.Generate(playlist)
	if err != nil {
		t.Fatal(err)
	}
	if out != text {
		t.Errorf("round trip without artist: got %q, want %q", out, text)
	}
}

func TestM3U_ParseSimplePlaylist(t *testing.T) {
	text := "one_one_one.mp3\nsong2.mp3\n"
	playlist, err := M3U{}.Parse(text)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	tracks := playlist.Tracks()
	if len(tracks) != 2 {
		t.Fatalf("parsed %d tracks, want 2", len(tracks))
	}
	if tracks[0].Location != "one_one_one.mp3" || tracks[1].Location != "song2.mp3" {
		t.Errorf("locations = %q, %q", tracks[0].Location, tracks[1].Location)
	}
}

func TestM3U_SkipsCommentsAndBlanks(t *testing.T) {
	text := "#EXTM3U\n\n# a comment\n#EXTINF:110,Blur - Song 2\n\nsong2.mp3\n"
	playlist, err := M3U{}.Parse(text)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if playlist.Len() != 1 {
		t.Errorf("parsed %d tracks, want 1", playlist.Len())
	}
}

func TestM3U_MalformedInput(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"non-numeric length", "#EXTM3U\n#EXTINF:abc,Title\nfile.mp3\n"},
		{"missing comma", "#EXTM3U\n#EXTINF:215\nfile.mp3\n"},
		{"directive at EOF", "#EXTM3U\n#EXTINF:215,Title\n"},
		{"two directives in a row", "#EXTM3U\n#EXTINF:215,A\n#EXTINF:110,B\nfile.mp3\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := M3U{}.Parse(tt.text)
			if err == nil {
				t.Fatal("Parse() should fail")
			}
			if !errors.Is(err, ErrMalformed) {
				t.Errorf("error = %v, want ErrMalformed", err)
			}
		})
	}
}

func TestM3U_CRLFInput(t *testing.T) {
	text := strings.ReplaceAll(twoTrackM3U, "\n", "\r\n")
	playlist, err := M3U{}.Parse(text)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if playlist.Len() != 2 {
		t.Errorf("parsed %d tracks, want 2", playlist.Len())
	}
	if playlist.Tracks()[0].Location != "one_one_one.mp3" {
		t.Errorf("Location = %q, CR should be stripped", playlist.Tracks()[0].Location)
	}
}
