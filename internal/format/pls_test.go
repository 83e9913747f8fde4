package format

import (
	"errors"
	"testing"

	"tracklist/internal/model"
)

const twoTrackPLS = `[playlist]
File1=one_one_one.mp3
Title1=One One One
Length1=215
File2=song2.mp3
Title2=Song 2
Length2=110
NumberOfEntries=2
Version=2
`

func TestPLS_ParseFixture(t *testing.T) {
	playlist, err := PLS{}.Parse(twoTrackPLS)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	tracks := playlist.Tracks()
	if len(tracks) != 2 {
		t.Fatalf("parsed %d tracks, want 2", len(tracks))
	}
	if tracks[0].Location != "one_one_one.mp3" || tracks[0].Title != "One One One" {
		t.Errorf("track 0 = %q / %q", tracks[0].Location, tracks[0].Title)
	}
	if ms, ok := tracks[0].Duration(); !ok || ms != 215000 {
		t.Errorf("track 0 Duration() = %v, %v", ms, ok)
	}
	if tracks[1].Title != "Song 2" {
		t.Errorf("track 1 Title = %q", tracks[1].Title)
	}
}

func TestPLS_RoundTripBytes(t *testing.T) {
	playlist, err := PLS{}.Parse(twoTrackPLS)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	out, err := PLS{}.Generate(playlist)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if out != twoTrackPLS {
		t.Errorf("Generate(Parse(text)) != text\ngot:\n%s\nwant:\n%s", out, twoTrackPLS)
	}
}

func TestPLS_GenerateUnknownDuration(t *testing.T) {
	playlist := &model.Playlist{}
	if _, err := playlist.AddTrack(model.Attrs{"title": "Stream", "location": "http://example.com/s"}); err != nil {
		t.Fatal(err)
	}

	out, err := PLS{}.Generate(playlist)
	if err != nil {
		t.Fatal(err)
	}
	want := "[playlist]\nFile1=http://example.com/s\nTitle1=Stream\nLength1=-1\nNumberOfEntries=1\nVersion=2\n"
	if out != want {
		t.Errorf("Generate() = %q, want %q", out, want)
	}

	reparsed, err := PLS{}.Parse(out)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := reparsed.Tracks()[0].Duration(); ok {
		t.Error("Length=-1 should parse back as unknown duration")
	}
}

func TestPLS_EntryOrderByIndex(t *testing.T) {
	// Entry order follows the numeric index, not line order.
	text := "[playlist]\nFile2=b.mp3\nTitle2=B\nLength2=2\nFile1=a.mp3\nTitle1=A\nLength1=1\nNumberOfEntries=2\nVersion=2\n"
	playlist, err := PLS{}.Parse(text)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	tracks := playlist.Tracks()
	if tracks[0].Location != "a.mp3" || tracks[1].Location != "b.mp3" {
		t.Errorf("order = %q, %q; want index order", tracks[0].Location, tracks[1].Location)
	}
}

func TestPLS_IgnoresUnknownKeys(t *testing.T) {
	text := "[playlist]\nFile1=a.mp3\nTitle1=A\nLength1=1\nX-GStreamer=1\nNumberOfEntries=1\nVersion=2\n"
	playlist, err := PLS{}.Parse(text)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if playlist.Len() != 1 {
		t.Errorf("parsed %d tracks, want 1", playlist.Len())
	}
}

func TestPLS_MalformedInput(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"missing header", "File1=a.mp3\nNumberOfEntries=1\n"},
		{"wrong section", "[settings]\nFile1=a.mp3\n"},
		{"no separator", "[playlist]\nFile1 a.mp3\n"},
		{"bad length", "[playlist]\nFile1=a.mp3\nLength1=abc\nNumberOfEntries=1\n"},
		{"entry count mismatch", "[playlist]\nFile1=a.mp3\nNumberOfEntries=3\n"},
		{"gap in indexes", "[playlist]\nFile1=a.mp3\nFile3=c.mp3\nNumberOfEntries=3\n"},
		{"bad index", "[playlist]\nFile0=a.mp3\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := PLS{}.Parse(tt.text)
			if err == nil {
				t.Fatal("Parse() should fail")
			}
			if !errors.Is(err, ErrMalformed) {
				t.Errorf("error = %v, want ErrMalformed", err)
			}
		})
	}
}

func TestRegistry(t *testing.T) {
	tests := []struct {
		lookup  func() (Format, error)
		want    string
		wantErr bool
	}{
		{func() (Format, error) { return ForName("m3u") }, "m3u", false},
		{func() (Format, error) { return ForName("PLS") }, "pls", false},
		{func() (Format, error) { return ForName("wpl") }, "", true},
		{func() (Format, error) { return ForPath("/music/mix.m3u") }, "m3u", false},
		{func() (Format, error) { return ForPath("mix.PLS") }, "pls", false},
		{func() (Format, error) { return ForPath("mix.txt") }, "", true},
	}

	for _, tt := range tests {
		f, err := tt.lookup()
		if tt.wantErr {
			if !errors.Is(err, ErrUnknownFormat) {
				t.Errorf("error = %v, want ErrUnknownFormat", err)
			}
			continue
		}
		if err != nil {
			t.Errorf("lookup error = %v", err)
			continue
		}
		if f.Name() != tt.want {
			t.Errorf("Name() = %q, want %q", f.Name(), tt.want)
		}
	}
}
