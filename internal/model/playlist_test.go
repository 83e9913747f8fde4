package model

import (
	"errors"
	"testing"
)

func TestPlaylist_AddTrack(t *testing.T) {
	var p Playlist

	track, err := NewTrack(Attrs{"title": "One One One", "location": "one_one_one.mp3"})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := p.AddTrack(track); err != nil {
		t.Fatalf("AddTrack(*Track) error = %v", err)
	}

	added, err := p.AddTrack(Attrs{"title": "Song 2", "location": "song2.mp3"})
	if err != nil {
		t.Fatalf("AddTrack(Attrs) error = %v", err)
	}
	if added.Title != "Song 2" {
		t.Errorf("added track Title = %q", added.Title)
	}

	tracks := p.Tracks()
	if len(tracks) != 2 {
		t.Fatalf("Len = %d, want 2", len(tracks))
	}
	if tracks[0].Title != "One One One" || tracks[1].Title != "Song 2" {
		t.Errorf("track order = %q, %q", tracks[0].Title, tracks[1].Title)
	}
}

func TestPlaylist_AddTrackErrors(t *testing.T) {
	var p Playlist

	if _, err := p.AddTrack(Attrs{"bogus": "x"}); !errors.Is(err, ErrUnknownAttribute) {
		t.Errorf("AddTrack with unknown attr: error = %v", err)
	}
	if _, err := p.AddTrack("song2.mp3"); err == nil {
		t.Error("AddTrack with unsupported type should fail")
	}
	if p.Len() != 0 {
		t.Errorf("failed adds must not append, Len = %d", p.Len())
	}
}

func TestPlaylist_RemoveAndMove(t *testing.T) {
	var p Playlist
	for _, title := range []string{"a", "b", "c"} {
		if _, err := p.AddTrack(Attrs{"title": title}); err != nil {
			t.Fatal(err)
		}
	}

	p.Move(0, 2)
	if got := titles(&p); got != "b,c,a" {
		t.Errorf("after Move(0,2) order = %s", got)
	}

	p.Remove(1)
	if got := titles(&p); got != "b,a" {
		t.Errorf("after Remove(1) order = %s", got)
	}

	// Out-of-range indexes are no-ops.
	p.Remove(5)
	p.Move(-1, 0)
	if got := titles(&p); got != "b,a" {
		t.Errorf("out-of-range ops changed order to %s", got)
	}
}

func titles(p *Playlist) string {
	s := ""
	for i, tr := range p.Tracks() {
		if i > 0 {
			s += ","
		}
		s += tr.Title
	}
	return s
}
