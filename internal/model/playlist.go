package model

import "slices"

// Playlist is an ordered collection of tracks. Track order is
// preserved and is the order formats serialize in.
//
// Example:
//
//	var p model.Playlist
//	_, err := p.AddTrack(model.Attrs{
//	    "creator":  "Blur",
//	    "title":    "Song 2",
//	    "duration": 110000,
//	    "location": "song2.mp3",
//	})
type Playlist struct {
	tracks []*Track
}

// AddTrack appends a track to the playlist.
//
// value may be a *Track (appended as-is) or an Attrs mapping
// (constructs a Track via NewTrack). The appended track is returned.
func (p *Playlist) AddTrack(value any) (*Track, error) {
	var track *Track
	switch v := value.(type) {
	case *Track:
		track = v
	case Attrs:
		t, err := NewTrack(v)
		if err != nil {
			return nil, err
		}
		track = t
	case map[string]any:
		return p.AddTrack(Attrs(v))
	default:
		return nil, attrTypeError("track", "*Track or Attrs", value)
	}
	p.tracks = append(p.tracks, track)
	return track, nil
}

// Tracks returns the tracks in playlist order. The slice is a copy;
// the tracks themselves are shared.
func (p *Playlist) Tracks() []*Track {
	return slices.Clone(p.tracks)
}

// Len returns the number of tracks.
func (p *Playlist) Len() int {
	return len(p.tracks)
}

// Remove deletes the track at index i. Out-of-range indexes are a
// no-op.
func (p *Playlist) Remove(i int) {
	if i < 0 || i >= len(p.tracks) {
		return
	}
	p.tracks = slices.Delete(p.tracks, i, i+1)
}

// Move shifts the track at index i to index j, preserving the order
// of the remaining tracks. Out-of-range indexes are a no-op.
func (p *Playlist) Move(i, j int) {
	if i < 0 || i >= len(p.tracks) || j < 0 || j >= len(p.tracks) || i == j {
		return
	}
	t := p.tracks[i]
	p.tracks = slices.Delete(p.tracks, i, i+1)
	p.tracks = slices.Insert(p.tracks, j, t)
}
