// Package model defines the core playlist data structures: Track,
// Contributor and Playlist.
//
// # Tracks
//
// Track holds descriptive metadata, an ordered list of contributors
// and a mapping of external identifiers (ISRC). Tracks are built from
// attribute mappings; unrecognized keys are a hard error:
//
//	track, err := model.NewTrack(model.Attrs{
//	    "creator":  "Hot Chip",
//	    "title":    "One One One",
//	    "duration": 215000, // milliseconds
//	    "location": "one_one_one.mp3",
//	})
//
// # Contributors
//
// Contributors carry a role tag (performer, composer, arranger, or
// none for a generic creator credit). The role-specific setters
// replace any existing credit of that role, and the accessors join
// multiple names as "A, B & C":
//
//	track.SetComposer("Joe Goddard")
//	track.AddContributor(model.Contributor{Role: model.RoleComposer, Name: "Alexis Taylor"})
//	track.Composer() // "Joe Goddard & Alexis Taylor"
//
// # Playlists
//
// Playlist is an ordered collection of tracks; order is preserved and
// is the serialization order used by the format codecs:
//
//	var p model.Playlist
//	p.AddTrack(track)
//	p.AddTrack(model.Attrs{"title": "Song 2", "location": "song2.mp3"})
//
// The package performs no I/O and is not safe for concurrent
// mutation; callers needing that must synchronize externally.
package model
