package model

import (
	"maps"
	"slices"
)

// IdentifierKind names a kind of external track identifier.
type IdentifierKind string

// IdentifierISRC is the International Standard Recording Code.
const IdentifierISRC IdentifierKind = "isrc"

// Track is a single playlist entry: descriptive metadata, an ordered
// list of credited contributors and a mapping of external identifiers.
//
// Simple descriptive fields are plain exported fields. State with
// invariants attached is kept behind methods:
//
//   - the duration is normalized so that the raw sentinel values 0 and
//     -1 collapse to "unknown" (see SetDuration / Duration)
//   - contributors keep insertion order, and the role-specific setters
//     replace rather than accumulate (see ReplaceContributor)
//   - identifiers live in a per-kind mapping (see Identifier / ISRC)
//
// A Track owns its contributors and identifiers exclusively; nothing
// here performs I/O, and a Track is not safe for concurrent mutation.
//
// Example:
//
//	track, err := model.NewTrack(model.Attrs{
//	    "creator":  "Hot Chip",
//	    "title":    "One One One",
//	    "duration": 215000,
//	    "location": "one_one_one.mp3",
//	})
type Track struct {
	// Location is the track's URI or file path.
	Location string

	// Title is the track title.
	Title string

	// Album is the album the track appears on.
	Album string

	// CatalogueNumber is the release catalogue number.
	CatalogueNumber string

	// TrackNumber is the position on the release (1-indexed).
	TrackNumber int

	// Side is the record side ("A", "B", ...) for vinyl releases.
	Side string

	// RecordLabel is the releasing label.
	RecordLabel string

	// Publisher is the music publisher.
	Publisher string

	// StartTime is the playback start offset in milliseconds.
	// May carry sub-millisecond fractional precision.
	StartTime float64

	// duration in milliseconds; 0 means unknown. Raw 0 and -1 are
	// collapsed to unknown on assignment, so every stored value is > 0.
	duration float64

	identifiers  map[IdentifierKind]string
	contributors []Contributor
}

// NewTrack constructs a Track from an attribute mapping.
//
// Every key in attrs is applied through the corresponding setter, so
// values get the same normalization as direct mutation ("duration"
// text parsing, role replacement for "creator"/"performer"/...).
// A key with no corresponding setter fails with ErrUnknownAttribute.
//
// Recognized keys: location, title, album, catalogue_number,
// track_number, side, record_label, publisher, start_time, duration,
// isrc, creator, performer, artist, composer, arranger.
func NewTrack(attrs Attrs) (*Track, error) {
	t := &Track{
		identifiers:  make(map[IdentifierKind]string),
		contributors: make([]Contributor, 0),
	}
	for key, value := range attrs {
		if err := t.Set(key, value); err != nil {
			return nil, err
		}
	}
	return t, nil
}

// Set applies one attribute by name, dispatching to the matching
// setter. Unknown keys fail with ErrUnknownAttribute.
func (t *Track) Set(key string, value any) error {
	switch key {
	case "location":
		return t.setText(key, value, &t.Location)
	case "title":
		return t.setText(key, value, &t.Title)
	case "album":
		return t.setText(key, value, &t.Album)
	case "catalogue_number":
		return t.setText(key, value, &t.CatalogueNumber)
	case "side":
		return t.setText(key, value, &t.Side)
	case "record_label":
		return t.setText(key, value, &t.RecordLabel)
	case "publisher":
		return t.setText(key, value, &t.Publisher)
	case "track_number":
		n, err := intValue(key, value)
		if err != nil {
			return err
		}
		t.TrackNumber = n
		return nil
	case "start_time":
		ms, err := numericValue(key, value)
		if err != nil {
			return err
		}
		t.StartTime = ms
		return nil
	case "duration":
		return t.SetDuration(value)
	case "isrc":
		s, err := stringValue(key, value)
		if err != nil {
			return err
		}
		t.SetISRC(s)
		return nil
	case "creator":
		return t.setRoleName(key, value, RoleNone)
	case "performer", "artist":
		return t.setRoleName(key, value, RolePerformer)
	case "composer":
		return t.setRoleName(key, value, RoleComposer)
	case "arranger":
		return t.setRoleName(key, value, RoleArranger)
	default:
		return unknownAttr(key)
	}
}

func (t *Track) setText(key string, value any, field *string) error {
	s, err := stringValue(key, value)
	if err != nil {
		return err
	}
	*field = s
	return nil
}

func (t *Track) setRoleName(key string, value any, role Role) error {
	s, err := stringValue(key, value)
	if err != nil {
		return err
	}
	t.ReplaceContributor(role, s)
	return nil
}

// Duration returns the track length in milliseconds and whether it is
// known. A duration assigned as 0 or -1 reads back as unknown.
func (t *Track) Duration() (float64, bool) {
	return t.duration, t.duration > 0
}

// SetDuration stores the track length in milliseconds.
//
// Numeric values are stored directly. Text is parsed as a float when
// it contains a decimal point, otherwise as an integer; non-numeric
// text is an error, never coerced to zero. The raw sentinel values 0
// and -1 collapse to "unknown".
func (t *Track) SetDuration(value any) error {
	ms, err := numericValue("duration", value)
	if err != nil {
		return err
	}
	if ms == 0 || ms == -1 {
		t.duration = 0
		return nil
	}
	t.duration = ms
	return nil
}

// Identifier reads an external identifier by kind.
func (t *Track) Identifier(kind IdentifierKind) (string, bool) {
	v, ok := t.identifiers[kind]
	return v, ok
}

// SetIdentifier stores an external identifier. Other kinds are left
// untouched.
func (t *Track) SetIdentifier(kind IdentifierKind, value string) {
	if t.identifiers == nil {
		t.identifiers = make(map[IdentifierKind]string)
	}
	t.identifiers[kind] = value
}

// ISRC returns the track's ISRC, or "" when none is set.
func (t *Track) ISRC() string {
	return t.identifiers[IdentifierISRC]
}

// SetISRC stores the track's ISRC.
func (t *Track) SetISRC(value string) {
	t.SetIdentifier(IdentifierISRC, value)
}

// AddContributor appends a contributor.
//
// value may be a Contributor, a *Contributor, or an Attrs mapping
// (constructed via NewContributor). Anything else is an error.
func (t *Track) AddContributor(value any) error {
	switch v := value.(type) {
	case Contributor:
		t.contributors = append(t.contributors, v)
	case *Contributor:
		t.contributors = append(t.contributors, *v)
	case Attrs:
		c, err := NewContributor(v)
		if err != nil {
			return err
		}
		t.contributors = append(t.contributors, c)
	case map[string]any:
		return t.AddContributor(Attrs(v))
	default:
		return attrTypeError("contributor", "Contributor or Attrs", value)
	}
	return nil
}

// ReplaceContributor removes every contributor whose role equals role,
// then appends a new contributor {role, name}. This is the single
// mutation path behind all role-specific setters, so repeated
// assignment never accumulates duplicates.
func (t *Track) ReplaceContributor(role Role, name string) {
	t.contributors = slices.DeleteFunc(t.contributors, func(c Contributor) bool {
		return c.Role == role
	})
	t.contributors = append(t.contributors, Contributor{Role: role, Name: name})
}

// Contributors returns the contributors in insertion order. The
// returned slice is a copy; mutating it does not affect the track.
func (t *Track) Contributors() []Contributor {
	return slices.Clone(t.contributors)
}

// ContributorNames renders the names of all contributors matching
// role as a single string. RoleAny matches every contributor.
//
// Join rule: no matches yields "", a single match yields the name
// unchanged, and two or more matches join all but the last with ", "
// and the last with " & " ("A, B & C").
func (t *Track) ContributorNames(role Role) string {
	var names []string
	for _, c := range t.contributors {
		if role == RoleAny || c.Role == role {
			names = append(names, c.Name)
		}
	}
	switch len(names) {
	case 0:
		return ""
	case 1:
		return names[0]
	default:
		last := len(names) - 1
		joined := names[0]
		for _, n := range names[1:last] {
			joined += ", " + n
		}
		return joined + " & " + names[last]
	}
}

// Creator returns the joined names of the contributors credited
// without a role, or "" when there are none.
func (t *Track) Creator() string {
	return t.ContributorNames(RoleNone)
}

// SetCreator replaces the no-role creator credit.
func (t *Track) SetCreator(name string) {
	t.ReplaceContributor(RoleNone, name)
}

// Performer returns the joined names of the performer contributors,
// falling back to Creator when no performer is credited. The fallback
// is one-way: Creator never falls back to Performer.
func (t *Track) Performer() string {
	if s := t.ContributorNames(RolePerformer); s != "" {
		return s
	}
	return t.Creator()
}

// SetPerformer replaces the performer credit.
func (t *Track) SetPerformer(name string) {
	t.ReplaceContributor(RolePerformer, name)
}

// Artist is an alias for Performer.
func (t *Track) Artist() string {
	return t.Performer()
}

// SetArtist is an alias for SetPerformer.
func (t *Track) SetArtist(name string) {
	t.SetPerformer(name)
}

// Composer returns the joined composer names, with no fallback.
func (t *Track) Composer() string {
	return t.ContributorNames(RoleComposer)
}

// SetComposer replaces the composer credit.
func (t *Track) SetComposer(name string) {
	t.ReplaceContributor(RoleComposer, name)
}

// Arranger returns the joined arranger names, with no fallback.
func (t *Track) Arranger() string {
	return t.ContributorNames(RoleArranger)
}

// SetArranger replaces the arranger credit.
func (t *Track) SetArranger(name string) {
	t.ReplaceContributor(RoleArranger, name)
}

// ToMap returns a snapshot of every stored attribute.
//
// The duration is nil when unknown. Contributors and identifiers are
// included as copies of their containers, not flattened and not
// aliased to the track's own state.
func (t *Track) ToMap() map[string]any {
	var duration any
	if ms, ok := t.Duration(); ok {
		duration = ms
	}
	return map[string]any{
		"location":         t.Location,
		"title":            t.Title,
		"album":            t.Album,
		"catalogue_number": t.CatalogueNumber,
		"track_number":     t.TrackNumber,
		"side":             t.Side,
		"record_label":     t.RecordLabel,
		"publisher":        t.Publisher,
		"start_time":       t.StartTime,
		"duration":         duration,
		"identifiers":      maps.Clone(t.identifiers),
		"contributors":     slices.Clone(t.contributors),
	}
}
