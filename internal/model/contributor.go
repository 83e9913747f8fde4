package model

// Role classifies a contributor's function on a track.
//
// The zero value RoleNone marks a generic creator credit with no
// specific function. RoleAny is a query wildcard for ContributorNames
// and is never stored on a Contributor.
//
// Values outside the named set are accepted and carried as opaque
// tags: the named accessors (Creator, Performer, ...) won't match
// them, but they can still be matched by comparing Role directly.
type Role string

const (
	// RoleNone marks a generic creator credit without a specific role.
	RoleNone Role = ""

	// RolePerformer credits the performing artist.
	RolePerformer Role = "performer"

	// RoleComposer credits the composer.
	RoleComposer Role = "composer"

	// RoleArranger credits the arranger.
	RoleArranger Role = "arranger"

	// RoleAny matches every role when querying contributor names.
	// It is only meaningful as a query argument, never as a stored role.
	RoleAny Role = "*"
)

// Contributor is a person credited on a track.
//
// A Contributor is owned by the track it was added to; replacing a
// role via the track setters discards the previous contributors of
// that role.
//
// Example:
//
//	c := model.Contributor{Role: model.RolePerformer, Name: "Hot Chip"}
type Contributor struct {
	// Role is the contributor's function. RoleNone means a generic
	// creator credit.
	Role Role

	// Name is the credited name.
	Name string
}

// NewContributor builds a Contributor from an attribute mapping.
//
// Recognized keys are "role" and "name". Role defaults to RoleNone
// when omitted. Any other key fails with ErrUnknownAttribute.
//
// Example:
//
//	c, err := model.NewContributor(model.Attrs{"name": "Blur"})
//	// c.Role == model.RoleNone
func NewContributor(attrs Attrs) (Contributor, error) {
	c := Contributor{Role: RoleNone}
	for key, value := range attrs {
		switch key {
		case "role":
			switch v := value.(type) {
			case Role:
				c.Role = v
			case string:
				c.Role = Role(v)
			default:
				return Contributor{}, attrTypeError("role", "string", value)
			}
		case "name":
			s, err := stringValue("name", value)
			if err != nil {
				return Contributor{}, err
			}
			c.Name = s
		default:
			return Contributor{}, unknownAttr(key)
		}
	}
	return c, nil
}
