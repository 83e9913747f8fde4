package model

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Attrs is an attribute mapping used to construct tracks and
// contributors. Keys must match the documented attribute names
// exactly; an unrecognized key is a hard error, never ignored.
type Attrs map[string]any

// ErrUnknownAttribute is returned when a construction mapping
// contains a key with no corresponding setter.
var ErrUnknownAttribute = errors.New("unknown attribute")

func unknownAttr(key string) error {
	return fmt.Errorf("%w: %q", ErrUnknownAttribute, key)
}

func attrTypeError(key, want string, got any) error {
	return fmt.Errorf("attribute %q: expected %s, got %T", key, want, got)
}

// stringValue coerces an attribute value that must be textual.
func stringValue(key string, value any) (string, error) {
	s, ok := value.(string)
	if !ok {
		return "", attrTypeError(key, "string", value)
	}
	return s, nil
}

// intValue accepts an int or its decimal text representation.
func intValue(key string, value any) (int, error) {
	switch v := value.(type) {
	case int:
		return v, nil
	case int64:
		return int(v), nil
	case float64:
		return int(v), nil
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return 0, fmt.Errorf("attribute %q: %q is not an integer", key, v)
		}
		return n, nil
	default:
		return 0, attrTypeError(key, "integer", value)
	}
}

// numericValue accepts a numeric value directly, or parses its text
// representation: text containing a decimal point is parsed as a
// float, anything else as an integer. Non-numeric text is an error,
// never silently coerced.
func numericValue(key string, value any) (float64, error) {
	switch v := value.(type) {
	case float64:
		return v, nil
	case float32:
		return float64(v), nil
	case int:
		return float64(v), nil
	case int64:
		return float64(v), nil
	case string:
		s := strings.TrimSpace(v)
		if strings.Contains(s, ".") {
			f, err := strconv.ParseFloat(s, 64)
			if err != nil {
				return 0, fmt.Errorf("attribute %q: %q is not numeric", key, v)
			}
			return f, nil
		}
		n, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("attribute %q: %q is not numeric", key, v)
		}
		return float64(n), nil
	default:
		return 0, attrTypeError(key, "number", value)
	}
}
