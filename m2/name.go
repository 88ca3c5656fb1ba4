package m2

import "strings"

// Separator joins the segments of a namespace-qualified name.
const Separator = `\`

// Name is an immutable namespace-qualified class name, e.g.
// Vendor\Module\Model\Product.
type Name struct {
	segments []string
}

func NameFromSegments(segments []string) Name {
	owned := make([]string, len(segments))
	copy(owned, segments)
	return Name{segments: owned}
}

// ParseName reads a class name out of raw document text. It accepts the
// canonical form Vendor\Module\Class, a leading root separator, the doubled
// backslashes of JS/JSON string literals, and the underscore module form
// Vendor_Module used by registration.php and XML module attributes.
func ParseName(text string) (Name, bool) {
	text = strings.TrimSpace(text)
	text = strings.Trim(text, `'"`+"`")
	text = strings.ReplaceAll(text, Separator+Separator, Separator)
	text = strings.TrimPrefix(text, Separator)
	if text == "" {
		return Name{}, false
	}

	var segments []string
	if !strings.Contains(text, Separator) && strings.Contains(text, "_") {
		segments = strings.SplitN(text, "_", 2)
	} else {
		segments = strings.Split(text, Separator)
	}

	for _, seg := range segments {
		if !validSegment(seg) {
			return Name{}, false
		}
	}
	return Name{segments: segments}, true
}

func (n Name) Segments() []string { return n.segments }

func (n Name) Len() int { return len(n.segments) }

func (n Name) IsEmpty() bool { return len(n.segments) == 0 }

// Last returns the final segment, the bare class name.
func (n Name) Last() string {
	if len(n.segments) == 0 {
		return ""
	}
	return n.segments[len(n.segments)-1]
}

func (n Name) String() string {
	return strings.Join(n.segments, Separator)
}

// validSegment accepts PHP identifier segments. Dots are tolerated past the
// first character: they cannot start an identifier, but references pulled out
// of config strings occasionally carry them, and the resolver deals with the
// consequences when it forces the class-file extension.
func validSegment(seg string) bool {
	if seg == "" {
		return false
	}
	for i, r := range seg {
		switch {
		case r == '_':
		case r >= 'a' && r <= 'z':
		case r >= 'A' && r <= 'Z':
		case r == '.' || (r >= '0' && r <= '9'):
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}
	return true
}
