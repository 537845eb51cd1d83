package intention

import "strings"

// Selector is a method's identity for merging purposes: the ordered
// keyword labels plus the parameter count, ignoring parameter names and
// types (spec.md §3). Two methods merge iff their selectors are Equal.
type Selector struct {
	Pieces []string
}

func NewSelector(pieces ...string) Selector {
	cp := make([]string, len(pieces))
	copy(cp, pieces)
	return Selector{Pieces: cp}
}

// Equal reports whether two selectors identify the same method: same
// keyword pieces, same count, in order.
func (s Selector) Equal(other Selector) bool {
	if len(s.Pieces) != len(other.Pieces) {
		return false
	}
	for i, p := range s.Pieces {
		if p != other.Pieces[i] {
			return false
		}
	}
	return true
}

// String renders the full selector, e.g. "initWithName:age:".
func (s Selector) String() string {
	if len(s.Pieces) == 0 {
		return ""
	}
	if len(s.Pieces) == 1 && !strings.Contains(s.Pieces[0], ":") {
		return s.Pieces[0] // unary selector has no trailing colon
	}
	var sb strings.Builder
	for _, p := range s.Pieces {
		sb.WriteString(p)
	}
	return sb.String()
}

// GetterSelector is the selector a property named name synthesizes for its
// getter (spec.md §4.4.3).
func GetterSelector(name string) Selector {
	return NewSelector(name)
}

// SetterSelector is the selector a property named name synthesizes for its
// setter ("set" + capitalized name + ":"). An explicit setter= name is
// honored by PropertyIntention.SetterSelector, not here.
func SetterSelector(name string) Selector {
	return NewSelector("set" + strings.ToUpper(name[:1]) + name[1:] + ":")
}
