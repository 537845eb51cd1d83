// Package nullability models the per-parameter/return nullability annotation
// (spec.md §3) and the assume-nonnull region that can elevate an
// unspecified annotation to nonnull within a bracketed source range.
package nullability

// Annotation is one of {unspecified, nonnull, nullable, nullResettable},
// following the teacher's tagged-constant-with-accessor-methods idiom.
type Annotation uint8

const (
	annUnspecified Annotation = iota
	annNonnull
	annNullable
	annNullResettable
)

var EAnnotation = Annotation(annUnspecified)

func (Annotation) Unspecified() Annotation    { return annUnspecified }
func (Annotation) Nonnull() Annotation        { return annNonnull }
func (Annotation) Nullable() Annotation       { return annNullable }
func (Annotation) NullResettable() Annotation { return annNullResettable }

func (a Annotation) String() string {
	switch a {
	case annNonnull:
		return "nonnull"
	case annNullable:
		return "nullable"
	case annNullResettable:
		return "null_resettable"
	default:
		return "unspecified"
	}
}

func (a *Annotation) Parse(s string) error {
	v, err := parseHelper{}.parse(s)
	if err == nil {
		*a = v
	}
	return err
}

type parseHelper struct{}

func (parseHelper) parse(s string) (Annotation, error) {
	switch s {
	case "nonnull":
		return annNonnull, nil
	case "nullable":
		return annNullable, nil
	case "null_resettable", "nullResettable":
		return annNullResettable, nil
	default:
		return annUnspecified, nil
	}
}

// Region represents one NS_ASSUME_NONNULL_BEGIN/END bracketed source range,
// identified by a pair of token indices into the parser's token stream (the
// shape the external parser is specified to hand back, per spec.md §6).
type Region struct {
	BeginToken int
	EndToken   int
}

// RegionSet is the set of assume-nonnull regions active for one file,
// queried by token index during structural reading.
type RegionSet struct {
	regions []Region
}

func NewRegionSet(regions []Region) RegionSet {
	return RegionSet{regions: regions}
}

// Contains reports whether tokenIndex falls within any region.
func (rs RegionSet) Contains(tokenIndex int) bool {
	for _, r := range rs.regions {
		if tokenIndex >= r.BeginToken && tokenIndex <= r.EndToken {
			return true
		}
	}
	return false
}
