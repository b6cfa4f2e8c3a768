package styling

// Feature is the part of a map feature that a style function may inspect.
type Feature interface {
	FeatureID() string
	Property(key string) (any, bool)
}

// FeatureFn produces a style for the given feature.
// It may be called with a nil feature when styles are resolved without one.
type FeatureFn func(f Feature) Spec

// StaticFn produces a style independent of any feature.
type StaticFn func() Spec

// SpecKind enumerates the shapes a Spec can take.
type SpecKind int

const (
	SpecNone SpecKind = iota
	SpecConstant
	SpecList
	SpecFeatureFn
	SpecStaticFn
)

// Spec is a style specification: nothing, a single entry, a list of entries,
// or a function producing another Spec.
// The zero Spec is None.
type Spec struct {
	kind      SpecKind
	entries   []Entry
	featureFn FeatureFn
	staticFn  StaticFn
}

// None is the empty style specification.
var None = Spec{}

// Constant returns a Spec consisting of the single entry e.
func Constant(e Entry) Spec {
	return Spec{kind: SpecConstant, entries: []Entry{e}}
}

// List returns a Spec consisting of the given entries in order.
func List(entries ...Entry) Spec {
	owned := make([]Entry, len(entries))
	copy(owned, entries)
	return Spec{kind: SpecList, entries: owned}
}

// FeatureFunc returns a Spec resolved per feature by fn.
func FeatureFunc(fn FeatureFn) Spec {
	if fn == nil {
		return None
	}
	return Spec{kind: SpecFeatureFn, featureFn: fn}
}

// StaticFunc returns a Spec resolved by calling fn without arguments.
func StaticFunc(fn StaticFn) Spec {
	if fn == nil {
		return None
	}
	return Spec{kind: SpecStaticFn, staticFn: fn}
}

// Kind returns the shape of this spec.
func (s Spec) Kind() SpecKind { return s.kind }

// IsNone returns whether this spec is empty.
func (s Spec) IsNone() bool { return s.kind == SpecNone }

// Normalize resolves the given spec into a flat list of entries.
//
// Functions are called with f if it is non-nil; a FeatureFn is called with nil
// otherwise. Results of functions are resolved in turn. The returned slice is
// never shared with the spec and is empty (non-nil) for None.
func Normalize(s Spec, f Feature) []Entry {
	switch s.kind {
	case SpecConstant, SpecList:
		result := make([]Entry, len(s.entries))
		copy(result, s.entries)
		return result
	case SpecFeatureFn:
		if f != nil {
			return Normalize(s.featureFn(f), f)
		}
		return Normalize(s.featureFn(nil), nil)
	case SpecStaticFn:
		return Normalize(s.staticFn(), f)
	default:
		return []Entry{}
	}
}

// Compose returns own followed by sel, as applied to a selected feature.
func Compose(own, sel []Entry) []Entry {
	result := make([]Entry, 0, len(own)+len(sel))
	result = append(result, own...)
	result = append(result, sel...)
	return result
}

// Decompose reverses Compose by returning the part of merged that precedes the
// first entry equal to sel[0].
//
// NOTE: if own already contained an entry equal to sel[0], the result is cut
// at that earlier entry and is shorter than the original own styles.
// If sel is empty or sel[0] is not found, merged is returned as is rather than
// losing its last entry to a not-found index.
func Decompose(merged, sel []Entry) []Entry {
	end := len(merged)
	if len(sel) > 0 {
		if i := indexOf(merged, sel[0]); i >= 0 {
			end = i
		}
	}
	result := make([]Entry, end)
	copy(result, merged[:end])
	return result
}

func indexOf(entries []Entry, e Entry) int {
	for i := range entries {
		if entries[i] == e {
			return i
		}
	}
	return -1
}
