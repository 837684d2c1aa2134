package ir

import "sort"

// Named carries a value along with its provenance: whether it originated
// from a user-supplied name (a CLI option, a JSON Schema "title") or was
// derived from the property path where the corresponding type was
// encountered during inference.
//
// The zero value is an Inferred value with the zero value of T; callers
// that need to distinguish "no name yet" should use a pointer or a
// separate bool, mirroring how the teacher's yang.Entry leaves a field
// unset rather than overloading its zero value.
type Named[T any] struct {
	val    T
	given  bool
	merger func(a, b T) T
}

// Given wraps val as a user-supplied name or name set.
func Given[T any](val T, merge func(a, b T) T) Named[T] {
	return Named[T]{val: val, given: true, merger: merge}
}

// Inferred wraps val as a name or name set derived from the data.
func Inferred[T any](val T, merge func(a, b T) T) Named[T] {
	return Named[T]{val: val, given: false, merger: merge}
}

// Value returns the underlying value.
func (n Named[T]) Value() T { return n.val }

// IsGiven reports whether this name originated from the user rather than
// from inference.
func (n Named[T]) IsGiven() bool { return n.given }

// Merge implements the Named merge rule: Given dominates Inferred; two
// Givens union their underlying values via merger; two Inferreds likewise.
// When a Given meets an Inferred, the Given is returned unchanged and the
// Inferred side's value is discarded; merger runs only for two
// same-provenance values.
func (n Named[T]) Merge(o Named[T]) Named[T] {
	switch {
	case n.given && !o.given:
		return n
	case !n.given && o.given:
		return o
	default:
		merger := n.merger
		if merger == nil {
			merger = o.merger
		}
		merged := n.val
		if merger != nil {
			merged = merger(n.val, o.val)
		}
		return Named[T]{val: merged, given: n.given, merger: merger}
	}
}

// StringSetMerge unions two sets of strings, represented as maps to nil,
// for use as a Named[map[string]struct{}] merger.
func StringSetMerge(a, b map[string]struct{}) map[string]struct{} {
	out := make(map[string]struct{}, len(a)+len(b))
	for k := range a {
		out[k] = struct{}{}
	}
	for k := range b {
		out[k] = struct{}{}
	}
	return out
}

// NewNameSet builds a singleton Named name set, given or inferred.
func NewNameSet(name string, given bool) Named[map[string]struct{}] {
	set := map[string]struct{}{name: {}}
	if given {
		return Given(set, StringSetMerge)
	}
	return Inferred(set, StringSetMerge)
}

// SortedNames returns the name set's members in sorted order.
func (n Named[T]) SortedNames() []string {
	set, ok := any(n.val).(map[string]struct{})
	if !ok {
		return nil
	}
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
