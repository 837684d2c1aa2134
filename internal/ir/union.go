package ir

// primitiveBits is a bitset over the five primitive kinds a union can
// carry directly (spec.md §3: "The bitset carries Null | Integer | Double
// | Bool | String"). Compound kinds (array, class, map, enum) get their
// own slot below rather than a bit, since at most one of each may be
// present (spec.md §3 invariant).
type primitiveBits uint8

const (
	bitNull primitiveBits = 1 << iota
	bitInteger
	bitDouble
	bitBool
	bitString
)

func bitFor(k Kind) (primitiveBits, bool) {
	switch k {
	case KindNull:
		return bitNull, true
	case KindInteger:
		return bitInteger, true
	case KindDouble:
		return bitDouble, true
	case KindBool:
		return bitBool, true
	case KindString:
		return bitString, true
	default:
		return 0, false
	}
}

// UnionRep is a packed, set-like structure describing "at most one of each
// kind" (spec.md §3). The empty union is never constructed directly by
// callers; an empty UnionRep should be converted to NoInformation before
// it escapes a package boundary (spec.md §3 invariant 4).
type UnionRep struct {
	Names      Named[map[string]struct{}]
	primitives primitiveBits
	ArrayType  *IRType
	ClassRef   *ClassId
	MapType    *IRType
	EnumData   *EnumData
}

// EmptyUnion returns a UnionRep with no kinds set.
func EmptyUnion(names Named[map[string]struct{}]) *UnionRep {
	return &UnionRep{Names: names}
}

// InsertPrimitive sets the bit for k. Inserting Integer when Double is
// already set (or vice versa) is a no-op with respect to which primitive
// bits are visible to emission, but both bits remain set internally so
// callers can still detect the mixed integer/double origin via
// HasPrimitive or IsMixedNumeric (spec.md §4.1).
func (u *UnionRep) InsertPrimitive(k Kind) {
	if bit, ok := bitFor(k); ok {
		u.primitives |= bit
	}
}

// HasPrimitive reports whether k's bit is set.
func (u *UnionRep) HasPrimitive(k Kind) bool {
	bit, ok := bitFor(k)
	return ok && u.primitives&bit != 0
}

// IsMixedNumeric reports whether the union carries both Integer and
// Double, which spec.md §3 says is renderable only as Double.
func (u *UnionRep) IsMixedNumeric() bool {
	return u.primitives&bitInteger != 0 && u.primitives&bitDouble != 0
}

// KindCount returns the number of distinct kinds present, where a mixed
// integer/double union still counts as a single numeric kind for the
// purposes of "exactly one other inhabitant" checks in NullableFrom.
func (u *UnionRep) KindCount() int {
	n := 0
	if u.primitives&bitNull != 0 {
		n++
	}
	if u.primitives&(bitInteger|bitDouble) != 0 {
		n++
	}
	if u.primitives&bitBool != 0 {
		n++
	}
	if u.primitives&bitString != 0 {
		n++
	}
	if u.ArrayType != nil {
		n++
	}
	if u.ClassRef != nil {
		n++
	}
	if u.MapType != nil {
		n++
	}
	if u.EnumData != nil {
		n++
	}
	return n
}

// RemoveNull returns whether Null was present, and a shallow copy of u
// with the Null bit cleared.
func RemoveNull(u *UnionRep) (bool, *UnionRep) {
	had := u.primitives&bitNull != 0
	cp := *u
	cp.primitives &^= bitNull
	return had, &cp
}

// NullableFrom returns the sole non-null kind's IRType if u is nullable
// (carries Null) and has exactly one other inhabitant; otherwise it
// returns false. A mixed integer/double union counts as the single kind
// Double, per spec.md §3.
func NullableFrom(u *UnionRep) (IRType, bool) {
	had, rest := RemoveNull(u)
	if !had || rest.KindCount() != 1 {
		return IRType{}, false
	}
	return rest.soleType(), true
}

// ForceSoleType returns the single inhabitant of a union known (by the
// caller, typically after checking KindCount() == 1) to carry exactly one
// kind. It panics if u carries zero or multiple kinds.
func (u *UnionRep) ForceSoleType() IRType {
	return u.soleType()
}

// soleType returns the single inhabitant of a union known to carry
// exactly one kind (other than Null, which the caller has already
// removed). Panics if called on a union with zero or multiple kinds.
func (u *UnionRep) soleType() IRType {
	switch {
	case u.primitives&(bitInteger|bitDouble) != 0:
		if u.IsMixedNumeric() {
			return Primitive(KindDouble)
		}
		if u.primitives&bitInteger != 0 {
			return Primitive(KindInteger)
		}
		return Primitive(KindDouble)
	case u.primitives&bitBool != 0:
		return Primitive(KindBool)
	case u.primitives&bitString != 0:
		return Primitive(KindString)
	case u.ArrayType != nil:
		return ArrayOf(*u.ArrayType)
	case u.ClassRef != nil:
		return ClassRef(*u.ClassRef)
	case u.MapType != nil:
		return MapOf(*u.MapType)
	case u.EnumData != nil:
		return EnumType(u.EnumData)
	default:
		panic("ir: soleType called on empty union")
	}
}

// IsMember reports whether t's kind is present in u. For KindClass it
// compares the ClassId directly; callers that need "after redirect
// collapse" semantics should resolve t's ClassId with Graph.FollowIndex
// first.
func IsMember(t IRType, u *UnionRep) bool {
	switch t.Kind {
	case KindNull:
		return u.primitives&bitNull != 0
	case KindInteger:
		return u.primitives&bitInteger != 0
	case KindDouble:
		return u.primitives&bitDouble != 0
	case KindBool:
		return u.primitives&bitBool != 0
	case KindString:
		return u.primitives&bitString != 0
	case KindArray:
		return u.ArrayType != nil
	case KindClass:
		return u.ClassRef != nil && *u.ClassRef == t.Class
	case KindMap:
		return u.MapType != nil
	case KindEnum:
		return u.EnumData != nil
	default:
		return false
	}
}

// ForEach visits every kind present in u in the canonical order Null,
// Integer, Double, Bool, String, Array, Class, Map, Enum (spec.md §4.1,
// §8 property 5), calling f once per kind with the corresponding IRType.
func ForEach(u *UnionRep, f func(IRType)) {
	if u.primitives&bitNull != 0 {
		f(Primitive(KindNull))
	}
	if u.primitives&bitInteger != 0 {
		f(Primitive(KindInteger))
	}
	if u.primitives&bitDouble != 0 {
		f(Primitive(KindDouble))
	}
	if u.primitives&bitBool != 0 {
		f(Primitive(KindBool))
	}
	if u.primitives&bitString != 0 {
		f(Primitive(KindString))
	}
	if u.ArrayType != nil {
		f(ArrayOf(*u.ArrayType))
	}
	if u.ClassRef != nil {
		f(ClassRef(*u.ClassRef))
	}
	if u.MapType != nil {
		f(MapOf(*u.MapType))
	}
	if u.EnumData != nil {
		f(EnumType(u.EnumData))
	}
}
