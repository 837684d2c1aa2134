// Package infer implements the inference engine described in spec.md §4.2
// and §4.3: it consumes a decoded JSON sample tree and produces an IRType,
// unifying types during construction and merging classes with matching
// shapes into a single arena entry with redirects.
package infer

import (
	"fmt"

	"github.com/zeebo/xxh3"

	"github.com/marlowcharite/quicktype/internal/ir"
)

// pairKey is an unordered pair of ClassIds, used to guard class
// unification against infinite recursion on mutually recursive schemas
// (spec.md §9: "implementations must guard with a 'currently unifying'
// set keyed by unordered pairs of class ids").
type pairKey struct{ lo, hi ir.ClassId }

func pairOf(a, b ir.ClassId) pairKey {
	if a <= b {
		return pairKey{a, b}
	}
	return pairKey{b, a}
}

// Unifier holds the per-session state needed to unify IRTypes: the arena
// they live in, and the set of class-id pairs currently being unified so
// that mutual recursion terminates rather than looping forever.
type Unifier struct {
	Graph   *ir.Graph
	NoMaps  bool
	inUnify map[pairKey]ir.ClassId
	// shapeHash caches each live class's structural hash (property-name
	// set + element Kinds), used as an O(1) pre-filter before the full
	// recursive ClassData comparison that class unification would
	// otherwise always pay (mirrors the teacher's schematree index,
	// which exists to avoid repeated linear scans over YANG entries).
	shapeHash map[ir.ClassId]uint64
}

// NewUnifier returns a Unifier operating over g.
func NewUnifier(g *ir.Graph, noMaps bool) *Unifier {
	return &Unifier{
		Graph:     g,
		NoMaps:    noMaps,
		inUnify:   map[pairKey]ir.ClassId{},
		shapeHash: map[ir.ClassId]uint64{},
	}
}

// Unify implements spec.md §4.2's unify(a, b) table.
func (u *Unifier) Unify(a, b ir.IRType) (ir.IRType, error) {
	switch {
	case a.IsNoInformation():
		return b, nil
	case b.IsNoInformation():
		return a, nil
	case a.Kind == ir.KindAny || b.Kind == ir.KindAny:
		return ir.Any(), nil // Any absorbs every other kind
	case a.Kind == b.Kind && a.Kind != ir.KindArray && a.Kind != ir.KindClass &&
		a.Kind != ir.KindMap && a.Kind != ir.KindEnum && a.Kind != ir.KindUnion:
		return a, nil // identical primitive or Any
	}

	switch {
	case a.Kind == ir.KindArray && b.Kind == ir.KindArray:
		elem, err := u.Unify(*a.Elem, *b.Elem)
		if err != nil {
			return ir.IRType{}, err
		}
		return ir.ArrayOf(elem), nil

	case a.Kind == ir.KindClass && b.Kind == ir.KindClass:
		target, err := u.unifyClasses(a.Class, b.Class)
		if err != nil {
			return ir.IRType{}, err
		}
		return ir.ClassRef(target), nil

	case a.Kind == ir.KindClass && b.Kind == ir.KindMap:
		return u.unifyClassWithMap(a.Class, *b.Elem)
	case a.Kind == ir.KindMap && b.Kind == ir.KindClass:
		return u.unifyClassWithMap(b.Class, *a.Elem)

	case a.Kind == ir.KindMap && b.Kind == ir.KindMap:
		elem, err := u.Unify(*a.Elem, *b.Elem)
		if err != nil {
			return ir.IRType{}, err
		}
		return ir.MapOf(elem), nil

	case a.Kind == ir.KindEnum && b.Kind == ir.KindEnum:
		return ir.EnumType(unifyEnums(a.EnumData, b.EnumData)), nil

	case a.Kind == ir.KindUnion || b.Kind == ir.KindUnion:
		return u.unifyIntoUnion(a, b)

	case (a.Kind == ir.KindInteger && b.Kind == ir.KindDouble) ||
		(a.Kind == ir.KindDouble && b.Kind == ir.KindInteger):
		return u.wrapBoth(a, b)

	default:
		return u.wrapBoth(a, b)
	}
}

// wrapBoth promotes a and b into a new union carrying both, per spec.md
// §4.2 ("otherwise wrap both in a Union").
func (u *Unifier) wrapBoth(a, b ir.IRType) (ir.IRType, error) {
	rep := ir.EmptyUnion(ir.Inferred(map[string]struct{}{}, ir.StringSetMerge))
	if err := u.insertIntoUnion(rep, a); err != nil {
		return ir.IRType{}, err
	}
	if err := u.insertIntoUnion(rep, b); err != nil {
		return ir.IRType{}, err
	}
	return ir.UnionType(rep), nil
}

// unifyIntoUnion handles any unify call where at least one side is
// already a Union: the other side (or the other union's members) is
// folded in one kind at a time via insertIntoUnion, preserving "at most
// one of each kind" by recursively unifying same-kind compound arms.
func (u *Unifier) unifyIntoUnion(a, b ir.IRType) (ir.IRType, error) {
	rep := ir.EmptyUnion(ir.Inferred(map[string]struct{}{}, ir.StringSetMerge))
	var insErr error
	insertAllOf := func(t ir.IRType) {
		if insErr != nil {
			return
		}
		if t.Kind == ir.KindUnion {
			ir.ForEach(t.Union, func(arm ir.IRType) {
				if insErr == nil {
					insErr = u.insertIntoUnion(rep, arm)
				}
			})
			return
		}
		insErr = u.insertIntoUnion(rep, t)
	}
	insertAllOf(a)
	insertAllOf(b)
	if insErr != nil {
		return ir.IRType{}, insErr
	}
	if rep.KindCount() == 0 {
		return ir.NoInformation(), nil
	}
	return ir.UnionType(rep), nil
}

// insertIntoUnion adds t's kind to rep, recursively unifying with any
// existing member of the same kind so a union never carries two arms of
// the same compound kind (spec.md §3 invariant).
func (u *Unifier) insertIntoUnion(rep *ir.UnionRep, t ir.IRType) error {
	switch t.Kind {
	case ir.KindNull, ir.KindInteger, ir.KindDouble, ir.KindBool, ir.KindString:
		rep.InsertPrimitive(t.Kind)
		return nil
	case ir.KindArray:
		if rep.ArrayType == nil {
			elem := *t.Elem
			rep.ArrayType = &elem
			return nil
		}
		merged, err := u.Unify(*rep.ArrayType, *t.Elem)
		if err != nil {
			return err
		}
		rep.ArrayType = &merged
		return nil
	case ir.KindMap:
		if rep.MapType == nil {
			elem := *t.Elem
			rep.MapType = &elem
			return nil
		}
		merged, err := u.Unify(*rep.MapType, *t.Elem)
		if err != nil {
			return err
		}
		rep.MapType = &merged
		return nil
	case ir.KindClass:
		if rep.ClassRef == nil {
			id := t.Class
			rep.ClassRef = &id
			return nil
		}
		target, err := u.unifyClasses(*rep.ClassRef, t.Class)
		if err != nil {
			return err
		}
		rep.ClassRef = &target
		return nil
	case ir.KindEnum:
		if rep.EnumData == nil {
			rep.EnumData = t.EnumData
			return nil
		}
		rep.EnumData = unifyEnums(rep.EnumData, t.EnumData)
		return nil
	case ir.KindAny:
		// Any observed alongside other kinds collapses the whole type to
		// Any; callers that reach here from wrapBoth/unifyIntoUnion with
		// an Any arm should have already short-circuited, but insert is
		// defensive for callers composing unions directly.
		return fmt.Errorf("infer: Any cannot be inserted into a union")
	default:
		return fmt.Errorf("infer: cannot insert kind %v into union", t.Kind)
	}
}

func unifyEnums(a, b *ir.EnumData) *ir.EnumData {
	values := make(map[string]struct{}, len(a.Values)+len(b.Values))
	for v := range a.Values {
		values[v] = struct{}{}
	}
	for v := range b.Values {
		values[v] = struct{}{}
	}
	return &ir.EnumData{Names: a.Names.Merge(b.Names), Values: values}
}

// unifyClasses merges the ClassData at i and j into a single arena entry
// and returns the surviving ClassId, by convention the lower of the two
// (redirecting the other to it) so output is deterministic regardless of
// call order (spec.md §8 property 7, unify commutativity up to
// redirects).
func (u *Unifier) unifyClasses(i, j ir.ClassId) (ir.ClassId, error) {
	i, err := u.Graph.FollowIndex(i)
	if err != nil {
		return 0, err
	}
	j, err = u.Graph.FollowIndex(j)
	if err != nil {
		return 0, err
	}
	if i == j {
		return i, nil
	}

	key := pairOf(i, j)
	if target, ok := u.inUnify[key]; ok {
		// Re-entrant unification of the same pair (mutually recursive
		// schemas): return the target already chosen for this pair
		// rather than recursing again.
		return target, nil
	}

	target, other := i, j
	if other < target {
		target, other = other, target
	}
	u.inUnify[key] = target
	defer delete(u.inUnify, key)

	targetData, err := u.Graph.ClassData(target)
	if err != nil {
		return 0, err
	}
	otherData, err := u.Graph.ClassData(other)
	if err != nil {
		return 0, err
	}

	merged, err := u.unifyClassData(targetData, otherData)
	if err != nil {
		return 0, err
	}
	*targetData = *merged
	u.Graph.Redirect(other, target)
	delete(u.shapeHash, other)
	u.shapeHash[target] = u.classShapeHash(targetData)
	return target, nil
}

// unifyClassData implements spec.md §4.2's ClassData unification rule: the
// union of property names; a property present on only one side becomes
// optional (unified with Null); properties present on both unify
// pointwise. Names merge per the Named rule.
func (u *Unifier) unifyClassData(a, b *ir.ClassData) (*ir.ClassData, error) {
	merged := ir.NewClassData(a.Names.Merge(b.Names))
	merged.Forced = a.Forced || b.Forced

	seen := map[string]bool{}
	for _, name := range a.PropertyOrder {
		seen[name] = true
		at := a.Properties[name]
		if bt, ok := b.Properties[name]; ok {
			unified, err := u.Unify(at, bt)
			if err != nil {
				return nil, err
			}
			merged.SetProperty(name, unified)
		} else {
			unified, err := u.Unify(at, ir.Primitive(ir.KindNull))
			if err != nil {
				return nil, err
			}
			merged.SetProperty(name, unified)
		}
	}
	for _, name := range b.PropertyOrder {
		if seen[name] {
			continue
		}
		bt := b.Properties[name]
		unified, err := u.Unify(bt, ir.Primitive(ir.KindNull))
		if err != nil {
			return nil, err
		}
		merged.SetProperty(name, unified)
	}
	return merged, nil
}

// unifyClassWithMap implements spec.md §4.2's Class(i) ⊔ Map(t) rule: if
// the map heuristic (spec.md §4.3) permits, the class's properties
// collapse into the map's element type unified with each property's type;
// otherwise the two are wrapped in a Union.
func (u *Unifier) unifyClassWithMap(classID ir.ClassId, mapElem ir.IRType) (ir.IRType, error) {
	classID, err := u.Graph.FollowIndex(classID)
	if err != nil {
		return ir.IRType{}, err
	}
	cd, err := u.Graph.ClassData(classID)
	if err != nil {
		return ir.IRType{}, err
	}
	if cd.Forced || !u.mapHeuristicShapeOK(cd) {
		return u.wrapBoth(ir.ClassRef(classID), ir.MapOf(mapElem))
	}

	elem := mapElem
	for _, name := range cd.PropertyOrder {
		merged, err := u.Unify(elem, cd.Properties[name])
		if err != nil {
			return ir.IRType{}, err
		}
		elem = merged
	}
	cd.MapElem = &elem
	return ir.MapOf(elem), nil
}

// mapHeuristicShapeOK checks the structural half of spec.md §4.3's
// criteria (b) and (c): at least THRESHOLD properties, and their types
// agree once Null is removed. It also returns false when the --no-maps
// flag (criterion (a)) is set; the Forced exemption is checked by callers.
func (u *Unifier) mapHeuristicShapeOK(cd *ir.ClassData) bool {
	const threshold = 2
	if u.NoMaps || len(cd.PropertyOrder) < threshold {
		return false
	}
	var common *ir.IRType
	for _, name := range cd.PropertyOrder {
		t := stripNullArm(cd.Properties[name])
		if t.Kind == ir.KindAny {
			return false
		}
		if common == nil {
			c := t
			common = &c
			continue
		}
		unified, err := u.Unify(*common, t)
		if err != nil || unified.Kind == ir.KindAny || unified.Kind == ir.KindUnion {
			return false
		}
		common = &unified
	}
	return true
}

// classShapeHash computes a structural digest of cd's property-name set
// and per-property Kind, used as a cheap pre-filter before a full
// recursive ClassData comparison during class-merge candidate search
// (see FindDuplicate below).
func (u *Unifier) classShapeHash(cd *ir.ClassData) uint64 {
	h := xxh3.New()
	names := append([]string(nil), cd.PropertyOrder...)
	sortStrings(names)
	for _, name := range names {
		_, _ = h.Write([]byte(name))
		_, _ = h.Write([]byte{':'})
		_, _ = h.Write([]byte(cd.Properties[name].Kind.String()))
		_, _ = h.Write([]byte{','})
	}
	return h.Sum64()
}

// RegisterClass records id's structural shape so future calls to
// FindDuplicate can compare against its cached hash instead of
// recomputing it.
func (u *Unifier) RegisterClass(id ir.ClassId) error {
	cd, err := u.Graph.ClassData(id)
	if err != nil {
		return err
	}
	u.shapeHash[id] = u.classShapeHash(cd)
	return nil
}

// FindDuplicate returns a previously registered class whose property-name
// set and per-property Kinds exactly match cd, if one exists. It is a
// cheap pre-filter, keyed by classShapeHash, followed by a confirming
// structural comparison -- the recursive unify that spec.md §4.2
// describes is still what actually merges the two classes. The search
// still visits every registered class, but only those whose cached hash
// matches pay for the sameShape comparison.
func (u *Unifier) FindDuplicate(cd *ir.ClassData) (ir.ClassId, bool) {
	want := u.classShapeHash(cd)
	for id, h := range u.shapeHash {
		if h == want && sameShape(cd, mustClassData(u.Graph, id)) {
			return id, true
		}
	}
	return 0, false
}

func mustClassData(g *ir.Graph, id ir.ClassId) *ir.ClassData {
	cd, err := g.ClassData(id)
	if err != nil {
		return ir.NewClassData(ir.Inferred(map[string]struct{}{}, ir.StringSetMerge))
	}
	return cd
}

func sameShape(a, b *ir.ClassData) bool {
	if len(a.PropertyOrder) != len(b.PropertyOrder) {
		return false
	}
	for name, at := range a.Properties {
		bt, ok := b.Properties[name]
		if !ok || at.Kind != bt.Kind {
			return false
		}
	}
	return true
}

// stripNullArm returns t with its optional Null arm removed, if t is a
// union that is nullable with exactly one other inhabitant; otherwise it
// returns t unchanged. Used by the map-vs-class heuristic (spec.md §4.3),
// which judges property types "ignoring an optional Null arm".
func stripNullArm(t ir.IRType) ir.IRType {
	if t.Kind != ir.KindUnion {
		return t
	}
	if _, rest := ir.RemoveNull(t.Union); rest.KindCount() == 1 {
		return rest.ForceSoleType()
	}
	return t
}

func sortStrings(s []string) {
	for i := 1; i < len(s); i++ {
		for j := i; j > 0 && s[j-1] > s[j]; j-- {
			s[j-1], s[j] = s[j], s[j-1]
		}
	}
}
