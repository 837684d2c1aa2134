package infer

import "github.com/marlowcharite/quicktype/internal/ir"

// ApplyMapHeuristic implements the finalization-time half of spec.md §4.3:
// after the last sample is consumed, every live class not Forced (i.e. not
// dictated by an explicit JSON Schema or GraphQL object shape) is
// considered for demotion to a string-keyed map if it has at least
// THRESHOLD properties and all of their types (ignoring an optional Null
// arm) unify to a single non-Any type. A Given top-level or property name
// does not by itself exempt a class -- only Forced does. It is idempotent:
// classes already demoted, or that fail the shape test, are left
// untouched, so running it twice over the same graph (as canonicalization
// requires, spec.md §8 property 6) produces the same result.
func (u *Unifier) ApplyMapHeuristic() error {
	if u.NoMaps {
		return nil
	}
	for _, id := range u.Graph.LiveClassIds() {
		cd, err := u.Graph.ClassData(id)
		if err != nil {
			return err
		}
		if cd.Forced || cd.MapElem != nil {
			continue
		}
		if !u.mapHeuristicShapeOK(cd) {
			continue
		}
		elem, ok := commonElementType(u, cd)
		if !ok {
			continue
		}
		cd.MapElem = &elem
	}
	return nil
}

// commonElementType recomputes the single unified element type across
// cd's properties (with any optional Null arm stripped), the same
// criterion mapHeuristicShapeOK already validated.
func commonElementType(u *Unifier, cd *ir.ClassData) (ir.IRType, bool) {
	var common *ir.IRType
	for _, name := range cd.PropertyOrder {
		t := stripNullArm(cd.Properties[name])
		if common == nil {
			c := t
			common = &c
			continue
		}
		unified, err := u.Unify(*common, t)
		if err != nil || unified.Kind == ir.KindAny || unified.Kind == ir.KindUnion {
			return ir.IRType{}, false
		}
		common = &unified
	}
	if common == nil {
		return ir.IRType{}, false
	}
	return *common, true
}
