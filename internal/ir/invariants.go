package ir

import "fmt"

// ErrDangling marks an internal invariant violation: a reachable type
// contains NoInformation, or a Class reference does not resolve to a
// live arena entry (spec.md §3 invariants 1 and 3, §7 "internal
// invariant violations" are fatal).
type ErrDangling struct {
	Path string
}

func (e *ErrDangling) Error() string {
	return fmt.Sprintf("ir: dangling or unresolved type at %s", e.Path)
}

// Walk calls visit once for every IRType reachable from t, including t
// itself, recursing into array/map elements and union arms but not
// descending into class properties (callers that need full-graph
// reachability should additionally walk g.LiveClassIds()).
func Walk(t IRType, visit func(IRType)) {
	visit(t)
	switch t.Kind {
	case KindArray, KindMap:
		if t.Elem != nil {
			Walk(*t.Elem, visit)
		}
	case KindUnion:
		if t.Union != nil {
			ForEach(t.Union, func(arm IRType) { Walk(arm, visit) })
		}
	}
}

// CheckArenaIntegrity verifies spec.md §8 property 1: every Class
// reference reachable from the graph's top levels and from every live
// class's properties resolves, via FollowIndex, to a live entry.
func CheckArenaIntegrity(g *Graph) error {
	check := func(t IRType, path string) error {
		var err error
		Walk(t, func(sub IRType) {
			if err != nil {
				return
			}
			if sub.Kind == KindClass {
				if _, e := g.FollowIndex(sub.Class); e != nil {
					err = &ErrDangling{Path: path}
				}
			}
		})
		return err
	}

	for _, tl := range g.Toplevels {
		if err := check(tl.Type, tl.Name); err != nil {
			return err
		}
	}
	for _, id := range g.LiveClassIds() {
		cd, err := g.ClassData(id)
		if err != nil {
			return err
		}
		for name, t := range cd.Properties {
			if err := check(t, name); err != nil {
				return err
			}
		}
	}
	return nil
}

// CheckNoDanglingSlots verifies spec.md §8 property 2: after
// canonicalization, no type reachable from the top levels (or from a
// live class's properties) contains NoInformation.
func CheckNoDanglingSlots(g *Graph) error {
	check := func(t IRType, path string) error {
		var err error
		Walk(t, func(sub IRType) {
			if err == nil && sub.IsNoInformation() {
				err = &ErrDangling{Path: path}
			}
		})
		return err
	}
	for _, tl := range g.Toplevels {
		if err := check(tl.Type, tl.Name); err != nil {
			return err
		}
	}
	for _, id := range g.LiveClassIds() {
		cd, err := g.ClassData(id)
		if err != nil {
			return err
		}
		for name, t := range cd.Properties {
			if err := check(t, name); err != nil {
				return err
			}
		}
	}
	return nil
}
