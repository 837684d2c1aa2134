// Package canon implements the canonicalization pass of spec.md §4.5: once
// the last sample has been integrated, it regathers class and union names
// from every property slot that reaches them, then collapses redirect
// chains so every live Class reference is direct.
package canon

import (
	"github.com/marlowcharite/quicktype/internal/infer"
	"github.com/marlowcharite/quicktype/internal/ir"
)

// Canonicalize performs, in order: regather class names, regather union
// names, collapse redirects (spec.md §4.5). It is idempotent (spec.md §8
// property 6): calling it again on an already-canonical graph changes
// nothing.
func Canonicalize(g *ir.Graph) error {
	if err := regatherNames(g); err != nil {
		return err
	}
	return collapseRedirects(g)
}

// regatherNames implements spec.md §4.5 steps 1 and 2 in a single pass,
// since both walk the same property tree: for every Class(i) reached
// through a property named p, p joins class i's Inferred name set; for
// every Union reached the same way, p joins the union's own Named set;
// array/map element positions (whether the element is itself a class or a
// union) use singular(p) instead.
func regatherNames(g *ir.Graph) error {
	var walkErr error
	propagate := func(t ir.IRType, name string) {
		var rec func(ir.IRType, string)
		rec = func(t ir.IRType, name string) {
			if walkErr != nil {
				return
			}
			switch t.Kind {
			case ir.KindClass:
				cd, err := g.ClassData(t.Class)
				if err != nil {
					walkErr = err
					return
				}
				cd.Names = cd.Names.Merge(ir.Inferred(map[string]struct{}{name: {}}, ir.StringSetMerge))
			case ir.KindArray, ir.KindMap:
				if t.Elem != nil {
					rec(*t.Elem, infer.Singular(name))
				}
			case ir.KindUnion:
				if t.Union != nil {
					t.Union.Names = t.Union.Names.Merge(ir.Inferred(map[string]struct{}{name: {}}, ir.StringSetMerge))
					ir.ForEach(t.Union, func(arm ir.IRType) { rec(arm, name) })
				}
			}
		}
		rec(t, name)
	}

	for _, id := range g.LiveClassIds() {
		cd, err := g.ClassData(id)
		if err != nil {
			return err
		}
		for name, t := range cd.Properties {
			propagate(t, name)
		}
	}
	if walkErr != nil {
		return walkErr
	}
	for _, tl := range g.Toplevels {
		propagate(tl.Type, tl.Name)
	}
	return walkErr
}

// collapseRedirects rewrites every Class(i) reachable from a live class's
// properties or a top level so it names a live entry directly, without
// removing the redirect slots themselves (spec.md §4.5 step 3: "redirect
// slots remain to keep arena indices stable"; callers outside canon may
// already hold a ClassId pointing at one).
func collapseRedirects(g *ir.Graph) error {
	var rewriteErr error
	var rewrite func(ir.IRType) ir.IRType
	rewrite = func(t ir.IRType) ir.IRType {
		if rewriteErr != nil {
			return t
		}
		switch t.Kind {
		case ir.KindClass:
			live, err := g.FollowIndex(t.Class)
			if err != nil {
				rewriteErr = err
				return t
			}
			return ir.ClassRef(live)
		case ir.KindArray:
			if t.Elem == nil {
				return t
			}
			e := rewrite(*t.Elem)
			return ir.ArrayOf(e)
		case ir.KindMap:
			if t.Elem == nil {
				return t
			}
			e := rewrite(*t.Elem)
			return ir.MapOf(e)
		case ir.KindUnion:
			if t.Union == nil {
				return t
			}
			if t.Union.ClassRef != nil {
				live, err := g.FollowIndex(*t.Union.ClassRef)
				if err != nil {
					rewriteErr = err
					return t
				}
				t.Union.ClassRef = &live
			}
			if t.Union.ArrayType != nil {
				e := rewrite(*t.Union.ArrayType)
				t.Union.ArrayType = &e
			}
			if t.Union.MapType != nil {
				e := rewrite(*t.Union.MapType)
				t.Union.MapType = &e
			}
			return t
		default:
			return t
		}
	}

	for _, id := range g.LiveClassIds() {
		cd, err := g.ClassData(id)
		if err != nil {
			return err
		}
		for _, name := range cd.PropertyOrder {
			cd.Properties[name] = rewrite(cd.Properties[name])
		}
		if cd.MapElem != nil {
			e := rewrite(*cd.MapElem)
			cd.MapElem = &e
		}
	}
	if rewriteErr != nil {
		return rewriteErr
	}
	for i, tl := range g.Toplevels {
		g.Toplevels[i] = ir.TopLevel{Name: tl.Name, Type: rewrite(tl.Type)}
	}
	return rewriteErr
}
