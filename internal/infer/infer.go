package infer

import (
	"github.com/marlowcharite/quicktype/internal/ir"
	"github.com/marlowcharite/quicktype/internal/jsonstream"
)

// NameHint tells Infer what to name any class, enum, or union it creates
// at this position: the name of the property under which the value was
// found (or the top-level name at the root), and whether that name was
// user-supplied (spec.md's Given/Inferred distinction).
type NameHint struct {
	Name  string
	Given bool
}

func (h NameHint) nameSet() ir.Named[map[string]struct{}] {
	return ir.NewNameSet(h.Name, h.Given)
}

// Infer implements spec.md §4.2's infer(v, name, ctx) table: given a
// decoded JSON value, it returns an IRType and mutates u.Graph to contain
// any new classes the value introduces.
func (u *Unifier) Infer(v jsonstream.Value, hint NameHint) (ir.IRType, error) {
	switch v.Kind {
	case jsonstream.KindNull:
		rep := ir.EmptyUnion(hint.nameSet())
		rep.InsertPrimitive(ir.KindNull)
		return ir.UnionType(rep), nil

	case jsonstream.KindBool:
		return ir.Primitive(ir.KindBool), nil

	case jsonstream.KindNumber:
		if v.Num.IsInt {
			return ir.Primitive(ir.KindInteger), nil
		}
		return ir.Primitive(ir.KindDouble), nil

	case jsonstream.KindString:
		return ir.Primitive(ir.KindString), nil

	case jsonstream.KindArray:
		return u.inferArray(v.Arr, hint)

	case jsonstream.KindObject:
		return u.inferObject(v, hint)

	default:
		return ir.Any(), nil
	}
}

// IntegrateSample infers v and folds the result into an existing
// aggregate type for the same top level or property slot, implementing
// the "unify one or more JSON samples" half of spec.md §2 item 1. Pass
// ir.NoInformation() as existing for the first sample.
func (u *Unifier) IntegrateSample(existing ir.IRType, v jsonstream.Value, hint NameHint) (ir.IRType, error) {
	t, err := u.Infer(v, hint)
	if err != nil {
		return ir.IRType{}, err
	}
	return u.Unify(existing, t)
}

func (u *Unifier) inferArray(elems []jsonstream.Value, hint NameHint) (ir.IRType, error) {
	elemHint := NameHint{Name: Singular(hint.Name), Given: hint.Given}
	elemType := ir.NoInformation()
	for _, e := range elems {
		t, err := u.Infer(e, elemHint)
		if err != nil {
			return ir.IRType{}, err
		}
		merged, err := u.Unify(elemType, t)
		if err != nil {
			return ir.IRType{}, err
		}
		elemType = merged
	}
	return ir.ArrayOf(elemType), nil
}

func (u *Unifier) inferObject(v jsonstream.Value, hint NameHint) (ir.IRType, error) {
	cd := ir.NewClassData(hint.nameSet())
	for _, key := range v.ObjKeys {
		propHint := NameHint{Name: key, Given: false}
		t, err := u.Infer(v.Obj[key], propHint)
		if err != nil {
			return ir.IRType{}, err
		}
		cd.SetProperty(key, t)
	}

	if dup, ok := u.FindDuplicate(cd); ok {
		merged, err := u.unifyClassData(mustClassData(u.Graph, dup), cd)
		if err != nil {
			return ir.IRType{}, err
		}
		*mustClassData(u.Graph, dup) = *merged
		return ir.ClassRef(dup), nil
	}

	id := u.Graph.AddClass(cd)
	if err := u.RegisterClass(id); err != nil {
		return ir.IRType{}, err
	}
	return ir.ClassRef(id), nil
}
