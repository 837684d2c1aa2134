package ir

import "fmt"

// EntryKind distinguishes the three states an arena slot can be in.
type EntryKind int

const (
	// EntryEmpty marks a slot that has been allocated (so its ClassId is
	// stable) but not yet populated; translators use this to pre-reserve
	// a ClassId before recursing into a type that may reference itself
	// (spec.md §9, cyclic schemas).
	EntryEmpty EntryKind = iota
	// EntryLive marks a slot holding a real, current ClassData.
	EntryLive
	// EntryRedirect marks a slot that has been unified into another and
	// now only forwards lookups to it.
	EntryRedirect
)

// Entry is one slot of a Graph's class arena.
type Entry struct {
	Kind     EntryKind
	Class    *ClassData // set iff Kind == EntryLive
	Redirect ClassId    // set iff Kind == EntryRedirect
}

// Graph is the arena of class entries plus the set of named top-level
// entry points (spec.md §3). It is owned by exactly one inference
// session and grows monotonically; ClassIds, once issued, are never
// invalidated (spec.md §5).
type Graph struct {
	classes   []Entry
	Toplevels []TopLevel
}

// TopLevel is one named entry point into the graph.
type TopLevel struct {
	Name string
	Type IRType
}

// NewGraph returns an empty Graph.
func NewGraph() *Graph {
	return &Graph{}
}

// Reserve allocates a new Empty slot and returns its ClassId, for
// translators that must have a ClassId in hand before recursing into a
// type that may cyclically reference itself (spec.md §9).
func (g *Graph) Reserve() ClassId {
	id := ClassId(len(g.classes))
	g.classes = append(g.classes, Entry{Kind: EntryEmpty})
	return id
}

// AddClass allocates a new Live slot holding cd and returns its ClassId.
func (g *Graph) AddClass(cd *ClassData) ClassId {
	id := ClassId(len(g.classes))
	g.classes = append(g.classes, Entry{Kind: EntryLive, Class: cd})
	return id
}

// Populate fills a previously Reserve'd Empty slot with cd. It is an
// internal invariant violation to populate a slot that is not Empty.
func (g *Graph) Populate(id ClassId, cd *ClassData) error {
	e := &g.classes[id]
	if e.Kind != EntryEmpty {
		return fmt.Errorf("ir: Populate called on non-empty slot %d (kind %v)", id, e.Kind)
	}
	e.Kind = EntryLive
	e.Class = cd
	return nil
}

// Entry returns the raw (un-followed) entry at id.
func (g *Graph) Entry(id ClassId) Entry {
	return g.classes[id]
}

// Len returns the number of allocated slots, live or not.
func (g *Graph) Len() int {
	return len(g.classes)
}

// Redirect marks from as forwarding to to. from must currently be Live or
// Empty; to should already resolve (via FollowIndex) to a Live entry,
// though Redirect itself does not require that, since canonicalization's
// collapse-redirects pass is what guarantees every Class reference in the
// finished graph reaches a Live entry directly (spec.md §4.5).
func (g *Graph) Redirect(from, to ClassId) {
	g.classes[from] = Entry{Kind: EntryRedirect, Redirect: to}
}

// FollowIndex walks redirect chains starting at i until it reaches a Live
// entry, returning that entry's ClassId. Chains must be finite and
// acyclic (spec.md §3); FollowIndex defends against a broken invariant by
// bounding the walk to Len() steps and returning an error rather than
// looping forever, which is how spec.md §8 property 1 is made checkable.
func (g *Graph) FollowIndex(i ClassId) (ClassId, error) {
	seen := 0
	for {
		if i < 0 || int(i) >= len(g.classes) {
			return 0, fmt.Errorf("ir: FollowIndex(%d) out of range (arena has %d entries)", i, len(g.classes))
		}
		e := g.classes[i]
		switch e.Kind {
		case EntryLive:
			return i, nil
		case EntryRedirect:
			i = e.Redirect
		case EntryEmpty:
			return 0, fmt.Errorf("ir: FollowIndex(%d) reached an empty slot", i)
		}
		seen++
		if seen > len(g.classes) {
			return 0, fmt.Errorf("ir: FollowIndex(%d) did not terminate within %d steps (cyclic redirect chain)", i, len(g.classes))
		}
	}
}

// ClassData resolves id through any redirect chain and returns the live
// ClassData it reaches.
func (g *Graph) ClassData(id ClassId) (*ClassData, error) {
	live, err := g.FollowIndex(id)
	if err != nil {
		return nil, err
	}
	return g.classes[live].Class, nil
}

// LiveClassIds returns every ClassId reachable without following a
// redirect (i.e. currently Live), in arena order. Used by
// canonicalization and by tests asserting arena integrity.
func (g *Graph) LiveClassIds() []ClassId {
	var out []ClassId
	for i, e := range g.classes {
		if e.Kind == EntryLive {
			out = append(out, ClassId(i))
		}
	}
	return out
}

// AddTopLevel registers a named entry point.
func (g *Graph) AddTopLevel(name string, t IRType) {
	g.Toplevels = append(g.Toplevels, TopLevel{Name: name, Type: t})
}
