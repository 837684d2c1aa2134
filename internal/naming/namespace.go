package naming

// Namespace is a node in the naming forest described by spec.md §4.6: it
// owns a set of pending Names and inherits forbidden spellings from every
// ancestor. One Namespace per scope that needs collision-free spellings
// — e.g. one global Namespace for top-level and class names, one child
// Namespace per class for its property names.
type Namespace struct {
	Parent    *Namespace
	Children  []*Namespace
	names     []*Name
	forbidden *forbiddenSet
}

// NewNamespace returns a Namespace seeded with the target language's
// reserved keywords (spec.md §4.6: "Each namespace is seeded with the
// target language's reserved keywords"), linked under parent if parent is
// non-nil.
func NewNamespace(parent *Namespace, keywords []string) *Namespace {
	ns := &Namespace{Parent: parent, forbidden: newForbiddenSet()}
	for _, k := range keywords {
		ns.forbidden.add(k)
	}
	if parent != nil {
		parent.Children = append(parent.Children, ns)
	}
	return ns
}

// Add registers n as pending resolution in ns.
func (ns *Namespace) Add(n *Name) {
	ns.names = append(ns.names, n)
}

// isForbidden reports whether name is already claimed in ns or any
// ancestor of ns.
func (ns *Namespace) isForbidden(name string) bool {
	for n := ns; n != nil; n = n.Parent {
		if n.forbidden.has(name) {
			return true
		}
	}
	return false
}

// reserve claims name within ns, so no later Name in ns or any descendant
// Namespace may resolve to it.
func (ns *Namespace) reserve(name string) {
	ns.forbidden.add(name)
}
