package naming

import "errors"

// ErrCyclicName is returned when a fixed-point pass over a Namespace's
// pending Names makes no progress: some Dependency Name's parts can never
// all resolve, which spec.md §7 classifies as a fatal internal error.
var ErrCyclicName = errors.New("naming: cyclic name dependency, fixed point did not converge")

// Resolve runs spec.md §4.6's single fixed-point pass over root and,
// after root's own pending Names are fully resolved, recurses into its
// Children in order. Parent-before-children matters: a child Namespace's
// forbidden-set lookups walk up through root, so root's reservations must
// already be in place before a child namer's collision checks run.
func Resolve(root *Namespace) error {
	if err := resolveNamespace(root); err != nil {
		return err
	}
	for _, child := range root.Children {
		if err := Resolve(child); err != nil {
			return err
		}
	}
	return nil
}

func resolveNamespace(ns *Namespace) error {
	pending := ns.names
	for len(pending) > 0 {
		var next []*Name
		progressed := false
		for _, n := range pending {
			if n.done {
				progressed = true
				continue
			}
			switch n.Kind {
			case KindFixed:
				n.resolved = n.Fixed
				n.done = true
				ns.reserve(n.resolved)
				progressed = true
			case KindSimple:
				n.resolved = n.Namer.assign(n.Raw, ns.isForbidden)
				n.done = true
				ns.reserve(n.resolved)
				progressed = true
			case KindDependency:
				parts := make([]string, len(n.Parts))
				ready := true
				for i, p := range n.Parts {
					if !p.done {
						ready = false
						break
					}
					parts[i] = p.resolved
				}
				if !ready {
					next = append(next, n)
					continue
				}
				n.resolved = n.Assemble(parts)
				n.done = true
				ns.reserve(n.resolved)
				progressed = true
			}
		}
		if !progressed {
			return ErrCyclicName
		}
		pending = next
	}
	return nil
}
