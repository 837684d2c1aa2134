package naming

import "github.com/derekparker/trie"

// forbiddenSet is the membership test a Namer's candidate spellings run
// against: every already-assigned final spelling in a Namespace, plus its
// inherited keyword table. Backed by derekparker/trie (present in the
// teacher's go.mod for fast prefix lookups over YANG node names) for its
// natural domain here: checking whether an exact spelling, or a
// prefix/suffix-decorated variant of it, has already been claimed.
type forbiddenSet struct {
	t *trie.Trie
}

func newForbiddenSet() *forbiddenSet {
	return &forbiddenSet{t: trie.New()}
}

func (f *forbiddenSet) add(name string) {
	f.t.Add(name, struct{}{})
}

func (f *forbiddenSet) has(name string) bool {
	_, ok := f.t.Find(name)
	return ok
}
