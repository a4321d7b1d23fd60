package dex

import "sort"

// Favorites is a set of record IDs with value semantics: Toggle returns a new
// set and leaves the receiver untouched. The zero value is empty.
type Favorites struct {
	ids map[int]struct{}
}

// Has reports whether id is favorited.
func (f Favorites) Has(id int) bool {
	_, ok := f.ids[id]
	return ok
}

// Toggle adds id when absent and removes it when present.
func (f Favorites) Toggle(id int) Favorites {
	next := make(map[int]struct{}, len(f.ids)+1)
	for k := range f.ids {
		next[k] = struct{}{}
	}
	if _, ok := next[id]; ok {
		delete(next, id)
	} else {
		next[id] = struct{}{}
	}
	return Favorites{ids: next}
}

// Len reports the number of favorites.
func (f Favorites) Len() int {
	return len(f.ids)
}

// IDs returns the members in ascending order.
func (f Favorites) IDs() []int {
	out := make([]int, 0, len(f.ids))
	for id := range f.ids {
		out = append(out, id)
	}
	sort.Ints(out)
	return out
}
