package world

// Room is a mutable place in the bank. Exits are fixed after the
// catalog builds the world; the item list only shrinks (pickups).
type Room struct {
	Key       string
	Name      string
	ShortDesc string
	LongDesc  string
	Exits     map[string]Exit
	Items     []string
	Visited   bool
}

// Describe returns the long description on the first visit and the
// short variant afterwards. The visited flag flips permanently.
func (r *Room) Describe() string {
	desc := r.ShortDesc
	if !r.Visited {
		desc = r.LongDesc
	}
	r.Visited = true
	return desc
}

// FindItem matches an item in the room by folded name and returns its
// canonical-cased name.
func (r *Room) FindItem(name string) (string, bool) {
	want := Fold(name)
	for _, it := range r.Items {
		if Fold(it) == want {
			return it, true
		}
	}
	return "", false
}

// RemoveItem deletes the first item matching the folded name,
// preserving the order of the rest.
func (r *Room) RemoveItem(name string) bool {
	want := Fold(name)
	for i, it := range r.Items {
		if Fold(it) == want {
			r.Items = append(r.Items[:i], r.Items[i+1:]...)
			return true
		}
	}
	return false
}
